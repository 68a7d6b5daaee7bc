package script

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var (
	paragraphRe = regexp.MustCompile(`\r?\n\s*\r?\n`)
	tagRe       = regexp.MustCompile(`<[^>]+>`)
	headingRe   = regexp.MustCompile(`^<strong>(.*?)</strong>\s*`)
)

// ResolveText resolves any text-like value to a plain string. A string is
// used directly; an object prefers its "text" field, then its "script" field,
// and is pretty-printed in full otherwise; anything else is stringified.
func ResolveText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case map[string]any:
		if s, ok := t["text"]; ok {
			return stringify(s)
		}
		if s, ok := t["script"]; ok {
			return stringify(s)
		}
		return prettyJSON(t)
	default:
		return stringify(t)
	}
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		if b, err := json.Marshal(t); err == nil {
			return string(b)
		}
		return fmt.Sprintf("%v", t)
	}
}

func prettyJSON(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}

func splitParagraphs(s string) []string {
	var out []string
	for _, p := range paragraphRe.Split(s, -1) {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// StripTags removes the lightweight inline markup from display text.
func StripTags(s string) string {
	return strings.TrimSpace(tagRe.ReplaceAllString(s, ""))
}

// SplitHeading extracts an optional <strong>…</strong> prefix as a heading.
// The returned body has all remaining markup stripped. When no heading prefix
// is present, the heading is empty and the whole text becomes the body.
func SplitHeading(s string) (heading, body string) {
	trimmed := strings.TrimSpace(s)
	if m := headingRe.FindStringSubmatch(trimmed); m != nil {
		return strings.TrimSpace(m[1]), StripTags(trimmed[len(m[0]):])
	}
	return "", StripTags(trimmed)
}

// ExtractStringList pulls a best-effort list of strings from a loosely shaped
// payload field, tolerating single strings and non-string elements.
func ExtractStringList(payload any, key string) []string {
	m, ok := payload.(map[string]any)
	if !ok {
		return nil
	}
	switch v := m[key].(type) {
	case string:
		if t := strings.TrimSpace(v); t != "" {
			return []string{t}
		}
	case []any:
		var out []string
		for _, el := range v {
			if t := strings.TrimSpace(ResolveText(el)); t != "" {
				out = append(out, t)
			}
		}
		return out
	}
	return nil
}
