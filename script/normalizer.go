package script

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Kind is the semantic role of one text block.
type Kind string

const (
	KindOpening     Kind = "opening"
	KindSection     Kind = "section"
	KindInteractive Kind = "interactive"
	KindSimple      Kind = "simple"
	KindContent     Kind = "content"
	KindConclusion  Kind = "conclusion"
	KindRaw         Kind = "raw"
)

// TextBlock is one unit of script text in playback order.
type TextBlock struct {
	Kind        Kind   `json:"kind"`
	DisplayText string `json:"display_text"`
	Order       int    `json:"order"`
	// SourceIndex is the 0-based mainContent position the block came from,
	// or -1 when it did not come from a section list.
	SourceIndex int `json:"source_index"`
	// ObjectDump marks a raw block holding a full pretty-printed payload.
	ObjectDump bool `json:"object_dump,omitempty"`
}

// Parse decodes stored script content into a payload for Normalize.
// Content that is not valid JSON is passed through as a freeform string.
func Parse(raw string) any {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	var v any
	if err := json.Unmarshal([]byte(trimmed), &v); err == nil {
		return v
	}
	return raw
}

// Normalize turns an arbitrary script payload into a non-empty ordered block
// sequence. It never fails: language-model output has no contractual shape,
// so every input, including nil and malformed objects, resolves to blocks.
func Normalize(payload any, title string) []TextBlock {
	var blocks []TextBlock

	switch p := payload.(type) {
	case nil:
		// falls through to the fallback block below
	case string:
		blocks = fromFreeform(p)
	case map[string]any:
		if isStructured(p) {
			blocks = fromStructured(p)
		} else {
			blocks = append(blocks, dumpBlock(p))
		}
	default:
		// arrays, numbers, booleans: serialized as-is
		blocks = append(blocks, dumpBlock(p))
	}

	if len(blocks) == 0 {
		blocks = append(blocks, TextBlock{
			Kind:        KindRaw,
			DisplayText: fmt.Sprintf("No script content available for: %s", title),
			SourceIndex: -1,
		})
	}

	for i := range blocks {
		blocks[i].Order = i
	}
	return blocks
}

// isStructured reports whether the object exposes any of the structured
// script keys. Key presence decides the branch; empty values are skipped
// later, so {"opening": null} still takes the structured path.
func isStructured(m map[string]any) bool {
	for _, k := range []string{"opening", "mainContent", "conclusion"} {
		if _, ok := m[k]; ok {
			return true
		}
	}
	return false
}

func fromStructured(m map[string]any) []TextBlock {
	var blocks []TextBlock

	if t := strings.TrimSpace(ResolveText(m["opening"])); t != "" {
		blocks = append(blocks, TextBlock{Kind: KindOpening, DisplayText: t, SourceIndex: -1})
	}

	switch mc := m["mainContent"].(type) {
	case nil:
	case []any:
		blocks = append(blocks, fromSections(mc)...)
	default:
		if t := strings.TrimSpace(ResolveText(mc)); t != "" {
			blocks = append(blocks, TextBlock{Kind: KindContent, DisplayText: t, SourceIndex: -1})
		}
	}

	if t := strings.TrimSpace(ResolveText(m["conclusion"])); t != "" {
		blocks = append(blocks, TextBlock{Kind: KindConclusion, DisplayText: t, SourceIndex: -1})
	}

	return blocks
}

func fromSections(list []any) []TextBlock {
	var blocks []TextBlock
	for i, el := range list {
		sec, ok := el.(map[string]any)
		if !ok || !isSection(sec) {
			if t := strings.TrimSpace(ResolveText(el)); t != "" {
				blocks = append(blocks, TextBlock{Kind: KindSimple, DisplayText: t, SourceIndex: i})
			}
			continue
		}

		heading := strings.TrimSpace(ResolveText(sec["sectionTitle"]))
		if heading == "" {
			heading = fmt.Sprintf("Section %d", i+1)
		}
		body := strings.TrimSpace(ResolveText(sec["script"]))
		display := "<strong>" + heading + ":</strong>"
		if body != "" {
			display += " " + body
		}
		blocks = append(blocks, TextBlock{Kind: KindSection, DisplayText: display, SourceIndex: i})

		// the interactive block always directly follows its parent section
		if ie := strings.TrimSpace(ResolveText(sec["interactiveElement"])); ie != "" {
			blocks = append(blocks, TextBlock{Kind: KindInteractive, DisplayText: ie, SourceIndex: i})
		}
	}
	return blocks
}

func isSection(m map[string]any) bool {
	if _, ok := m["sectionTitle"]; ok {
		return true
	}
	_, ok := m["script"]
	return ok
}

// fromFreeform splits a plain string on blank-line boundaries into raw blocks.
func fromFreeform(s string) []TextBlock {
	var blocks []TextBlock
	for _, para := range splitParagraphs(s) {
		blocks = append(blocks, TextBlock{Kind: KindRaw, DisplayText: para, SourceIndex: -1})
	}
	return blocks
}

// dumpBlock serializes an unrecognized payload in full into one raw block.
func dumpBlock(v any) TextBlock {
	return TextBlock{
		Kind:        KindRaw,
		DisplayText: prettyJSON(v),
		SourceIndex: -1,
		ObjectDump:  true,
	}
}
