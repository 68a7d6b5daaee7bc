package script

import (
	"strings"
	"testing"
)

func TestNormalizeStructuredScript(t *testing.T) {
	payload := Parse(`{
		"opening": "Welcome to the wonderful world of volcanoes!",
		"mainContent": [
			{
				"sectionTitle": "What Is a Volcano",
				"script": "A volcano is a mountain that can erupt.",
				"interactiveElement": "Can you make a volcano shape with your hands?"
			},
			{
				"sectionTitle": "Inside the Earth",
				"script": "Deep underground there is hot melted rock called magma."
			}
		],
		"conclusion": "Now you know how volcanoes work!"
	}`)

	blocks := Normalize(payload, "Volcanoes")

	wantKinds := []Kind{KindOpening, KindSection, KindInteractive, KindSection, KindConclusion}
	if len(blocks) != len(wantKinds) {
		t.Fatalf("Normalize returned %d blocks; want %d", len(blocks), len(wantKinds))
	}
	for i, k := range wantKinds {
		if blocks[i].Kind != k {
			t.Fatalf("block %d kind = %q; want %q", i, blocks[i].Kind, k)
		}
		if blocks[i].Order != i {
			t.Fatalf("block %d order = %d; want %d", i, blocks[i].Order, i)
		}
	}

	// Section display text carries the heading markup
	if got := blocks[1].DisplayText; !strings.HasPrefix(got, "<strong>What Is a Volcano:</strong> ") {
		t.Fatalf("section display = %q; want heading prefix", got)
	}
	if got := StripTags(blocks[1].DisplayText); got != "What Is a Volcano: A volcano is a mountain that can erupt." {
		t.Fatalf("stripped section display = %q", got)
	}

	// The interactive block follows its parent section and shares its index
	if blocks[2].SourceIndex != 0 {
		t.Fatalf("interactive source index = %d; want 0", blocks[2].SourceIndex)
	}
	if blocks[3].SourceIndex != 1 {
		t.Fatalf("second section source index = %d; want 1", blocks[3].SourceIndex)
	}
	if blocks[0].SourceIndex != -1 || blocks[4].SourceIndex != -1 {
		t.Fatalf("opening/conclusion source index = %d/%d; want -1/-1",
			blocks[0].SourceIndex, blocks[4].SourceIndex)
	}
}

func TestNormalizeFreeformText(t *testing.T) {
	raw := "First paragraph about dinosaurs.\n\nSecond paragraph.\r\n\r\nThird one."
	blocks := Normalize(Parse(raw), "Dinosaurs")

	if len(blocks) != 3 {
		t.Fatalf("Normalize returned %d blocks; want 3", len(blocks))
	}
	for i, b := range blocks {
		if b.Kind != KindRaw {
			t.Fatalf("block %d kind = %q; want %q", i, b.Kind, KindRaw)
		}
		if b.ObjectDump {
			t.Fatalf("block %d unexpectedly marked as object dump", i)
		}
	}
	if blocks[1].DisplayText != "Second paragraph." {
		t.Fatalf("block 1 text = %q", blocks[1].DisplayText)
	}
}

func TestNormalizeUnrecognizedObjectDumps(t *testing.T) {
	blocks := Normalize(Parse(`{"foo": "bar", "count": 3}`), "Mystery")

	if len(blocks) != 1 {
		t.Fatalf("Normalize returned %d blocks; want 1", len(blocks))
	}
	b := blocks[0]
	if b.Kind != KindRaw || !b.ObjectDump {
		t.Fatalf("block = %+v; want raw object dump", b)
	}
	if !strings.Contains(b.DisplayText, `"foo": "bar"`) {
		t.Fatalf("dump text missing payload field: %q", b.DisplayText)
	}
}

func TestNormalizeNeverReturnsEmpty(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"empty string", ""},
		{"whitespace", "   \n\t  "},
		{"empty object", "{}"},
		{"null values", `{"opening": null, "mainContent": null, "conclusion": null}`},
		{"empty sections", `{"mainContent": []}`},
		{"blank strings", `{"opening": "  ", "conclusion": ""}`},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			blocks := Normalize(Parse(c.raw), "Oceans")
			if len(blocks) == 0 {
				t.Fatal("Normalize returned zero blocks")
			}
			for _, b := range blocks {
				if strings.TrimSpace(b.DisplayText) == "" {
					t.Fatalf("block has empty display text: %+v", b)
				}
			}
		})
	}

	// The pure fallback names the content title
	blocks := Normalize(nil, "Oceans")
	if len(blocks) != 1 || !strings.Contains(blocks[0].DisplayText, "Oceans") {
		t.Fatalf("fallback blocks = %+v; want single titled block", blocks)
	}
}

func TestNormalizeSectionVariants(t *testing.T) {
	payload := Parse(`{
		"mainContent": [
			"Just a plain string item",
			{"sectionTitle": "", "script": "Body without a heading"},
			{"script": {"text": "Nested text object"}},
			{"unrelated": true}
		]
	}`)

	blocks := Normalize(payload, "Variants")

	if blocks[0].Kind != KindSimple || blocks[0].DisplayText != "Just a plain string item" {
		t.Fatalf("plain item block = %+v", blocks[0])
	}
	// A blank heading gets a positional default
	if !strings.HasPrefix(blocks[1].DisplayText, "<strong>Section 2:</strong>") {
		t.Fatalf("defaulted heading = %q", blocks[1].DisplayText)
	}
	if !strings.Contains(blocks[2].DisplayText, "Nested text object") {
		t.Fatalf("nested script block = %q", blocks[2].DisplayText)
	}
	// The unrecognized object becomes a simple block of its dump, not a section
	if blocks[3].Kind != KindSimple {
		t.Fatalf("unrecognized item kind = %q; want %q", blocks[3].Kind, KindSimple)
	}
}

func TestParsePassthrough(t *testing.T) {
	if v := Parse("not json at all"); v != "not json at all" {
		t.Fatalf("Parse passthrough = %v", v)
	}
	if v := Parse(""); v != nil {
		t.Fatalf("Parse empty = %v; want nil", v)
	}
	if _, ok := Parse(`{"opening": "hi"}`).(map[string]any); !ok {
		t.Fatal("Parse did not decode JSON object")
	}
}
