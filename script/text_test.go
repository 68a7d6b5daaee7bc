package script

import "testing"

func TestResolveText(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, ""},
		{"string", "hello", "hello"},
		{"text field", map[string]any{"text": "from text"}, "from text"},
		{"script field", map[string]any{"script": "from script"}, "from script"},
		{"text wins over script", map[string]any{"text": "t", "script": "s"}, "t"},
		{"number", float64(42), "42"},
		{"bool", true, "true"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ResolveText(c.in); got != c.want {
				t.Fatalf("ResolveText(%v) = %q; want %q", c.in, got, c.want)
			}
		})
	}
}

func TestStripTags(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"<strong>Hi:</strong> there", "Hi: there"},
		{"no markup", "no markup"},
		{"  <em>padded</em>  ", "padded"},
		{"<strong></strong>", ""},
	}
	for _, c := range cases {
		if got := StripTags(c.in); got != c.want {
			t.Fatalf("StripTags(%q) = %q; want %q", c.in, got, c.want)
		}
	}
}

func TestSplitHeading(t *testing.T) {
	cases := []struct {
		name        string
		in          string
		wantHeading string
		wantBody    string
	}{
		{"heading and body", "<strong>Magma:</strong> Hot melted rock.", "Magma:", "Hot melted rock."},
		{"heading only", "<strong>Wrap-Up:</strong>", "Wrap-Up:", ""},
		{"no heading", "Plain sentence.", "", "Plain sentence."},
		{"markup in body", "<strong>A:</strong> <em>emphasized</em> text", "A:", "emphasized text"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h, b := SplitHeading(c.in)
			if h != c.wantHeading || b != c.wantBody {
				t.Fatalf("SplitHeading(%q) = (%q, %q); want (%q, %q)",
					c.in, h, b, c.wantHeading, c.wantBody)
			}
		})
	}
}

func TestExtractStringList(t *testing.T) {
	payload := map[string]any{
		"learningObjectives": []any{"Count to ten", "  ", "Name three shapes", float64(7)},
		"materials":          "Paper and crayons",
	}

	objectives := ExtractStringList(payload, "learningObjectives")
	if len(objectives) != 3 {
		t.Fatalf("objectives = %v; want 3 entries", objectives)
	}
	if objectives[0] != "Count to ten" || objectives[2] != "7" {
		t.Fatalf("objectives = %v", objectives)
	}

	materials := ExtractStringList(payload, "materials")
	if len(materials) != 1 || materials[0] != "Paper and crayons" {
		t.Fatalf("materials = %v", materials)
	}

	if got := ExtractStringList(payload, "missing"); got != nil {
		t.Fatalf("missing key = %v; want nil", got)
	}
	if got := ExtractStringList("not a map", "x"); got != nil {
		t.Fatalf("non-map payload = %v; want nil", got)
	}
}
