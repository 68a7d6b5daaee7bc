package pipeline

import (
	"strings"
	"testing"
)

func TestSanitize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Volcanoes for Kids!", "volcanoes_for_kids"},
		{"  Math: Fractions & Decimals  ", "math_fractions_decimals"},
		{"simple", "simple"},
		{"___", "untitled"},
		{"", "untitled"},
		{"¿Qué?", "qu"},
	}

	for _, c := range cases {
		if got := sanitize(c.in); got != c.want {
			t.Fatalf("sanitize(%q) = %q; want %q", c.in, got, c.want)
		}
	}
}

func TestOutputFileName(t *testing.T) {
	name := OutputFileName("Science", "Volcanoes for Kids!")

	if !strings.HasPrefix(name, "science_volcanoes_for_kids_") {
		t.Fatalf("name = %q; want subject_title prefix", name)
	}
	if !strings.HasSuffix(name, ".mp4") {
		t.Fatalf("name = %q; want .mp4 suffix", name)
	}
	if strings.ContainsAny(name, " /\\:") {
		t.Fatalf("name contains unsafe characters: %q", name)
	}
}
