package render

import "strings"

// Pattern selects the decorative background treatment drawn behind a frame.
type Pattern string

const (
	PatternDots      Pattern = "dots"
	PatternRings     Pattern = "rings"
	PatternTriangles Pattern = "triangles"
)

// Theme is the color/icon/pattern bundle associated with a subject area.
// Colors are hex strings consumed by the drawing context.
type Theme struct {
	Primary    string
	Secondary  string
	Background string
	Icon       string
	Pattern    Pattern
}

var defaultTheme = Theme{
	Primary:    "#4A55A2",
	Secondary:  "#7895CB",
	Background: "#EEF3FB",
	Icon:       "?",
	Pattern:    PatternDots,
}

// themes maps normalized subject names to their visual treatment.
var themes = map[string]Theme{
	"science": {
		Primary: "#1B7A43", Secondary: "#52C17B", Background: "#E8F7EE",
		Icon: "S", Pattern: PatternRings,
	},
	"math": {
		Primary: "#B3541E", Secondary: "#F2A154", Background: "#FDF1E5",
		Icon: "+", Pattern: PatternTriangles,
	},
	"history": {
		Primary: "#7B4B2A", Secondary: "#C69B7B", Background: "#F7EFE7",
		Icon: "H", Pattern: PatternDots,
	},
	"geography": {
		Primary: "#16697A", Secondary: "#82C0CC", Background: "#E7F4F6",
		Icon: "G", Pattern: PatternRings,
	},
	"language": {
		Primary: "#6D3580", Secondary: "#B07BC6", Background: "#F4EBF7",
		Icon: "A", Pattern: PatternDots,
	},
	"art": {
		Primary: "#C0392B", Secondary: "#F1948A", Background: "#FBEEEC",
		Icon: "*", Pattern: PatternTriangles,
	},
	"music": {
		Primary: "#2C3E50", Secondary: "#85A1BC", Background: "#EBF0F5",
		Icon: "M", Pattern: PatternRings,
	},
	"nature": {
		Primary: "#3E7C17", Secondary: "#9EC97F", Background: "#EFF7E8",
		Icon: "N", Pattern: PatternDots,
	},
}

// subject aliases share their base subject's theme
var subjectAliases = map[string]string{
	"mathematics": "math",
	"maths":       "math",
	"english":     "language",
	"reading":     "language",
	"biology":     "science",
	"physics":     "science",
	"chemistry":   "science",
}

// ThemeFor resolves a theme from a subject name, case- and
// whitespace-insensitively. Unknown or missing subjects get the default.
func ThemeFor(subject string) Theme {
	key := strings.ToLower(strings.TrimSpace(subject))
	if alias, ok := subjectAliases[key]; ok {
		key = alias
	}
	if t, ok := themes[key]; ok {
		return t
	}
	return defaultTheme
}
