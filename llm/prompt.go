package llm

import (
	"fmt"
	"strings"
)

const systemPrompt = "You are an education writer creating short video scripts " +
	"for children. Respond with JSON only, no surrounding prose."

// BuildPrompt renders the script-generation prompt. The requested shape
// matches the structured form the normalizer prefers, but responses are
// accepted in any shape.
func BuildPrompt(req Request) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Write a script for a %d-minute educational video.\n\n", minutesOrDefault(req.DurationMinutes))
	fmt.Fprintf(&b, "Topic: %s\n", req.Title)
	fmt.Fprintf(&b, "Subject: %s\n", req.Subject)
	if req.AgeGroup != "" {
		fmt.Fprintf(&b, "Age group: %s\n", req.AgeGroup)
	}
	if req.DifficultyLevel != "" {
		fmt.Fprintf(&b, "Difficulty: %s\n", req.DifficultyLevel)
	}
	if req.ContentFormat != "" {
		fmt.Fprintf(&b, "Format: %s\n", req.ContentFormat)
	}
	if req.Instructions != "" {
		fmt.Fprintf(&b, "Additional instructions: %s\n", req.Instructions)
	}

	b.WriteString(`
Use simple, friendly language appropriate for the age group.

Return a JSON object with this shape:
{
  "opening": "a short welcoming hook",
  "mainContent": [
    {
      "sectionTitle": "short section name",
      "script": "2-4 sentences of narration",
      "interactiveElement": "an optional question or activity for the viewer"
    }
  ],
  "conclusion": "a short recap and goodbye",
  "learningObjectives": ["..."],
  "materials": ["..."]
}
`)
	return b.String()
}

func minutesOrDefault(minutes int) int {
	if minutes <= 0 {
		return 3
	}
	return minutes
}
