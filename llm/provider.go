package llm

import (
	"context"
	"os"
)

// Request carries the user-supplied parameters for script generation.
type Request struct {
	Title           string
	Subject         string
	AgeGroup        string
	DifficultyLevel string
	ContentFormat   string
	// DurationMinutes is the requested video length hint
	DurationMinutes int
	Instructions    string
}

// Provider abstracts a language-model script generator. Implementations
// return the raw response body; its shape is deliberately not validated
// downstream — the normalizer accepts anything.
type Provider interface {
	GenerateScript(ctx context.Context, req Request) (string, error)
	ModelName() string
}

// NewDefaultProvider returns a provider if configured via env, preferring
// Cohere when COHERE_API_KEY is set, then OpenAI via OPENAI_API_KEY.
// Returns nil when neither is configured.
func NewDefaultProvider() Provider {
	if key := os.Getenv("COHERE_API_KEY"); key != "" {
		return NewCohereProvider(key, os.Getenv("COHERE_MODEL"))
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return NewOpenAIProvider(key, os.Getenv("OPENAI_MODEL"))
	}
	return nil
}
