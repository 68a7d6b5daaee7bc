package types

import "time"

// ContentStatus tracks a content record through its lifecycle.
// A record is single-writer at a time: the API layer owns transitions.
type ContentStatus string

const (
	StatusDraft      ContentStatus = "draft"
	StatusProcessing ContentStatus = "processing"
	StatusCompleted  ContentStatus = "completed"
	StatusError      ContentStatus = "error"
)

// Content is one educational content record.
type Content struct {
	ID                 int           `json:"id"`
	Title              string        `json:"title"`
	Subject            string        `json:"subject"`
	AgeGroup           string        `json:"age_group"`
	DifficultyLevel    string        `json:"difficulty_level"`
	ContentFormat      string        `json:"content_format"`
	Duration           int           `json:"duration"`
	Status             ContentStatus `json:"status"`
	ScriptContent      string        `json:"script_content,omitempty"`
	LearningObjectives []string      `json:"learning_objectives,omitempty"`
	Materials          []string      `json:"materials,omitempty"`
	VisualReferences   []string      `json:"visual_references,omitempty"`
	VideoURL           string        `json:"video_url,omitempty"`
	ErrorMessage       string        `json:"error_message,omitempty"`
	AIModel            string        `json:"ai_model,omitempty"`
	CreatedAt          time.Time     `json:"created_at"`
}

// GenerationRequest is the message dispatched to a video worker.
// The full record travels with the message so a worker can run without
// sharing the API process's store.
type GenerationRequest struct {
	Content Content `json:"content"`
}
