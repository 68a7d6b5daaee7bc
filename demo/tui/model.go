package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// State mirrors the job state machine reported by the API server
type State string

const (
	StateIdle        State = "idle"
	StatePending     State = "pending"
	StateNormalizing State = "normalizing"
	StateTiming      State = "timing"
	StateRendering   State = "rendering"
	StateEncoding    State = "encoding"
	StateComplete    State = "completed"
	StateError       State = "failed"
)

// LogEntry represents a single log line with timestamp
type LogEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
}

// StatusResponse is the JSON response from the status endpoint
type StatusResponse struct {
	ContentID   int        `json:"content_id"`
	State       State      `json:"state"`
	FramesDone  int        `json:"frames_done"`
	TotalFrames int        `json:"total_frames"`
	Progress    float64    `json:"progress"`
	VideoURL    string     `json:"video_url,omitempty"`
	Error       string     `json:"error,omitempty"`
	Logs        []LogEntry `json:"logs"`
}

// Model represents the TUI client state (thin client)
type Model struct {
	// API client
	Client *APIClient

	// Content being generated
	ContentID    int
	ContentTitle string

	// Local UI state (synced from the server)
	State       State
	Logs        []LogEntry
	FramesDone  int
	TotalFrames int
	Progress    float64
	VideoURL    string
	Err         error

	// Whether generation has been triggered from this session
	Triggered bool

	// Connection status
	Connected bool
}

// NewModel creates a new TUI model
func NewModel(serverURL string, contentID int) Model {
	return Model{
		Client:    NewAPIClient(serverURL),
		ContentID: contentID,
		State:     StateIdle,
		Logs:      make([]LogEntry, 0),
		Connected: false,
	}
}

// Init implements tea.Model interface
func (m Model) Init() tea.Cmd {
	// Start polling immediately
	return tea.Batch(
		fetchContent(m.Client, m.ContentID),
		pollStatus(m.Client, m.ContentID),
		tickCmd(),
	)
}

// getStateText returns the appropriate state message
func (m Model) getStateText() string {
	if !m.Connected {
		return ErrorStyle.Render("❌ Not connected to API server")
	}

	switch m.State {
	case StateIdle, StatePending:
		if m.Triggered {
			return StatusStyle.Render("⏳ Waiting for the pipeline to pick up the job...")
		}
		return HighlightStyle.Render("👋 Ready to generate!") + "\n\n" +
			InfoStyle.Render("Press 'g' to start video generation")
	case StateNormalizing:
		return StatusStyle.Render("📜 Normalizing script into text blocks...")
	case StateTiming:
		return StatusStyle.Render("⏱️  Assigning frame durations...")
	case StateRendering:
		return StatusStyle.Render(fmt.Sprintf("🎨 Rendering frames (%d/%d)...", m.FramesDone, m.TotalFrames))
	case StateEncoding:
		return StatusStyle.Render("🎬 Encoding video with ffmpeg...")
	case StateComplete:
		return HighlightStyle.Render("✅ COMPLETE")
	case StateError:
		errMsg := "Unknown error"
		if m.Err != nil {
			errMsg = m.Err.Error()
		}
		return ErrorStyle.Render(fmt.Sprintf("❌ Error: %v", errMsg))
	default:
		return ""
	}
}
