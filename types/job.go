package types

import "time"

// JobState is the state machine for one script-to-video generation job.
type JobState string

const (
	JobPending     JobState = "pending"
	JobNormalizing JobState = "normalizing"
	JobTiming      JobState = "timing"
	JobRendering   JobState = "rendering"
	JobEncoding    JobState = "encoding"
	JobCompleted   JobState = "completed"
	JobFailed      JobState = "failed"
)

// LogEntry is a single job log line with timestamp.
type LogEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
}

// JobStatus is a point-in-time snapshot of a generation job, served by the
// status endpoint and consumed by the demo client.
type JobStatus struct {
	ContentID   int        `json:"content_id"`
	State       JobState   `json:"state"`
	FramesDone  int        `json:"frames_done"`
	TotalFrames int        `json:"total_frames"`
	Progress    float64    `json:"progress"`
	VideoURL    string     `json:"video_url,omitempty"`
	Error       string     `json:"error,omitempty"`
	Logs        []LogEntry `json:"logs"`
}
