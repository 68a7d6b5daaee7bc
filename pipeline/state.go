package pipeline

import (
	"sync"
	"time"

	"kidreel/types"
)

// Tracker holds one generation job's observable state with thread-safe
// access. The pipeline writes to it; the status endpoint reads snapshots.
type Tracker struct {
	mu sync.RWMutex

	contentID   int
	state       types.JobState
	framesDone  int
	totalFrames int
	videoURL    string
	lastErr     error

	// logs (ring buffer)
	logs    []types.LogEntry
	maxLogs int
}

// NewTracker creates a tracker in the pending state.
func NewTracker(contentID int) *Tracker {
	return &Tracker{
		contentID: contentID,
		state:     types.JobPending,
		logs:      make([]types.LogEntry, 0),
		maxLogs:   50,
	}
}

// AddLog appends a log entry, keeping only the most recent entries.
func (t *Tracker) AddLog(message string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.appendLog(message)
}

// appendLog must be called with the lock held.
func (t *Tracker) appendLog(message string) {
	t.logs = append(t.logs, types.LogEntry{Timestamp: time.Now(), Message: message})
	if len(t.logs) > t.maxLogs {
		t.logs = t.logs[len(t.logs)-t.maxLogs:]
	}
}

// SetState transitions the job to a new state.
func (t *Tracker) SetState(state types.JobState) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state = state
}

// SetFrames records rendering progress.
func (t *Tracker) SetFrames(done, total int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.framesDone = done
	t.totalFrames = total
}

// SetError transitions the job to failed and records the cause.
func (t *Tracker) SetError(err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state = types.JobFailed
	t.lastErr = err
	t.appendLog("Error: " + err.Error())
}

// Complete transitions the job to completed with its video URL.
func (t *Tracker) Complete(videoURL string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state = types.JobCompleted
	t.videoURL = videoURL
	t.appendLog("Video ready: " + videoURL)
}

// Status returns a snapshot of the current state.
func (t *Tracker) Status() types.JobStatus {
	t.mu.RLock()
	defer t.mu.RUnlock()

	progress := 0.0
	if t.totalFrames > 0 {
		progress = float64(t.framesDone) / float64(t.totalFrames)
	}
	if t.state == types.JobCompleted {
		progress = 1.0
	}

	st := types.JobStatus{
		ContentID:   t.contentID,
		State:       t.state,
		FramesDone:  t.framesDone,
		TotalFrames: t.totalFrames,
		Progress:    progress,
		VideoURL:    t.videoURL,
		Logs:        append([]types.LogEntry{}, t.logs...),
	}
	if t.lastErr != nil {
		st.Error = t.lastErr.Error()
	}
	return st
}
