package pipeline

import "sync"

// Registry maps content ids to their most recent job tracker. Re-generation
// replaces the tracker: a job, once started, runs to completion or failure.
type Registry struct {
	mu       sync.RWMutex
	trackers map[int]*Tracker
}

func NewRegistry() *Registry {
	return &Registry{trackers: make(map[int]*Tracker)}
}

// Start registers a fresh tracker for the content id and returns it.
func (r *Registry) Start(contentID int) *Tracker {
	r.mu.Lock()
	defer r.mu.Unlock()
	t := NewTracker(contentID)
	r.trackers[contentID] = t
	return t
}

// Get returns the tracker for a content id, if any.
func (r *Registry) Get(contentID int) (*Tracker, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.trackers[contentID]
	return t, ok
}
