package tui

import "time"

// Messages for the tea program (polling-based)

// StatusUpdateMsg is sent when we receive job status from the server
type StatusUpdateMsg struct {
	Status *StatusResponse
	Err    error
}

// ContentLoadedMsg is sent when the content record has been fetched
type ContentLoadedMsg struct {
	Title string
	Err   error
}

// TickMsg is sent periodically to trigger polling
type TickMsg struct {
	Time time.Time
}

// GenerateTriggeredMsg is sent when the user triggers generation
type GenerateTriggeredMsg struct {
	Err error
}
