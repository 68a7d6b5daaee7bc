package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model interface
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case TickMsg:
		return m, tea.Batch(pollStatus(m.Client, m.ContentID), tickCmd())
	case StatusUpdateMsg:
		return m.handleStatusUpdate(msg)
	case ContentLoadedMsg:
		return m.handleContentLoaded(msg)
	case GenerateTriggeredMsg:
		return m.handleGenerateTriggered(msg)
	}
	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "g", "G":
		if !m.Triggered && (m.State == StateIdle || m.State == StatePending || m.State == StateError) {
			m.Triggered = true
			m.Err = nil
			return m, triggerGenerate(m.Client, m.ContentID)
		}
	}
	return m, nil
}

// handleStatusUpdate syncs local state from the server snapshot
func (m Model) handleStatusUpdate(msg StatusUpdateMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.Connected = false
		return m, nil
	}
	m.Connected = true

	status := msg.Status
	m.State = status.State
	m.Logs = status.Logs
	m.FramesDone = status.FramesDone
	m.TotalFrames = status.TotalFrames
	m.Progress = status.Progress
	m.VideoURL = status.VideoURL
	if status.Error != "" {
		m.Err = errors.New(status.Error)
	}
	return m, nil
}

// handleContentLoaded records the content title for display
func (m Model) handleContentLoaded(msg ContentLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		// The status poll reports connectivity; a missing record just
		// leaves the title blank.
		return m, nil
	}
	m.ContentTitle = msg.Title
	return m, nil
}

// handleGenerateTriggered processes the generation trigger result
func (m Model) handleGenerateTriggered(msg GenerateTriggeredMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.Triggered = false
		m.State = StateError
		m.Err = msg.Err
		return m, nil
	}
	return m, pollStatus(m.Client, m.ContentID)
}
