package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// pollStatus creates a command to poll the job status endpoint
func pollStatus(client *APIClient, contentID int) tea.Cmd {
	return func() tea.Msg {
		status, err := client.GetStatus(contentID)
		return StatusUpdateMsg{
			Status: status,
			Err:    err,
		}
	}
}

// fetchContent creates a command to load the content record
func fetchContent(client *APIClient, contentID int) tea.Cmd {
	return func() tea.Msg {
		content, err := client.GetContent(contentID)
		if err != nil {
			return ContentLoadedMsg{Err: err}
		}
		return ContentLoadedMsg{Title: content.Title}
	}
}

// triggerGenerate creates a command to start video generation
func triggerGenerate(client *APIClient, contentID int) tea.Cmd {
	return func() tea.Msg {
		err := client.Generate(contentID)
		return GenerateTriggeredMsg{Err: err}
	}
}

// tickCmd creates a command that ticks every 500ms for polling
func tickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg{Time: t}
	})
}
