package tui

import (
	"fmt"
	"strings"
)

const progressBarWidth = 30

// View implements tea.Model interface
func (m Model) View() string {
	var b strings.Builder

	// Title
	title := "🎬 KidReel Generation Demo"
	if m.ContentTitle != "" {
		title = fmt.Sprintf("🎬 KidReel Generation Demo — %s", m.ContentTitle)
	}
	b.WriteString(TitleStyle.Render(title))
	b.WriteString("\n\n")

	// Current state
	b.WriteString(m.getStateText())
	b.WriteString("\n\n")

	// Progress bar while frames are being rendered
	if m.TotalFrames > 0 && m.State != StateIdle && m.State != StatePending {
		b.WriteString(renderProgressBar(m.Progress))
		b.WriteString(InfoStyle.Render(fmt.Sprintf("  %d / %d frames", m.FramesDone, m.TotalFrames)))
		b.WriteString("\n\n")
	}

	// Logs
	if len(m.Logs) > 0 {
		b.WriteString(InfoStyle.Render("📝 Recent Activity:"))
		b.WriteString("\n")
		logs := m.Logs
		if len(logs) > 10 {
			logs = logs[len(logs)-10:]
		}
		for _, entry := range logs {
			line := fmt.Sprintf("   %s %s", entry.Timestamp.Format("15:04:05"), entry.Message)
			b.WriteString(InfoStyle.Render(line))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	// Result
	if m.State == StateComplete && m.VideoURL != "" {
		result := HighlightStyle.Render("Video Ready") + "\n\n" +
			fmt.Sprintf("URL: %s", StatusStyle.Render(m.VideoURL))
		b.WriteString(BoxStyle.Render(result))
		b.WriteString("\n\n")
	}

	// Help text
	if m.State == StateIdle && !m.Triggered {
		b.WriteString(InfoStyle.Render("Press 'g' to generate | Press 'q' or Ctrl+C to quit"))
	} else if m.State != StateComplete {
		b.WriteString(InfoStyle.Render("Press 'q' or Ctrl+C to quit"))
	} else {
		b.WriteString(HighlightStyle.Render("Press 'q' or Ctrl+C to exit"))
	}

	return b.String()
}

// renderProgressBar draws a fixed-width bar for a 0..1 fraction
func renderProgressBar(fraction float64) string {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	done := int(fraction * float64(progressBarWidth))
	rest := progressBarWidth - done
	return ProgressDoneStyle.Render(strings.Repeat("█", done)) +
		ProgressRestStyle.Render(strings.Repeat("░", rest))
}
