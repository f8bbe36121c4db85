package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/cliexp/internal/scanner"
	"github.com/alexisbeaulieu97/cliexp/internal/tui/components"
)

// View renders the current state of the model.
func (m Model) View() string {
	feed := m.renderFeed()
	summary := components.NewSummary(components.SummaryData{Counts: m.counts, Stopped: m.quitting}).View()
	if m.quitting {
		// Leave only the readings and their tally once the program exits.
		if feed == "" {
			return ""
		}
		return feed + "\n\n" + summary + "\n"
	}

	header := fmt.Sprintf("%s %s %s",
		m.spinner.View(),
		titleStyle.Render("Long range scanner"),
		countStyle.Render(fmt.Sprintf("(%d readings)", m.scans)),
	)

	sections := []string{header}
	if feed != "" {
		sections = append(sections, feedStyle.Render(feed))
	}
	if summary != "" {
		sections = append(sections, summaryStyle.Render(summary))
	}
	sections = append(sections, hintStyle.Render("q to quit"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderFeed() string {
	lines := make([]string, 0, len(m.readings))
	for _, r := range m.readings {
		lines = append(lines, fmt.Sprintf(" %s %s", SeverityIcon(r.event.Severity), r.rendered))
	}
	return strings.Join(lines, "\n")
}

// SeverityIcon returns the marker shown next to a reading.
func SeverityIcon(sev scanner.Severity) string {
	switch sev {
	case scanner.SeverityNotice:
		return "•"
	case scanner.SeverityWarning:
		return "▲"
	case scanner.SeverityAlert:
		return "✗"
	default:
		return "·"
	}
}
