package components

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/cliexp/internal/scanner"
)

// SummaryData aggregates reading counts for rendering summaries.
type SummaryData struct {
	Counts  map[scanner.Severity]int
	Stopped bool
}

// Summary renders a textual tally of scanner readings.
type Summary struct {
	data SummaryData
}

// NewSummary creates a new Summary component.
func NewSummary(data SummaryData) Summary {
	return Summary{data: data}
}

// Total returns the number of readings across all severities.
func (s Summary) Total() int {
	total := 0
	for _, n := range s.data.Counts {
		total += n
	}
	return total
}

// View renders the summary, most urgent severity first.
func (s Summary) View() string {
	total := s.Total()
	if total == 0 {
		return ""
	}

	sevs := scanner.Severities()
	parts := make([]string, 0, len(sevs))
	for i := len(sevs) - 1; i >= 0; i-- {
		if n := s.data.Counts[sevs[i]]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s %d", sevs[i], n))
		}
	}

	lines := []string{fmt.Sprintf("Readings: %d (%s)", total, strings.Join(parts, ", "))}
	if s.data.Stopped {
		lines = append(lines, "Scanner stopped")
	}
	return strings.Join(lines, "\n")
}
