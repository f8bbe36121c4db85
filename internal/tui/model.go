package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/cliexp/internal/scanner"
)

const (
	defaultInterval = 2 * time.Second
	defaultHistory  = 10
)

// EventSource supplies scanner readings and renders them.
type EventSource interface {
	Next() scanner.Event
	Format(e scanner.Event) string
}

// Options configures the watch model.
type Options struct {
	Interval time.Duration
	History  int
}

type scanMsg struct{}

type reading struct {
	event    scanner.Event
	rendered string
}

// Model is the Bubbletea state for the live scanner view.
type Model struct {
	source   EventSource
	spinner  spinner.Model
	interval time.Duration
	history  int
	readings []reading
	counts   map[scanner.Severity]int
	scans    int
	quitting bool
}

// NewModel constructs a watch model reading from src.
func NewModel(src EventSource, opts Options) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	interval := opts.Interval
	if interval <= 0 {
		interval = defaultInterval
	}
	history := opts.History
	if history <= 0 {
		history = defaultHistory
	}

	return Model{
		source:   src,
		spinner:  s,
		interval: interval,
		history:  history,
		readings: make([]reading, 0, history),
		counts:   make(map[scanner.Severity]int),
	}
}

// Init starts the spinner and takes the first reading immediately.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, func() tea.Msg { return scanMsg{} })
}

// Scans returns the number of readings taken so far.
func (m Model) Scans() int {
	return m.scans
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

func (m Model) nextScan() tea.Cmd {
	return tea.Tick(m.interval, func(time.Time) tea.Msg { return scanMsg{} })
}

func (m *Model) record(e scanner.Event) {
	m.readings = append(m.readings, reading{event: e, rendered: m.source.Format(e)})
	if over := len(m.readings) - m.history; over > 0 {
		m.readings = append(m.readings[:0:0], m.readings[over:]...)
	}
	m.counts[e.Severity]++
	m.scans++
}
