package tui

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/cliexp/internal/scanner"
)

// scriptedSource replays events in order and tags rendered text.
type scriptedSource struct {
	events []scanner.Event
	next   int
}

func (s *scriptedSource) Next() scanner.Event {
	e := s.events[s.next%len(s.events)]
	s.next++
	return e
}

func (s *scriptedSource) Format(e scanner.Event) string {
	return fmt.Sprintf("[%s] %s", e.Severity.StyleName(), e.Message)
}

func newScriptedSource() *scriptedSource {
	return &scriptedSource{events: scanner.DefaultEvents()}
}

func TestNewModelAppliesDefaults(t *testing.T) {
	m := NewModel(newScriptedSource(), Options{})

	require.Equal(t, defaultInterval, m.interval)
	require.Equal(t, defaultHistory, m.history)
	require.Zero(t, m.Scans())
	require.False(t, m.Quitting())
}

func TestNewModelKeepsOptions(t *testing.T) {
	m := NewModel(newScriptedSource(), Options{Interval: time.Second, History: 3})

	require.Equal(t, time.Second, m.interval)
	require.Equal(t, 3, m.history)
}

func TestModelInitReturnsCommand(t *testing.T) {
	m := NewModel(newScriptedSource(), Options{})
	require.NotNil(t, m.Init())
}
