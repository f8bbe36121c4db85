package scanner

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/cliexp/internal/stylesheet"
)

type printed struct {
	style string
	msg   string
}

type recordingPrinter struct {
	lines []printed
}

func (p *recordingPrinter) Println(style, msg string) {
	p.lines = append(p.lines, printed{style: style, msg: msg})
}

func (p *recordingPrinter) Sprint(style, msg string) string {
	return "<" + style + ">" + msg
}

func TestNewRequiresPrinter(t *testing.T) {
	t.Parallel()

	_, err := New(nil, Options{})
	require.Error(t, err)
}

func TestNewFallsBackToDefaultEvents(t *testing.T) {
	t.Parallel()

	s, err := New(&recordingPrinter{}, Options{Seed: 1})
	require.NoError(t, err)
	require.Equal(t, DefaultEvents(), s.Events())
	require.Len(t, s.Events(), 4)
}

func TestSameSeedPicksSameSequence(t *testing.T) {
	t.Parallel()

	a, err := New(&recordingPrinter{}, Options{Seed: 42})
	require.NoError(t, err)
	b, err := New(&recordingPrinter{}, Options{Seed: 42})
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		require.Equal(t, a.Next(), b.Next())
	}
}

func TestNextOnlyReturnsConfiguredEvents(t *testing.T) {
	t.Parallel()

	events := []Event{
		{Severity: SeverityWarning, Message: "one"},
		{Severity: SeverityAlert, Message: "two"},
	}
	s, err := New(&recordingPrinter{}, Options{Events: events, Seed: 7})
	require.NoError(t, err)

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		e := s.Next()
		require.Contains(t, events, e)
		seen[e.Message] = true
	}
	require.Len(t, seen, 2)
}

func TestScanPrintsUnderSeverityStyle(t *testing.T) {
	t.Parallel()

	printer := &recordingPrinter{}
	s, err := New(printer, Options{Events: []Event{{Severity: SeverityAlert, Message: "ALERT: Romulan ship approaching!"}}, Seed: 3})
	require.NoError(t, err)

	e := s.Scan()
	require.Equal(t, SeverityAlert, e.Severity)
	require.Equal(t, []printed{{style: "alert", msg: "ALERT: Romulan ship approaching!"}}, printer.lines)
	require.Equal(t, "<alert>ALERT: Romulan ship approaching!", s.Format(e))
}

func TestScanThroughStylesheet(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	sheet := stylesheet.New(stylesheet.WithOutput(buf), stylesheet.WithColorProfile(termenv.ANSI))
	RegisterStyles(sheet)
	sheet.Freeze()

	s, err := New(sheet, Options{Events: []Event{{Severity: SeverityAlert, Message: "ALERT"}}, Seed: 9})
	require.NoError(t, err)
	s.Scan()

	out := buf.String()
	require.True(t, strings.HasSuffix(out, "\n"))
	require.Contains(t, out, "ALERT")
	require.Contains(t, out, "\x1b[1;31m")
}

func TestCallerEventsAreCopied(t *testing.T) {
	t.Parallel()

	events := []Event{{Severity: SeverityNotice, Message: "original"}}
	s, err := New(&recordingPrinter{}, Options{Events: events, Seed: 1})
	require.NoError(t, err)

	events[0].Message = "mutated"
	require.Equal(t, "original", s.Next().Message)
}
