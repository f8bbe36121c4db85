package scanner

import (
	"fmt"
	"strings"
)

// Severity ranks a scanner event. Each severity renders under the style
// name of the same spelling.
type Severity int

const (
	SeverityNormal Severity = iota
	SeverityNotice
	SeverityWarning
	SeverityAlert
)

var severities = [...]Severity{SeverityNormal, SeverityNotice, SeverityWarning, SeverityAlert}

// Severities returns every severity, least urgent first.
func Severities() []Severity {
	return append([]Severity(nil), severities[:]...)
}

func (s Severity) String() string {
	switch s {
	case SeverityNormal:
		return "normal"
	case SeverityNotice:
		return "notice"
	case SeverityWarning:
		return "warning"
	case SeverityAlert:
		return "alert"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// StyleName is the stylesheet entry used to render events of this severity.
func (s Severity) StyleName() string {
	return s.String()
}

// ParseSeverity maps a case-insensitive name to a Severity.
func ParseSeverity(name string) (Severity, error) {
	norm := strings.ToLower(strings.TrimSpace(name))
	for _, s := range severities {
		if s.String() == norm {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown severity %q", name)
}

// Event is a single scanner reading.
type Event struct {
	Severity Severity
	Message  string
}

// DefaultEvents returns the built-in scanner readings.
func DefaultEvents() []Event {
	return []Event{
		{Severity: SeverityNormal, Message: "All quiet on the long range scanners."},
		{Severity: SeverityNotice, Message: "Subspace anomaly detected in sector 7."},
		{Severity: SeverityWarning, Message: "Unidentified vessel on an intercept course."},
		{Severity: SeverityAlert, Message: "ALERT: Romulan ship approaching!"},
	}
}
