package stylesheet

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Style is a resolved, renderable style. It is created by a Stylesheet and
// cannot be changed afterwards.
type Style struct {
	def   Definition
	style lipgloss.Style
}

// Render decorates msg. Lines are styled one at a time so multi-line
// messages keep their original line widths.
func (s Style) Render(msg string) string {
	if msg == "" {
		return ""
	}
	if !strings.Contains(msg, "\n") {
		return s.style.Render(msg)
	}

	lines := strings.Split(msg, "\n")
	for i, line := range lines {
		if line == "" {
			continue
		}
		lines[i] = s.style.Render(line)
	}
	return strings.Join(lines, "\n")
}

// Definition returns a copy of the definition the style was resolved from.
func (s Style) Definition() Definition {
	return s.def.clone()
}

// Has reports whether the style applies transformation t.
func (s Style) Has(t Transformation) bool {
	switch t {
	case Blink:
		return s.style.GetBlink()
	case Bold:
		return s.style.GetBold()
	case Italic:
		return s.style.GetItalic()
	case Underlined:
		return s.style.GetUnderline()
	default:
		return false
	}
}
