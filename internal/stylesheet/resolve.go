package stylesheet

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	apperrors "github.com/alexisbeaulieu97/cliexp/pkg/errors"
)

// compose folds a definition onto base: transformations first, then the
// foreground, then the background. Each setter is a flag or a single slot,
// so the input order of transformations cannot change the result.
func compose(base lipgloss.Style, def Definition) lipgloss.Style {
	style := base.TabWidth(lipgloss.NoTabConversion)
	for _, t := range def.Transformations {
		style = applyTransformation(style, t)
	}
	if def.Foreground != nil {
		style = style.Foreground(terminalColor(*def.Foreground))
	}
	if def.Background != nil {
		style = style.Background(terminalColor(*def.Background))
	}
	return style
}

func applyTransformation(style lipgloss.Style, t Transformation) lipgloss.Style {
	switch t {
	case Blink:
		return style.Blink(true)
	case Bold:
		return style.Bold(true)
	case Italic:
		return style.Italic(true)
	case Underlined:
		return style.Underline(true)
	}
	panic(apperrors.NewMisuseError("compose", fmt.Sprintf("unhandled %s", t)))
}

// terminalColor maps a Color to the basic ANSI palette index. DefaultColor
// maps to lipgloss.NoColor so it is selected but renders nothing.
func terminalColor(c Color) lipgloss.TerminalColor {
	switch c {
	case DefaultColor:
		return lipgloss.NoColor{}
	case Black:
		return lipgloss.Color("0")
	case Red:
		return lipgloss.Color("1")
	case Green:
		return lipgloss.Color("2")
	case Yellow:
		return lipgloss.Color("3")
	case Blue:
		return lipgloss.Color("4")
	case Magenta:
		return lipgloss.Color("5")
	case Cyan:
		return lipgloss.Color("6")
	case White:
		return lipgloss.Color("7")
	}
	panic(apperrors.NewMisuseError("compose", fmt.Sprintf("unhandled %s", c)))
}
