package scanner

import "github.com/alexisbeaulieu97/cliexp/internal/stylesheet"

// Registrar accepts named style definitions.
type Registrar interface {
	AddStyle(name string, def stylesheet.Definition)
}

// Palette returns the style definition for every severity.
func Palette() map[Severity]stylesheet.Definition {
	return map[Severity]stylesheet.Definition{
		SeverityNormal: {},
		SeverityNotice: {
			Foreground: stylesheet.Cyan.Ptr(),
		},
		SeverityWarning: {
			Transformations: []stylesheet.Transformation{stylesheet.Bold},
			Foreground:      stylesheet.Yellow.Ptr(),
		},
		SeverityAlert: {
			Transformations: []stylesheet.Transformation{stylesheet.Bold},
			Foreground:      stylesheet.Red.Ptr(),
		},
	}
}

// RegisterStyles adds the scanner palette to r under each severity's style
// name.
func RegisterStyles(r Registrar) {
	palette := Palette()
	for _, sev := range severities {
		r.AddStyle(sev.StyleName(), palette[sev])
	}
}
