package stylesheet

import (
	"fmt"
	"strings"
)

// Transformation is a text attribute applied independently of color.
type Transformation int

const (
	Blink Transformation = iota
	Bold
	Italic
	Underlined
)

var transformations = [...]Transformation{Blink, Bold, Italic, Underlined}

// Transformations returns every supported transformation.
func Transformations() []Transformation {
	return append([]Transformation(nil), transformations[:]...)
}

func (t Transformation) String() string {
	switch t {
	case Blink:
		return "blink"
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	case Underlined:
		return "underlined"
	default:
		return fmt.Sprintf("transformation(%d)", int(t))
	}
}

// Valid reports whether t is one of the declared transformations.
func (t Transformation) Valid() bool {
	return t >= Blink && t <= Underlined
}

// ParseTransformation maps a case-insensitive name to a Transformation.
func ParseTransformation(name string) (Transformation, error) {
	norm := strings.ToLower(strings.TrimSpace(name))
	if norm == "underline" {
		norm = "underlined"
	}
	for _, t := range transformations {
		if t.String() == norm {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown transformation %q", name)
}

// Color is one of the eight basic terminal colors, or DefaultColor which
// explicitly keeps the terminal's own color.
type Color int

const (
	DefaultColor Color = iota
	Black
	White
	Red
	Green
	Blue
	Cyan
	Magenta
	Yellow
)

var colors = [...]Color{DefaultColor, Black, White, Red, Green, Blue, Cyan, Magenta, Yellow}

// Colors returns every supported color, DefaultColor first.
func Colors() []Color {
	return append([]Color(nil), colors[:]...)
}

func (c Color) String() string {
	switch c {
	case DefaultColor:
		return "default"
	case Black:
		return "black"
	case White:
		return "white"
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	case Cyan:
		return "cyan"
	case Magenta:
		return "magenta"
	case Yellow:
		return "yellow"
	default:
		return fmt.Sprintf("color(%d)", int(c))
	}
}

// Valid reports whether c is one of the declared colors.
func (c Color) Valid() bool {
	return c >= DefaultColor && c <= Yellow
}

// Ptr returns a pointer to a copy of c, for use in Definition literals.
func (c Color) Ptr() *Color {
	return &c
}

// ParseColor maps a case-insensitive name to a Color.
func ParseColor(name string) (Color, error) {
	norm := strings.ToLower(strings.TrimSpace(name))
	for _, c := range colors {
		if c.String() == norm {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown color %q", name)
}

// Definition describes what a style should look like before it is resolved.
// A nil Foreground or Background leaves the terminal default in place.
type Definition struct {
	Transformations []Transformation
	Foreground      *Color
	Background      *Color
}

func (d Definition) clone() Definition {
	out := Definition{Transformations: append([]Transformation(nil), d.Transformations...)}
	if d.Foreground != nil {
		out.Foreground = d.Foreground.Ptr()
	}
	if d.Background != nil {
		out.Background = d.Background.Ptr()
	}
	return out
}

func (d Definition) validate() error {
	for _, t := range d.Transformations {
		if !t.Valid() {
			return fmt.Errorf("invalid %s", t)
		}
	}
	if d.Foreground != nil && !d.Foreground.Valid() {
		return fmt.Errorf("invalid foreground %s", *d.Foreground)
	}
	if d.Background != nil && !d.Background.Valid() {
		return fmt.Errorf("invalid background %s", *d.Background)
	}
	return nil
}
