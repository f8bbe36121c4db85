package stylesheet

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/cliexp/internal/logger"
	apperrors "github.com/alexisbeaulieu97/cliexp/pkg/errors"
)

// styleKey separates the reserved default entry from user names, so no
// string passed to AddStyle can replace it.
type styleKey struct {
	name     string
	reserved bool
}

var defaultKey = styleKey{reserved: true}

// Stylesheet maps style names to resolved styles. Populate it with AddStyle,
// optionally Freeze it, then render through it. A frozen Stylesheet is safe
// for concurrent use; an open one is not.
type Stylesheet struct {
	styles   map[styleKey]Style
	frozen   bool
	out      io.Writer
	renderer *lipgloss.Renderer
	log      *logger.Logger
}

// New returns a Stylesheet holding only the default style.
func New(opts ...Option) *Stylesheet {
	cfg := defaultSettings()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	renderer := lipgloss.NewRenderer(cfg.out)
	if cfg.profile != nil {
		renderer.SetColorProfile(*cfg.profile)
	}

	s := &Stylesheet{
		styles:   make(map[styleKey]Style, 1),
		out:      cfg.out,
		renderer: renderer,
		log:      cfg.log.WithComponent("stylesheet"),
	}
	s.styles[defaultKey] = s.resolve(Definition{})
	return s
}

// AddStyle resolves def and stores it under name, replacing any previous
// style with that name. It panics with a *errors.MisuseError if the sheet is
// frozen or def holds an undeclared color or transformation; the sheet is
// left unchanged in both cases.
func (s *Stylesheet) AddStyle(name string, def Definition) {
	if s.frozen {
		s.misuse("add_style", fmt.Sprintf("stylesheet is frozen, cannot register %q", name))
	}
	if err := def.validate(); err != nil {
		s.misuse("add_style", fmt.Sprintf("style %q: %v", name, err))
	}

	key := styleKey{name: name}
	_, replaced := s.styles[key]
	s.styles[key] = s.resolve(def.clone())

	s.log.DebugFields("style registered", map[string]any{
		"style":    name,
		"replaced": replaced,
	})
}

// Freeze seals the sheet against further AddStyle calls. Repeated calls are
// no-ops.
func (s *Stylesheet) Freeze() {
	if s.frozen {
		return
	}
	s.frozen = true
	s.log.DebugFields("stylesheet frozen", map[string]any{"styles": len(s.styles)})
}

// Frozen reports whether Freeze has been called.
func (s *Stylesheet) Frozen() bool {
	return s.frozen
}

// Len returns the number of entries, counting the default style.
func (s *Stylesheet) Len() int {
	return len(s.styles)
}

// Names returns the registered style names in sorted order. The default
// style is not included.
func (s *Stylesheet) Names() []string {
	names := make([]string, 0, len(s.styles))
	for key := range s.styles {
		if key.reserved {
			continue
		}
		names = append(names, key.name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the style registered under name without falling back.
func (s *Stylesheet) Lookup(name string) (Style, bool) {
	style, ok := s.styles[styleKey{name: name}]
	return style, ok
}

// Default returns the unstyled fallback entry.
func (s *Stylesheet) Default() Style {
	return s.styles[defaultKey]
}

// Resolve returns the style registered under name, or the default style.
func (s *Stylesheet) Resolve(name string) Style {
	if style, ok := s.Lookup(name); ok {
		return style
	}
	return s.Default()
}

// Sprint returns msg decorated with the style resolved for name.
func (s *Stylesheet) Sprint(name, msg string) string {
	if s == nil {
		return msg
	}
	return s.Resolve(name).Render(msg)
}

// Print writes msg decorated with the named style, without a line terminator.
func (s *Stylesheet) Print(name, msg string) {
	s.write(s.Sprint(name, msg))
}

// Println writes msg decorated with the named style followed by a newline.
// The newline is written outside the styled region.
func (s *Stylesheet) Println(name, msg string) {
	s.write(s.Sprint(name, msg) + "\n")
}

func (s *Stylesheet) write(text string) {
	var out io.Writer = os.Stdout
	if s != nil && s.out != nil {
		out = s.out
	}
	// Output failures belong to whoever owns the stream.
	_, _ = io.WriteString(out, text)
}

func (s *Stylesheet) resolve(def Definition) Style {
	return Style{def: def, style: compose(s.renderer.NewStyle(), def)}
}

func (s *Stylesheet) misuse(op, message string) {
	err := apperrors.NewMisuseError(op, message)
	s.log.Error(err, "stylesheet misuse")
	panic(err)
}
