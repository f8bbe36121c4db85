package stylesheet

import (
	"io"
	"os"

	"github.com/muesli/termenv"

	"github.com/alexisbeaulieu97/cliexp/internal/logger"
)

// Option customises a Stylesheet at construction time.
type Option func(*settings)

type settings struct {
	out     io.Writer
	profile *termenv.Profile
	log     *logger.Logger
}

// WithOutput directs Print and Println to w instead of stdout.
func WithOutput(w io.Writer) Option {
	return func(s *settings) {
		if w != nil {
			s.out = w
		}
	}
}

// WithColorProfile pins the escape-code profile instead of letting the
// renderer detect it from the output.
func WithColorProfile(p termenv.Profile) Option {
	return func(s *settings) {
		s.profile = &p
	}
}

// WithLogger attaches a logger for registration and misuse diagnostics.
func WithLogger(l *logger.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.log = l
		}
	}
}

func defaultSettings() settings {
	return settings{
		out: os.Stdout,
		log: logger.Nop(),
	}
}
