package scanner

import (
	"errors"
	"math/rand/v2"
	"time"

	"github.com/alexisbeaulieu97/cliexp/internal/logger"
)

// Printer renders messages under named styles.
type Printer interface {
	Println(style, msg string)
	Sprint(style, msg string) string
}

// Options configures a Scanner.
type Options struct {
	Events []Event
	// Seed makes picks reproducible. Zero seeds from the clock.
	Seed   uint64
	Logger *logger.Logger
}

// Scanner picks random events and renders them through a Printer.
type Scanner struct {
	printer Printer
	events  []Event
	rng     *rand.Rand
	log     *logger.Logger
}

// New constructs a Scanner. When opts.Events is empty the built-in events are
// used.
func New(printer Printer, opts Options) (*Scanner, error) {
	if printer == nil {
		return nil, errors.New("scanner requires a printer")
	}

	events := append([]Event(nil), opts.Events...)
	if len(opts.Events) == 0 {
		events = DefaultEvents()
	}

	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	return &Scanner{
		printer: printer,
		events:  events,
		rng:     rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		log:     log.WithComponent("scanner"),
	}, nil
}

// Events returns a copy of the events the scanner picks from.
func (s *Scanner) Events() []Event {
	return append([]Event(nil), s.events...)
}

// Next picks an event without rendering it.
func (s *Scanner) Next() Event {
	return s.events[s.rng.IntN(len(s.events))]
}

// Format renders e under its severity's style.
func (s *Scanner) Format(e Event) string {
	return s.printer.Sprint(e.Severity.StyleName(), e.Message)
}

// Scan picks an event and prints it on its own line.
func (s *Scanner) Scan() Event {
	e := s.Next()
	s.log.DebugFields("scan", map[string]any{"severity": e.Severity.String()})
	s.printer.Println(e.Severity.StyleName(), e.Message)
	return e
}
