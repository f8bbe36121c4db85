package config

import (
	"time"

	"github.com/alexisbeaulieu97/cliexp/internal/scanner"
)

// Color modes accepted by Output.Color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

const (
	defaultInterval = 2 * time.Second
	defaultHistory  = 10
)

// Config represents the mapperday configuration document.
type Config struct {
	Logging Logging `yaml:"logging"`
	Output  Output  `yaml:"output"`
	Scanner Scanner `yaml:"scanner"`
}

// Logging controls diagnostic output written to stderr.
type Logging struct {
	Level         string `yaml:"level" validate:"required,log_level"`
	HumanReadable bool   `yaml:"human_readable"`
}

// Output controls how styled text reaches stdout.
type Output struct {
	Color string `yaml:"color" validate:"required,oneof=auto always never"`
}

// Scanner configures the long range scanner.
type Scanner struct {
	Seed     uint64        `yaml:"seed"`
	Interval time.Duration `yaml:"interval" validate:"min=100ms,max=1h"`
	History  int           `yaml:"history" validate:"min=1,max=100"`
	Events   []Event       `yaml:"events" validate:"required,min=1,dive"`
}

// Event is a configured scanner reading.
type Event struct {
	Severity string `yaml:"severity" validate:"required,severity"`
	Message  string `yaml:"message" validate:"required,max=200"`
}

// Default returns the built-in configuration.
func Default() *Config {
	defaults := scanner.DefaultEvents()
	events := make([]Event, len(defaults))
	for i, e := range defaults {
		events[i] = Event{Severity: e.Severity.String(), Message: e.Message}
	}

	return &Config{
		Logging: Logging{Level: "warn", HumanReadable: true},
		Output:  Output{Color: ColorAuto},
		Scanner: Scanner{
			Interval: defaultInterval,
			History:  defaultHistory,
			Events:   events,
		},
	}
}

// ScannerEvents converts the configured events into scanner events.
func (c *Config) ScannerEvents() ([]scanner.Event, error) {
	events := make([]scanner.Event, len(c.Scanner.Events))
	for i, e := range c.Scanner.Events {
		sev, err := scanner.ParseSeverity(e.Severity)
		if err != nil {
			return nil, err
		}
		events[i] = scanner.Event{Severity: sev, Message: e.Message}
	}
	return events, nil
}
