package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	apperrors "github.com/alexisbeaulieu97/cliexp/pkg/errors"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		mutate    func(cfg *Config)
		wantField string
	}{
		{name: "defaults are valid", mutate: func(*Config) {}},
		{name: "unknown log level", mutate: func(cfg *Config) { cfg.Logging.Level = "loud" }, wantField: "logging.level"},
		{name: "missing log level", mutate: func(cfg *Config) { cfg.Logging.Level = "" }, wantField: "logging.level"},
		{name: "uppercase log level", mutate: func(cfg *Config) { cfg.Logging.Level = "DEBUG" }},
		{name: "unknown color mode", mutate: func(cfg *Config) { cfg.Output.Color = "sometimes" }, wantField: "output.color"},
		{name: "interval too short", mutate: func(cfg *Config) { cfg.Scanner.Interval = time.Millisecond }, wantField: "scanner.interval"},
		{name: "interval too long", mutate: func(cfg *Config) { cfg.Scanner.Interval = 2 * time.Hour }, wantField: "scanner.interval"},
		{name: "history out of range", mutate: func(cfg *Config) { cfg.Scanner.History = 0 }, wantField: "scanner.history"},
		{name: "no events", mutate: func(cfg *Config) { cfg.Scanner.Events = nil }, wantField: "scanner.events"},
		{name: "empty message", mutate: func(cfg *Config) { cfg.Scanner.Events[1].Message = "" }, wantField: "scanner.events[1].message"},
		{
			name: "duplicate message",
			mutate: func(cfg *Config) {
				cfg.Scanner.Events[2].Message = cfg.Scanner.Events[0].Message
			},
			wantField: "scanner.events[2].message",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg := Default()
			tc.mutate(cfg)

			err := Validate(cfg)
			if tc.wantField == "" {
				require.NoError(t, err)
				return
			}

			var valErr *apperrors.ValidationError
			require.ErrorAs(t, err, &valErr)
			require.Equal(t, tc.wantField, valErr.Field)
		})
	}
}

func TestValidateNil(t *testing.T) {
	t.Parallel()

	var valErr *apperrors.ValidationError
	require.ErrorAs(t, Validate(nil), &valErr)
}
