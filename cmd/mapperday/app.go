package main

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/cliexp/internal/config"
	"github.com/alexisbeaulieu97/cliexp/internal/logger"
	"github.com/alexisbeaulieu97/cliexp/internal/scanner"
	"github.com/alexisbeaulieu97/cliexp/internal/stylesheet"
)

// appContext bundles the services a command needs.
type appContext struct {
	Config  *config.Config
	Logger  *logger.Logger
	Sheet   *stylesheet.Stylesheet
	Scanner *scanner.Scanner
}

func loadApp(cmd *cobra.Command, flags *rootFlags) (*appContext, error) {
	return buildApp(flags, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// buildApp loads configuration, then builds and freezes the scanner
// stylesheet bound to out.
func buildApp(flags *rootFlags, out, errOut io.Writer) (*appContext, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if flags.color != "" {
		cfg.Output.Color = flags.color
		if err := config.Validate(cfg); err != nil {
			return nil, fmt.Errorf("--color: %w", err)
		}
	}

	level := cfg.Logging.Level
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, HumanReadable: cfg.Logging.HumanReadable, Writer: errOut})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	if flags.please {
		log.Debug("asked nicely")
	}

	sheet := stylesheet.New(sheetOptions(cfg.Output.Color, out, log)...)
	scanner.RegisterStyles(sheet)
	sheet.Freeze()

	events, err := cfg.ScannerEvents()
	if err != nil {
		return nil, fmt.Errorf("scanner events: %w", err)
	}

	sc, err := scanner.New(sheet, scanner.Options{Events: events, Seed: cfg.Scanner.Seed, Logger: log})
	if err != nil {
		return nil, fmt.Errorf("create scanner: %w", err)
	}

	log.WithFields(map[string]any{
		"styles": sheet.Len(),
		"events": len(events),
		"color":  cfg.Output.Color,
	}).Debug("application ready")

	return &appContext{Config: cfg, Logger: log, Sheet: sheet, Scanner: sc}, nil
}

func sheetOptions(colorMode string, out io.Writer, log *logger.Logger) []stylesheet.Option {
	opts := []stylesheet.Option{stylesheet.WithOutput(out), stylesheet.WithLogger(log)}
	switch colorMode {
	case config.ColorAlways:
		opts = append(opts, stylesheet.WithColorProfile(termenv.ANSI))
	case config.ColorNever:
		opts = append(opts, stylesheet.WithColorProfile(termenv.Ascii))
	}
	return opts
}
