package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/abhisek/worksheetz/internal/app"
	"github.com/abhisek/worksheetz/internal/config"
	"github.com/abhisek/worksheetz/internal/printer"
	"github.com/abhisek/worksheetz/internal/wizard"
	"github.com/abhisek/worksheetz/internal/worksheet"
)

// runApp builds the shared services and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, logger, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	// The TUI owns the terminal; keep routine logs out of it.
	if cfg.LogLevel < slog.LevelWarn {
		cfg.LogLevel = slog.LevelWarn
		logger = cfg.NewLogger()
	}

	skip, _ := cmd.Flags().GetBool("no-splash")
	return app.Run(app.Options{
		Env:         newEnv(cfg, logger),
		SkipWelcome: skip,
	})
}

func newEnv(cfg config.Config, logger *slog.Logger) *wizard.Env {
	opts := printer.DefaultOptions()
	opts.PageSize = cfg.PageSize
	opts.Color = cfg.Color

	return &wizard.Env{
		Builder:       worksheet.NewBuilder(logger),
		Scanner:       newScanner(cfg, logger),
		Dispatcher:    newDispatcher(cfg, logger),
		ScanWindow:    cfg.ScanWindow,
		PrintDefaults: opts,
		Seed:          cfg.Seed,
	}
}

func newScanner(cfg config.Config, logger *slog.Logger) *printer.Scanner {
	return printer.NewScanner(logger,
		printer.LPStatSource{Logger: logger},
		printer.StaticSource{Names: cfg.Printers},
	)
}

func newDispatcher(cfg config.Config, logger *slog.Logger) *printer.Dispatcher {
	return &printer.Dispatcher{
		OutDir:   cfg.OutDir,
		FontPath: cfg.FontPath,
		Logger:   logger,
	}
}
