package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/abhisek/worksheetz/internal/config"
	"github.com/abhisek/worksheetz/internal/render"
)

var rootCmd = &cobra.Command{
	Use:   "worksheetz",
	Short: "Printable math worksheets for young learners",
	Long:  "Worksheetz builds printable practice sheets for preschool through 2nd grade and sends them to a printer or a PDF file.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("seed", "", "Seed for reproducible problems (overrides WORKSHEETZ_SEED)")
	pf.String("out-dir", "", "Directory for saved PDFs (overrides WORKSHEETZ_OUT_DIR)")
	pf.String("page-size", "", "Paper size: letter or a4 (overrides WORKSHEETZ_PAGE_SIZE)")
	pf.Bool("mono", false, "Print in black and white")
	pf.String("font", "", "TTF font for full Unicode PDFs (overrides WORKSHEETZ_FONT)")
	pf.String("log-level", "", "Log level: debug, info, warn or error")

	rootCmd.Flags().Bool("no-splash", false, "Skip the welcome animation")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(printCmd)
	rootCmd.AddCommand(printersCmd)
	rootCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads WORKSHEETZ_* settings and applies command-line flags on
// top. Env warnings are logged once the logger exists.
func loadConfig(cmd *cobra.Command) (config.Config, *slog.Logger, error) {
	cfg, warnings := config.FromEnv()
	flags := cmd.Flags()

	if v, _ := flags.GetString("seed"); v != "" {
		cfg.Seed = v
	}
	if v, _ := flags.GetString("out-dir"); v != "" {
		cfg.OutDir = v
	}
	if v, _ := flags.GetString("page-size"); v != "" {
		ps, err := render.ParsePageSize(v)
		if err != nil {
			return cfg, nil, err
		}
		cfg.PageSize = ps
	}
	if mono, _ := flags.GetBool("mono"); mono {
		cfg.Color = false
	}
	if v, _ := flags.GetString("font"); v != "" {
		cfg.FontPath = v
	}
	if v, _ := flags.GetString("log-level"); v != "" {
		lvl, err := config.ParseLevel(v)
		if err != nil {
			return cfg, nil, fmt.Errorf("--log-level: %w", err)
		}
		cfg.LogLevel = lvl
	}

	logger := cfg.NewLogger()
	for _, w := range warnings {
		logger.Warn("config: " + w)
	}
	return cfg, logger, nil
}
