package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/abhisek/worksheetz/internal/api"
	"github.com/abhisek/worksheetz/internal/worksheet"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve worksheet generation over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.Addr = addr
		}
		quiet, _ := cmd.Flags().GetBool("quiet")

		opts := api.Options{
			Builder:  worksheet.NewBuilder(logger),
			Logger:   logger,
			PageSize: cfg.PageSize,
			FontPath: cfg.FontPath,
		}
		if !quiet {
			opts.AccessLog = os.Stderr
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return api.New(opts).Run(ctx, cfg.Addr)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (default from WORKSHEETZ_ADDR, else :8080)")
	serveCmd.Flags().Bool("quiet", false, "Disable the request log")
}
