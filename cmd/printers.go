package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var printersCmd = &cobra.Command{
	Use:   "printers",
	Short: "List the destinations worksheets can be sent to",
	Long: `Search for printers for the configured scan window and list each one
as it is found. "Save as PDF" is always listed last.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		window, _ := cmd.Flags().GetDuration("window")
		if window <= 0 {
			window = cfg.ScanWindow
		}

		ch, err := newScanner(cfg, logger).Scan(cmd.Context(), window)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-32s  %s\n", "ID", "Name")
		n := 0
		for d := range ch {
			fmt.Fprintf(out, "%-32s  %s\n", d.ID, d.Name)
			n++
		}
		fmt.Fprintf(out, "\n%d destination(s)\n", n)
		return nil
	},
}

func init() {
	printersCmd.Flags().Duration("window", 0, "How long to search (default from WORKSHEETZ_SCAN_WINDOW)")
}
