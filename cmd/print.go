package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/worksheetz/internal/printer"
	"github.com/abhisek/worksheetz/internal/worksheet"
)

var printCmd = &cobra.Command{
	Use:   "print",
	Short: "Generate a worksheet and send it to a printer or PDF file",
	Example: `  worksheetz print --grade k --operation subtract --printer Office_Laser --copies 3
  worksheetz print --grade 2 --operation multiply --layout drawing_area --coloring "Robot 🤖"`,
	RunE: runPrint,
}

func init() {
	addRequestFlags(printCmd)
	printCmd.Flags().String("printer", printer.SaveAsPDF.Name, "Printer queue, or \"Save as PDF\"")
	printCmd.Flags().Int("copies", 1, "Number of copies")
	printCmd.Flags().Bool("answer-key", false, "Add an answer key page")
}

func runPrint(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	req, err := requestFromFlags(cmd, cfg.Seed)
	if err != nil {
		return err
	}

	name, _ := cmd.Flags().GetString("printer")
	copies, _ := cmd.Flags().GetInt("copies")
	answerKey, _ := cmd.Flags().GetBool("answer-key")

	ws := worksheet.NewBuilder(logger).Build(req)
	receipt, err := newDispatcher(cfg, logger).Print(cmd.Context(), printer.Job{
		Document:    ws.Document,
		Destination: printer.Resolve(name),
		Options: printer.Options{
			Color:     cfg.Color,
			PageSize:  cfg.PageSize,
			Copies:    copies,
			AnswerKey: answerKey,
		},
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if receipt.Path != "" {
		fmt.Fprintf(out, "Saved %s\n", receipt.Path)
	} else {
		fmt.Fprintf(out, "Sent %d copies to %s (request %s)\n", receipt.Copies, receipt.Destination.Name, receipt.SpoolID)
	}
	fmt.Fprintf(out, "Seed: %s\n", ws.Seed)
	return nil
}
