package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/worksheetz/internal/api"
	"github.com/abhisek/worksheetz/internal/problemgen"
	"github.com/abhisek/worksheetz/internal/worksheet"
)

// addRequestFlags registers the worksheet choices shared by generate and
// print.
func addRequestFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("grade", "", "Grade: pre, k, 1 or 2")
	f.String("operation", "", "add, subtract, multiply, divide, numbers, alphabets, shapes or colors")
	f.String("difficulty", "", "Difficulty tag, e.g. 1-20 or uppercase (see `worksheetz topics`)")
	f.String("layout", "worksheet_only", "worksheet_only, score_box or drawing_area")
	f.String("coloring", "", "Coloring item for the drawing area, e.g. \"Cat 🐱\" or none")
	f.String("name", "", "Student name printed on the sheet")
	f.Int("count", 0, "Number of problems (0 fits the page)")
	f.String("request", "", "Read the request as JSON from a file (- for stdin)")
}

// requestFromFlags returns the request described by --request or by the
// individual flags. The root --seed applies when the request has none.
func requestFromFlags(cmd *cobra.Command, seed string) (worksheet.Request, error) {
	f := cmd.Flags()

	if path, _ := f.GetString("request"); path != "" {
		raw, err := readInput(cmd, path)
		if err != nil {
			return worksheet.Request{}, err
		}
		req, err := api.DecodeRequest(raw)
		if err != nil {
			return worksheet.Request{}, err
		}
		if req.Seed == "" {
			req.Seed = seed
		}
		return req, nil
	}

	grade, _ := f.GetString("grade")
	op, _ := f.GetString("operation")
	if grade == "" || op == "" {
		return worksheet.Request{}, fmt.Errorf("--grade and --operation are required (or use --request)")
	}

	req := worksheet.Request{
		Grade:     problemgen.ParseGrade(grade),
		Operation: problemgen.ParseOperation(op),
		Seed:      seed,
	}
	if req.Operation == problemgen.OpUnknown {
		return worksheet.Request{}, fmt.Errorf("unknown operation %q", op)
	}
	req.Difficulty, _ = f.GetString("difficulty")
	req.ColoringItem, _ = f.GetString("coloring")
	req.StudentName, _ = f.GetString("name")
	req.Count, _ = f.GetInt("count")
	layout, _ := f.GetString("layout")
	req.Layout = worksheet.ParseLayout(layout)

	return req.Normalize(), nil
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read request: %w", err)
	}
	return raw, nil
}
