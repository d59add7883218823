package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/worksheetz/internal/problemgen"
	"github.com/abhisek/worksheetz/internal/worksheet"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List grades, operations and difficulty tags",
	RunE: func(cmd *cobra.Command, args []string) error {
		gradeVal, _ := cmd.Flags().GetString("grade")

		grades := worksheet.Grades()
		if gradeVal != "" {
			g := problemgen.ParseGrade(gradeVal)
			if g == problemgen.GradeUnknown {
				return fmt.Errorf("unknown grade %q", gradeVal)
			}
			grades = []worksheet.GradeOption{{Grade: g, Name: g.DisplayName()}}
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-14s  %-10s  %-12s  %s\n", "Grade", "ID", "Operation", "Difficulty tags")
		fmt.Fprintln(out, strings.Repeat("─", 72))
		for _, g := range grades {
			for _, op := range worksheet.Operations(g.Grade) {
				var tags []string
				for _, d := range worksheet.DifficultyOptions(g.Grade, op.Operation) {
					tags = append(tags, d.Tag)
				}
				fmt.Fprintf(out, "%-14s  %-10s  %-12s  %s\n",
					g.Name, g.Grade, op.Operation, strings.Join(tags, ", "))
			}
		}
		return nil
	},
}

func init() {
	topicsCmd.Flags().String("grade", "", "Only show this grade (pre, k, 1 or 2)")
}
