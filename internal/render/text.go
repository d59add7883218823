package render

import (
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/worksheetz/internal/worksheet"
)

const defaultTextWidth = 72

// Text renders a document for the terminal.
type Text struct {
	Width     int
	AnswerKey bool
}

func (t Text) Render(w io.Writer, doc worksheet.Document, style worksheet.Style) error {
	if _, err := io.WriteString(w, t.String(doc, style)+"\n"); err != nil {
		return fmt.Errorf("write text: %w", err)
	}
	return nil
}

// String returns the rendered document.
func (t Text) String(doc worksheet.Document, style worksheet.Style) string {
	width := t.Width
	if width <= 0 {
		width = defaultTextWidth
	}

	fg := func(hex string) lipgloss.Style {
		s := lipgloss.NewStyle()
		if style.Color {
			s = s.Foreground(lipgloss.Color(hex))
		}
		return s
	}

	parts := []string{
		fg(style.Primary).Bold(true).Width(width).Align(lipgloss.Center).Render(doc.Title),
		fg(style.Secondary).Width(width).Align(lipgloss.Center).Render(doc.Subtitle),
		"",
		fg(style.Text).Render(nameLine(doc)),
		"",
	}
	parts = append(parts, t.grid(doc, fg(style.Text), width)...)

	if caption := panelCaption(doc.Panel); caption != "" {
		parts = append(parts, "", t.panel(doc.Panel, caption, style, width))
	}

	if t.AnswerKey {
		if lines := answerLines(doc); len(lines) > 0 {
			parts = append(parts, "", fg(style.Primary).Bold(true).Render("Answer Key"))
			parts = append(parts, lines...)
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (t Text) grid(doc worksheet.Document, cell lipgloss.Style, width int) []string {
	cols := columns(doc)
	cellWidth := width / cols
	gap := 0
	if doc.FontSize == worksheet.FontLarge {
		gap = 1
	}

	var rows []string
	for start := 0; start < len(doc.Problems); start += cols {
		end := min(start+cols, len(doc.Problems))
		cells := make([]string, 0, cols)
		for i := start; i < end; i++ {
			label := fmt.Sprintf("%2d. %s", i+1, doc.Problems[i])
			cells = append(cells, cell.Width(cellWidth).Render(label))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		for range gap {
			rows = append(rows, "")
		}
	}
	return rows
}

func (t Text) panel(p worksheet.Panel, caption string, style worksheet.Style, width int) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Width(width).
		Padding(0, 1)
	if style.Color {
		box = box.BorderForeground(lipgloss.Color(style.Border))
	}

	body := caption
	switch p.Kind {
	case worksheet.PanelScore:
		body += "    " + strings.Repeat("☆ ", 5)
	case worksheet.PanelDrawing, worksheet.PanelEmptyDrawing:
		body += strings.Repeat("\n", 5)
	}
	return box.Render(body)
}
