package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"codeberg.org/go-pdf/fpdf"

	"github.com/abhisek/worksheetz/internal/worksheet"
)

const (
	unicodeFamily = "worksheet"
	ptToMM        = 0.3528
	lineFactor    = 1.6 // cell height as a multiple of the font height
	maxRowMM      = 28.0
	headerGapMM   = 4.0
	answerRowMM   = 7.0
	answerColumns = 3
)

// PDF renders a single worksheet page, plus an optional answer-key page.
// Without FontPath the built-in Helvetica is used and glyphs outside
// Windows-1252 (emoji) are dropped; labels are kept.
type PDF struct {
	PageSize  PageSize
	AnswerKey bool
	FontPath  string
}

func (p PDF) Render(w io.Writer, doc worksheet.Document, style worksheet.Style) error {
	pdf := p.build(doc, style)
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

// build lays out every page without writing the document.
func (p PDF) build(doc worksheet.Document, style worksheet.Style) *fpdf.Fpdf {
	size := "Letter"
	if p.PageSize == PageA4 {
		size = "A4"
	}

	pdf := fpdf.New("P", "mm", size, "")
	pdf.SetMargins(style.MarginMM, style.MarginMM, style.MarginMM)
	pdf.SetAutoPageBreak(false, style.MarginMM)
	pdf.SetTitle(doc.Title, true)
	pdf.SetSubject(doc.Subtitle, true)
	pdf.SetCreator("worksheetz", true)

	family, tr := p.font(pdf, style)
	pdf.AddPage()

	pageW, pageH := pdf.GetPageSize()
	left, top, right, bottom := pdf.GetMargins()
	contentW := pageW - left - right

	// Header.
	setText(pdf, style.Primary)
	pdf.SetFont(family, "B", style.TitleSize)
	pdf.SetXY(left, top)
	pdf.CellFormat(contentW, style.TitleSize*ptToMM*lineFactor, tr(doc.Title), "", 1, "C", false, 0, "")
	setText(pdf, style.Secondary)
	pdf.SetFont(family, "", style.SubtitleSize)
	pdf.CellFormat(contentW, style.SubtitleSize*ptToMM*lineFactor, tr(doc.Subtitle), "", 1, "C", false, 0, "")
	setText(pdf, style.Text)
	pdf.SetFont(family, "", 12)
	pdf.CellFormat(contentW, 10, tr(nameLine(doc)), "", 1, "L", false, 0, "")
	pdf.Ln(headerGapMM)

	// Grid.
	panelH := 0.0
	if doc.Panel.Kind != worksheet.PanelNone && doc.Panel.Kind != "" {
		panelH = style.PanelHeightMM
	}
	gridTop := pdf.GetY()
	cols := columns(doc)
	rows := max(doc.Rows(), 1)
	colW := contentW / float64(cols)
	rowH := min((pageH-bottom-panelH-headerGapMM-gridTop)/float64(rows), maxRowMM)

	fontPt := style.ItemSize(doc.FontSize)
	if fit := rowH / (ptToMM * lineFactor); fontPt > fit {
		fontPt = fit
	}
	pdf.SetFont(family, "", fontPt)
	for i, prob := range doc.Problems {
		x := left + float64(i%cols)*colW
		y := gridTop + float64(i/cols)*rowH
		pdf.SetXY(x, y)
		pdf.CellFormat(colW, rowH, tr(prob.String()), "", 0, "L", false, 0, "")
	}

	if panelH > 0 {
		p.panel(pdf, doc.Panel, style, family, tr, left, pageH-bottom-panelH, contentW, panelH)
	}

	if p.AnswerKey {
		p.answerKey(pdf, doc, style, family, tr, contentW)
	}
	return pdf
}

// font selects the family to use and a translator for strings drawn in it.
func (p PDF) font(pdf *fpdf.Fpdf, style worksheet.Style) (string, func(string) string) {
	if p.FontPath != "" {
		pdf.AddUTF8Font(unicodeFamily, "", p.FontPath)
		pdf.AddUTF8Font(unicodeFamily, "B", p.FontPath)
		return unicodeFamily, func(s string) string { return s }
	}

	family := style.FontFamily
	if family == "" {
		family = "Helvetica"
	}
	translate := pdf.UnicodeTranslatorFromDescriptor("")
	return family, func(s string) string {
		return translate(latinOnly(s))
	}
}

func (p PDF) panel(pdf *fpdf.Fpdf, panel worksheet.Panel, style worksheet.Style, family string, tr func(string) string, x, y, w, h float64) {
	setDraw(pdf, style.Border)
	pdf.SetLineWidth(0.6)
	if panel.Kind == worksheet.PanelDrawing || panel.Kind == worksheet.PanelEmptyDrawing {
		pdf.SetDashPattern([]float64{3, 2}, 0)
	}
	pdf.Rect(x, y, w, h, "D")
	pdf.SetDashPattern([]float64{}, 0)

	setText(pdf, style.Text)
	pdf.SetFont(family, "B", 14)
	pdf.SetXY(x+4, y+4)
	pdf.CellFormat(w-8, 8, tr(panelCaption(panel)), "", 1, "L", false, 0, "")

	if panel.Kind == worksheet.PanelScore {
		setText(pdf, style.Accent)
		pdf.SetFont(family, "", 12)
		pdf.SetXY(x+4, y+16)
		pdf.CellFormat(w-8, 8, "Great job!  *  *  *  *  *", "", 1, "L", false, 0, "")
	}
}

func (p PDF) answerKey(pdf *fpdf.Fpdf, doc worksheet.Document, style worksheet.Style, family string, tr func(string) string, contentW float64) {
	lines := answerLines(doc)
	_, pageH := pdf.GetPageSize()
	left, _, _, bottom := pdf.GetMargins()
	colW := contentW / answerColumns

	for len(lines) > 0 {
		pdf.AddPage()
		setText(pdf, style.Primary)
		pdf.SetFont(family, "B", style.TitleSize)
		pdf.CellFormat(contentW, style.TitleSize*ptToMM*lineFactor, tr("Answer Key"), "", 1, "C", false, 0, "")
		pdf.Ln(headerGapMM)

		setText(pdf, style.Text)
		pdf.SetFont(family, "", 12)
		top := pdf.GetY()
		rowsPerPage := max(int((pageH-bottom-top)/answerRowMM), 1)

		page := lines[:min(len(lines), rowsPerPage*answerColumns)]
		lines = lines[len(page):]
		perCol := (len(page) + answerColumns - 1) / answerColumns
		for i, line := range page {
			pdf.SetXY(left+float64(i/perCol)*colW, top+float64(i%perCol)*answerRowMM)
			pdf.CellFormat(colW, answerRowMM, tr(line), "", 0, "L", false, 0, "")
		}
	}
}

func setText(pdf *fpdf.Fpdf, hex string) {
	r, g, b := hexRGB(hex)
	pdf.SetTextColor(r, g, b)
}

func setDraw(pdf *fpdf.Fpdf, hex string) {
	r, g, b := hexRGB(hex)
	pdf.SetDrawColor(r, g, b)
}

// hexRGB parses "#RRGGBB". Malformed input yields black.
func hexRGB(hex string) (int, int, int) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return 0, 0, 0
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff)
}

// latinOnly drops runes the core fonts cannot draw and tidies the spaces
// they leave behind. × and ÷ are Latin-1 and survive.
func latinOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r < 0x100 {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
