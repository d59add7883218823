package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/worksheetz/internal/problemgen"
	"github.com/abhisek/worksheetz/internal/worksheet"
)

func arithmeticDoc(panel worksheet.Panel) worksheet.Document {
	return worksheet.Document{
		Title:    worksheet.Title,
		Subtitle: "Multiplication • 1-5 • 1st Grade",
		Problems: []problemgen.Problem{
			{A: 7, B: 5, Operator: "×"},
			{A: 12, B: 4, Operator: "÷"},
			{A: 9, B: 3, Operator: "-"},
			{A: 2, B: 2, Operator: "+"},
		},
		Panel:       panel,
		GridColumns: worksheet.GridColumns,
		FontSize:    worksheet.FontSmall,
	}
}

func identificationDoc() worksheet.Document {
	return worksheet.Document{
		Title:       worksheet.Title,
		Subtitle:    "Shapes • Preschool",
		StudentName: "Mia",
		Problems:    []problemgen.Problem{{Display: "Star ⭐"}, {Display: "Heart ❤️"}},
		Panel:       worksheet.Panel{Kind: worksheet.PanelDrawing, ItemLabel: "Panda", ItemEmoji: "🐼"},
		GridColumns: worksheet.GridColumns,
		FontSize:    worksheet.FontLarge,
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"text": FormatText, "TXT": FormatText, " pdf ": FormatPDF, "html": FormatHTML, "json": FormatJSON} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseFormat("docx")
	assert.True(t, errors.Is(err, ErrUnknownFormat))
}

func TestParsePageSize(t *testing.T) {
	got, err := ParsePageSize("A4")
	require.NoError(t, err)
	assert.Equal(t, PageA4, got)

	got, err = ParsePageSize("na_letter")
	require.NoError(t, err)
	assert.Equal(t, PageLetter, got)

	_, err = ParsePageSize("legal")
	assert.True(t, errors.Is(err, ErrUnknownPageSize))

	assert.Equal(t, "ISO A4", PageA4.DisplayName())
	assert.Equal(t, "Letter (8.5x11)", PageLetter.DisplayName())
}

func TestForFormat(t *testing.T) {
	r, err := ForFormat(FormatPDF, Options{PageSize: PageA4, AnswerKey: true})
	require.NoError(t, err)
	assert.Equal(t, PDF{PageSize: PageA4, AnswerKey: true}, r)

	_, err = ForFormat(Format("svg"), Options{})
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestPanelCaption(t *testing.T) {
	assert.Equal(t, "Score: ______ / 18", panelCaption(worksheet.Panel{Kind: worksheet.PanelScore, MaxScore: 18}))
	assert.Equal(t, "Draw and color: Panda 🐼", panelCaption(worksheet.Panel{Kind: worksheet.PanelDrawing, ItemLabel: "Panda", ItemEmoji: "🐼"}))
	assert.Contains(t, panelCaption(worksheet.Panel{Kind: worksheet.PanelEmptyDrawing}), "Drawing Time")
	assert.Empty(t, panelCaption(worksheet.Panel{Kind: worksheet.PanelNone}))
}

func TestAnswerLinesSkipIdentification(t *testing.T) {
	assert.Empty(t, answerLines(identificationDoc()))

	lines := answerLines(arithmeticDoc(worksheet.Panel{Kind: worksheet.PanelNone}))
	require.Len(t, lines, 4)
	assert.Equal(t, "1. 7 × 5 = 35", lines[0])
	assert.Equal(t, "2. 12 ÷ 4 = 3", lines[1])
}

func TestText(t *testing.T) {
	style := worksheet.DefaultStyle().Monochrome()
	out := Text{AnswerKey: true}.String(arithmeticDoc(worksheet.Panel{Kind: worksheet.PanelScore, MaxScore: 18}), style)

	assert.Contains(t, out, worksheet.Title)
	assert.Contains(t, out, "Multiplication • 1-5 • 1st Grade")
	assert.Contains(t, out, "7 × 5 =")
	assert.Contains(t, out, "Score: ______ / 18")
	assert.Contains(t, out, "Answer Key")
	assert.Contains(t, out, "12 ÷ 4 = 3")
}

func TestTextIdentification(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Text{}.Render(&buf, identificationDoc(), worksheet.DefaultStyle().Monochrome()))
	out := buf.String()
	assert.Contains(t, out, "Star ⭐")
	assert.Contains(t, out, "Name: Mia")
	assert.Contains(t, out, "Draw and color: Panda 🐼")
	assert.NotContains(t, out, "Answer Key")
}

func TestHTML(t *testing.T) {
	var buf bytes.Buffer
	doc := arithmeticDoc(worksheet.Panel{Kind: worksheet.PanelScore, MaxScore: 18})
	require.NoError(t, HTML{AnswerKey: true}.Render(&buf, doc, worksheet.DefaultStyle()))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "<title>Practice Worksheet</title>")
	assert.Contains(t, out, "repeat(3, 1fr)")
	assert.Equal(t, 4, strings.Count(out, `<div class="item">`))
	assert.Contains(t, out, "Score: ______ / 18")
	assert.Contains(t, out, `class="answers"`)
}

func TestHTMLDrawingPanel(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, HTML{}.Render(&buf, identificationDoc(), worksheet.DefaultStyle()))
	out := buf.String()

	assert.Contains(t, out, `class="panel drawing"`)
	assert.Contains(t, out, "Star ⭐")
	assert.NotContains(t, out, `class="answers"`)
}

func TestHTMLEscapesStudentName(t *testing.T) {
	doc := identificationDoc()
	doc.StudentName = "<b>Max</b>"
	var buf bytes.Buffer
	require.NoError(t, HTML{}.Render(&buf, doc, worksheet.DefaultStyle()))
	assert.NotContains(t, buf.String(), "<b>Max</b>")
}

func TestPDF(t *testing.T) {
	tests := []struct {
		name string
		r    PDF
		doc  worksheet.Document
	}{
		{"letter score", PDF{PageSize: PageLetter}, arithmeticDoc(worksheet.Panel{Kind: worksheet.PanelScore, MaxScore: 18})},
		{"a4 answer key", PDF{PageSize: PageA4, AnswerKey: true}, arithmeticDoc(worksheet.Panel{Kind: worksheet.PanelNone})},
		{"emoji drawing", PDF{}, identificationDoc()},
		{"empty drawing", PDF{}, arithmeticDoc(worksheet.Panel{Kind: worksheet.PanelEmptyDrawing})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, tt.r.Render(&buf, tt.doc, worksheet.DefaultStyle()))
			assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
		})
	}
}

func TestPDFFullGrid(t *testing.T) {
	doc := arithmeticDoc(worksheet.Panel{Kind: worksheet.PanelScore, MaxScore: 30})
	doc.Problems = problemgen.Generate(problemgen.NewRand(1), problemgen.GenerateInput{Grade: problemgen.Grade2, Operation: problemgen.OpAdd, Count: 30})
	var buf bytes.Buffer
	require.NoError(t, PDF{}.Render(&buf, doc, worksheet.DefaultStyle().Monochrome()))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestPDFAnswerKeyFlowsOntoExtraPages(t *testing.T) {
	doc := arithmeticDoc(worksheet.Panel{Kind: worksheet.PanelNone})
	doc.Problems = problemgen.Generate(problemgen.NewRand(7), problemgen.GenerateInput{Grade: problemgen.Grade2, Operation: problemgen.OpAdd, Count: 150})

	for _, size := range []PageSize{PageLetter, PageA4} {
		t.Run(string(size), func(t *testing.T) {
			pdf := PDF{PageSize: size, AnswerKey: true}.build(doc, worksheet.DefaultStyle())
			require.NoError(t, pdf.Error())
			assert.Equal(t, 3, pdf.PageCount(), "worksheet page plus two answer pages")

			_, pageH := pdf.GetPageSize()
			_, _, _, bottom := pdf.GetMargins()
			assert.LessOrEqual(t, pdf.GetY()+answerRowMM, pageH-bottom, "last answer row stays on the page")
		})
	}
}

func TestPDFShortAnswerKeyFitsOnePage(t *testing.T) {
	pdf := PDF{AnswerKey: true}.build(arithmeticDoc(worksheet.Panel{Kind: worksheet.PanelNone}), worksheet.DefaultStyle())
	assert.Equal(t, 2, pdf.PageCount())
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	doc := identificationDoc()
	require.NoError(t, JSON{}.Render(&buf, doc, worksheet.Style{}))

	var got worksheet.Document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, doc, got)
	assert.Contains(t, buf.String(), `"kind":"drawing"`)
	assert.Contains(t, buf.String(), "🐼", "emoji should not be escaped")
}

func TestHexRGB(t *testing.T) {
	r, g, b := hexRGB("#8B5CF6")
	assert.Equal(t, []int{0x8B, 0x5C, 0xF6}, []int{r, g, b})
	r, g, b = hexRGB("nope")
	assert.Equal(t, []int{0, 0, 0}, []int{r, g, b})
}

func TestLatinOnly(t *testing.T) {
	assert.Equal(t, "Star", latinOnly("Star ⭐"))
	assert.Equal(t, "7 × 5 =", latinOnly("7 × 5 ="))
	assert.Equal(t, "Draw and color: Panda", latinOnly("Draw and color: Panda 🐼"))
}
