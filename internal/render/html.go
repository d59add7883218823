package render

import (
	"fmt"
	"html/template"
	"io"

	"github.com/abhisek/worksheetz/internal/worksheet"
)

// HTML renders a standalone, print-ready HTML page.
type HTML struct {
	AnswerKey bool
}

type htmlPage struct {
	Doc       worksheet.Document
	Style     worksheet.Style
	ItemSize  float64
	NameLine  string
	Caption   string
	Columns   int
	Items     []string
	Answers   []string
	Drawing   bool
	ScoreStar bool
}

var pageTemplate = template.Must(template.New("worksheet").Parse(`<!DOCTYPE html>
<html><head><meta charset="utf-8"><title>{{.Doc.Title}}</title>
<style>
body { font-family: {{.Style.FontFamily}}, sans-serif; padding: 20px; color: {{.Style.Text}}; }
h1 { text-align: center; color: {{.Style.Primary}}; font-size: {{.Style.TitleSize}}pt; margin-bottom: 4px; }
h2 { text-align: center; color: {{.Style.Secondary}}; font-size: {{.Style.SubtitleSize}}pt; font-weight: normal; margin-top: 0; }
.name { margin: 16px 0; }
.grid { display: grid; grid-template-columns: repeat({{.Columns}}, 1fr); gap: 20px; }
.item { font-size: {{.ItemSize}}pt; padding: 15px; }
.panel { border: 2px solid {{.Style.Border}}; border-radius: 16px; padding: 16px; margin-top: 24px; }
.panel.drawing { border-style: dashed; min-height: {{.Style.PanelHeightMM}}mm; }
.stars { color: {{.Style.Accent}}; font-size: 20pt; }
.answers { page-break-before: always; }
</style></head><body>
<h1>{{.Doc.Title}}</h1>
<h2>{{.Doc.Subtitle}}</h2>
<div class="name">{{.NameLine}}</div>
<div class="grid">
{{- range .Items}}
<div class="item">{{.}}</div>
{{- end}}
</div>
{{- if .Caption}}
<div class="panel{{if .Drawing}} drawing{{end}}">{{.Caption}}{{if .ScoreStar}} <span class="stars">☆☆☆☆☆</span>{{end}}</div>
{{- end}}
{{- if .Answers}}
<div class="answers"><h1>Answer Key</h1>
{{- range .Answers}}
<div>{{.}}</div>
{{- end}}
</div>
{{- end}}
</body></html>
`))

func (h HTML) Render(w io.Writer, doc worksheet.Document, style worksheet.Style) error {
	page := htmlPage{
		Doc:       doc,
		Style:     style,
		ItemSize:  style.ItemSize(doc.FontSize),
		NameLine:  nameLine(doc),
		Caption:   panelCaption(doc.Panel),
		Columns:   columns(doc),
		Drawing:   doc.Panel.Kind == worksheet.PanelDrawing || doc.Panel.Kind == worksheet.PanelEmptyDrawing,
		ScoreStar: doc.Panel.Kind == worksheet.PanelScore,
	}
	for _, p := range doc.Problems {
		page.Items = append(page.Items, p.String())
	}
	if h.AnswerKey {
		page.Answers = answerLines(doc)
	}

	if err := pageTemplate.Execute(w, page); err != nil {
		return fmt.Errorf("execute html template: %w", err)
	}
	return nil
}
