package api

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/worksheetz/internal/printer"
	"github.com/abhisek/worksheetz/internal/problemgen"
	"github.com/abhisek/worksheetz/internal/render"
	"github.com/abhisek/worksheetz/internal/worksheet"
)

// GET /healthz
func (s *Server) healthz(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

type optionsResponse struct {
	Grades         []worksheet.GradeOption      `json:"grades"`
	Subjects       []worksheet.SubjectOption    `json:"subjects"`
	Operations     []worksheet.OperationOption  `json:"operations"`
	Difficulties   []worksheet.DifficultyOption `json:"difficulties"`
	ShowDifficulty bool                         `json:"show_difficulty"`
	Layouts        []worksheet.LayoutOption     `json:"layouts"`
	Coloring       []worksheet.ColoringCategory `json:"coloring"`
	PageSizes      []render.PageSize            `json:"page_sizes"`
}

// GET /api/options?grade=&operation=
func (s *Server) options(c *gin.Context) {
	grade := problemgen.ParseGrade(c.Query("grade"))
	op := problemgen.ParseOperation(c.Query("operation"))
	if op == problemgen.OpUnknown {
		if ops := worksheet.Operations(grade); len(ops) > 0 {
			op = ops[0].Operation
		}
	}

	c.JSON(http.StatusOK, optionsResponse{
		Grades:         worksheet.Grades(),
		Subjects:       worksheet.Subjects(),
		Operations:     worksheet.Operations(grade),
		Difficulties:   worksheet.DifficultyOptions(grade, op),
		ShowDifficulty: worksheet.ShowDifficulty(grade, op),
		Layouts:        worksheet.LayoutOptions(),
		Coloring:       worksheet.ColoringItems(),
		PageSizes:      []render.PageSize{render.PageLetter, render.PageA4},
	})
}

// POST /api/worksheets
func (s *Server) createWorksheet(c *gin.Context) {
	var req worksheet.Request
	if !s.bind(c, RequestSchema, &req) {
		return
	}
	c.JSON(http.StatusOK, s.builder.Build(req))
}

// POST /api/worksheets/pdf?answer_key=&page_size=&mono=
func (s *Server) worksheetPDF(c *gin.Context) {
	var req worksheet.Request
	if !s.bind(c, RequestSchema, &req) {
		return
	}

	pageSize := s.pageSize
	if v := c.Query("page_size"); v != "" {
		ps, err := render.ParsePageSize(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		pageSize = ps
	}
	answerKey, _ := strconv.ParseBool(c.Query("answer_key"))
	mono, _ := strconv.ParseBool(c.Query("mono"))

	style := worksheet.DefaultStyle()
	if mono {
		style = style.Monochrome()
	}

	ws := s.builder.Build(req)
	var buf bytes.Buffer
	pdf := render.PDF{PageSize: pageSize, AnswerKey: answerKey, FontPath: s.fontPath}
	if err := pdf.Render(&buf, ws.Document, style); err != nil {
		s.logger.Error("render pdf", "id", ws.ID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not render worksheet"})
		return
	}

	filename := fmt.Sprintf("%s-%s.pdf", printer.FileSlug(ws.Document), ws.ID[:8])
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("X-Worksheet-Seed", ws.Seed)
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

type composeRequest struct {
	Problems        []problemgen.Problem      `json:"problems"`
	Grade           string                    `json:"grade"`
	Operation       string                    `json:"operation"`
	Personalization worksheet.Personalization `json:"personalization"`
}

// POST /api/worksheets/compose
func (s *Server) compose(c *gin.Context) {
	var req composeRequest
	if !s.bind(c, ComposeSchema, &req) {
		return
	}

	grade := problemgen.ParseGrade(req.Grade)
	op := problemgen.ParseOperation(req.Operation)
	in := problemgen.GenerateInput{Grade: grade, Operation: op}
	if verr := problemgen.Validate(req.Problems, in, problemgen.ClientConfig().Validators); verr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     verr.Error(),
			"validator": verr.Validator,
			"index":     verr.Index,
		})
		return
	}

	p := req.Personalization
	p.Layout = worksheet.ParseLayout(string(p.Layout))
	c.JSON(http.StatusOK, worksheet.Compose(req.Problems, grade, op, p))
}

type scoreRequest struct {
	Problems []problemgen.Problem `json:"problems"`
	Answers  []string             `json:"answers"`
}

type scoreResponse struct {
	Score int `json:"score"`
	Max   int `json:"max"`
}

// POST /api/worksheets/score
func (s *Server) score(c *gin.Context) {
	var req scoreRequest
	if !s.bind(c, ScoreSchema, &req) {
		return
	}
	c.JSON(http.StatusOK, scoreResponse{
		Score: problemgen.Score(req.Problems, req.Answers),
		Max:   len(req.Problems),
	})
}

// bind reads and validates the request body. On failure it writes the
// error response and returns false.
func (s *Server) bind(c *gin.Context, schema *Schema, v any) bool {
	raw, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes))
	if err != nil {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "request body too large"})
		return false
	}

	if err := decodeBody(schema, raw, v); err != nil {
		var invalid *ErrInvalidRequest
		if errors.As(err, &invalid) {
			c.JSON(http.StatusBadRequest, gin.H{"error": invalid.Error()})
			return false
		}
		s.logger.Error("decode request", "schema", schema.Name, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return false
	}
	return true
}
