package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/worksheetz/internal/problemgen"
	"github.com/abhisek/worksheetz/internal/render"
	"github.com/abhisek/worksheetz/internal/worksheet"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer() *Server {
	return New(Options{PageSize: render.PageLetter})
}

func do(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	rec := do(t, newTestServer(), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestOptions(t *testing.T) {
	rec := do(t, newTestServer(), http.MethodGet, "/api/options?grade=pre&operation=alphabets", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got optionsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got.Grades, 4)
	assert.Len(t, got.Operations, 4)
	assert.Equal(t, problemgen.OpNumbers, got.Operations[0].Operation)
	require.Len(t, got.Difficulties, 3)
	assert.Equal(t, problemgen.TagUppercase, got.Difficulties[0].Tag)
	assert.True(t, got.ShowDifficulty)
	assert.Len(t, got.Layouts, 3)
	assert.NotEmpty(t, got.Coloring)
}

func TestOptionsDefaultsOperation(t *testing.T) {
	rec := do(t, newTestServer(), http.MethodGet, "/api/options?grade=2", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got optionsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, problemgen.OpAdd, got.Operations[0].Operation)
	assert.Equal(t, "1-100", got.Difficulties[0].Tag)
}

func TestCreateWorksheet(t *testing.T) {
	s := newTestServer()
	body := `{"grade":"1","operation":"multiply","layout":"score_box","seed":"fixed"}`

	rec := do(t, s, http.MethodPost, "/api/worksheets", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var ws worksheet.Worksheet
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ws))
	assert.NotEmpty(t, ws.ID)
	assert.Equal(t, "fixed", ws.Seed)
	assert.Len(t, ws.Document.Problems, worksheet.CountWithPanel)
	assert.Equal(t, worksheet.PanelScore, ws.Document.Panel.Kind)
	assert.Equal(t, worksheet.CountWithPanel, ws.Document.Panel.MaxScore)
	for _, p := range ws.Document.Problems {
		assert.Equal(t, "×", p.Operator)
		assert.True(t, p.A >= 1 && p.A <= 5 && p.B >= 1 && p.B <= 5, p.String())
	}

	again := do(t, s, http.MethodPost, "/api/worksheets", body)
	var ws2 worksheet.Worksheet
	require.NoError(t, json.Unmarshal(again.Body.Bytes(), &ws2))
	assert.Equal(t, ws.Document, ws2.Document, "same seed gives the same document")
	assert.NotEqual(t, ws.ID, ws2.ID)
}

func TestCreateWorksheetRejectsBadBodies(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `{grade:`},
		{"missing operation", `{"grade":"1"}`},
		{"unknown field", `{"grade":"1","operation":"add","colour":"red"}`},
		{"bad layout", `{"grade":"1","operation":"add","layout":"poster"}`},
		{"count too large", `{"grade":"1","operation":"add","count":1000}`},
		{"wrong type", `{"grade":1,"operation":"add"}`},
	}
	s := newTestServer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, s, http.MethodPost, "/api/worksheets", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "invalid worksheet-request")
		})
	}
}

func TestWorksheetPDF(t *testing.T) {
	rec := do(t, newTestServer(), http.MethodPost, "/api/worksheets/pdf?answer_key=true&page_size=a4",
		`{"grade":"pre","operation":"shapes","layout":"drawing_area"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), `filename="shapes-preschool-`)
	assert.NotEmpty(t, rec.Header().Get("X-Worksheet-Seed"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF-")))
}

func TestWorksheetPDFBadPageSize(t *testing.T) {
	rec := do(t, newTestServer(), http.MethodPost, "/api/worksheets/pdf?page_size=legal", `{"grade":"1","operation":"add"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCompose(t *testing.T) {
	body := `{
		"problems": [{"a":9,"b":3,"operator":"÷"},{"a":4,"b":2,"operator":"-"}],
		"grade": "2",
		"operation": "divide",
		"personalization": {"layout":"drawing_area","coloring_item":"Cat 🐱","student_name":"Sam"}
	}`
	rec := do(t, newTestServer(), http.MethodPost, "/api/worksheets/compose", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var doc worksheet.Document
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "Divide • 2nd Grade", doc.Subtitle)
	assert.Equal(t, "Sam", doc.StudentName)
	assert.Len(t, doc.Problems, 2)
	assert.Equal(t, worksheet.Panel{Kind: worksheet.PanelDrawing, ItemLabel: "Cat", ItemEmoji: "🐱"}, doc.Panel)
}

func TestComposeRejectsUnsafeProblems(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"negative difference", `{"problems":[{"a":1,"b":1,"operator":"+"},{"a":2,"b":5,"operator":"-"}]}`},
		{"inexact division", `{"problems":[{"a":7,"b":2,"operator":"÷"}]}`},
		{"empty problem", `{"problems":[{}]}`},
	}
	s := newTestServer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, s, http.MethodPost, "/api/worksheets/compose", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), `"validator"`)
		})
	}
}

func TestComposeSchemaRejectsBadOperator(t *testing.T) {
	rec := do(t, newTestServer(), http.MethodPost, "/api/worksheets/compose", `{"problems":[{"a":1,"b":1,"operator":"%"}]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid worksheet-compose")
}

func TestOperandsAboveLimitAreRejected(t *testing.T) {
	s := newTestServer()
	for _, path := range []string{"/api/worksheets/compose", "/api/worksheets/score"} {
		t.Run(path, func(t *testing.T) {
			body := `{"problems":[{"a":2000000,"b":3000000,"operator":"×"}],"answers":["0"]}`
			if path == "/api/worksheets/compose" {
				body = `{"problems":[{"a":2000000,"b":3000000,"operator":"×"}]}`
			}
			rec := do(t, s, http.MethodPost, path, body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "invalid worksheet-")
		})
	}

	rec := do(t, s, http.MethodPost, "/api/worksheets/compose", `{"problems":[{"a":1000000,"b":1000000,"operator":"×"}]}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestScore(t *testing.T) {
	body := `{"problems":[{"a":2,"b":2,"operator":"+"},{"a":6,"b":3,"operator":"÷"},{"display":"Star ⭐"}],"answers":["4","2","star"]}`
	rec := do(t, newTestServer(), http.MethodPost, "/api/worksheets/score", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var got scoreResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, scoreResponse{Score: 2, Max: 3}, got)
}

func TestDecodeBodyCachesSchema(t *testing.T) {
	var a, b scoreRequest
	require.NoError(t, decodeBody(ScoreSchema, []byte(`{"problems":[],"answers":[]}`), &a))
	require.NoError(t, decodeBody(ScoreSchema, []byte(`{"problems":[],"answers":[]}`), &b))
	_, ok := schemaCache.Load(ScoreSchema.Name)
	assert.True(t, ok)
}

func TestDecodeRequest(t *testing.T) {
	req, err := DecodeRequest([]byte(`{"grade":"K","operation":"subtract","layout":"drawing_area"}`))
	require.NoError(t, err)
	assert.Equal(t, problemgen.GradeKindergarten, req.Grade)
	assert.Equal(t, worksheet.DefaultColoringItem, req.ColoringItem)
	assert.Equal(t, worksheet.CountWithPanel, req.Count)

	_, err = DecodeRequest([]byte(`{"grade":"1"}`))
	var invalid *ErrInvalidRequest
	assert.ErrorAs(t, err, &invalid)
}
