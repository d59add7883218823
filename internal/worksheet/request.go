package worksheet

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/abhisek/worksheetz/internal/problemgen"
)

// Request is everything the selection flow gathers for one worksheet.
type Request struct {
	Grade        problemgen.Grade     `json:"grade"`
	Subject      Subject              `json:"subject,omitempty"`
	Operation    problemgen.Operation `json:"operation"`
	Difficulty   string               `json:"difficulty,omitempty"`
	Layout       Layout               `json:"layout,omitempty"`
	ColoringItem string               `json:"coloring_item,omitempty"`
	StudentName  string               `json:"student_name,omitempty"`

	// Count overrides the page-driven problem count when positive.
	Count int `json:"count,omitempty"`

	// Seed makes the problem set reproducible. Empty means "pick one".
	Seed string `json:"seed,omitempty"`
}

// Normalize canonicalises enum values and fills defaults. It never fails.
func (r Request) Normalize() Request {
	r.Grade = problemgen.ParseGrade(string(r.Grade))
	r.Operation = problemgen.ParseOperation(string(r.Operation))
	r.Layout = ParseLayout(string(r.Layout))
	if r.Subject == "" {
		r.Subject = SubjectMath
	}

	switch {
	case r.Layout != LayoutDrawingArea:
		r.ColoringItem = ""
	case r.ColoringItem == "":
		r.ColoringItem = DefaultColoringItem
	}

	if r.Count <= 0 {
		r.Count = ProblemCount(r.Grade, r.Operation, r.Layout)
	}
	return r
}

// GenerateInput returns the generator input for the request.
func (r Request) GenerateInput() problemgen.GenerateInput {
	return problemgen.GenerateInput{
		Grade:         r.Grade,
		Operation:     r.Operation,
		DifficultyTag: r.Difficulty,
		Count:         r.Count,
	}
}

// Personalization returns the composer choices for the request.
func (r Request) Personalization() Personalization {
	return Personalization{
		DifficultyTag: r.Difficulty,
		Layout:        r.Layout,
		ColoringItem:  r.ColoringItem,
		StudentName:   r.StudentName,
	}
}

// Worksheet is a generated worksheet plus the data needed to reproduce it.
type Worksheet struct {
	ID       string   `json:"id"`
	Seed     string   `json:"seed"`
	Request  Request  `json:"request"`
	Document Document `json:"document"`
}

// NewSeed returns a random seed string.
func NewSeed() string {
	return fmt.Sprintf("%016x", problemgen.RandomSeed())
}

// Builder runs the generate → check → compose pipeline.
type Builder struct {
	logger *slog.Logger
	cfg    problemgen.Config
}

// NewBuilder returns a Builder that logs check failures to logger.
func NewBuilder(logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Builder{logger: logger, cfg: problemgen.DefaultConfig()}
}

// Build generates and composes a worksheet. The same normalized request
// and seed always produce the same Document.
func (b *Builder) Build(req Request) Worksheet {
	req = req.Normalize()
	if req.Seed == "" {
		req.Seed = NewSeed()
	}

	rng := problemgen.NewRand(problemgen.SeedFromString(req.Seed))
	in := req.GenerateInput()
	problems := problemgen.Generate(rng, in)

	if verr := problemgen.Validate(problems, in, b.cfg.Validators); verr != nil {
		b.logger.Warn("generated problem failed check",
			"validator", verr.Validator,
			"index", verr.Index,
			"message", verr.Message,
			"grade", req.Grade,
			"operation", req.Operation,
			"seed", req.Seed,
		)
	}

	ws := Worksheet{
		ID:       uuid.NewString(),
		Seed:     req.Seed,
		Request:  req,
		Document: Compose(problems, req.Grade, req.Operation, req.Personalization()),
	}
	b.logger.Debug("worksheet built",
		"id", ws.ID,
		"grade", req.Grade,
		"operation", req.Operation,
		"difficulty", req.Difficulty,
		"layout", req.Layout,
		"count", len(problems),
	)
	return ws
}
