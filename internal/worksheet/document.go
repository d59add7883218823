package worksheet

import "github.com/abhisek/worksheetz/internal/problemgen"

// PanelKind identifies the optional panel printed under the problem grid.
type PanelKind string

const (
	PanelNone         PanelKind = "none"
	PanelScore        PanelKind = "score"
	PanelDrawing      PanelKind = "drawing"
	PanelEmptyDrawing PanelKind = "empty_drawing"
)

// Panel is the trailing section of a worksheet. Only the fields relevant
// to Kind are set.
type Panel struct {
	Kind      PanelKind `json:"kind"`
	MaxScore  int       `json:"max_score,omitempty"`
	ItemLabel string    `json:"item_label,omitempty"`
	ItemEmoji string    `json:"item_emoji,omitempty"`
}

// FontSize is the size class for grid items.
type FontSize string

const (
	FontLarge  FontSize = "large"
	FontMedium FontSize = "medium"
	FontSmall  FontSize = "small"
)

// Document is a renderer-agnostic description of one worksheet page.
type Document struct {
	Title       string               `json:"title"`
	Subtitle    string               `json:"subtitle"`
	StudentName string               `json:"student_name,omitempty"`
	Problems    []problemgen.Problem `json:"problems"`
	Panel       Panel                `json:"panel"`
	GridColumns int                  `json:"grid_columns"`
	FontSize    FontSize             `json:"font_size"`
}

// Rows returns the number of grid rows needed for the problems.
func (d Document) Rows() int {
	if d.GridColumns <= 0 {
		return len(d.Problems)
	}
	return (len(d.Problems) + d.GridColumns - 1) / d.GridColumns
}
