package worksheet

import "strings"

// Layout decides whether a worksheet ends with a panel and what it holds.
type Layout string

const (
	LayoutWorksheetOnly Layout = "worksheet_only"
	LayoutScoreBox      Layout = "score_box"
	LayoutDrawingArea   Layout = "drawing_area"
)

// ParseLayout maps a wire key to a Layout. Unknown keys degrade to
// LayoutWorksheetOnly.
func ParseLayout(s string) Layout {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "score_box", "score", "scorebox":
		return LayoutScoreBox
	case "drawing_area", "drawing", "draw":
		return LayoutDrawingArea
	default:
		return LayoutWorksheetOnly
	}
}

// Personalization carries the choices made on the personalization step.
type Personalization struct {
	DifficultyTag string `json:"difficulty,omitempty"`
	Layout        Layout `json:"layout"`

	// ColoringItem is "{Label} {Emoji}" or "none". Only used with
	// LayoutDrawingArea.
	ColoringItem string `json:"coloring_item,omitempty"`

	// StudentName is printed on the name line when set.
	StudentName string `json:"student_name,omitempty"`
}
