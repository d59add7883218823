package worksheet

// Style holds the cosmetic choices a renderer applies to a Document.
// Colours are "#RRGGBB" hex strings; sizes are in points unless noted.
type Style struct {
	FontFamily string

	Primary   string // title and accents
	Secondary string // subtitle and captions
	Text      string // problem text
	Border    string // panel outlines
	Accent    string // score stars

	TitleSize    float64
	SubtitleSize float64
	LargeSize    float64
	MediumSize   float64
	SmallSize    float64

	MarginMM      float64
	PanelHeightMM float64

	Color bool
}

// DefaultStyle returns the colour style used by the app.
func DefaultStyle() Style {
	return Style{
		FontFamily:    "Helvetica",
		Primary:       "#8B5CF6",
		Secondary:     "#14B8A6",
		Text:          "#1E293B",
		Border:        "#94A3B8",
		Accent:        "#F97316",
		TitleSize:     24,
		SubtitleSize:  13,
		LargeSize:     32,
		MediumSize:    24,
		SmallSize:     18,
		MarginMM:      15,
		PanelHeightMM: 60,
		Color:         true,
	}
}

// Monochrome returns a copy of s with every colour set to black or grey.
func (s Style) Monochrome() Style {
	s.Primary = "#000000"
	s.Secondary = "#404040"
	s.Text = "#000000"
	s.Border = "#808080"
	s.Accent = "#000000"
	s.Color = false
	return s
}

// ItemSize returns the point size for a font size class.
func (s Style) ItemSize(f FontSize) float64 {
	switch f {
	case FontLarge:
		return s.LargeSize
	case FontSmall:
		return s.SmallSize
	default:
		return s.MediumSize
	}
}
