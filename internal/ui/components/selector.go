package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/worksheetz/internal/ui/theme"
)

// SelectorOption is one choice in a Selector.
type SelectorOption struct {
	Value string
	Label string
}

// Selector is a horizontal row of chips cycled with left and right.
type Selector struct {
	Options  []SelectorOption
	Selected int
}

// NewSelector creates a selector with the option whose Value is current
// selected, or the first option.
func NewSelector(options []SelectorOption, current string) Selector {
	s := Selector{Options: options}
	for i, o := range options {
		if o.Value == current {
			s.Selected = i
			break
		}
	}
	return s
}

// Value returns the selected option's value, or "" when empty.
func (s Selector) Value() string {
	if s.Selected < 0 || s.Selected >= len(s.Options) {
		return ""
	}
	return s.Options[s.Selected].Value
}

// Update cycles the selection on left/right (h/l). The second result
// reports whether the selection changed.
func (s Selector) Update(msg tea.Msg) (Selector, bool) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(s.Options) == 0 {
		return s, false
	}
	prev := s.Selected
	switch kmsg.String() {
	case "left", "h":
		s.Selected = (s.Selected - 1 + len(s.Options)) % len(s.Options)
	case "right", "l":
		s.Selected = (s.Selected + 1) % len(s.Options)
	}
	return s, s.Selected != prev
}

// View renders the chips; the selected chip is highlighted when focused.
func (s Selector) View(focused bool) string {
	chips := make([]string, 0, len(s.Options))
	for i, o := range s.Options {
		switch {
		case i == s.Selected && focused:
			chips = append(chips, theme.ChipActive.Render(o.Label))
		case i == s.Selected:
			chips = append(chips, theme.Selected.Render(" "+o.Label+" "))
		default:
			chips = append(chips, theme.Chip.Render(o.Label))
		}
	}
	return strings.Join(chips, " ")
}

// ViewCompact renders only the selected option between arrows, for long
// option lists.
func (s Selector) ViewCompact(focused bool) string {
	if len(s.Options) == 0 {
		return ""
	}
	label := fmt.Sprintf("◂ %s ▸", s.Options[s.Selected].Label)
	count := theme.Hint.Render(fmt.Sprintf("%d/%d", s.Selected+1, len(s.Options)))
	if focused {
		return theme.ChipActive.Render(label) + " " + count
	}
	return theme.Selected.Render(" "+label+" ") + " " + count
}
