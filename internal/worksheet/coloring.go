package worksheet

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ColoringNone selects an empty drawing zone.
const ColoringNone = "none"

// DefaultColoringItem is preselected when the drawing layout is chosen.
const DefaultColoringItem = "Panda 🐼"

// Placeholder used when a coloring item cannot be split.
const (
	PlaceholderLabel = "Drawing Time"
	PlaceholderEmoji = "✏️"
)

// ColoringCategory groups coloring items for the picker.
type ColoringCategory struct {
	Name  string   `json:"name"`
	Items []string `json:"items"`
}

// ColoringItems returns the coloring catalog in display order.
func ColoringItems() []ColoringCategory {
	return []ColoringCategory{
		{Name: "Animals", Items: []string{"Panda 🐼", "Kangaroo 🦘", "Dog 🐶", "Cat 🐱", "Bunny 🐰"}},
		{Name: "Delicious", Items: []string{"Ice-cream 🍦", "Candy 🍭"}},
		{Name: "Nature", Items: []string{"Tree 🌳", "Leaf 🌿", "Cloud ☁️"}},
		{Name: "Healthy", Items: []string{"Broccoli 🥦"}},
	}
}

// ParseColoringItem splits "{Label} {Emoji}" on the final whitespace
// token. Strings without a label and an emoji degrade to the placeholder.
func ParseColoringItem(s string) (label, emoji string) {
	s = strings.TrimSpace(s)
	i := strings.LastIndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return PlaceholderLabel, PlaceholderEmoji
	}
	_, size := utf8.DecodeRuneInString(s[i:])
	label = strings.TrimSpace(s[:i])
	emoji = strings.TrimSpace(s[i+size:])
	if label == "" || emoji == "" {
		return PlaceholderLabel, PlaceholderEmoji
	}
	return label, emoji
}
