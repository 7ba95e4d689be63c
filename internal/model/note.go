package model

import (
	"fmt"
	"strings"
)

// LightColors and DarkColors are the note background cycles, eight entries
// each. A color from one palette is unknown to the other.
var (
	LightColors = []string{"#f9f9f9", "#d3a4ce", "#f1a3cd", "#ff9352", "#fef984", "#c8fd87", "#84d4c9", "#85cae7"}
	DarkColors  = []string{"#505050", "#9c2c74", "#3c2c73", "#04749c", "#04852d", "#ccbd1c", "#c4741d", "#bc2c14"}
)

type Note struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Color   string `json:"color,omitempty"`
}

func (n Note) Validate() error {
	if strings.TrimSpace(n.ID) == "" {
		return fmt.Errorf("%w: note id is required", ErrValidation)
	}
	if strings.TrimSpace(n.Title) == "" {
		return fmt.Errorf("%w: note title is required", ErrValidation)
	}
	if strings.TrimSpace(n.Content) == "" {
		return fmt.Errorf("%w: note content is required", ErrValidation)
	}
	return nil
}

// Matches reports whether query occurs in the title or content, ignoring case.
func (n Note) Matches(query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(n.Title), q) ||
		strings.Contains(strings.ToLower(n.Content), q)
}

func Palette(dark bool) []string {
	if dark {
		return DarkColors
	}
	return LightColors
}

// DefaultNoteColor is the background used for notes without a color.
func DefaultNoteColor(dark bool) string {
	return Palette(dark)[0]
}

// NextColor returns the palette entry after current, wrapping around.
// A color outside the palette (including "") maps to the first entry.
func NextColor(current string, dark bool) string {
	colors := Palette(dark)
	idx := -1
	for i, c := range colors {
		if c == current {
			idx = i
			break
		}
	}
	return colors[(idx+1)%len(colors)]
}
