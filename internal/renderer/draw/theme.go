package draw

import (
	"fmt"

	"github.com/dshills/seqterm/internal/renderer/core"
)

// Theme holds the styles widgets draw with.
type Theme struct {
	Border      core.Style
	FocusBorder core.Style
	GridDot     core.Style
	GridCursor  core.Style
	Status      core.Style
	Hover       core.Style
}

// DefaultTheme is the built-in look.
func DefaultTheme() Theme {
	base := core.DefaultStyle()
	return Theme{
		Border:      base,
		FocusBorder: base.WithForeground(core.ColorLightGreen),
		GridDot:     base.WithForeground(core.ColorDarkGray),
		GridCursor:  base.WithForeground(core.ColorWhite),
		Status:      base,
		Hover:       base.Reverse(),
	}
}

// BorderStyle picks the border style for a window's focus state.
func (t Theme) BorderStyle(focused bool) core.Style {
	if focused {
		return t.FocusBorder
	}
	return t.Border
}

// ThemeColors are the color names a theme is built from, as they appear
// in configuration.
type ThemeColors struct {
	Border      string
	FocusBorder string
	GridDot     string
	GridCursor  string
	StatusFg    string
	StatusBg    string
}

// NewTheme builds a theme from color names. Empty names keep the default.
func NewTheme(c ThemeColors) (Theme, error) {
	t := DefaultTheme()
	fields := []struct {
		name  string
		value string
		apply func(core.Color)
	}{
		{"border", c.Border, func(col core.Color) { t.Border = t.Border.WithForeground(col) }},
		{"focus_border", c.FocusBorder, func(col core.Color) { t.FocusBorder = t.FocusBorder.WithForeground(col) }},
		{"grid_dot", c.GridDot, func(col core.Color) { t.GridDot = t.GridDot.WithForeground(col) }},
		{"grid_cursor", c.GridCursor, func(col core.Color) { t.GridCursor = t.GridCursor.WithForeground(col) }},
		{"status_fg", c.StatusFg, func(col core.Color) { t.Status = t.Status.WithForeground(col) }},
		{"status_bg", c.StatusBg, func(col core.Color) { t.Status = t.Status.WithBackground(col) }},
	}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		col, err := core.ParseColor(f.value)
		if err != nil {
			return DefaultTheme(), fmt.Errorf("theme %s: %w", f.name, err)
		}
		f.apply(col)
	}
	return t, nil
}
