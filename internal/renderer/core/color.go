package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a terminal color. It is either the terminal default, a palette
// index, or a true color.
type Color struct {
	R, G, B uint8
	// Indexed means R holds a palette index.
	Indexed bool
	Default bool
}

// ColorDefault is the terminal's default color.
var ColorDefault = Color{Default: true}

// The sixteen ANSI palette colors.
var (
	ColorBlack        = ColorFromIndex(0)
	ColorRed          = ColorFromIndex(1)
	ColorGreen        = ColorFromIndex(2)
	ColorYellow       = ColorFromIndex(3)
	ColorBlue         = ColorFromIndex(4)
	ColorMagenta      = ColorFromIndex(5)
	ColorCyan         = ColorFromIndex(6)
	ColorGray         = ColorFromIndex(7)
	ColorDarkGray     = ColorFromIndex(8)
	ColorLightRed     = ColorFromIndex(9)
	ColorLightGreen   = ColorFromIndex(10)
	ColorLightYellow  = ColorFromIndex(11)
	ColorLightBlue    = ColorFromIndex(12)
	ColorLightMagenta = ColorFromIndex(13)
	ColorLightCyan    = ColorFromIndex(14)
	ColorWhite        = ColorFromIndex(15)
)

var namedColors = map[string]Color{
	"default":      ColorDefault,
	"black":        ColorBlack,
	"red":          ColorRed,
	"green":        ColorGreen,
	"yellow":       ColorYellow,
	"blue":         ColorBlue,
	"magenta":      ColorMagenta,
	"cyan":         ColorCyan,
	"gray":         ColorGray,
	"grey":         ColorGray,
	"darkgray":     ColorDarkGray,
	"darkgrey":     ColorDarkGray,
	"lightred":     ColorLightRed,
	"lightgreen":   ColorLightGreen,
	"lightyellow":  ColorLightYellow,
	"lightblue":    ColorLightBlue,
	"lightmagenta": ColorLightMagenta,
	"lightcyan":    ColorLightCyan,
	"white":        ColorWhite,
}

// ColorFromRGB creates a true color.
func ColorFromRGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// ColorFromIndex creates a palette color.
func ColorFromIndex(index uint8) Color {
	return Color{R: index, Indexed: true}
}

// ParseColor accepts a palette name ("lightgreen", "dark_gray"), a hex
// value ("#1e90ff", "#fff") or "default".
func ParseColor(s string) (Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.NewReplacer("_", "", "-", "", " ", "").Replace(name)
	if c, ok := namedColors[name]; ok {
		return c, nil
	}
	if strings.HasPrefix(name, "#") {
		return colorFromHex(name[1:])
	}
	return Color{}, fmt.Errorf("unknown color %q", s)
}

func colorFromHex(hex string) (Color, error) {
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("invalid hex color length: #%s", hex)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color: #%s", hex)
	}
	return ColorFromRGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// IsDefault reports whether c is the terminal default.
func (c Color) IsDefault() bool {
	return c.Default
}

func (c Color) String() string {
	switch {
	case c.Default:
		return "default"
	case c.Indexed:
		return fmt.Sprintf("idx(%d)", c.R)
	}
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
