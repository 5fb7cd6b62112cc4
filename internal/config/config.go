package config

import (
	"maps"
	"time"

	"github.com/dshills/seqterm/internal/input"
	"github.com/dshills/seqterm/internal/input/key"
	"github.com/dshills/seqterm/internal/renderer/draw"
)

// Config is the complete seqterm configuration.
type Config struct {
	Logging Logging
	Loop    Loop
	UI      UI
	Audio   Audio

	// Keymap maps canonical key specs to binding names. An empty name
	// unbinds the key.
	Keymap map[string]string

	// Watch reloads the configuration when its files change.
	Watch bool
}

// Logging configures the log file.
type Logging struct {
	Level string
	File  string
}

// Loop configures the event loop.
type Loop struct {
	// FrameInterval is how long the loop waits for an event before
	// rendering again.
	FrameInterval time.Duration
}

// UI configures windows and colors.
type UI struct {
	// Splash shows the splash screen as the first window instead of a
	// piano roll.
	Splash bool
	Grid   Grid
	Theme  Theme
}

// Grid is the piano-roll size in steps.
type Grid struct {
	Columns int
	Rows    int
}

// Theme holds color names; see core.ParseColor. Empty keeps the default.
type Theme struct {
	Border      string
	FocusBorder string
	GridDot     string
	GridCursor  string
	StatusFg    string
	StatusBg    string
}

// Audio configures the sample stream.
type Audio struct {
	Enabled    bool
	SampleRate int
	Waveform   string
	Frequency  float64
	BPM        float64
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Logging: Logging{Level: "info"},
		Loop:    Loop{FrameInterval: 16 * time.Millisecond},
		UI: UI{
			Splash: true,
			Grid:   Grid{Columns: 64, Rows: 24},
		},
		Audio: Audio{
			SampleRate: 44100,
			Waveform:   "saw",
			Frequency:  220,
			BPM:        120,
		},
		Keymap: input.DefaultKeymap(),
	}
}

// Clone returns a deep copy.
func (c *Config) Clone() *Config {
	out := *c
	out.Keymap = maps.Clone(c.Keymap)
	return &out
}

// Bind sets the binding for a key spec. Specs that parse are stored in
// canonical form, so "Ctrl+s" and "<C-s>" name the same entry.
func (c *Config) Bind(spec, name string) {
	if c.Keymap == nil {
		c.Keymap = make(map[string]string)
	}
	c.Keymap[canonicalSpec(spec)] = name
}

// Unbind removes any binding for a key spec, including a default one.
func (c *Config) Unbind(spec string) {
	c.Bind(spec, "")
}

func canonicalSpec(spec string) string {
	ev, err := key.Parse(spec)
	if err != nil {
		return spec
	}
	return ev.String()
}

// Bindings builds the Normal-mode keymap.
func (c *Config) Bindings() (*input.Bindings, error) {
	return input.BindingsFromMap(c.Keymap)
}

// ThemeColors returns the theme's color names for draw.NewTheme.
func (c *Config) ThemeColors() draw.ThemeColors {
	t := c.UI.Theme
	return draw.ThemeColors{
		Border:      t.Border,
		FocusBorder: t.FocusBorder,
		GridDot:     t.GridDot,
		GridCursor:  t.GridCursor,
		StatusFg:    t.StatusFg,
		StatusBg:    t.StatusBg,
	}
}

// Theme builds the draw theme.
func (c *Config) Theme() (draw.Theme, error) {
	return draw.NewTheme(c.ThemeColors())
}
