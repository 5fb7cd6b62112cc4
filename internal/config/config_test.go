package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dshills/seqterm/internal/command"
	"github.com/dshills/seqterm/internal/config/loader"
	"github.com/dshills/seqterm/internal/config/script"
	"github.com/dshills/seqterm/internal/input/key"
	"github.com/dshills/seqterm/internal/layout"
)

// mapEnv is an environment source with fixed values.
type mapEnv map[string]any

func (m mapEnv) Load() (map[string]any, error) { return m, nil }

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestSet(t *testing.T) {
	tests := []struct {
		path  string
		value any
		check func(c *Config) bool
	}{
		{"logging.level", "debug", func(c *Config) bool { return c.Logging.Level == "debug" }},
		{"loop.frame_interval", "10ms", func(c *Config) bool { return c.Loop.FrameInterval == 10*time.Millisecond }},
		{"loop.frame_interval", int64(20), func(c *Config) bool { return c.Loop.FrameInterval == 20*time.Millisecond }},
		{"loop.frame_interval", "30", func(c *Config) bool { return c.Loop.FrameInterval == 30*time.Millisecond }},
		{"ui.splash", "off", func(c *Config) bool { return !c.UI.Splash }},
		{"ui.grid.columns", int64(32), func(c *Config) bool { return c.UI.Grid.Columns == 32 }},
		{"ui.grid.rows", float64(12), func(c *Config) bool { return c.UI.Grid.Rows == 12 }},
		{"ui.grid.rows", "9", func(c *Config) bool { return c.UI.Grid.Rows == 9 }},
		{"ui.theme.grid_dot", "#333", func(c *Config) bool { return c.UI.Theme.GridDot == "#333" }},
		{"audio.enabled", true, func(c *Config) bool { return c.Audio.Enabled }},
		{"audio.bpm", "96.5", func(c *Config) bool { return c.Audio.BPM == 96.5 }},
		{"audio.sample_rate", int64(48000), func(c *Config) bool { return c.Audio.SampleRate == 48000 }},
		{"watch", "yes", func(c *Config) bool { return c.Watch }},
		{"keymap.Ctrl+n", "quit", func(c *Config) bool { return c.Keymap["<C-n>"] == "quit" }},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			c := Default()
			if err := c.Set(tt.path, tt.value); err != nil {
				t.Fatalf("Set(%q, %v) error = %v", tt.path, tt.value, err)
			}
			if !tt.check(c) {
				t.Errorf("Set(%q, %v) did not take effect", tt.path, tt.value)
			}
		})
	}
}

func TestSetErrors(t *testing.T) {
	tests := []struct {
		path    string
		value   any
		wantErr error
	}{
		{"ui.nothing", 1, ErrSettingNotFound},
		{"ui.grid.rows", "many", nil},
		{"ui.grid.rows", 1.5, nil},
		{"ui.splash", "maybe", nil},
		{"logging.level", 3, nil},
		{"keymap.<C-n>", true, nil},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			err := Default().Set(tt.path, tt.value)
			if err == nil {
				t.Fatal("Set() error = nil")
			}
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Set() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			var terr *TypeError
			if !errors.As(err, &terr) || terr.Path != tt.path {
				t.Errorf("Set() error = %v, want *TypeError for %s", err, tt.path)
			}
		})
	}
}

func TestGet(t *testing.T) {
	c := Default()
	if v, _ := c.Get("loop.frame_interval"); v != "16ms" {
		t.Errorf("Get(frame_interval) = %v", v)
	}
	if v, _ := c.Get("keymap.Ctrl+s"); v != "split.horizontal" {
		t.Errorf("Get(keymap.Ctrl+s) = %v", v)
	}
	if _, err := c.Get("nope"); !errors.Is(err, ErrSettingNotFound) {
		t.Errorf("Get(nope) error = %v", err)
	}
}

func TestBindCanonicalizes(t *testing.T) {
	c := Default()
	c.Bind("Ctrl+s", "quit")
	if c.Keymap["<C-s>"] != "quit" {
		t.Errorf("keymap = %v", c.Keymap)
	}
	c.Unbind("<Left>")

	b, err := c.Bindings()
	if err != nil {
		t.Fatalf("Bindings() error = %v", err)
	}
	cmd, ok := b.Lookup(key.MustParse("<C-s>"))
	if !ok || cmd != command.Quit() {
		t.Errorf("Lookup(<C-s>) = %v, %v", cmd, ok)
	}
	if _, ok := b.Lookup(key.MustParse("<Left>")); ok {
		t.Error("<Left> still bound after Unbind")
	}
	if cmd, _ := b.Lookup(key.MustParse("<C-v>")); cmd != command.Split(layout.Vertical) {
		t.Errorf("Lookup(<C-v>) = %v", cmd)
	}
}

func TestClone(t *testing.T) {
	c := Default()
	d := c.Clone()
	d.Bind("<C-q>", "quit")
	d.UI.Grid.Rows = 1
	if _, ok := c.Keymap["<C-q>"]; ok {
		t.Error("Clone shares the keymap")
	}
	if c.UI.Grid.Rows == 1 {
		t.Error("Clone shares fields")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		field string
		edit  func(c *Config)
	}{
		{"level", "logging.level", func(c *Config) { c.Logging.Level = "loud" }},
		{"interval", "loop.frame_interval", func(c *Config) { c.Loop.FrameInterval = 0 }},
		{"columns", "ui.grid.columns", func(c *Config) { c.UI.Grid.Columns = 0 }},
		{"rows", "ui.grid.rows", func(c *Config) { c.UI.Grid.Rows = 5000 }},
		{"color", "ui.theme", func(c *Config) { c.UI.Theme.Border = "plaid" }},
		{"plain key", "keymap", func(c *Config) { c.Keymap["x"] = "quit" }},
		{"unknown binding", "keymap", func(c *Config) { c.Keymap["<C-x>"] = "explode" }},
		{"bad spec", "keymap", func(c *Config) { c.Keymap["<C-"] = "quit" }},
		{"rate", "audio.sample_rate", func(c *Config) { c.Audio.SampleRate = 100 }},
		{"waveform", "audio.waveform", func(c *Config) { c.Audio.Waveform = "square" }},
		{"frequency", "audio.frequency", func(c *Config) { c.Audio.Frequency = 30000 }},
		{"bpm", "audio.bpm", func(c *Config) { c.Audio.BPM = 1000 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.edit(c)
			err := c.Validate()
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() = %v, want *ValidationError", err)
			}
			if verr.Field != tt.field {
				t.Errorf("Field = %q, want %q", verr.Field, tt.field)
			}
		})
	}
}

func TestValidBPM(t *testing.T) {
	tests := []struct {
		bpm  float64
		want bool
	}{
		{MinBPM, true},
		{MaxBPM, true},
		{120, true},
		{19.99, false},
		{300.01, false},
		{0, false},
		{-120, false},
	}
	for _, tt := range tests {
		if got := ValidBPM(tt.bpm); got != tt.want {
			t.Errorf("ValidBPM(%v) = %v, want %v", tt.bpm, got, tt.want)
		}
	}
}

func TestValidateReportsAll(t *testing.T) {
	c := Default()
	c.Logging.Level = "loud"
	c.Audio.BPM = 0
	err := c.Validate()
	if err == nil || !strings.Contains(err.Error(), "logging.level") || !strings.Contains(err.Error(), "audio.bpm") {
		t.Errorf("Validate() = %v, want both fields", err)
	}
}

func TestMap(t *testing.T) {
	m := Default().Map()
	grid := m["ui"].(map[string]any)["grid"].(map[string]any)
	if grid["rows"] != 24 {
		t.Errorf("ui.grid.rows = %v", grid["rows"])
	}
	if m["loop"].(map[string]any)["frame_interval"] != "16ms" {
		t.Errorf("loop = %v", m["loop"])
	}
	if m["keymap"].(map[string]any)["<CR>"] != "confirm" {
		t.Errorf("keymap = %v", m["keymap"])
	}

	// Applying the flattened map to a fresh config reproduces it.
	c := Default()
	c.UI.Grid.Rows = 7
	d := Default()
	if err := d.Apply(loader.Flatten(c.Map())); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if d.UI.Grid.Rows != 7 {
		t.Errorf("round trip rows = %d", d.UI.Grid.Rows)
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadLayering(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "config.toml", `
[logging]
level = "warn"

[ui]
splash = false

[ui.grid]
columns = 16
rows = 8

[audio]
bpm = 100.0

[keymap]
"Ctrl+q" = "quit"
`)
	writeFile(t, dir, "init.lua", `
set("ui.grid.rows", 10)
set("audio.bpm", get("audio.bpm") + 1)
unbind("<C-v>")
`)

	env := mapEnv{"logging.level": "error", "audio.bpm": "130"}
	c, err := Load(context.Background(), Options{
		Dir:       dir,
		Env:       env,
		Overrides: map[string]any{"ui.grid.columns": 20},
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if c.Logging.Level != "error" {
		t.Errorf("level = %q, env should override file", c.Logging.Level)
	}
	if c.UI.Splash {
		t.Error("splash = true, file should override default")
	}
	if c.UI.Grid.Rows != 10 {
		t.Errorf("rows = %d, script should override file", c.UI.Grid.Rows)
	}
	if c.UI.Grid.Columns != 20 {
		t.Errorf("columns = %d, overrides apply last", c.UI.Grid.Columns)
	}
	if c.Audio.BPM != 131 {
		t.Errorf("bpm = %v, script sees env value", c.Audio.BPM)
	}
	if c.Keymap["<C-q>"] != "quit" || c.Keymap["<C-v>"] != "" || c.Keymap["<C-s>"] != "split.horizontal" {
		t.Errorf("keymap = %v", c.Keymap)
	}
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "config.yaml", "loop:\n  frame_interval: 8ms\naudio:\n  waveform: sine\n")

	c, err := Load(context.Background(), Options{Dir: dir, NoEnv: true})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Loop.FrameInterval != 8*time.Millisecond || c.Audio.Waveform != "sine" {
		t.Errorf("loaded %+v %+v", c.Loop, c.Audio)
	}
}

func TestLoadNothing(t *testing.T) {
	c, err := Load(context.Background(), Options{Dir: t.TempDir(), NoEnv: true})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.UI.Grid != Default().UI.Grid {
		t.Errorf("grid = %+v, want defaults", c.UI.Grid)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name  string
		setup func(dir string) Options
		check func(t *testing.T, err error)
	}{
		{
			name: "missing explicit file",
			setup: func(dir string) Options {
				return Options{Path: filepath.Join(dir, "nope.toml"), NoEnv: true}
			},
			check: func(t *testing.T, err error) {
				if !errors.Is(err, os.ErrNotExist) {
					t.Errorf("error = %v, want not exist", err)
				}
			},
		},
		{
			name: "parse error",
			setup: func(dir string) Options {
				writeFile(t, dir, "config.toml", "[ui\n")
				return Options{Dir: dir, NoEnv: true}
			},
			check: func(t *testing.T, err error) {
				var perr *loader.ParseError
				if !errors.As(err, &perr) {
					t.Errorf("error = %v, want *loader.ParseError", err)
				}
			},
		},
		{
			name: "unknown setting",
			setup: func(dir string) Options {
				writeFile(t, dir, "config.toml", "[ui]\nfont = \"mono\"\n")
				return Options{Dir: dir, NoEnv: true}
			},
			check: func(t *testing.T, err error) {
				if !errors.Is(err, ErrSettingNotFound) {
					t.Errorf("error = %v, want ErrSettingNotFound", err)
				}
			},
		},
		{
			name: "script error",
			setup: func(dir string) Options {
				writeFile(t, dir, "init.lua", `set("ui.grid.rows", "lots")`)
				return Options{Dir: dir, NoEnv: true}
			},
			check: func(t *testing.T, err error) {
				var serr *script.Error
				if !errors.As(err, &serr) {
					t.Errorf("error = %v, want *script.Error", err)
				}
			},
		},
		{
			name: "invalid value",
			setup: func(dir string) Options {
				return Options{Dir: dir, Env: mapEnv{"audio.bpm": "5"}}
			},
			check: func(t *testing.T, err error) {
				var verr *ValidationError
				if !errors.As(err, &verr) || verr.Field != "audio.bpm" {
					t.Errorf("error = %v, want audio.bpm validation error", err)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(context.Background(), tt.setup(t.TempDir()))
			if err == nil {
				t.Fatal("Load() error = nil")
			}
			tt.check(t, err)
		})
	}
}

func TestOptionsPaths(t *testing.T) {
	o := Options{Path: "/etc/seqterm/custom.yaml"}
	if o.FilePath() != "/etc/seqterm/custom.yaml" {
		t.Errorf("FilePath() = %q", o.FilePath())
	}
	if o.ScriptPath() != "/etc/seqterm/init.lua" {
		t.Errorf("ScriptPath() = %q", o.ScriptPath())
	}
	if got := o.WatchedFiles(); len(got) != 2 {
		t.Errorf("WatchedFiles() = %v", got)
	}

	o = Options{Dir: "/cfg"}
	if got := o.WatchedFiles(); len(got) != 4 {
		t.Errorf("WatchedFiles() = %v", got)
	}
}
