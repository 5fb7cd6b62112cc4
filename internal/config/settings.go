package config

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/dshills/seqterm/internal/config/loader"
)

// KeymapPrefix starts every keymap path.
const KeymapPrefix = "keymap."

type setting struct {
	path string
	get  func(c *Config) any
	set  func(c *Config, path string, v any) error
}

func stringSetting(path string, field func(c *Config) *string) setting {
	return setting{
		path: path,
		get:  func(c *Config) any { return *field(c) },
		set: func(c *Config, path string, v any) error {
			s, err := toString(path, v)
			if err == nil {
				*field(c) = s
			}
			return err
		},
	}
}

func boolSetting(path string, field func(c *Config) *bool) setting {
	return setting{
		path: path,
		get:  func(c *Config) any { return *field(c) },
		set: func(c *Config, path string, v any) error {
			b, err := toBool(path, v)
			if err == nil {
				*field(c) = b
			}
			return err
		},
	}
}

func intSetting(path string, field func(c *Config) *int) setting {
	return setting{
		path: path,
		get:  func(c *Config) any { return *field(c) },
		set: func(c *Config, path string, v any) error {
			n, err := toInt(path, v)
			if err == nil {
				*field(c) = n
			}
			return err
		},
	}
}

func floatSetting(path string, field func(c *Config) *float64) setting {
	return setting{
		path: path,
		get:  func(c *Config) any { return *field(c) },
		set: func(c *Config, path string, v any) error {
			f, err := toFloat(path, v)
			if err == nil {
				*field(c) = f
			}
			return err
		},
	}
}

func durationSetting(path string, field func(c *Config) *time.Duration) setting {
	return setting{
		path: path,
		get:  func(c *Config) any { return field(c).String() },
		set: func(c *Config, path string, v any) error {
			d, err := toDuration(path, v)
			if err == nil {
				*field(c) = d
			}
			return err
		},
	}
}

var settings = []setting{
	stringSetting("logging.level", func(c *Config) *string { return &c.Logging.Level }),
	stringSetting("logging.file", func(c *Config) *string { return &c.Logging.File }),
	durationSetting("loop.frame_interval", func(c *Config) *time.Duration { return &c.Loop.FrameInterval }),
	boolSetting("ui.splash", func(c *Config) *bool { return &c.UI.Splash }),
	intSetting("ui.grid.columns", func(c *Config) *int { return &c.UI.Grid.Columns }),
	intSetting("ui.grid.rows", func(c *Config) *int { return &c.UI.Grid.Rows }),
	stringSetting("ui.theme.border", func(c *Config) *string { return &c.UI.Theme.Border }),
	stringSetting("ui.theme.focus_border", func(c *Config) *string { return &c.UI.Theme.FocusBorder }),
	stringSetting("ui.theme.grid_dot", func(c *Config) *string { return &c.UI.Theme.GridDot }),
	stringSetting("ui.theme.grid_cursor", func(c *Config) *string { return &c.UI.Theme.GridCursor }),
	stringSetting("ui.theme.status_fg", func(c *Config) *string { return &c.UI.Theme.StatusFg }),
	stringSetting("ui.theme.status_bg", func(c *Config) *string { return &c.UI.Theme.StatusBg }),
	boolSetting("audio.enabled", func(c *Config) *bool { return &c.Audio.Enabled }),
	intSetting("audio.sample_rate", func(c *Config) *int { return &c.Audio.SampleRate }),
	stringSetting("audio.waveform", func(c *Config) *string { return &c.Audio.Waveform }),
	floatSetting("audio.frequency", func(c *Config) *float64 { return &c.Audio.Frequency }),
	floatSetting("audio.bpm", func(c *Config) *float64 { return &c.Audio.BPM }),
	boolSetting("watch", func(c *Config) *bool { return &c.Watch }),
}

var settingsByPath = func() map[string]setting {
	m := make(map[string]setting, len(settings))
	for _, s := range settings {
		m[s.path] = s
	}
	return m
}()

// Paths lists every settable path except keymap entries.
func Paths() []string {
	paths := make([]string, len(settings))
	for i, s := range settings {
		paths[i] = s.path
	}
	return paths
}

// Set assigns value to the setting at path. Strings are converted for
// non-string settings, so environment values can be applied directly.
func (c *Config) Set(path string, value any) error {
	if spec, ok := strings.CutPrefix(path, KeymapPrefix); ok {
		name, err := toString(path, value)
		if err != nil {
			return err
		}
		c.Bind(spec, name)
		return nil
	}
	s, ok := settingsByPath[path]
	if !ok {
		return fmt.Errorf("%s: %w", path, ErrSettingNotFound)
	}
	return s.set(c, path, value)
}

// Get returns the value at path. Durations are returned as strings.
func (c *Config) Get(path string) (any, error) {
	if spec, ok := strings.CutPrefix(path, KeymapPrefix); ok {
		return c.Keymap[canonicalSpec(spec)], nil
	}
	s, ok := settingsByPath[path]
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, ErrSettingNotFound)
	}
	return s.get(c), nil
}

// Apply sets every entry of a flattened map in path order. It keeps going
// past bad entries and returns all errors joined.
func (c *Config) Apply(values map[string]any) error {
	var errs []error
	for _, path := range loader.SortedKeys(values) {
		if err := c.Set(path, values[path]); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Map returns the configuration as nested maps keyed like the config file.
func (c *Config) Map() map[string]any {
	out := make(map[string]any)
	for _, s := range settings {
		setByPath(out, s.path, s.get(c))
	}

	keymap := make(map[string]any, len(c.Keymap))
	specs := make([]string, 0, len(c.Keymap))
	for spec := range c.Keymap {
		specs = append(specs, spec)
	}
	sort.Strings(specs)
	for _, spec := range specs {
		keymap[spec] = c.Keymap[spec]
	}
	out["keymap"] = keymap
	return out
}

// setByPath sets a value in a nested map using a dot-separated path.
func setByPath(data map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	current := data
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}
	current[parts[len(parts)-1]] = value
}

func typeError(path, expected string, v any) error {
	return &TypeError{Path: path, Expected: expected, Actual: fmt.Sprintf("%T", v)}
}

func toString(path string, v any) (string, error) {
	if s, ok := v.(string); ok {
		return s, nil
	}
	return "", typeError(path, "string", v)
}

func toBool(path string, v any) (bool, error) {
	switch b := v.(type) {
	case bool:
		return b, nil
	case string:
		switch strings.ToLower(b) {
		case "true", "yes", "on", "1":
			return true, nil
		case "false", "no", "off", "0":
			return false, nil
		}
	}
	return false, typeError(path, "bool", v)
}

func toInt(path string, v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case uint64:
		return int(n), nil
	case float64:
		if n == math.Trunc(n) {
			return int(n), nil
		}
	case string:
		if i, err := strconv.Atoi(n); err == nil {
			return i, nil
		}
	}
	return 0, typeError(path, "integer", v)
}

func toFloat(path string, v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case string:
		if f, err := strconv.ParseFloat(n, 64); err == nil {
			return f, nil
		}
	}
	return 0, typeError(path, "number", v)
}

// toDuration accepts duration strings ("16ms") and bare numbers, which are
// milliseconds.
func toDuration(path string, v any) (time.Duration, error) {
	switch d := v.(type) {
	case time.Duration:
		return d, nil
	case string:
		if parsed, err := time.ParseDuration(d); err == nil {
			return parsed, nil
		}
		if ms, err := strconv.Atoi(d); err == nil {
			return time.Duration(ms) * time.Millisecond, nil
		}
	case int, int64, uint64, float64:
		ms, err := toFloat(path, d)
		if err != nil {
			return 0, err
		}
		return time.Duration(ms * float64(time.Millisecond)), nil
	}
	return 0, typeError(path, "duration", v)
}
