package config

import (
	"errors"
	"strings"
)

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

var waveforms = map[string]bool{"saw": true, "sine": true}

// Tempo limits shared by audio.bpm and the bpm command.
const (
	MinBPM = 20
	MaxBPM = 300
)

// ValidBPM reports whether bpm is within [MinBPM, MaxBPM].
func ValidBPM(bpm float64) bool {
	return bpm >= MinBPM && bpm <= MaxBPM
}

// Validate checks every setting and returns all problems joined.
func (c *Config) Validate() error {
	var errs []error
	invalid := func(field string, value any, msg string) {
		errs = append(errs, &ValidationError{Field: field, Value: value, Message: msg})
	}

	if !logLevels[strings.ToLower(c.Logging.Level)] {
		invalid("logging.level", c.Logging.Level, "must be debug, info, warn or error")
	}
	if c.Loop.FrameInterval <= 0 {
		invalid("loop.frame_interval", c.Loop.FrameInterval, "must be positive")
	}
	if c.UI.Grid.Columns < 1 || c.UI.Grid.Columns > 1024 {
		invalid("ui.grid.columns", c.UI.Grid.Columns, "must be between 1 and 1024")
	}
	if c.UI.Grid.Rows < 1 || c.UI.Grid.Rows > 1024 {
		invalid("ui.grid.rows", c.UI.Grid.Rows, "must be between 1 and 1024")
	}
	if _, err := c.Theme(); err != nil {
		invalid("ui.theme", c.UI.Theme, err.Error())
	}
	if _, err := c.Bindings(); err != nil {
		invalid("keymap", len(c.Keymap), err.Error())
	}

	a := c.Audio
	if a.SampleRate < 8000 || a.SampleRate > 192000 {
		invalid("audio.sample_rate", a.SampleRate, "must be between 8000 and 192000")
	}
	if !waveforms[a.Waveform] {
		invalid("audio.waveform", a.Waveform, "must be saw or sine")
	}
	if a.Frequency <= 0 || a.Frequency >= float64(a.SampleRate)/2 {
		invalid("audio.frequency", a.Frequency, "must be above 0 and below half the sample rate")
	}
	if !ValidBPM(a.BPM) {
		invalid("audio.bpm", a.BPM, "must be between 20 and 300")
	}

	return errors.Join(errs...)
}
