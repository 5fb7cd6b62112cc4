package loader

import (
	"os"
	"strings"
)

// EnvPrefix is the prefix of every environment variable seqterm reads.
const EnvPrefix = "SEQTERM_"

// EnvLoader loads configuration from environment variables. Values are
// returned as strings under their dotted config paths; typing happens when
// they are applied.
type EnvLoader struct {
	mapping map[string]string // Env var -> config path
	lookup  func(string) (string, bool)
}

// NewEnvLoader creates a loader with the default variable mapping.
func NewEnvLoader() *EnvLoader {
	return NewEnvLoaderWithMapping(DefaultEnvMapping())
}

// NewEnvLoaderWithMapping creates a loader with custom environment variable mappings.
func NewEnvLoaderWithMapping(mapping map[string]string) *EnvLoader {
	return &EnvLoader{mapping: mapping, lookup: os.LookupEnv}
}

// DefaultEnvMapping returns the default environment variable mappings.
func DefaultEnvMapping() map[string]string {
	return map[string]string{
		EnvPrefix + "LOG_LEVEL":      "logging.level",
		EnvPrefix + "LOG_FILE":       "logging.file",
		EnvPrefix + "FRAME_INTERVAL": "loop.frame_interval",
		EnvPrefix + "AUDIO_ENABLED":  "audio.enabled",
		EnvPrefix + "AUDIO_BPM":      "audio.bpm",
	}
}

// Load returns the mapped variables that are set. Empty values count as
// set.
func (l *EnvLoader) Load() (map[string]any, error) {
	config := make(map[string]any)
	for env, path := range l.mapping {
		if val, ok := l.lookup(env); ok {
			config[path] = strings.TrimSpace(val)
		}
	}
	return config, nil
}

// Variables returns the mapped variable names.
func (l *EnvLoader) Variables() []string {
	names := make([]string, 0, len(l.mapping))
	for env := range l.mapping {
		names = append(names, env)
	}
	return names
}
