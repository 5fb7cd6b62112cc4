package config

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dshills/seqterm/internal/config/loader"
	"github.com/dshills/seqterm/internal/config/script"
)

// File names looked up in the config directory, in order.
var fileNames = []string{"config.toml", "config.yaml", "config.yml"}

// ScriptName is the Lua script evaluated after the config file.
const ScriptName = "init.lua"

// Options selects the sources Load reads.
type Options struct {
	// Path is an explicit config file. When empty, Dir is searched.
	Path string
	// Dir is the config directory. When empty, DefaultDir is used.
	Dir string
	// NoEnv skips SEQTERM_* variables.
	NoEnv bool
	// NoScript skips init.lua.
	NoScript bool
	// Overrides apply last, keyed by dotted path.
	Overrides map[string]any
	// ScriptOutput receives print output from init.lua.
	ScriptOutput io.Writer

	// FS and Env replace the OS sources in tests.
	FS  loader.FileSystem
	Env loader.Loader
}

// DefaultDir returns $XDG_CONFIG_HOME/seqterm or the platform equivalent.
func DefaultDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".seqterm"
	}
	return filepath.Join(dir, "seqterm")
}

func (o Options) fs() loader.FileSystem {
	if o.FS != nil {
		return o.FS
	}
	return loader.DefaultFS()
}

// ConfigDir returns the directory holding the config file and init.lua.
func (o Options) ConfigDir() string {
	switch {
	case o.Dir != "":
		return o.Dir
	case o.Path != "":
		return filepath.Dir(o.Path)
	}
	return DefaultDir()
}

// FilePath returns the config file to read, or "" if there is none.
func (o Options) FilePath() string {
	if o.Path != "" {
		return o.Path
	}
	dir := o.ConfigDir()
	for _, name := range fileNames {
		path := filepath.Join(dir, name)
		if _, err := o.fs().Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ScriptPath returns the path of init.lua, whether or not it exists.
func (o Options) ScriptPath() string {
	return filepath.Join(o.ConfigDir(), ScriptName)
}

// WatchedFiles returns the files whose changes call for a reload.
func (o Options) WatchedFiles() []string {
	files := []string{o.ScriptPath()}
	if o.Path != "" {
		return append(files, o.Path)
	}
	for _, name := range fileNames {
		files = append(files, filepath.Join(o.ConfigDir(), name))
	}
	return files
}

// Load builds a configuration from defaults and every source selected by
// o, then validates it. A missing config file or script is not an error;
// an explicit Path that does not exist is.
func Load(ctx context.Context, o Options) (*Config, error) {
	c := Default()

	if path := o.FilePath(); path != "" {
		if err := c.loadFile(o.fs(), path, o.Path != ""); err != nil {
			return nil, err
		}
	}

	if !o.NoEnv {
		env := o.Env
		if env == nil {
			env = loader.NewEnvLoader()
		}
		values, err := env.Load()
		if err != nil {
			return nil, fmt.Errorf("environment: %w", err)
		}
		if err := c.Apply(values); err != nil {
			return nil, fmt.Errorf("environment: %w", err)
		}
	}

	if !o.NoScript {
		if err := c.runScript(ctx, o); err != nil {
			return nil, err
		}
	}

	if err := c.Apply(o.Overrides); err != nil {
		return nil, fmt.Errorf("overrides: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) loadFile(fsys loader.FileSystem, path string, explicit bool) error {
	if explicit {
		if _, err := fsys.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config file %s: %w", path, err)
		}
	}
	l, err := loader.ForPath(fsys, path)
	if err != nil {
		return err
	}
	values, err := l.Load()
	if err != nil {
		return err
	}
	if err := c.Apply(loader.Flatten(values)); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func (c *Config) runScript(ctx context.Context, o Options) error {
	path := o.ScriptPath()
	code, err := o.fs().ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	var opts []script.Option
	if o.ScriptOutput != nil {
		opts = append(opts, script.WithOutput(o.ScriptOutput))
	}
	return script.EvalString(ctx, path, string(code), c, opts...)
}
