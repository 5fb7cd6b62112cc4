package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dshills/seqterm/internal/app"
	"github.com/dshills/seqterm/internal/config"
	"github.com/dshills/seqterm/internal/renderer/backend"
)

// ErrNotTerminal is returned when stdin or stdout is redirected.
var ErrNotTerminal = errors.New("seqterm needs a terminal on stdin and stdout")

type flags struct {
	configPath string
	logLevel   string
	logFile    string
	noSplash   bool
	watch      bool
	audio      bool
}

func newRootCommand() *cobra.Command {
	var f flags

	root := &cobra.Command{
		Use:   "seqterm",
		Short: "Terminal music sequencer",
		Long: `seqterm is a modal terminal music sequencer with split windows.

Configuration is read from config.toml (or config.yaml) and init.lua in the
config directory, then SEQTERM_* environment variables, then flags.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd.Context(), f.loadOptions(cmd))
		},
	}
	root.SetVersionTemplate(fmt.Sprintf("seqterm %s\n  commit: %s\n  built:  %s\n", version, commit, date))

	pf := root.PersistentFlags()
	pf.StringVarP(&f.configPath, "config", "c", "", "Path to configuration file")
	pf.StringVar(&f.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	pf.StringVar(&f.logFile, "log-file", "", "Log file (default $XDG_STATE_HOME/seqterm/seqterm.log)")
	pf.BoolVar(&f.noSplash, "no-splash", false, "Start with a piano roll instead of the splash screen")
	pf.BoolVar(&f.watch, "watch", false, "Reload configuration when it changes")
	pf.BoolVar(&f.audio, "audio", false, "Start the metronome audio stream")

	root.AddCommand(newConfigCommand(&f))
	return root
}

func newConfigCommand(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := f.loadOptions(cmd)
			opts.ScriptOutput = cmd.ErrOrStderr()
			cfg, err := config.Load(cmd.Context(), opts)
			if err != nil {
				return err
			}
			return printConfig(cmd.OutOrStdout(), cfg)
		},
	}
}

func printConfig(w io.Writer, cfg *config.Config) error {
	data, err := toml.Marshal(cfg.Map())
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// loadOptions maps flags onto config overrides. Only flags given on the
// command line override lower layers.
func (f *flags) loadOptions(cmd *cobra.Command) config.Options {
	overrides := make(map[string]any)
	changed := func(name string) bool {
		fl := cmd.Flags().Lookup(name)
		return fl != nil && fl.Changed
	}

	if changed("log-level") {
		overrides["logging.level"] = f.logLevel
	}
	if changed("log-file") {
		overrides["logging.file"] = f.logFile
	}
	if changed("no-splash") {
		overrides["ui.splash"] = !f.noSplash
	}
	if changed("watch") {
		overrides["watch"] = f.watch
	}
	if changed("audio") {
		overrides["audio.enabled"] = f.audio
	}

	return config.Options{
		Path:      f.configPath,
		Overrides: overrides,
	}
}

func runTUI(ctx context.Context, opts config.Options) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return ErrNotTerminal
	}
	logPath := app.DefaultLogFile()
	cfg, err := config.Load(ctx, opts)
	if err != nil {
		return err
	}
	if cfg.Logging.File != "" {
		logPath = cfg.Logging.File
	}
	logFile, err := app.OpenLogFile(logPath)
	if err != nil {
		return err
	}
	defer logFile.Close()

	logger := app.NewLogger(app.LoggerConfig{
		Level:  app.ParseLogLevel(cfg.Logging.Level),
		Output: logFile,
	})
	// init.lua print output from reloads goes to the log, not the screen.
	opts.ScriptOutput = logFile
	logger.Info("seqterm %s (%s)", version, commit)

	terminal, err := backend.NewTerminal()
	if err != nil {
		return &app.InitError{Component: "terminal", Err: err}
	}

	application, err := app.New(app.Options{
		Config:  cfg,
		Load:    opts,
		Backend: terminal,
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case sig := <-signals:
			logger.Info("signal %s", sig)
			application.Stop()
		case <-done:
		}
	}()

	return application.Run(ctx)
}
