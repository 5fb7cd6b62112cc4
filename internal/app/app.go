// Package app provides the main application structure and coordination
// for seqterm. It wires the window manager, the modal input resolver, the
// command line and the backend together and runs the event loop.
package app

import (
	"context"
	"sync/atomic"

	"github.com/dshills/seqterm/internal/audio"
	"github.com/dshills/seqterm/internal/config"
	"github.com/dshills/seqterm/internal/config/watcher"
	"github.com/dshills/seqterm/internal/input"
	"github.com/dshills/seqterm/internal/renderer/backend"
	"github.com/dshills/seqterm/internal/renderer/draw"
	"github.com/dshills/seqterm/internal/renderer/statusline"
	"github.com/dshills/seqterm/internal/window"
)

// Application is the explicit context the run loop works on. Everything
// except the running flag is owned by the loop goroutine.
type Application struct {
	config   *config.Config
	loadOpts config.Options
	backend  backend.Backend
	logger   *Logger
	metrics  *Metrics

	windows  *window.Manager
	resolver *input.Resolver
	status   *statusline.StatusLine
	theme    draw.Theme

	tempo   float64
	sink    audio.Sink
	player  *audio.Player
	watcher *watcher.Watcher

	running  atomic.Bool
	started  atomic.Bool
	stopping atomic.Bool
	quit     bool
}

// Options configures the application.
type Options struct {
	// Config is the loaded configuration. Defaults are used when nil.
	Config *config.Config

	// Load is passed back to config.Load on every reload.
	Load config.Options

	// Backend is the terminal the loop draws on and reads from.
	Backend backend.Backend

	// Logger defaults to NullLogger.
	Logger *Logger

	// AudioSink receives audio blocks when audio is enabled. A discarding
	// sink is used when nil.
	AudioSink audio.Sink
}

// New creates an Application from a loaded configuration.
func New(opts Options) (*Application, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = NullLogger
	}

	theme, err := cfg.Theme()
	if err != nil {
		return nil, &InitError{Component: "theme", Err: err}
	}
	bindings, err := cfg.Bindings()
	if err != nil {
		return nil, &InitError{Component: "keymap", Err: err}
	}

	app := &Application{
		config:   cfg,
		loadOpts: opts.Load,
		backend:  opts.Backend,
		logger:   logger,
		metrics:  NewMetrics(),
		resolver: input.NewResolver(bindings),
		status:   statusline.New(theme.Status),
		theme:    theme,
		tempo:    cfg.Audio.BPM,
		sink:     opts.AudioSink,
	}
	app.windows = window.NewManager(app.rootWindow())
	return app, nil
}

// Run initializes the backend and runs the event loop until Stop is
// called, ctx is done, or the user quits. A user quit returns ErrQuit.
func (app *Application) Run(ctx context.Context) error {
	if app.backend == nil {
		return ErrNoBackend
	}
	if !app.started.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}

	if err := app.backend.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	defer app.backend.Shutdown()

	app.startServices(ctx)
	defer app.stopServices()

	app.running.Store(true)
	if app.stopping.Load() {
		// Stop arrived before the loop was up.
		app.running.Store(false)
	}
	app.logger.Info("started")
	err := app.eventLoop(ctx)
	app.logger.Info("stopped: %s", app.metrics.Snapshot())
	return err
}

// Stop asks the loop to exit after the current iteration. It is safe to
// call from any goroutine, and a Stop before Run makes Run return at once.
func (app *Application) Stop() {
	app.stopping.Store(true)
	if !app.running.Swap(false) {
		return
	}
	if app.backend != nil {
		app.backend.PostEvent(backend.Event{Type: backend.EventInterrupt})
	}
}

// IsRunning reports whether the event loop is active.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Config returns the active configuration.
func (app *Application) Config() *config.Config {
	return app.config
}

// Windows returns the window manager.
func (app *Application) Windows() *window.Manager {
	return app.windows
}

// Resolver returns the modal input resolver.
func (app *Application) Resolver() *input.Resolver {
	return app.resolver
}

// StatusLine returns the command line.
func (app *Application) StatusLine() *statusline.StatusLine {
	return app.status
}

// Tempo returns the last tempo set by a Bpm command or the config.
func (app *Application) Tempo() float64 {
	return app.tempo
}

// Metrics returns the loop counters.
func (app *Application) Metrics() *Metrics {
	return app.metrics
}

// Logger returns the application's logger.
func (app *Application) Logger() *Logger {
	return app.logger
}

func (app *Application) startServices(ctx context.Context) {
	if app.config.Audio.Enabled {
		if err := app.startAudio(ctx); err != nil {
			app.logger.WithComponent("audio").Error("start: %v", err)
			app.status.SetMessage("audio: "+err.Error(), statusline.MessageError)
		}
	}
	if app.config.Watch {
		if err := app.startWatcher(); err != nil {
			app.logger.WithComponent("config").Warn("watch: %v", err)
		}
	}
}

func (app *Application) stopServices() {
	if app.watcher != nil {
		if err := app.watcher.Close(); err != nil {
			app.logger.WithComponent("config").Warn("close watcher: %v", err)
		}
		app.watcher = nil
	}
	app.stopAudio()
}

func (app *Application) startAudio(ctx context.Context) error {
	a := app.config.Audio
	// The player is stopped explicitly by stopServices.
	player, err := audio.StartPlayer(context.WithoutCancel(ctx), audio.PlayerConfig{
		SampleRate: a.SampleRate,
		Waveform:   a.Waveform,
		Frequency:  a.Frequency,
		BPM:        app.tempo,
		BlockSize:  audio.DefaultBlockSize,
		Sink:       app.sink,
	})
	if err != nil {
		return NewOperationError("audio", a.Waveform, err)
	}
	app.player = player
	app.logger.WithComponent("audio").Info("playing %s %gHz at %d Hz, %g bpm", a.Waveform, a.Frequency, a.SampleRate, app.tempo)
	return nil
}

func (app *Application) stopAudio() {
	if app.player == nil {
		return
	}
	if err := app.player.Stop(); err != nil {
		app.logger.WithComponent("audio").Error("stop: %v", err)
	}
	app.player = nil
}

func (app *Application) startWatcher() error {
	w, err := watcher.New(app.loadOpts.WatchedFiles())
	if err != nil {
		return NewOperationError("watch", app.loadOpts.ConfigDir(), err)
	}
	app.watcher = w
	app.logger.WithComponent("config").Info("watching %s", app.loadOpts.ConfigDir())
	return nil
}
