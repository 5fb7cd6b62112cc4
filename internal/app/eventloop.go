package app

import (
	"context"
	"time"

	"github.com/dshills/seqterm/internal/config"
	"github.com/dshills/seqterm/internal/input/key"
	"github.com/dshills/seqterm/internal/renderer/backend"
	"github.com/dshills/seqterm/internal/renderer/core"
	"github.com/dshills/seqterm/internal/renderer/statusline"
)

// eventLoop handles at most one event per iteration, then renders.
func (app *Application) eventLoop(ctx context.Context) error {
	app.render()

	for app.running.Load() {
		if ctx.Err() != nil {
			app.running.Store(false)
			break
		}
		app.pollReload(ctx)

		ev, ok := app.backend.PollEvent(app.config.Loop.FrameInterval)
		if ok {
			app.metrics.RecordEvent()
			app.handleBackendEvent(ev)
		} else {
			app.metrics.RecordIdle()
		}

		if app.running.Load() {
			app.render()
		}
	}

	if app.quit {
		return ErrQuit
	}
	return nil
}

// handleBackendEvent routes one terminal event.
func (app *Application) handleBackendEvent(ev backend.Event) {
	switch ev.Type {
	case backend.EventKey:
		app.handleKey(ev.Key)
	case backend.EventResize:
		app.logger.Debug("resize %dx%d", ev.Width, ev.Height)
	case backend.EventInterrupt:
	}
}

// handleKey feeds a key press to the popup stack and the resolver.
func (app *Application) handleKey(ev key.Event) {
	if ev.Plain(key.KeyEscape) && app.windows.IsPopupActive() {
		id, _ := app.windows.PopPopup()
		app.logger.Debug("popup %d closed", id)
	}
	app.status.ClearMessage()

	cmd := app.resolver.HandleKey(ev)
	if cmd == nil {
		return
	}
	app.dispatch(cmd)
}

// render draws the windows above a one-row command line.
func (app *Application) render() {
	start := time.Now()

	w, h := app.backend.Size()
	body, bottom := core.Rect{Width: w, Height: h}.SplitBottom(1)

	app.backend.Clear()
	app.windows.Render(app.backend, body)

	text, cursor := app.resolver.CommandText()
	app.status.SetMode(app.resolver.Mode())
	app.status.SetPending(app.resolver.Pending().Display())
	app.status.SetCommandBuffer(text, cursor)
	app.status.Render(app.backend, bottom)

	app.backend.Show()
	app.metrics.RecordFrame(time.Since(start))
}

// pollReload drains pending watcher events without blocking and reloads
// once if any arrived.
func (app *Application) pollReload(ctx context.Context) {
	if app.watcher == nil {
		return
	}

	changed := ""
	for {
		select {
		case ev, ok := <-app.watcher.Events():
			if !ok {
				app.watcher = nil
				return
			}
			app.logger.WithComponent("config").Debug("%s %s", ev.Op, ev.Path)
			changed = ev.Path
			continue
		case err, ok := <-app.watcher.Errors():
			if !ok {
				app.watcher = nil
				return
			}
			app.logger.WithComponent("config").Warn("watch: %v", err)
			continue
		default:
		}
		break
	}

	if changed != "" {
		_ = app.Reload(ctx)
	}
}

// Reload loads the configuration again and applies the parts that can
// change at runtime: log level, theme and keymap. On failure the running
// configuration is kept and the error is shown on the command line.
func (app *Application) Reload(ctx context.Context) error {
	cfg, err := config.Load(ctx, app.loadOpts)
	if err == nil {
		err = app.applyConfig(cfg)
	}
	app.metrics.RecordReload(err)

	log := app.logger.WithComponent("config")
	if err != nil {
		log.Error("reload: %v", err)
		app.status.SetMessage("config: "+err.Error(), statusline.MessageError)
		return NewOperationError("reload", app.loadOpts.ConfigDir(), err)
	}
	log.Info("reloaded")
	app.status.SetMessage("config reloaded", statusline.MessageInfo)
	return nil
}

func (app *Application) applyConfig(cfg *config.Config) error {
	theme, err := cfg.Theme()
	if err != nil {
		return err
	}
	bindings, err := cfg.Bindings()
	if err != nil {
		return err
	}

	app.logger.SetLevel(ParseLogLevel(cfg.Logging.Level))
	app.resolver.SetBindings(bindings)
	app.setTheme(theme)

	// Loop, audio and watch settings take effect on the next start.
	cfg.Loop = app.config.Loop
	cfg.Audio = app.config.Audio
	cfg.Watch = app.config.Watch
	app.config = cfg
	return nil
}
