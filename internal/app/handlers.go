package app

import (
	"fmt"

	"github.com/dshills/seqterm/internal/command"
	"github.com/dshills/seqterm/internal/config"
	"github.com/dshills/seqterm/internal/renderer/draw"
	"github.com/dshills/seqterm/internal/renderer/statusline"
	"github.com/dshills/seqterm/internal/widget/pianoroll"
	"github.com/dshills/seqterm/internal/widget/splash"
	"github.com/dshills/seqterm/internal/widget/splitselect"
	"github.com/dshills/seqterm/internal/window"
)

// themed is implemented by windows that can restyle after a reload.
type themed interface {
	SetTheme(draw.Theme)
}

// dispatch executes a resolved command.
func (app *Application) dispatch(cmd command.Resolved) {
	switch c := cmd.(type) {
	case command.Editor:
		app.metrics.RecordEditorCommand()
		app.dispatchEditor(c)
	case command.Local:
		app.metrics.RecordLocalCommand()
		app.windows.HandleInput(c)
		app.finishSplit()
	}
}

func (app *Application) dispatchEditor(cmd command.Editor) {
	switch cmd.Kind {
	case command.EditorQuit:
		app.logger.Debug("quit")
		app.quit = true
		app.running.Store(false)
	case command.EditorSplit:
		id := app.windows.PushPopup(splitselect.New(cmd.Direction, app.theme))
		app.logger.Debug("split %s: chooser %d", cmd.Direction, id)
	case command.EditorBpm:
		if !config.ValidBPM(cmd.BPM) {
			app.logger.Warn("ignoring tempo %g", cmd.BPM)
			app.status.SetMessage(fmt.Sprintf("bpm must be between %d and %d", config.MinBPM, config.MaxBPM), statusline.MessageError)
			return
		}
		app.tempo = cmd.BPM
		if app.player != nil {
			app.player.SetTempo(cmd.BPM)
		}
		app.logger.Debug("tempo %g", cmd.BPM)
	default:
		// Editing commands have no target yet.
		app.logger.Debug("unhandled command: %s", cmd)
	}
}

// finishSplit completes a split once the top popup is a chooser with a
// confirmed choice.
func (app *Application) finishSplit() {
	_, w, ok := app.windows.TopPopup()
	if !ok {
		return
	}
	chooser, ok := w.(*splitselect.Chooser)
	if !ok {
		return
	}
	kind, ok := chooser.Choice()
	if !ok {
		return
	}

	app.windows.PopPopup()
	if !app.windows.SplitCurrentWindow(chooser.Direction(), app.newWindow(kind)) {
		app.logger.Warn("split %s: no focused window", chooser.Direction())
		return
	}
	id, _ := app.windows.Focused()
	app.logger.Debug("split %s: new %s window %d", chooser.Direction(), kind, id)
}

func (app *Application) newWindow(kind splitselect.Kind) window.Window {
	if kind == splitselect.KindSplash {
		return splash.New(app.theme)
	}
	grid := app.config.UI.Grid
	return pianoroll.New(grid.Columns, grid.Rows, app.theme)
}

func (app *Application) rootWindow() window.Window {
	if app.config.UI.Splash {
		return app.newWindow(splitselect.KindSplash)
	}
	return app.newWindow(splitselect.KindPianoRoll)
}

// setTheme restyles the command line and every live window.
func (app *Application) setTheme(theme draw.Theme) {
	app.theme = theme
	app.status.SetStyle(theme.Status)

	ids := append(app.windows.Layout().Leaves(), app.windows.Popups()...)
	for _, id := range ids {
		if w, ok := app.windows.Lookup(id); ok {
			if t, ok := w.(themed); ok {
				t.SetTheme(theme)
			}
		}
	}
}
