package app

import (
	"errors"
	"time"

	"github.com/glancer/glance/internal/engine/buffer"
	"github.com/glancer/glance/internal/input"
	"github.com/glancer/glance/internal/view"
	"github.com/glancer/glance/internal/watch"
)

// Run initializes the backend and drives the event loop until a quit
// command arrives or the backend event stream closes. Returns nil on a
// normal exit.
func (app *Application) Run() error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := app.backend.Init(); err != nil {
		return err
	}
	defer app.backend.Shutdown()
	defer app.dumpMetrics()

	if app.watcher != nil {
		defer func() { _ = app.watcher.Close() }()
	}

	app.vc.Resize(app.backend.Size())
	app.render()

	var watchEvents <-chan watch.Event
	var watchErrs <-chan error
	if app.watcher != nil {
		watchEvents = app.watcher.Events()
		watchErrs = app.watcher.Errors()
	}

	for {
		select {
		case <-app.quit:
			app.logger.Info("quit")
			return nil

		case ev, ok := <-app.backend.Events():
			if !ok {
				return nil
			}
			start := time.Now()
			err := app.handleEvent(ev)
			app.metrics.RecordEvent(time.Since(start))
			if err != nil {
				if errors.Is(err, ErrQuit) {
					app.logger.Info("quit")
					return nil
				}
				return err
			}
			app.render()

		case _, ok := <-watchEvents:
			if !ok {
				watchEvents = nil
				continue
			}
			app.reload()
			app.render()

		case err, ok := <-watchErrs:
			if !ok {
				watchErrs = nil
				continue
			}
			app.logger.Warn("file watch error: %v", err)
		}
	}
}

// handleEvent interprets one backend event and applies the resulting
// commands in order. Returns ErrQuit when a quit command is reached;
// commands after it in the same batch are not applied.
func (app *Application) handleEvent(ev input.Event) error {
	for _, cmd := range app.interp.Interpret(ev) {
		if err := app.applyCommand(cmd); err != nil {
			return err
		}
	}
	return nil
}

func (app *Application) applyCommand(cmd input.Command) error {
	cell := app.backend.Metrics().CellSize(app.cfg.FontSize)

	switch c := cmd.(type) {
	case input.MotionCommand:
		_, rows := app.vc.VisibleCells(cell)
		app.cur.Apply(c.Motion, app.buf, rows)
		app.vc.EnsureVisible(app.cur.PixelBounds(cell))

	case input.ScrollPixels:
		app.vc.ScrollBy(c.DX, c.DY)

	case input.ScrollCells:
		app.vc.ScrollByCells(c.DCols, c.DRows, cell)

	case input.Resize:
		app.vc.Resize(c.Size)
		cols, rows := app.vc.VisibleCells(cell)
		app.cur.ClampTo(app.buf, cols, rows)

	case input.Quit:
		return ErrQuit
	}
	return nil
}

// reload replaces the buffer with a fresh load of the opened file,
// clamps the cursor against the new content, and scrolls it back into
// view: shrinking the file must not leave the window past the cursor.
func (app *Application) reload() {
	app.buf = buffer.Load(app.filePath)

	cell := app.backend.Metrics().CellSize(app.cfg.FontSize)
	cols, rows := app.vc.VisibleCells(cell)
	app.cur.ClampTo(app.buf, cols, rows)
	app.vc.EnsureVisible(app.cur.PixelBounds(cell))

	app.metrics.RecordReload()
	app.logger.Info("reloaded %q (%d lines, rev %s)",
		app.buf.Path(), app.buf.LineCount(), app.buf.Revision())
}

func (app *Application) dumpMetrics() {
	s := app.metrics.Snapshot()
	app.logger.Debug("session stats: uptime=%s events=%d frames=%d reloads=%d avg_frame=%dns",
		s.Uptime.Round(time.Millisecond), s.EventCount, s.FrameCount, s.ReloadCount, s.AvgFrameTimeNs)
}

func (app *Application) render() {
	start := time.Now()
	frame := view.Build(app.buf, app.cur, app.vc,
		app.backend.Metrics(), app.cfg.FontSize, app.theme, app.interp.Status())
	app.backend.Render(frame)
	app.metrics.RecordFrame(time.Since(start))
}
