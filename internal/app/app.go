package app

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/glancer/glance/internal/config"
	"github.com/glancer/glance/internal/engine/buffer"
	"github.com/glancer/glance/internal/engine/cursor"
	"github.com/glancer/glance/internal/geom"
	"github.com/glancer/glance/internal/input"
	"github.com/glancer/glance/internal/view"
	"github.com/glancer/glance/internal/view/backend"
	"github.com/glancer/glance/internal/view/viewport"
	"github.com/glancer/glance/internal/watch"
)

// Application is the central coordinator for the viewer. It owns the
// buffer, cursor, viewport, and interpreter, and drives them from the
// backend event stream.
type Application struct {
	cfg    config.Config
	logger *Logger

	buf    *buffer.Buffer
	cur    *cursor.Cursor
	vc     *viewport.Controller
	interp *input.Interpreter

	backend backend.Backend
	watcher *watch.Watcher
	theme   view.Theme

	// filePath is the path as given on the command line; reloads use
	// it so the displayed name never changes spelling.
	filePath string

	metrics   *Metrics
	sessionID string

	running  atomic.Bool
	quit     chan struct{}
	quitOnce sync.Once
}

// Options configures the application.
type Options struct {
	// ConfigPath is the path to the configuration file.
	ConfigPath string

	// File is the file to open on startup. Empty opens an unnamed
	// empty buffer.
	File string

	// LogLevel overrides the configured logging verbosity when set.
	LogLevel string

	// Backend overrides the default terminal backend. Used by tests.
	Backend backend.Backend

	// Logger overrides the default stderr logger. Used by tests.
	Logger *Logger
}

// New creates a new Application with the given options. Configuration
// and theme problems degrade to defaults with a warning; only a
// backend or watcher construction failure is fatal.
func New(opts Options) (*Application, error) {
	cfg, cfgErr := config.Load(opts.ConfigPath)

	logger := opts.Logger
	if logger == nil {
		lc := DefaultLoggerConfig()
		lc.Level = ParseLogLevel(cfg.LogLevel)
		if opts.LogLevel != "" {
			lc.Level = ParseLogLevel(opts.LogLevel)
		}
		logger = NewLogger(lc)
	}

	app := &Application{
		cfg:       cfg,
		logger:    logger.WithComponent("app"),
		metrics:   NewMetrics(),
		sessionID: uuid.New().String(),
		cur:       cursor.New(),
		vc:        viewport.New(geom.Rect{}),
		interp:    input.NewInterpreter(cfg.ArrowScrollStep),
		quit:      make(chan struct{}),
	}

	if cfgErr != nil {
		app.logger.Warn("config load failed, using defaults: %v", cfgErr)
	}

	theme, err := view.ParseTheme(
		cfg.Theme.Foreground, cfg.Theme.Background,
		cfg.Theme.Cursor, cfg.Theme.Label,
	)
	if err != nil {
		app.logger.Warn("theme invalid, using defaults: %v", err)
	}
	app.theme = theme

	app.filePath = opts.File
	if opts.File != "" {
		app.buf = buffer.Load(opts.File)
	} else {
		app.buf = buffer.New()
	}

	app.backend = opts.Backend
	if app.backend == nil {
		term, err := backend.NewTerminal(cfg.WheelScrollLines)
		if err != nil {
			return nil, err
		}
		app.backend = term
	}

	if cfg.Watch && opts.File != "" {
		if err := app.startWatcher(opts.File); err != nil {
			app.logger.Warn("file watch unavailable: %v", err)
		}
	}

	app.logger.WithField("session", app.sessionID).Info(
		"opened %q (%d lines, rev %s)",
		app.buf.Path(), app.buf.LineCount(), app.buf.Revision())

	return app, nil
}

func (app *Application) startWatcher(path string) error {
	w, err := watch.New()
	if err != nil {
		return err
	}
	if err := w.Watch(path); err != nil {
		_ = w.Close()
		return err
	}
	app.watcher = w
	return nil
}

// RequestQuit asks the event loop to exit through the normal quit
// path. Safe to call from any goroutine, any number of times; used for
// process signals.
func (app *Application) RequestQuit() {
	app.quitOnce.Do(func() { close(app.quit) })
}

// Buffer returns the current buffer. It changes identity on reload.
func (app *Application) Buffer() *buffer.Buffer {
	return app.buf
}

// Cursor returns the cursor model.
func (app *Application) Cursor() *cursor.Cursor {
	return app.cur
}

// Viewport returns the viewport controller.
func (app *Application) Viewport() *viewport.Controller {
	return app.vc
}

// Metrics returns the application metrics.
func (app *Application) Metrics() *Metrics {
	return app.metrics
}

// Logger returns the application logger.
func (app *Application) Logger() *Logger {
	return app.logger
}
