// Package app wires configuration, logging and the interpreter together
// for the replay and edit front ends.
package app

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/dshills/modalkit/internal/config"
	"github.com/dshills/modalkit/internal/config/watcher"
	"github.com/dshills/modalkit/internal/dispatcher"
	"github.com/dshills/modalkit/internal/engine/buffer"
	"github.com/dshills/modalkit/internal/engine/clipboard"
	"github.com/dshills/modalkit/internal/input/key"
)

// Options configures the application.
type Options struct {
	// ConfigPath is the configuration file. Empty uses the defaults.
	ConfigPath string

	// File is the file to edit. It need not exist yet.
	File string

	// Input, when set, is read as the initial buffer content instead of
	// File. File still names where :w writes.
	Input io.Reader

	// LogLevel and LogFormat override the config when non-empty.
	LogLevel  string
	LogFormat string

	// LogOutput receives log output. Nil discards logs.
	LogOutput io.Writer

	// Watch reloads the config file when it changes.
	Watch bool
}

// Application is one editing session: a buffer, its interpreter and the
// services around them.
type Application struct {
	opts    Options
	cfg     config.Config
	session uuid.UUID
	logger  *slog.Logger

	interp   *dispatcher.Interpreter
	commands *commands
	watcher  *watcher.Watcher

	quit bool
}

// New creates an application from opts.
func New(opts Options) (*Application, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, &InitError{Component: "config", Err: err}
	}

	app := &Application{
		opts:    opts,
		cfg:     cfg,
		session: uuid.New(),
	}
	app.logger = app.newLogger().With("session", app.session.String())

	buf, err := app.loadBuffer()
	if err != nil {
		return nil, &InitError{Component: "buffer", Err: err}
	}

	app.commands = newCommands(app)
	interpOpts := []dispatcher.Option{
		dispatcher.WithLogger(app.logger),
		dispatcher.WithCommandExecutor(app.commands),
	}
	if cfg.SystemClipboard {
		sys, err := clipboard.NewSystem()
		if err != nil {
			app.logger.Warn("system clipboard unavailable", "error", err)
		} else {
			interpOpts = append(interpOpts, dispatcher.WithClipboard(sys))
		}
	}

	app.interp, err = dispatcher.New(cfg, buf, interpOpts...)
	if err != nil {
		return nil, &InitError{Component: "interpreter", Err: err}
	}

	if opts.Watch && opts.ConfigPath != "" {
		w, err := watcher.New(opts.ConfigPath, watcher.WithLogger(app.logger))
		if err != nil {
			return nil, &InitError{Component: "config watcher", Err: err}
		}
		app.watcher = w
	}

	app.logger.Info("session started", "file", opts.File, "config", cfg.Path)
	return app, nil
}

func (app *Application) newLogger() *slog.Logger {
	if app.opts.LogOutput == nil {
		return NullLogger()
	}
	level := app.cfg.LogLevel
	if app.opts.LogLevel != "" {
		level = app.opts.LogLevel
	}
	format := app.cfg.LogFormat
	if app.opts.LogFormat != "" {
		format = app.opts.LogFormat
	}
	return NewLogger(LoggerConfig{
		Level:  ParseLogLevel(level),
		Output: app.opts.LogOutput,
		Format: format,
	})
}

func (app *Application) loadBuffer() (*buffer.Buffer, error) {
	opts := []buffer.Option{buffer.WithPath(app.opts.File)}

	if app.opts.Input != nil {
		return buffer.NewFromReader(app.opts.Input, opts...)
	}
	if app.opts.File == "" {
		return buffer.New(opts...), nil
	}

	f, err := os.Open(app.opts.File)
	if errors.Is(err, fs.ErrNotExist) {
		return buffer.New(opts...), nil
	}
	if err != nil {
		return nil, &OperationError{Op: "read", Target: app.opts.File, Err: err}
	}
	defer f.Close()

	buf, err := buffer.NewFromReader(f, opts...)
	if err != nil {
		return nil, &OperationError{Op: "read", Target: app.opts.File, Err: err}
	}
	return buf, nil
}

// Interpreter returns the session's interpreter.
func (app *Application) Interpreter() *dispatcher.Interpreter {
	return app.interp
}

// Buffer returns the buffer being edited.
func (app *Application) Buffer() *buffer.Buffer {
	return app.interp.Buffer()
}

// Config returns the active configuration.
func (app *Application) Config() config.Config {
	return app.cfg
}

// Logger returns the session logger.
func (app *Application) Logger() *slog.Logger {
	return app.logger
}

// SessionID identifies this session in logs.
func (app *Application) SessionID() uuid.UUID {
	return app.session
}

// Done reports whether a quit command has run.
func (app *Application) Done() bool {
	return app.quit
}

// HandleKey applies pending config reloads and then the key. Keys after
// a quit are ignored.
func (app *Application) HandleKey(ev key.Event) {
	if app.quit {
		return
	}
	app.applyConfigUpdates()
	app.interp.HandleKey(ev)
}

// applyConfigUpdates reloads the interpreter with any config the watcher
// delivered since the last key.
func (app *Application) applyConfigUpdates() {
	if app.watcher == nil {
		return
	}
	for {
		select {
		case cfg, ok := <-app.watcher.Updates():
			if !ok {
				return
			}
			app.Reload(cfg)
		default:
			return
		}
	}
}

// Reload switches to cfg. A config the interpreter rejects is logged and
// the current one is kept.
func (app *Application) Reload(cfg config.Config) {
	if err := app.interp.Reload(cfg); err != nil {
		app.logger.Warn("config reload rejected", "error", err)
		return
	}
	app.cfg = cfg
	app.logger.Info("config reloaded", "path", cfg.Path)
}

// Close stops background services.
func (app *Application) Close() error {
	if app.watcher == nil {
		return nil
	}
	if err := app.watcher.Close(); err != nil {
		return fmt.Errorf("close config watcher: %w", err)
	}
	return nil
}
