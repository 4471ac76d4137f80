package config

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/dshills/modalkit/internal/config/loader"
	"github.com/dshills/modalkit/internal/input/keymap"
	"github.com/dshills/modalkit/internal/input/mode"
)

// EnvPrefix is the prefix of environment variables that override file
// settings.
const EnvPrefix = "MODALKIT_"

// Config holds interpreter settings.
type Config struct {
	// UndoLevels is the number of undo steps kept.
	UndoLevels int

	// SequenceTimeout is how long a partial key sequence waits.
	SequenceTimeout time.Duration

	// IndentUnit is the text one indent level inserts.
	IndentUnit string

	// IndentWidth is how many leading spaces one unindent removes.
	IndentWidth int

	// SystemClipboard mirrors yanks and puts to the OS clipboard.
	SystemClipboard bool

	// LogLevel is debug, info, warn or error.
	LogLevel string

	// LogFormat is text or json.
	LogFormat string

	// Keymaps maps mode name → sequence → action name.
	Keymaps map[string]map[string]string

	// Path is the file the config was loaded from, empty for defaults.
	Path string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		UndoLevels:      1000,
		SequenceTimeout: time.Second,
		IndentUnit:      "    ",
		IndentWidth:     4,
		LogLevel:        "info",
		LogFormat:       "text",
		Keymaps:         keymap.DefaultTables(),
	}
}

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	fs  loader.FileSystem
	env loader.Loader
}

// WithFileSystem reads config files through fsys.
func WithFileSystem(fsys loader.FileSystem) Option {
	return func(o *loadOptions) {
		o.fs = fsys
	}
}

// WithEnv overlays settings from env, typically an EnvLoader.
func WithEnv(env loader.Loader) Option {
	return func(o *loadOptions) {
		o.env = env
	}
}

// Load reads the config file at path over the defaults. An empty path
// returns the defaults (plus environment overrides, when configured).
// User keymaps are merged per mode over the default tables; an empty
// action string unbinds a sequence.
func Load(path string, opts ...Option) (Config, error) {
	var o loadOptions
	for _, opt := range opts {
		opt(&o)
	}

	raw := make(map[string]any)
	if path != "" {
		l, err := loader.ForPath(o.fs, path)
		if err != nil {
			return Config{}, fmt.Errorf("load config %s: %w", path, err)
		}
		data, err := l.Load()
		if err != nil {
			return Config{}, fmt.Errorf("load config: %w", err)
		}
		if data == nil {
			return Config{}, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		raw = data
	}
	if o.env != nil {
		env, err := o.env.Load()
		if err != nil {
			return Config{}, fmt.Errorf("load environment: %w", err)
		}
		raw = loader.DeepMerge(raw, env)
	}

	cfg := Default()
	cfg.Path = path
	if err := cfg.apply(raw); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// apply copies recognized settings from a loaded map.
func (c *Config) apply(raw map[string]any) error {
	var errs []error
	for key, val := range raw {
		var err error
		switch key {
		case "undo_levels":
			c.UndoLevels, err = asInt(key, val)
		case "sequence_timeout":
			c.SequenceTimeout, err = asDuration(key, val)
		case "indent_unit":
			c.IndentUnit, err = asString(key, val)
		case "indent_width":
			c.IndentWidth, err = asInt(key, val)
		case "system_clipboard":
			c.SystemClipboard, err = asBool(key, val)
		case "log_level":
			c.LogLevel, err = asString(key, val)
		case "log_format":
			c.LogFormat, err = asString(key, val)
		case "keymaps":
			var user map[string]map[string]string
			user, err = asKeymaps(val)
			if err == nil {
				c.Keymaps = keymap.Merge(c.Keymaps, user)
			}
		default:
			err = &ValidationError{Field: key, Message: "unknown setting"}
		}
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Validate checks setting ranges and keymap mode names.
func (c Config) Validate() error {
	var errs []error
	if c.UndoLevels <= 0 {
		errs = append(errs, &ValidationError{Field: "undo_levels", Message: "must be positive", Value: c.UndoLevels})
	}
	if c.SequenceTimeout <= 0 {
		errs = append(errs, &ValidationError{Field: "sequence_timeout", Message: "must be positive", Value: c.SequenceTimeout})
	}
	if c.IndentWidth <= 0 {
		errs = append(errs, &ValidationError{Field: "indent_width", Message: "must be positive", Value: c.IndentWidth})
	}
	if c.IndentUnit == "" {
		errs = append(errs, &ValidationError{Field: "indent_unit", Message: "must not be empty"})
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		errs = append(errs, &ValidationError{Field: "log_format", Message: "must be text or json", Value: c.LogFormat})
	}
	for _, name := range slices.Sorted(maps.Keys(c.Keymaps)) {
		if _, ok := mode.Parse(name); !ok {
			errs = append(errs, &ValidationError{Field: "keymaps." + name, Message: "unknown mode"})
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrValidationFailed, errors.Join(errs...))
	}
	return nil
}

// BuildKeymap builds the configured keymap tables. Entries naming unknown
// actions are dropped and logged.
func (c Config) BuildKeymap(logger *slog.Logger) (*keymap.Keymap, error) {
	km, err := keymap.Build(c.Keymaps, logger)
	if err != nil {
		return nil, fmt.Errorf("build keymap: %w", err)
	}
	return km, nil
}

func asInt(key string, v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if n == float64(int(n)) {
			return int(n), nil
		}
	}
	return 0, &ValidationError{Field: key, Message: "must be an integer", Value: v}
}

func asString(key string, v any) (string, error) {
	if s, ok := v.(string); ok {
		return s, nil
	}
	return "", &ValidationError{Field: key, Message: "must be a string", Value: v}
}

func asBool(key string, v any) (bool, error) {
	if b, ok := v.(bool); ok {
		return b, nil
	}
	return false, &ValidationError{Field: key, Message: "must be a boolean", Value: v}
}

// asDuration accepts a Go duration string ("750ms") or a number of
// milliseconds.
func asDuration(key string, v any) (time.Duration, error) {
	if s, ok := v.(string); ok {
		d, err := time.ParseDuration(strings.TrimSpace(s))
		if err != nil {
			return 0, &ValidationError{Field: key, Message: "invalid duration", Value: v}
		}
		return d, nil
	}
	ms, err := asInt(key, v)
	if err != nil {
		return 0, &ValidationError{Field: key, Message: "must be a duration or milliseconds", Value: v}
	}
	return time.Duration(ms) * time.Millisecond, nil
}

func asKeymaps(v any) (map[string]map[string]string, error) {
	modes, ok := v.(map[string]any)
	if !ok {
		return nil, &ValidationError{Field: "keymaps", Message: "must be a table of modes", Value: v}
	}
	out := make(map[string]map[string]string, len(modes))
	for name, entries := range modes {
		table, ok := entries.(map[string]any)
		if !ok {
			return nil, &ValidationError{Field: "keymaps." + name, Message: "must be a table of bindings", Value: entries}
		}
		out[name] = make(map[string]string, len(table))
		for keys, action := range table {
			s, ok := action.(string)
			if !ok {
				return nil, &ValidationError{Field: "keymaps." + name + "." + keys, Message: "action must be a string", Value: action}
			}
			out[name][keys] = s
		}
	}
	return out, nil
}
