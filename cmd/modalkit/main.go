// Package main is the entry point for modalkit, a Vim-style modal editing
// interpreter.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/jessevdk/go-flags"
	"golang.org/x/term"

	"github.com/dshills/modalkit/internal/app"
	"github.com/dshills/modalkit/internal/config"
	"github.com/dshills/modalkit/internal/input/keymap"
	"github.com/dshills/modalkit/internal/input/mode"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Options are the flags shared by every command.
type Options struct {
	Version   bool   `long:"version" short:"v" description:"Show version information"`
	LogLevel  string `long:"log-level" description:"Log level (debug, info, warn, error)"`
	LogFormat string `long:"log-format" choice:"text" choice:"json" description:"Log format"`
	LogFile   string `long:"log-file" description:"Append logs to this file"`

	Replay ReplayCommand `command:"replay" description:"Feed a key script to a buffer and print the result"`
	Edit   EditCommand   `command:"edit" description:"Edit a file interactively"`
	Keys   KeysCommand   `command:"keys" description:"List the effective key bindings"`
}

var opts Options

func main() {
	parser := flags.NewParser(&opts, flags.Default)
	parser.SubcommandsOptional = true

	_, err := parser.Parse()
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		if _, ok := err.(*flags.Error); !ok {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}

	if parser.Active == nil {
		if opts.Version {
			fmt.Printf("modalkit %s\n", version)
			fmt.Printf("Commit: %s\n", commit)
			fmt.Printf("Built: %s\n", date)
			return
		}
		parser.WriteHelp(os.Stderr)
		os.Exit(1)
	}
}

// logOutput opens the log destination. fallback is used without
// --log-file.
func logOutput(fallback io.Writer) (io.Writer, func(), error) {
	if opts.LogFile == "" {
		return fallback, func() {}, nil
	}
	f, err := app.OpenLogFile(opts.LogFile)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}

// ReplayCommand runs a key script headlessly.
type ReplayCommand struct {
	Keys   string `long:"keys" short:"k" required:"true" description:"Key script, e.g. \"dwihello<Esc>\""`
	Input  string `long:"input" short:"i" description:"File holding the initial buffer"`
	Config string `long:"config" short:"c" description:"Configuration file (TOML or YAML)"`
}

// Execute implements flags.Commander.
func (c *ReplayCommand) Execute(_ []string) error {
	out, closeLog, err := logOutput(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	if opts.LogLevel == "" && opts.LogFile == "" {
		out = nil
	}

	a, err := app.New(app.Options{
		ConfigPath: c.Config,
		File:       c.Input,
		LogLevel:   opts.LogLevel,
		LogFormat:  opts.LogFormat,
		LogOutput:  out,
	})
	if err != nil {
		return err
	}
	defer a.Close()

	res, err := a.Replay(c.Keys, time.Now())
	if err != nil {
		return err
	}
	_, err = res.WriteTo(os.Stdout)
	return err
}

// EditCommand runs the interactive terminal front end.
type EditCommand struct {
	Config string `long:"config" short:"c" description:"Configuration file (TOML or YAML), reloaded on change"`
	Args   struct {
		File string `positional-arg-name:"file" description:"File to edit"`
	} `positional-args:"yes"`
}

// Execute implements flags.Commander.
func (c *EditCommand) Execute(_ []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return app.ErrNotTerminal
	}

	// Logs would fight the terminal UI, so they only go to --log-file.
	out, closeLog, err := logOutput(nil)
	if err != nil {
		return err
	}
	defer closeLog()

	a, err := app.New(app.Options{
		ConfigPath: c.Config,
		File:       c.Args.File,
		LogLevel:   opts.LogLevel,
		LogFormat:  opts.LogFormat,
		LogOutput:  out,
		Watch:      c.Config != "",
	})
	if err != nil {
		return err
	}
	defer a.Close()

	t, err := app.NewTerminal(a, nil)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := t.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// KeysCommand prints bindings, one mode at a time.
type KeysCommand struct {
	Mode   string `long:"mode" short:"m" description:"Only list this mode"`
	Config string `long:"config" short:"c" description:"Configuration file (TOML or YAML)"`
}

// Execute implements flags.Commander.
func (c *KeysCommand) Execute(_ []string) error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	out, closeLog, err := logOutput(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	km, err := cfg.BuildKeymap(app.NewLogger(app.LoggerConfig{
		Level:  app.ParseLogLevel(opts.LogLevel),
		Output: out,
		Format: opts.LogFormat,
	}))
	if err != nil {
		return err
	}

	modes := mode.All
	if c.Mode != "" {
		m, ok := mode.Parse(c.Mode)
		if !ok {
			return fmt.Errorf("unknown mode %q", c.Mode)
		}
		modes = []mode.Mode{m}
	}
	return writeBindings(os.Stdout, km, modes)
}

func writeBindings(w io.Writer, km *keymap.Keymap, modes []mode.Mode) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, m := range modes {
		for _, b := range km.Table(m).Bindings() {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", m, b.Keys, b.Name)
		}
	}
	return tw.Flush()
}
