package app

import (
	"fmt"
	"os"
	"strings"
)

// commands executes ex command lines for an application.
type commands struct {
	app *Application
}

func newCommands(app *Application) *commands {
	return &commands{app: app}
}

// Execute runs one command line without its ':' prefix. Supported:
// w [file], q, q!, wq, x.
func (c *commands) Execute(line string) error {
	name, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	arg = strings.TrimSpace(arg)

	switch name {
	case "w", "write":
		return c.write(arg)
	case "q", "quit":
		if c.app.Buffer().Modified() {
			return ErrUnsavedChanges
		}
		c.quit()
		return nil
	case "q!", "quit!":
		c.quit()
		return nil
	case "wq", "x", "xit":
		if name != "wq" && !c.app.Buffer().Modified() {
			c.quit()
			return nil
		}
		if err := c.write(arg); err != nil {
			return err
		}
		c.quit()
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, line)
	}
}

// write saves the buffer to path, or to the buffer's own path when empty.
// Writing to a new path adopts it when the buffer had none.
func (c *commands) write(path string) error {
	buf := c.app.Buffer()
	if path == "" {
		path = buf.Path()
	}
	if path == "" {
		return ErrNoFileName
	}

	content := buf.String() + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return &OperationError{Op: "write", Target: path, Err: err}
	}
	if buf.Path() == "" {
		buf.SetPath(path)
	}
	if path == buf.Path() {
		buf.MarkClean()
	}
	c.app.logger.Info("buffer written", "path", path, "lines", buf.LineCount())
	return nil
}

func (c *commands) quit() {
	c.app.quit = true
	c.app.logger.Info("quit")
}
