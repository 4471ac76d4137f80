// Package clipboard abstracts system clipboard access for yank and put.
package clipboard

import (
	"fmt"
	"sync"

	"github.com/atotto/clipboard"

	"github.com/dshills/modalkit/internal/engine"
)

// Provider abstracts system clipboard access.
type Provider interface {
	// Get returns the current clipboard content.
	Get() (string, error)

	// Set sets the clipboard content.
	Set(content string) error
}

// System is a Provider backed by the operating system clipboard.
type System struct{}

// NewSystem returns the system clipboard provider. It fails when no
// clipboard utility is available on this platform.
func NewSystem() (System, error) {
	if clipboard.Unsupported {
		return System{}, engine.ErrClipboardUnavailable
	}
	return System{}, nil
}

// Get returns the current clipboard content.
func (System) Get() (string, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("read system clipboard: %w", err)
	}
	return text, nil
}

// Set sets the clipboard content.
func (System) Set(content string) error {
	if err := clipboard.WriteAll(content); err != nil {
		return fmt.Errorf("write system clipboard: %w", err)
	}
	return nil
}

// Memory is an in-process Provider, used when the system clipboard is
// disabled or unavailable.
type Memory struct {
	mu   sync.Mutex
	text string
}

// NewMemory creates an empty in-process clipboard.
func NewMemory() *Memory {
	return &Memory{}
}

// Get returns the current clipboard content.
func (m *Memory) Get() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text, nil
}

// Set sets the clipboard content.
func (m *Memory) Set(content string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = content
	return nil
}
