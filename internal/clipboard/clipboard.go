// Package clipboard connects the editor to the system clipboard.
package clipboard

import (
	"sync"

	"github.com/atotto/clipboard"
)

// System uses the OS clipboard through atotto/clipboard. When no clipboard
// utility is available (e.g. no xclip, xsel or wl-clipboard on Linux) it
// keeps the text in memory so cut/copy/paste still work within the notepad.
type System struct {
	mem         Memory
	unsupported bool
}

func New() *System {
	return &System{unsupported: clipboard.Unsupported}
}

// Native reports whether the OS clipboard is in use.
func (s *System) Native() bool { return !s.unsupported }

func (s *System) ReadText() (string, error) {
	if s.unsupported {
		return s.mem.ReadText()
	}
	return clipboard.ReadAll()
}

func (s *System) WriteText(text string) error {
	if s.unsupported {
		return s.mem.WriteText(text)
	}
	return clipboard.WriteAll(text)
}

// Memory is a process-local clipboard.
type Memory struct {
	mu   sync.Mutex
	text string
}

func (m *Memory) ReadText() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text, nil
}

func (m *Memory) WriteText(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	return nil
}
