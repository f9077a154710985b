package editor

import (
	"errors"
	"fmt"
	"strings"
)

// Command names a built-in edit operation that hosts can trigger from menus
// or their own key bindings.
type Command string

const (
	CommandUndo      Command = "undo"
	CommandRedo      Command = "redo"
	CommandCut       Command = "cut"
	CommandCopy      Command = "copy"
	CommandPaste     Command = "paste"
	CommandDelete    Command = "delete"
	CommandSelectAll Command = "select-all"
)

var ErrUnknownCommand = errors.New("unknown editor command")

// Exec runs cmd against the current cursor and selection exactly as the
// matching key binding would. CommandDelete removes the selection only.
// Clipboard failures are returned rather than swallowed.
func (m Model) Exec(cmd Command) error {
	if m.buf == nil {
		return nil
	}

	switch cmd {
	case CommandUndo:
		_ = m.buf.Undo()
	case CommandRedo:
		_ = m.buf.Redo()
	case CommandCut:
		return m.cutSelection()
	case CommandCopy:
		return m.copySelection()
	case CommandPaste:
		return m.pasteClipboard()
	case CommandDelete:
		m.buf.DeleteSelection()
	case CommandSelectAll:
		m.buf.SelectAll()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, cmd)
	}
	return nil
}

func (m Model) copySelection() error {
	if m.cfg.Clipboard == nil {
		return nil
	}
	s, ok := m.buf.SelectedText()
	if !ok || s == "" {
		return nil
	}
	if err := m.cfg.Clipboard.WriteText(s); err != nil {
		return fmt.Errorf("copy: %w", err)
	}
	return nil
}

func (m Model) cutSelection() error {
	if m.cfg.Clipboard == nil {
		return nil
	}
	s, ok := m.buf.SelectedText()
	if !ok {
		return nil
	}
	// The selection survives a failed clipboard write.
	if err := m.cfg.Clipboard.WriteText(s); err != nil {
		return fmt.Errorf("cut: %w", err)
	}
	m.buf.DeleteSelection()
	return nil
}

func (m Model) pasteClipboard() error {
	if m.cfg.Clipboard == nil {
		return nil
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil {
		return fmt.Errorf("paste: %w", err)
	}
	if s == "" {
		return nil
	}
	m.buf.InsertText(NormalizeNewlines(s))
	return nil
}

// NormalizeNewlines converts CRLF and lone CR line breaks to LF.
func NormalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
