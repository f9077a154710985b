package dialog

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pyojuwon-sketc/notepad"
)

// Suspender is implemented by *tea.Program.
type Suspender interface {
	ReleaseTerminal() error
	RestoreTerminal() error
}

// Terminal shows dialogs as full-screen Bubble Tea programs. While a dialog
// is open the host program's terminal is released, and its event loop stays
// blocked in the caller, which keeps the dialogs modal.
type Terminal struct {
	AppName string
	// Dir is where file dialogs start. Empty means the working directory.
	Dir    string
	Logger *log.Logger

	host Suspender
	run  func(tea.Model) (tea.Model, error)
}

func NewTerminal(appName string) *Terminal {
	return &Terminal{AppName: appName, run: runProgram}
}

// Attach sets the program whose terminal is released around each dialog.
func (t *Terminal) Attach(host Suspender) { t.host = host }

func runProgram(m tea.Model) (tea.Model, error) {
	return tea.NewProgram(m, tea.WithAltScreen()).Run()
}

func (t *Terminal) ConfirmDiscard() bool {
	m, ok := t.modal(newConfirm(t.AppName, discardQuestion, "Yes", "No")).(confirmModel)
	return ok && m.chosen == 0
}

func (t *Terminal) ConfirmSaveOnExit() notepad.ExitChoice {
	m, ok := t.modal(newConfirm(t.AppName, exitQuestion, "Save", "Don't Save", "Cancel")).(confirmModel)
	if !ok {
		return notepad.ExitCancel
	}
	switch m.chosen {
	case 0:
		return notepad.ExitSave
	case 1:
		return notepad.ExitDiscard
	default:
		return notepad.ExitCancel
	}
}

func (t *Terminal) ReportError(msg string) {
	t.modal(newMessage(errorTitle, msg))
}

func (t *Terminal) OpenFile(filters []notepad.FileFilter) (string, bool) {
	m, ok := t.modal(newOpen(t.dir(), filters)).(openModel)
	if !ok || m.canceled || m.path == "" {
		return "", false
	}
	t.Dir = filepath.Dir(m.path)
	return m.path, true
}

// SaveFile asks for a name and, if the file exists, whether to replace it.
func (t *Terminal) SaveFile(defaultExt string, _ []notepad.FileFilter) (string, bool) {
	m, ok := t.modal(newPathInput(t.dir(), untitledName(defaultExt))).(pathModel)
	if !ok || m.canceled || m.path == "" {
		return "", false
	}

	if fi, err := os.Stat(m.path); err == nil {
		if fi.IsDir() {
			t.ReportError(fmt.Sprintf("%s is a directory", m.path))
			return "", false
		}
		q := fmt.Sprintf("%s already exists.\nReplace it?", filepath.Base(m.path))
		c, ok := t.modal(newConfirm(t.AppName, q, "Yes", "No")).(confirmModel)
		if !ok || c.chosen != 0 {
			return "", false
		}
	}
	t.Dir = filepath.Dir(m.path)
	return m.path, true
}

func (t *Terminal) dir() string {
	if t.Dir != "" {
		return t.Dir
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}

// modal runs m to completion and returns its final state, or nil if the
// dialog could not be shown.
func (t *Terminal) modal(m tea.Model) tea.Model {
	if t.host != nil {
		if err := t.host.ReleaseTerminal(); err != nil {
			t.logf("release terminal: %v", err)
			return nil
		}
		defer func() {
			if err := t.host.RestoreTerminal(); err != nil {
				t.logf("restore terminal: %v", err)
			}
		}()
	}

	final, err := t.run(m)
	if err != nil {
		t.logf("dialog: %v", err)
		return nil
	}
	return final
}

func (t *Terminal) logf(format string, args ...any) {
	if t.Logger != nil {
		t.Logger.Printf(format, args...)
	}
}
