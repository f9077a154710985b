package app

import (
	"github.com/pyojuwon-sketc/notepad"
	"github.com/pyojuwon-sketc/notepad/editor"
)

// surface exposes an editor.Model as a notepad.TextSurface. The buffer and
// the hint appearance are shared by all copies of the Model, so holding the
// copy taken at start-up is enough.
type surface struct {
	ed editor.Model
}

var _ notepad.TextSurface = surface{}

func (s surface) Text() string { return s.ed.Buffer().Text() }

// SetText replaces the whole document. Undo history does not survive it.
func (s surface) SetText(text string) { s.ed.Buffer().Reset(text) }

func (s surface) Selection() (string, bool) { return s.ed.Buffer().SelectedText() }

func (s surface) NativeCommand(cmd notepad.Command) error {
	return s.ed.Exec(editor.Command(cmd))
}

func (s surface) SetHintAppearance(on bool) { s.ed.SetHintAppearance(on) }

// window records the title set by the session. The shell turns changes into
// tea.SetWindowTitle commands.
type window struct {
	title string
}

func (w *window) SetTitle(title string) { w.title = title }
