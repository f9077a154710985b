package notepad

// ExitChoice is the answer to the save-on-exit question.
type ExitChoice int

const (
	ExitCancel ExitChoice = iota
	ExitSave
	ExitDiscard
)

func (c ExitChoice) String() string {
	switch c {
	case ExitSave:
		return "save"
	case ExitDiscard:
		return "discard"
	default:
		return "cancel"
	}
}

// Prompter asks modal questions. Every method blocks until the user answers.
type Prompter interface {
	// ConfirmDiscard reports whether unsaved changes may be thrown away.
	ConfirmDiscard() bool
	ConfirmSaveOnExit() ExitChoice
	ReportError(msg string)
}

// FileFilter is one entry of a file picker's type list.
type FileFilter struct {
	Name string
	// Patterns are extensions without the dot; "*" matches everything.
	Patterns []string
}

func DefaultFilters() []FileFilter {
	return []FileFilter{
		{Name: "Text Files (*.txt)", Patterns: []string{"txt"}},
		{Name: "All Files (*.*)", Patterns: []string{"*"}},
	}
}

// FilePicker presents modal file choosers. ok is false when the user
// dismissed the picker without choosing.
type FilePicker interface {
	OpenFile(filters []FileFilter) (path string, ok bool)
	SaveFile(defaultExt string, filters []FileFilter) (path string, ok bool)
}

type Window interface {
	SetTitle(title string)
}
