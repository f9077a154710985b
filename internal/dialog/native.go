package dialog

import (
	"errors"
	"log"

	"github.com/sqweek/dialog"

	"github.com/pyojuwon-sketc/notepad"
)

// Native shows desktop dialogs through sqweek/dialog. Every call blocks until
// the dialog is closed.
type Native struct {
	AppName string
	Logger  *log.Logger
}

func (n *Native) ConfirmDiscard() bool {
	return dialog.Message("%s", discardQuestion).Title(n.AppName).YesNo()
}

// ConfirmSaveOnExit asks two yes/no questions since sqweek/dialog has no
// three-button message box: "save?" then, on no, "exit without saving?".
func (n *Native) ConfirmSaveOnExit() notepad.ExitChoice {
	if dialog.Message("%s", exitQuestion).Title(n.AppName).YesNo() {
		return notepad.ExitSave
	}
	if dialog.Message("%s", exitDiscard).Title(n.AppName).YesNo() {
		return notepad.ExitDiscard
	}
	return notepad.ExitCancel
}

func (n *Native) ReportError(msg string) {
	dialog.Message("%s", msg).Title(errorTitle).Error()
}

func (n *Native) OpenFile(filters []notepad.FileFilter) (string, bool) {
	b := dialog.File().Title("Open")
	for _, f := range filters {
		b = b.Filter(f.Name, f.Patterns...)
	}
	path, err := b.Load()
	return n.result(path, err)
}

func (n *Native) SaveFile(defaultExt string, filters []notepad.FileFilter) (string, bool) {
	b := dialog.File().Title("Save As").SetStartFile(untitledName(defaultExt))
	for _, f := range filters {
		b = b.Filter(f.Name, f.Patterns...)
	}
	path, err := b.Save()
	return n.result(path, err)
}

func (n *Native) result(path string, err error) (string, bool) {
	if err != nil {
		if !errors.Is(err, dialog.ErrCancelled) && n.Logger != nil {
			n.Logger.Printf("file dialog: %v", err)
		}
		return "", false
	}
	return path, path != ""
}

func untitledName(ext string) string {
	if ext == "" {
		return "Untitled"
	}
	if ext[0] != '.' {
		ext = "." + ext
	}
	return "Untitled" + ext
}
