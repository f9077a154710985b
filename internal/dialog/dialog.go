// Package dialog implements the notepad's modal prompts and file pickers,
// either as native desktop dialogs or as full-screen terminal dialogs.
package dialog

import (
	"os"
	"runtime"

	"github.com/pyojuwon-sketc/notepad"
	"github.com/pyojuwon-sketc/notepad/internal/config"
)

// Backend is everything the document session needs from a dialog provider.
type Backend interface {
	notepad.Prompter
	notepad.FilePicker
}

const (
	discardQuestion = "The current document has unsaved changes.\nDiscard them?"
	exitQuestion    = "Save changes before exiting?"
	exitDiscard     = "Exit without saving?"
	errorTitle      = "Error"
)

// Resolve maps config.DialogsAuto to native when a desktop session is
// available and to terminal otherwise. Other kinds are returned unchanged.
func Resolve(kind string) string {
	if kind != config.DialogsAuto {
		return kind
	}
	if hasDesktop(runtime.GOOS, os.Getenv) {
		return config.DialogsNative
	}
	return config.DialogsTerminal
}

// New returns the backend for kind. Terminal backends must be attached to
// the running program before use.
func New(kind, appName string) Backend {
	if Resolve(kind) == config.DialogsNative {
		return &Native{AppName: appName}
	}
	return NewTerminal(appName)
}

func hasDesktop(goos string, getenv func(string) string) bool {
	switch goos {
	case "windows", "darwin":
		return true
	}
	return getenv("DISPLAY") != "" || getenv("WAYLAND_DISPLAY") != ""
}
