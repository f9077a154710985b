package notepad

import (
	"io"
	"log"
	"path/filepath"
	"strings"

	"github.com/pyojuwon-sketc/notepad/internal/files"
)

const (
	DefaultAppName = "Notepad"
	DefaultExt     = ".txt"
	untitled       = "Untitled"
)

type Options struct {
	// AppName is the title suffix. Default: "Notepad".
	AppName string
	// DefaultExt is appended to Save As paths without an extension.
	// Default: ".txt".
	DefaultExt string
	// Filters default to DefaultFilters().
	Filters []FileFilter
	Logger  *log.Logger
}

func (o Options) withDefaults() Options {
	if o.AppName == "" {
		o.AppName = DefaultAppName
	}
	if o.DefaultExt == "" {
		o.DefaultExt = DefaultExt
	}
	if !strings.HasPrefix(o.DefaultExt, ".") {
		o.DefaultExt = "." + o.DefaultExt
	}
	if len(o.Filters) == 0 {
		o.Filters = DefaultFilters()
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard, "", 0)
	}
	return o
}

// Session owns the single document of the notepad and its file association.
// A Session is either untitled (Path() == "") or named.
type Session struct {
	surface     TextSurface
	placeholder *Placeholder
	prompter    Prompter
	picker      FilePicker
	window      Window
	opt         Options
	log         *log.Logger

	path string
}

// NewSession sets the window title for an untitled document and returns the
// session. The caller decides when to show the placeholder.
func NewSession(surface TextSurface, placeholder *Placeholder, prompter Prompter, picker FilePicker, window Window, opt Options) *Session {
	opt = opt.withDefaults()
	s := &Session{
		surface:     surface,
		placeholder: placeholder,
		prompter:    prompter,
		picker:      picker,
		window:      window,
		opt:         opt,
		log:         opt.Logger,
	}
	s.updateTitle()
	return s
}

func (s *Session) Path() string { return s.path }

func (s *Session) Title() string {
	name := untitled
	if s.path != "" {
		name = filepath.Base(s.path)
	}
	return name + " - " + s.opt.AppName
}

// Dirty reports whether the surface holds real, non-blank content.
func (s *Session) Dirty() bool {
	return strings.TrimSpace(s.placeholder.RealContent()) != ""
}

// New clears the document after confirming that non-blank content may be
// discarded, and shows the hint.
func (s *Session) New() bool {
	if !s.confirmDiscard() {
		return false
	}
	s.surface.SetText("")
	s.path = ""
	s.updateTitle()
	s.placeholder.OnFocusLost()
	s.log.Printf("new document")
	return true
}

// Open asks for a file and loads it, after confirming that non-blank content
// may be discarded. A dismissed picker is a silent no-op.
func (s *Session) Open() bool {
	if !s.confirmDiscard() {
		return false
	}
	path, ok := s.picker.OpenFile(s.opt.Filters)
	if !ok || path == "" {
		return false
	}
	return s.OpenPath(path) == nil
}

// OpenPath loads path into the surface without asking. On failure the error
// is reported and the document is left untouched.
func (s *Session) OpenPath(path string) error {
	text, err := files.Read(path)
	if err != nil {
		s.log.Printf("open %s: %v", path, err)
		s.prompter.ReportError(err.Error())
		return err
	}

	s.placeholder.OnFocusGained()
	s.surface.SetText(text)
	s.path = path
	s.updateTitle()
	s.log.Printf("opened %s (%d bytes)", path, len(text))
	return nil
}

// Save writes the real content to the associated path, or falls back to
// SaveAs for an untitled document. It reports whether the document was
// written.
func (s *Session) Save() bool {
	if s.path == "" {
		return s.SaveAs()
	}

	text := s.placeholder.RealContent()
	if err := files.Write(s.path, text); err != nil {
		s.log.Printf("save %s: %v", s.path, err)
		s.prompter.ReportError(err.Error())
		return false
	}
	s.updateTitle()
	s.log.Printf("saved %s (%d bytes)", s.path, len(text))
	return true
}

// SaveAs asks for a path, associates it with the document and saves. If the
// write fails the previous association is restored.
func (s *Session) SaveAs() bool {
	path, ok := s.picker.SaveFile(s.opt.DefaultExt, s.opt.Filters)
	if !ok || path == "" {
		return false
	}
	if filepath.Ext(path) == "" {
		path += s.opt.DefaultExt
	}

	prev := s.path
	s.path = path
	if !s.Save() {
		s.path = prev
		s.updateTitle()
		return false
	}
	return true
}

// Exit reports whether the program may terminate. Non-blank content triggers
// the save/discard/cancel question; choosing save only allows exit once the
// document has actually been written to a file.
func (s *Session) Exit() bool {
	if !s.Dirty() {
		return true
	}

	choice := s.prompter.ConfirmSaveOnExit()
	s.log.Printf("exit: %s", choice)
	switch choice {
	case ExitSave:
		return s.Save() && s.path != ""
	case ExitDiscard:
		return true
	default:
		return false
	}
}

// Edit forwards cmd to the surface's native implementation.
func (s *Session) Edit(cmd Command) error {
	if err := s.surface.NativeCommand(cmd); err != nil {
		s.log.Printf("%s: %v", cmd, err)
		return err
	}
	return nil
}

func (s *Session) confirmDiscard() bool {
	if !s.Dirty() {
		return true
	}
	return s.prompter.ConfirmDiscard()
}

func (s *Session) updateTitle() {
	if s.window != nil {
		s.window.SetTitle(s.Title())
	}
}
