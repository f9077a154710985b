package notepad

import "errors"

type fakeSurface struct {
	text   string
	sel    string
	hasSel bool
	hint   bool
	cmds   []Command
	cmdErr error
}

func (f *fakeSurface) Text() string { return f.text }
func (f *fakeSurface) SetText(text string) {
	f.text = text
	f.sel, f.hasSel = "", false
}
func (f *fakeSurface) Selection() (string, bool) { return f.sel, f.hasSel }
func (f *fakeSurface) SetHintAppearance(on bool) { f.hint = on }
func (f *fakeSurface) NativeCommand(c Command) error {
	f.cmds = append(f.cmds, c)
	return f.cmdErr
}

// typeText simulates focus, typing and blur through the placeholder.
func (f *fakeSurface) typeText(p *Placeholder, s string) {
	p.OnFocusGained()
	f.text += s
	p.OnFocusLost()
}

type fakePrompter struct {
	discard bool
	exit    ExitChoice

	discardCalls int
	exitCalls    int
	errors       []string
}

func (f *fakePrompter) ConfirmDiscard() bool {
	f.discardCalls++
	return f.discard
}

func (f *fakePrompter) ConfirmSaveOnExit() ExitChoice {
	f.exitCalls++
	return f.exit
}

func (f *fakePrompter) ReportError(msg string) { f.errors = append(f.errors, msg) }

type fakePicker struct {
	openPath string
	savePath string

	openCalls int
	saveCalls int
	lastExt   string
	filters   []FileFilter
}

func (f *fakePicker) OpenFile(filters []FileFilter) (string, bool) {
	f.openCalls++
	f.filters = filters
	return f.openPath, f.openPath != ""
}

func (f *fakePicker) SaveFile(defaultExt string, filters []FileFilter) (string, bool) {
	f.saveCalls++
	f.lastExt = defaultExt
	f.filters = filters
	return f.savePath, f.savePath != ""
}

type fakeWindow struct{ titles []string }

func (f *fakeWindow) SetTitle(title string) { f.titles = append(f.titles, title) }

func (f *fakeWindow) last() string {
	if len(f.titles) == 0 {
		return ""
	}
	return f.titles[len(f.titles)-1]
}

var errClipboard = errors.New("clipboard unavailable")
