package notepad

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type harness struct {
	surface  *fakeSurface
	ph       *Placeholder
	prompter *fakePrompter
	picker   *fakePicker
	window   *fakeWindow
	session  *Session
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		surface:  &fakeSurface{},
		prompter: &fakePrompter{},
		picker:   &fakePicker{},
		window:   &fakeWindow{},
	}
	h.ph = NewPlaceholder(h.surface, testHint)
	h.session = NewSession(h.surface, h.ph, h.prompter, h.picker, h.window, Options{})
	h.ph.OnFocusLost()
	return h
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSession_StartsUntitledWithHint(t *testing.T) {
	h := newHarness(t)

	assert.Equal(t, "Untitled - Notepad", h.window.last())
	assert.Equal(t, "", h.session.Path())
	assert.Equal(t, "", h.ph.RealContent())
	assert.True(t, h.surface.hint)
}

func TestSession_NewWithOnlyHintNeverPrompts(t *testing.T) {
	h := newHarness(t)

	assert.True(t, h.session.New())
	assert.Equal(t, 0, h.prompter.discardCalls)
	assert.Equal(t, testHint, h.surface.text)
}

func TestSession_NewWithWhitespaceOnlyNeverPrompts(t *testing.T) {
	h := newHarness(t)
	h.surface.typeText(h.ph, "  \n\t")

	assert.True(t, h.session.New())
	assert.Equal(t, 0, h.prompter.discardCalls)
}

func TestSession_NewAbortedKeepsDocument(t *testing.T) {
	h := newHarness(t)
	path := writeFile(t, "a.txt", "keep me")
	require.NoError(t, h.session.OpenPath(path))
	h.prompter.discard = false

	assert.False(t, h.session.New())
	assert.Equal(t, 1, h.prompter.discardCalls)
	assert.Equal(t, "keep me", h.surface.text)
	assert.Equal(t, path, h.session.Path())
	assert.Equal(t, "a.txt - Notepad", h.window.last())
}

func TestSession_NewConfirmedResetsToUntitled(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.session.OpenPath(writeFile(t, "a.txt", "old")))
	h.prompter.discard = true

	assert.True(t, h.session.New())
	assert.Equal(t, "", h.session.Path())
	assert.Equal(t, "Untitled - Notepad", h.window.last())
	assert.Equal(t, testHint, h.surface.text)
	assert.True(t, h.surface.hint)
	assert.Equal(t, "", h.ph.RealContent())
}

func TestSession_OpenLoadsFileAndClearsHint(t *testing.T) {
	h := newHarness(t)
	path := writeFile(t, "notes.txt", "hello\nworld")
	h.picker.openPath = path

	assert.True(t, h.session.Open())
	assert.Equal(t, "hello\nworld", h.surface.text)
	assert.False(t, h.surface.hint)
	assert.Equal(t, path, h.session.Path())
	assert.Equal(t, "notes.txt - Notepad", h.window.last())
	assert.Equal(t, DefaultFilters(), h.picker.filters)
}

func TestSession_OpenCancelledPickerIsNoOp(t *testing.T) {
	h := newHarness(t)

	assert.False(t, h.session.Open())
	assert.Equal(t, 1, h.picker.openCalls)
	assert.Empty(t, h.prompter.errors)
	assert.Equal(t, testHint, h.surface.text)
}

func TestSession_OpenDeclinedDiscardSkipsPicker(t *testing.T) {
	h := newHarness(t)
	h.surface.typeText(h.ph, "unsaved")

	assert.False(t, h.session.Open())
	assert.Equal(t, 1, h.prompter.discardCalls)
	assert.Equal(t, 0, h.picker.openCalls)
}

func TestSession_OpenMissingFileLeavesStateAndReports(t *testing.T) {
	h := newHarness(t)
	path := writeFile(t, "a.txt", "current")
	require.NoError(t, h.session.OpenPath(path))
	h.prompter.discard = true
	h.surface.text = "current"
	h.picker.openPath = filepath.Join(t.TempDir(), "missing.txt")

	assert.False(t, h.session.Open())
	require.Len(t, h.prompter.errors, 1)
	assert.Contains(t, h.prompter.errors[0], "missing.txt")
	assert.Equal(t, "current", h.surface.text)
	assert.Equal(t, path, h.session.Path())
	assert.Equal(t, "a.txt - Notepad", h.window.last())
}

func TestSession_OpenDirectoryReportsError(t *testing.T) {
	h := newHarness(t)

	err := h.session.OpenPath(t.TempDir())
	assert.Error(t, err)
	assert.Len(t, h.prompter.errors, 1)
	assert.Equal(t, "", h.session.Path())
	assert.Equal(t, testHint, h.surface.text)
}

func TestSession_SaveNamedWritesRealContent(t *testing.T) {
	h := newHarness(t)
	path := writeFile(t, "a.txt", "v1")
	require.NoError(t, h.session.OpenPath(path))
	h.surface.text = "v2 한글"

	assert.True(t, h.session.Save())
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "v2 한글", string(raw))
	assert.Equal(t, 0, h.picker.saveCalls)
}

func TestSession_SaveNeverWritesHint(t *testing.T) {
	h := newHarness(t)
	path := filepath.Join(t.TempDir(), "empty.txt")
	h.picker.savePath = path

	assert.True(t, h.session.Save())
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, raw)
}

func TestSession_SaveUntitledDelegatesToSaveAs(t *testing.T) {
	h := newHarness(t)
	h.surface.typeText(h.ph, "draft")
	path := filepath.Join(t.TempDir(), "draft")
	h.picker.savePath = path

	assert.True(t, h.session.Save())
	assert.Equal(t, 1, h.picker.saveCalls)
	assert.Equal(t, ".txt", h.picker.lastExt)
	assert.Equal(t, path+".txt", h.session.Path())
	assert.Equal(t, "draft.txt - Notepad", h.window.last())

	raw, err := os.ReadFile(path + ".txt")
	require.NoError(t, err)
	assert.Equal(t, "draft", string(raw))
}

func TestSession_SaveFailureReportsAndKeepsState(t *testing.T) {
	h := newHarness(t)
	h.surface.typeText(h.ph, "draft")
	h.picker.savePath = filepath.Join(t.TempDir(), "missing-dir", "a.txt")

	assert.False(t, h.session.Save())
	assert.Len(t, h.prompter.errors, 1)
	assert.Equal(t, "", h.session.Path())
	assert.Equal(t, "Untitled - Notepad", h.window.last())
}

func TestSession_SaveAsCancelledKeepsPath(t *testing.T) {
	h := newHarness(t)
	path := writeFile(t, "a.txt", "x")
	require.NoError(t, h.session.OpenPath(path))

	assert.False(t, h.session.SaveAs())
	assert.Equal(t, path, h.session.Path())
	assert.Empty(t, h.prompter.errors)
}

func TestSession_SaveThenOpenRoundTrip(t *testing.T) {
	h := newHarness(t)
	content := "line 1\n  indented\n\U0001F600 emoji\n마지막 줄\n"
	h.surface.typeText(h.ph, content)
	path := filepath.Join(t.TempDir(), "round.txt")
	h.picker.savePath = path
	require.True(t, h.session.Save())

	h.surface.text = "something else"
	h.prompter.discard = true
	h.picker.openPath = path
	require.True(t, h.session.Open())

	assert.Equal(t, content, h.surface.text)
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte(content), raw)
}

func TestSession_ExitBlankTerminatesWithoutPrompt(t *testing.T) {
	h := newHarness(t)

	assert.True(t, h.session.Exit())
	assert.Equal(t, 0, h.prompter.exitCalls)
}

func TestSession_ExitChoices(t *testing.T) {
	t.Run("save with completed save-as", func(t *testing.T) {
		h := newHarness(t)
		h.surface.typeText(h.ph, "unsaved")
		h.prompter.exit = ExitSave
		h.picker.savePath = filepath.Join(t.TempDir(), "out.txt")

		assert.True(t, h.session.Exit())
		assert.Equal(t, 1, h.prompter.exitCalls)
		assert.FileExists(t, h.picker.savePath)
	})

	t.Run("save with cancelled save-as", func(t *testing.T) {
		h := newHarness(t)
		h.surface.typeText(h.ph, "unsaved")
		h.prompter.exit = ExitSave

		assert.False(t, h.session.Exit())
		assert.Equal(t, "", h.session.Path())
	})

	t.Run("save with failing write", func(t *testing.T) {
		h := newHarness(t)
		h.surface.typeText(h.ph, "unsaved")
		h.prompter.exit = ExitSave
		h.picker.savePath = filepath.Join(t.TempDir(), "missing-dir", "out.txt")

		assert.False(t, h.session.Exit())
		assert.Len(t, h.prompter.errors, 1)
	})

	t.Run("save to named file that can no longer be written", func(t *testing.T) {
		h := newHarness(t)
		dir := filepath.Join(t.TempDir(), "notes")
		require.NoError(t, os.Mkdir(dir, 0o755))
		path := filepath.Join(dir, "todo.txt")
		require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))
		require.NoError(t, h.session.OpenPath(path))
		h.surface.typeText(h.ph, " and new")
		require.NoError(t, os.RemoveAll(dir))
		h.prompter.exit = ExitSave

		// A path is associated, but the write failed: the program keeps running.
		assert.False(t, h.session.Exit())
		assert.Equal(t, path, h.session.Path())
		assert.Equal(t, 0, h.picker.saveCalls)
		assert.Len(t, h.prompter.errors, 1)
		assert.Equal(t, "old and new", h.surface.text)
	})

	t.Run("discard", func(t *testing.T) {
		h := newHarness(t)
		h.surface.typeText(h.ph, "unsaved")
		h.prompter.exit = ExitDiscard

		assert.True(t, h.session.Exit())
		assert.Equal(t, 0, h.picker.saveCalls)
	})

	t.Run("cancel", func(t *testing.T) {
		h := newHarness(t)
		h.surface.typeText(h.ph, "unsaved")
		h.prompter.exit = ExitCancel

		assert.False(t, h.session.Exit())
		assert.Equal(t, "unsaved", h.surface.text)
	})
}

func TestSession_EditForwardsToSurface(t *testing.T) {
	h := newHarness(t)
	for _, cmd := range []Command{CmdUndo, CmdRedo, CmdCut, CmdCopy, CmdPaste, CmdDelete, CmdSelectAll} {
		require.NoError(t, h.session.Edit(cmd))
	}
	assert.Equal(t, []Command{CmdUndo, CmdRedo, CmdCut, CmdCopy, CmdPaste, CmdDelete, CmdSelectAll}, h.surface.cmds)

	h.surface.cmdErr = errClipboard
	assert.ErrorIs(t, h.session.Edit(CmdPaste), errClipboard)
}

func TestSession_OptionsDefaults(t *testing.T) {
	h := newHarness(t)
	s := NewSession(h.surface, h.ph, h.prompter, h.picker, h.window, Options{AppName: "메모장", DefaultExt: "md"})

	assert.Equal(t, "Untitled - 메모장", s.Title())

	h.picker.savePath = filepath.Join(t.TempDir(), "readme")
	require.True(t, s.SaveAs())
	assert.Equal(t, h.picker.savePath+".md", s.Path())
	assert.Equal(t, ".md", h.picker.lastExt)
}
