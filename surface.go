package notepad

// Command names a native edit operation of a TextSurface.
type Command string

const (
	CmdUndo      Command = "undo"
	CmdRedo      Command = "redo"
	CmdCut       Command = "cut"
	CmdCopy      Command = "copy"
	CmdPaste     Command = "paste"
	CmdDelete    Command = "delete"
	CmdSelectAll Command = "select-all"
)

// TextSurface is the editable text widget.
type TextSurface interface {
	Text() string
	SetText(text string)
	Selection() (string, bool)

	// NativeCommand runs the widget's own implementation of cmd against the
	// current cursor and selection.
	NativeCommand(cmd Command) error

	// SetHintAppearance switches between normal text and the grey,
	// centered hint rendering.
	SetHintAppearance(on bool)
}
