package editor

// Clipboard provides editor-level clipboard integration.
//
// Key handling ignores clipboard errors so they never crash the UI; Exec
// reports them to the caller.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}
