package editor

// WrapMode controls how lines wider than the editor are displayed.
//
// WrapNone renders one document line per visual row and scrolls
// horizontally to keep the cursor visible. WrapWord and WrapGrapheme soft
// wrap; WrapWord prefers to break after whitespace.
type WrapMode int

const (
	WrapNone WrapMode = iota
	WrapWord
	WrapGrapheme
)
