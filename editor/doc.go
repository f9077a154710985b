// Package editor provides the Bubble Tea text surface used by the notepad,
// backed by the buffer package.
//
// The package is responsible for input handling, viewport behavior,
// grapheme-aware rendering with optional soft wrap, the placeholder ("hint")
// appearance, named edit commands and change events.
package editor
