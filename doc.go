// Package notepad holds the toolkit-independent core of the notepad: the
// placeholder controller and the document session.
//
// Both depend only on small capability interfaces (TextSurface, Prompter,
// FilePicker, Window), so the state machine can be driven by the Bubble Tea
// shell in internal/app or by in-memory fakes.
package notepad
