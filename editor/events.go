package editor

import "github.com/pyojuwon-sketc/notepad/buffer"

// ChangeEvent reports the buffer state after a change. TextVersion moves only
// when the text itself changed, so hosts can skip cursor-only events.
type ChangeEvent struct {
	Version     uint64
	TextVersion uint64
	Text        string
}

func buildChangeEvent(b *buffer.Buffer) ChangeEvent {
	return ChangeEvent{
		Version:     b.Version(),
		TextVersion: b.TextVersion(),
		Text:        b.Text(),
	}
}
