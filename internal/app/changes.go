package app

import (
	"github.com/pyojuwon-sketc/notepad"
	"github.com/pyojuwon-sketc/notepad/editor"
)

// changes tracks whether the document differs from the text last opened,
// saved or cleared by New. The editor feeds it through Config.OnChange. While
// the hint is shown the document counts as empty.
type changes struct {
	ph *notepad.Placeholder

	textVersion uint64
	seen        bool
	current     string
	saved       string
}

func (c *changes) observe(ev editor.ChangeEvent) {
	if c.seen && ev.TextVersion == c.textVersion {
		return
	}
	c.seen = true
	c.textVersion = ev.TextVersion
	c.current = ev.Text
	if c.ph != nil && c.ph.Shown() {
		c.current = ""
	}
}

// markSaved records text as the clean state of the document.
func (c *changes) markSaved(text string) {
	c.saved = text
	c.current = text
}

func (c *changes) modified() bool { return c.current != c.saved }
