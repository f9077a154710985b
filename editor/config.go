package editor

// Config configures the editor Model.
type Config struct {
	// Initial text for the internal buffer.
	Text string

	// Rendering options.
	ShowLineNums bool
	TabWidth     int // default: 4
	WrapMode     WrapMode
	Style        Style

	// KeyMap defaults to DefaultKeyMap when left zero.
	KeyMap    KeyMap
	Clipboard Clipboard

	// Forwarded to buffer.Options.
	HistoryLimit int

	// OnChange is called after every Update/Sync that changed the buffer.
	OnChange func(ChangeEvent)
}

func (c Config) withDefaults() Config {
	if c.TabWidth <= 0 {
		c.TabWidth = 4
	}
	if len(c.KeyMap.Left.Keys()) == 0 {
		c.KeyMap = DefaultKeyMap()
	}
	return c
}
