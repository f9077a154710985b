package notepad

// Placeholder shows a hint in an empty, unfocused TextSurface.
//
// The hint is stored in the surface as literal text; only an exact match
// with the hint counts as "hint shown".
type Placeholder struct {
	surface TextSurface
	hint    string
}

func NewPlaceholder(surface TextSurface, hint string) *Placeholder {
	return &Placeholder{surface: surface, hint: hint}
}

func (p *Placeholder) Hint() string { return p.hint }

// Shown reports whether the surface currently displays the hint.
func (p *Placeholder) Shown() bool {
	return p.hint != "" && p.surface.Text() == p.hint
}

// OnFocusGained removes the hint, if shown, and restores the normal
// appearance.
func (p *Placeholder) OnFocusGained() {
	if !p.Shown() {
		return
	}
	p.surface.SetText("")
	p.surface.SetHintAppearance(false)
}

// OnFocusLost inserts the hint into an empty surface.
func (p *Placeholder) OnFocusLost() {
	if p.hint == "" || p.surface.Text() != "" {
		return
	}
	p.surface.SetText(p.hint)
	p.surface.SetHintAppearance(true)
}

// RealContent returns the surface text, or "" while the hint is shown.
func (p *Placeholder) RealContent() string {
	text := p.surface.Text()
	if p.hint != "" && text == p.hint {
		return ""
	}
	return text
}

// SetHint replaces the hint and reports whether it did. A hint on display is
// swapped in place. A hint equal to the text already typed into the surface
// is refused: that text would then count as empty and could be dropped
// without a prompt.
func (p *Placeholder) SetHint(hint string) bool {
	if hint == p.hint {
		return true
	}
	if hint != "" && p.RealContent() == hint {
		return false
	}
	if p.Shown() {
		p.surface.SetText(hint)
		if hint == "" {
			p.surface.SetHintAppearance(false)
		}
	}
	p.hint = hint
	return true
}
