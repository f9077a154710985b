package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pyojuwon-sketc/notepad/buffer"
)

// look is shared by every copy of a Model so that hosts holding an older copy
// (or an adapter around one) can still switch the appearance.
type look struct {
	hint    bool
	version uint64
}

// Model is a Bubble Tea component that renders and interacts with a buffer.
type Model struct {
	cfg  Config
	buf  *buffer.Buffer
	look *look

	focused bool

	viewport viewport.Model
	layout   layout
	xOffset  int

	dragging   bool
	dragAnchor buffer.Pos

	lastBufVersion   uint64
	lastLookVersion  uint64
	lastCursor       buffer.Pos
	lastEventVersion uint64
}

func New(cfg Config) Model {
	cfg = cfg.withDefaults()
	m := Model{
		cfg:      cfg,
		buf:      buffer.New(cfg.Text, buffer.Options{HistoryLimit: cfg.HistoryLimit}),
		look:     &look{},
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.viewport.MouseWheelEnabled = true
	m.lastBufVersion = m.buf.Version()
	m.lastCursor = m.buf.Cursor()
	m.lastEventVersion = m.buf.Version()
	m.rebuildContent()
	return m
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	m.viewport.Width = max(width, 0)
	m.viewport.Height = max(height, 0)

	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followCursor()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.dragging = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

// SetHintAppearance switches between the normal rendering and the hint
// rendering (Style.Hint, every line centered). The switch is visible to all
// copies of the Model.
func (m Model) SetHintAppearance(on bool) {
	if m.look.hint == on {
		return
	}
	m.look.hint = on
	m.look.version++
}

func (m Model) HintAppearance() bool { return m.look.hint }

func (m Model) SetShowLineNums(on bool) Model {
	m.cfg.ShowLineNums = on
	m.rebuildContent()
	return m
}

// SetWrapMode switches between soft wrapping and horizontal scrolling.
func (m Model) SetWrapMode(w WrapMode) Model {
	m.cfg.WrapMode = w
	m.xOffset = 0
	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) WrapMode() WrapMode { return m.cfg.WrapMode }

func (m Model) SetTabWidth(w int) Model {
	m.cfg.TabWidth = w
	m.cfg = m.cfg.withDefaults()
	m.rebuildContent()
	return m
}

// Sync picks up buffer and appearance changes made outside of Update (by
// Exec or by a host mutating the buffer directly), keeps the cursor in view
// and fires OnChange.
func (m Model) Sync() Model {
	if m.syncFromBuffer() {
		m.followCursor()
	}
	m.emitChange()
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.MouseMsg:
		m, cmd = m.updateMouse(msg)
	case tea.KeyMsg:
		m, cmd = m.updateKey(msg)
	}
	return m.Sync(), cmd
}

func (m Model) View() string { return m.viewport.View() }

func (m *Model) emitChange() {
	if m.buf == nil || m.cfg.OnChange == nil {
		return
	}
	if v := m.buf.Version(); v != m.lastEventVersion {
		m.lastEventVersion = v
		m.cfg.OnChange(buildChangeEvent(m.buf))
	}
}

func (m *Model) syncFromBuffer() (cursorChanged bool) {
	if m.buf == nil {
		return false
	}
	ver := m.buf.Version()
	cur := m.buf.Cursor()
	if ver == m.lastBufVersion && cur == m.lastCursor && m.look.version == m.lastLookVersion {
		return false
	}
	cursorChanged = cur != m.lastCursor || ver != m.lastBufVersion
	m.lastBufVersion = ver
	m.lastCursor = cur
	m.lastLookVersion = m.look.version
	m.rebuildContent()
	return cursorChanged
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) followCursor() {
	if m.buf == nil {
		return
	}
	cur := m.buf.Cursor()

	if h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize(); h > 0 {
		row := m.layout.visualRow(cur)
		y := m.viewport.YOffset
		switch {
		case row < y:
			m.viewport.SetYOffset(row)
		case row >= y+h:
			m.viewport.SetYOffset(row - h + 1)
		}
	}

	if w := m.contentWidth(); w > 0 && !m.look.hint && m.cfg.WrapMode == WrapNone {
		x := m.layout.cellInRow(cur)
		prev := m.xOffset
		switch {
		case x < m.xOffset:
			m.xOffset = x
		case x >= m.xOffset+w:
			m.xOffset = x - w + 1
		}
		if prev != m.xOffset {
			m.rebuildContent()
		}
	}
}
