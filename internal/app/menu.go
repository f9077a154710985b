package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

type action int

const (
	actNone action = iota
	actNew
	actOpen
	actSave
	actSaveAs
	actExit
	actUndo
	actRedo
	actCut
	actCopy
	actPaste
	actDelete
	actSelectAll
	actWordWrap
)

type menuItem struct {
	label    string
	shortcut string
	act      action
}

type menu struct {
	title string
	items []menuItem
}

// menuBar is the File/Edit/Format bar on the first row. At most one dropdown
// is open at a time. Disabled items are drawn greyed and cannot be chosen.
type menuBar struct {
	menus  []menu
	open   bool
	active int
	item   int

	disabled map[action]bool
	checked  map[action]bool
}

func newMenuBar(km KeyMap) menuBar {
	item := func(label string, b key.Binding, a action) menuItem {
		return menuItem{label: label, shortcut: b.Help().Key, act: a}
	}
	return menuBar{menus: []menu{
		{title: "File", items: []menuItem{
			item("New", km.New, actNew),
			item("Open...", km.Open, actOpen),
			item("Save", km.Save, actSave),
			item("Save As...", km.SaveAs, actSaveAs),
			item("Exit", km.Exit, actExit),
		}},
		{title: "Edit", items: []menuItem{
			item("Undo", km.Undo, actUndo),
			item("Redo", km.Redo, actRedo),
			item("Cut", km.Cut, actCut),
			item("Copy", km.Copy, actCopy),
			item("Paste", km.Paste, actPaste),
			item("Delete", km.Delete, actDelete),
			item("Select All", km.SelectAll, actSelectAll),
		}},
		{title: "Format", items: []menuItem{
			{label: "Word Wrap", act: actWordWrap},
		}},
	}}
}

func (b menuBar) setChecked(act action, on bool) menuBar {
	checked := make(map[action]bool, len(b.checked)+1)
	for k, v := range b.checked {
		checked[k] = v
	}
	checked[act] = on
	b.checked = checked
	return b
}

// choose returns the action of item i, or actNone with the menu left open
// when the item is disabled.
func (b menuBar) choose(i int) (menuBar, action) {
	act := b.menus[b.active].items[i].act
	if b.disabled[act] {
		return b, actNone
	}
	return b.close(), act
}

func (b menuBar) openMenu(i int) menuBar {
	b.open = true
	b.active = i
	b.item = 0
	return b
}

func (b menuBar) close() menuBar {
	b.open = false
	return b
}

// update handles a key while a dropdown is open.
func (b menuBar) update(msg tea.KeyMsg) (menuBar, action) {
	n := len(b.menus[b.active].items)
	switch msg.String() {
	case "esc", "f10":
		return b.close(), actNone
	case "left":
		return b.openMenu((b.active + len(b.menus) - 1) % len(b.menus)), actNone
	case "right", "tab":
		return b.openMenu((b.active + 1) % len(b.menus)), actNone
	case "up":
		b.item = (b.item + n - 1) % n
	case "down":
		b.item = (b.item + 1) % n
	case "enter", " ":
		return b.choose(b.item)
	}
	return b, actNone
}

// titleX returns the first cell of each menu title on the bar.
func (b menuBar) titleX() []int {
	xs := make([]int, len(b.menus))
	x := 0
	for i, m := range b.menus {
		xs[i] = x
		x += lipgloss.Width(m.title) + 2
	}
	return xs
}

func (b menuBar) hitTitle(x int) int {
	for i, start := range b.titleX() {
		if x >= start && x < start+lipgloss.Width(b.menus[i].title)+2 {
			return i
		}
	}
	return -1
}

// click handles a left click at screen coordinates. handled is false when
// the click belongs to the editor.
func (b menuBar) click(x, y int) (next menuBar, act action, handled bool) {
	if y == 0 {
		i := b.hitTitle(x)
		switch {
		case i < 0:
			return b.close(), actNone, true
		case b.open && b.active == i:
			return b.close(), actNone, true
		default:
			return b.openMenu(i), actNone, true
		}
	}
	if !b.open {
		return b, actNone, false
	}

	dx, lines := b.dropdown()
	w := lipgloss.Width(lines[0])
	// Row 1 is the dropdown's top border.
	if i := y - 2; x >= dx && x < dx+w && i >= 0 && i < len(b.menus[b.active].items) {
		next, act := b.choose(i)
		return next, act, true
	}
	return b.close(), actNone, true
}

func (b menuBar) view(width int, title string) string {
	var sb strings.Builder
	for i, m := range b.menus {
		style := menuTitleStyle
		if b.open && i == b.active {
			style = menuActiveStyle
		}
		sb.WriteString(style.Render(m.title))
	}
	left := sb.String()
	gap := width - lipgloss.Width(left) - lipgloss.Width(title) - 1
	if gap < 1 {
		return menuBarStyle.Render(ansi.Truncate(left, width, ""))
	}
	return menuBarStyle.Render(left + strings.Repeat(" ", gap) + title + " ")
}

// dropdown renders the open menu and returns its x offset on screen.
func (b menuBar) dropdown() (int, []string) {
	m := b.menus[b.active]
	labelW, keyW := 0, 0
	for _, it := range m.items {
		labelW = max(labelW, lipgloss.Width(it.label))
		keyW = max(keyW, lipgloss.Width(it.shortcut))
	}

	rows := make([]string, len(m.items))
	for i, it := range m.items {
		mark := "  "
		if b.checked[it.act] {
			mark = "✓ "
		}
		row := mark + padRight(it.label, labelW) + "   " + padRight(it.shortcut, keyW) + " "
		style := menuItemStyle
		if b.disabled[it.act] {
			style = menuItemDisabledStyle
		}
		if i == b.item {
			style = style.Reverse(true)
		}
		rows[i] = style.Render(row)
	}
	box := dropdownStyle.Render(strings.Join(rows, "\n"))
	return b.titleX()[b.active], strings.Split(box, "\n")
}

func padRight(s string, w int) string {
	if d := w - lipgloss.Width(s); d > 0 {
		return s + strings.Repeat(" ", d)
	}
	return s
}

// overlay draws lines over base starting at cell (x, y).
func overlay(base string, lines []string, x, y int) string {
	rows := strings.Split(base, "\n")
	for i, l := range lines {
		r := y + i
		if r < 0 || r >= len(rows) {
			continue
		}
		row := rows[r]
		w := ansi.StringWidth(l)
		left := ansi.Truncate(row, x, "")
		if pad := x - ansi.StringWidth(left); pad > 0 {
			left += strings.Repeat(" ", pad)
		}
		right := ""
		if ansi.StringWidth(row) > x+w {
			right = ansi.TruncateLeft(row, x+w, "")
		}
		rows[r] = left + l + right
	}
	return strings.Join(rows, "\n")
}
