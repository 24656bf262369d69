package tui

import (
	"github.com/lixenwraith/celltui/terminal"
)

// defaultCapacity is the initial buffer capacity when none is requested.
const defaultCapacity = 32

// maskRune is painted in place of content when Secret is set.
const maskRune = '*'

// Input is a single-line editable text field with horizontal scrolling.
//
// The buffer grows by doubling. Cursor is the insertion point in
// [0,length]; Scroll is the first visible rune offset, kept so the cursor
// stays inside the visible slice after every mutation.
type Input struct {
	Base
	buf    []rune
	cursor int
	scroll int
	Secret bool // paint mask glyphs instead of content
	Hidden bool // paint nothing at all
	Pos    Pos  // vertical placement of the line within the rect
}

// InputConfig configures a new Input window.
type InputConfig struct {
	Config
	Capacity int
	Secret   bool
	Hidden   bool
	Pos      Pos
}

func newInput(t *TUI, p parentRef, list *[]Window, cfg InputConfig) (*Input, error) {
	capacity := cfg.Capacity
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	in := &Input{
		buf:    make([]rune, 0, capacity),
		Secret: cfg.Secret,
		Hidden: cfg.Hidden,
		Pos:    cfg.Pos,
	}
	in.Base = newBase(t, p, in, cfg.Config)
	if err := t.attach(list, in); err != nil {
		return nil, err
	}
	return in, nil
}

// Value returns the buffer contents.
func (in *Input) Value() string { return string(in.buf) }

// Length returns the number of runes in the buffer.
func (in *Input) Length() int { return len(in.buf) }

// Cursor returns the insertion point.
func (in *Input) Cursor() int { return in.cursor }

// Scroll returns the first visible rune offset.
func (in *Input) Scroll() int { return in.scroll }

// SetValue replaces the contents and moves the cursor to the end.
func (in *Input) SetValue(s string) {
	in.buf = in.buf[:0]
	in.buf = append(in.buf, []rune(s)...)
	in.cursor = len(in.buf)
	in.adjustScroll()
}

// Clear empties the field.
func (in *Input) Clear() {
	in.buf = in.buf[:0]
	in.cursor = 0
	in.scroll = 0
}

// grow doubles the buffer capacity until one more rune fits.
func (in *Input) grow() {
	if len(in.buf) < cap(in.buf) {
		return
	}
	newCap := cap(in.buf) * 2
	if newCap == 0 {
		newCap = defaultCapacity
	}
	nb := make([]rune, len(in.buf), newCap)
	copy(nb, in.buf)
	in.buf = nb
}

// Insert adds a rune at the cursor, shifting the tail right.
func (in *Input) Insert(r rune) {
	in.grow()
	in.buf = append(in.buf, 0)
	copy(in.buf[in.cursor+1:], in.buf[in.cursor:])
	in.buf[in.cursor] = r
	in.cursor++
	in.adjustScroll()
}

// DeleteBackward removes the rune before the cursor. No-op at the start.
func (in *Input) DeleteBackward() bool {
	if in.cursor == 0 {
		return false
	}
	copy(in.buf[in.cursor-1:], in.buf[in.cursor:])
	in.buf = in.buf[:len(in.buf)-1]
	in.cursor--
	in.adjustScroll()
	return true
}

// DeleteForward removes the rune at the cursor. No-op at the end.
func (in *Input) DeleteForward() bool {
	if in.cursor >= len(in.buf) {
		return false
	}
	copy(in.buf[in.cursor:], in.buf[in.cursor+1:])
	in.buf = in.buf[:len(in.buf)-1]
	in.adjustScroll()
	return true
}

// MoveCursor shifts the insertion point by delta, clamped to [0,length].
func (in *Input) MoveCursor(delta int) {
	in.cursor += delta
	if in.cursor < 0 {
		in.cursor = 0
	}
	if in.cursor > len(in.buf) {
		in.cursor = len(in.buf)
	}
	in.adjustScroll()
}

// visibleWidth is the number of content cells available to the field.
func (in *Input) visibleWidth() int {
	return in.contentRect().W
}

// adjustScroll keeps the cursor inside [scroll, scroll+visibleWidth).
// Clamping rather than erroring: scroll arithmetic is an internal
// guarantee, not caller input.
func (in *Input) adjustScroll() {
	w := in.visibleWidth()
	if w <= 0 {
		in.scroll = in.cursor
		return
	}
	if in.cursor < in.scroll {
		in.scroll = in.cursor
	}
	if in.cursor >= in.scroll+w {
		in.scroll = in.cursor - w + 1
	}
	if in.scroll < 0 {
		in.scroll = 0
	}
	if in.scroll > len(in.buf) {
		in.scroll = len(in.buf)
	}
}

// handleKey applies the built-in editing bindings. The router calls this
// for the focused input before the user handler.
func (in *Input) handleKey(k terminal.Key) {
	switch k {
	case terminal.KeyLeft:
		in.MoveCursor(-1)
	case terminal.KeyRight:
		in.MoveCursor(1)
	case terminal.KeyHome:
		in.MoveCursor(-len(in.buf))
	case terminal.KeyEnd:
		in.MoveCursor(len(in.buf))
	case terminal.KeyBackspace, terminal.KeyCtrlH, terminal.KeyDel:
		in.DeleteBackward()
	case terminal.KeyDelete, terminal.KeyCtrlD:
		in.DeleteForward()
	default:
		if r := k.Rune(); r != 0 {
			in.Insert(r)
		}
	}
}

// render paints the visible slice with the cursor cell in the inverted
// pair. Secret fields paint mask glyphs; hidden fields paint nothing.
func (in *Input) render() {
	if in.Hidden {
		return
	}
	content := in.contentRect()
	w := content.W
	if content.Empty() {
		return
	}
	in.adjustScroll()

	ox, oy := content.X-in.rect.X, content.Y-in.rect.Y
	y := oy + blockOffset(content.H-1, in.Pos)

	visible := make([]rune, 0, w)
	for i := in.scroll; i < len(in.buf) && i < in.scroll+w; i++ {
		if in.Secret {
			visible = append(visible, maskRune)
		} else {
			visible = append(visible, in.buf[i])
		}
	}
	in.tui.backend.PaintText(in.surface, ox, y, string(visible))

	// Cursor glyph in the swapped pair, only while focused.
	if in.tui.activeWindow != Window(in) {
		return
	}
	cx := in.cursor - in.scroll
	if cx < 0 || cx >= w {
		return
	}
	under := ' '
	if in.cursor < len(in.buf) {
		under = in.buf[in.cursor]
		if in.Secret {
			under = maskRune
		}
	}
	m := in.tui.matrix
	fg, bg := m.Resolve(in.Fg, in.Bg)
	m.Activate(bg, fg)
	in.tui.backend.PaintText(in.surface, ox+cx, y, string(under))
	m.Deactivate(bg, fg)
}

func (in *Input) destroy() {
	in.destroySurface()
}
