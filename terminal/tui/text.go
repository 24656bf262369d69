package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Text displays a block of text. The source template is kept separate from
// the rendered form so placeholder substitution (the session's Format hook)
// can rerun without losing the original.
type Text struct {
	Base
	source   string
	rendered string
	Pos      Pos   // horizontal placement of each line
	Align    Align // vertical placement of the block
}

// TextConfig configures a new Text window.
type TextConfig struct {
	Config
	Text  string
	Pos   Pos
	Align Align
}

func newText(t *TUI, p parentRef, list *[]Window, cfg TextConfig) (*Text, error) {
	x := &Text{
		Pos:   cfg.Pos,
		Align: cfg.Align,
	}
	x.Base = newBase(t, p, x, cfg.Config)
	x.SetText(cfg.Text)
	if err := t.attach(list, x); err != nil {
		return nil, err
	}
	return x, nil
}

// SetText replaces the source template and re-derives the display text
// through the session's Format hook.
func (x *Text) SetText(s string) {
	x.source = s
	x.rendered = x.tui.format(s)
}

// Source returns the caller-supplied template.
func (x *Text) Source() string { return x.source }

// Text returns the derived display text.
func (x *Text) Text() string { return x.rendered }

// render paints the text block into the content rect: lines placed
// vertically per Align, each line placed horizontally per Pos. Lines wider
// or more numerous than the rect clip at the backend.
func (x *Text) render() {
	content := x.contentRect()
	if content.Empty() || x.rendered == "" {
		return
	}
	lines := strings.Split(x.rendered, "\n")
	n := len(lines)

	yoffs := make([]int, n)
	freeH := content.H - n
	if freeH < 0 {
		freeH = 0
	}
	if x.Align.spacing() {
		gaps := gapPlan(freeH, n, x.Align)
		cur := 0
		for i := range lines {
			cur += gaps[i]
			yoffs[i] = cur
			cur++
		}
	} else {
		cur := blockOffset(freeH, x.Align.pos())
		for i := range lines {
			yoffs[i] = cur
			cur++
		}
	}

	ox, oy := content.X-x.rect.X, content.Y-x.rect.Y
	for i, line := range lines {
		lx := blockOffset(content.W-runewidth.StringWidth(line), x.Pos)
		x.tui.backend.PaintText(x.surface, ox+lx, oy+yoffs[i], line)
	}
}

func (x *Text) destroy() {
	x.destroySurface()
}
