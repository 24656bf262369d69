package tui

import (
	"fmt"

	"github.com/lixenwraith/celltui/terminal"
)

// EventFunc is a per-window key handler. The router invokes it with the
// window it is attached to and the raw key; it decides on its own whether
// the key concerns it.
type EventFunc func(w Window, key terminal.Key)

// Border colors a window's single-line frame. ColorNone components inherit
// from the window's own pair.
type Border struct {
	Fg, Bg Color
}

// parentKind tells which owner a window hangs off.
type parentKind uint8

const (
	parentTUI parentKind = iota
	parentMenu
	parentWindow
)

// parentRef is a non-owning back-reference to a window's owner. The
// referenced object outlives the window by tree structure.
type parentRef struct {
	kind parentKind
	tui  *TUI
	menu *Menu
	win  *Container
}

// Base is the header shared by every window variant.
//
// Exported fields may be mutated between render passes. Geometry is managed
// by the layout engine: rect holds the computed absolute rectangle, req the
// caller's requested one (zero extents mean "auto").
type Base struct {
	name        string
	Visible     bool
	Interactive bool
	Locked      bool
	Fg, Bg      Color
	Border      *Border
	OnKey       EventFunc

	rect    Rect
	req     Rect
	surface terminal.Surface
	parent  parentRef
	tui     *TUI
	self    Window
}

// Window is a node in the render tree: a Container, Text, or Input.
// The variant set is closed; dispatch is by type switch.
type Window interface {
	// Head returns the shared window header.
	Head() *Base

	// render paints the variant's content onto its surface. The window's
	// own pair is applied when called.
	render()

	// destroy releases the subtree's surfaces, children first.
	destroy()
}

// Head returns b, letting every variant satisfy Window through embedding.
func (b *Base) Head() *Base { return b }

// Name returns the window name, unique within its owning collection.
func (b *Base) Name() string { return b.name }

// Rect returns the computed absolute rectangle.
func (b *Base) Rect() Rect { return b.rect }

// Requested returns the caller-requested rectangle.
func (b *Base) Requested() Rect { return b.req }

// SetRequested replaces the requested rectangle and reruns layout for the
// affected part of the tree.
func (b *Base) SetRequested(r Rect) {
	b.req = r
	b.relayout()
}

// Session returns the owning session.
func (b *Base) Session() *TUI { return b.tui }

// relayout recomputes geometry from the nearest layout root downward.
func (b *Base) relayout() {
	if b.parent.kind == parentWindow {
		b.parent.win.layout()
		return
	}
	b.tui.layoutTop(b.self)
}

// contentRect returns the absolute rect available to content, inside the
// border if there is one.
func (b *Base) contentRect() Rect {
	if b.Border != nil {
		return b.rect.inset(1)
	}
	return b.rect
}

// destroySurface releases the backend surface exactly once. Teardown is
// infallible by contract: backend errors are logged and cleanup continues.
func (b *Base) destroySurface() {
	if b.surface == nil {
		return
	}
	if err := b.tui.backend.DestroySurface(b.surface); err != nil {
		b.tui.logger.Warn("surface destroy failed", "window", b.name, "err", err)
	}
	b.surface = nil
}

// Config carries the header fields common to all window variants.
type Config struct {
	Name     string
	Rect     Rect // zero extents: fill (top level) or auto (in a container)
	Fg, Bg   Color
	Border   *Border
	OnKey    EventFunc
	Interact bool // join the tab-focus cycle
	Locked   bool // ignore input while set
}

// newBase builds the shared header. The surface is allocated by attach.
func newBase(t *TUI, p parentRef, self Window, cfg Config) Base {
	return Base{
		name:        cfg.Name,
		Visible:     true,
		Interactive: cfg.Interact,
		Locked:      cfg.Locked,
		Fg:          cfg.Fg,
		Bg:          cfg.Bg,
		Border:      cfg.Border,
		OnKey:       cfg.OnKey,
		req:         cfg.Rect,
		parent:      p,
		tui:         t,
		self:        self,
	}
}

// attach inserts a fully constructed window into its owner's collection:
// name-collision check, surface allocation, tab registration, layout. On
// error nothing is inserted and no surface is left behind.
func (t *TUI) attach(list *[]Window, w Window) error {
	b := w.Head()
	if b.name == "" {
		return fmt.Errorf("attach window: empty name")
	}
	for _, other := range *list {
		if other.Head().name == b.name {
			return fmt.Errorf("attach window %q: %w", b.name, ErrExists)
		}
	}

	r := b.req
	if b.parent.kind != parentWindow {
		r = t.resolveTop(r)
	}
	s, err := t.backend.CreateSurface(r.W, r.H, r.X, r.Y)
	if err != nil {
		return fmt.Errorf("attach window %q: %w", b.name, err)
	}
	b.surface = s
	b.rect = r

	*list = append(*list, w)
	if b.Interactive {
		t.tabs = append(t.tabs, w)
		if t.activeWindow == nil {
			t.activeWindow = w
		}
	}
	b.relayout()
	return nil
}

// windowPos returns the variant's own position preference, used for
// cross-axis placement inside a container.
func windowPos(w Window) Pos {
	switch v := w.(type) {
	case *Container:
		return v.Pos
	case *Text:
		return v.Pos
	case *Input:
		return v.Pos
	}
	return PosStart
}

// findWindow scans a collection by name. A miss returns nil, never an error.
func findWindow(ws []Window, name string) Window {
	for _, w := range ws {
		if w.Head().name == name {
			return w
		}
	}
	return nil
}

// collectTree appends w and all its descendants, pre-order.
func collectTree(w Window, out []Window) []Window {
	out = append(out, w)
	if c, ok := w.(*Container); ok {
		for _, ch := range c.children {
			out = collectTree(ch, out)
		}
	}
	return out
}
