package tui

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/lixenwraith/celltui/terminal"
)

// ErrExists is returned when a window or menu name is already taken in its
// owning collection.
var ErrExists = errors.New("name already in use")

// TUIEventFunc is the session-level key handler. It gets first refusal on
// the reserved global keys (Ctrl-C, Ctrl-Z, Esc) and sees every other key
// before the menu and window handlers.
type TUIEventFunc func(t *TUI, key terminal.Key)

// TUI is the top-level session. It owns every menu and top-level window,
// tracks the tab-focus view and the active menu/window, and routes keys.
//
// Everything is single-threaded: one ReadKey, one dispatch, one render,
// all on the caller's goroutine.
type TUI struct {
	backend terminal.Backend
	matrix  *Matrix
	logger  *log.Logger

	w, h int // terminal dimensions, cached at creation

	menus   []*Menu
	windows []Window // top-level windows not attached to a menu
	tabs    []Window // focus-cycling view; non-owning

	activeMenu   *Menu
	activeWindow Window

	// OnKey is the session key handler.
	OnKey TUIEventFunc

	// Format resolves placeholders in text templates. Identity when nil.
	Format func(string) string

	running bool
}

// New initializes the backend, registers the color pairs, and returns a
// ready session. Initialization failure leaves nothing running.
func New(b terminal.Backend) (*TUI, error) {
	w, h, err := b.Init()
	if err != nil {
		return nil, fmt.Errorf("tui init: %w", err)
	}
	t := &TUI{
		backend: b,
		matrix:  newMatrix(b),
		logger:  log.NewWithOptions(io.Discard, log.Options{Prefix: "celltui"}),
		w:       w,
		h:       h,
	}
	if err := t.matrix.register(); err != nil {
		b.Fini()
		return nil, fmt.Errorf("tui init: %w", err)
	}
	return t, nil
}

// Size returns the terminal dimensions cached at creation. Resize is out
// of scope; the session keeps its initial geometry.
func (t *TUI) Size() (w, h int) { return t.w, t.h }

// Matrix returns the session's color pair matrix.
func (t *TUI) Matrix() *Matrix { return t.matrix }

// Backend returns the rendering backend.
func (t *TUI) Backend() terminal.Backend { return t.backend }

// SetLogOutput directs the toolkit's diagnostics. Discarded by default:
// stdout belongs to the terminal while a session runs.
func (t *TUI) SetLogOutput(w io.Writer) {
	t.logger.SetOutput(w)
}

// NewContainer creates a top-level container owned by the session.
func (t *TUI) NewContainer(cfg ContainerConfig) (*Container, error) {
	return newContainer(t, parentRef{kind: parentTUI, tui: t}, &t.windows, cfg)
}

// NewText creates a top-level text window owned by the session.
func (t *TUI) NewText(cfg TextConfig) (*Text, error) {
	return newText(t, parentRef{kind: parentTUI, tui: t}, &t.windows, cfg)
}

// NewInput creates a top-level input window owned by the session.
func (t *TUI) NewInput(cfg InputConfig) (*Input, error) {
	return newInput(t, parentRef{kind: parentTUI, tui: t}, &t.windows, cfg)
}

// Menu returns the named menu, or nil.
func (t *TUI) Menu(name string) *Menu {
	for _, m := range t.menus {
		if m.name == name {
			return m
		}
	}
	return nil
}

// Window returns the named top-level window, or nil.
func (t *TUI) Window(name string) Window {
	return findWindow(t.windows, name)
}

// Windows returns the top-level windows in insertion order.
func (t *TUI) Windows() []Window { return t.windows }

// Menus returns the session's menus in insertion order.
func (t *TUI) Menus() []*Menu { return t.menus }

// ActiveMenu returns the menu currently on screen, or nil.
func (t *TUI) ActiveMenu() *Menu { return t.activeMenu }

// ActiveWindow returns the window keys are delivered to, or nil.
func (t *TUI) ActiveWindow() Window { return t.activeWindow }

// SearchWindows fuzzy-matches the query against every window name in the
// session, best match first.
func (t *TUI) SearchWindows(query string) []Window {
	var all []Window
	for _, w := range t.windows {
		all = collectTree(w, all)
	}
	for _, m := range t.menus {
		for _, w := range m.windows {
			all = collectTree(w, all)
		}
	}
	return fuzzyRank(all, query)
}

// SetMenu switches the active menu and moves focus to its first
// interactive window, or to nil when it has none. Reports whether the menu
// exists.
func (t *TUI) SetMenu(name string) bool {
	m := t.Menu(name)
	if m == nil {
		return false
	}
	t.activeMenu = m
	t.activeWindow = nil
	var all []Window
	for _, w := range m.windows {
		all = collectTree(w, all)
	}
	for _, w := range all {
		if w.Head().Interactive {
			t.activeWindow = w
			break
		}
	}
	return true
}

// Focus makes w the active window if it is in the tab-focus view.
func (t *TUI) Focus(w Window) bool {
	for _, cand := range t.tabs {
		if cand == w {
			t.activeWindow = w
			return true
		}
	}
	return false
}

// FocusNext advances the active window to the next entry of the tab-focus
// view, wrapping around: advancing k times over a view of size k returns to
// the starting window.
func (t *TUI) FocusNext() {
	if len(t.tabs) == 0 {
		t.activeWindow = nil
		return
	}
	idx := -1
	for i, w := range t.tabs {
		if w == t.activeWindow {
			idx = i
			break
		}
	}
	t.activeWindow = t.tabs[(idx+1)%len(t.tabs)]
}

// pruneFocus removes a subtree about to be destroyed from the tab view and,
// if it holds the focus, advances the focus past it first. Called in the
// same operation as the removal so no dangling reference survives.
func (t *TUI) pruneFocus(w Window) {
	doomed := make(map[Window]bool)
	for _, n := range collectTree(w, nil) {
		doomed[n] = true
	}
	if t.activeWindow != nil && doomed[t.activeWindow] {
		t.activeWindow = t.nextSurvivor(doomed)
	}
	kept := t.tabs[:0]
	for _, n := range t.tabs {
		if !doomed[n] {
			kept = append(kept, n)
		}
	}
	t.tabs = kept
}

// nextSurvivor finds the next tab entry after the current focus that is
// not in the doomed set, or nil when none remains.
func (t *TUI) nextSurvivor(doomed map[Window]bool) Window {
	n := len(t.tabs)
	idx := 0
	for i, w := range t.tabs {
		if w == t.activeWindow {
			idx = i
			break
		}
	}
	for i := 1; i <= n; i++ {
		cand := t.tabs[(idx+i)%n]
		if !doomed[cand] {
			return cand
		}
	}
	return nil
}

// RemoveWindow destroys the named top-level window and its subtree.
func (t *TUI) RemoveWindow(name string) bool {
	for i, w := range t.windows {
		if w.Head().name == name {
			t.pruneFocus(w)
			w.destroy()
			t.windows = append(t.windows[:i], t.windows[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveMenu destroys the named menu and every window it owns. If it was
// active, the session is left with no active menu.
func (t *TUI) RemoveMenu(name string) bool {
	for i, m := range t.menus {
		if m.name == name {
			for _, w := range m.windows {
				t.pruneFocus(w)
				w.destroy()
			}
			m.windows = nil
			if t.activeMenu == m {
				t.activeMenu = nil
			}
			t.menus = append(t.menus[:i], t.menus[i+1:]...)
			return true
		}
	}
	return false
}

// format runs the session's placeholder hook.
func (t *TUI) format(s string) string {
	if t.Format == nil {
		return s
	}
	return t.Format(s)
}

// globalKey reports whether the key belongs to the reserved control set
// that gets session-level first refusal.
func globalKey(k terminal.Key) bool {
	return k == terminal.KeyCtrlC || k == terminal.KeyCtrlZ || k == terminal.KeyEsc
}

// HandleKey routes one key.
//
// Reserved global keys go to the session handler alone; without a handler
// they stop the session. Tab cycles the focus and invokes nothing. Every
// other key is delivered to the session, active menu, and active window
// handlers in that order: the levels are independent observers, not a
// short-circuit chain. A focused, unlocked Input additionally gets the
// built-in editing behavior before its own handler.
func (t *TUI) HandleKey(key terminal.Key) {
	if globalKey(key) {
		if t.OnKey == nil {
			t.running = false
			return
		}
		t.OnKey(t, key)
		return
	}
	if key == terminal.KeyTab {
		t.FocusNext()
		return
	}

	if t.OnKey != nil {
		t.OnKey(t, key)
	}
	if t.activeMenu != nil && t.activeMenu.OnKey != nil {
		t.activeMenu.OnKey(t.activeMenu, key)
	}
	w := t.activeWindow
	if w == nil {
		return
	}
	b := w.Head()
	if b.Locked {
		return
	}
	if in, ok := w.(*Input); ok && b.Interactive {
		in.handleKey(key)
	}
	if b.OnKey != nil {
		b.OnKey(w, key)
	}
}

// Running reports whether the session loop is live.
func (t *TUI) Running() bool { return t.running }

// Stop ends the session loop after the current dispatch.
func (t *TUI) Stop() { t.running = false }

// Run renders and routes keys until the session stops or the backend
// closes. Blocking happens only in ReadKey.
func (t *TUI) Run() {
	t.running = true
	for t.running {
		t.Render()
		key := t.backend.ReadKey()
		if key == terminal.KeyNone {
			t.running = false
			return
		}
		t.HandleKey(key)
	}
}

// Render paints the whole session: top-level windows, then the active
// menu's windows, pre-order within each tree, and flushes the backend.
func (t *TUI) Render() {
	for _, w := range t.windows {
		t.renderWindow(w)
	}
	if t.activeMenu != nil {
		for _, w := range t.activeMenu.windows {
			t.renderWindow(w)
		}
	}
	t.backend.Flush()
}

// renderWindow paints one window and recurses into children. Pair
// activations nest: the window's pair is active while its content paints,
// and the border pair inherits from it for transparent components.
func (t *TUI) renderWindow(w Window) {
	b := w.Head()
	if !b.Visible || b.surface == nil {
		return
	}
	t.matrix.Activate(b.Fg, b.Bg)
	t.backend.Clear(b.surface)
	w.render()
	if b.Border != nil {
		t.matrix.Activate(b.Border.Fg, b.Border.Bg)
		t.backend.PaintBorder(b.surface)
		t.matrix.Deactivate(b.Border.Fg, b.Border.Bg)
	}

	// Children paint inside the parent's activation so their ColorNone
	// components inherit the parent's pair, not whatever was active before
	// the parent.
	if c, ok := w.(*Container); ok {
		for _, ch := range c.children {
			t.renderWindow(ch)
		}
	}
	t.matrix.Deactivate(b.Fg, b.Bg)
}

// Close destroys every owned menu and window, children before parents, and
// restores the terminal. Each surface is released exactly once; backend
// errors during teardown are logged and never interrupt cleanup.
func (t *TUI) Close() {
	t.running = false
	for _, m := range t.menus {
		for _, w := range m.windows {
			w.destroy()
		}
		m.windows = nil
	}
	t.menus = nil
	for _, w := range t.windows {
		w.destroy()
	}
	t.windows = nil
	t.tabs = nil
	t.activeMenu = nil
	t.activeWindow = nil
	t.backend.Fini()
}
