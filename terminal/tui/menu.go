package tui

import (
	"fmt"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/lixenwraith/celltui/terminal"
)

// MenuEventFunc is a per-menu key handler.
type MenuEventFunc func(m *Menu, key terminal.Key)

// Menu is one screen: a named, ordered collection of windows. The session
// owns its menus; a menu owns its windows.
type Menu struct {
	name    string
	windows []Window
	OnKey   MenuEventFunc
	tui     *TUI
}

// MenuConfig configures a new Menu.
type MenuConfig struct {
	Name  string
	OnKey MenuEventFunc
}

// NewMenu creates a menu owned by the session. Names are unique within the
// session; a duplicate is rejected.
func (t *TUI) NewMenu(cfg MenuConfig) (*Menu, error) {
	if cfg.Name == "" {
		return nil, fmt.Errorf("new menu: empty name")
	}
	for _, m := range t.menus {
		if m.name == cfg.Name {
			return nil, fmt.Errorf("new menu %q: %w", cfg.Name, ErrExists)
		}
	}
	m := &Menu{name: cfg.Name, OnKey: cfg.OnKey, tui: t}
	t.menus = append(t.menus, m)
	return m, nil
}

// Name returns the menu name.
func (m *Menu) Name() string { return m.name }

// Windows returns the menu's windows in insertion order.
func (m *Menu) Windows() []Window { return m.windows }

// NewContainer creates a container owned by the menu.
func (m *Menu) NewContainer(cfg ContainerConfig) (*Container, error) {
	return newContainer(m.tui, parentRef{kind: parentMenu, menu: m}, &m.windows, cfg)
}

// NewText creates a text window owned by the menu.
func (m *Menu) NewText(cfg TextConfig) (*Text, error) {
	return newText(m.tui, parentRef{kind: parentMenu, menu: m}, &m.windows, cfg)
}

// NewInput creates an input window owned by the menu.
func (m *Menu) NewInput(cfg InputConfig) (*Input, error) {
	return newInput(m.tui, parentRef{kind: parentMenu, menu: m}, &m.windows, cfg)
}

// Window returns the direct window with the given name, or nil.
func (m *Menu) Window(name string) Window {
	return findWindow(m.windows, name)
}

// Remove destroys the named window and its subtree. If the focused window
// is inside the subtree, focus moves on before anything is freed, so key
// delivery never sees a destroyed node.
func (m *Menu) Remove(name string) bool {
	for i, w := range m.windows {
		if w.Head().name == name {
			m.tui.pruneFocus(w)
			w.destroy()
			m.windows = append(m.windows[:i], m.windows[i+1:]...)
			return true
		}
	}
	return false
}

// Search returns the menu's windows, including nested ones, whose names
// fuzzy-match the query, best match first.
func (m *Menu) Search(query string) []Window {
	var all []Window
	for _, w := range m.windows {
		all = collectTree(w, all)
	}
	return fuzzyRank(all, query)
}

// fuzzyRank orders windows by fuzzy match quality against their names.
func fuzzyRank(ws []Window, query string) []Window {
	names := make([]string, len(ws))
	for i, w := range ws {
		names[i] = w.Head().name
	}
	ranks := fuzzy.RankFindNormalizedFold(query, names)
	sort.Sort(ranks)
	out := make([]Window, 0, len(ranks))
	for _, r := range ranks {
		out = append(out, ws[r.OriginalIndex])
	}
	return out
}
