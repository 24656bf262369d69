// Package tui is a retained-mode terminal UI toolkit: a tree of rectangular
// windows (Container, Text, Input) laid out by a flex-style engine, grouped
// into named menus, and driven by a single-threaded key router.
//
// All drawing goes through a terminal.Backend; the toolkit itself never
// touches the terminal. One TUI session owns every menu and window it
// creates and releases all backend surfaces on Close.
//
// Usage pattern:
//
//	t, err := tui.New(terminal.New())
//	root, _ := t.NewContainer(tui.ContainerConfig{
//	    Config:   tui.Config{Name: "root"},
//	    Vertical: true,
//	})
//	root.NewText(tui.TextConfig{Config: tui.Config{Name: "title"}, Text: "hello"})
//	t.Run()
//	t.Close()
//
// Rendering is a strict pre-order traversal: a window paints before its
// children, siblings paint in insertion order. Color transparency
// (ColorNone) inherits from the pair active at paint time, so the traversal
// order is part of the contract.
package tui
