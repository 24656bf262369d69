package tui

// Container stacks child windows along one axis. It owns its children;
// destroying a container destroys the whole subtree.
type Container struct {
	Base
	children []Window
	Vertical bool
	Pos      Pos
	Align    Align
}

// ContainerConfig configures a new Container.
type ContainerConfig struct {
	Config
	Vertical bool
	Pos      Pos
	Align    Align
}

func newContainer(t *TUI, p parentRef, list *[]Window, cfg ContainerConfig) (*Container, error) {
	c := &Container{
		Vertical: cfg.Vertical,
		Pos:      cfg.Pos,
		Align:    cfg.Align,
	}
	c.Base = newBase(t, p, c, cfg.Config)
	if err := t.attach(list, c); err != nil {
		return nil, err
	}
	return c, nil
}

// NewContainer creates a child container.
func (c *Container) NewContainer(cfg ContainerConfig) (*Container, error) {
	return newContainer(c.tui, parentRef{kind: parentWindow, win: c}, &c.children, cfg)
}

// NewText creates a child text window.
func (c *Container) NewText(cfg TextConfig) (*Text, error) {
	return newText(c.tui, parentRef{kind: parentWindow, win: c}, &c.children, cfg)
}

// NewInput creates a child input window.
func (c *Container) NewInput(cfg InputConfig) (*Input, error) {
	return newInput(c.tui, parentRef{kind: parentWindow, win: c}, &c.children, cfg)
}

// Children returns the child windows in stacking order. The slice is the
// container's own; callers must not mutate it.
func (c *Container) Children() []Window {
	return c.children
}

// Window returns the direct child with the given name, or nil.
func (c *Container) Window(name string) Window {
	return findWindow(c.children, name)
}

// Remove destroys the named child and its subtree, then re-lays-out the
// remaining siblings. Reports whether the child existed.
func (c *Container) Remove(name string) bool {
	for i, ch := range c.children {
		if ch.Head().name == name {
			c.tui.pruneFocus(ch)
			ch.destroy()
			c.children = append(c.children[:i], c.children[i+1:]...)
			c.layout()
			return true
		}
	}
	return false
}

// render paints nothing itself: a container is background, border, and
// children, all handled by the render pass.
func (c *Container) render() {}

// destroy tears down post-order: children first, then the container's own
// surface.
func (c *Container) destroy() {
	for _, ch := range c.children {
		ch.destroy()
	}
	c.children = nil
	c.destroySurface()
}
