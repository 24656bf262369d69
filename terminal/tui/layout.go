package tui

// Pos places a block (or a child on the cross axis) within available space.
type Pos uint8

const (
	PosStart Pos = iota
	PosCenter
	PosEnd
)

// Align distributes free space along a container's stacking axis. The first
// three values leave spacing to Pos; the last three override it with gap
// distribution.
type Align uint8

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
	AlignBetween // equal gaps between children, none at the edges
	AlignAround  // edge gaps half the size of between-gaps
	AlignEvenly  // all gaps equal, edges included
)

// spacing reports whether the align value distributes gaps itself.
func (a Align) spacing() bool {
	return a == AlignBetween || a == AlignAround || a == AlignEvenly
}

// pos maps the non-spacing align values onto block placement.
func (a Align) pos() Pos {
	switch a {
	case AlignCenter:
		return PosCenter
	case AlignEnd:
		return PosEnd
	}
	return PosStart
}

// gapPlan computes the gap before each of n children for a spacing align.
// free is the unoccupied main-axis extent (never negative). Division
// remainders go to the leading gaps, one cell each, cycling if needed, so
// the occupied total is exact and the rule is deterministic.
func gapPlan(free, n int, align Align) []int {
	gaps := make([]int, n)
	if n == 0 || free <= 0 {
		return gaps
	}
	switch align {
	case AlignBetween:
		if n == 1 {
			return gaps
		}
		per, rem := free/(n-1), free%(n-1)
		for i := 1; i < n; i++ {
			gaps[i] = per
			if i <= rem {
				gaps[i]++
			}
		}
	case AlignEvenly:
		// n+1 equal slots; the trailing one is implicit.
		per, rem := free/(n+1), free%(n+1)
		for i := 0; i < n; i++ {
			gaps[i] = per
			if i < rem {
				gaps[i]++
			}
		}
	case AlignAround:
		// Edge slots weigh 1, between slots weigh 2: 2n units total.
		unit, rem := free/(2*n), free%(2*n)
		gaps[0] = unit
		for i := 1; i < n; i++ {
			gaps[i] = 2 * unit
		}
		for i := 0; i < rem; i++ {
			gaps[i%n]++
		}
	}
	return gaps
}

// blockOffset computes the main-axis start of a packed block for the
// non-spacing aligns. Overflowing blocks pin to the start.
func blockOffset(free int, pos Pos) int {
	if free <= 0 {
		return 0
	}
	switch pos {
	case PosCenter:
		return free / 2
	case PosEnd:
		return free
	}
	return 0
}

// layout computes every child's rectangle from the container's content
// rect, resizes the backing surfaces, and recurses into child containers.
//
// Children with a zero requested extent on the stacking axis share the
// space left over after fixed-size children, remainder cells going to the
// first of them. When fixed sizes alone exceed the container, auto children
// collapse to zero and fixed children keep their requested extent even if
// they overflow visually; overflow is intentionally not clamped.
func (c *Container) layout() {
	n := len(c.children)
	if n == 0 {
		return
	}
	content := c.contentRect()
	main, cross := content.W, content.H
	if c.Vertical {
		main, cross = content.H, content.W
	}

	sizes := make([]int, n)
	var auto []int
	fixed := 0
	for i, ch := range c.children {
		r := ch.Head().req
		sz := r.W
		if c.Vertical {
			sz = r.H
		}
		sizes[i] = sz
		if sz == 0 {
			auto = append(auto, i)
		} else {
			fixed += sz
		}
	}
	if len(auto) > 0 {
		remain := main - fixed
		if remain < 0 {
			remain = 0
		}
		per, rem := remain/len(auto), remain%len(auto)
		for j, i := range auto {
			sizes[i] = per
			if j < rem {
				sizes[i]++
			}
		}
	}

	total := 0
	for _, sz := range sizes {
		total += sz
	}
	free := main - total
	if free < 0 {
		free = 0
	}

	offs := make([]int, n)
	if c.Align.spacing() {
		gaps := gapPlan(free, n, c.Align)
		cur := 0
		for i := range sizes {
			cur += gaps[i]
			offs[i] = cur
			cur += sizes[i]
		}
	} else {
		cur := blockOffset(free, c.Pos)
		for i := range sizes {
			offs[i] = cur
			cur += sizes[i]
		}
	}

	for i, ch := range c.children {
		b := ch.Head()
		reqCross := b.req.H
		if c.Vertical {
			reqCross = b.req.W
		}
		crossSz, crossOff := cross, 0
		if reqCross > 0 {
			crossSz = reqCross
			if gap := cross - crossSz; gap > 0 {
				crossOff = blockOffset(gap, windowPos(ch))
			}
		}

		var r Rect
		if c.Vertical {
			r = Rect{W: crossSz, H: sizes[i], X: content.X + crossOff, Y: content.Y + offs[i]}
		} else {
			r = Rect{W: sizes[i], H: crossSz, X: content.X + offs[i], Y: content.Y + crossOff}
		}
		b.rect = r
		c.tui.backend.ResizeMove(b.surface, r.W, r.H, r.X, r.Y)
		if sub, ok := ch.(*Container); ok {
			sub.layout()
		}
	}
}

// resolveTop turns a requested rect into the absolute rect of a top-level
// window: zero extents span the session's cached terminal dimensions.
func (t *TUI) resolveTop(r Rect) Rect {
	if r.W == 0 {
		r.W = t.w - r.X
	}
	if r.H == 0 {
		r.H = t.h - r.Y
	}
	if r.W < 0 {
		r.W = 0
	}
	if r.H < 0 {
		r.H = 0
	}
	return r
}

// layoutTop recomputes a top-level window's geometry and its subtree.
func (t *TUI) layoutTop(w Window) {
	b := w.Head()
	b.rect = t.resolveTop(b.req)
	t.backend.ResizeMove(b.surface, b.rect.W, b.rect.H, b.rect.X, b.rect.Y)
	if c, ok := w.(*Container); ok {
		c.layout()
	}
}
