package tui

// Rect is a rectangle in character cells. X,Y are the top-left corner in
// screen coordinates once layout has run; in configs they are offsets in
// the owner's space. W and H never go negative.
type Rect struct {
	W, H, X, Y int
}

// Empty reports whether the rect has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// inset shrinks the rect by n cells on every side, clamping at zero size.
func (r Rect) inset(n int) Rect {
	r.X += n
	r.Y += n
	r.W -= 2 * n
	r.H -= 2 * n
	if r.W < 0 {
		r.W = 0
	}
	if r.H < 0 {
		r.H = 0
	}
	return r
}
