package terminal

import "errors"

// Backend errors
var (
	// ErrNoColor is returned by Init when the terminal cannot allocate
	// color pairs.
	ErrNoColor = errors.New("terminal does not support color")

	// ErrBadPair is returned when a color pair index or component is out
	// of range.
	ErrBadPair = errors.New("color pair out of range")
)

// FgDefault and BgDefault are the color component value meaning "terminal
// default" when registering a pair. Concrete colors are 0-7 in the usual
// ANSI order (black, red, green, yellow, blue, magenta, cyan, white).
const (
	FgDefault = -1
	BgDefault = -1
)

// Surface is a backend-managed rectangular drawing area. A surface is bound
// 1:1 to a window node; the node owns it and destroys it exactly once.
type Surface interface {
	// Bounds returns the surface geometry in screen coordinates.
	Bounds() (w, h, x, y int)
}

// Backend abstracts the terminal the toolkit renders to.
//
// All paint operations draw with the currently applied color pair, mirroring
// the curses attron/attroff model. Implementations clip paints to surface
// bounds; out-of-range coordinates are dropped, never an error.
type Backend interface {
	// Init prepares the terminal and returns its dimensions.
	Init() (w, h int, err error)

	// Fini restores the terminal. Safe to call more than once.
	Fini()

	// CreateSurface allocates a drawing area at screen position (x,y).
	CreateSurface(w, h, x, y int) (Surface, error)

	// ResizeMove changes a surface's geometry.
	ResizeMove(s Surface, w, h, x, y int)

	// DestroySurface releases a surface. Errors are advisory; callers
	// tearing down a window tree must not stop on them.
	DestroySurface(s Surface) error

	// RegisterPair binds a pair index to a (fg,bg) color combination.
	// Components are 0-7 ANSI colors or FgDefault/BgDefault.
	RegisterPair(index int, fg, bg int) error

	// ApplyPair makes a registered pair current for subsequent paints.
	ApplyPair(index int)

	// ReleasePair ends use of a pair. Paints issued before the next
	// ApplyPair fall back to the terminal default style.
	ReleasePair(index int)

	// PaintText draws text at surface-relative (x,y) with the current pair.
	PaintText(s Surface, x, y int, text string)

	// PaintBorder draws a single-line border along the surface edge with
	// the current pair.
	PaintBorder(s Surface)

	// Clear fills the surface with spaces in the current pair.
	Clear(s Surface)

	// Flush makes all paints since the last call visible.
	Flush()

	// ReadKey blocks until the next key arrives.
	ReadKey() Key

	// Bell sounds the terminal bell, if the terminal has one.
	Bell()
}
