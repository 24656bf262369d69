package tui

import (
	"fmt"

	"github.com/lixenwraith/celltui/terminal"
)

// Color is one of the eight base terminal colors, or ColorNone.
//
// ColorNone is the transparent sentinel: when a window or border uses it,
// the corresponding component of the currently active pair is inherited, so
// nested transparent regions pick up whatever is already painted under them.
type Color uint8

const (
	ColorNone Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
)

// numColors counts the enumeration including ColorNone.
const numColors = 9

// NumPairs is the number of registered color pairs.
const NumPairs = numColors * numColors

// Pair is a registered (fg,bg) combination addressed by a single index in
// [0,NumPairs).
type Pair int

// PairOf returns the pair index for a fully resolved (fg,bg) combination.
// The mapping is a bijection over the 9x9 color grid.
func PairOf(fg, bg Color) Pair {
	return Pair(fg)*numColors + Pair(bg)
}

// Split returns the color components of a pair index.
func (p Pair) Split() (fg, bg Color) {
	return Color(p / numColors), Color(p % numColors)
}

// Matrix tracks color pair state for a render pass: which pair is active
// and the stack of pairs shadowed by nested activations. It is the only
// mutable color state; keeping it on the session rather than in a global
// keeps rendering testable.
type Matrix struct {
	backend terminal.Backend
	active  Pair
	stack   []Pair
}

func newMatrix(b terminal.Backend) *Matrix {
	return &Matrix{backend: b}
}

// register binds all pair combinations with the backend, in index order, so
// a bare index always maps to a deterministic (fg,bg). Failure is fatal to
// session initialization.
func (m *Matrix) register() error {
	for fg := 0; fg < numColors; fg++ {
		for bg := 0; bg < numColors; bg++ {
			// ColorNone registers as the terminal default, one below
			// the ANSI ordinals.
			if err := m.backend.RegisterPair(fg*numColors+bg, fg-1, bg-1); err != nil {
				return fmt.Errorf("register pair %d: %w", fg*numColors+bg, err)
			}
		}
	}
	return nil
}

// Resolve substitutes ColorNone components with the matching component of
// the most recently activated pair.
func (m *Matrix) Resolve(fg, bg Color) (Color, Color) {
	afg, abg := m.active.Split()
	if fg == ColorNone {
		fg = afg
	}
	if bg == ColorNone {
		bg = abg
	}
	return fg, bg
}

// Active returns the most recently activated pair.
func (m *Matrix) Active() Pair {
	return m.active
}

// Activate resolves the combination, makes it the active pair, and asks the
// backend to apply it. Every Activate during a paint must be balanced by a
// Deactivate before control returns to the enclosing paint.
func (m *Matrix) Activate(fg, bg Color) Pair {
	rfg, rbg := m.Resolve(fg, bg)
	p := PairOf(rfg, rbg)
	m.stack = append(m.stack, m.active)
	m.active = p
	m.backend.ApplyPair(int(p))
	return p
}

// Deactivate ends use of the combination and restores the pair that was
// active before the matching Activate.
func (m *Matrix) Deactivate(fg, bg Color) {
	rfg, rbg := m.Resolve(fg, bg)
	m.backend.ReleasePair(int(PairOf(rfg, rbg)))
	if n := len(m.stack); n > 0 {
		m.active = m.stack[n-1]
		m.stack = m.stack[:n-1]
	}
	m.backend.ApplyPair(int(m.active))
}
