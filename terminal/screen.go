package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Screen implements Backend on top of a tcell screen. Surfaces are clipped
// rectangular views onto the single physical screen; tcell's cell diffing
// makes repainting overlapping surfaces cheap.
type Screen struct {
	ts      tcell.Screen
	pairs   map[int]tcell.Style
	current tcell.Style
	w, h    int
	init    bool
}

// New creates a Screen backed by the process terminal. The terminal is not
// touched until Init.
func New() *Screen {
	return &Screen{pairs: make(map[int]tcell.Style)}
}

// NewWith creates a Screen on an existing tcell screen. Used with tcell's
// SimulationScreen in tests.
func NewWith(ts tcell.Screen) *Screen {
	return &Screen{ts: ts, pairs: make(map[int]tcell.Style)}
}

// screenSurface is the Surface handle for Screen. Geometry is mutable via
// ResizeMove; paints clip against it.
type screenSurface struct {
	w, h, x, y int
	dead       bool
}

func (s *screenSurface) Bounds() (w, h, x, y int) {
	return s.w, s.h, s.x, s.y
}

// Init implements Backend.
func (s *Screen) Init() (int, int, error) {
	if s.ts == nil {
		ts, err := tcell.NewScreen()
		if err != nil {
			return 0, 0, fmt.Errorf("terminal init: %w", err)
		}
		s.ts = ts
	}
	if err := s.ts.Init(); err != nil {
		return 0, 0, fmt.Errorf("terminal init: %w", err)
	}
	if s.ts.Colors() <= 0 {
		s.ts.Fini()
		return 0, 0, ErrNoColor
	}
	s.ts.HideCursor()
	s.ts.Clear()
	s.w, s.h = s.ts.Size()
	s.init = true
	return s.w, s.h, nil
}

// Fini implements Backend.
func (s *Screen) Fini() {
	if !s.init {
		return
	}
	s.init = false
	s.ts.Fini()
}

// CreateSurface implements Backend.
func (s *Screen) CreateSurface(w, h, x, y int) (Surface, error) {
	if w < 0 || h < 0 {
		return nil, fmt.Errorf("surface %dx%d at (%d,%d): negative size", w, h, x, y)
	}
	return &screenSurface{w: w, h: h, x: x, y: y}, nil
}

// ResizeMove implements Backend.
func (s *Screen) ResizeMove(sf Surface, w, h, x, y int) {
	ss, ok := sf.(*screenSurface)
	if !ok || ss.dead {
		return
	}
	ss.w, ss.h, ss.x, ss.y = w, h, x, y
}

// DestroySurface implements Backend.
func (s *Screen) DestroySurface(sf Surface) error {
	ss, ok := sf.(*screenSurface)
	if !ok {
		return fmt.Errorf("destroy: not a screen surface")
	}
	if ss.dead {
		return fmt.Errorf("destroy: surface already destroyed")
	}
	s.clearSurface(ss, tcell.StyleDefault)
	ss.dead = true
	return nil
}

// pairColor maps a registered component value to a tcell color.
func pairColor(c int) (tcell.Color, error) {
	switch {
	case c == FgDefault:
		return tcell.ColorDefault, nil
	case c >= 0 && c <= 7:
		return tcell.PaletteColor(c), nil
	default:
		return tcell.ColorDefault, ErrBadPair
	}
}

// RegisterPair implements Backend.
func (s *Screen) RegisterPair(index int, fg, bg int) error {
	if index < 0 {
		return ErrBadPair
	}
	fgc, err := pairColor(fg)
	if err != nil {
		return err
	}
	bgc, err := pairColor(bg)
	if err != nil {
		return err
	}
	s.pairs[index] = tcell.StyleDefault.Foreground(fgc).Background(bgc)
	return nil
}

// ApplyPair implements Backend.
func (s *Screen) ApplyPair(index int) {
	if st, ok := s.pairs[index]; ok {
		s.current = st
	}
}

// ReleasePair implements Backend.
func (s *Screen) ReleasePair(index int) {
	s.current = tcell.StyleDefault
}

// set writes one cell at surface-relative (x,y), clipped to the surface.
func (s *Screen) set(ss *screenSurface, x, y int, ch rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= ss.w || y >= ss.h {
		return
	}
	s.ts.SetContent(ss.x+x, ss.y+y, ch, nil, style)
}

// PaintText implements Backend. Wide runes occupy two cells; text running
// past the surface edge is clipped.
func (s *Screen) PaintText(sf Surface, x, y int, text string) {
	ss, ok := sf.(*screenSurface)
	if !ok || ss.dead {
		return
	}
	col := x
	for _, ch := range text {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		s.set(ss, col, y, ch, s.current)
		col += w
	}
}

// Border glyphs, single line
var borderRunes = [6]rune{'┌', '─', '┐', '│', '└', '┘'}

// PaintBorder implements Backend.
func (s *Screen) PaintBorder(sf Surface) {
	ss, ok := sf.(*screenSurface)
	if !ok || ss.dead || ss.w < 2 || ss.h < 2 {
		return
	}
	s.set(ss, 0, 0, borderRunes[0], s.current)
	s.set(ss, ss.w-1, 0, borderRunes[2], s.current)
	s.set(ss, 0, ss.h-1, borderRunes[4], s.current)
	s.set(ss, ss.w-1, ss.h-1, borderRunes[5], s.current)
	for x := 1; x < ss.w-1; x++ {
		s.set(ss, x, 0, borderRunes[1], s.current)
		s.set(ss, x, ss.h-1, borderRunes[1], s.current)
	}
	for y := 1; y < ss.h-1; y++ {
		s.set(ss, 0, y, borderRunes[3], s.current)
		s.set(ss, ss.w-1, y, borderRunes[3], s.current)
	}
}

// Clear implements Backend.
func (s *Screen) Clear(sf Surface) {
	ss, ok := sf.(*screenSurface)
	if !ok || ss.dead {
		return
	}
	s.clearSurface(ss, s.current)
}

func (s *Screen) clearSurface(ss *screenSurface, style tcell.Style) {
	for y := 0; y < ss.h; y++ {
		for x := 0; x < ss.w; x++ {
			s.set(ss, x, y, ' ', style)
		}
	}
}

// Flush implements Backend.
func (s *Screen) Flush() {
	s.ts.Show()
}

// Bell implements Backend.
func (s *Screen) Bell() {
	s.ts.Beep()
}

// ReadKey implements Backend. Non-key events (resize, paste, mouse) are
// swallowed. Returns KeyNone if the screen is finalized while blocked.
func (s *Screen) ReadKey() Key {
	for {
		ev := s.ts.PollEvent()
		if ev == nil {
			return KeyNone
		}
		kev, ok := ev.(*tcell.EventKey)
		if !ok {
			continue
		}
		if k := mapKey(kev); k != KeyNone {
			return k
		}
	}
}

// mapKey translates a tcell key event to a toolkit Key.
func mapKey(ev *tcell.EventKey) Key {
	switch ev.Key() {
	case tcell.KeyRune:
		return Key(ev.Rune())
	case tcell.KeyUp:
		return KeyUp
	case tcell.KeyDown:
		return KeyDown
	case tcell.KeyLeft:
		return KeyLeft
	case tcell.KeyRight:
		return KeyRight
	case tcell.KeyHome:
		return KeyHome
	case tcell.KeyEnd:
		return KeyEnd
	case tcell.KeyPgUp:
		return KeyPageUp
	case tcell.KeyPgDn:
		return KeyPageDown
	case tcell.KeyInsert:
		return KeyInsert
	case tcell.KeyDelete:
		return KeyDelete
	case tcell.KeyBacktab:
		return KeyBacktab
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return KeyBackspace
	case tcell.KeyEnter:
		return KeyEnter
	default:
		k := ev.Key()
		// tcell posts raw control bytes offset into its dedicated ctrl-key
		// block; shift them back to the byte values the toolkit uses.
		if k >= tcell.KeyCtrlSpace && k <= tcell.KeyCtrlUnderscore {
			k -= tcell.KeyCtrlSpace
		}
		if k == 13 { // carriage return from a literal Ctrl-M
			return KeyEnter
		}
		if k > 0 && k < 128 {
			return Key(k)
		}
		return KeyNone
	}
}
