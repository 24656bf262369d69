package tui

import (
	"errors"

	"github.com/lixenwraith/celltui/terminal"
)

// fakeSurface is the test backend's surface handle.
type fakeSurface struct {
	id         int
	w, h, x, y int
	dead       bool
}

func (s *fakeSurface) Bounds() (w, h, x, y int) {
	return s.w, s.h, s.x, s.y
}

// paintOp records one paint call for assertions.
type paintOp struct {
	kind    string // "text", "border", "clear"
	surface int
	x, y    int
	text    string
	pair    int
}

// fakeBackend counts and records every backend call.
type fakeBackend struct {
	w, h int

	nextID    int
	created   []int
	destroyed []int // destruction order by surface id

	pairs   map[int][2]int
	applied []int
	current int

	paints  []paintOp
	flushes int
	bells   int
	finis   int

	keys []terminal.Key

	failCreate  bool
	destroyErr  error
	registerErr error
	initErr     error
}

func newFakeBackend(w, h int) *fakeBackend {
	return &fakeBackend{w: w, h: h, pairs: make(map[int][2]int)}
}

func (f *fakeBackend) Init() (int, int, error) {
	if f.initErr != nil {
		return 0, 0, f.initErr
	}
	return f.w, f.h, nil
}

func (f *fakeBackend) Fini() {
	f.finis++
}

func (f *fakeBackend) CreateSurface(w, h, x, y int) (terminal.Surface, error) {
	if f.failCreate {
		return nil, errors.New("create refused")
	}
	f.nextID++
	f.created = append(f.created, f.nextID)
	return &fakeSurface{id: f.nextID, w: w, h: h, x: x, y: y}, nil
}

func (f *fakeBackend) ResizeMove(s terminal.Surface, w, h, x, y int) {
	fs := s.(*fakeSurface)
	fs.w, fs.h, fs.x, fs.y = w, h, x, y
}

func (f *fakeBackend) DestroySurface(s terminal.Surface) error {
	fs := s.(*fakeSurface)
	if fs.dead {
		return errors.New("double destroy")
	}
	fs.dead = true
	f.destroyed = append(f.destroyed, fs.id)
	return f.destroyErr
}

func (f *fakeBackend) RegisterPair(index int, fg, bg int) error {
	if f.registerErr != nil {
		return f.registerErr
	}
	f.pairs[index] = [2]int{fg, bg}
	return nil
}

func (f *fakeBackend) ApplyPair(index int) {
	f.current = index
	f.applied = append(f.applied, index)
}

func (f *fakeBackend) ReleasePair(index int) {}

func (f *fakeBackend) PaintText(s terminal.Surface, x, y int, text string) {
	fs := s.(*fakeSurface)
	f.paints = append(f.paints, paintOp{kind: "text", surface: fs.id, x: x, y: y, text: text, pair: f.current})
}

func (f *fakeBackend) PaintBorder(s terminal.Surface) {
	fs := s.(*fakeSurface)
	f.paints = append(f.paints, paintOp{kind: "border", surface: fs.id, pair: f.current})
}

func (f *fakeBackend) Clear(s terminal.Surface) {
	fs := s.(*fakeSurface)
	f.paints = append(f.paints, paintOp{kind: "clear", surface: fs.id, pair: f.current})
}

func (f *fakeBackend) Flush() {
	f.flushes++
}

func (f *fakeBackend) ReadKey() terminal.Key {
	if len(f.keys) == 0 {
		return terminal.KeyNone
	}
	k := f.keys[0]
	f.keys = f.keys[1:]
	return k
}

func (f *fakeBackend) Bell() {
	f.bells++
}

// newTestTUI builds a session on a fake backend, failing the test on error.
func newTestTUI(t interface{ Fatalf(string, ...any) }, w, h int) (*TUI, *fakeBackend) {
	f := newFakeBackend(w, h)
	session, err := New(f)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return session, f
}

// surfaceID returns the fake surface id behind a window.
func surfaceID(w Window) int {
	return w.Head().surface.(*fakeSurface).id
}
