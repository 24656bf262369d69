package tui

import (
	"errors"
	"testing"
)

func TestPairOfBijection(t *testing.T) {
	seen := make(map[Pair]bool)
	for fg := Color(0); fg < numColors; fg++ {
		for bg := Color(0); bg < numColors; bg++ {
			p := PairOf(fg, bg)
			if p < 0 || int(p) >= NumPairs {
				t.Fatalf("PairOf(%d,%d) = %d, out of range", fg, bg, p)
			}
			if seen[p] {
				t.Fatalf("PairOf(%d,%d) = %d, already produced", fg, bg, p)
			}
			seen[p] = true
			rfg, rbg := p.Split()
			if rfg != fg || rbg != bg {
				t.Errorf("Split(%d) = (%d,%d), want (%d,%d)", p, rfg, rbg, fg, bg)
			}
		}
	}
	if len(seen) != NumPairs {
		t.Errorf("expected %d distinct pairs, got %d", NumPairs, len(seen))
	}
}

func TestRegisterOrderAndComponents(t *testing.T) {
	f := newFakeBackend(80, 24)
	m := newMatrix(f)
	if err := m.register(); err != nil {
		t.Fatalf("register: %v", err)
	}
	if len(f.pairs) != NumPairs {
		t.Fatalf("registered %d pairs, want %d", len(f.pairs), NumPairs)
	}
	// Index fg*9+bg maps to components one below the enum ordinals, with
	// ColorNone registering as the terminal default (-1).
	for fg := 0; fg < numColors; fg++ {
		for bg := 0; bg < numColors; bg++ {
			got := f.pairs[fg*numColors+bg]
			if got[0] != fg-1 || got[1] != bg-1 {
				t.Errorf("pair %d = %v, want [%d %d]", fg*numColors+bg, got, fg-1, bg-1)
			}
		}
	}
}

func TestRegisterFailureIsFatal(t *testing.T) {
	f := newFakeBackend(80, 24)
	f.registerErr = errors.New("no colors")
	if _, err := New(f); err == nil {
		t.Fatal("New succeeded with failing pair registration")
	}
	if f.finis != 1 {
		t.Errorf("backend not finalized after failed init, finis = %d", f.finis)
	}
}

func TestResolveInheritsActivePair(t *testing.T) {
	m := newMatrix(newFakeBackend(80, 24))

	m.Activate(ColorRed, ColorBlue)
	fg, bg := m.Resolve(ColorNone, ColorNone)
	if fg != ColorRed || bg != ColorBlue {
		t.Errorf("Resolve(None,None) = (%d,%d), want (red,blue)", fg, bg)
	}

	// Partial transparency substitutes one component only.
	fg, bg = m.Resolve(ColorGreen, ColorNone)
	if fg != ColorGreen || bg != ColorBlue {
		t.Errorf("Resolve(green,None) = (%d,%d), want (green,blue)", fg, bg)
	}
}

func TestActivateDeactivateNesting(t *testing.T) {
	f := newFakeBackend(80, 24)
	m := newMatrix(f)

	outer := m.Activate(ColorWhite, ColorBlack)
	inner := m.Activate(ColorNone, ColorNone)
	if inner != outer {
		t.Errorf("transparent activation = pair %d, want inherited %d", inner, outer)
	}

	nested := m.Activate(ColorRed, ColorNone)
	if wantFg, _ := nested.Split(); wantFg != ColorRed {
		t.Errorf("nested pair fg = %d, want red", wantFg)
	}

	m.Deactivate(ColorRed, ColorNone)
	if m.Active() != inner {
		t.Errorf("after deactivate, active = %d, want %d", m.Active(), inner)
	}
	m.Deactivate(ColorNone, ColorNone)
	m.Deactivate(ColorWhite, ColorBlack)
	if m.Active() != PairOf(ColorNone, ColorNone) {
		t.Errorf("after unwinding, active = %d, want default", m.Active())
	}

	// The backend ends up back on the restored pair.
	if f.current != int(PairOf(ColorNone, ColorNone)) {
		t.Errorf("backend current pair = %d, want default", f.current)
	}
}

func TestDeactivateWithoutChangeKeepsTrackingConsistent(t *testing.T) {
	m := newMatrix(newFakeBackend(80, 24))
	m.Activate(ColorCyan, ColorBlack)
	m.Activate(ColorCyan, ColorBlack) // same pair again
	m.Deactivate(ColorCyan, ColorBlack)
	if m.Active() != PairOf(ColorCyan, ColorBlack) {
		t.Errorf("active = %d, want cyan/black still", m.Active())
	}
	m.Deactivate(ColorCyan, ColorBlack)
	if m.Active() != PairOf(ColorNone, ColorNone) {
		t.Errorf("active = %d, want default after full unwind", m.Active())
	}
}
