package tui

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// fixedRow builds a horizontal container of width w with n fixed-width
// children and returns them.
func fixedRow(t *testing.T, width, height int, childW []int, pos Pos, align Align) (*Container, []Window) {
	t.Helper()
	session, _ := newTestTUI(t, width, height)
	c, err := session.NewContainer(ContainerConfig{
		Config: Config{Name: "row", Rect: Rect{W: width, H: height}},
		Pos:    pos,
		Align:  align,
	})
	if err != nil {
		t.Fatalf("NewContainer: %v", err)
	}
	for i, w := range childW {
		_, err := c.NewText(TextConfig{
			Config: Config{Name: childName(i), Rect: Rect{W: w, H: height}},
		})
		if err != nil {
			t.Fatalf("child %d: %v", i, err)
		}
	}
	return c, c.Children()
}

func childName(i int) string {
	return string(rune('a' + i))
}

func rects(ws []Window) []Rect {
	out := make([]Rect, len(ws))
	for i, w := range ws {
		out[i] = w.Head().Rect()
	}
	return out
}

func TestLayoutBetween(t *testing.T) {
	// 3 children of width 10 in width 100: two gaps of 35, none at edges.
	_, ws := fixedRow(t, 100, 5, []int{10, 10, 10}, PosStart, AlignBetween)
	want := []Rect{
		{W: 10, H: 5, X: 0, Y: 0},
		{W: 10, H: 5, X: 45, Y: 0},
		{W: 10, H: 5, X: 90, Y: 0},
	}
	if diff := cmp.Diff(want, rects(ws)); diff != "" {
		t.Errorf("between layout mismatch (-want +got):\n%s", diff)
	}
}

func TestLayoutEvenly(t *testing.T) {
	// Free space 70 over 4 gaps: 17 each, remainder 2 to the first two.
	_, ws := fixedRow(t, 100, 5, []int{10, 10, 10}, PosStart, AlignEvenly)
	want := []Rect{
		{W: 10, H: 5, X: 18, Y: 0},
		{W: 10, H: 5, X: 46, Y: 0},
		{W: 10, H: 5, X: 73, Y: 0},
	}
	if diff := cmp.Diff(want, rects(ws)); diff != "" {
		t.Errorf("evenly layout mismatch (-want +got):\n%s", diff)
	}
}

func TestLayoutAround(t *testing.T) {
	// Free 60 over 2 children: units 2n=4, unit 15, edges 15, between 30.
	_, ws := fixedRow(t, 80, 5, []int{10, 10}, PosStart, AlignAround)
	want := []Rect{
		{W: 10, H: 5, X: 15, Y: 0},
		{W: 10, H: 5, X: 55, Y: 0},
	}
	if diff := cmp.Diff(want, rects(ws)); diff != "" {
		t.Errorf("around layout mismatch (-want +got):\n%s", diff)
	}
}

func TestLayoutPosPlacement(t *testing.T) {
	tests := []struct {
		name  string
		pos   Pos
		wantX []int
	}{
		{"start packs left", PosStart, []int{0, 10}},
		{"center splits free space", PosCenter, []int{40, 50}},
		{"end packs right", PosEnd, []int{80, 90}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ws := fixedRow(t, 100, 5, []int{10, 10}, tt.pos, AlignStart)
			for i, w := range ws {
				if got := w.Head().Rect().X; got != tt.wantX[i] {
					t.Errorf("child %d X = %d, want %d", i, got, tt.wantX[i])
				}
			}
		})
	}
}

func TestLayoutAutoChildren(t *testing.T) {
	// One fixed child of 10, two auto children share 90: 45 each.
	_, ws := fixedRow(t, 100, 5, []int{10, 0, 0}, PosStart, AlignStart)
	want := []Rect{
		{W: 10, H: 5, X: 0, Y: 0},
		{W: 45, H: 5, X: 10, Y: 0},
		{W: 45, H: 5, X: 55, Y: 0},
	}
	if diff := cmp.Diff(want, rects(ws)); diff != "" {
		t.Errorf("auto layout mismatch (-want +got):\n%s", diff)
	}
}

func TestLayoutAutoRemainder(t *testing.T) {
	// 100 cells over 3 auto children: 34, 33, 33.
	_, ws := fixedRow(t, 100, 5, []int{0, 0, 0}, PosStart, AlignStart)
	widths := []int{}
	total := 0
	for _, w := range ws {
		widths = append(widths, w.Head().Rect().W)
		total += w.Head().Rect().W
	}
	if diff := cmp.Diff([]int{34, 33, 33}, widths); diff != "" {
		t.Errorf("auto widths mismatch (-want +got):\n%s", diff)
	}
	if total != 100 {
		t.Errorf("auto children cover %d cells, want 100", total)
	}
}

func TestLayoutOverflowKeepsFixedSizes(t *testing.T) {
	// Fixed children exceed the container: they keep their size, the auto
	// child collapses to zero. Overflow stays visible, not clamped.
	_, ws := fixedRow(t, 30, 5, []int{20, 20, 0}, PosStart, AlignStart)
	got := rects(ws)
	if got[0].W != 20 || got[1].W != 20 {
		t.Errorf("fixed children resized on overflow: %v", got)
	}
	if got[2].W != 0 {
		t.Errorf("auto child width = %d, want 0 on overflow", got[2].W)
	}
	if got[1].X != 20 {
		t.Errorf("second child X = %d, want 20 (packed, overflowing)", got[1].X)
	}
}

func TestLayoutVerticalCrossAxis(t *testing.T) {
	session, _ := newTestTUI(t, 80, 24)
	col, err := session.NewContainer(ContainerConfig{
		Config:   Config{Name: "col", Rect: Rect{W: 80, H: 24}},
		Vertical: true,
	})
	if err != nil {
		t.Fatalf("NewContainer: %v", err)
	}
	// Auto cross extent fills the container; a requested one is placed by
	// the child's own Pos.
	if _, err := col.NewText(TextConfig{
		Config: Config{Name: "full", Rect: Rect{H: 2}},
	}); err != nil {
		t.Fatalf("full: %v", err)
	}
	if _, err := col.NewText(TextConfig{
		Config: Config{Name: "centered", Rect: Rect{W: 20, H: 2}},
		Pos:    PosCenter,
	}); err != nil {
		t.Fatalf("centered: %v", err)
	}
	want := []Rect{
		{W: 80, H: 2, X: 0, Y: 0},
		{W: 20, H: 2, X: 30, Y: 2},
	}
	if diff := cmp.Diff(want, rects(col.Children())); diff != "" {
		t.Errorf("vertical layout mismatch (-want +got):\n%s", diff)
	}
}

func TestLayoutBorderInsetsContent(t *testing.T) {
	session, _ := newTestTUI(t, 80, 24)
	box, err := session.NewContainer(ContainerConfig{
		Config: Config{
			Name:   "box",
			Rect:   Rect{W: 20, H: 10},
			Border: &Border{Fg: ColorWhite},
		},
		Vertical: true,
	})
	if err != nil {
		t.Fatalf("NewContainer: %v", err)
	}
	child, err := box.NewText(TextConfig{Config: Config{Name: "c"}})
	if err != nil {
		t.Fatalf("child: %v", err)
	}
	want := Rect{W: 18, H: 8, X: 1, Y: 1}
	if diff := cmp.Diff(want, child.Head().Rect()); diff != "" {
		t.Errorf("bordered child rect mismatch (-want +got):\n%s", diff)
	}
}

func TestLayoutZeroChildrenNoop(t *testing.T) {
	session, f := newTestTUI(t, 80, 24)
	if _, err := session.NewContainer(ContainerConfig{
		Config: Config{Name: "empty", Rect: Rect{W: 10, H: 10}},
	}); err != nil {
		t.Fatalf("NewContainer: %v", err)
	}
	if len(f.created) != 1 {
		t.Errorf("created %d surfaces, want 1", len(f.created))
	}
}

func TestLayoutRerunsOnRemoval(t *testing.T) {
	c, _ := fixedRow(t, 100, 5, []int{0, 0}, PosStart, AlignStart)
	if !c.Remove("a") {
		t.Fatal("Remove returned false for existing child")
	}
	rest := c.Children()
	if len(rest) != 1 {
		t.Fatalf("children left = %d, want 1", len(rest))
	}
	if got := rest[0].Head().Rect().W; got != 100 {
		t.Errorf("surviving auto child width = %d, want 100", got)
	}
}

func TestResolveTopFillsScreen(t *testing.T) {
	session, _ := newTestTUI(t, 120, 40)
	w, err := session.NewContainer(ContainerConfig{
		Config: Config{Name: "root"},
	})
	if err != nil {
		t.Fatalf("NewContainer: %v", err)
	}
	want := Rect{W: 120, H: 40, X: 0, Y: 0}
	if diff := cmp.Diff(want, w.Head().Rect()); diff != "" {
		t.Errorf("full-screen rect mismatch (-want +got):\n%s", diff)
	}
}
