package aoc

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMakeGrid(t *testing.T) {
	g := MakeGrid(10, 20, 7)
	if got := g.Size(); got != (Pt{10, 20}) {
		t.Errorf("Size() = %v, want (10,20)", got)
	}
	if got := g.At(Pt{9, 19}); got != 7 {
		t.Errorf("At(9,19) = %d, want 7", got)
	}
	mustPanic(t, "MakeGrid(0, 1)", func() { MakeGrid(0, 1, 0) })
	mustPanic(t, "At outside", func() { g.At(Pt{10, 0}) })
	mustPanic(t, "Set outside", func() { g.Set(Pt{0, -1}, 1) })
}

func TestGridFromLines(t *testing.T) {
	lines := []string{"#..", "..#"}
	g := ByteGrid(lines)
	if g.Width != 3 || g.Height != 2 {
		t.Fatalf("size = %dx%d, want 3x2", g.Width, g.Height)
	}
	if got := g.At(Pt{2, 1}); got != '#' {
		t.Errorf("At(2,1) = %q, want '#'", got)
	}
	if got, want := g.String(), strings.Join(lines, "\n")+"\n"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	digits := GridFromLines([]string{"12", "34"}, Digit[byte])
	if diff := cmp.Diff([]int{1, 2, 3, 4}, digits.Data); diff != "" {
		t.Errorf("digit grid mismatch (-want +got):\n%s", diff)
	}

	mustPanic(t, "ragged lines", func() { ByteGrid([]string{"ab", "c"}) })
	mustPanic(t, "no lines", func() { ByteGrid(nil) })
}

func TestGridAtOk(t *testing.T) {
	g := MakeGrid(3, 3, 1)
	for _, tt := range []struct {
		p    Pt
		want bool
	}{
		{Pt{0, 0}, true},
		{Pt{2, 2}, true},
		{Pt{3, 0}, false},
		{Pt{0, -1}, false},
	} {
		if _, ok := g.AtOk(tt.p); ok != tt.want {
			t.Errorf("AtOk(%v) ok = %v, want %v", tt.p, ok, tt.want)
		}
	}
}

func TestGridWrapping(t *testing.T) {
	g := MakeGrid(10, 10, 0)
	for _, tt := range []struct {
		in, want Pt
	}{
		{Pt{11, 12}, Pt{1, 2}},
		{Pt{101, 12}, Pt{1, 2}},
		{Pt{-2, -3}, Pt{8, 7}},
		{Pt{-12, -103}, Pt{8, 7}},
	} {
		if _, got := g.WrappingAt(tt.in); got != tt.want {
			t.Errorf("WrappingAt(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}

	seen := map[Pt]bool{}
	g.Neighbors8Torus(Pt{9, 5}, func(p Pt, _ int) bool {
		seen[p] = true
		return true
	})
	if len(seen) != 8 {
		t.Errorf("Neighbors8Torus(9,5) yielded %d points, want 8", len(seen))
	}
	for _, p := range []Pt{{8, 5}, {0, 5}, {0, 6}, {0, 4}} {
		if !seen[p] {
			t.Errorf("Neighbors8Torus(9,5) missing %v", p)
		}
	}
}

func TestGridNeighbors(t *testing.T) {
	g := MakeGrid(3, 3, 0)
	count := func(each func(Pt, func(Pt, int) bool), p Pt) int {
		n := 0
		each(p, func(Pt, int) bool { n++; return true })
		return n
	}
	for _, tt := range []struct {
		p      Pt
		n8, n4 int
	}{
		{Pt{0, 0}, 3, 2},
		{Pt{1, 0}, 5, 3},
		{Pt{1, 1}, 8, 4},
	} {
		if got := count(g.Neighbors8, tt.p); got != tt.n8 {
			t.Errorf("Neighbors8(%v) = %d cells, want %d", tt.p, got, tt.n8)
		}
		if got := count(g.Neighbors4, tt.p); got != tt.n4 {
			t.Errorf("Neighbors4(%v) = %d cells, want %d", tt.p, got, tt.n4)
		}
	}
}

// numbered returns a w by h grid holding 1, 2, 3... in reading order.
func numbered(w, h int) Grid[int] {
	g := MakeGrid(w, h, 0)
	for i := range g.Data {
		g.Data[i] = i + 1
	}
	return g
}

func TestGridRotate(t *testing.T) {
	g := numbered(12, 32)

	// Rotate cell by cell for comparison.
	naive := MakeGrid(g.Height, g.Width, 0)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			naive.Set(Pt{g.Height - y - 1, x}, g.At(Pt{x, y}))
		}
	}
	cw := g.RotateClockwise()
	if diff := cmp.Diff(naive, cw); diff != "" {
		t.Errorf("RotateClockwise mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(g, cw.RotateCounterClockwise()); diff != "" {
		t.Errorf("RotateCounterClockwise did not undo RotateClockwise (-want +got):\n%s", diff)
	}
	full := g
	for i := 0; i < 4; i++ {
		full = full.RotateClockwise()
	}
	if diff := cmp.Diff(g, full); diff != "" {
		t.Errorf("four clockwise rotations changed the grid (-want +got):\n%s", diff)
	}

	small := ByteGrid([]string{"ab", "cd", "ef"})
	for _, tt := range []struct {
		name string
		got  Grid[byte]
		want string
	}{
		{"RotateClockwise", small.RotateClockwise(), "eca\nfdb\n"},
		{"RotateCounterClockwise", small.RotateCounterClockwise(), "bdf\nace\n"},
		{"Transpose", small.Transpose(), "ace\nbdf\n"},
	} {
		if s := tt.got.String(); s != tt.want {
			t.Errorf("%s = %q, want %q", tt.name, s, tt.want)
		}
	}
}

func TestGridHash(t *testing.T) {
	g := numbered(4, 4)
	c := g.Clone()
	if g.Hash() != c.Hash() {
		t.Errorf("Hash of clone differs")
	}
	c.Set(Pt{1, 1}, 99)
	if g.Hash() == c.Hash() {
		t.Errorf("Hash unchanged after Set")
	}
	if g.At(Pt{1, 1}) == 99 {
		t.Errorf("Clone shares data with original")
	}
}

func TestGridRegions(t *testing.T) {
	g := ByteGrid([]string{
		"AAB",
		"ABB",
		"CCB",
	})
	ds := g.Regions(func(a, b byte) bool { return a == b })
	if got := ds.Count(); got != 3 {
		t.Errorf("Count() = %d, want 3", got)
	}
	if diff := cmp.Diff([]int{2, 3, 4}, ds.AllSizes(), sortInts); diff != "" {
		t.Errorf("AllSizes() mismatch (-want +got):\n%s", diff)
	}
	for _, tt := range []struct {
		a, b Pt
		want bool
	}{
		{Pt{0, 0}, Pt{0, 1}, true},
		{Pt{1, 1}, Pt{2, 2}, true},
		{Pt{0, 1}, Pt{1, 1}, false},
		{Pt{0, 2}, Pt{1, 2}, true},
	} {
		if got := ds.Same(g.Index(tt.a), g.Index(tt.b)); got != tt.want {
			t.Errorf("Same(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
	if got := ds.SizeOf(g.Index(Pt{2, 0})); got != 4 {
		t.Errorf("SizeOf(B region) = %d, want 4", got)
	}
}

func TestFloodFill(t *testing.T) {
	g := ByteGrid([]string{
		"...",
		"#.#",
		"..#",
	})
	if got := FloodFill(g, Pt{0, 0}, '.', 'o'); got != 6 {
		t.Errorf("FloodFill = %d, want 6", got)
	}
	if got, want := g.String(), "ooo\n#o#\noo#\n"; got != want {
		t.Errorf("after FloodFill grid = %q, want %q", got, want)
	}
	if got := FloodFill(g, Pt{0, 1}, '.', 'o'); got != 0 {
		t.Errorf("FloodFill from wall = %d, want 0", got)
	}
	if p, ok := FindInGrid(g, '#'); !ok || p != (Pt{0, 1}) {
		t.Errorf("FindInGrid('#') = %v, %v; want (0,1), true", p, ok)
	}
	if _, ok := FindInGrid(g, 'x'); ok {
		t.Errorf("FindInGrid('x') found a cell")
	}
}

func TestGridMove(t *testing.T) {
	g := MakeGrid(3, 2, 0)
	if got := len(g.EdgePaths()); got != 2*(3+2) {
		t.Errorf("len(EdgePaths()) = %d, want %d", got, 2*(3+2))
	}
	p, ok := g.Move(Path{Pt{0, 0}, Right})
	if !ok || p.Pt != (Pt{1, 0}) {
		t.Errorf("Move right from (0,0) = %v, %v; want (1,0), true", p.Pt, ok)
	}
	if _, ok := g.Move(Path{Pt{0, 0}, Up}); ok {
		t.Errorf("Move up from (0,0) stayed in grid")
	}
}

func TestGridToGraph(t *testing.T) {
	g := ByteGrid([]string{
		"...",
		".#.",
		"...",
	})
	gr := g.ToGraph(Pt{0, 0}, false, func(b byte) bool { return b == '#' })
	if got := len(gr.Nodes); got != 8 {
		t.Errorf("ToGraph nodes = %d, want 8", got)
	}
	if gr.Nodes[Pt{1, 1}] {
		t.Errorf("ToGraph included the wall")
	}
	if got := gr.Distances(Pt{0, 0})[Pt{2, 2}]; got != 4 {
		t.Errorf("distance (0,0)->(2,2) = %d, want 4", got)
	}

	diag := g.ToGraph(Pt{0, 0}, true, func(b byte) bool { return b == '#' })
	if got := diag.Distances(Pt{0, 0})[Pt{2, 2}]; got != 3 {
		t.Errorf("diagonal distance (0,0)->(2,2) = %d, want 3", got)
	}
}
