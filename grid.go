package aoc

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"tailscale.com/util/deephash"
)

// Grid is a dense 2D field of cells stored row-major. Cells can be read as
// if the grid were bounded or the surface of a torus.
type Grid[T any] struct {
	Width, Height int
	Data          []T
}

// MakeGrid returns a w by h grid with every cell set to fill.
func MakeGrid[T any](w, h int, fill T) Grid[T] {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("aoc: bad grid size %dx%d", w, h))
	}
	g := Grid[T]{Width: w, Height: h, Data: make([]T, w*h)}
	for i := range g.Data {
		g.Data[i] = fill
	}
	return g
}

// GridFromLines builds a grid from equal-length lines, converting each byte
// with conv.
func GridFromLines[T any](lines []string, conv func(byte) T) Grid[T] {
	if len(lines) == 0 || len(lines[0]) == 0 {
		panic("aoc: empty grid")
	}
	g := Grid[T]{Width: len(lines[0]), Height: len(lines)}
	g.Data = make([]T, 0, g.Width*g.Height)
	for y, line := range lines {
		if len(line) != g.Width {
			panic(fmt.Sprintf("aoc: line %d has length %d, want %d", y, len(line), g.Width))
		}
		for i := 0; i < len(line); i++ {
			g.Data = append(g.Data, conv(line[i]))
		}
	}
	return g
}

// ByteGrid returns the lines as a grid of their raw bytes.
func ByteGrid(lines []string) Grid[byte] {
	return GridFromLines(lines, func(b byte) byte { return b })
}

func (g Grid[T]) Size() Pt {
	return Pt{g.Width, g.Height}
}

func (g Grid[T]) In(p Pt) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.Width && p.Y < g.Height
}

// Index returns the position of p in Data.
func (g Grid[T]) Index(p Pt) int {
	if !g.In(p) {
		panic(fmt.Sprintf("aoc: point %v outside %dx%d grid", p, g.Width, g.Height))
	}
	return p.Y*g.Width + p.X
}

// Point is the inverse of Index.
func (g Grid[T]) Point(i int) Pt {
	return Pt{i % g.Width, i / g.Width}
}

func (g Grid[T]) At(p Pt) T {
	return g.Data[g.Index(p)]
}

func (g Grid[T]) Set(p Pt, v T) {
	g.Data[g.Index(p)] = v
}

func (g Grid[T]) AtOk(p Pt) (T, bool) {
	if !g.In(p) {
		var zero T
		return zero, false
	}
	return g.Data[p.Y*g.Width+p.X], true
}

// WrappingAt reads p as if the grid tiled the plane. It returns the value
// and the point it was read from.
func (g Grid[T]) WrappingAt(p Pt) (T, Pt) {
	q := StandardizePt(p, g.Size())
	return g.Data[q.Y*g.Width+q.X], q
}

// Neighbors8 calls f for each of the up to eight neighbours of p that lie
// inside the grid.
func (g Grid[T]) Neighbors8(p Pt, f func(Pt, T) (keepGoing bool)) {
	p.ForNeighbors(func(n Pt) bool {
		v, ok := g.AtOk(n)
		if !ok {
			return true
		}
		return f(n, v)
	})
}

// Neighbors8Torus is Neighbors8 on a torus; it always yields eight cells.
func (g Grid[T]) Neighbors8Torus(p Pt, f func(Pt, T) (keepGoing bool)) {
	p.ForNeighbors(func(n Pt) bool {
		v, q := g.WrappingAt(n)
		return f(q, v)
	})
}

// Neighbors4 is Neighbors8 restricted to orthogonal neighbours.
func (g Grid[T]) Neighbors4(p Pt, f func(Pt, T) (keepGoing bool)) {
	p.ForImmediateNeighbors(func(n Pt) bool {
		v, ok := g.AtOk(n)
		if !ok {
			return true
		}
		return f(n, v)
	})
}

func (g Grid[T]) Clone() Grid[T] {
	g.Data = append([]T(nil), g.Data...)
	return g
}

func (g Grid[T]) Transpose() Grid[T] {
	out := Grid[T]{Width: g.Height, Height: g.Width, Data: make([]T, len(g.Data))}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			out.Data[x*out.Width+y] = g.Data[y*g.Width+x]
		}
	}
	return out
}

func (g Grid[T]) RotateClockwise() Grid[T] {
	out := Grid[T]{Width: g.Height, Height: g.Width, Data: make([]T, len(g.Data))}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			out.Data[x*out.Width+(g.Height-1-y)] = g.Data[y*g.Width+x]
		}
	}
	return out
}

func (g Grid[T]) RotateCounterClockwise() Grid[T] {
	out := Grid[T]{Width: g.Height, Height: g.Width, Data: make([]T, len(g.Data))}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			out.Data[(g.Width-1-x)*out.Width+y] = g.Data[y*g.Width+x]
		}
	}
	return out
}

var (
	hashersMu sync.Mutex
	hashers   = map[reflect.Type]any{} // map[reflect.Type]func(*Grid[T]) deephash.Sum
)

// Hash returns a digest of the grid contents, for spotting repeated states.
func (g Grid[T]) Hash() deephash.Sum {
	rt := reflect.TypeOf(g)
	hashersMu.Lock()
	h, ok := hashers[rt]
	if !ok {
		h = deephash.HasherForType[Grid[T]]()
		hashers[rt] = h
	}
	hashersMu.Unlock()
	return h.(func(*Grid[T]) deephash.Sum)(&g)
}

func (g Grid[T]) String() string {
	var sb strings.Builder
	for i, v := range g.Data {
		switch v := any(v).(type) {
		case byte:
			sb.WriteByte(v)
		case rune:
			sb.WriteRune(v)
		default:
			fmt.Fprint(&sb, v)
		}
		if (i+1)%g.Width == 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Regions labels connected regions of the grid. Orthogonal neighbours a and
// b are joined when same(a, b) is true. The returned set is indexed by
// Index.
func (g Grid[T]) Regions(same func(a, b T) bool) *DisjointSet {
	ds := DisjointSetWithSingles(len(g.Data))
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			i := y*g.Width + x
			if x+1 < g.Width && same(g.Data[i], g.Data[i+1]) {
				ds.Merge(i, i+1)
			}
			if y+1 < g.Height && same(g.Data[i], g.Data[i+g.Width]) {
				ds.Merge(i, i+g.Width)
			}
		}
	}
	return ds
}

// FindInGrid returns the first point holding v in reading order.
func FindInGrid[T comparable](g Grid[T], v T) (Pt, bool) {
	for i, c := range g.Data {
		if c == v {
			return g.Point(i), true
		}
	}
	return Pt{}, false
}

// FloodFill fills all empty cells orthogonally reachable from start with
// fill and returns how many cells it filled.
func FloodFill[T comparable](grid Grid[T], start Pt, empty, fill T) int {
	if v, ok := grid.AtOk(start); !ok || v != empty {
		return 0
	}
	grid.Set(start, fill)
	n := 1
	var s Stack[Pt]
	s.Push(start)
	s.While(func(p Pt) bool {
		grid.Neighbors4(p, func(q Pt, v T) bool {
			if v == empty {
				grid.Set(q, fill)
				n++
				s.Push(q)
			}
			return true
		})
		return true
	})
	return n
}

// Path is a point and a direction.
type Path struct {
	Pt  Pt
	Dir Direction
}

// Move steps p one cell in its direction. It reports false if that leaves
// the grid.
func (g Grid[T]) Move(p Path) (Path, bool) {
	p.Pt = p.Pt.Add(p.Dir.Delta())
	if !g.In(p.Pt) {
		return Path{}, false
	}
	return p, true
}

// EdgePaths returns every path that enters the grid from its border.
func (g Grid[T]) EdgePaths() []Path {
	var paths []Path
	for x := 0; x < g.Width; x++ {
		paths = append(paths,
			Path{Pt: Pt{x, 0}, Dir: Down},
			Path{Pt: Pt{x, g.Height - 1}, Dir: Up},
		)
	}
	for y := 0; y < g.Height; y++ {
		paths = append(paths,
			Path{Pt: Pt{0, y}, Dir: Right},
			Path{Pt: Pt{g.Width - 1, y}, Dir: Left},
		)
	}
	return paths
}

// ToGraph converts the cells reachable from start into a graph with unit
// edge weights. If allowDiagonals is true, then diagonal neighbors are
// included. If disallowed is not nil, it is additionally called on each
// cell, and if it returns true, that cell is not included in the graph.
func (grid Grid[T]) ToGraph(start Pt, allowDiagonals bool, disallowed func(T) bool) Graph[Pt] {
	var g Graph[Pt]
	g.AddNode(start)

	fn := grid.Neighbors4
	if allowDiagonals {
		fn = grid.Neighbors8
	}

	q := NewQueue(start)
	q.While(func(p1 Pt) bool {
		fn(p1, func(p2 Pt, v T) bool {
			if disallowed != nil && disallowed(v) {
				return true
			}
			if _, ok := g.Edges[p1][p2]; ok {
				return true
			}
			if !g.Nodes[p2] {
				q.Push(p2)
			}
			g.AddEdge(p1, p2, 1)
			return true
		})
		return true
	})
	return g
}
