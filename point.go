package aoc

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

type Pt = Pt2[int]

type Pt2[T constraints.Signed] struct {
	X, Y T
}

func (p Pt2[T]) Add(q Pt2[T]) Pt2[T] {
	return Pt2[T]{p.X + q.X, p.Y + q.Y}
}

func (p Pt2[T]) Sub(q Pt2[T]) Pt2[T] {
	return Pt2[T]{p.X - q.X, p.Y - q.Y}
}

func (p Pt2[T]) Mul(k T) Pt2[T] {
	return Pt2[T]{p.X * k, p.Y * k}
}

func (p Pt2[T]) Neg() Pt2[T] {
	return Pt2[T]{-p.X, -p.Y}
}

func (p Pt2[T]) NormSquared() T {
	return p.X*p.X + p.Y*p.Y
}

// Norm returns the euclidean length of p.
func (p Pt2[T]) Norm() float64 {
	return math.Sqrt(float64(p.NormSquared()))
}

func (p Pt2[T]) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

func (p Pt2[T]) ForImmediateNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	p.ForNeighbors(func(n Pt2[T]) bool {
		if p.X == n.X || p.Y == n.Y {
			return f(n)
		}
		return true
	})
}

// ForNeighbors calls f for the eight points around p in reading order,
// stopping early if f returns false.
func (p Pt2[T]) ForNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	for y := T(-1); y <= 1; y++ {
		for x := T(-1); x <= 1; x++ {
			if x == 0 && y == 0 {
				continue
			}
			if !f(Pt2[T]{p.X + x, p.Y + y}) {
				return
			}
		}
	}
}

// MDist returns the manhattan distance between a and b.
func (a Pt2[T]) MDist(b Pt2[T]) T {
	return AbsDiff(a.X, b.X) + AbsDiff(a.Y, b.Y)
}

// Toward returns a point moving from p to b in max 1 step in the X
// and/or Y direction.
func (p Pt2[T]) Toward(b Pt2[T]) Pt2[T] {
	p1 := p
	if b.X < p.X {
		p1.X--
	} else if b.X > p.X {
		p1.X++
	}
	if b.Y < p.Y {
		p1.Y--
	} else if b.Y > p.Y {
		p1.Y++
	}
	return p1
}

// StandardizePt wraps p onto a torus of the given size.
func StandardizePt(p, size Pt) Pt {
	p.X %= size.X
	p.Y %= size.Y
	if p.X < 0 {
		p.X += size.X
	}
	if p.Y < 0 {
		p.Y += size.Y
	}
	return p
}

type Pt3[T constraints.Signed] struct {
	X, Y, Z T
}

func (p Pt3[T]) Sub(q Pt3[T]) Pt3[T] {
	return Pt3[T]{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

// DistSquared returns the squared euclidean distance between p and q.
func (p Pt3[T]) DistSquared(q Pt3[T]) T {
	d := p.Sub(q)
	return d.X*d.X + d.Y*d.Y + d.Z*d.Z
}

type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists the four directions clockwise from Up.
var Directions = [4]Direction{Up, Right, Down, Left}

// DirectionFromLetter parses one of "U", "R", "D" or "L".
func DirectionFromLetter(s string) Direction {
	switch s {
	case "U":
		return Up
	case "R":
		return Right
	case "D":
		return Down
	case "L":
		return Left
	}
	panic(fmt.Sprintf("unknown direction letter %q", s))
}

func (d Direction) Turn(right bool) Direction {
	if right {
		return (d + 1) % 4
	}
	return (d + 3) % 4
}

// Delta returns the unit step for d, with Y growing downwards.
func (d Direction) Delta() Pt {
	switch d {
	case Up:
		return Pt{0, -1}
	case Right:
		return Pt{1, 0}
	case Down:
		return Pt{0, 1}
	case Left:
		return Pt{-1, 0}
	}
	panic(fmt.Sprintf("aoc: bad direction %d", d))
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "<"
	case Right:
		return ">"
	case Up:
		return "^"
	case Down:
		return "v"
	}
	return ""
}
