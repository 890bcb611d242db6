// Command y2025 solves Advent of Code 2025.
package main

import (
	"cmp"
	_ "embed"
	"log"
	"slices"

	"github.com/aoc-archive/aoc"
)

func main() {
	aoc.Run(2025, source, &solver{})
}

//go:embed main.go
var source []byte

type solver struct {
	*aoc.Puzzle
}

type box = aoc.Pt3[int]

func (s solver) boxes() []box {
	var boxes []box
	s.ForLines(func(line string) {
		v := aoc.SplitInts(line, ",")
		if len(v) != 3 {
			log.Fatalf("bad junction box %q", line)
		}
		boxes = append(boxes, box{X: v[0], Y: v[1], Z: v[2]})
	})
	return boxes
}

type boxPair struct {
	a, b int // indexes into boxes
	d    int // squared distance
}

// closestPairs returns every pair of boxes, nearest first.
func closestPairs(boxes []box) []boxPair {
	pairs := make([]boxPair, 0, len(boxes)*(len(boxes)-1)/2)
	for i := range boxes {
		for j := i + 1; j < len(boxes); j++ {
			pairs = append(pairs, boxPair{i, j, boxes[i].DistSquared(boxes[j])})
		}
	}
	slices.SortFunc(pairs, func(x, y boxPair) int {
		if c := cmp.Compare(x.d, y.d); c != 0 {
			return c
		}
		if c := cmp.Compare(x.a, y.a); c != 0 {
			return c
		}
		return cmp.Compare(x.b, y.b)
	})
	return pairs
}

/*
want=40

162,817,812
57,618,57
906,360,560
592,479,940
352,342,300
466,668,158
542,29,236
431,825,988
739,650,466
52,470,668
216,146,977
819,987,18
117,168,530
805,96,715
346,949,466
970,615,88
941,993,340
862,61,35
984,92,344
425,690,689
*/
func (s solver) D8p1() any {
	n := 1000
	if s.SampleMode {
		n = 10
	}
	sizes := circuitSizes(s.boxes(), n)
	s.Debugf("circuit sizes after %d connections: %v", n, sizes)
	return aoc.Product(sizes[:min(3, len(sizes))]...)
}

// want=25272
func (s solver) D8p2() any {
	return lastConnection(s.boxes())
}

// circuitSizes connects the n closest pairs and returns the size of every
// circuit, largest first.
func circuitSizes(boxes []box, n int) []int {
	pairs := closestPairs(boxes)
	ds := aoc.DisjointSetWithSingles(len(boxes))
	for _, p := range pairs[:min(n, len(pairs))] {
		ds.Merge(p.a, p.b)
	}
	sizes := ds.AllSizes()
	slices.Sort(sizes)
	slices.Reverse(sizes)
	return sizes
}

// lastConnection connects pairs until every box is in one circuit and
// multiplies the X coordinates of the final pair.
func lastConnection(boxes []box) int {
	ds := aoc.DisjointSetWithSingles(len(boxes))
	for _, p := range closestPairs(boxes) {
		ds.Merge(p.a, p.b)
		if ds.SizeOf(0) == len(boxes) {
			return boxes[p.a].X * boxes[p.b].X
		}
	}
	log.Fatal("boxes never fully connected")
	return 0
}
