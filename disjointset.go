package aoc

import (
	"fmt"
	"sync"

	"golang.org/x/exp/maps"
)

// DisjointSet is a collection of elements where each element belongs to
// exactly one unnamed set. Elements are the indices 0..Len()-1. New elements
// are added as singleton sets, and two sets are merged by naming any member
// of each.
//
// Each set is a tree stored in a flat slice: every element points at its
// parent and the root points at itself. Merges use union by rank and finds
// compress paths. The size of each set is tracked at its root.
//
// The zero value is an empty collection ready to use. A DisjointSet is not
// safe for concurrent use; see SyncDisjointSet.
type DisjointSet struct {
	parents []int
	ranks   []int // only meaningful at roots
	sizes   []int // only meaningful at roots
	count   int   // number of distinct sets
}

// NewDisjointSet returns an empty collection.
func NewDisjointSet() *DisjointSet {
	return &DisjointSet{}
}

// DisjointSetWithSingles returns a collection of n singleton sets holding the
// elements 0..n-1.
func DisjointSetWithSingles(n int) *DisjointSet {
	if n < 0 {
		panic(fmt.Sprintf("aoc: negative disjoint set size %d", n))
	}
	d := &DisjointSet{
		parents: make([]int, n),
		ranks:   make([]int, n),
		sizes:   make([]int, n),
		count:   n,
	}
	for i := range d.parents {
		d.parents[i] = i
		d.sizes[i] = 1
	}
	return d
}

// InsertSingle adds a new singleton set and returns its element. Elements
// are never reused.
func (d *DisjointSet) InsertSingle() int {
	i := len(d.parents)
	d.parents = append(d.parents, i)
	d.ranks = append(d.ranks, 0)
	d.sizes = append(d.sizes, 1)
	d.count++
	return i
}

// Len returns the number of elements ever inserted.
func (d *DisjointSet) Len() int {
	return len(d.parents)
}

// Count returns the number of distinct sets.
func (d *DisjointSet) Count() int {
	return d.count
}

// Merge unifies the sets containing a and b. It is a no-op if they are
// already in the same set.
func (d *DisjointSet) Merge(a, b int) {
	ra := d.Find(a)
	rb := d.Find(b)
	if ra == rb {
		return
	}
	d.count--
	if d.ranks[ra] < d.ranks[rb] {
		d.parents[ra] = rb
		d.ranks[rb]++
		d.sizes[rb] += d.sizes[ra]
		return
	}
	// Ties go to a's side.
	d.parents[rb] = ra
	if d.ranks[ra] == d.ranks[rb] {
		d.ranks[ra]++
	}
	d.sizes[ra] += d.sizes[rb]
}

// Find returns the root of the set containing i, pointing every element on
// the way directly at the root.
func (d *DisjointSet) Find(i int) int {
	root := d.root(i)
	for i != root {
		i, d.parents[i] = d.parents[i], root
	}
	return root
}

// root is Find without path compression. It never mutates d, so it is safe
// under a read lock.
func (d *DisjointSet) root(i int) int {
	d.check(i)
	for {
		p := d.parents[i]
		if p == i {
			return i
		}
		i = p
	}
}

func (d *DisjointSet) check(i int) {
	if i < 0 || i >= len(d.parents) {
		panic(fmt.Sprintf("aoc: disjoint set index %d out of range [0,%d)", i, len(d.parents)))
	}
}

// Same reports whether a and b are in the same set.
func (d *DisjointSet) Same(a, b int) bool {
	return d.root(a) == d.root(b)
}

// SizeOf returns the number of elements in the set containing i.
func (d *DisjointSet) SizeOf(i int) int {
	return d.sizes[d.root(i)]
}

// AllSizes returns the size of every distinct set, one entry per set. The
// order is unspecified.
func (d *DisjointSet) AllSizes() []int {
	sizes := make(map[int]int, d.count)
	for i := range d.parents {
		r := d.root(i)
		sizes[r] = d.sizes[r]
	}
	return maps.Values(sizes)
}

// Sets returns the members of every set. Members are sorted, and sets are
// ordered by their smallest member.
func (d *DisjointSet) Sets() [][]int {
	byRoot := make(map[int]int, d.count) // root -> index in out
	out := make([][]int, 0, d.count)
	for i := range d.parents {
		r := d.root(i)
		ix, ok := byRoot[r]
		if !ok {
			ix = len(out)
			byRoot[r] = ix
			out = append(out, make([]int, 0, d.sizes[r]))
		}
		out[ix] = append(out[ix], i)
	}
	return out
}

// SyncDisjointSet is a DisjointSet guarded by a RWMutex. Mutations take the
// write lock. Queries take the read lock and never compress paths.
type SyncDisjointSet struct {
	mu sync.RWMutex
	ds DisjointSet
}

// NewSyncDisjointSet returns a SyncDisjointSet of n singleton sets.
func NewSyncDisjointSet(n int) *SyncDisjointSet {
	return &SyncDisjointSet{ds: *DisjointSetWithSingles(n)}
}

func (s *SyncDisjointSet) InsertSingle() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ds.InsertSingle()
}

func (s *SyncDisjointSet) Merge(a, b int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ds.Merge(a, b)
}

func (s *SyncDisjointSet) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ds.Len()
}

func (s *SyncDisjointSet) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ds.Count()
}

func (s *SyncDisjointSet) Same(a, b int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ds.Same(a, b)
}

func (s *SyncDisjointSet) SizeOf(i int) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ds.SizeOf(i)
}

func (s *SyncDisjointSet) AllSizes() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ds.AllSizes()
}
