package aoc

import (
	"cmp"
	"slices"

	"golang.org/x/exp/maps"
)

// Graph is an undirected graph with integer edge weights.
type Graph[K comparable] struct {
	Nodes map[K]bool
	Edges map[K]map[K]int
}

// WeightedEdge is an edge between A and B with weight W.
type WeightedEdge[K comparable] struct {
	A, B K
	W    int
}

func InitMap[K comparable, V any](m *map[K]V) {
	if *m == nil {
		*m = make(map[K]V)
	}
}

func (g *Graph[K]) Clone() *Graph[K] {
	var out Graph[K]
	out.Nodes = maps.Clone(g.Nodes)
	out.Edges = make(map[K]map[K]int, len(g.Edges))
	for k, e := range g.Edges {
		out.Edges[k] = maps.Clone(e)
	}
	return &out
}

func (g *Graph[K]) AddNode(a K) {
	InitMap(&g.Nodes)
	g.Nodes[a] = true
}

func (g *Graph[K]) RemoveNode(a K) {
	for e := range g.Edges[a] {
		delete(g.Edges[e], a)
	}
	delete(g.Edges, a)
	delete(g.Nodes, a)
}

func (g *Graph[K]) AddEdge(a, b K, w int) {
	InitMap(&g.Edges)
	if g.Edges[a] == nil {
		g.Edges[a] = make(map[K]int)
	}
	if g.Edges[b] == nil {
		g.Edges[b] = make(map[K]int)
	}
	g.Edges[a][b] = w
	g.Edges[b][a] = w
	g.AddNode(a)
	g.AddNode(b)
}

func (g *Graph[K]) RemoveEdge(a, b K) {
	delete(g.Edges[a], b)
	delete(g.Edges[b], a)
}

func (g *Graph[K]) ReachableNodes(a K) map[K]bool {
	visited := make(map[K]bool)
	q := NewQueue(a)
	q.While(func(v K) bool {
		if visited[v] {
			return true
		}
		visited[v] = true
		for k := range g.Edges[v] {
			q.Push(k)
		}
		return true
	})
	return visited
}

// indexNodes returns the nodes sorted by order and the position of each.
func (g *Graph[K]) indexNodes(order func(a, b K) int) ([]K, map[K]int) {
	keys := maps.Keys(g.Nodes)
	slices.SortFunc(keys, order)
	ix := make(map[K]int, len(keys))
	for i, k := range keys {
		ix[k] = i
	}
	return keys, ix
}

// Components returns the connected components of g. Nodes within a
// component are ordered by order, and components by their first node.
func (g *Graph[K]) Components(order func(a, b K) int) [][]K {
	keys, ix := g.indexNodes(order)
	ds := DisjointSetWithSingles(len(keys))
	for a, e := range g.Edges {
		for b := range e {
			ds.Merge(ix[a], ix[b])
		}
	}
	var out [][]K
	for _, set := range ds.Sets() {
		c := make([]K, len(set))
		for i, n := range set {
			c[i] = keys[n]
		}
		out = append(out, c)
	}
	return out
}

// SpanningForest returns a minimum spanning forest of g using Kruskal's
// algorithm. Edges of equal weight are taken in order of their endpoints,
// so the result is deterministic.
func (g *Graph[K]) SpanningForest(order func(a, b K) int) []WeightedEdge[K] {
	keys, ix := g.indexNodes(order)
	type edge struct{ a, b, w int }
	var edges []edge
	for a, e := range g.Edges {
		for b, w := range e {
			if ia, ib := ix[a], ix[b]; ia < ib {
				edges = append(edges, edge{ia, ib, w})
			}
		}
	}
	slices.SortFunc(edges, func(x, y edge) int {
		if c := cmp.Compare(x.w, y.w); c != 0 {
			return c
		}
		if c := cmp.Compare(x.a, y.a); c != 0 {
			return c
		}
		return cmp.Compare(x.b, y.b)
	})

	ds := DisjointSetWithSingles(len(keys))
	var out []WeightedEdge[K]
	for _, e := range edges {
		if ds.Same(e.a, e.b) {
			continue
		}
		ds.Merge(e.a, e.b)
		out = append(out, WeightedEdge[K]{keys[e.a], keys[e.b], e.w})
		if ds.Count() == 1 {
			break
		}
	}
	return out
}

// Distances returns the shortest distance from start to every node
// reachable from it. Weights must be non-negative.
func (g *Graph[K]) Distances(start K) map[K]int {
	dist := map[K]int{}
	pq := MinQueue[K]()
	pq.Push(&PQI[K]{V: start, P: 0})
	for pq.Len() > 0 {
		it := pq.Pop()
		if _, done := dist[it.V]; done {
			continue
		}
		dist[it.V] = it.P
		for k, w := range g.Edges[it.V] {
			if _, done := dist[k]; !done {
				pq.Push(&PQI[K]{V: k, P: it.P + w})
			}
		}
	}
	return dist
}
