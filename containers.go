package aoc

import (
	"container/heap"
	"fmt"
)

// Stack is a LIFO stack. The zero value is empty and ready to use.
type Stack[T any] struct {
	items []T
}

func (s *Stack[T]) Len() int { return len(s.items) }

func (s *Stack[T]) Push(v T) { s.items = append(s.items, v) }

// Peek returns the top of the stack without removing it.
func (s *Stack[T]) Peek() (top T, ok bool) {
	if n := len(s.items); n > 0 {
		top, ok = s.items[n-1], true
	}
	return top, ok
}

func (s *Stack[T]) Pop() (top T, ok bool) {
	top, ok = s.Peek()
	if ok {
		s.items = s.items[:len(s.items)-1]
	}
	return top, ok
}

// While pops until the stack is empty or f returns false. f may push.
func (s *Stack[T]) While(f func(T) bool) {
	for v, ok := s.Pop(); ok && f(v); v, ok = s.Pop() {
	}
}

// Queue is a FIFO queue. The zero value is empty and ready to use.
type Queue[T any] struct {
	items []T
	head  int // items[:head] have been popped
}

// NewQueue returns a queue holding in, with in[0] at the front.
func NewQueue[T any](in ...T) Queue[T] {
	return Queue[T]{items: in}
}

func (q *Queue[T]) Len() int { return len(q.items) - q.head }

func (q *Queue[T]) Push(v T) {
	// Reclaim the popped prefix once it is at least half the backing array.
	if q.head > 0 && q.head*2 >= cap(q.items) {
		n := copy(q.items, q.items[q.head:])
		clear(q.items[n:])
		q.items = q.items[:n]
		q.head = 0
	}
	q.items = append(q.items, v)
}

func (q *Queue[T]) Pop() (front T, ok bool) {
	if q.Len() == 0 {
		return front, false
	}
	front = q.items[q.head]
	var zero T
	q.items[q.head] = zero
	q.head++
	if q.head == len(q.items) {
		q.items, q.head = q.items[:0], 0
	}
	return front, true
}

// While pops in FIFO order until the queue is empty or f returns false. f
// may push.
func (q *Queue[T]) While(f func(T) bool) {
	for v, ok := q.Pop(); ok && f(v); v, ok = q.Pop() {
	}
}

// PQI is an item in a PQ. P is its priority. Changing P of a queued item
// requires a call to PQ.Update.
type PQI[T any] struct {
	V  T
	P  int
	ix int
}

func (it *PQI[T]) String() string { return fmt.Sprintf("%v:%v", it.V, it.P) }

// Index reports the item's position in its queue, or -1 once popped.
func (it *PQI[T]) Index() int { return it.ix }

// PQ is a priority queue of *PQI. The zero PQ pops the highest priority
// first.
type PQ[T any] struct {
	h itemHeap[T]
}

// MinQueue returns a PQ that pops the lowest priority first.
func MinQueue[T any]() *PQ[T] {
	return &PQ[T]{h: itemHeap[T]{lowFirst: true}}
}

// MaxQueue returns a PQ that pops the highest priority first.
func MaxQueue[T any]() *PQ[T] {
	return new(PQ[T])
}

func (q *PQ[T]) Len() int { return len(q.h.items) }

func (q *PQ[T]) Push(it *PQI[T]) { heap.Push(&q.h, it) }

// Pop removes and returns the next item. It panics if q is empty.
func (q *PQ[T]) Pop() *PQI[T] {
	if q.Len() == 0 {
		panic("aoc: Pop of empty PQ")
	}
	return heap.Pop(&q.h).(*PQI[T])
}

// Peek returns the next item without removing it. It panics if q is empty.
func (q *PQ[T]) Peek() *PQI[T] {
	if q.Len() == 0 {
		panic("aoc: Peek of empty PQ")
	}
	return q.h.items[0]
}

// Update restores the queue order after it.P changed.
func (q *PQ[T]) Update(it *PQI[T]) {
	if it.ix < 0 || it.ix >= q.Len() || q.h.items[it.ix] != it {
		panic(fmt.Sprintf("aoc: Update of item %v not in queue", it))
	}
	heap.Fix(&q.h, it.ix)
}

// itemHeap implements heap.Interface, keeping each item's ix current.
type itemHeap[T any] struct {
	items    []*PQI[T]
	lowFirst bool
}

func (h *itemHeap[T]) Len() int { return len(h.items) }

func (h *itemHeap[T]) Less(i, j int) bool {
	a, b := h.items[i].P, h.items[j].P
	if h.lowFirst {
		return a < b
	}
	return a > b
}

func (h *itemHeap[T]) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.items[i].ix, h.items[j].ix = i, j
}

func (h *itemHeap[T]) Push(x any) {
	it := x.(*PQI[T])
	it.ix = len(h.items)
	h.items = append(h.items, it)
}

func (h *itemHeap[T]) Pop() any {
	last := len(h.items) - 1
	it := h.items[last]
	h.items[last] = nil
	h.items = h.items[:last]
	it.ix = -1
	return it
}
