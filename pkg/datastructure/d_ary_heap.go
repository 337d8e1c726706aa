package datastructure

import (
	"errors"
)

var (
	ErrEmptyHeap       = errors.New("heap is empty")
	ErrInvalidDecrease = errors.New("item not in heap or rank not lower")
)

// PriorityQueueNode is a heap entry. pos is its slot in the heap, -1 once extracted.
type PriorityQueueNode[T comparable] struct {
	rank float64
	item T
	pos  int
}

func NewPriorityQueueNode[T comparable](rank float64, item T) *PriorityQueueNode[T] {
	return &PriorityQueueNode[T]{rank: rank, item: item, pos: -1}
}

func (p *PriorityQueueNode[T]) GetItem() T {
	return p.item
}

func (p *PriorityQueueNode[T]) GetRank() float64 {
	return p.rank
}

// InHeap reports whether the node was inserted and not extracted yet.
func (p *PriorityQueueNode[T]) InHeap() bool {
	return p.pos >= 0
}

// MinHeap is a d-ary min heap with decrease-key, the A* frontier.
type MinHeap[T comparable] struct {
	nodes []*PriorityQueueNode[T]
	d     int
}

func NewFourAryHeap[T comparable]() *MinHeap[T] {
	return NewdAryHeap[T](4)
}

func NewdAryHeap[T comparable](d int) *MinHeap[T] {
	if d < 2 {
		d = 2
	}
	return &MinHeap[T]{
		nodes: make([]*PriorityQueueNode[T], 0, 64),
		d:     d,
	}
}

func (h *MinHeap[T]) IsEmpty() bool {
	return len(h.nodes) == 0
}

func (h *MinHeap[T]) Size() int {
	return len(h.nodes)
}

func (h *MinHeap[T]) parent(i int) int {
	return (i - 1) / h.d
}

func (h *MinHeap[T]) swap(i, j int) {
	h.nodes[i], h.nodes[j] = h.nodes[j], h.nodes[i]
	h.nodes[i].pos = i
	h.nodes[j].pos = j
}

func (h *MinHeap[T]) siftUp(i int) {
	for i != 0 && h.nodes[i].rank < h.nodes[h.parent(i)].rank {
		h.swap(i, h.parent(i))
		i = h.parent(i)
	}
}

// siftDown swaps i with its smallest child until no child is smaller. O(d log_d N).
func (h *MinHeap[T]) siftDown(i int) {
	for {
		first := i*h.d + 1
		if first >= len(h.nodes) {
			return
		}
		last := min(first+h.d, len(h.nodes))

		smallest := first
		for c := first + 1; c < last; c++ {
			if h.nodes[c].rank < h.nodes[smallest].rank {
				smallest = c
			}
		}
		if h.nodes[smallest].rank >= h.nodes[i].rank {
			return
		}
		h.swap(i, smallest)
		i = smallest
	}
}

func (h *MinHeap[T]) Insert(n *PriorityQueueNode[T]) {
	h.nodes = append(h.nodes, n)
	n.pos = len(h.nodes) - 1
	h.siftUp(n.pos)
}

func (h *MinHeap[T]) ExtractMin() (*PriorityQueueNode[T], error) {
	if h.IsEmpty() {
		return nil, ErrEmptyHeap
	}
	root := h.nodes[0]
	last := len(h.nodes) - 1
	h.swap(0, last)
	h.nodes = h.nodes[:last]
	root.pos = -1
	if len(h.nodes) > 0 {
		h.siftDown(0)
	}
	return root, nil
}

// DecreaseKey lowers the rank of a node still in the heap.
func (h *MinHeap[T]) DecreaseKey(n *PriorityQueueNode[T], rank float64) error {
	if n.pos < 0 || n.pos >= len(h.nodes) || h.nodes[n.pos] != n || n.rank < rank {
		return ErrInvalidDecrease
	}
	n.rank = rank
	h.siftUp(n.pos)
	return nil
}
