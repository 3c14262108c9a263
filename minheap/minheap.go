// Package minheap implements a fixed-capacity binary min-heap over
// (position, value) pairs, ordered by value. The heap never grows past
// its capacity: for top-K selection the caller evicts the root before
// pushing a larger value.
package minheap

import (
	"errors"

	"brightpix/frame"
)

// MaxCapacity bounds the capacity accepted by New.
const MaxCapacity = 1 << 16

var (
	ErrInvalidCapacity = errors.New("minheap: capacity out of range")
	ErrHeapFull        = errors.New("minheap: heap is full")
	ErrHeapEmpty       = errors.New("minheap: heap is empty")
)

// Heap stores values and positions in two parallel slices instead of
// one slice of pairs, so the sift loops compare against a dense value
// array. Only the prefix [0, size) is occupied.
type Heap struct {
	values    []frame.Pixel
	positions []frame.Pos
	size      int
}

// New allocates a heap with room for capacity elements. The backing
// slices are owned by the heap and never reallocated. Returns
// ErrInvalidCapacity unless 0 < capacity <= MaxCapacity.
func New(capacity int) (*Heap, error) {
	if capacity <= 0 || capacity > MaxCapacity {
		return nil, ErrInvalidCapacity
	}
	return &Heap{
		values:    make([]frame.Pixel, capacity),
		positions: make([]frame.Pos, capacity),
	}, nil
}

func (h *Heap) Len() int    { return h.size }
func (h *Heap) Cap() int    { return len(h.values) }
func (h *Heap) Full() bool  { return h.size == len(h.values) }
func (h *Heap) Empty() bool { return h.size == 0 }

// PeekMin returns the smallest stored value without removing it.
func (h *Heap) PeekMin() (frame.Pixel, error) {
	if h.size == 0 {
		return 0, ErrHeapEmpty
	}
	return h.values[0], nil
}

// Push inserts (pos, v). Occupied parents are shifted down rather than
// swapped until the insertion slot is found. A parent with an equal
// value is displaced too, so order among equal values is unspecified.
// A failed push leaves the heap untouched.
func (h *Heap) Push(pos frame.Pos, v frame.Pixel) error {
	if h.Full() {
		return ErrHeapFull
	}
	i := h.size
	for i > 0 {
		parent := (i - 1) / 2
		if h.values[parent] < v {
			break
		}
		h.values[i] = h.values[parent]
		h.positions[i] = h.positions[parent]
		i = parent
	}
	h.values[i] = v
	h.positions[i] = pos
	h.size++
	return nil
}

// PopMin removes the root and returns its position. The last element
// is sifted down from the root: the smaller child moves up while it is
// strictly smaller than the sifted value. A failed pop leaves the heap
// untouched.
func (h *Heap) PopMin() (frame.Pos, error) {
	if h.size == 0 {
		return 0, ErrHeapEmpty
	}
	top := h.positions[0]
	h.size--
	if h.size == 0 {
		return top, nil
	}

	v := h.values[h.size]
	pos := h.positions[h.size]
	i := 0
	for {
		c := h.minChild(i)
		if c < 0 || h.values[c] >= v {
			break
		}
		h.values[i] = h.values[c]
		h.positions[i] = h.positions[c]
		i = c
	}
	h.values[i] = v
	h.positions[i] = pos
	return top, nil
}

// minChild returns the index of the smaller child of i, or -1 when i
// is a leaf. Children of i sit at 2i+1 and 2i+2.
func (h *Heap) minChild(i int) int {
	left := 2*i + 1
	if left >= h.size {
		return -1
	}
	if right := left + 1; right < h.size && h.values[right] < h.values[left] {
		return right
	}
	return left
}
