// Package topk selects the K highest-valued pixels of a flat frame in
// a single pass, using a bounded min-heap as the working set. Memory
// stays O(K) regardless of the input size.
package topk

import (
	"github.com/pkg/errors"

	"brightpix/frame"
	"brightpix/minheap"
)

// Result pairs a flat position with its value, as drained from the heap.
type Result struct {
	Pos   frame.Pos
	Value frame.Pixel
}

// Select scans pix once and returns a heap holding the min(len(pix), k)
// largest values with their positions. k above minheap.MaxCapacity is
// clamped; k <= 0 surfaces the heap's capacity error.
func Select(pix []frame.Pixel, k int) (*minheap.Heap, error) {
	if k > minheap.MaxCapacity {
		k = minheap.MaxCapacity
	}
	h, err := minheap.New(k)
	if err != nil {
		return nil, errors.WithMessagef(err, "top-%d", k)
	}
	if err := SelectInto(h, pix); err != nil {
		return nil, err
	}
	return h, nil
}

// SelectInto feeds pix through a caller-supplied heap. While the heap
// is under capacity every pixel is kept; once full, a pixel only
// enters by evicting a strictly smaller minimum. The strict > means a
// value tying the current minimum is dropped: among equal values the
// earliest-seen entries win.
//
// The fullness test and comparison run before the push test on every
// iteration, so an eviction frees the slot the same pixel then fills.
// Any heap failure aborts the scan; the heap contents are then
// unspecified and the caller should discard them.
func SelectInto(h *minheap.Heap, pix []frame.Pixel) error {
	for i, v := range pix {
		if h.Full() {
			min, err := h.PeekMin()
			if err != nil {
				return errors.Wrapf(err, "peek at pixel %d", i)
			}
			if v <= min {
				continue
			}
			if _, err := h.PopMin(); err != nil {
				return errors.Wrapf(err, "evict at pixel %d", i)
			}
		}
		if err := h.Push(frame.Pos(i), v); err != nil {
			return errors.Wrapf(err, "push pixel %d", i)
		}
	}
	return nil
}

// Drain empties h, returning results in ascending value order.
func Drain(h *minheap.Heap) []Result {
	out := make([]Result, 0, h.Len())
	for !h.Empty() {
		v, _ := h.PeekMin()
		p, _ := h.PopMin()
		out = append(out, Result{Pos: p, Value: v})
	}
	return out
}

// DrainDesc empties h highest value first, filling a pre-sized buffer
// back to front.
func DrainDesc(h *minheap.Heap) []Result {
	out := make([]Result, h.Len())
	for i := len(out) - 1; i >= 0; i-- {
		v, _ := h.PeekMin()
		p, _ := h.PopMin()
		out[i] = Result{Pos: p, Value: v}
	}
	return out
}
