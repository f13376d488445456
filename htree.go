package htree

import (
	"fmt"
	"iter"
)

// Float constrains the coordinate type of an H-tree. The choice between
// float32 and float64 is bound at the type level; it carries no runtime
// representation.
type Float interface {
	~float32 | ~float64
}

// MaxOrder is the largest supported recursion order. Decoding walks a
// 64-bit position counter whose bit length encodes the recursion level;
// above order 62 the per-level cell count 2^(order+1) no longer fits in
// a uint64 and the grid arithmetic would silently wrap.
const MaxOrder = 62

// HTree describes an H-tree fractal up to a fixed maximum recursion
// order. It is an immutable value type: copy it freely, share it across
// goroutines, and derive as many independent segment sequences from it
// as needed.
type HTree[T Float] struct {
	order int
}

// New returns an H-tree of the given order. Order 0 is the single root
// bar; each further order doubles the number of new segments.
//
// New fails with [ErrNegativeOrder] for negative orders and with
// [ErrOrderTooLarge] for orders above [MaxOrder].
func New[T Float](order int) (HTree[T], error) {
	if order < 0 {
		return HTree[T]{}, fmt.Errorf("%w: %d", ErrNegativeOrder, order)
	}
	if order > MaxOrder {
		return HTree[T]{}, fmt.Errorf("%w: %d > %d", ErrOrderTooLarge, order, MaxOrder)
	}
	return HTree[T]{order: order}, nil
}

// Order returns the maximum recursion order of the tree.
func (h HTree[T]) Order() int {
	return h.order
}

// SegmentCount returns the total number of segments the tree produces:
// 2^(order+1) - 1.
func (h HTree[T]) SegmentCount() uint64 {
	return 1<<(uint(h.order)+1) - 1
}

// Segments returns the tree's segments as a lazy, finite sequence in
// ascending position order. The sequence is restartable: every call
// yields a fresh, independent pass over identical output.
func (h HTree[T]) Segments() iter.Seq[Segment[T]] {
	return func(yield func(Segment[T]) bool) {
		it := h.Iterator()
		for seg, ok := it.Next(); ok; seg, ok = it.Next() {
			if !yield(seg) {
				return
			}
		}
	}
}

// Iterator returns an explicit pull cursor over the tree's segments.
// Prefer [HTree.Segments] for range loops; the cursor form suits
// consumers that interleave iteration with other control flow.
func (h HTree[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{order: h.order}
}

// SegmentAt decodes the segment at the given 1-based position without
// iterating. It reports false for position 0 and for positions past the
// end of the sequence. Positions [1, SegmentCount()] are valid, and
// SegmentAt(p) equals the p-th segment produced by an iterator.
func (h HTree[T]) SegmentAt(position uint64) (Segment[T], bool) {
	level, offset, ok := decodePosition(position, h.order)
	if !ok {
		return Segment[T]{}, false
	}
	return mapSegment[T](level, offset), true
}

// Iterator is a pull cursor over an H-tree's segments. The zero value
// is not useful; obtain one from [HTree.Iterator]. An Iterator carries
// only the position counter and must not be advanced concurrently.
type Iterator[T Float] struct {
	order    int
	position uint64
}

// Next advances the cursor and returns the next segment. It reports
// false once the sequence is exhausted, and keeps reporting false on
// subsequent calls.
func (it *Iterator[T]) Next() (Segment[T], bool) {
	it.position++
	level, offset, ok := decodePosition(it.position, it.order)
	if !ok {
		// Park the counter so further calls do not re-enter a valid level.
		it.position--
		return Segment[T]{}, false
	}
	return mapSegment[T](level, offset), true
}

// Position returns the number of segments produced so far.
func (it *Iterator[T]) Position() uint64 {
	return it.position
}
