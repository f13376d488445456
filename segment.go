package htree

import "math"

// Point is a 2D position in the tree's normalized coordinate space.
type Point[T Float] struct {
	X, Y T
}

// Pt is a convenience function to create a Point.
func Pt[T Float](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

// Mul returns the point scaled by a scalar.
func (p Point[T]) Mul(s T) Point[T] {
	return Point[T]{X: p.X * s, Y: p.Y * s}
}

// Segment is one drawable line of the tree, represented by its two
// endpoints. Segments are plain values: produced fresh on every
// advance, immediately consumable or discardable.
type Segment[T Float] struct {
	Start, End Point[T]
}

// Mul returns the segment with both endpoints scaled by s. This is the
// usual hook for mapping normalized coordinates to pixel space.
func (s Segment[T]) Mul(f T) Segment[T] {
	return Segment[T]{Start: s.Start.Mul(f), End: s.End.Mul(f)}
}

// Horizontal reports whether the segment runs along the x axis.
// Every H-tree segment is axis-aligned: segments at even recursion
// levels are horizontal, segments at odd levels vertical.
func (s Segment[T]) Horizontal() bool {
	return s.Start.Y == s.End.Y
}

// Vertical reports whether the segment runs along the y axis.
func (s Segment[T]) Vertical() bool {
	return s.Start.X == s.End.X
}

// Length returns the Euclidean length of the segment.
func (s Segment[T]) Length() T {
	dx := s.End.X - s.Start.X
	dy := s.End.Y - s.Start.Y
	return T(math.Sqrt(float64(dx*dx + dy*dy)))
}
