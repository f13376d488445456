package htree

import "fmt"

// ScaleHeight is 1/sqrt(2), the factor applied to every y coordinate.
// It compresses the unit square into the H-tree's natural aspect ratio,
// so all output lies in [0, 1] x [0, ScaleHeight].
const ScaleHeight = 0.7071067811865475244

// gridDims returns the number of vertical partitions v (rows) and
// horizontal partitions h (columns) of the conceptual grid at a level.
// The grid doubles along alternating axes: level 0 is 1x2, level 1 is
// 2x2, level 2 is 2x4, and so on.
func gridDims(level int) (v, h uint64) {
	return 1 << (uint(level+1) / 2), 1 << (uint(level)/2 + 1)
}

// mapSegment turns a (level, offset) pair into a normalized segment.
//
// Each offset consumes two adjacent grid cells, one per endpoint. Odd
// levels produce vertical segments and walk the grid column-major; even
// levels produce horizontal segments and walk it row-major. An endpoint
// sits at the center of its cell, (c+0.5)/n per axis, with y compressed
// by ScaleHeight.
func mapSegment[T Float](level int, offset uint64) Segment[T] {
	v, h := gridDims(level)
	if cells := v * h; cells < 2*offset {
		// Internal consistency check on the decoding arithmetic. Valid
		// (level, offset) pairs from decodePosition can never trip it.
		panic(fmt.Sprintf("htree: level %d grid of %d cells cannot hold segment offset %d", level, cells, offset))
	}

	cell := 2 * offset
	var xStart, yStart, xEnd, yEnd uint64
	if level%2 == 1 {
		// Vertical: cell = y + v*x
		yStart = cell % v
		xStart = (cell - yStart) / v
		yEnd = (cell + 1) % v
		xEnd = (cell + 1 - yEnd) / v
	} else {
		// Horizontal: cell = x + h*y
		xStart = cell % h
		yStart = (cell - xStart) / h
		xEnd = (cell + 1) % h
		yEnd = (cell + 1 - xEnd) / h
	}

	return Segment[T]{
		Start: Point[T]{X: center[T](xStart, h), Y: center[T](yStart, v) * ScaleHeight},
		End:   Point[T]{X: center[T](xEnd, h), Y: center[T](yEnd, v) * ScaleHeight},
	}
}

// center maps grid cell index c out of n partitions to the normalized
// coordinate of the cell's midpoint.
func center[T Float](c, n uint64) T {
	return (T(c) + 0.5) / T(n)
}
