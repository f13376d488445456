// Package htree generates the geometric skeleton of an H-tree fractal.
//
// # Overview
//
// An H-tree is built from a horizontal bar whose two ends each sprout a
// shrinking perpendicular bar, recursively, down to a chosen maximum
// recursion depth (the order). htree produces the tree as a lazy,
// ordered sequence of line segments whose endpoints are normalized into
// the rectangle [0, 1] x [0, 1/sqrt(2)].
//
// # Quick Start
//
//	import "github.com/robabibert/htree"
//
//	t, err := htree.New[float64](10)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for seg := range t.Segments() {
//		// seg.Start and seg.End lie in [0,1] x [0, htree.ScaleHeight].
//		draw(seg.Start.X, seg.Start.Y, seg.End.X, seg.End.Y)
//	}
//
// # Decoding
//
// Every segment is a pure function of its 1-based position in the
// sequence: the bit length of the position selects the recursion level,
// the remainder selects a cell pair in that level's grid. No recursion
// or carried state is involved, so any position can be decoded in O(1)
// via [HTree.SegmentAt] and the full position range may be sharded
// across goroutines without synchronization.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right, in [0, 1]
//   - Y increases down, in [0, ScaleHeight]
//
// Consumers map normalized coordinates to pixel space themselves,
// typically with [Segment.Mul]; the render subpackage does this for
// PNG output.
package htree
