package htree

import "math/bits"

// decodePosition splits a 1-based position counter into the recursion
// level it belongs to and the 0-based offset of the segment within that
// level.
//
// The level is the bit length of the position: level = floor(log2(p)).
// Position 0 has no bit length and is never a valid position; callers
// increment before decoding, so the first decoded position is 1 (level
// 0, offset 0). ok reports false for position 0 and whenever the level
// exceeds order, which is the sequence's end condition rather than an
// error.
func decodePosition(position uint64, order int) (level int, offset uint64, ok bool) {
	if position == 0 {
		return 0, 0, false
	}
	level = bits.Len64(position) - 1
	if level > order {
		return 0, 0, false
	}
	return level, position - 1<<uint(level), true
}
