package htree

import "errors"

var (
	// ErrNegativeOrder indicates a construction attempt with a negative
	// recursion order.
	ErrNegativeOrder = errors.New("htree: order must be non-negative")

	// ErrOrderTooLarge indicates an order whose decoding arithmetic
	// would overflow the 64-bit position counter. See MaxOrder.
	ErrOrderTooLarge = errors.New("htree: order exceeds MaxOrder")
)
