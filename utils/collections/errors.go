package collections

import "errors"

// Returned by the key-level map operations. The arithmetic operations
// never fail, absent keys there count as zero.
var (
	ErrValueExisted    = errors.New("value existed")
	ErrValueNotExisted = errors.New("value not existed")
)
