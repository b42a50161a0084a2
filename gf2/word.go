package gf2

import (
	"math/bits"
	"unsafe"
)

// Word enumerates the unsigned integer types usable as field element storage.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// bitsOf returns the width of W in bits.
func bitsOf[W Word]() uint {
	var w W
	return uint(unsafe.Sizeof(w)) * 8
}

// Degree returns the degree of the binary polynomial encoded by x, i.e. the
// index of its highest set bit. The degree of the zero polynomial is -1.
func Degree[W Word](x W) int {
	return bits.Len64(uint64(x)) - 1
}
