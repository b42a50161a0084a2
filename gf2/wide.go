package gf2

// Double is a 2W-bit unsigned integer stored as two W-bit halves,
// little-endian in the struct. It exists because carry-less products and
// their reduction need twice the storage width, and for the widest native
// width there is no wider integer to borrow. All operations are total.
//
// Double values compare with ==; the zero value is the number zero.
type Double[W Word] struct {
	Lo W
	Hi W
}

// Uint128 is the double-width integer backing GF arithmetic over 64-bit
// storage, Go's widest native unsigned type.
type Uint128 = Double[uint64]

// Xor returns the bitwise exclusive-or of d and o.
func (d Double[W]) Xor(o Double[W]) Double[W] {
	return Double[W]{Lo: d.Lo ^ o.Lo, Hi: d.Hi ^ o.Hi}
}

// And returns the bitwise conjunction of d and o.
func (d Double[W]) And(o Double[W]) Double[W] {
	return Double[W]{Lo: d.Lo & o.Lo, Hi: d.Hi & o.Hi}
}

// Or returns the bitwise disjunction of d and o.
func (d Double[W]) Or(o Double[W]) Double[W] {
	return Double[W]{Lo: d.Lo | o.Lo, Hi: d.Hi | o.Hi}
}

// Not returns the bitwise complement of d.
func (d Double[W]) Not() Double[W] {
	return Double[W]{Lo: ^d.Lo, Hi: ^d.Hi}
}

// Shl returns d logically shifted left by n bits. Shift amounts in [1, W-1]
// move a W-bit spill from the lower into the upper half; amounts in [W, 2W-1]
// zero the lower half; amounts >= 2W yield zero.
func (d Double[W]) Shl(n uint) Double[W] {
	w := bitsOf[W]()
	switch {
	case n == 0:
		return d
	case n < w:
		return Double[W]{Lo: d.Lo << n, Hi: d.Hi<<n | d.Lo>>(w-n)}
	case n < 2*w:
		return Double[W]{Hi: d.Lo << (n - w)}
	default:
		return Double[W]{}
	}
}

// Shr returns d logically shifted right by n bits, mirroring Shl.
func (d Double[W]) Shr(n uint) Double[W] {
	w := bitsOf[W]()
	switch {
	case n == 0:
		return d
	case n < w:
		return Double[W]{Lo: d.Lo>>n | d.Hi<<(w-n), Hi: d.Hi >> n}
	case n < 2*w:
		return Double[W]{Lo: d.Hi >> (n - w)}
	default:
		return Double[W]{}
	}
}

// IsZero reports whether d is the number zero.
func (d Double[W]) IsZero() bool {
	return d.Lo == 0 && d.Hi == 0
}

// Bit returns bit i of d (0 or 1). Bits at or beyond 2W read as zero.
func (d Double[W]) Bit(i uint) uint {
	w := bitsOf[W]()
	switch {
	case i < w:
		return uint(d.Lo>>i) & 1
	case i < 2*w:
		return uint(d.Hi>>(i-w)) & 1
	default:
		return 0
	}
}

// Degree returns the degree of the binary polynomial encoded by d, or -1
// when d is zero.
func (d Double[W]) Degree() int {
	if hd := Degree(d.Hi); hd >= 0 {
		return hd + int(bitsOf[W]())
	}
	return Degree(d.Lo)
}

// Widen places the W-bit value v into a 2W-bit field and shifts it left by
// shift bits. Shift amounts beyond 2W saturate cleanly to zero.
func Widen[W Word](v W, shift uint) Double[W] {
	return Double[W]{Lo: v}.Shl(shift)
}
