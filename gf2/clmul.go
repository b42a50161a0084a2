package gf2

// ClmulLow returns bits 0..W-1 of the carry-less product of a and b: the
// XOR, over every set bit i of b, of a shifted left by i, truncated to W
// bits. Carries never propagate between bit positions.
func ClmulLow[W Word](a, b W) W {
	n := bitsOf[W]()
	var out W
	for i := uint(0); i < n; i++ {
		if (b>>i)&1 != 0 {
			out ^= a << i
		}
	}
	return out
}

// ClmulHigh returns bits W..2W-1 of the carry-less product of a and b,
// accumulating a >> (W-i) for every set bit i of b.
func ClmulHigh[W Word](a, b W) W {
	n := bitsOf[W]()
	var out W
	for i := uint(1); i < n; i++ {
		if (b>>i)&1 != 0 {
			out ^= a >> (n - i)
		}
	}
	return out
}

// Clmul returns the full 2W-bit carry-less product of a and b, such that
// Widen(ClmulLow(a,b), 0) XOR Widen(ClmulHigh(a,b), W) == Clmul(a, b).
func Clmul[W Word](a, b W) Double[W] {
	return Double[W]{Lo: ClmulLow(a, b), Hi: ClmulHigh(a, b)}
}

// Clmul128 returns the 256-bit carry-less product of two 128-bit operands as
// lower and upper 128-bit halves. The product is assembled from four 64x64
// partial products, the schoolbook decomposition
//
//	a*b = a0*b0 + (a0*b1 + a1*b0)<<64 + (a1*b1)<<128
//
// with XOR in place of addition.
func Clmul128(a, b Uint128) (lo, hi Uint128) {
	p00 := Clmul(a.Lo, b.Lo)
	p01 := Clmul(a.Lo, b.Hi)
	p10 := Clmul(a.Hi, b.Lo)
	p11 := Clmul(a.Hi, b.Hi)

	mid := p01.Xor(p10)

	lo = Uint128{Lo: p00.Lo, Hi: p00.Hi ^ mid.Lo}
	hi = Uint128{Lo: mid.Hi ^ p11.Lo, Hi: p11.Hi}
	return lo, hi
}
