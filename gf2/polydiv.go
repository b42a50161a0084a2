package gf2

// PolyDiv performs Euclidean division of binary polynomials, returning a
// quotient and remainder with
//
//	dividend == clmul(quotient, divisor) XOR remainder
//
// and degree(remainder) < degree(divisor). It returns ErrZeroDivisor when
// the divisor is the zero polynomial. Dividing by the polynomial 1 is
// degenerate but valid and returns (dividend, 0).
//
// The algorithm is classic binary long division by simulated shift
// register: the dividend is consumed bit by bit from its most significant
// surviving bit down to bit 0, a running remainder register is shifted left
// by one each step, and whenever the bit leaving the top of the register is
// set the register absorbs the divisor (leading term cleared) and the
// matching quotient bit is raised.
func PolyDiv[W Word](dividend, divisor W) (quotient, remainder W, err error) {
	if divisor == 0 {
		return 0, 0, ErrZeroDivisor
	}
	if divisor == 1 {
		return dividend, 0, nil
	}

	deg := Degree(divisor)
	d := uint(deg - 1)
	cleared := divisor ^ W(1)<<uint(deg)

	var quot, rem W
	for i := Degree(dividend); i >= 0; i-- {
		top := (rem >> d) & 1
		rem = rem<<1 | (dividend>>uint(i))&1
		if top != 0 {
			rem ^= cleared
			quot |= W(1) << uint(i)
		}
	}
	// Bits at and above deg are spent carries, not part of the remainder.
	rem &= ^W(0) >> (bitsOf[W]() - uint(deg))
	return quot, rem, nil
}

// PolyDivWide is PolyDiv for double-width operands. It exists so that a
// 2W-bit carry-less product can be reduced modulo a polynomial of degree up
// to W without first truncating it.
func PolyDivWide[W Word](dividend, divisor Double[W]) (quotient, remainder Double[W], err error) {
	if divisor.IsZero() {
		return Double[W]{}, Double[W]{}, ErrZeroDivisor
	}
	if divisor.Hi == 0 && divisor.Lo == 1 {
		return dividend, Double[W]{}, nil
	}

	deg := divisor.Degree()
	d := uint(deg - 1)
	cleared := divisor.Xor(Widen[W](1, uint(deg)))

	var quot, rem Double[W]
	for i := dividend.Degree(); i >= 0; i-- {
		top := rem.Bit(d)
		rem = rem.Shl(1)
		rem.Lo |= W(dividend.Bit(uint(i)))
		if top != 0 {
			rem = rem.Xor(cleared)
			quot = quot.Xor(Widen[W](1, uint(i)))
		}
	}
	return quot, rem.And(onesWide[W](uint(deg))), nil
}

// onesWide returns a Double with the n lowest bits set.
func onesWide[W Word](n uint) Double[W] {
	w := bitsOf[W]()
	if n <= w {
		return Double[W]{Lo: ^W(0) >> (w - n)}
	}
	if n >= 2*w {
		return Double[W]{Lo: ^W(0), Hi: ^W(0)}
	}
	return Double[W]{Lo: ^W(0), Hi: ^W(0) >> (2*w - n)}
}
