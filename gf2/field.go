package gf2

import "fmt"

// Field is the computation backend for GF(2^M): multiplication computes the
// double-width carry-less product and reduces it modulo the defining
// polynomial with PolyDivWide; inversion runs the extended Euclidean
// algorithm over GF(2)[x]. It carries no tables and works for any degree up
// to the storage width.
type Field[W Word] struct {
	poly    Double[W]
	m       int
	numElem uint64
}

// NewField builds the computation backend for the given defining
// polynomial. The polynomial must have degree between 1 and the storage
// width. Irreducibility is a caller contract and is not checked: a
// reducible polynomial silently yields a ring with zero divisors instead of
// a field.
//
// A degree-64 polynomial has 65 bits and does not fit a uint64; use
// NewFieldWide to construct GF(2^64).
func NewField[W Word](poly uint64) (*Field[W], error) {
	w := bitsOf[W]()
	return newField(Double[W]{Lo: W(poly), Hi: W(poly >> w)}, Degree(poly))
}

// NewFieldWide builds the computation backend from a polynomial spread over
// both halves of a Double. This is the only way to reach GF(2^64): the
// defining polynomial x^64+... has 65 bits, so its integer encoding does
// not fit the largest Word.
func NewFieldWide[W Word](poly Double[W]) (*Field[W], error) {
	return newField(poly, poly.Degree())
}

func newField[W Word](poly Double[W], m int) (*Field[W], error) {
	enc := polyEncoding(poly)
	if m < 1 {
		return nil, InvalidPolynomialError{Poly: enc, Reason: "degree must be at least 1"}
	}
	if uint(m) > bitsOf[W]() {
		return nil, InvalidPolynomialError{
			Poly:   enc,
			Reason: fmt.Sprintf("degree %d exceeds the %d-bit storage width", m, bitsOf[W]()),
		}
	}
	var numElem uint64
	if m < 64 {
		numElem = uint64(1) << uint(m)
	}
	return &Field[W]{poly: poly, m: m, numElem: numElem}, nil
}

// New wraps a raw storage value as an element of this field.
func (f *Field[W]) New(value W) Element[W] { return Element[W]{value: value, fd: f} }

// Zero returns the additive identity.
func (f *Field[W]) Zero() Element[W] { return f.New(0) }

// One returns the multiplicative identity.
func (f *Field[W]) One() Element[W] { return f.New(1) }

// M returns the degree of the defining polynomial.
func (f *Field[W]) M() int { return f.m }

// NumElem returns the number of field elements, 2^M. For M = 64 the count
// wraps to 0, meaning every 64-bit value is an element.
func (f *Field[W]) NumElem() uint64 { return f.numElem }

// Poly returns the defining polynomial in its integer encoding. For M = 64
// the leading x^64 term does not fit and the encoding is truncated to the
// low 64 bits.
func (f *Field[W]) Poly() uint64 { return polyEncoding(f.poly) }

// polyEncoding folds a spread polynomial back into its uint64 encoding.
func polyEncoding[W Word](poly Double[W]) uint64 {
	w := bitsOf[W]()
	if w >= 64 {
		return uint64(poly.Lo)
	}
	return uint64(poly.Lo) | uint64(poly.Hi)<<w
}

func (f *Field[W]) mul(a, b W) W {
	_, rem, err := PolyDivWide(Clmul(a, b), f.poly)
	if err != nil {
		// The divisor is the field polynomial, which is never zero.
		panic(err)
	}
	return rem.Lo
}

func (f *Field[W]) div(a, b W) (W, error) {
	inv, err := f.inverse(b)
	if err != nil {
		return 0, err
	}
	return f.mul(a, inv), nil
}

// inverse computes the multiplicative inverse by the extended Euclidean
// algorithm on polynomials: it tracks remainder and Bezout-coefficient
// pairs seeded with (field polynomial, a) and (0, 1), advancing both with
// the quotient of each division step until the remainder vanishes. The
// remainders run in double width because the field polynomial itself can
// exceed W bits.
func (f *Field[W]) inverse(a W) (W, error) {
	if a == 0 {
		return 0, ErrDivideByZero
	}
	if a == 1 {
		// ONE is self-inverse; skip the loop.
		return 1, nil
	}

	rPrev := f.poly
	rCur := Double[W]{Lo: a}
	var tPrev, tCur W = 0, 1
	for !rCur.IsZero() {
		quot, rem, err := PolyDivWide(rPrev, rCur)
		if err != nil {
			panic(err) // rCur is checked nonzero by the loop condition
		}
		rPrev, rCur = rCur, rem
		tPrev, tCur = tCur, tPrev^f.mulQuot(quot, tCur)
	}
	return tPrev, nil
}

// mulQuot multiplies a Euclidean quotient (degree at most M, so up to one
// bit wider than W) by a field element and reduces the product.
func (f *Field[W]) mulQuot(q Double[W], t W) W {
	prod := Clmul(q.Lo, t)
	if q.Hi&1 != 0 {
		prod = prod.Xor(Widen(t, bitsOf[W]()))
	}
	_, rem, err := PolyDivWide(prod, f.poly)
	if err != nil {
		panic(err)
	}
	return rem.Lo
}
