package gf2

import "fmt"

// Backend is the contract shared by the computation backend (Field) and the
// table backend (LutField). Call sites built against Backend can swap one
// implementation for the other without change.
type Backend[W Word] interface {
	// New wraps a raw storage value as a field element. No range check is
	// performed; use Element.Validate to detect out-of-range values.
	New(value W) Element[W]
	// Zero returns the additive identity.
	Zero() Element[W]
	// One returns the multiplicative identity.
	One() Element[W]
	// M returns the degree of the defining polynomial.
	M() int
	// NumElem returns the number of field elements, 2^M, wrapping to 0
	// when M is 64.
	NumElem() uint64
	// Poly returns the defining polynomial in its integer encoding.
	Poly() uint64

	mul(a, b W) W
	div(a, b W) (W, error)
	inverse(a W) (W, error)
}

// Element is a single field element: a storage integer bound to the backend
// that created it. Elements are immutable values; every operation returns a
// new element. Two elements are equal iff their stored values are equal.
type Element[W Word] struct {
	value W
	fd    Backend[W]
}

// Value returns the raw storage integer.
func (a Element[W]) Value() W { return a.value }

// Add returns a + b. Addition is bitwise XOR and never fails.
func (a Element[W]) Add(b Element[W]) Element[W] {
	return Element[W]{value: a.value ^ b.value, fd: a.fd}
}

// Sub returns a - b, which coincides with Add in characteristic 2.
func (a Element[W]) Sub(b Element[W]) Element[W] {
	return a.Add(b)
}

// Mul returns the field product a * b.
func (a Element[W]) Mul(b Element[W]) Element[W] {
	return Element[W]{value: a.fd.mul(a.value, b.value), fd: a.fd}
}

// Div returns a / b, or ErrDivideByZero when b is the additive identity.
func (a Element[W]) Div(b Element[W]) (Element[W], error) {
	v, err := a.fd.div(a.value, b.value)
	if err != nil {
		return Element[W]{}, err
	}
	return Element[W]{value: v, fd: a.fd}, nil
}

// Inverse returns the multiplicative inverse of a, or ErrDivideByZero when
// a is the additive identity.
func (a Element[W]) Inverse() (Element[W], error) {
	v, err := a.fd.inverse(a.value)
	if err != nil {
		return Element[W]{}, err
	}
	return Element[W]{value: v, fd: a.fd}, nil
}

// AddAssign sets a to a + b.
func (a *Element[W]) AddAssign(b Element[W]) { a.value ^= b.value }

// SubAssign sets a to a - b.
func (a *Element[W]) SubAssign(b Element[W]) { a.value ^= b.value }

// MulAssign sets a to a * b.
func (a *Element[W]) MulAssign(b Element[W]) { a.value = a.fd.mul(a.value, b.value) }

// DivAssign sets a to a / b, leaving a untouched on error.
func (a *Element[W]) DivAssign(b Element[W]) error {
	v, err := a.fd.div(a.value, b.value)
	if err != nil {
		return err
	}
	a.value = v
	return nil
}

// Equal reports structural equality of the stored values.
func (a Element[W]) Equal(b Element[W]) bool { return a.value == b.value }

// IsZero reports whether a is the additive identity.
func (a Element[W]) IsZero() bool { return a.value == 0 }

// Validate reports whether the stored value lies OUTSIDE [0, NumElem).
// Callers invert the sense to test validity. Arithmetic on an out-of-range
// value is undefined.
func (a Element[W]) Validate() bool {
	n := a.fd.NumElem()
	// NumElem wraps to 0 for GF(2^64), where every stored value is in range.
	return n != 0 && uint64(a.value) >= n
}

// String formats the element as a fixed-width hexadecimal value of
// ceil(M/4) digits.
func (a Element[W]) String() string {
	width := (a.fd.M() + 3) / 4
	return fmt.Sprintf("0x%0*X", width, uint64(a.value))
}
