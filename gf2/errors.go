package gf2

import (
	"errors"
	"fmt"
)

var (
	// ErrDivideByZero is returned by Div and Inverse when the divisor or
	// the inverted element is the additive identity.
	ErrDivideByZero = errors.New("gf2: divide by zero")

	// ErrZeroDivisor is returned by PolyDiv and PolyDivWide when the
	// divisor polynomial is zero. Inside the field backends the divisor is
	// always the field polynomial, so seeing this error there indicates a
	// configuration bug rather than bad runtime data.
	ErrZeroDivisor = errors.New("gf2: division by the zero polynomial")
)

// InvalidPolynomialError reports a defining polynomial rejected at
// construction time, before any arithmetic runs.
type InvalidPolynomialError struct {
	// Poly is the rejected polynomial in its integer encoding.
	Poly uint64
	// Reason explains why the polynomial was rejected.
	Reason string
}

// Error returns a formatted message naming the polynomial and the reason.
func (e InvalidPolynomialError) Error() string {
	return fmt.Sprintf("gf2: invalid polynomial %#x: %s", e.Poly, e.Reason)
}
