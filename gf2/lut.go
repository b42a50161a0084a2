package gf2

import (
	"fmt"
	"math/bits"
	"sync"
)

// lutWidthLimit caps the storage width of the table backend. Tables span
// the full native-width range (2^W entries each), which stops being
// reasonable past 16 bits.
const lutWidthLimit = 16

// LutField is the table backend for GF(2^M): multiplication, division and
// inversion are modular additions and subtractions of discrete logarithms,
// looked up in exponent and log tables built once per (width, polynomial)
// instantiation. The defining polynomial must be primitive, not merely
// irreducible, so that alpha (the element with value 2) generates the whole
// multiplicative group.
type LutField[W Word] struct {
	poly    uint64
	m       int
	numElem uint64

	// exp[i] holds alpha^i for i in [0, NumElem-1); log[v] holds the
	// unique i with exp[i] == v, with log[0] fixed at -1. Both tables are
	// immutable after construction.
	exp []W
	log []int
}

// lutKey identifies one (storage width, polynomial) instantiation.
type lutKey struct {
	width uint
	poly  uint64
}

var (
	lutMu    sync.Mutex
	lutCache = make(map[lutKey]any)
)

// NewLutField builds the table backend for the given defining polynomial,
// or returns the cached instance when the same (width, polynomial) pairing
// was built before. Construction validates the polynomial per ValidatePoly
// and is safe to race from multiple goroutines; the tables are read-only
// after publication.
func NewLutField[W Word](poly uint64) (*LutField[W], error) {
	key := lutKey{width: bitsOf[W](), poly: poly}
	lutMu.Lock()
	defer lutMu.Unlock()
	if cached, ok := lutCache[key]; ok {
		return cached.(*LutField[W]), nil
	}
	f, err := buildLut[W](poly)
	if err != nil {
		return nil, err
	}
	lutCache[key] = f
	return f, nil
}

// ValidatePoly reports whether poly is usable with the table backend:
// it must not have 0 as a root (even value), must not have 1 as a root
// (even number of terms, except x+1 at degree 1 which defines GF(2)),
// and must be primitive, i.e. the LFSR walk must
// not revisit the value 1 before generating all NumElem-1 nonzero
// elements. A nil return means the polynomial passed every check.
func ValidatePoly[W Word](poly uint64) error {
	_, err := buildLut[W](poly)
	return err
}

// buildLut validates poly and fills the exponent and log tables by running
// a Fibonacci-style linear-feedback shift register seeded with 1: each step
// records the current value, shifts it left by one, and folds the
// polynomial back in when the shift overflows degree M.
func buildLut[W Word](poly uint64) (*LutField[W], error) {
	w := bitsOf[W]()
	if w > lutWidthLimit {
		return nil, InvalidPolynomialError{
			Poly:   poly,
			Reason: fmt.Sprintf("table backend supports at most %d-bit storage, not %d", lutWidthLimit, w),
		}
	}
	m := Degree(poly)
	if m < 1 {
		return nil, InvalidPolynomialError{Poly: poly, Reason: "degree must be at least 1"}
	}
	if uint(m) > w {
		return nil, InvalidPolynomialError{
			Poly:   poly,
			Reason: fmt.Sprintf("degree %d exceeds the %d-bit storage width", m, w),
		}
	}
	if poly&1 == 0 {
		return nil, InvalidPolynomialError{Poly: poly, Reason: "zero is a root"}
	}
	// x+1 is the sole degree-1 case and legitimately has 1 as a root:
	// it defines GF(2) itself. The parity test applies from degree 2 on.
	if m >= 2 && bits.OnesCount64(poly)%2 == 0 {
		return nil, InvalidPolynomialError{Poly: poly, Reason: "one is a root"}
	}

	size := 1 << w
	f := &LutField[W]{
		poly:    poly,
		m:       m,
		numElem: uint64(1) << uint(m),
		exp:     make([]W, size),
		log:     make([]int, size),
	}
	f.log[0] = -1

	feedback := W(1) << uint(m-1)
	value := W(1)
	for i := 0; i < int(f.numElem)-1; i++ {
		if i > 0 && (value == 1 || f.log[value] != 0) {
			return nil, InvalidPolynomialError{
				Poly:   poly,
				Reason: fmt.Sprintf("not primitive: multiplicative order of alpha is %d, want %d", i, f.numElem-1),
			}
		}
		f.exp[i] = value
		f.log[value] = i

		leading := value&feedback != 0
		value <<= 1
		if leading {
			value ^= W(poly)
		}
	}
	return f, nil
}

// New wraps a raw storage value as an element of this field.
func (f *LutField[W]) New(value W) Element[W] { return Element[W]{value: value, fd: f} }

// Zero returns the additive identity.
func (f *LutField[W]) Zero() Element[W] { return f.New(0) }

// One returns the multiplicative identity.
func (f *LutField[W]) One() Element[W] { return f.New(1) }

// Alpha returns the generator of the multiplicative group, the element
// with value 2.
func (f *LutField[W]) Alpha() Element[W] { return f.New(2) }

// M returns the degree of the defining polynomial.
func (f *LutField[W]) M() int { return f.m }

// NumElem returns the number of field elements, 2^M.
func (f *LutField[W]) NumElem() uint64 { return f.numElem }

// Poly returns the defining polynomial in its integer encoding.
func (f *LutField[W]) Poly() uint64 { return f.poly }

// AlphaPow returns alpha^power. Negative powers and powers at or beyond
// NumElem-1 are folded into [0, NumElem-1) first.
func (f *LutField[W]) AlphaPow(power int) Element[W] {
	return f.New(f.alphaPow(power))
}

// LogAlpha returns the discrete logarithm of e to base alpha, or -1 for
// the additive identity.
func (f *LutField[W]) LogAlpha(e Element[W]) int {
	return f.log[e.Value()]
}

func (f *LutField[W]) alphaPow(power int) W {
	mod := int(f.numElem) - 1
	power %= mod
	power += mod
	power %= mod
	return f.exp[power]
}

func (f *LutField[W]) mul(a, b W) W {
	if a == 0 || b == 0 {
		return 0
	}
	return f.alphaPow(f.log[a] + f.log[b])
}

func (f *LutField[W]) div(a, b W) (W, error) {
	if b == 0 {
		return 0, ErrDivideByZero
	}
	if a == 0 {
		return 0, nil
	}
	return f.alphaPow(f.log[a] - f.log[b]), nil
}

func (f *LutField[W]) inverse(a W) (W, error) {
	if a == 0 {
		return 0, ErrDivideByZero
	}
	return f.alphaPow(int(f.numElem-1) - f.log[a]), nil
}
