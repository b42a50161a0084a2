package gf2

import (
	"errors"
	"fmt"
	"testing"
)

// TestValidatePolyRejections covers the three rejection classes: 0 as a
// root, 1 as a root, and irreducible-but-not-primitive polynomials.
func TestValidatePolyRejections(t *testing.T) {
	tests := []struct {
		name string
		poly uint64
	}{
		{"zero is a root", 0x4},
		{"one is a root", 0x5},
		{"irreducible but not primitive", 0x15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePoly[uint8](tt.poly)
			var invalid InvalidPolynomialError
			if !errors.As(err, &invalid) {
				t.Fatalf("ValidatePoly(%#x) = %v, want InvalidPolynomialError", tt.poly, err)
			}
			if _, err := NewLutField[uint8](tt.poly); err == nil {
				t.Errorf("NewLutField(%#x) should fail", tt.poly)
			}
		})
	}

	t.Run("not primitive at degree 9", func(t *testing.T) {
		if err := ValidatePoly[uint16](0x203); err == nil {
			t.Error("ValidatePoly(0x203) should fail")
		}
	})

	t.Run("width beyond the table limit", func(t *testing.T) {
		if err := ValidatePoly[uint32](0x11D); err == nil {
			t.Error("ValidatePoly[uint32] should reject 32-bit tables")
		}
	})
}

// TestValidatePolyAccepts checks the primitive polynomials the original
// suite is built around.
func TestValidatePolyAccepts(t *testing.T) {
	for _, poly := range []uint64{0x3, 0x7, 0xB, 0x13} {
		if err := ValidatePoly[uint16](poly); err != nil {
			t.Errorf("ValidatePoly(%#x) failed: %v", poly, err)
		}
	}
	for _, poly := range []uint64{0x25, 0x43, 0x83, 0x11D} {
		if err := ValidatePoly[uint8](poly); err != nil {
			t.Errorf("ValidatePoly(%#x) failed: %v", poly, err)
		}
	}
}

// TestLutLogBijection verifies that the discrete log maps the nonzero
// elements one-to-one onto [0, NumElem-1).
func TestLutLogBijection(t *testing.T) {
	for _, poly := range []uint64{0x25, 0x43, 0x83, 0x11D} {
		t.Run(fmt.Sprintf("poly=%#x", poly), func(t *testing.T) {
			fd, err := NewLutField[uint8](poly)
			if err != nil {
				t.Fatal(err)
			}
			n := int(fd.NumElem())

			logs := make(map[int]bool, n-1)
			for v := 1; v < n; v++ {
				l := fd.LogAlpha(fd.New(uint8(v)))
				if l < 0 || l >= n-1 {
					t.Fatalf("log(%#x) = %d out of range", v, l)
				}
				if logs[l] {
					t.Fatalf("log value %d repeated", l)
				}
				logs[l] = true
			}
			if len(logs) != n-1 {
				t.Fatalf("log covers %d values, want %d", len(logs), n-1)
			}
		})
	}
}

// TestLutAlphaPowLogRoundTrip mirrors the original table-backend checks:
// log of zero is -1 and log(alpha^i) == i across the whole group.
func TestLutAlphaPowLogRoundTrip(t *testing.T) {
	type inst struct {
		poly  uint64
		build func(uint64) (int, func(int) uint64, func(uint64) int, error)
	}

	check8 := func(poly uint64) (int, func(int) uint64, func(uint64) int, error) {
		fd, err := NewLutField[uint8](poly)
		if err != nil {
			return 0, nil, nil, err
		}
		return int(fd.NumElem()),
			func(p int) uint64 { return uint64(fd.AlphaPow(p).Value()) },
			func(v uint64) int { return fd.LogAlpha(fd.New(uint8(v))) },
			nil
	}
	check16 := func(poly uint64) (int, func(int) uint64, func(uint64) int, error) {
		fd, err := NewLutField[uint16](poly)
		if err != nil {
			return 0, nil, nil, err
		}
		return int(fd.NumElem()),
			func(p int) uint64 { return uint64(fd.AlphaPow(p).Value()) },
			func(v uint64) int { return fd.LogAlpha(fd.New(uint16(v))) },
			nil
	}

	insts := []inst{
		{0x3, check16}, {0x7, check16}, {0xB, check16}, {0x13, check16},
		{0x25, check8}, {0x43, check8}, {0x83, check8}, {0x11D, check8},
	}
	for _, in := range insts {
		t.Run(fmt.Sprintf("poly=%#x", in.poly), func(t *testing.T) {
			n, alphaPow, logAlpha, err := in.build(in.poly)
			if err != nil {
				t.Fatal(err)
			}
			if got := logAlpha(0); got != -1 {
				t.Fatalf("log(0) = %d, want -1", got)
			}
			for i := 1; i < n-1; i++ {
				if got := logAlpha(alphaPow(i)); got != i {
					t.Fatalf("log(alpha^%d) = %d, want %d", i, got, i)
				}
			}
		})
	}
}

// TestLutAlpha checks the generator constant and power normalization.
func TestLutAlpha(t *testing.T) {
	fd, err := NewLutField[uint8](0x11D)
	if err != nil {
		t.Fatal(err)
	}
	if got := fd.Alpha().Value(); got != 2 {
		t.Errorf("Alpha = %#x, want 2", got)
	}
	if got := fd.AlphaPow(0); !got.Equal(fd.One()) {
		t.Errorf("alpha^0 = %v, want 1", got)
	}
	mod := int(fd.NumElem()) - 1
	if got, want := fd.AlphaPow(-3), fd.AlphaPow(mod-3); !got.Equal(want) {
		t.Errorf("alpha^-3 = %v, want %v", got, want)
	}
	if got, want := fd.AlphaPow(mod+5), fd.AlphaPow(5); !got.Equal(want) {
		t.Errorf("alpha^(mod+5) = %v, want %v", got, want)
	}
}

// TestLutCacheReuse checks that repeated construction of the same (width,
// polynomial) pairing yields the same cached instance, while different
// widths stay distinct.
func TestLutCacheReuse(t *testing.T) {
	a, err := NewLutField[uint8](0x11D)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewLutField[uint8](0x11D)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Error("same (width, poly) pairing should reuse the cached tables")
	}

	c, err := NewLutField[uint16](0x11D)
	if err != nil {
		t.Fatal(err)
	}
	if c.M() != a.M() {
		t.Errorf("widths disagree on degree: %d vs %d", c.M(), a.M())
	}
}

// TestDegreeOneAccepted pins the GF(2) case: x+1 has an even number of
// terms yet is the one primitive polynomial of degree 1, so the
// one-is-a-root rejection must not apply below degree 2.
func TestDegreeOneAccepted(t *testing.T) {
	if err := ValidatePoly[uint8](0x3); err != nil {
		t.Fatalf("ValidatePoly(0x3) failed: %v", err)
	}
	fd, err := NewLutField[uint16](0x3)
	if err != nil {
		t.Fatalf("NewLutField(0x3) failed: %v", err)
	}
	if fd.M() != 1 || fd.NumElem() != 2 {
		t.Fatalf("GF(2): M = %d, NumElem = %d, want 1 and 2", fd.M(), fd.NumElem())
	}
	one := fd.One()
	if got := one.Mul(one); !got.Equal(one) {
		t.Errorf("1*1 = %v, want 1", got)
	}
	inv, err := one.Inverse()
	if err != nil || !inv.Equal(one) {
		t.Errorf("inverse(1) = %v, %v, want 1", inv, err)
	}
}
