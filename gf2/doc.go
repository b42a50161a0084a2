// Package gf2 implements arithmetic over finite fields of characteristic 2,
// GF(2^M), parameterized by an irreducible binary polynomial of degree M.
//
// A polynomial is encoded as an unsigned integer whose bit i is the
// coefficient of x^i, including the leading term: x^3+x+1 encodes as 0xB.
// Field elements are plain unsigned integers in [0, 2^M) wrapped in an
// Element bound to the backend that created them.
//
// Two interchangeable backends satisfy the same element contract:
//
//   - Field: the computation backend. Multiplication is a carry-less
//     (XOR-convolution) product reduced modulo the field polynomial by
//     GF(2) polynomial long division; inversion is the extended Euclidean
//     algorithm over GF(2)[x].
//   - LutField: the table backend. Multiplication, division and inversion
//     reduce to modular index arithmetic over exponent and discrete-log
//     tables built once per (width, polynomial) instantiation by walking a
//     linear-feedback shift register. Requires a primitive polynomial.
//
// Callers pick a backend, a storage width and a defining polynomial;
// swapping backends does not change call sites.
package gf2
