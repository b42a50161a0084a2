// Package sweep implements verification sweeps over finite fields.
//
// A sweep walks a deterministic grid of element pairs in a field, performs
// the multiplicative operations on each pair, and folds every result into a
// single digest. Running the same sweep through the computation backend and
// the table backend must yield identical digests; a difference means one of
// the backends is wrong. The Sweeper interface abstracts over the backend so
// the orchestration layer can run and compare them uniformly.
package sweep
