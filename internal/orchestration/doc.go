// Package orchestration coordinates concurrent verification sweeps across the
// field arithmetic backends and cross-checks their digests. It decouples
// business logic from presentation via the ProgressReporter and
// ResultPresenter interfaces.
package orchestration
