package orchestration

import (
	"io"
	"sync"
	"time"

	"github.com/agbru/gfcalc/internal/progress"
	"github.com/agbru/gfcalc/internal/sweep"
)

// SweepResult encapsulates the outcome of a single backend sweep.
// It serves as the shared domain type between orchestration and presentation layers.
type SweepResult struct {
	// Name is the identifier of the backend used (e.g., "computation").
	Name string
	// Summary holds the digest and operation count. It is meaningless if an
	// error occurred.
	Summary sweep.Summary
	// Duration is the time taken to complete the sweep.
	Duration time.Duration
	// Err contains any error that occurred during the sweep.
	Err error
}

// PresentationOptions configures how results are presented to the user.
type PresentationOptions struct {
	Poly    uint64
	Width   int
	Verbose bool
}

// ProgressReporter defines the interface for displaying sweep progress.
// This interface decouples the orchestration layer from the presentation
// layer; business logic never depends on how progress is rendered.
//
// Implementations handle the visual representation of progress (spinners,
// progress bars, etc.) while the orchestration layer focuses on coordinating
// the sweeps.
type ProgressReporter interface {
	// DisplayProgress starts displaying progress updates from the channel.
	// It should be called in a separate goroutine and will run until the
	// progressChan is closed.
	//
	// Parameters:
	//   - wg: A WaitGroup to signal when display is complete.
	//   - progressChan: Channel receiving progress updates from the sweeps.
	//   - numBackends: The number of concurrent backends being tracked.
	//   - out: The writer for progress output.
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numBackends int, out io.Writer)
}

// ProgressReporterFunc is a function adapter that implements ProgressReporter.
// This allows passing a function directly where a ProgressReporter is expected.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numBackends int, out io.Writer)

// DisplayProgress calls the underlying function.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numBackends int, out io.Writer) {
	f(wg, progressChan, numBackends, out)
}

// NullProgressReporter is a no-op implementation of ProgressReporter.
// It drains the progress channel without displaying anything.
// Useful for quiet mode or testing.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	for range progressChan {
		// Drain channel silently
	}
}

// ResultPresenter defines the interface for presenting sweep results.
// This interface decouples the orchestration layer from presentation concerns,
// allowing different output formats (CLI, JSON, etc.) without modifying
// the orchestration logic.
type ResultPresenter interface {
	// PresentComparisonTable displays the comparison summary table.
	PresentComparisonTable(results []SweepResult, out io.Writer)

	// PresentResult displays the final sweep outcome.
	PresentResult(result SweepResult, opts PresentationOptions, out io.Writer)
}

// DurationFormatter formats durations for display.
type DurationFormatter interface {
	FormatDuration(d time.Duration) string
}

// ErrorHandler handles sweep errors and returns exit codes.
type ErrorHandler interface {
	HandleError(err error, duration time.Duration, out io.Writer) int
}
