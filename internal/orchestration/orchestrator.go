package orchestration

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/gfcalc/internal/errors"
	"github.com/agbru/gfcalc/internal/progress"
	"github.com/agbru/gfcalc/internal/sweep"
)

// ProgressBufferMultiplier defines the buffer size multiplier for the progress
// channel. A larger buffer reduces the likelihood of dropped updates when the
// UI is slow to consume them.
const ProgressBufferMultiplier = 5

// tracerName identifies this package's spans.
const tracerName = "gfcalc/orchestration"

// ExecuteSweeps orchestrates the concurrent execution of one or more
// verification sweeps.
//
// It manages the lifecycle of the sweep goroutines, collects their results,
// and coordinates the display of progress updates. This function is the core
// of the application's concurrency model. Each sweep runs under its own trace
// span carrying the backend name and field parameters.
//
// Parameters:
//   - ctx: The context for managing cancellation and deadlines.
//   - sweepers: A slice of backends to execute.
//   - opts: The sweep parameters (polynomial, width, sampling).
//   - progressReporter: The progress reporter for displaying updates (use NullProgressReporter for quiet mode).
//   - out: The io.Writer for displaying progress updates.
//
// Returns:
//   - []SweepResult: A slice containing the results of each sweep.
func ExecuteSweeps(ctx context.Context, sweepers []sweep.Sweeper, opts sweep.Options, progressReporter ProgressReporter, out io.Writer) []SweepResult {
	g, ctx := errgroup.WithContext(ctx)
	results := make([]SweepResult, len(sweepers))
	progressChan := make(chan progress.ProgressUpdate, len(sweepers)*ProgressBufferMultiplier)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go progressReporter.DisplayProgress(&displayWg, progressChan, len(sweepers), out)

	tracer := otel.Tracer(tracerName)
	for i, s := range sweepers {
		idx, sweeper := i, s
		g.Go(func() error {
			spanCtx, span := tracer.Start(ctx, "sweep",
				trace.WithAttributes(
					attribute.String("backend", sweeper.Name()),
					attribute.Int("width", opts.Width),
					attribute.String("poly", fmt.Sprintf("%#x", opts.Poly)),
				))
			defer span.End()

			startTime := time.Now()
			summary, err := sweeper.Sweep(spanCtx, progressChan, idx, opts)
			results[idx] = SweepResult{
				Name: sweeper.Name(), Summary: summary, Duration: time.Since(startTime), Err: err,
			}
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
			} else {
				span.SetAttributes(attribute.Int64("ops", int64(summary.Ops)))
			}
			return nil
		})
	}

	g.Wait()
	close(progressChan)
	displayWg.Wait()

	return results
}

// AnalyzeComparisonResults processes the results from the backends and
// generates a summary report.
//
// It sorts the results by execution time, validates digest consistency across
// successful sweeps, and displays a comparative table. It handles the logic
// for determining global success or failure based on the individual outcomes.
//
// Parameters:
//   - results: The slice of sweep results to analyze.
//   - presOpts: Presentation options forwarded to the presenter.
//   - presenter: The result presenter for display formatting.
//   - errHandler: The handler consulted when every backend failed.
//   - out: The io.Writer for the summary report.
//
// Returns:
//   - int: An exit code indicating success (0) or the type of failure.
func AnalyzeComparisonResults(results []SweepResult, presOpts PresentationOptions, presenter ResultPresenter, errHandler ErrorHandler, out io.Writer) int {
	sort.Slice(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Duration < results[j].Duration
	})

	var firstValidResult *SweepResult
	var firstError error
	successCount := 0

	for i := range results {
		if results[i].Err != nil {
			if firstError == nil {
				firstError = results[i].Err
			}
		} else {
			successCount++
			if firstValidResult == nil {
				firstValidResult = &results[i]
			}
		}
	}

	// Present the comparison table
	presenter.PresentComparisonTable(results, out)

	if successCount == 0 {
		fmt.Fprintf(out, "\nGlobal Status: Failure. No backend could complete the sweep.\n")
		return errHandler.HandleError(firstError, 0, out)
	}

	mismatch := false
	for _, res := range results {
		if res.Err == nil && res.Summary.Digest != firstValidResult.Summary.Digest {
			mismatch = true
			break
		}
	}
	if mismatch {
		fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! The backends disagree on the sweep digest.\n")
		return apperrors.ExitErrorMismatch
	}

	fmt.Fprintf(out, "\nGlobal Status: Success. All valid digests are consistent.\n")
	presenter.PresentResult(*firstValidResult, presOpts, out)
	return apperrors.ExitSuccess
}

// GetSweepersToRun determines which backends should be executed based on the
// requested backend name. Returns sweepers in alphabetically sorted order for
// consistent, reproducible behavior.
//
// Parameters:
//   - backend: A backend name, or "all" to run every registered backend.
//   - factory: The factory to retrieve implementations from.
//
// Returns:
//   - []sweep.Sweeper: A slice of backends to execute.
func GetSweepersToRun(backend string, factory sweep.Factory) []sweep.Sweeper {
	if backend == "all" {
		return factory.GetAll()
	}
	if s, err := factory.Get(backend); err == nil {
		return []sweep.Sweeper{s}
	}
	return nil
}
