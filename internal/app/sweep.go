package app

import (
	"context"
	"io"
	"os/signal"
	"syscall"

	"github.com/agbru/gfcalc/internal/cli"
	apperrors "github.com/agbru/gfcalc/internal/errors"
	"github.com/agbru/gfcalc/internal/metrics"
	"github.com/agbru/gfcalc/internal/orchestration"
	"github.com/agbru/gfcalc/internal/sweep"
)

// runSweeps orchestrates the verification sweep command: it runs every
// selected backend over the configured field and cross-checks the digests.
func (a *Application) runSweeps(ctx context.Context, out io.Writer) int {
	// Setup lifecycle (timeout + signals)
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	sweepersToRun := orchestration.GetSweepersToRun(a.Config.Backend, a.Factory)

	// Skip verbose output in quiet mode
	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, out)
		cli.PrintExecutionMode(sweepersToRun, out)
	}

	// Choose progress reporter based on quiet mode
	var progressReporter orchestration.ProgressReporter
	progressOut := out
	if a.Config.Quiet {
		progressOut = io.Discard
		progressReporter = orchestration.NullProgressReporter{}
	} else {
		progressReporter = cli.CLIProgressReporter{}
	}

	var collector *metrics.MemoryCollector
	var before metrics.MemorySnapshot
	if a.Config.Verbose {
		collector = metrics.NewMemoryCollector()
		before = collector.Snapshot()
	}

	opts := sweep.Options{
		Poly:         a.Config.Poly,
		Width:        a.Config.Width,
		SamplePoints: a.Config.SamplePoints,
	}
	results := orchestration.ExecuteSweeps(ctx, sweepersToRun, opts, progressReporter, progressOut)

	exitCode := a.analyzeResults(results, out)

	if a.Config.Verbose && collector != nil {
		after := collector.Snapshot()
		delta := after.DeltaSince(before)
		cli.DisplayMemoryStats(after.HeapAlloc, after.Sys, delta.GCCycles, after.PauseTotalNs-before.PauseTotalNs, out)
	}

	return exitCode
}

// analyzeResults turns sweep results into terminal output and an exit code.
func (a *Application) analyzeResults(results []orchestration.SweepResult, out io.Writer) int {
	if a.Config.Quiet {
		if best := findBestResult(results); best != nil {
			cli.DisplayQuietResult(out, *best)
			return apperrors.ExitSuccess
		}
	}

	presOpts := orchestration.PresentationOptions{
		Poly:    a.Config.Poly,
		Width:   a.Config.Width,
		Verbose: a.Config.Verbose,
	}
	return orchestration.AnalyzeComparisonResults(results, presOpts, cli.CLIResultPresenter{}, cli.CLIResultPresenter{}, out)
}

// findBestResult returns the fastest successful result, or nil when every
// backend failed.
func findBestResult(results []orchestration.SweepResult) *orchestration.SweepResult {
	var best *orchestration.SweepResult
	for i := range results {
		if results[i].Err == nil {
			if best == nil || results[i].Duration < best.Duration {
				best = &results[i]
			}
		}
	}
	return best
}
