package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	apperrors "github.com/agbru/gfcalc/internal/errors"
	"github.com/agbru/gfcalc/internal/format"
	"github.com/agbru/gfcalc/internal/orchestration"
	"github.com/agbru/gfcalc/internal/progress"
	"github.com/agbru/gfcalc/internal/ui"
)

// CLIProgressReporter implements orchestration.ProgressReporter for CLI output.
// It wraps the DisplayProgress function to provide a spinner and progress bar
// display during sweeps.
type CLIProgressReporter struct{}

// Verify that CLIProgressReporter implements orchestration.ProgressReporter.
var _ orchestration.ProgressReporter = CLIProgressReporter{}

// DisplayProgress displays a spinner and progress bar for ongoing sweeps.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numBackends int, out io.Writer) {
	DisplayProgress(wg, progressChan, numBackends, out)
}

// CLIResultPresenter implements orchestration.ResultPresenter for CLI output.
// It provides formatted, colorized output for sweep results in the
// command-line interface.
type CLIResultPresenter struct{}

// Verify interface compliance.
var (
	_ orchestration.ResultPresenter   = CLIResultPresenter{}
	_ orchestration.DurationFormatter = CLIResultPresenter{}
	_ orchestration.ErrorHandler      = CLIResultPresenter{}
)

// PresentComparisonTable displays the comparison summary table with backend
// names, durations, digests, and status in a formatted tabular layout.
// Uses manual padding to correctly handle ANSI color codes.
func (CLIResultPresenter) PresentComparisonTable(results []orchestration.SweepResult, out io.Writer) {
	fmt.Fprintf(out, "\n--- Comparison Summary ---\n")

	// Find the maximum column widths for proper alignment
	maxNameLen := 7     // "Backend" header length
	maxDurationLen := 8 // "Duration" header length
	for _, res := range results {
		if len(res.Name) > maxNameLen {
			maxNameLen = len(res.Name)
		}
		if d := formatDurationCell(res.Duration); len(d) > maxDurationLen {
			maxDurationLen = len(d)
		}
	}

	// Print header with proper padding
	fmt.Fprintf(out, "%sBackend%s%s   %sDuration%s%s   %sDigest%s               %sStatus%s\n",
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxNameLen-7),
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxDurationLen-8),
		ui.ColorUnderline(), ui.ColorReset(),
		ui.ColorUnderline(), ui.ColorReset())

	// Print each result row
	for _, res := range results {
		var status, digest string
		if res.Err != nil {
			status = fmt.Sprintf("%s❌ Failure (%v)%s", ui.ColorRed(), res.Err, ui.ColorReset())
			digest = padRight("-", 17)
		} else {
			status = fmt.Sprintf("%s✅ Success%s", ui.ColorGreen(), ui.ColorReset())
			digest = fmt.Sprintf("0x%016x", res.Summary.Digest)
		}
		duration := formatDurationCell(res.Duration)
		fmt.Fprintf(out, "%s%s%s%s   %s%s%s%s   %s%s%s   %s\n",
			ui.ColorBlue(), res.Name, ui.ColorReset(), padRight("", maxNameLen-len(res.Name)),
			ui.ColorYellow(), duration, ui.ColorReset(), padRight("", maxDurationLen-len(duration)),
			ui.ColorCyan(), digest, ui.ColorReset(),
			status)
	}
}

// formatDurationCell formats a duration for the table, flooring at 1µs.
func formatDurationCell(d time.Duration) string {
	if d == 0 {
		return "< 1µs"
	}
	return format.FormatExecutionDuration(d)
}

// padRight returns s extended with spaces to the given extra length.
func padRight(s string, length int) string {
	if length <= 0 {
		return s
	}
	return s + fmt.Sprintf("%*s", length, "")
}

// PresentResult displays the final sweep outcome.
func (CLIResultPresenter) PresentResult(result orchestration.SweepResult, opts orchestration.PresentationOptions, out io.Writer) {
	DisplaySweepResult(result, opts, out)
}

// DisplaySweepResult prints the sweep summary for the fastest consistent
// backend, with throughput when the duration is measurable.
func DisplaySweepResult(result orchestration.SweepResult, opts orchestration.PresentationOptions, out io.Writer) {
	degree := degreeOf(opts.Poly)
	fmt.Fprintf(out, "\nField:   %sGF(2^%d)%s, polynomial %s%#x%s\n",
		ui.ColorMagenta(), degree, ui.ColorReset(),
		ui.ColorCyan(), opts.Poly, ui.ColorReset())
	fmt.Fprintf(out, "Backend: %s%s%s (fastest)\n", ui.ColorBlue(), result.Name, ui.ColorReset())
	fmt.Fprintf(out, "Digest:  %s0x%016x%s\n", ui.ColorCyan(), result.Summary.Digest, ui.ColorReset())

	ops := format.FormatNumberString(fmt.Sprintf("%d", result.Summary.Ops))
	if result.Duration > 0 {
		rate := float64(result.Summary.Ops) / result.Duration.Seconds()
		fmt.Fprintf(out, "Ops:     %s field operations in %s (%s/s)\n",
			ops, format.FormatExecutionDuration(result.Duration), formatRate(rate))
	} else {
		fmt.Fprintf(out, "Ops:     %s field operations\n", ops)
	}
}

// formatRate renders an operations-per-second rate with a metric suffix.
func formatRate(rate float64) string {
	switch {
	case rate >= 1e9:
		return fmt.Sprintf("%.1f Gop", rate/1e9)
	case rate >= 1e6:
		return fmt.Sprintf("%.1f Mop", rate/1e6)
	case rate >= 1e3:
		return fmt.Sprintf("%.1f kop", rate/1e3)
	default:
		return fmt.Sprintf("%.0f op", rate)
	}
}

// FormatDuration formats a duration for display using the CLI's standard
// duration formatting.
func (CLIResultPresenter) FormatDuration(d time.Duration) string {
	return format.FormatExecutionDuration(d)
}

// HandleError prints a colorized diagnostic for a failed run and returns the
// matching exit code.
func (CLIResultPresenter) HandleError(err error, duration time.Duration, out io.Writer) int {
	if err == nil {
		return apperrors.ExitSuccess
	}
	code := apperrors.ExitCodeFor(err)
	switch code {
	case apperrors.ExitErrorTimeout:
		fmt.Fprintf(out, "%sTimed out after %s: %v%s\n",
			ui.ColorRed(), format.FormatExecutionDuration(duration), err, ui.ColorReset())
	case apperrors.ExitErrorCanceled:
		fmt.Fprintf(out, "%sCanceled: %v%s\n", ui.ColorYellow(), err, ui.ColorReset())
	default:
		fmt.Fprintf(out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
	}
	return code
}

// DisplayMemoryStats shows memory statistics after a run.
func DisplayMemoryStats(heapAlloc, totalSys uint64, numGC uint32, pauseTotalNs uint64, out io.Writer) {
	fmt.Fprintf(out, "\nMemory Stats:\n")
	fmt.Fprintf(out, "  Peak heap:       %s\n", format.FormatBytes(heapAlloc))
	fmt.Fprintf(out, "  Total from OS:   %s\n", format.FormatBytes(totalSys))
	fmt.Fprintf(out, "  GC cycles:       %d\n", numGC)
	if pauseTotalNs > 0 {
		fmt.Fprintf(out, "  GC pause total:  %.2fms\n", float64(pauseTotalNs)/1e6)
	} else {
		fmt.Fprintf(out, "  GC pause total:  0ms\n")
	}
}
