// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplaySweepResult], [DisplayQuietResult], [DisplayProgress].
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//     Examples: [FormatQuietResult].
//
//   - Print* functions write plain informational output.
//     Examples: [PrintExecutionConfig], [PrintExecutionMode].

package cli

import (
	"fmt"
	"io"

	"github.com/agbru/gfcalc/internal/orchestration"
)

// FormatQuietResult formats a sweep result for quiet mode output.
// Returns a single-line digest suitable for scripting.
//
// Parameters:
//   - result: The sweep result of the fastest successful backend.
//
// Returns:
//   - string: The formatted digest string.
func FormatQuietResult(result orchestration.SweepResult) string {
	return fmt.Sprintf("0x%016x", result.Summary.Digest)
}

// DisplayQuietResult outputs a sweep result in quiet mode (minimal output).
//
// Parameters:
//   - out: The output writer.
//   - result: The sweep result to display.
func DisplayQuietResult(out io.Writer, result orchestration.SweepResult) {
	fmt.Fprintln(out, FormatQuietResult(result))
}
