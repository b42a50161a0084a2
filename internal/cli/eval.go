package cli

import (
	"fmt"
	"io"
	"math/bits"
	"runtime"
	"strconv"
	"strings"

	"github.com/agbru/gfcalc/gf2"
	"github.com/agbru/gfcalc/internal/config"
	"github.com/agbru/gfcalc/internal/sweep"
	"github.com/agbru/gfcalc/internal/ui"
)

// PrintExecutionConfig displays the current execution configuration to the user.
// It shows the field under test, the timeout, and environment details.
//
// Parameters:
//   - cfg: The application configuration.
//   - out: The writer for standard output.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Sweeping %sGF(2^%d)%s over polynomial %s%#x%s with a timeout of %s%s%s.\n",
		ui.ColorMagenta(), cfg.Degree(), ui.ColorReset(),
		ui.ColorCyan(), cfg.Poly, ui.ColorReset(),
		ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(), ui.ColorCyan(), runtime.Version(), ui.ColorReset())
	fmt.Fprintf(out, "Element width: %s%d%s bits.\n", ui.ColorCyan(), cfg.Width, ui.ColorReset())
}

// PrintExecutionMode displays the execution mode (single backend vs comparison).
//
// Parameters:
//   - sweepers: The slice of backends that will be executed.
//   - out: The writer for standard output.
func PrintExecutionMode(sweepers []sweep.Sweeper, out io.Writer) {
	var modeDesc string
	if len(sweepers) > 1 {
		modeDesc = "Parallel cross-check of all backends"
	} else {
		modeDesc = fmt.Sprintf("Single sweep with the %s%s%s backend",
			ui.ColorGreen(), sweepers[0].Name(), ui.ColorReset())
	}
	fmt.Fprintf(out, "Execution mode: %s.\n", modeDesc)
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}

// degreeOf returns the degree of a polynomial in its integer encoding.
func degreeOf(poly uint64) int {
	return bits.Len64(poly) - 1
}

// EvalRequest describes a single arithmetic evaluation.
type EvalRequest struct {
	// Poly is the defining polynomial.
	Poly uint64
	// Width is the element width in bits.
	Width int
	// Backend selects the arithmetic backend; "all" falls back to the
	// computation backend, which supports every valid field.
	Backend string
	// Op is one of "+", "-", "*", "/", "inv".
	Op string
	// A and B are the operands. B is ignored for "inv".
	A, B uint64
}

// ParseExpression parses an expression of the form "a op b" or "inv a",
// with operands in hex, binary or decimal notation.
//
// Returns:
//   - op: The operator token.
//   - a, b: The parsed operands (b is zero for "inv").
//   - error: A description of the malformed input.
func ParseExpression(expr string) (op string, a, b uint64, err error) {
	fields := strings.Fields(expr)
	switch len(fields) {
	case 2:
		if fields[0] != "inv" {
			return "", 0, 0, fmt.Errorf("expected \"inv <a>\", got %q", expr)
		}
		a, err = parseOperand(fields[1])
		if err != nil {
			return "", 0, 0, err
		}
		return "inv", a, 0, nil
	case 3:
		op = fields[1]
		switch op {
		case "+", "-", "*", "/":
		default:
			return "", 0, 0, fmt.Errorf("unknown operator %q: want +, -, *, / or inv", op)
		}
		if a, err = parseOperand(fields[0]); err != nil {
			return "", 0, 0, err
		}
		if b, err = parseOperand(fields[2]); err != nil {
			return "", 0, 0, err
		}
		return op, a, b, nil
	default:
		return "", 0, 0, fmt.Errorf("expected \"<a> <op> <b>\" or \"inv <a>\", got %q", expr)
	}
}

func parseOperand(s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid operand %q: %v", s, err)
	}
	return v, nil
}

// Evaluate performs a single field operation and returns the formatted result.
func Evaluate(req EvalRequest) (string, error) {
	switch req.Width {
	case 8:
		return evalIn[uint8](req)
	case 16:
		return evalIn[uint16](req)
	case 32:
		return evalIn[uint32](req)
	case 64:
		return evalIn[uint64](req)
	default:
		return "", fmt.Errorf("unsupported width %d: must be 8, 16, 32 or 64", req.Width)
	}
}

func evalIn[W gf2.Word](req EvalRequest) (string, error) {
	var fd gf2.Backend[W]
	switch req.Backend {
	case sweep.NameTable:
		lut, err := gf2.NewLutField[W](req.Poly)
		if err != nil {
			return "", err
		}
		fd = lut
	default:
		f, err := gf2.NewField[W](req.Poly)
		if err != nil {
			return "", err
		}
		fd = f
	}

	// Range-check the raw operands before narrowing to W: the conversion
	// would silently truncate values wider than the storage.
	for _, raw := range []uint64{req.A, req.B} {
		if n := fd.NumElem(); n != 0 && raw >= n {
			return "", fmt.Errorf("operand %#x is outside GF(2^%d)", raw, fd.M())
		}
	}
	a := fd.New(W(req.A))
	b := fd.New(W(req.B))

	var res gf2.Element[W]
	var err error
	switch req.Op {
	case "+":
		res = a.Add(b)
	case "-":
		res = a.Sub(b)
	case "*":
		res = a.Mul(b)
	case "/":
		res, err = a.Div(b)
	case "inv":
		res, err = a.Inverse()
	default:
		return "", fmt.Errorf("unknown operator %q", req.Op)
	}
	if err != nil {
		return "", err
	}
	return res.String(), nil
}

// RunEval evaluates a one-shot expression from the command line and prints
// the result.
//
// Returns an error for malformed expressions or failed operations; the caller
// maps it to an exit code.
func RunEval(cfg config.AppConfig, out io.Writer) error {
	op, a, b, err := ParseExpression(cfg.Eval)
	if err != nil {
		return err
	}
	result, err := Evaluate(EvalRequest{
		Poly: cfg.Poly, Width: cfg.Width, Backend: cfg.Backend,
		Op: op, A: a, B: b,
	})
	if err != nil {
		return err
	}
	if cfg.Quiet {
		fmt.Fprintln(out, result)
		return nil
	}
	fmt.Fprintf(out, "%s%s%s in GF(2^%d) over %s%#x%s = %s%s%s\n",
		ui.ColorYellow(), strings.TrimSpace(cfg.Eval), ui.ColorReset(),
		degreeOf(cfg.Poly),
		ui.ColorCyan(), cfg.Poly, ui.ColorReset(),
		ui.ColorGreen(), result, ui.ColorReset())
	return nil
}
