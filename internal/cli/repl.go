package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/bits"
	"os"
	"strconv"
	"strings"

	"github.com/agbru/gfcalc/internal/config"
	"github.com/agbru/gfcalc/internal/sweep"
	"github.com/agbru/gfcalc/internal/ui"
)

// REPL represents an interactive field arithmetic session. The field in
// effect (polynomial, width, backend) can be changed between evaluations.
type REPL struct {
	poly    uint64
	width   int
	backend string
	factory sweep.Factory
	in      io.Reader
	out     io.Writer
}

// NewREPL creates a new REPL instance seeded from the application
// configuration.
//
// Parameters:
//   - cfg: The application configuration.
//   - factory: The backend factory, used for backend name validation.
//
// Returns:
//   - *REPL: A new REPL instance.
func NewREPL(cfg config.AppConfig, factory sweep.Factory) *REPL {
	backend := cfg.Backend
	if backend == "all" {
		backend = sweep.NameComputation
	}
	return &REPL{
		poly:    cfg.Poly,
		width:   cfg.Width,
		backend: backend,
		factory: factory,
		in:      os.Stdin,
		out:     os.Stdout,
	}
}

// SetInput sets a custom input reader (useful for testing).
func (r *REPL) SetInput(in io.Reader) {
	r.in = in
}

// SetOutput sets a custom output writer (useful for testing).
func (r *REPL) SetOutput(out io.Writer) {
	r.out = out
}

// Start begins the interactive REPL session.
// It continuously reads user input and processes commands until
// the user exits or EOF is reached.
func (r *REPL) Start() {
	r.printBanner()
	r.printHelp()
	fmt.Fprintln(r.out)

	reader := bufio.NewReader(r.in)

	for {
		fmt.Fprint(r.out, ui.ColorGreen()+"gf> "+ui.ColorReset())

		input, err := reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(r.out, "\nGoodbye!")
				return
			}
			fmt.Fprintf(r.out, "%sRead error: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
			continue
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if !r.processCommand(input) {
			return // Exit command received
		}
	}
}

// printBanner displays the REPL welcome banner.
func (r *REPL) printBanner() {
	fmt.Fprintf(r.out, "\n%s╔══════════════════════════════════════════════════╗%s\n", ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s║%s        %sGF(2^M) Calculator - Interactive Mode%s             %s║%s\n",
		ui.ColorCyan(), ui.ColorReset(), ui.ColorBold(), ui.ColorReset(), ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s╚══════════════════════════════════════════════════╝%s\n\n", ui.ColorCyan(), ui.ColorReset())
}

// printHelp displays available commands.
func (r *REPL) printHelp() {
	fmt.Fprintf(r.out, "%sAvailable commands:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %s<a> <op> <b>%s   - Evaluate, e.g. \"0x53 * 0xCA\" (ops: + - * /)\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sinv <a>%s        - Multiplicative inverse of a\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %spoly <p>%s       - Change the defining polynomial\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %swidth <w>%s      - Change the element width (8, 16, 32, 64)\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sbackend <name>%s - Change backend (%s)\n", ui.ColorYellow(), ui.ColorReset(), strings.Join(r.factory.List(), ", "))
	fmt.Fprintf(r.out, "  %sstatus%s         - Display current configuration\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %shelp%s           - Display this help\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sexit%s / %squit%s    - Exit interactive mode\n", ui.ColorYellow(), ui.ColorReset(), ui.ColorYellow(), ui.ColorReset())
}

// processCommand parses and executes a user command.
// Returns false if the REPL should exit.
func (r *REPL) processCommand(input string) bool {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return true
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "poly", "p":
		r.cmdPoly(args)
	case "width", "w":
		r.cmdWidth(args)
	case "backend", "b":
		r.cmdBackend(args)
	case "status", "st":
		r.cmdStatus()
	case "help", "h", "?":
		r.printHelp()
	case "exit", "quit", "q":
		fmt.Fprintf(r.out, "%sGoodbye!%s\n", ui.ColorGreen(), ui.ColorReset())
		return false
	default:
		r.evaluate(input)
	}

	return true
}

// evaluate treats the input as an arithmetic expression in the current field.
func (r *REPL) evaluate(input string) {
	op, a, b, err := ParseExpression(input)
	if err != nil {
		fmt.Fprintf(r.out, "%s%v%s\n", ui.ColorRed(), err, ui.ColorReset())
		fmt.Fprintf(r.out, "Type %shelp%s to see available commands.\n", ui.ColorYellow(), ui.ColorReset())
		return
	}

	result, err := Evaluate(EvalRequest{
		Poly: r.poly, Width: r.width, Backend: r.backend,
		Op: op, A: a, B: b,
	})
	if err != nil {
		fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}
	fmt.Fprintf(r.out, "= %s%s%s\n", ui.ColorGreen(), result, ui.ColorReset())
}

// cmdPoly handles the "poly" command.
func (r *REPL) cmdPoly(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: poly <p>%s\n", ui.ColorRed(), ui.ColorReset())
		return
	}

	poly, err := config.ParsePoly(args[0])
	if err != nil {
		fmt.Fprintf(r.out, "%s%v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}
	if degree := bits.Len64(poly) - 1; degree < 1 || degree > r.width {
		fmt.Fprintf(r.out, "%sPolynomial %#x has degree %d; want within [1, %d] for width %d%s\n",
			ui.ColorRed(), poly, degree, r.width, r.width, ui.ColorReset())
		return
	}

	r.poly = poly
	fmt.Fprintf(r.out, "Field changed to: %sGF(2^%d)%s over %s%#x%s\n",
		ui.ColorMagenta(), degreeOf(poly), ui.ColorReset(),
		ui.ColorCyan(), poly, ui.ColorReset())
}

// cmdWidth handles the "width" command.
func (r *REPL) cmdWidth(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: width <w>%s\n", ui.ColorRed(), ui.ColorReset())
		return
	}

	w, err := strconv.Atoi(args[0])
	if err != nil || (w != 8 && w != 16 && w != 32 && w != 64) {
		fmt.Fprintf(r.out, "%sInvalid width: %s (want 8, 16, 32 or 64)%s\n", ui.ColorRed(), args[0], ui.ColorReset())
		return
	}
	if degreeOf(r.poly) > w {
		fmt.Fprintf(r.out, "%sCurrent polynomial %#x does not fit width %d; change poly first%s\n",
			ui.ColorRed(), r.poly, w, ui.ColorReset())
		return
	}

	r.width = w
	fmt.Fprintf(r.out, "Element width changed to: %s%d%s bits\n", ui.ColorCyan(), w, ui.ColorReset())
}

// cmdBackend handles the "backend" command.
func (r *REPL) cmdBackend(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: backend <name>%s\n", ui.ColorRed(), ui.ColorReset())
		fmt.Fprintf(r.out, "Available backends: %s\n", strings.Join(r.factory.List(), ", "))
		return
	}

	name := strings.ToLower(args[0])
	if _, err := r.factory.Get(name); err != nil {
		fmt.Fprintf(r.out, "%sUnknown backend: %s%s\n", ui.ColorRed(), name, ui.ColorReset())
		fmt.Fprintf(r.out, "Available backends: %s\n", strings.Join(r.factory.List(), ", "))
		return
	}

	r.backend = name
	fmt.Fprintf(r.out, "Backend changed to: %s%s%s\n", ui.ColorGreen(), name, ui.ColorReset())
}

// cmdStatus displays current REPL configuration.
func (r *REPL) cmdStatus() {
	fmt.Fprintf(r.out, "\n%sCurrent configuration:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  Field:    %sGF(2^%d)%s\n", ui.ColorCyan(), degreeOf(r.poly), ui.ColorReset())
	fmt.Fprintf(r.out, "  Poly:     %s%#x%s\n", ui.ColorCyan(), r.poly, ui.ColorReset())
	fmt.Fprintf(r.out, "  Width:    %s%d%s bits\n", ui.ColorCyan(), r.width, ui.ColorReset())
	fmt.Fprintf(r.out, "  Backend:  %s%s%s\n", ui.ColorCyan(), r.backend, ui.ColorReset())
	fmt.Fprintln(r.out)
}
