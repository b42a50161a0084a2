package config

import (
	"flag"
	"fmt"
	"io"
	"math/bits"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/agbru/gfcalc/internal/errors"
)

// EnvPrefix is prepended to every environment variable the application reads.
const EnvPrefix = "GFCALC_"

// Default values applied when neither a flag nor an environment variable
// overrides them.
const (
	// DefaultPoly is x^8 + x^4 + x^3 + x^2 + 1, a primitive degree-8
	// polynomial, so both backends accept it out of the box.
	DefaultPoly    = 0x11D
	DefaultWidth   = 8
	DefaultBackend = "all"
	DefaultTimeout = 5 * time.Minute
	DefaultAddr    = ":8080"
)

// AppConfig holds the complete runtime configuration of the application.
// Values are resolved with the priority: CLI flags > environment variables
// (GFCALC_*) > defaults.
type AppConfig struct {
	// Poly is the defining polynomial in its integer encoding.
	Poly uint64
	// Width is the element storage width in bits: 8, 16, 32 or 64.
	Width int
	// Backend selects which arithmetic backend(s) to run: a backend name
	// or "all" to run every backend and cross-check the results.
	Backend string
	// SamplePoints bounds the operand values visited per sweep axis.
	// Zero lets the sweep choose its default.
	SamplePoints uint64
	// Timeout bounds the total execution time.
	Timeout time.Duration
	// Eval holds a one-shot expression ("0x53 * 0xCA") to evaluate instead
	// of running a sweep.
	Eval string
	// REPL enables the interactive evaluator.
	REPL bool
	// Serve enables the HTTP evaluation server.
	Serve bool
	// Addr is the listen address used with Serve.
	Addr string
	// Verbose enables detailed output, including memory statistics.
	Verbose bool
	// Quiet suppresses everything except the final result.
	Quiet bool
	// NoColor disables colored terminal output.
	NoColor bool
	// Theme names the color theme: "dark", "light" or "none".
	Theme string
}

// ParseConfig parses command-line arguments into an AppConfig, applying
// environment variable overrides for flags that were not set explicitly,
// then validates the result.
//
// Parameters:
//   - programName: The name used in usage output.
//   - args: The command-line arguments, without the program name.
//   - errWriter: Destination for flag parse errors and usage text.
//   - availableBackends: Backend names listed in the usage text.
//
// Returns:
//   - AppConfig: The resolved configuration.
//   - error: flag.ErrHelp when --help was requested, a ConfigError when
//     validation fails, or the raw flag parse error.
func ParseConfig(programName string, args []string, errWriter io.Writer, availableBackends []string) (AppConfig, error) {
	cfg := AppConfig{
		Poly:    DefaultPoly,
		Width:   DefaultWidth,
		Backend: DefaultBackend,
		Timeout: DefaultTimeout,
		Addr:    DefaultAddr,
		Theme:   "dark",
	}

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	polyStr := fs.String("poly", fmt.Sprintf("%#x", uint64(DefaultPoly)),
		"defining polynomial, hex or decimal (e.g. 0x11D)")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "element width in bits: 8, 16, 32 or 64")
	fs.StringVar(&cfg.Backend, "backend", cfg.Backend,
		fmt.Sprintf("backend to run: %s or \"all\"", strings.Join(availableBackends, ", ")))
	fs.Uint64Var(&cfg.SamplePoints, "sample", 0, "operand samples per sweep axis (0 = automatic)")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "global execution timeout")
	fs.StringVar(&cfg.Eval, "eval", "", "evaluate a single expression, e.g. \"0x53 * 0xCA\"")
	fs.BoolVar(&cfg.REPL, "repl", false, "start the interactive evaluator")
	fs.BoolVar(&cfg.Serve, "serve", false, "start the HTTP evaluation server")
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "HTTP listen address (with --serve)")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "enable detailed output")
	fs.BoolVar(&cfg.Verbose, "v", false, "shorthand for --verbose")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "suppress everything except the result")
	fs.BoolVar(&cfg.Quiet, "q", false, "shorthand for --quiet")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "disable colored output")
	fs.StringVar(&cfg.Theme, "theme", cfg.Theme, "color theme: dark, light or none")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	applyEnvOverrides(&cfg, polyStr, fs)

	poly, err := ParsePoly(*polyStr)
	if err != nil {
		return AppConfig{}, err
	}
	cfg.Poly = poly

	if err := cfg.Validate(availableBackends); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// ParsePoly parses a polynomial given in hex (0x11D), binary (0b100011101)
// or decimal (285) notation.
func ParsePoly(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, apperrors.NewConfigError("polynomial must not be empty")
	}
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, apperrors.NewConfigError("invalid polynomial %q: %v", s, err)
	}
	return v, nil
}

// Validate checks the configuration for internal consistency.
func (c AppConfig) Validate(availableBackends []string) error {
	switch c.Width {
	case 8, 16, 32, 64:
	default:
		return apperrors.NewConfigError("invalid width %d: must be 8, 16, 32 or 64", c.Width)
	}

	if c.Poly == 0 {
		return apperrors.NewConfigError("polynomial must not be zero")
	}
	if degree := bits.Len64(c.Poly) - 1; degree < 1 || degree > c.Width {
		return apperrors.NewConfigError(
			"polynomial %#x has degree %d, want within [1, %d] for width %d",
			c.Poly, degree, c.Width, c.Width)
	}

	if c.Backend != "all" {
		found := false
		for _, b := range availableBackends {
			if b == c.Backend {
				found = true
				break
			}
		}
		if !found {
			return apperrors.NewConfigError("unknown backend %q (available: %s, all)",
				c.Backend, strings.Join(availableBackends, ", "))
		}
	}

	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout must be positive, got %v", c.Timeout)
	}

	switch c.Theme {
	case "dark", "light", "none":
	default:
		return apperrors.NewConfigError("unknown theme %q: must be dark, light or none", c.Theme)
	}

	if c.Quiet && c.Verbose {
		return apperrors.NewConfigError("--quiet and --verbose are mutually exclusive")
	}
	return nil
}

// Degree returns the degree of the configured polynomial.
func (c AppConfig) Degree() int {
	return bits.Len64(c.Poly) - 1
}
