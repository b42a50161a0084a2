package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/agbru/gfcalc/internal/config"
	"github.com/agbru/gfcalc/internal/sweep"
)

func newTestREPL(t *testing.T, script string) (*REPL, *bytes.Buffer) {
	t.Helper()
	cfg := config.AppConfig{
		Poly:    config.DefaultPoly,
		Width:   config.DefaultWidth,
		Backend: "all",
	}
	r := NewREPL(cfg, sweep.NewDefaultFactory())
	out := &bytes.Buffer{}
	r.SetInput(strings.NewReader(script))
	r.SetOutput(out)
	return r, out
}

func TestREPLEvaluateExpression(t *testing.T) {
	r, out := newTestREPL(t, "poly 0x11B\n0x53 * 0xCA\nexit\n")
	r.Start()

	got := out.String()
	if !strings.Contains(got, "= 0x01") {
		t.Errorf("Expected product 0x01 in output, got:\n%s", got)
	}
	if !strings.Contains(got, "Goodbye!") {
		t.Errorf("Expected goodbye message on exit, got:\n%s", got)
	}
}

func TestREPLInverse(t *testing.T) {
	r, out := newTestREPL(t, "poly 0x11B\ninv 0x53\nquit\n")
	r.Start()

	if got := out.String(); !strings.Contains(got, "= 0xCA") {
		t.Errorf("Expected inverse 0xCA in output, got:\n%s", got)
	}
}

func TestREPLDefaultsToComputationBackend(t *testing.T) {
	r, _ := newTestREPL(t, "")
	if r.backend != sweep.NameComputation {
		t.Errorf("Expected backend %q for config value \"all\", got %q", sweep.NameComputation, r.backend)
	}
}

func TestREPLPolyCommand(t *testing.T) {
	r, out := newTestREPL(t, "poly 0x11B\n0x53 * 0xCA\nexit\n")
	r.Start()

	got := out.String()
	if !strings.Contains(got, "Field changed to:") {
		t.Errorf("Expected field change confirmation, got:\n%s", got)
	}
	// 0x53 * 0xCA = 0x01 holds under 0x11B (the AES polynomial).
	if !strings.Contains(got, "= 0x01") {
		t.Errorf("Expected product 0x01 under the new polynomial, got:\n%s", got)
	}
	if r.poly != 0x11B {
		t.Errorf("Expected poly 0x11B after command, got %#x", r.poly)
	}
}

func TestREPLPolyRejectsOversized(t *testing.T) {
	r, out := newTestREPL(t, "poly 0x1002B\nexit\n")
	r.Start()

	if !strings.Contains(out.String(), "degree") {
		t.Errorf("Expected degree error for poly exceeding width, got:\n%s", out.String())
	}
	if r.poly != config.DefaultPoly {
		t.Errorf("Poly should be unchanged after rejection, got %#x", r.poly)
	}
}

func TestREPLWidthCommand(t *testing.T) {
	r, out := newTestREPL(t, "width 16\nstatus\nexit\n")
	r.Start()

	got := out.String()
	if !strings.Contains(got, "Element width changed to:") {
		t.Errorf("Expected width change confirmation, got:\n%s", got)
	}
	if !strings.Contains(got, "16") {
		t.Errorf("Expected new width in status output, got:\n%s", got)
	}
	if r.width != 16 {
		t.Errorf("Expected width 16 after command, got %d", r.width)
	}
}

func TestREPLWidthRejectsInvalid(t *testing.T) {
	r, out := newTestREPL(t, "width 12\nexit\n")
	r.Start()

	if !strings.Contains(out.String(), "Invalid width") {
		t.Errorf("Expected invalid width error, got:\n%s", out.String())
	}
	if r.width != config.DefaultWidth {
		t.Errorf("Width should be unchanged after rejection, got %d", r.width)
	}
}

func TestREPLBackendCommand(t *testing.T) {
	r, out := newTestREPL(t, "backend table\nexit\n")
	r.Start()

	if !strings.Contains(out.String(), "Backend changed to:") {
		t.Errorf("Expected backend change confirmation, got:\n%s", out.String())
	}
	if r.backend != sweep.NameTable {
		t.Errorf("Expected backend %q, got %q", sweep.NameTable, r.backend)
	}
}

func TestREPLBackendRejectsUnknown(t *testing.T) {
	r, out := newTestREPL(t, "backend gmp\nexit\n")
	r.Start()

	got := out.String()
	if !strings.Contains(got, "Unknown backend: gmp") {
		t.Errorf("Expected unknown backend error, got:\n%s", got)
	}
	if !strings.Contains(got, "Available backends:") {
		t.Errorf("Expected backend listing after rejection, got:\n%s", got)
	}
}

func TestREPLStatus(t *testing.T) {
	r, out := newTestREPL(t, "status\nexit\n")
	r.Start()

	got := out.String()
	for _, want := range []string{"Current configuration:", "GF(2^8)", "0x11d", "8", sweep.NameComputation} {
		if !strings.Contains(got, want) {
			t.Errorf("Expected %q in status output, got:\n%s", want, got)
		}
	}
}

func TestREPLMalformedExpression(t *testing.T) {
	r, out := newTestREPL(t, "this is not math\nexit\n")
	r.Start()

	if !strings.Contains(out.String(), "help") {
		t.Errorf("Expected hint pointing at help, got:\n%s", out.String())
	}
}

func TestREPLExitOnEOF(t *testing.T) {
	r, out := newTestREPL(t, "0x02 + 0x03\n")
	r.Start()

	got := out.String()
	if !strings.Contains(got, "= 0x01") {
		t.Errorf("Expected xor sum 0x01 in output, got:\n%s", got)
	}
	if !strings.Contains(got, "Goodbye!") {
		t.Errorf("Expected goodbye message on EOF, got:\n%s", got)
	}
}
