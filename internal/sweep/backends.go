package sweep

import (
	"context"
	"fmt"
	"sort"

	"github.com/agbru/gfcalc/gf2"
	"github.com/agbru/gfcalc/internal/progress"
)

// Backend names as exposed on the command line and in reports.
const (
	NameComputation = "computation"
	NameTable       = "table"
)

// computationSweeper sweeps through the carry-less multiply backend.
type computationSweeper struct{}

func (computationSweeper) Name() string { return NameComputation }

func (computationSweeper) Sweep(ctx context.Context, progressChan chan<- progress.ProgressUpdate, backendIndex int, opts Options) (Summary, error) {
	switch opts.Width {
	case 8:
		return sweepComputation[uint8](ctx, progressChan, backendIndex, opts)
	case 16:
		return sweepComputation[uint16](ctx, progressChan, backendIndex, opts)
	case 32:
		return sweepComputation[uint32](ctx, progressChan, backendIndex, opts)
	case 64:
		return sweepComputation[uint64](ctx, progressChan, backendIndex, opts)
	default:
		return Summary{}, fmt.Errorf("unsupported width %d: must be 8, 16, 32 or 64", opts.Width)
	}
}

func sweepComputation[W gf2.Word](ctx context.Context, progressChan chan<- progress.ProgressUpdate, backendIndex int, opts Options) (Summary, error) {
	fd, err := gf2.NewField[W](opts.Poly)
	if err != nil {
		return Summary{}, err
	}
	return runSweep(ctx, progressChan, backendIndex, fd, opts)
}

// tableSweeper sweeps through the exp/log table backend. Table construction
// rejects widths above 16 and non-primitive polynomials; the resulting error
// is reported as this backend's outcome rather than a global failure.
type tableSweeper struct{}

func (tableSweeper) Name() string { return NameTable }

func (tableSweeper) Sweep(ctx context.Context, progressChan chan<- progress.ProgressUpdate, backendIndex int, opts Options) (Summary, error) {
	switch opts.Width {
	case 8:
		return sweepTable[uint8](ctx, progressChan, backendIndex, opts)
	case 16:
		return sweepTable[uint16](ctx, progressChan, backendIndex, opts)
	case 32, 64:
		return Summary{}, fmt.Errorf("table backend supports widths up to 16 bits, got %d", opts.Width)
	default:
		return Summary{}, fmt.Errorf("unsupported width %d: must be 8, 16, 32 or 64", opts.Width)
	}
}

func sweepTable[W gf2.Word](ctx context.Context, progressChan chan<- progress.ProgressUpdate, backendIndex int, opts Options) (Summary, error) {
	fd, err := gf2.NewLutField[W](opts.Poly)
	if err != nil {
		return Summary{}, err
	}
	return runSweep(ctx, progressChan, backendIndex, fd, opts)
}

// Factory provides named access to the available sweep backends.
type Factory interface {
	// Get returns the sweeper registered under name.
	Get(name string) (Sweeper, error)
	// GetAll returns all sweepers in List order.
	GetAll() []Sweeper
	// List returns the sorted backend names.
	List() []string
}

type defaultFactory struct {
	sweepers map[string]Sweeper
}

// NewDefaultFactory returns a factory holding both arithmetic backends.
func NewDefaultFactory() Factory {
	return &defaultFactory{
		sweepers: map[string]Sweeper{
			NameComputation: computationSweeper{},
			NameTable:       tableSweeper{},
		},
	}
}

func (f *defaultFactory) Get(name string) (Sweeper, error) {
	s, ok := f.sweepers[name]
	if !ok {
		return nil, fmt.Errorf("unknown backend %q (available: %v)", name, f.List())
	}
	return s, nil
}

func (f *defaultFactory) GetAll() []Sweeper {
	names := f.List()
	all := make([]Sweeper, 0, len(names))
	for _, n := range names {
		all = append(all, f.sweepers[n])
	}
	return all
}

func (f *defaultFactory) List() []string {
	names := make([]string, 0, len(f.sweepers))
	for n := range f.sweepers {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
