package sweep

import (
	"context"
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math"

	"github.com/agbru/gfcalc/gf2"
	"github.com/agbru/gfcalc/internal/progress"
)

// DefaultSamplePoints bounds the number of distinct operand values visited
// per axis when a field is too large to sweep exhaustively. 4096 points give
// roughly 16.7 million operand pairs, which keeps a sampled sweep in the
// sub-second range on current hardware.
const DefaultSamplePoints = 4096

// Options configures a verification sweep.
type Options struct {
	// Poly is the defining polynomial in its integer encoding.
	Poly uint64
	// Width is the storage width in bits: 8, 16, 32 or 64.
	Width int
	// SamplePoints bounds the operand values visited per axis. Zero selects
	// DefaultSamplePoints. Fields smaller than the bound are swept
	// exhaustively regardless.
	SamplePoints uint64
}

// Summary is the outcome of a completed sweep.
type Summary struct {
	// Digest is the FNV-1a fold of every operation result in visit order.
	Digest uint64
	// Ops is the number of field operations folded into the digest.
	Ops uint64
}

// Sweeper runs a verification sweep through one field arithmetic backend.
//
// Implementations must visit operand pairs in the same deterministic order so
// that digests are comparable across backends. Progress updates are sent on
// progressChan tagged with backendIndex; sends must not block, updates may be
// dropped when the consumer lags.
type Sweeper interface {
	// Name returns the backend identifier, e.g. "computation" or "table".
	Name() string
	// Sweep runs the sweep until completion or context cancellation.
	Sweep(ctx context.Context, progressChan chan<- progress.ProgressUpdate, backendIndex int, opts Options) (Summary, error)
}

// checkInterval is how many outer-loop iterations pass between context checks
// and progress updates.
const checkInterval = 64

// runSweep is the shared sweep loop. The backend determines the arithmetic;
// everything else, including the visit order the digests depend on, lives
// here.
func runSweep[W gf2.Word](ctx context.Context, progressChan chan<- progress.ProgressUpdate, backendIndex int, fd gf2.Backend[W], opts Options) (Summary, error) {
	numElem := fd.NumElem()
	if numElem == 0 {
		// GF(2^64): the element count wraps, saturate the sample range.
		numElem = math.MaxUint64
	}

	points := opts.SamplePoints
	if points == 0 {
		points = DefaultSamplePoints
	}
	if points > numElem {
		points = numElem
	}
	stride := numElem / points

	h := fnv.New64a()
	var buf [8]byte
	var ops uint64
	write := func(v W) {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		h.Write(buf[:])
		ops++
	}

	one := fd.One()
	for i := uint64(0); i < points; i++ {
		if i%checkInterval == 0 {
			select {
			case <-ctx.Done():
				return Summary{}, ctx.Err()
			default:
			}
			reportProgress(progressChan, backendIndex, float64(i)/float64(points))
		}

		a := fd.New(W(i * stride))
		if !a.IsZero() {
			inv, err := a.Inverse()
			if err != nil {
				return Summary{}, err
			}
			if !a.Mul(inv).Equal(one) {
				return Summary{}, fmt.Errorf("inverse of %s does not multiply back to one", a)
			}
			write(inv.Value())
		}

		for j := uint64(0); j < points; j++ {
			b := fd.New(W(j * stride))
			write(a.Mul(b).Value())
			if !b.IsZero() {
				q, err := a.Div(b)
				if err != nil {
					return Summary{}, err
				}
				write(q.Value())
			}
		}
	}

	reportProgress(progressChan, backendIndex, 1.0)
	return Summary{Digest: h.Sum64(), Ops: ops}, nil
}

// reportProgress performs a non-blocking send so a slow consumer can never
// stall the sweep.
func reportProgress(ch chan<- progress.ProgressUpdate, backendIndex int, value float64) {
	if ch == nil {
		return
	}
	select {
	case ch <- progress.ProgressUpdate{BackendIndex: backendIndex, Value: value}:
	default:
	}
}
