package deblock

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/cocosip/go-hevc-deblock/pool"
)

// DispatchOptions configures one Dispatcher.Apply call (§4.5, §6).
//
// Grounded on the reference decoder's get_num_worker_threads()==0 fallback:
// WorkerCount 0 runs both passes serially on the calling goroutine; any
// positive WorkerCount fans each pass out over StripeMultiplier*WorkerCount
// stripes through the named pool kind.
type DispatchOptions struct {
	// WorkerCount is the number of workers the selected pool should be
	// allowed to use concurrently. 0 means run serially.
	WorkerCount int

	// StripeMultiplier scales WorkerCount into a stripe count (§4.5 step
	// 2). Defaults to 4 when left at 0 and WorkerCount > 0.
	StripeMultiplier int

	// PoolKind names the pool.Registry entry to build the pool from.
	// Defaults to "errgroup" when WorkerCount > 0.
	PoolKind string

	// Warnings receives non-fatal integrity observations raised while
	// deriving boundary strength (§7). A nil Warnings discards them.
	Warnings WarningSink
}

// Validate implements the Options contract (§4.6), grounded on the
// reference codec's BaseOptions.Validate.
func (o *DispatchOptions) Validate() error {
	if o.WorkerCount < 0 {
		return ErrInvalidStripeMultiplier
	}
	if o.StripeMultiplier < 0 {
		return ErrInvalidStripeMultiplier
	}
	return nil
}

func (o *DispatchOptions) numStripes() int {
	if o.WorkerCount <= 0 {
		return 1
	}
	mult := o.StripeMultiplier
	if mult == 0 {
		mult = 4
	}
	n := mult * o.WorkerCount
	if n < 1 {
		n = 1
	}
	return n
}

func (o *DispatchOptions) poolKindAndLimit() (string, int) {
	if o.WorkerCount <= 0 {
		return "serial", 0
	}
	kind := o.PoolKind
	if kind == "" {
		kind = "errgroup"
	}
	return kind, o.WorkerCount
}

// Dispatcher runs the full two-pass deblocking filter over one picture
// (§4.5): edge marking, then vertical and horizontal passes, each
// decomposed into 4-row-aligned stripes that a worker pool runs
// concurrently with a hard barrier between the two passes.
type Dispatcher struct{}

// NewDispatcher constructs a Dispatcher. Dispatcher holds no state of its
// own — every Apply call is independent — so the zero value is usable
// directly; NewDispatcher exists for symmetry with the rest of the package.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Apply runs the deblocking filter over pic and returns whether any slice
// had deblocking enabled. Samples are modified in place through Picture's
// SetSample.
func (d *Dispatcher) Apply(pic Picture, opts DispatchOptions) (bool, error) {
	if pic == nil {
		return false, ErrNilPicture
	}
	if err := opts.Validate(); err != nil {
		return false, err
	}
	if pic.BitDepthY() < 8 || pic.BitDepthC() < 8 {
		return false, ErrInvalidBitDepth
	}

	grid := NewDeblockGrid(pic.Width(), pic.Height())
	if !MarkEdges(pic, grid) {
		return false, nil
	}

	sink := opts.Warnings
	if sink == nil {
		sink = DiscardSink{}
	}
	runID := uuid.NewString()

	kind, limit := opts.poolKindAndLimit()
	numStripes := opts.numStripes()

	for pass := 0; pass < 2; pass++ {
		vertical := pass == 0

		p, err := pool.New(kind, limit)
		if err != nil {
			return true, fmt.Errorf("deblock: building %q pool: %w", kind, err)
		}

		layout := NewStripeLayout(grid.Height(), numStripes)
		for _, s := range layout.Stripes() {
			stripe := s
			p.Submit(func() error {
				DeriveBoundaryStrength(pic, grid, vertical, stripe.RowStart, stripe.RowEnd, 0, grid.Width(), sink, runID)
				FilterLumaEdges(pic, grid, vertical, stripe.RowStart, stripe.RowEnd, 0, grid.Width())
				FilterChromaEdges(pic, grid, vertical, stripe.RowStart, stripe.RowEnd, 0, grid.Width())
				return nil
			})
		}

		if err := p.WaitAll(); err != nil {
			return true, fmt.Errorf("deblock: pass %d: %w", pass, err)
		}
	}

	return true, nil
}
