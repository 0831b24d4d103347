package deblock

// Stripe is one horizontal band of the deblocking grid, expressed in grid
// (4-sample) row units: rows in [RowStart, RowEnd) belong to this stripe.
type Stripe struct {
	RowStart, RowEnd int
}

// StripeLayout partitions a deblocking grid of the given height into N
// horizontal stripes, snapping every boundary except the last down to a
// multiple of 4 grid rows (i.e. a multiple of 16 samples) so that no two
// stripes ever share a writable luma row (§4.5 step 2, §5).
//
// This mirrors the teacher's tile-grid bounds computation (TileLayout's
// per-index clipped bounds), generalized from a 2-D tile grid to a 1-D
// row partition with 4-row alignment instead of tile-offset math.
type StripeLayout struct {
	gridHeight int
	stripes    []Stripe
}

// NewStripeLayout computes the stripe partition for a grid of gridHeight
// rows split into n stripes. n must be >= 1.
func NewStripeLayout(gridHeight, n int) *StripeLayout {
	if n < 1 {
		n = 1
	}
	stripes := make([]Stripe, n)
	for i := 0; i < n; i++ {
		ys := i * gridHeight / n
		ye := (i + 1) * gridHeight / n

		// Required because an even split might otherwise cut the grid
		// at a row that isn't a multiple of 4: every stripe boundary
		// except the picture's own bottom edge must land on a 4-row
		// multiple, since the filter footprint of an edge at grid row
		// y touches rows [y-4, y+4) on either side of it (in sample
		// units; 1 row either side in grid units).
		ys &^= 3
		if i != n-1 {
			ye &^= 3
		}

		stripes[i] = Stripe{RowStart: ys, RowEnd: ye}
	}
	return &StripeLayout{gridHeight: gridHeight, stripes: stripes}
}

// Stripes returns the computed stripe ranges, in row order.
func (l *StripeLayout) Stripes() []Stripe {
	return l.stripes
}

// Count returns the number of stripes.
func (l *StripeLayout) Count() int {
	return len(l.stripes)
}
