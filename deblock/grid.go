package deblock

// EdgeFlag is a bit in a DeblockGrid cell's edge_flags entry (§3).
type EdgeFlag uint8

const (
	// FlagTBVert marks a transform-block vertical edge starting at the cell.
	FlagTBVert EdgeFlag = 1 << iota
	// FlagTBHorz marks a transform-block horizontal edge starting at the cell.
	FlagTBHorz
	// FlagPBVert marks a prediction-block vertical edge starting at the cell.
	FlagPBVert
	// FlagPBHorz marks a prediction-block horizontal edge starting at the cell.
	FlagPBHorz
)

// vertMask and horzMask are the OR of the TB/PB flag for each orientation,
// used by BoundaryStrength to test "is there an edge here at all".
const (
	vertMask = FlagTBVert | FlagPBVert
	horzMask = FlagTBHorz | FlagPBHorz
)

// DeblockGrid is the pair of per-4x4-cell arrays the filter core owns for
// the duration of one picture (§3): edge_flags and bS. It is allocated by
// Dispatcher.Apply when processing starts and discarded when it returns;
// callers of Apply never see it. Callers that drive the per-component
// functions directly allocate one with NewDeblockGrid.
//
// Both arrays are flat, row-major []uint8 slices indexed y*width+x,
// mirroring the bounds-checked flat-array shape the teacher uses for its
// per-pixel region-of-interest mask, generalized here to two parallel
// planes (flags and strength) instead of one boolean plane.
type DeblockGrid struct {
	width, height int // grid dimensions, in 4-sample units (Wg, Hg)
	flags         []EdgeFlag
	bs            []uint8
}

// NewDeblockGrid allocates a zeroed grid sized for a luma plane of the
// given sample dimensions. width and height must be multiples of 4.
func NewDeblockGrid(lumaWidth, lumaHeight int) *DeblockGrid {
	wg := lumaWidth / 4
	hg := lumaHeight / 4
	return &DeblockGrid{
		width:  wg,
		height: hg,
		flags:  make([]EdgeFlag, wg*hg),
		bs:     make([]uint8, wg*hg),
	}
}

// Width and Height return the grid dimensions in 4-sample units.
func (g *DeblockGrid) Width() int  { return g.width }
func (g *DeblockGrid) Height() int { return g.height }

func (g *DeblockGrid) inBounds(xg, yg int) bool {
	return xg >= 0 && yg >= 0 && xg < g.width && yg < g.height
}

// Flags returns the edge_flags entry at grid position (xg, yg), or 0 when
// out of bounds.
func (g *DeblockGrid) Flags(xg, yg int) EdgeFlag {
	if !g.inBounds(xg, yg) {
		return 0
	}
	return g.flags[yg*g.width+xg]
}

// OrFlags ORs bits into the edge_flags entry at (xg, yg). Repeated writes
// from adjacent coding blocks never clear bits another block already set.
// Out-of-range coordinates are silently ignored (the outer-rectangle
// invariant means callers never intentionally target one, but the
// quadtree walk's neighbor math can compute one at the picture's far
// edge).
func (g *DeblockGrid) OrFlags(xg, yg int, bits EdgeFlag) {
	if !g.inBounds(xg, yg) {
		return
	}
	g.flags[yg*g.width+xg] |= bits
}

// BS returns the boundary-strength entry at (xg, yg), or 0 when out of
// bounds.
func (g *DeblockGrid) BS(xg, yg int) uint8 {
	if !g.inBounds(xg, yg) {
		return 0
	}
	return g.bs[yg*g.width+xg]
}

// SetBS writes the boundary-strength entry at (xg, yg).
func (g *DeblockGrid) SetBS(xg, yg int, v uint8) {
	if !g.inBounds(xg, yg) {
		return
	}
	g.bs[yg*g.width+xg] = v
}
