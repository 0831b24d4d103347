package deblock

// The functions in this file are CTB-granularity convenience wrappers
// around the row/column-range primitives, grounded on the reference
// decoder's derive_boundaryStrength_CTB / edge_filtering_luma_CTB /
// edge_filtering_chroma_CTB (§4.8). The Dispatcher itself uses the
// stripe-range primitives directly; these exist for callers that want to
// drive deblocking one coding-tree block at a time instead.

func ctbDeblkSize(pic Picture) int {
	return pic.CtbSizeY() / 4
}

// DeriveBoundaryStrengthForCTB restricts DeriveBoundaryStrength to the
// single coding-tree block at (xCtb, yCtb).
func DeriveBoundaryStrengthForCTB(pic Picture, grid *DeblockGrid, vertical bool, xCtb, yCtb int, sink WarningSink, runID string) {
	d := ctbDeblkSize(pic)
	DeriveBoundaryStrength(pic, grid, vertical, yCtb*d, (yCtb+1)*d, xCtb*d, (xCtb+1)*d, sink, runID)
}

// FilterLumaEdgesForCTB restricts FilterLumaEdges to the single
// coding-tree block at (xCtb, yCtb).
func FilterLumaEdgesForCTB(pic Picture, grid *DeblockGrid, vertical bool, xCtb, yCtb int) {
	d := ctbDeblkSize(pic)
	FilterLumaEdges(pic, grid, vertical, yCtb*d, (yCtb+1)*d, xCtb*d, (xCtb+1)*d)
}

// FilterChromaEdgesForCTB restricts FilterChromaEdges to the single
// coding-tree block at (xCtb, yCtb).
func FilterChromaEdgesForCTB(pic Picture, grid *DeblockGrid, vertical bool, xCtb, yCtb int) {
	d := ctbDeblkSize(pic)
	FilterChromaEdges(pic, grid, vertical, yCtb*d, (yCtb+1)*d, xCtb*d, (xCtb+1)*d)
}

// DeblockCTB runs boundary-strength derivation and both the luma and
// chroma filters for one coding-tree block, in one orientation. It
// mirrors the reference decoder's single-CTB task body.
func DeblockCTB(pic Picture, grid *DeblockGrid, vertical bool, xCtb, yCtb int, sink WarningSink, runID string) {
	DeriveBoundaryStrengthForCTB(pic, grid, vertical, xCtb, yCtb, sink, runID)
	FilterLumaEdgesForCTB(pic, grid, vertical, xCtb, yCtb)
	FilterChromaEdgesForCTB(pic, grid, vertical, xCtb, yCtb)
}
