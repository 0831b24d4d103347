package deblock

// axis distinguishes the two prediction-block edge orientations a
// partition mode can introduce.
type axis int

const (
	axisVert axis = iota
	axisHorz
)

// partEdge places one prediction-block edge at cbSize*num/den from the
// coding block's left (axisVert) or top (axisHorz) edge.
type partEdge struct {
	axis     axis
	num, den int
}

// partModeEdges implements §4.1 step 5 and §9's "polymorphism over
// partition mode" note: a table from PartMode to the list of internal
// edges it introduces, replacing a switch on PartMode. 2Nx2N maps to no
// edges; NxN is the only mode that introduces both a vertical and a
// horizontal edge.
var partModeEdges = map[PartMode][]partEdge{
	PartMode2Nx2N: nil,
	PartMode2NxN:  {{axisHorz, 1, 2}},
	PartModeNx2N:  {{axisVert, 1, 2}},
	PartModeNxN:   {{axisVert, 1, 2}, {axisHorz, 1, 2}},
	PartMode2NxnU: {{axisHorz, 1, 4}},
	PartMode2NxnD: {{axisHorz, 3, 4}},
	PartModeNLx2N: {{axisVert, 1, 4}},
	PartModeNRx2N: {{axisVert, 3, 4}},
}

// MarkEdges walks the picture's coding-unit tree and sets edge_flags bits
// in grid for every 4-sample position that lies on an internal
// transform-block or prediction-block edge allowed to be filtered (§4.1).
// It returns true if at least one slice in the picture has deblocking
// enabled.
func MarkEdges(pic Picture, grid *DeblockGrid) bool {
	minCbSize := pic.MinCbSizeY()
	ctbShift := pic.Log2CtbSizeY()
	ctbMask := (1 << ctbShift) - 1

	deblockingEnabled := false

	for cbY := 0; cbY < pic.PicHeightInMinCbsY(); cbY++ {
		for cbX := 0; cbX < pic.PicWidthInMinCbsY(); cbX++ {
			log2CbSize := pic.Log2CbSizeAtCbUnit(cbX, cbY)
			if log2CbSize == 0 {
				// Not the top-left corner of a coding block.
				continue
			}

			x0 := cbX * minCbSize
			y0 := cbY * minCbSize
			x0ctb := x0 >> ctbShift
			y0ctb := y0 >> ctbShift

			shdr := pic.SliceHeader(x0, y0)

			filterLeft := FlagTBVert
			filterTop := FlagTBHorz
			if x0 == 0 {
				filterLeft = 0
			}
			if y0 == 0 {
				filterTop = 0
			}

			if x0 != 0 && (x0&ctbMask) == 0 {
				leftShdr := pic.SliceHeader(x0-1, y0)
				if !shdr.LoopFilterAcrossSlicesEnabled && shdr.SliceAddrRS != leftShdr.SliceAddrRS {
					filterLeft = 0
				} else if !pic.LoopFilterAcrossTilesEnabled() &&
					pic.TileIdRS(x0ctb, y0ctb) != pic.TileIdRS((x0-1)>>ctbShift, y0ctb) {
					filterLeft = 0
				}
			}

			if y0 != 0 && (y0&ctbMask) == 0 {
				topShdr := pic.SliceHeader(x0, y0-1)
				if !shdr.LoopFilterAcrossSlicesEnabled && shdr.SliceAddrRS != topShdr.SliceAddrRS {
					filterTop = 0
				} else if !pic.LoopFilterAcrossTilesEnabled() &&
					pic.TileIdRS(x0ctb, y0ctb) != pic.TileIdRS(x0ctb, (y0-1)>>ctbShift) {
					filterTop = 0
				}
			}

			if !shdr.DeblockingFilterDisabled {
				deblockingEnabled = true
				markTransformBlockBoundary(pic, grid, x0, y0, log2CbSize, 0, filterLeft, filterTop)
				markPredictionBlockBoundary(pic, grid, x0, y0, log2CbSize)
			}
		}
	}

	return deblockingEnabled
}

// markTransformBlockBoundary is the recursive residual-quadtree walk of
// §4.1 step 4. At a split node it recurses into the four quadrants,
// giving the two right/bottom quadrants the internal TB_VERT/TB_HORZ edge
// their shared boundary introduces. At a leaf it writes filterLeft down
// the left column and filterTop across the top row, every 4 samples (the
// deblocking grid's pitch — every intermediate sample would land in the
// same grid cell as the aligned one, so stepping by 4 is equivalent to,
// and cheaper than, the original's per-sample loop).
func markTransformBlockBoundary(pic Picture, grid *DeblockGrid, x0, y0, log2TrafoSize, trafoDepth int, filterLeft, filterTop EdgeFlag) {
	if pic.SplitTransformFlag(x0, y0, trafoDepth) {
		half := (1 << log2TrafoSize) >> 1
		x1 := x0 + half
		y1 := y0 + half

		markTransformBlockBoundary(pic, grid, x0, y0, log2TrafoSize-1, trafoDepth+1, filterLeft, filterTop)
		markTransformBlockBoundary(pic, grid, x1, y0, log2TrafoSize-1, trafoDepth+1, FlagTBVert, filterTop)
		markTransformBlockBoundary(pic, grid, x0, y1, log2TrafoSize-1, trafoDepth+1, filterLeft, FlagTBHorz)
		markTransformBlockBoundary(pic, grid, x1, y1, log2TrafoSize-1, trafoDepth+1, FlagTBVert, FlagTBHorz)
		return
	}

	size := 1 << log2TrafoSize
	for k := 0; k < size; k += 4 {
		if filterLeft != 0 {
			grid.OrFlags(x0/4, (y0+k)/4, filterLeft)
		}
		if filterTop != 0 {
			grid.OrFlags((x0+k)/4, y0/4, filterTop)
		}
	}
}

// markPredictionBlockBoundary implements §4.1 step 5 via partModeEdges.
// Prediction-block edges are always interior to the coding block, so —
// unlike transform-block edges — they are never subject to the
// left/top-CB-edge suppression rules; the coding block's boundary
// filterability was already decided by the caller for the TB pass.
func markPredictionBlockBoundary(pic Picture, grid *DeblockGrid, x0, y0, log2CbSize int) {
	cbSize := 1 << log2CbSize
	for _, e := range partModeEdges[pic.PartMode(x0, y0)] {
		offset := cbSize * e.num / e.den
		if e.axis == axisVert {
			for k := 0; k < cbSize; k += 4 {
				grid.OrFlags((x0+offset)/4, (y0+k)/4, FlagPBVert)
			}
		} else {
			for k := 0; k < cbSize; k += 4 {
				grid.OrFlags((x0+k)/4, (y0+offset)/4, FlagPBHorz)
			}
		}
	}
}
