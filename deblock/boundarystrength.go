package deblock

// DeriveBoundaryStrength computes bS for every marked edge of the given
// orientation within grid rows [rowStart, rowEnd) and columns
// [colStart, colEnd) (§4.2), writing 0 at every cell whose
// orientation-specific edge bit is clear. All four bounds are in grid
// (4-sample) units and are clamped to the grid's actual dimensions.
//
// sink receives a PictureWarning, tagged with runID, when the two inter
// sides of an edge without residual reference the same set of pictures but
// report a different numMV (§4.2 rule 4, §7); edges whose reference sets
// differ get bS=1 without a numMV check. The warning does not stop
// boundary-strength derivation, which still runs the motion-delta
// comparison with whichever MVs are present (§9).
func DeriveBoundaryStrength(pic Picture, grid *DeblockGrid, vertical bool, rowStart, rowEnd, colStart, colEnd int, sink WarningSink, runID string) {
	xIncr, yIncr := 1, 2
	xOffs, yOffs := 0, 1
	edgeMask := horzMask
	transformEdgeMask := FlagTBHorz
	if vertical {
		xIncr, yIncr = 2, 1
		xOffs, yOffs = 1, 0
		edgeMask = vertMask
		transformEdgeMask = FlagTBVert
	}

	if rowStart < 0 {
		rowStart = 0
	}
	if colStart < 0 {
		colStart = 0
	}
	xEnd := colEnd
	if xEnd > grid.Width() {
		xEnd = grid.Width()
	}
	yEnd := rowEnd
	if yEnd > grid.Height() {
		yEnd = grid.Height()
	}

	for y := rowStart; y < yEnd; y += yIncr {
		for x := colStart; x < xEnd; x += xIncr {
			if grid.Flags(x, y)&edgeMask == 0 {
				grid.SetBS(x, y, 0)
				continue
			}

			xDi, yDi := x*4, y*4
			xOpp, yOpp := xDi-xOffs, yDi-yOffs

			pIsIntra := pic.PredModeAt(xOpp, yOpp) == ModeIntra
			qIsIntra := pic.PredModeAt(xDi, yDi) == ModeIntra

			var bS uint8
			switch {
			case pIsIntra || qIsIntra:
				bS = 2

			case grid.Flags(x, y)&transformEdgeMask != 0 &&
				(pic.NonzeroCoefficient(xDi, yDi) || pic.NonzeroCoefficient(xOpp, yOpp)):
				bS = 1

			default:
				bS = motionBoundaryStrength(pic, xOpp, yOpp, xDi, yDi, sink, runID, x, y)
			}

			grid.SetBS(x, y, bS)
		}
	}
}

// motionBoundaryStrength implements §4.2 rule 3: bS derived purely from
// motion-vector / reference-picture comparison between two inter-coded
// sides with no residual on the transform edge.
func motionBoundaryStrength(pic Picture, xP, yP, xQ, yQ int, sink WarningSink, runID string, xg, yg int) uint8 {
	mviP := pic.MotionInfo(xP, yP)
	mviQ := pic.MotionInfo(xQ, yQ)
	shdrP := pic.SliceHeader(xP, yP)
	shdrQ := pic.SliceHeader(xQ, yQ)

	refPicP0 := refPOC(mviP, shdrP, 0)
	refPicP1 := refPOC(mviP, shdrP, 1)
	refPicQ0 := refPOC(mviQ, shdrQ, 0)
	refPicQ1 := refPOC(mviQ, shdrQ, 1)

	mvP0, mvP1 := effectiveMV(mviP, 0), effectiveMV(mviP, 1)
	mvQ0, mvQ1 := effectiveMV(mviQ, 0), effectiveMV(mviQ, 1)

	samePics := (refPicP0 == refPicQ0 && refPicP1 == refPicQ1) ||
		(refPicP0 == refPicQ1 && refPicP1 == refPicQ0)

	if !samePics {
		return 1
	}

	numMVP := numMV(mviP)
	numMVQ := numMV(mviQ)
	if numMVP != numMVQ && sink != nil {
		sink.Warn(PictureWarning{Kind: WarningNumMVMismatch, RunID: runID, Xg: xg, Yg: yg})
	}

	if refPicP0 != refPicP1 {
		// Two distinct reference pictures on the P side: compare
		// whichever list alignment matches.
		if refPicP0 == refPicQ0 {
			if mvDeltaExceeds(mvP0, mvQ0) || mvDeltaExceeds(mvP1, mvQ1) {
				return 1
			}
		} else {
			if mvDeltaExceeds(mvP0, mvQ1) || mvDeltaExceeds(mvP1, mvQ0) {
				return 1
			}
		}
		return 0
	}

	// refPicP0 == refPicP1: a single reference picture on both lists.
	// samePics is (P0==Q0 && P1==Q1) || (P0==Q1 && P1==Q0); with P0==P1
	// both disjuncts collapse to the same proposition, so samePics==true
	// here already guarantees refPicQ0==refPicQ1. There is no distinct
	// malformed case to special-case, matching the reference decoder's
	// assert(refPicQ0==refPicQ1) immediately before this same comparison.
	aligned := mvDeltaExceeds(mvP0, mvQ0) || mvDeltaExceeds(mvP1, mvQ1)
	swapped := mvDeltaExceeds(mvP0, mvQ1) || mvDeltaExceeds(mvP1, mvQ0)
	if aligned && swapped {
		return 1
	}
	return 0
}

func refPOC(info MotionVectorInfo, shdr *SliceInfo, list int) int {
	if !info.PredFlag[list] {
		return -1
	}
	return shdr.RefPicList[list][info.RefIdx[list]]
}

func effectiveMV(info MotionVectorInfo, list int) MotionVector {
	if !info.PredFlag[list] {
		return MotionVector{}
	}
	return info.MV[list]
}

func numMV(info MotionVectorInfo) int {
	n := 0
	if info.PredFlag[0] {
		n++
	}
	if info.PredFlag[1] {
		n++
	}
	return n
}

func mvDeltaExceeds(a, b MotionVector) bool {
	return Abs(a.X-b.X) >= 4 || Abs(a.Y-b.Y) >= 4
}
