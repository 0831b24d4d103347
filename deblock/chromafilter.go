package deblock

// FilterChromaEdges performs the HEVC chroma deblocking filter (§4.4) for
// every grid cell in rows [rowStart, rowEnd) and columns [colStart, colEnd)
// whose bS (on the given orientation) is > 1 — chroma is only ever
// filtered across the strongest boundary strength. Grid coordinates (x, y)
// are in 4-luma-sample units; the corresponding chroma sample position is
// half that, matching 4:2:0 subsampling.
func FilterChromaEdges(pic Picture, grid *DeblockGrid, vertical bool, rowStart, rowEnd, colStart, colEnd int) {
	xIncr, yIncr := 2, 4
	if vertical {
		xIncr, yIncr = 4, 2
	}

	xEnd := colEnd
	if xEnd > grid.Width() {
		xEnd = grid.Width()
	}
	yEnd := rowEnd
	if yEnd > grid.Height() {
		yEnd = grid.Height()
	}

	bitDepthC := pic.BitDepthC()
	maxVal := (1 << bitDepthC) - 1
	pcmDisable := pic.PCMLoopFilterDisableFlag()

	for y := rowStart; y < yEnd; y += yIncr {
		for x := colStart; x < xEnd; x += xIncr {
			bS := grid.BS(x, y)
			if bS <= 1 {
				continue
			}

			lumaX, lumaY := x*4, y*4
			chromaX, chromaY := x*2, y*2

			qpQ := pic.QPY(lumaX, lumaY)
			var qpP int
			if vertical {
				qpP = pic.QPY(lumaX-1, lumaY)
			} else {
				qpP = pic.QPY(lumaX, lumaY-1)
			}

			shdr := pic.SliceHeader(lumaX, lumaY)

			var filterP, filterQ bool
			if vertical {
				filterP = !(pcmDisable && pic.PCMFlag(lumaX-1, lumaY)) && !pic.TransquantBypass(lumaX-1, lumaY)
			} else {
				filterP = !(pcmDisable && pic.PCMFlag(lumaX, lumaY-1)) && !pic.TransquantBypass(lumaX, lumaY-1)
			}
			filterQ = !(pcmDisable && pic.PCMFlag(lumaX, lumaY)) && !pic.TransquantBypass(lumaX, lumaY)
			if !filterP && !filterQ {
				continue
			}

			for _, cp := range [2]struct {
				plane    Plane
				qpOffset int
			}{
				{PlaneCb, pic.PicCbQpOffset()},
				{PlaneCr, pic.PicCrQpOffset()},
			} {
				qpI := ((qpQ+qpP+1)>>1) + cp.qpOffset
				qpC := qpChroma(qpI)
				tc := tcValue(qpC, int(bS), shdr.TcOffset, bitDepthC)

				var p, q [2][4]int
				for i := 0; i < 2; i++ {
					for k := 0; k < 4; k++ {
						if vertical {
							q[i][k] = pic.Sample(cp.plane, chromaX+i, chromaY+k)
							p[i][k] = pic.Sample(cp.plane, chromaX-i-1, chromaY+k)
						} else {
							q[i][k] = pic.Sample(cp.plane, chromaX+k, chromaY+i)
							p[i][k] = pic.Sample(cp.plane, chromaX+k, chromaY-i-1)
						}
					}
				}

				for k := 0; k < 4; k++ {
					p0, p1 := p[0][k], p[1][k]
					q0, q1 := q[0][k], q[1][k]

					delta := Clip3(-tc, tc, (((q0-p0)<<2)+p1-q1+4)>>3)

					if filterP {
						if vertical {
							pic.SetSample(cp.plane, chromaX-1, chromaY+k, Clip3(0, maxVal, p0+delta))
						} else {
							pic.SetSample(cp.plane, chromaX+k, chromaY-1, Clip3(0, maxVal, p0+delta))
						}
					}
					if filterQ {
						if vertical {
							pic.SetSample(cp.plane, chromaX, chromaY+k, Clip3(0, maxVal, q0-delta))
						} else {
							pic.SetSample(cp.plane, chromaX+k, chromaY, Clip3(0, maxVal, q0-delta))
						}
					}
				}
			}
		}
	}
}
