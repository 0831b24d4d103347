package deblock

// FilterLumaEdges performs the HEVC luma deblocking decision (skip / weak
// / strong) and applies it in place, for every grid cell in rows
// [rowStart, rowEnd) and columns [colStart, colEnd) whose bS (on the given
// orientation) is > 0 (§4.3).
func FilterLumaEdges(pic Picture, grid *DeblockGrid, vertical bool, rowStart, rowEnd, colStart, colEnd int) {
	xIncr, yIncr := 1, 2
	if vertical {
		xIncr, yIncr = 2, 1
	}

	xEnd := colEnd
	if xEnd > grid.Width() {
		xEnd = grid.Width()
	}
	yEnd := rowEnd
	if yEnd > grid.Height() {
		yEnd = grid.Height()
	}

	bitDepthY := pic.BitDepthY()
	maxVal := (1 << bitDepthY) - 1
	pcmDisable := pic.PCMLoopFilterDisableFlag()

	for y := rowStart; y < yEnd; y += yIncr {
		for x := colStart; x < xEnd; x += xIncr {
			bS := grid.BS(x, y)
			if bS == 0 {
				continue
			}

			xDi, yDi := x*4, y*4

			var p, q [4][4]int
			for k := 0; k < 4; k++ {
				for i := 0; i < 4; i++ {
					if vertical {
						q[k][i] = pic.Sample(PlaneY, xDi+i, yDi+k)
						p[k][i] = pic.Sample(PlaneY, xDi-i-1, yDi+k)
					} else {
						q[k][i] = pic.Sample(PlaneY, xDi+k, yDi+i)
						p[k][i] = pic.Sample(PlaneY, xDi+k, yDi-i-1)
					}
				}
			}

			qpQ := pic.QPY(xDi, yDi)
			var qpP int
			if vertical {
				qpP = pic.QPY(xDi-1, yDi)
			} else {
				qpP = pic.QPY(xDi, yDi-1)
			}
			qpL := (qpQ + qpP + 1) >> 1

			shdr := pic.SliceHeader(xDi, yDi)
			beta := betaValue(qpL, shdr.BetaOffset, bitDepthY)
			tc := tcValue(qpL, int(bS), shdr.TcOffset, bitDepthY)

			dp0 := Abs(p[0][2] - 2*p[0][1] + p[0][0])
			dp3 := Abs(p[3][2] - 2*p[3][1] + p[3][0])
			dq0 := Abs(q[0][2] - 2*q[0][1] + q[0][0])
			dq3 := Abs(q[3][2] - 2*q[3][1] + q[3][0])
			d := dp0 + dp3 + dq0 + dq3
			if d >= beta {
				// Invariant: every sample in the 8x4 neighborhood stays
				// untouched when d >= beta.
				continue
			}

			dpq0, dpq3 := dp0+dq0, dp3+dq3
			dp, dq := dp0+dp3, dq0+dq3

			dSam0 := 2*dpq0 < beta>>2 &&
				Abs(p[0][3]-p[0][0])+Abs(q[0][0]-q[0][3]) < beta>>3 &&
				Abs(p[0][0]-q[0][0]) < (5*tc+1)>>1
			dSam3 := 2*dpq3 < beta>>2 &&
				Abs(p[3][3]-p[3][0])+Abs(q[3][0]-q[3][3]) < beta>>3 &&
				Abs(p[3][0]-q[3][0]) < (5*tc+1)>>1

			dE := 1
			if dSam0 && dSam3 {
				dE = 2
			}
			dEp, dEq := 0, 0
			if dp < (beta+(beta>>1))>>3 {
				dEp = 1
			}
			if dq < (beta+(beta>>1))>>3 {
				dEq = 1
			}

			filterP, filterQ := true, true
			if vertical {
				if pcmDisable && pic.PCMFlag(xDi-1, yDi) {
					filterP = false
				}
				if pic.TransquantBypass(xDi-1, yDi) {
					filterP = false
				}
			} else {
				if pcmDisable && pic.PCMFlag(xDi, yDi-1) {
					filterP = false
				}
				if pic.TransquantBypass(xDi, yDi-1) {
					filterP = false
				}
			}
			if pcmDisable && pic.PCMFlag(xDi, yDi) {
				filterQ = false
			}
			if pic.TransquantBypass(xDi, yDi) {
				filterQ = false
			}

			setP := func(k, i, v int) {
				if !filterP {
					return
				}
				if vertical {
					pic.SetSample(PlaneY, xDi-i-1, yDi+k, v)
				} else {
					pic.SetSample(PlaneY, xDi+k, yDi-i-1, v)
				}
			}
			setQ := func(k, i, v int) {
				if !filterQ {
					return
				}
				if vertical {
					pic.SetSample(PlaneY, xDi+i, yDi+k, v)
				} else {
					pic.SetSample(PlaneY, xDi+k, yDi+i, v)
				}
			}

			for k := 0; k < 4; k++ {
				p0, p1, p2, p3 := p[k][0], p[k][1], p[k][2], p[k][3]
				q0, q1, q2, q3 := q[k][0], q[k][1], q[k][2], q[k][3]

				if dE == 2 {
					pnew0 := Clip3(p0-2*tc, p0+2*tc, (p2+2*p1+2*p0+2*q0+q1+4)>>3)
					pnew1 := Clip3(p1-2*tc, p1+2*tc, (p2+p1+p0+q0+2)>>2)
					pnew2 := Clip3(p2-2*tc, p2+2*tc, (2*p3+3*p2+p1+p0+q0+4)>>3)
					qnew0 := Clip3(q0-2*tc, q0+2*tc, (p1+2*p0+2*q0+2*q1+q2+4)>>3)
					qnew1 := Clip3(q1-2*tc, q1+2*tc, (p0+q0+q1+q2+2)>>2)
					qnew2 := Clip3(q2-2*tc, q2+2*tc, (p0+q0+q1+3*q2+2*q3+4)>>3)

					setP(k, 0, pnew0)
					setP(k, 1, pnew1)
					setP(k, 2, pnew2)
					setQ(k, 0, qnew0)
					setQ(k, 1, qnew1)
					setQ(k, 2, qnew2)
					continue
				}

				// Weak filtering.
				delta := (9*(q0-p0) - 3*(q1-p1) + 8) >> 4
				if Abs(delta) >= 10*tc {
					// Invariant: the row stays untouched.
					continue
				}
				delta = Clip3(-tc, tc, delta)

				setP(k, 0, Clip3(0, maxVal, p0+delta))
				setQ(k, 0, Clip3(0, maxVal, q0-delta))

				if dEp == 1 {
					deltaP := Clip3(-(tc >> 1), tc>>1, (((p2+p0+1)>>1)-p1+delta)>>1)
					setP(k, 1, Clip3(0, maxVal, p1+deltaP))
				}
				if dEq == 1 {
					deltaQ := Clip3(-(tc >> 1), tc>>1, (((q2+q0+1)>>1)-q1-delta)>>1)
					setQ(k, 1, Clip3(0, maxVal, q1+deltaQ))
				}
			}
		}
	}
}
