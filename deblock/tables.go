package deblock

// betaTable is HEVC Table 8-23's β' column, indexed by Clip3(0, 51, qP_L + beta_offset).
// Reproduced verbatim from the reference decoder's table_8_23_beta.
var betaTable = [52]uint8{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 6, 7, 8,
	9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 20, 22, 24, 26, 28, 30, 32, 34, 36,
	38, 40, 42, 44, 46, 48, 50, 52, 54, 56, 58, 60, 62, 64,
}

// tcTable is HEVC Table 8-23's tc' column, indexed by
// Clip3(0, 53, qP_L + 2*(bS-1) + tc_offset). Reproduced verbatim from the
// reference decoder's table_8_23_tc.
var tcTable = [54]uint8{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 2, 2, 2, 2, 3, 3, 3, 3, 4, 4, 4,
	5, 5, 6, 6, 7, 8, 9, 10, 11, 13, 14, 16, 18, 20, 22, 24,
}

// qpChroma maps qP_i to QP_C per HEVC Table 8-22: identity below 30, then
// an explicit table for 30..43, capped at qP_i-6 from 44 upward.
func qpChroma(qpI int) int {
	switch {
	case qpI < 30:
		return qpI
	case qpI > 43:
		return qpI - 6
	default:
		return chromaQPTable[qpI-30]
	}
}

var chromaQPTable = [14]int{
	29, 30, 31, 32, 33, 33, 34, 34, 35, 35, 36, 36, 37, 37,
}

// betaValue and tcValue look up the bit-depth-scaled β and tc for one
// edge, per §4.3 step 1; tcValue serves both luma and chroma (§4.4 step 2).
func betaValue(qpL, betaOffset, bitDepthY int) int {
	idx := Clip3(0, 51, qpL+betaOffset)
	return int(betaTable[idx]) << (bitDepthY - 8)
}

func tcValue(qpL, bS, tcOffset, bitDepth int) int {
	idx := Clip3(0, 53, qpL+2*(bS-1)+tcOffset)
	return int(tcTable[idx]) << (bitDepth - 8)
}
