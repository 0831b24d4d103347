// Package deblock implements the in-loop deblocking filter of an HEVC
// (H.265) video decoder: edge discovery, boundary-strength derivation,
// the luma/chroma sample filters, and the intra-picture parallel
// scheduling that ties them together into one apply-per-picture pass.
//
// The package never parses a bitstream, runs entropy decoding, performs
// a transform, or predicts samples — it only rewrites the sample planes
// of an already-reconstructed Picture, in place, to suppress blocking
// artifacts along transform- and prediction-block edges.
package deblock

// Plane identifies one of the three sample planes a Picture exposes.
type Plane int

const (
	PlaneY Plane = iota
	PlaneCb
	PlaneCr
)

// PredMode is the prediction mode of a coding unit.
type PredMode int

const (
	ModeIntra PredMode = iota
	ModeInter
)

// PartMode is the prediction-block partitioning of a coding unit, per
// HEVC 7.4.9.5 Table 7-10.
type PartMode int

const (
	PartMode2Nx2N PartMode = iota
	PartMode2NxN
	PartModeNx2N
	PartModeNxN
	PartMode2NxnU
	PartMode2NxnD
	PartModeNLx2N
	PartModeNRx2N
)

// MotionVector is a quarter-pel motion vector.
type MotionVector struct {
	X, Y int32
}

// MotionVectorInfo holds the per-list motion information of one 4x4 block,
// as returned by Picture.MotionInfo.
type MotionVectorInfo struct {
	PredFlag [2]bool
	RefIdx   [2]int
	MV       [2]MotionVector
}

// SliceInfo is the subset of a slice segment header the filter consults.
type SliceInfo struct {
	DeblockingFilterDisabled      bool
	BetaOffset                    int
	TcOffset                      int
	LoopFilterAcrossSlicesEnabled bool
	SliceAddrRS                   int
	// RefPicList[listIdx][refIdx] is the POC of the referenced picture.
	RefPicList [2][]int
}

// Picture is the read-mostly collaborator the filter operates on. The core
// reads every method below except Sample/SetSample, which it also writes
// (the only in-place mutation this package performs). Implementations are
// supplied by the surrounding decoder; none of the out-of-scope concerns
// named in the package doc (bitstream parsing, prediction, reference
// picture management, ...) are this interface's responsibility.
type Picture interface {
	// Width and Height are the luma plane's dimensions in samples. Both
	// must be multiples of 4 (the deblocking grid pitch).
	Width() int
	Height() int

	// Log2CbSizeAtCbUnit returns log2(coding-block size) for the coding
	// block whose top-left corner is at minimum-CB grid position
	// (cbX, cbY); it returns 0 when that position is not the top-left
	// corner of any coding block.
	Log2CbSizeAtCbUnit(cbX, cbY int) int

	// SplitTransformFlag reports whether the transform-tree node rooted
	// at sample position (x, y), at the given trafoDepth, is split into
	// four quadrants.
	SplitTransformFlag(x, y, trafoDepth int) bool

	// PartMode returns the prediction-block partitioning of the coding
	// unit covering (x, y).
	PartMode(x, y int) PartMode

	// PredModeAt returns the prediction mode (intra/inter) of the coding
	// unit covering (x, y).
	PredModeAt(x, y int) PredMode

	// QPY returns the luma quantization parameter of the coding unit
	// covering (x, y).
	QPY(x, y int) int

	// PCMFlag reports whether the coding unit covering (x, y) uses PCM
	// (raw, unfiltered by transform/quant) sample coding.
	PCMFlag(x, y int) bool

	// TransquantBypass reports whether the coding unit covering (x, y)
	// has cu_transquant_bypass_flag set.
	TransquantBypass(x, y int) bool

	// NonzeroCoefficient reports whether the transform block covering
	// (x, y) has at least one non-zero residual coefficient.
	NonzeroCoefficient(x, y int) bool

	// MotionInfo returns the per-list prediction flags, reference
	// indices and motion vectors of the 4x4 inter block at (x, y).
	MotionInfo(x, y int) MotionVectorInfo

	// SliceHeader returns the slice segment header governing (x, y).
	SliceHeader(x, y int) *SliceInfo

	// SPS-level geometry.
	Log2CtbSizeY() int
	Log2MinTrafoSize() int
	PicWidthInCtbsY() int
	PicHeightInCtbsY() int
	PicWidthInMinCbsY() int
	PicHeightInMinCbsY() int
	MinCbSizeY() int
	CtbSizeY() int
	BitDepthY() int
	BitDepthC() int
	PCMLoopFilterDisableFlag() bool

	// PPS-level parameters.
	LoopFilterAcrossTilesEnabled() bool
	TileIdRS(ctbX, ctbY int) int
	PicCbQpOffset() int
	PicCrQpOffset() int

	// Sample reads one sample of the given plane at (x, y) in that
	// plane's own coordinate system (chroma planes are half-resolution
	// under 4:2:0).
	Sample(plane Plane, x, y int) int

	// SetSample writes one sample of the given plane at (x, y). This is
	// the only mutation the filter performs.
	SetSample(plane Plane, x, y, v int)
}
