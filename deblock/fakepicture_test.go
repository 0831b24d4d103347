package deblock

// fakePicture is a hand-rolled Picture test double, grounded on the
// teacher's TestPixelData pattern (a minimal struct implementing the
// collaborator interface purely for exercising package code under test).
// Every per-position accessor looks a coordinate up in a map keyed by
// (x, y) (or (x, y, depth) for SplitTransformFlag), falling back to a
// fixed default when the coordinate hasn't been explicitly configured.
type fakePicture struct {
	width, height int

	log2CtbSizeY     int
	log2MinTrafoSize int
	minCbSizeY       int
	ctbSizeY         int
	picWidthInCtbs   int
	picHeightInCtbs  int

	bitDepthY, bitDepthC    int
	pcmLoopFilterDisable    bool
	loopFilterAcrossTile    bool
	cbQpOffset, crQpOffset  int

	cbSize      map[[2]int]int // minCb-unit corner -> log2CbSize
	splitTU     map[[3]int]bool
	partMode    map[[2]int]PartMode
	predMode    map[[2]int]PredMode
	qpY         map[[2]int]int
	pcmFlag     map[[2]int]bool
	tqBypass    map[[2]int]bool
	nonzeroCoef map[[2]int]bool
	motionInfo  map[[2]int]MotionVectorInfo
	tileID      map[[2]int]int

	defaultSlice  *SliceInfo
	sliceOverride map[[2]int]*SliceInfo

	planes [3][]int
	planeW [3]int
	planeH [3]int
}

// newFakePicture builds a width x height (luma) picture with CtbSizeY-sized
// CTBs and no coding blocks (register them with addCB); every position
// defaults to intra, QP 32, one slice with deblocking enabled and no
// restrictions.
func newFakePicture(width, height, ctbSizeY, bitDepthY, bitDepthC int) *fakePicture {
	p := &fakePicture{
		width:            width,
		height:           height,
		log2CtbSizeY:     log2(ctbSizeY),
		log2MinTrafoSize: 2,
		minCbSizeY:       8,
		ctbSizeY:         ctbSizeY,
		picWidthInCtbs:   (width + ctbSizeY - 1) / ctbSizeY,
		picHeightInCtbs:  (height + ctbSizeY - 1) / ctbSizeY,
		bitDepthY:        bitDepthY,
		bitDepthC:        bitDepthC,
		loopFilterAcrossTile: true,

		cbSize:      make(map[[2]int]int),
		splitTU:     make(map[[3]int]bool),
		partMode:    make(map[[2]int]PartMode),
		predMode:    make(map[[2]int]PredMode),
		qpY:         make(map[[2]int]int),
		pcmFlag:     make(map[[2]int]bool),
		tqBypass:    make(map[[2]int]bool),
		nonzeroCoef: make(map[[2]int]bool),
		motionInfo:  make(map[[2]int]MotionVectorInfo),
		tileID:      make(map[[2]int]int),

		defaultSlice: &SliceInfo{
			LoopFilterAcrossSlicesEnabled: true,
			RefPicList:                    [2][]int{{0, 1, 2, 3}, {0, 1, 2, 3}},
		},
		sliceOverride: make(map[[2]int]*SliceInfo),
	}

	p.planeW[PlaneY], p.planeH[PlaneY] = width, height
	p.planeW[PlaneCb], p.planeH[PlaneCb] = width/2, height/2
	p.planeW[PlaneCr], p.planeH[PlaneCr] = width/2, height/2
	for pl := 0; pl < 3; pl++ {
		p.planes[pl] = make([]int, p.planeW[pl]*p.planeH[pl])
	}

	return p
}

func log2(v int) int {
	n := 0
	for (1 << n) < v {
		n++
	}
	return n
}

// addCB registers a coding block with its top-left corner at luma sample
// position (x0, y0) and the given log2 size, defaulting its interior to
// intra, 2Nx2N, QP 32, one un-split TU of the same size.
func (p *fakePicture) addCB(x0, y0, log2CbSize int) {
	cbX, cbY := x0/p.minCbSizeY, y0/p.minCbSizeY
	p.cbSize[[2]int{cbX, cbY}] = log2CbSize
	p.partMode[[2]int{x0, y0}] = PartMode2Nx2N
	p.predMode[[2]int{x0, y0}] = ModeIntra
	p.qpY[[2]int{x0, y0}] = 32
}

func (p *fakePicture) setPartMode(x0, y0 int, m PartMode) { p.partMode[[2]int{x0, y0}] = m }
func (p *fakePicture) setPredMode(x0, y0 int, m PredMode) { p.predMode[[2]int{x0, y0}] = m }
func (p *fakePicture) setQP(x0, y0, qp int)               { p.qpY[[2]int{x0, y0}] = qp }
func (p *fakePicture) setNonzero(x0, y0 int, v bool)      { p.nonzeroCoef[[2]int{x0, y0}] = v }
func (p *fakePicture) setMotion(x0, y0 int, m MotionVectorInfo) {
	p.motionInfo[[2]int{x0, y0}] = m
}
func (p *fakePicture) setSplitTU(x0, y0, depth int, v bool) {
	p.splitTU[[3]int{x0, y0, depth}] = v
}

func (p *fakePicture) fillPlane(plane Plane, v int) {
	for i := range p.planes[plane] {
		p.planes[plane][i] = v
	}
}

func (p *fakePicture) Width() int  { return p.width }
func (p *fakePicture) Height() int { return p.height }

func (p *fakePicture) Log2CbSizeAtCbUnit(cbX, cbY int) int {
	return p.cbSize[[2]int{cbX, cbY}]
}

func (p *fakePicture) SplitTransformFlag(x, y, trafoDepth int) bool {
	return p.splitTU[[3]int{x, y, trafoDepth}]
}

func (p *fakePicture) PartMode(x, y int) PartMode {
	if m, ok := findCovering(p.partMode, p.cbOrigin(x, y)); ok {
		return m
	}
	return PartMode2Nx2N
}

func (p *fakePicture) PredModeAt(x, y int) PredMode {
	if m, ok := findCovering(p.predMode, p.cbOrigin(x, y)); ok {
		return m
	}
	return ModeIntra
}

func (p *fakePicture) QPY(x, y int) int {
	if v, ok := findCovering(p.qpY, p.cbOrigin(x, y)); ok {
		return v
	}
	return 32
}

func (p *fakePicture) PCMFlag(x, y int) bool          { return p.pcmFlag[p.cbOrigin(x, y)] }
func (p *fakePicture) TransquantBypass(x, y int) bool { return p.tqBypass[p.cbOrigin(x, y)] }
func (p *fakePicture) NonzeroCoefficient(x, y int) bool {
	return p.nonzeroCoef[[2]int{(x / 4) * 4, (y / 4) * 4}]
}

func (p *fakePicture) MotionInfo(x, y int) MotionVectorInfo {
	if m, ok := findCovering(p.motionInfo, p.cbOrigin(x, y)); ok {
		return m
	}
	return p.motionInfo[[2]int{(x / 4) * 4, (y / 4) * 4}]
}

func (p *fakePicture) SliceHeader(x, y int) *SliceInfo {
	if s, ok := p.sliceOverride[p.cbOrigin(x, y)]; ok {
		return s
	}
	return p.defaultSlice
}

func (p *fakePicture) Log2CtbSizeY() int      { return p.log2CtbSizeY }
func (p *fakePicture) Log2MinTrafoSize() int  { return p.log2MinTrafoSize }
func (p *fakePicture) PicWidthInCtbsY() int   { return p.picWidthInCtbs }
func (p *fakePicture) PicHeightInCtbsY() int  { return p.picHeightInCtbs }
func (p *fakePicture) PicWidthInMinCbsY() int { return p.width / p.minCbSizeY }
func (p *fakePicture) PicHeightInMinCbsY() int { return p.height / p.minCbSizeY }
func (p *fakePicture) MinCbSizeY() int        { return p.minCbSizeY }
func (p *fakePicture) CtbSizeY() int          { return p.ctbSizeY }
func (p *fakePicture) BitDepthY() int         { return p.bitDepthY }
func (p *fakePicture) BitDepthC() int         { return p.bitDepthC }
func (p *fakePicture) PCMLoopFilterDisableFlag() bool { return p.pcmLoopFilterDisable }

func (p *fakePicture) LoopFilterAcrossTilesEnabled() bool { return p.loopFilterAcrossTile }
func (p *fakePicture) TileIdRS(ctbX, ctbY int) int        { return p.tileID[[2]int{ctbX, ctbY}] }
func (p *fakePicture) PicCbQpOffset() int                 { return p.cbQpOffset }
func (p *fakePicture) PicCrQpOffset() int                 { return p.crQpOffset }

func (p *fakePicture) Sample(plane Plane, x, y int) int {
	return p.planes[plane][y*p.planeW[plane]+x]
}

func (p *fakePicture) SetSample(plane Plane, x, y, v int) {
	p.planes[plane][y*p.planeW[plane]+x] = v
}

// cbOrigin finds the registered CB whose area covers (x, y) and returns its
// top-left corner; falls back to (x, y) itself when none was registered
// (so single-entry setups keyed directly at (x, y) still work).
func (p *fakePicture) cbOrigin(x, y int) [2]int {
	for origin, log2Size := range p.cbSize {
		size := 1 << log2Size
		x0, y0 := origin[0]*p.minCbSizeY, origin[1]*p.minCbSizeY
		if x >= x0 && x < x0+size && y >= y0 && y < y0+size {
			return [2]int{x0, y0}
		}
	}
	return [2]int{x, y}
}

func findCovering[T any](m map[[2]int]T, origin [2]int) (T, bool) {
	v, ok := m[origin]
	return v, ok
}
