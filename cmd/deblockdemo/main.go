// Command deblockdemo builds a small synthetic picture — two flat
// 32x32 intra blocks meeting at a vertical edge — runs the deblocking
// filter over it, and prints the samples straddling that edge before
// and after, so the smoothing effect is visible on the console.
package main

import (
	"fmt"
	"log"

	"github.com/cocosip/go-hevc-deblock/deblock"
)

func main() {
	flatBlockExample()
}

func flatBlockExample() {
	fmt.Println("=== Flat Block Edge Example ===")

	pic := newDemoPicture(64, 64)
	for y := 0; y < 64; y++ {
		for x := 0; x < 32; x++ {
			pic.setY(x, y, 100)
		}
		for x := 32; x < 64; x++ {
			pic.setY(x, y, 150)
		}
	}

	fmt.Println("before:")
	printRow(pic, 0)

	d := deblock.NewDispatcher()
	enabled, err := d.Apply(pic, deblock.DispatchOptions{})
	if err != nil {
		log.Fatalf("Apply failed: %v", err)
	}
	fmt.Printf("deblocking enabled: %v\n", enabled)

	fmt.Println("after:")
	printRow(pic, 0)
}

func printRow(pic *demoPicture, y int) {
	for x := 28; x < 36; x++ {
		fmt.Printf("%4d", pic.Sample(deblock.PlaneY, x, y))
	}
	fmt.Println()
}

// demoPicture is a minimal in-memory deblock.Picture: one CTB, two
// side-by-side 32x32 intra coding blocks, a single slice with
// deblocking enabled and no tile/slice restrictions.
type demoPicture struct {
	width, height int
	y, cb, cr     []int
}

func newDemoPicture(width, height int) *demoPicture {
	return &demoPicture{
		width:  width,
		height: height,
		y:      make([]int, width*height),
		cb:     make([]int, (width/2)*(height/2)),
		cr:     make([]int, (width/2)*(height/2)),
	}
}

func (p *demoPicture) setY(x, y, v int) { p.y[y*p.width+x] = v }

func (p *demoPicture) Width() int  { return p.width }
func (p *demoPicture) Height() int { return p.height }

// Log2CbSizeAtCbUnit reports a 32x32 coding block at minimum-CB corners
// (0,0) and (4,0) — 32 samples / 8-sample min CB size = 4 min-CB units.
func (p *demoPicture) Log2CbSizeAtCbUnit(cbX, cbY int) int {
	if cbY == 0 && (cbX == 0 || cbX == 4) {
		return 5
	}
	return 0
}

func (p *demoPicture) SplitTransformFlag(x, y, trafoDepth int) bool { return false }
func (p *demoPicture) PartMode(x, y int) deblock.PartMode           { return deblock.PartMode2Nx2N }
func (p *demoPicture) PredModeAt(x, y int) deblock.PredMode         { return deblock.ModeIntra }
func (p *demoPicture) QPY(x, y int) int                             { return 30 }
func (p *demoPicture) PCMFlag(x, y int) bool                        { return false }
func (p *demoPicture) TransquantBypass(x, y int) bool               { return false }
func (p *demoPicture) NonzeroCoefficient(x, y int) bool             { return false }

func (p *demoPicture) MotionInfo(x, y int) deblock.MotionVectorInfo {
	return deblock.MotionVectorInfo{}
}

func (p *demoPicture) SliceHeader(x, y int) *deblock.SliceInfo {
	return &deblock.SliceInfo{
		LoopFilterAcrossSlicesEnabled: true,
		RefPicList:                    [2][]int{{0}, {0}},
	}
}

func (p *demoPicture) Log2CtbSizeY() int      { return 6 }
func (p *demoPicture) Log2MinTrafoSize() int  { return 2 }
func (p *demoPicture) PicWidthInCtbsY() int   { return 1 }
func (p *demoPicture) PicHeightInCtbsY() int  { return 1 }
func (p *demoPicture) PicWidthInMinCbsY() int { return p.width / 8 }
func (p *demoPicture) PicHeightInMinCbsY() int { return p.height / 8 }
func (p *demoPicture) MinCbSizeY() int        { return 8 }
func (p *demoPicture) CtbSizeY() int          { return 64 }
func (p *demoPicture) BitDepthY() int         { return 8 }
func (p *demoPicture) BitDepthC() int         { return 8 }
func (p *demoPicture) PCMLoopFilterDisableFlag() bool { return false }

func (p *demoPicture) LoopFilterAcrossTilesEnabled() bool { return true }
func (p *demoPicture) TileIdRS(ctbX, ctbY int) int        { return 0 }
func (p *demoPicture) PicCbQpOffset() int                 { return 0 }
func (p *demoPicture) PicCrQpOffset() int                 { return 0 }

func (p *demoPicture) Sample(plane deblock.Plane, x, y int) int {
	switch plane {
	case deblock.PlaneY:
		return p.y[y*p.width+x]
	case deblock.PlaneCb:
		return p.cb[y*(p.width/2)+x]
	default:
		return p.cr[y*(p.width/2)+x]
	}
}

func (p *demoPicture) SetSample(plane deblock.Plane, x, y, v int) {
	switch plane {
	case deblock.PlaneY:
		p.y[y*p.width+x] = v
	case deblock.PlaneCb:
		p.cb[y*(p.width/2)+x] = v
	default:
		p.cr[y*(p.width/2)+x] = v
	}
}
