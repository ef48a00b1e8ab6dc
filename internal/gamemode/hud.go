package gamemode

import (
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// bitmapfont glyphs are 12px tall; sizes below are scaled from that.
const glyphPx = 12

var face = text.NewGoXFace(bitmapfont.Face)

type labelStyle struct {
	size    float64
	fill    color.Color
	stroke  color.Color
	outline float64
	centred bool
}

var (
	black = color.Black
	white = color.White

	styleScore  = labelStyle{size: 32, fill: white, stroke: black, outline: 4}
	styleTitle  = labelStyle{size: 64, fill: white, stroke: black, outline: 6, centred: true}
	styleFinal  = labelStyle{size: 32, fill: white, stroke: black, outline: 4, centred: true}
	stylePrompt = labelStyle{size: 24, fill: color.RGBA{0xff, 0xd7, 0x00, 0xff}, stroke: black, outline: 3, centred: true}
	styleBest   = labelStyle{size: 20, fill: white, stroke: black, outline: 3, centred: true}
)

// outlineDirs are the eight neighbours an outline is stamped at.
var outlineDirs = [8][2]float64{{-1, -1}, {0, -1}, {1, -1}, {-1, 0}, {1, 0}, {-1, 1}, {0, 1}, {1, 1}}

// drawLabel draws msg with a stroke. Centred labels are anchored on their
// middle, others on their top-left corner.
func drawLabel(screen *ebiten.Image, msg string, x, y float64, st labelStyle) {
	scale := st.size / glyphPx
	draw := func(dx, dy float64, clr color.Color) {
		op := &text.DrawOptions{}
		if st.centred {
			op.PrimaryAlign = text.AlignCenter
			op.SecondaryAlign = text.AlignCenter
		}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(x+dx, y+dy)
		op.ColorScale.ScaleWithColor(clr)
		text.Draw(screen, msg, face, op)
	}
	if st.outline > 0 {
		d := st.outline / 2
		for _, dir := range outlineDirs {
			draw(dir[0]*d, dir[1]*d, st.stroke)
		}
	}
	draw(0, 0, st.fill)
}
