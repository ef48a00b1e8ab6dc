package assets

import (
	"image/color"
	"math"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"balloon/internal/entity"
)

// Texture names.
const (
	PlayerBalloon = "playerBalloon"
	Cloud         = "cloud"
	Collectible   = "collectible"
)

var (
	colBalloon  = color.RGBA{0xff, 0x63, 0x47, 0xff} // tomato
	colBasket   = color.RGBA{0x8b, 0x45, 0x13, 0xff}
	colCloud    = color.RGBA{0xcc, 0xcc, 0xcc, 0xcc} // white at 0.8, premultiplied
	colGold     = color.RGBA{0xff, 0xd7, 0x00, 0xff}
	colGoldDark = color.RGBA{0xcc, 0x9a, 0x00, 0xff}
	colString   = color.RGBA{0x00, 0x00, 0x00, 0xff}
)

// Manager generates every sprite once and hands out the cached images.
type Manager struct {
	images map[string]*ebiten.Image
}

// NewManager draws all textures into VRAM.
func NewManager() *Manager {
	return &Manager{
		images: map[string]*ebiten.Image{
			PlayerBalloon: drawPlayerBalloon(),
			Cloud:         drawCloud(),
			Collectible:   drawCollectible(),
		},
	}
}

// Image returns a generated texture. Asking for an unknown name is a bug.
func (m *Manager) Image(name string) *ebiten.Image {
	img, ok := m.images[name]
	if !ok {
		log.Fatalf("Unknown texture '%s'", name)
	}
	return img
}

// ForKind picks the texture an entity is drawn with.
func (m *Manager) ForKind(k entity.Kind) *ebiten.Image {
	return m.Image(TextureName(k))
}

// TextureName maps an entity kind to its texture.
func TextureName(k entity.Kind) string {
	switch k {
	case entity.KindObstacle:
		return Cloud
	case entity.KindCollectible:
		return Collectible
	default:
		return PlayerBalloon
	}
}

// Hot-air balloon: envelope circle over a basket.
func drawPlayerBalloon() *ebiten.Image {
	img := ebiten.NewImage(entity.PlayerFrameW, entity.PlayerFrameH)
	vector.DrawFilledCircle(img, 20, 19, 19, colBalloon, true)
	vector.StrokeLine(img, 12, 33, 15, 40, 1, colBasket, true)
	vector.StrokeLine(img, 28, 33, 25, 40, 1, colBasket, true)
	vector.DrawFilledRect(img, 13, 39, 14, 11, colBasket, true)
	return img
}

// Five overlapping puffs.
func drawCloud() *ebiten.Image {
	img := ebiten.NewImage(entity.ObstacleFrameW, entity.ObstacleFrameH)
	puffs := [][3]float32{
		{14, 24, 12}, {30, 22, 15}, {46, 24, 12},
		{22, 15, 10}, {38, 15, 10},
	}
	// Draw opaque first so overlaps don't stack alpha, then fade once.
	solid := ebiten.NewImage(entity.ObstacleFrameW, entity.ObstacleFrameH)
	for _, p := range puffs {
		vector.DrawFilledCircle(solid, p[0], p[1], p[2], color.White, true)
	}
	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleWithColor(colCloud)
	img.DrawImage(solid, op)
	solid.Deallocate()
	return img
}

// Gold oval with a tie and a string.
func drawCollectible() *ebiten.Image {
	const w, h = entity.CollectibleFrameW, entity.CollectibleFrameH
	img := ebiten.NewImage(w, h)
	fillEllipse(img, w/2, h/2-6, 12, 17, colGold)
	fillTriangleDown(img, w/2, h/2+11, 4, 5, colGoldDark)
	vector.StrokeLine(img, w/2, h/2+16, w/2, h-6, 2, colString, true)
	return img
}

// fillEllipse stretches a filled circle to radii rx, ry.
func fillEllipse(dst *ebiten.Image, cx, cy, rx, ry float64, clr color.Color) {
	r := math.Max(rx, ry)
	d := int(math.Ceil(2 * r))
	disc := ebiten.NewImage(d, d)
	vector.DrawFilledCircle(disc, float32(r), float32(r), float32(r), clr, true)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-r, -r)
	op.GeoM.Scale(rx/r, ry/r)
	op.GeoM.Translate(cx, cy)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(disc, op)
	disc.Deallocate()
}

// fillTriangleDown fills a triangle with a flat top edge of half-width hw at
// y and its point h pixels below, one scanline at a time.
func fillTriangleDown(dst *ebiten.Image, cx, y, hw, h float32, clr color.Color) {
	for row := float32(0); row < h; row++ {
		half := hw * (1 - row/h)
		vector.DrawFilledRect(dst, cx-half, y+row, 2*half, 1, clr, true)
	}
}
