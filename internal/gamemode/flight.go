package gamemode

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"balloon/internal/assets"
	"balloon/internal/entity"
	"balloon/internal/input"
	"balloon/internal/session"
)

// Sounder plays the game's cues.
type Sounder interface {
	Collect()
	Crash()
}

var (
	ColSky      = color.RGBA{0x87, 0xce, 0xeb, 0xff}
	colHitBox   = color.RGBA{0xff, 0x00, 0xff, 0xff}
	colPlayerHB = color.RGBA{0x00, 0xff, 0x00, 0xff}
)

// Flight is the only scene: it feeds input to the session and draws it.
type Flight struct {
	Session  *session.Session
	Keys     input.Keymap
	Textures *assets.Manager
	Debug    bool

	logger *log.Logger
}

func NewFlight(s *session.Session, textures *assets.Manager, logger *log.Logger) *Flight {
	return &Flight{
		Session:  s,
		Keys:     input.DefaultKeymap(),
		Textures: textures,
		logger:   logger,
	}
}

// SessionHooks routes session events to sound and the log.
func SessionHooks(sound Sounder, logger *log.Logger) session.Hooks {
	return session.Hooks{
		OnCollect: func(score int) {
			logger.Debug("collected", "score", score)
			sound.Collect()
		},
		OnGameOver: func(int) { sound.Crash() },
		OnRestart: func() {
			logger.Info("new session")
		},
	}
}

// overlayRows are the y positions of the game-over lines on a surface of
// the given height: 250, 320, 380 and 425 on the classic 600.
func overlayRows(height float64) [4]float64 {
	return [4]float64{height * 250 / 600, height * 320 / 600, height * 380 / 600, height * 425 / 600}
}

// Update polls input once and advances the session.
func (f *Flight) Update() error {
	return f.Apply(f.Keys.Poll())
}

// Apply runs one tick with an already sampled input frame.
func (f *Flight) Apply(in input.Frame) error {
	if in.Quit {
		f.logger.Info("quit requested", "score", f.Session.Score())
		return ebiten.Termination
	}
	switch f.Session.State() {
	case session.GameOver:
		if in.Restart {
			f.Session.Restart()
		}
	case session.Playing:
		f.Session.Update(in.Move)
	}
	return nil
}

func (f *Flight) Draw(screen *ebiten.Image) {
	screen.Fill(ColSky)

	s := f.Session
	for _, o := range s.Obstacles() {
		f.drawEntity(screen, o, false)
	}
	for _, c := range s.Collectibles() {
		f.drawEntity(screen, c, false)
	}
	p := s.Player()
	f.drawEntity(screen, &p.Entity, p.Tinted)

	if f.Debug {
		f.drawHitBoxes(screen)
	}

	drawLabel(screen, s.ScoreText(), 16, 16, styleScore)

	if lines := s.Overlay(); lines != nil {
		cx := s.Params().Width / 2
		rows := overlayRows(s.Params().Height)
		drawLabel(screen, lines[0], cx, rows[0], styleTitle)
		drawLabel(screen, lines[1], cx, rows[1], styleFinal)
		drawLabel(screen, lines[2], cx, rows[2], stylePrompt)
		if best := s.Best(); best > 0 {
			drawLabel(screen, fmt.Sprintf("Best: %d", best), cx, rows[3], styleBest)
		}
	}
}

func (f *Flight) drawEntity(screen *ebiten.Image, e *entity.Entity, tinted bool) {
	img := f.Textures.ForKind(e.Kind)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-e.FrameW/2, -e.FrameH/2)
	op.GeoM.Scale(e.ScaleX, 1)
	op.GeoM.Translate(e.X, e.Y)
	if tinted {
		op.ColorScale.Scale(1, 0, 0, 1)
	}
	screen.DrawImage(img, op)
}

func (f *Flight) drawHitBoxes(screen *ebiten.Image) {
	s := f.Session
	stroke := func(r entity.Rect, clr color.Color) {
		vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, clr, false)
	}
	for _, o := range s.Obstacles() {
		stroke(o.HitBox(), colHitBox)
	}
	for _, c := range s.Collectibles() {
		stroke(c.HitBox(), colHitBox)
	}
	stroke(s.Player().HitBox(), colPlayerHB)

	msg := fmt.Sprintf("TPS: %0.1f FPS: %0.1f\nx%.2f  %d clouds  %d balloons  %s",
		ebiten.ActualTPS(), ebiten.ActualFPS(), s.Multiplier(),
		len(s.Obstacles()), len(s.Collectibles()), s.State())
	ebitenutil.DebugPrintAt(screen, msg, 16, int(s.Params().Height)-40)
}
