package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"balloon/internal/gamemode"
)

// Game adapts the flight scene to ebiten.Game.
type Game struct {
	Flight *gamemode.Flight

	width, height int
}

// Update: Logic (fixed TPS)
func (g *Game) Update() error {
	return g.Flight.Update()
}

// Draw: Rendering (VSync)
func (g *Game) Draw(screen *ebiten.Image) {
	g.Flight.Draw(screen)
}

// Layout: the play area is fixed; ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
