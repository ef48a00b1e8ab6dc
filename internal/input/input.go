// Package input turns the keyboard into a per-tick snapshot.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"balloon/internal/session"
)

// Frame is the input state for one tick.
type Frame struct {
	Move    session.Controls // level-triggered
	Restart bool             // edge-triggered
	Quit    bool             // edge-triggered
}

// Keymap binds logical buttons to keys. Any bound key triggers its button.
type Keymap struct {
	Left    []ebiten.Key
	Right   []ebiten.Key
	Restart []ebiten.Key
	Quit    []ebiten.Key
}

// DefaultKeymap uses the arrows or A/D, Space to restart and Escape to quit.
func DefaultKeymap() Keymap {
	return Keymap{
		Left:    []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA},
		Right:   []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD},
		Restart: []ebiten.Key{ebiten.KeySpace},
		Quit:    []ebiten.Key{ebiten.KeyEscape},
	}
}

// Poll samples the keyboard. Call it once per Update.
func (k Keymap) Poll() Frame {
	return k.Read(ebiten.IsKeyPressed, inpututil.IsKeyJustPressed)
}

// Read builds a Frame from the given key queries.
func (k Keymap) Read(held, justPressed func(ebiten.Key) bool) Frame {
	return Frame{
		Move: session.Controls{
			Left:  anyPressed(k.Left, held),
			Right: anyPressed(k.Right, held),
		},
		Restart: anyPressed(k.Restart, justPressed),
		Quit:    anyPressed(k.Quit, justPressed),
	}
}

func anyPressed(keys []ebiten.Key, pressed func(ebiten.Key) bool) bool {
	for _, key := range keys {
		if pressed(key) {
			return true
		}
	}
	return false
}
