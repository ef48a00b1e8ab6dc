// Package audio synthesises the game's sound cues. Everything is generated
// at startup as 16-bit little-endian stereo PCM, so there are no files.
package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

const SampleRate = 44100

// Note is one square-wave segment with an exponential decay.
type Note struct {
	Freq  float64
	Secs  float64
	Decay float64 // envelope e^(-Decay*t)
	Vol   float64 // 0..1
}

var (
	popNotes   = []Note{{Freq: 880, Secs: 0.05, Decay: 20, Vol: 0.25}, {Freq: 1320, Secs: 0.08, Decay: 25, Vol: 0.25}}
	crashNotes = []Note{{Freq: 330, Secs: 0.12, Decay: 6, Vol: 0.3}, {Freq: 220, Secs: 0.15, Decay: 6, Vol: 0.3}, {Freq: 110, Secs: 0.35, Decay: 4, Vol: 0.3}}
)

// Render turns notes into PCM bytes.
func Render(notes []Note) []byte {
	total := 0
	for _, n := range notes {
		total += samples(n)
	}
	buf := make([]byte, 0, total*4)
	for _, n := range notes {
		for i := 0; i < samples(n); i++ {
			t := float64(i) / SampleRate
			val := -n.Vol
			if math.Mod(t*n.Freq, 1) < 0.5 {
				val = n.Vol
			}
			v := int16(val * math.Exp(-n.Decay*t) * 32767)
			buf = append(buf, byte(v), byte(v>>8), byte(v), byte(v>>8))
		}
	}
	return buf
}

func samples(n Note) int {
	return int(n.Secs * SampleRate)
}

// player is the part of *audio.Player a cue needs.
type player interface {
	SetPosition(offset time.Duration) error
	Play()
}

// Cues plays the collect and crash sounds.
type Cues struct {
	pop    player
	crash  player
	logger *log.Logger
}

// NewCues creates the two players, reusing the process audio context when
// one exists. A context at another sample rate cannot be shared and is
// reported as an error so the caller can fall back to Silent.
func NewCues(logger *log.Logger) (*Cues, error) {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(SampleRate)
	} else if ctx.SampleRate() != SampleRate {
		return nil, fmt.Errorf("audio context runs at %d Hz, cues need %d Hz", ctx.SampleRate(), SampleRate)
	}
	return &Cues{
		pop:    ctx.NewPlayerFromBytes(Render(popNotes)),
		crash:  ctx.NewPlayerFromBytes(Render(crashNotes)),
		logger: logger,
	}, nil
}

// Collect plays the bonus pop.
func (c *Cues) Collect() { c.play(c.pop, "collect") }

// Crash plays the game-over drop.
func (c *Cues) Crash() { c.play(c.crash, "crash") }

func (c *Cues) play(p player, name string) {
	if err := p.SetPosition(0); err != nil {
		c.logger.Warn("rewinding cue", "cue", name, "err", err)
		return
	}
	p.Play()
}

// Silent is a no-op cue set for when audio is off.
type Silent struct{}

func (Silent) Collect() {}
func (Silent) Crash()   {}
