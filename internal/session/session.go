// Package session is the game session controller: it owns the player, the
// falling clouds and bonus balloons, the score, the spawn timers and the
// Playing/GameOver state machine. It knows nothing about rendering.
package session

import (
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"balloon/internal/entity"
)

// State of the session state machine.
type State int

const (
	Playing State = iota
	GameOver
)

func (s State) String() string {
	if s == GameOver {
		return "game over"
	}
	return "playing"
}

// maxFrameDelta caps how far one frame can move the world, so a stalled
// window does not teleport everything on resume. Spawn timers get the capped
// delta too, so a stall does not release a burst of spawns; the difficulty
// multiplier still follows the wall clock.
const maxFrameDelta = 100 * time.Millisecond

// Controls is the horizontal input held during one frame.
type Controls struct {
	Left  bool
	Right bool
}

// Clock supplies wall-clock time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Rand is the random source used by the spawners. *rand.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

// Hooks are notified synchronously from inside Update, Collect and Restart.
type Hooks struct {
	OnCollect  func(score int)
	OnGameOver func(score int)
	OnRestart  func()
}

// Option customises a Session.
type Option func(*Session)

func WithClock(c Clock) Option { return func(s *Session) { s.clock = c } }

func WithRand(r Rand) Option { return func(s *Session) { s.rng = r } }

func WithLogger(l *log.Logger) Option { return func(s *Session) { s.logger = l } }

func WithHooks(h Hooks) Option { return func(s *Session) { s.hooks = h } }

// Session is one running game plus the state that survives restarts.
type Session struct {
	params Params
	clock  Clock
	rng    Rand
	logger *log.Logger
	hooks  Hooks

	state        State
	player       *entity.Player
	obstacles    []*entity.Entity
	collectibles []*entity.Entity
	score        int
	best         int
	scoreText    string
	multiplier   float64
	restartArmed bool

	startedAt        time.Time
	lastFrame        time.Time
	obstacleTimer    *Timer
	collectibleTimer *Timer
}

// New builds a session and runs scene setup. Invalid params are a
// programming error and panic.
func New(p Params, opts ...Option) *Session {
	if err := p.Validate(); err != nil {
		panic(fmt.Sprintf("session: invalid params: %v", err))
	}
	s := &Session{
		params: p,
		clock:  systemClock{},
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	s.Reset()
	return s
}

// Reset is scene setup: fresh player, empty collections, new timers, zero
// score and a new start time. The best score is kept.
func (s *Session) Reset() {
	now := s.clock.Now()
	s.state = Playing
	s.player = entity.NewPlayer(s.params.Width/2, s.params.Height-50)
	s.obstacles = nil
	s.collectibles = nil
	s.score = 0
	s.scoreText = "Score: 0"
	s.multiplier = 1
	s.restartArmed = false
	s.startedAt = now
	s.lastFrame = now
	s.obstacleTimer = newTimer(s.params.ObstacleInterval, func() { s.SpawnObstacle() })
	s.collectibleTimer = newTimer(s.params.CollectibleInterval, func() { s.SpawnCollectible() })
}

// Update advances one frame. It does nothing once the game is over.
func (s *Session) Update(c Controls) {
	if s.state == GameOver {
		return
	}
	now := s.clock.Now()
	dt := now.Sub(s.lastFrame)
	s.lastFrame = now
	dt = min(max(dt, 0), maxFrameDelta)

	switch {
	case c.Left:
		s.player.X -= s.params.PlayerStep
	case c.Right:
		s.player.X += s.params.PlayerStep
	}
	s.clampPlayer()

	s.multiplier = Multiplier(now.Sub(s.startedAt))

	s.obstacleTimer.Advance(dt)
	s.collectibleTimer.Advance(dt)

	secs := dt.Seconds()
	for _, o := range s.obstacles {
		o.Step(secs)
	}
	for _, b := range s.collectibles {
		b.Step(secs)
	}

	s.resolveOverlaps()
	if s.state == GameOver {
		return
	}
	s.sweep()
}

// Restart leaves GameOver and re-runs setup. It works once per game over
// and reports whether it did anything.
func (s *Session) Restart() bool {
	if s.state != GameOver || !s.restartArmed {
		return false
	}
	s.restartArmed = false
	final := s.score
	s.Reset()
	s.logger.Info("restarted", "previous_score", final, "best", s.best)
	if s.hooks.OnRestart != nil {
		s.hooks.OnRestart()
	}
	return true
}

// clampPlayer keeps the player's hit box, not its sprite, on the surface.
func (s *Session) clampPlayer() {
	hb := s.player.HitBox()
	if hb.X < 0 {
		s.player.X -= hb.X
	} else if right := hb.X + hb.W; right > s.params.Width {
		s.player.X -= right - s.params.Width
	}
}

// sweep drops everything that fell past the cull line.
func (s *Session) sweep() {
	cull := s.params.CullY()
	s.obstacles = keepAbove(s.obstacles, cull)
	s.collectibles = keepAbove(s.collectibles, cull)
}

func keepAbove(list []*entity.Entity, y float64) []*entity.Entity {
	kept := list[:0]
	for _, e := range list {
		if e.Y <= y {
			kept = append(kept, e)
		}
	}
	clear(list[len(kept):])
	return kept
}

func (s *Session) State() State { return s.state }

func (s *Session) Score() int { return s.score }

// Best is the highest final score of any finished session in this process.
func (s *Session) Best() int { return s.best }

func (s *Session) Multiplier() float64 { return s.multiplier }

func (s *Session) Params() Params { return s.params }

// Elapsed is wall-clock time since the current session started.
func (s *Session) Elapsed() time.Duration { return s.clock.Now().Sub(s.startedAt) }

// Player returns the live player. Callers must treat it as read-only.
func (s *Session) Player() *entity.Player { return s.player }

// Obstacles returns the live clouds. Callers must not modify the slice.
func (s *Session) Obstacles() []*entity.Entity { return s.obstacles }

// Collectibles returns the live bonus balloons. Callers must not modify the slice.
func (s *Session) Collectibles() []*entity.Entity { return s.collectibles }

// ScoreText is the HUD readout, kept in sync with every score change.
func (s *Session) ScoreText() string { return s.scoreText }

// Overlay is the end-of-session readout, or nil while playing.
func (s *Session) Overlay() []string {
	if s.state != GameOver {
		return nil
	}
	return []string{
		"GAME OVER",
		fmt.Sprintf("Final Score: %d", s.score),
		"Press SPACE to Restart",
	}
}
