package session

import (
	"testing"
	"time"

	"balloon/internal/entity"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

// seqRand replays vals, each reduced modulo n.
type seqRand struct {
	vals []int
	i    int
}

func (r *seqRand) IntN(n int) int {
	if len(r.vals) == 0 {
		return 0
	}
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v % n
}

type recorder struct {
	collects  []int
	gameOvers []int
	restarts  int
}

func (r *recorder) hooks() Hooks {
	return Hooks{
		OnCollect:  func(score int) { r.collects = append(r.collects, score) },
		OnGameOver: func(score int) { r.gameOvers = append(r.gameOvers, score) },
		OnRestart:  func() { r.restarts++ },
	}
}

func newTestSession(t *testing.T, vals ...int) (*Session, *fakeClock, *recorder) {
	t.Helper()
	clk := &fakeClock{now: time.Unix(1700000000, 0)}
	rec := &recorder{}
	s := New(DefaultParams(), WithClock(clk), WithRand(&seqRand{vals: vals}), WithHooks(rec.hooks()))
	return s, clk, rec
}

func TestNewSessionStartsPlaying(t *testing.T) {
	s, _, _ := newTestSession(t)
	if s.State() != Playing {
		t.Fatalf("state = %v, want playing", s.State())
	}
	if s.Score() != 0 || s.ScoreText() != "Score: 0" {
		t.Fatalf("score = %d %q, want 0 \"Score: 0\"", s.Score(), s.ScoreText())
	}
	if p := s.Player(); p.X != 400 || p.Y != 550 || p.Tinted {
		t.Fatalf("player = (%v,%v) tinted=%v, want (400,550) untinted", p.X, p.Y, p.Tinted)
	}
	if len(s.Obstacles()) != 0 || len(s.Collectibles()) != 0 {
		t.Fatalf("expected empty collections")
	}
	if s.Multiplier() != 1 {
		t.Fatalf("multiplier = %v, want 1", s.Multiplier())
	}
	if s.Overlay() != nil {
		t.Fatalf("overlay while playing = %v, want nil", s.Overlay())
	}
}

func TestNewPanicsOnInvalidParams(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for negative width")
		}
	}()
	p := DefaultParams()
	p.Width = -800
	New(p)
}

func TestUpdateMovesPlayerHorizontally(t *testing.T) {
	cases := []struct {
		name  string
		in    Controls
		wantX float64
	}{
		{"idle", Controls{}, 400},
		{"left", Controls{Left: true}, 395},
		{"right", Controls{Right: true}, 405},
		{"both prefers left", Controls{Left: true, Right: true}, 395},
	}
	for _, tc := range cases {
		s, _, _ := newTestSession(t)
		s.Update(tc.in)
		if got := s.Player().X; got != tc.wantX {
			t.Errorf("%s: x = %v, want %v", tc.name, got, tc.wantX)
		}
		if got := s.Player().Y; got != 550 {
			t.Errorf("%s: y = %v, want 550", tc.name, got)
		}
	}
}

func TestPlayerStaysOnSurface(t *testing.T) {
	s, _, _ := newTestSession(t)
	for i := 0; i < 200; i++ {
		s.Update(Controls{Left: true})
	}
	// The 16-wide hit box sits 12 in from the sprite's left edge.
	if got := s.Player().X; got != 8 {
		t.Fatalf("x after holding left = %v, want 8", got)
	}
	if hb := s.Player().HitBox(); hb.X != 0 {
		t.Fatalf("hit box left = %v, want 0", hb.X)
	}
	for i := 0; i < 400; i++ {
		s.Update(Controls{Right: true})
	}
	if got := s.Player().X; got != 792 {
		t.Fatalf("x after holding right = %v, want 792", got)
	}
	if hb := s.Player().HitBox(); hb.X+hb.W != 800 {
		t.Fatalf("hit box right = %v, want 800", hb.X+hb.W)
	}
}

func TestUpdateRecomputesMultiplier(t *testing.T) {
	s, clk, _ := newTestSession(t)
	prev := s.Multiplier()
	for i := 0; i < 50; i++ {
		clk.advance(400 * time.Millisecond)
		s.Update(Controls{})
		if s.State() != Playing {
			break
		}
		if s.Multiplier() < prev {
			t.Fatalf("multiplier decreased: %v -> %v", prev, s.Multiplier())
		}
		prev = s.Multiplier()
	}
	if prev <= 1 {
		t.Fatalf("multiplier never grew: %v", prev)
	}
}

func TestSpawnVelocitiesScaleWithDifficulty(t *testing.T) {
	s, clk, _ := newTestSession(t)
	clk.advance(5 * time.Second)
	s.Update(Controls{})
	if s.Multiplier() != 1.25 {
		t.Fatalf("multiplier at 5s = %v, want 1.25", s.Multiplier())
	}
	if o := s.SpawnObstacle(); o.VY != 125 {
		t.Fatalf("obstacle vy = %v, want 125", o.VY)
	}
	if c := s.SpawnCollectible(); c.VY != 150 {
		t.Fatalf("collectible vy = %v, want 150", c.VY)
	}
}

func TestSpawnObstacleScaleTwoHitBox(t *testing.T) {
	// x draw 370 -> x = 400, scale draw 1 -> scale 2.
	s, _, _ := newTestSession(t, 370, 1)
	o := s.SpawnObstacle()
	if o.X != 400 || o.Y != -20 {
		t.Fatalf("spawned at (%v,%v), want (400,-20)", o.X, o.Y)
	}
	if o.ScaleX != 2 {
		t.Fatalf("scale = %v, want 2", o.ScaleX)
	}
	if o.Body.W != 30 || o.Body.H != 15 {
		t.Fatalf("body = %vx%v, want 30x15", o.Body.W, o.Body.H)
	}
	if o.Body.OffsetX != 12 || o.Body.OffsetY != 12 {
		t.Fatalf("offset = (%v,%v), want (12,12)", o.Body.OffsetX, o.Body.OffsetY)
	}
	if o.VY != 100 {
		t.Fatalf("vy = %v, want 100", o.VY)
	}
}

func TestSpawnXRange(t *testing.T) {
	s, _, _ := newTestSession(t, 0, 0, 740, 0)
	if x := s.SpawnObstacle().X; x != 30 {
		t.Fatalf("lowest x = %v, want 30", x)
	}
	if x := s.SpawnObstacle().X; x != 770 {
		t.Fatalf("highest x = %v, want 770", x)
	}
	if got := s.Obstacles()[0].ScaleX; got != 3 {
		t.Fatalf("scale draw 0 = %v, want 3", got)
	}
}

func TestTimersSpawnFromUpdate(t *testing.T) {
	s, clk, _ := newTestSession(t, 100)
	for i := 0; i < 7; i++ {
		clk.advance(100 * time.Millisecond)
		s.Update(Controls{})
	}
	if n := len(s.Collectibles()); n != 1 {
		t.Fatalf("collectibles after 700ms = %d, want 1", n)
	}
	if n := len(s.Obstacles()); n != 0 {
		t.Fatalf("obstacles after 700ms = %d, want 0", n)
	}
	clk.advance(100 * time.Millisecond)
	s.Update(Controls{})
	if n := len(s.Obstacles()); n != 1 {
		t.Fatalf("obstacles after 800ms = %d, want 1", n)
	}
}

func TestUpdateMovesEntitiesByVelocity(t *testing.T) {
	s, clk, _ := newTestSession(t)
	c := entity.NewCollectible(100, 0, 120)
	s.collectibles = append(s.collectibles, c)
	clk.advance(50 * time.Millisecond)
	s.Update(Controls{})
	if c.Y != 6 {
		t.Fatalf("y after 50ms at 120/s = %v, want 6", c.Y)
	}
}

func TestSweepRemovesEntitiesPastCullLine(t *testing.T) {
	s, _, _ := newTestSession(t)
	s.obstacles = append(s.obstacles,
		entity.NewObstacle(100, 651, 1, 0),
		entity.NewObstacle(100, 650, 1, 0),
	)
	s.collectibles = append(s.collectibles,
		entity.NewCollectible(700, 900, 0),
		entity.NewCollectible(700, 10, 0),
	)
	s.Update(Controls{})
	if len(s.Obstacles()) != 1 || s.Obstacles()[0].Y != 650 {
		t.Fatalf("obstacles after sweep = %d, want only y=650", len(s.Obstacles()))
	}
	if len(s.Collectibles()) != 1 || s.Collectibles()[0].Y != 10 {
		t.Fatalf("collectibles after sweep = %d, want only y=10", len(s.Collectibles()))
	}
}

func TestCollectAddsReward(t *testing.T) {
	s, _, rec := newTestSession(t)
	s.collectibles = append(s.collectibles, entity.NewCollectible(400, 560, 0))
	s.Update(Controls{})
	if s.Score() != 10 {
		t.Fatalf("score = %d, want 10", s.Score())
	}
	if s.ScoreText() != "Score: 10" {
		t.Fatalf("score text = %q, want \"Score: 10\"", s.ScoreText())
	}
	if len(s.Collectibles()) != 0 {
		t.Fatalf("collected balloon still present")
	}
	if len(rec.collects) != 1 || rec.collects[0] != 10 {
		t.Fatalf("collect hooks = %v, want [10]", rec.collects)
	}

	s.collectibles = append(s.collectibles, entity.NewCollectible(400, 560, 0))
	s.Update(Controls{})
	if s.Score() != 20 {
		t.Fatalf("score after second collect = %d, want 20", s.Score())
	}
}

func TestCollectIgnoresUnknownEntity(t *testing.T) {
	s, _, rec := newTestSession(t)
	s.Collect(entity.NewCollectible(0, 0, 0))
	if s.Score() != 0 || len(rec.collects) != 0 {
		t.Fatalf("score = %d hooks = %v, want untouched", s.Score(), rec.collects)
	}
}

func TestObstacleHitEndsGameOnce(t *testing.T) {
	s, _, rec := newTestSession(t)
	s.score = 30
	first := entity.NewObstacle(400, 550, 1, 0)
	second := entity.NewObstacle(402, 552, 1, 0)
	s.obstacles = append(s.obstacles, first, second)
	s.collectibles = append(s.collectibles, entity.NewCollectible(400, 560, 0))

	s.Update(Controls{})
	if s.State() != GameOver {
		t.Fatalf("state = %v, want game over", s.State())
	}
	if !s.Player().Tinted {
		t.Fatalf("player not tinted after hit")
	}
	if s.Score() != 30 {
		t.Fatalf("score = %d, want 30 (no collect after death)", s.Score())
	}
	s.HitObstacle(second)
	if len(rec.gameOvers) != 1 || rec.gameOvers[0] != 30 {
		t.Fatalf("game over hooks = %v, want [30]", rec.gameOvers)
	}
	want := []string{"GAME OVER", "Final Score: 30", "Press SPACE to Restart"}
	got := s.Overlay()
	if len(got) != len(want) {
		t.Fatalf("overlay = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("overlay[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if s.Best() != 30 {
		t.Fatalf("best = %d, want 30", s.Best())
	}
}

func TestGameOverFreezesEverything(t *testing.T) {
	s, clk, _ := newTestSession(t)
	s.obstacles = append(s.obstacles, entity.NewObstacle(400, 550, 1, 100))
	faller := entity.NewCollectible(100, 700, 120)
	s.collectibles = append(s.collectibles, faller)
	s.Update(Controls{})
	if s.State() != GameOver {
		t.Fatalf("state = %v, want game over", s.State())
	}

	x, score, m := s.Player().X, s.Score(), s.Multiplier()
	ys := []float64{s.Obstacles()[0].Y, faller.Y}
	for i := 0; i < 30; i++ {
		clk.advance(time.Second)
		s.Update(Controls{Left: true})
	}
	if s.Player().X != x || s.Score() != score || s.Multiplier() != m {
		t.Fatalf("state changed during game over")
	}
	if len(s.Obstacles()) != 1 || len(s.Collectibles()) != 1 {
		t.Fatalf("collections changed during game over: %d/%d", len(s.Obstacles()), len(s.Collectibles()))
	}
	if s.Obstacles()[0].Y != ys[0] || faller.Y != ys[1] {
		t.Fatalf("entities moved during game over")
	}
	if s.SpawnObstacle() != nil || s.SpawnCollectible() != nil {
		t.Fatalf("spawners ran during game over")
	}
}

func TestCollectIgnoredAfterGameOver(t *testing.T) {
	s, _, rec := newTestSession(t)
	late := entity.NewCollectible(100, 100, 0)
	s.collectibles = append(s.collectibles, late)
	s.obstacles = append(s.obstacles, entity.NewObstacle(400, 550, 1, 0))
	s.Update(Controls{})
	if s.State() != GameOver {
		t.Fatalf("state = %v, want game over", s.State())
	}

	s.Collect(late)
	if s.Score() != 0 || s.ScoreText() != "Score: 0" {
		t.Fatalf("score after late collect = %d %q, want 0 \"Score: 0\"", s.Score(), s.ScoreText())
	}
	if got := s.Overlay()[1]; got != "Final Score: 0" {
		t.Fatalf("final score line = %q, want \"Final Score: 0\"", got)
	}
	if len(s.Collectibles()) != 1 || len(rec.collects) != 0 {
		t.Fatalf("late collect changed state: %d left, hooks %v", len(s.Collectibles()), rec.collects)
	}
}

func TestHitObstacleWithoutEntity(t *testing.T) {
	s, _, rec := newTestSession(t)
	s.HitObstacle(nil)
	if s.State() != GameOver || len(rec.gameOvers) != 1 {
		t.Fatalf("state = %v hooks = %v, want game over once", s.State(), rec.gameOvers)
	}
}

func TestStallCapsSpawnTimers(t *testing.T) {
	s, clk, _ := newTestSession(t)
	clk.advance(3 * time.Second)
	s.Update(Controls{})
	if n := len(s.Obstacles()) + len(s.Collectibles()); n != 0 {
		t.Fatalf("spawned %d entities after one stalled frame, want 0", n)
	}
	if want := Multiplier(3 * time.Second); s.Multiplier() != want {
		t.Fatalf("multiplier after 3s stall = %v, want %v", s.Multiplier(), want)
	}
}

func TestRestart(t *testing.T) {
	s, clk, rec := newTestSession(t)
	if s.Restart() {
		t.Fatalf("restart while playing should do nothing")
	}

	clk.advance(20 * time.Second)
	s.Update(Controls{Right: true})
	if s.Multiplier() != 2 {
		t.Fatalf("multiplier at 20s = %v, want 2", s.Multiplier())
	}
	s.collectibles = append(s.collectibles, entity.NewCollectible(405, 560, 0))
	s.Update(Controls{})
	s.obstacles = append(s.obstacles, entity.NewObstacle(450, 550, 3, 0))
	s.Update(Controls{})
	if s.State() != GameOver {
		t.Fatalf("state = %v, want game over", s.State())
	}

	if !s.Restart() {
		t.Fatalf("restart after game over returned false")
	}
	if s.State() != Playing || s.Score() != 0 || s.Multiplier() != 1 {
		t.Fatalf("after restart: state=%v score=%d multiplier=%v", s.State(), s.Score(), s.Multiplier())
	}
	if s.ScoreText() != "Score: 0" {
		t.Fatalf("score text = %q, want \"Score: 0\"", s.ScoreText())
	}
	if p := s.Player(); p.X != 400 || p.Tinted {
		t.Fatalf("player not reset: x=%v tinted=%v", p.X, p.Tinted)
	}
	if len(s.Obstacles()) != 0 || len(s.Collectibles()) != 0 {
		t.Fatalf("collections not emptied")
	}
	if s.Elapsed() != 0 {
		t.Fatalf("elapsed after restart = %v, want 0", s.Elapsed())
	}
	if s.Best() != 10 {
		t.Fatalf("best = %d, want 10", s.Best())
	}
	if rec.restarts != 1 {
		t.Fatalf("restart hooks = %d, want 1", rec.restarts)
	}
	if s.Restart() {
		t.Fatalf("second restart should do nothing")
	}
}
