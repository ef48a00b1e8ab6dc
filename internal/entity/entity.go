// Package entity holds the plain data the simulation moves around: sprites
// reduced to a centre point, a frame size and a collision body.
package entity

// Kind selects how an entity is drawn and how the session reacts to it.
type Kind int

const (
	KindPlayer Kind = iota
	KindObstacle
	KindCollectible
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindObstacle:
		return "obstacle"
	case KindCollectible:
		return "collectible"
	}
	return "unknown"
}

// Sprite frame sizes, in surface units, before any scaling.
const (
	PlayerFrameW      = 40
	PlayerFrameH      = 50
	ObstacleFrameW    = 60
	ObstacleFrameH    = 40
	CollectibleFrameW = 36
	CollectibleFrameH = 56
)

// Rect is an axis-aligned box. X, Y is the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Overlaps reports whether r and o share any area. Touching edges do not count.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Body is a collision region relative to the sprite's top-left corner.
// It is independent of the visual size.
type Body struct {
	W, H             float64
	OffsetX, OffsetY float64
}

// Entity is anything that falls through the play area, or the player.
// X, Y is the sprite centre.
type Entity struct {
	Kind   Kind
	X, Y   float64
	FrameW float64
	FrameH float64
	ScaleX float64
	VY     float64
	Body   Body
}

// Width is the on-screen sprite width after horizontal scaling.
func (e *Entity) Width() float64 {
	return e.FrameW * e.ScaleX
}

// Bounds returns the drawn sprite rectangle.
func (e *Entity) Bounds() Rect {
	w := e.Width()
	return Rect{X: e.X - w/2, Y: e.Y - e.FrameH/2, W: w, H: e.FrameH}
}

// HitBox returns the collision region in surface coordinates. The body
// offset is applied as-is on top of the scaled sprite corner.
func (e *Entity) HitBox() Rect {
	b := e.Bounds()
	return Rect{
		X: b.X + e.Body.OffsetX,
		Y: b.Y + e.Body.OffsetY,
		W: e.Body.W,
		H: e.Body.H,
	}
}

// Step moves the entity along its velocity for dt seconds.
func (e *Entity) Step(dt float64) {
	e.Y += e.VY * dt
}

// Player is the hot-air balloon. Tinted is set when it hits a cloud.
type Player struct {
	Entity
	Tinted bool
}

// NewPlayer places the balloon with a small core hit box.
func NewPlayer(x, y float64) *Player {
	return &Player{
		Entity: Entity{
			Kind:   KindPlayer,
			X:      x,
			Y:      y,
			FrameW: PlayerFrameW,
			FrameH: PlayerFrameH,
			ScaleX: 1,
			Body:   Body{W: 16, H: 20, OffsetX: 12, OffsetY: 15},
		},
	}
}

// NewObstacle creates a cloud stretched horizontally by scale. Body width
// grows with scale but the offset stays fixed at (12,12).
func NewObstacle(x, y float64, scale int, vy float64) *Entity {
	s := float64(scale)
	return &Entity{
		Kind:   KindObstacle,
		X:      x,
		Y:      y,
		FrameW: ObstacleFrameW,
		FrameH: ObstacleFrameH,
		ScaleX: s,
		VY:     vy,
		Body:   Body{W: 15 * s, H: 15, OffsetX: 12, OffsetY: 12},
	}
}

// NewCollectible creates a bonus balloon.
func NewCollectible(x, y, vy float64) *Entity {
	return &Entity{
		Kind:   KindCollectible,
		X:      x,
		Y:      y,
		FrameW: CollectibleFrameW,
		FrameH: CollectibleFrameH,
		ScaleX: 1,
		VY:     vy,
		Body:   Body{W: 12, H: 12, OffsetX: 9, OffsetY: 9},
	}
}
