package session

import (
	"errors"
	"fmt"
	"time"
)

// Params are the tunables of one game. All distances are in surface units.
type Params struct {
	Width  float64
	Height float64

	ObstacleInterval    time.Duration
	CollectibleInterval time.Duration
	ObstacleSpeed       float64
	CollectibleSpeed    float64

	PlayerStep  float64
	Reward      int
	SpawnMargin float64 // spawn x is drawn from [SpawnMargin, Width-SpawnMargin]
	SpawnY      float64
	CullMargin  float64 // entities below Height+CullMargin are removed
}

// DefaultParams is the classic 800x600 game.
func DefaultParams() Params {
	return Params{
		Width:               800,
		Height:              600,
		ObstacleInterval:    750 * time.Millisecond,
		CollectibleInterval: 667 * time.Millisecond,
		ObstacleSpeed:       100,
		CollectibleSpeed:    120,
		PlayerStep:          5,
		Reward:              10,
		SpawnMargin:         30,
		SpawnY:              -20,
		CullMargin:          50,
	}
}

// CullY is the y past which falling entities are destroyed.
func (p Params) CullY() float64 {
	return p.Height + p.CullMargin
}

// Validate rejects parameters that cannot describe a playable surface.
func (p Params) Validate() error {
	var errs []error
	if p.Width <= 0 || p.Height <= 0 {
		errs = append(errs, fmt.Errorf("surface %vx%v must be positive", p.Width, p.Height))
	}
	if p.ObstacleInterval <= 0 || p.CollectibleInterval <= 0 {
		errs = append(errs, fmt.Errorf("spawn intervals %v/%v must be positive", p.ObstacleInterval, p.CollectibleInterval))
	}
	if p.ObstacleSpeed <= 0 || p.CollectibleSpeed <= 0 {
		errs = append(errs, fmt.Errorf("speeds %v/%v must be positive", p.ObstacleSpeed, p.CollectibleSpeed))
	}
	if p.PlayerStep <= 0 {
		errs = append(errs, fmt.Errorf("player step %v must be positive", p.PlayerStep))
	}
	if p.Reward < 0 || p.CullMargin < 0 {
		errs = append(errs, errors.New("reward and cull margin must not be negative"))
	}
	if p.SpawnMargin < 0 || 2*p.SpawnMargin > p.Width {
		errs = append(errs, fmt.Errorf("spawn margin %v does not fit width %v", p.SpawnMargin, p.Width))
	}
	return errors.Join(errs...)
}
