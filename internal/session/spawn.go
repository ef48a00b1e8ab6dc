package session

import "balloon/internal/entity"

// Horizontal stretch choices for a new cloud.
var obstacleScales = [...]int{3, 2, 1}

// SpawnObstacle drops a cloud from above the surface. No-op after game over.
func (s *Session) SpawnObstacle() *entity.Entity {
	if s.state == GameOver {
		return nil
	}
	x := s.spawnX()
	scale := obstacleScales[s.rng.IntN(len(obstacleScales))]
	o := entity.NewObstacle(x, s.params.SpawnY, scale, s.params.ObstacleSpeed*s.multiplier)
	s.obstacles = append(s.obstacles, o)
	s.logger.Debug("spawned obstacle", "x", x, "scale", scale, "vy", o.VY)
	return o
}

// SpawnCollectible drops a bonus balloon. No-op after game over.
func (s *Session) SpawnCollectible() *entity.Entity {
	if s.state == GameOver {
		return nil
	}
	x := s.spawnX()
	c := entity.NewCollectible(x, s.params.SpawnY, s.params.CollectibleSpeed*s.multiplier)
	s.collectibles = append(s.collectibles, c)
	s.logger.Debug("spawned collectible", "x", x, "vy", c.VY)
	return c
}

// spawnX is a uniform integer x in [margin, width-margin].
func (s *Session) spawnX() float64 {
	lo := int(s.params.SpawnMargin)
	hi := int(s.params.Width - s.params.SpawnMargin)
	return float64(lo + s.rng.IntN(hi-lo+1))
}
