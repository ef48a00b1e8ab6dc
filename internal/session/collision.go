package session

import (
	"fmt"

	"balloon/internal/entity"
)

// resolveOverlaps runs the two overlap reactions. Clouds are checked first;
// once the player is down nothing else moves or scores this frame.
func (s *Session) resolveOverlaps() {
	hb := s.player.HitBox()
	for _, o := range s.obstacles {
		if hb.Overlaps(o.HitBox()) {
			s.HitObstacle(o)
			break
		}
	}
	if s.state == GameOver {
		return
	}

	var touched []*entity.Entity
	for _, c := range s.collectibles {
		if hb.Overlaps(c.HitBox()) {
			touched = append(touched, c)
		}
	}
	for _, c := range touched {
		s.Collect(c)
	}
}

// HitObstacle ends the session. Later hits before a restart are ignored.
// A nil o ends the session without naming the cloud.
func (s *Session) HitObstacle(o *entity.Entity) {
	if s.state == GameOver {
		return
	}
	s.state = GameOver
	s.player.Tinted = true
	s.restartArmed = true
	if s.score > s.best {
		s.best = s.score
	}
	kv := []any{"score", s.score, "best", s.best, "elapsed", s.Elapsed()}
	if o != nil {
		kv = append(kv, "obstacle_x", o.X)
	}
	s.logger.Info("game over", kv...)
	if s.hooks.OnGameOver != nil {
		s.hooks.OnGameOver(s.score)
	}
}

// Collect removes c and pays out the reward. Collecting after game over,
// or an entity the session no longer owns, does nothing.
func (s *Session) Collect(c *entity.Entity) {
	if s.state == GameOver {
		return
	}
	var ok bool
	s.collectibles, ok = remove(s.collectibles, c)
	if !ok {
		return
	}
	s.score += s.params.Reward
	s.scoreText = fmt.Sprintf("Score: %d", s.score)
	if s.hooks.OnCollect != nil {
		s.hooks.OnCollect(s.score)
	}
}

func remove(list []*entity.Entity, e *entity.Entity) ([]*entity.Entity, bool) {
	for i, x := range list {
		if x == e {
			copy(list[i:], list[i+1:])
			list[len(list)-1] = nil
			return list[:len(list)-1], true
		}
	}
	return list, false
}
