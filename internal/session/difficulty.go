package session

import "time"

const (
	difficultyPeriod = 10 * time.Second
	difficultyStep   = 0.5
)

// Multiplier is the descent speed factor after elapsed session time:
// +50% every ten seconds, without a cap.
func Multiplier(elapsed time.Duration) float64 {
	if elapsed < 0 {
		elapsed = 0
	}
	return 1 + float64(elapsed)/float64(difficultyPeriod)*difficultyStep
}
