// Package config loads game settings from the environment and an optional
// .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"balloon/internal/session"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds everything main needs to open the window and start a game.
type Config struct {
	Title string

	// Width and Height are the logical surface, returned from Layout.
	Width  int
	Height int

	// WindowScale multiplies the surface to size the desktop window.
	WindowScale float64

	// TPS is the engine tick rate.
	TPS int

	ObstacleInterval    time.Duration
	CollectibleInterval time.Duration
	ObstacleSpeed       float64
	CollectibleSpeed    float64
	PlayerStep          float64

	// Seed for the spawn rng. Zero seeds from the wall clock.
	Seed uint64

	LogLevel string

	// Debug draws hit boxes and a timing line.
	Debug bool

	Audio bool
}

// Default returns the classic 800x600 setup.
func Default() Config {
	p := session.DefaultParams()
	return Config{
		Title:               "Balloon Rise",
		Width:               int(p.Width),
		Height:              int(p.Height),
		WindowScale:         1,
		TPS:                 60,
		ObstacleInterval:    p.ObstacleInterval,
		CollectibleInterval: p.CollectibleInterval,
		ObstacleSpeed:       p.ObstacleSpeed,
		CollectibleSpeed:    p.CollectibleSpeed,
		PlayerStep:          p.PlayerStep,
		LogLevel:            "info",
		Audio:               true,
	}
}

// Load reads the given .env files (".env" when none are named), then
// builds the config from the process environment. Missing files are fine.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("loading env file: %w", err)
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv overlays BALLOON_* variables on Default and validates the result.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	c := Default()
	e := env{lookup: lookup}

	c.Title = e.str("BALLOON_TITLE", c.Title)
	c.Width = e.int("BALLOON_WIDTH", c.Width)
	c.Height = e.int("BALLOON_HEIGHT", c.Height)
	c.WindowScale = e.float("BALLOON_WINDOW_SCALE", c.WindowScale)
	c.TPS = e.int("BALLOON_TPS", c.TPS)
	c.ObstacleInterval = e.duration("BALLOON_OBSTACLE_INTERVAL", c.ObstacleInterval)
	c.CollectibleInterval = e.duration("BALLOON_COLLECTIBLE_INTERVAL", c.CollectibleInterval)
	c.ObstacleSpeed = e.float("BALLOON_OBSTACLE_SPEED", c.ObstacleSpeed)
	c.CollectibleSpeed = e.float("BALLOON_COLLECTIBLE_SPEED", c.CollectibleSpeed)
	c.PlayerStep = e.float("BALLOON_PLAYER_STEP", c.PlayerStep)
	c.Seed = e.uint("BALLOON_SEED", c.Seed)
	c.LogLevel = e.str("BALLOON_LOG_LEVEL", c.LogLevel)
	c.Debug = e.bool("BALLOON_DEBUG", c.Debug)
	c.Audio = e.bool("BALLOON_AUDIO", c.Audio)

	if err := errors.Join(e.errs...); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects settings that cannot start a game.
func (c Config) Validate() error {
	var errs []error
	if c.WindowScale <= 0 {
		errs = append(errs, fmt.Errorf("window scale %v must be positive", c.WindowScale))
	}
	if c.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps %d must be positive", c.TPS))
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log level: %w", err))
	}
	errs = append(errs, c.Params().Validate())
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// Level is the parsed log level; unknown names fall back to info.
func (c Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// Params converts to session tunables. Spawn margins and the cull line are
// the session defaults, which are relative to the surface size.
func (c Config) Params() session.Params {
	p := session.DefaultParams()
	p.Width = float64(c.Width)
	p.Height = float64(c.Height)
	p.ObstacleInterval = c.ObstacleInterval
	p.CollectibleInterval = c.CollectibleInterval
	p.ObstacleSpeed = c.ObstacleSpeed
	p.CollectibleSpeed = c.CollectibleSpeed
	p.PlayerStep = c.PlayerStep
	return p
}

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// env parses typed values and collects every parse failure.
type env struct {
	lookup func(string) (string, bool)
	errs   []error
}

func (e *env) str(key, fallback string) string {
	if v, ok := e.lookup(key); ok && v != "" {
		return v
	}
	return fallback
}

func (e *env) parse(key string, fn func(string) error) {
	v, ok := e.lookup(key)
	if !ok || v == "" {
		return
	}
	if err := fn(v); err != nil {
		e.errs = append(e.errs, fmt.Errorf("%s=%q: %w", key, v, err))
	}
}

func (e *env) int(key string, fallback int) int {
	out := fallback
	e.parse(key, func(v string) (err error) {
		out, err = strconv.Atoi(v)
		return err
	})
	return out
}

func (e *env) uint(key string, fallback uint64) uint64 {
	out := fallback
	e.parse(key, func(v string) (err error) {
		out, err = strconv.ParseUint(v, 10, 64)
		return err
	})
	return out
}

func (e *env) float(key string, fallback float64) float64 {
	out := fallback
	e.parse(key, func(v string) (err error) {
		out, err = strconv.ParseFloat(v, 64)
		return err
	})
	return out
}

func (e *env) bool(key string, fallback bool) bool {
	out := fallback
	e.parse(key, func(v string) (err error) {
		out, err = strconv.ParseBool(v)
		return err
	})
	return out
}

func (e *env) duration(key string, fallback time.Duration) time.Duration {
	out := fallback
	e.parse(key, func(v string) (err error) {
		out, err = time.ParseDuration(v)
		return err
	})
	return out
}
