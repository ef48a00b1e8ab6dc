package main

import (
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"balloon/internal/assets"
	"balloon/internal/audio"
	"balloon/internal/config"
	"balloon/internal/gamemode"
	"balloon/internal/session"
)

// NewGame wires config, sound, textures and the session into a runnable Game.
func NewGame(cfg config.Config, logger *log.Logger) *Game {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	var sound gamemode.Sounder = audio.Silent{}
	if cfg.Audio {
		cues, err := audio.NewCues(logger)
		if err != nil {
			logger.Warn("audio disabled", "err", err)
		} else {
			sound = cues
		}
	}

	s := session.New(cfg.Params(),
		session.WithRand(rand.New(rand.NewPCG(seed, seed>>1))),
		session.WithLogger(logger.WithPrefix("session")),
		session.WithHooks(gamemode.SessionHooks(sound, logger)),
	)

	flight := gamemode.NewFlight(s, assets.NewManager(), logger)
	flight.Debug = cfg.Debug

	logger.Debug("new game", "seed", seed, "debug", cfg.Debug)
	return &Game{
		Flight: flight,
		width:  cfg.Width,
		height: cfg.Height,
	}
}
