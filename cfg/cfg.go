package cfg

import (
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	// ServerURL is the account/game service, scheme and host. The
	// websocket endpoint is derived from it: secure iff https.
	ServerURL string
	// LogFile receives the rotating log.
	LogFile string
	// LowFX skips cosmetic drawing (reference grid, glow pulses).
	LowFX bool
}

// Load reads an optional .env and falls back to defaults.
func Load() Config {
	if err := godotenv.Load(); err == nil {
		log.Info("cfg: loaded .env")
	}
	c := Config{
		ServerURL: "http://localhost:8000",
		LogFile:   "slither.log",
	}
	if v := os.Getenv("SLITHER_SERVER"); v != "" {
		c.ServerURL = v
	}
	if v := os.Getenv("SLITHER_LOG"); v != "" {
		c.LogFile = v
	}
	if v := os.Getenv("SLITHER_LOW_FX"); v == "1" || v == "true" {
		c.LowFX = true
	}
	return c
}
