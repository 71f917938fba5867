package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/Mikey-Burns/Setback/internal/engine"
)

var ErrInvalid = errors.New("invalid config")

// Config holds server settings. Values come from an optional JSON file named
// by SETBACK_CONFIG, then from individual environment variables.
type Config struct {
	Addr     string `json:"addr"`
	WinScore int    `json:"win_score"`
	// Bots is the number of seats the lobby fills with bots in every new match.
	Bots         int    `json:"bots"`
	BotPollMS    int    `json:"bot_poll_ms"`
	Seed         int64  `json:"seed"`
	BotLevel     string `json:"bot_level"`
	seedExplicit bool
}

func Default() Config {
	return Config{
		Addr:      ":8080",
		WinScore:  engine.StandardPreset().WinScore,
		Bots:      0,
		BotPollMS: 250,
		BotLevel:  "normal",
	}
}

// Load builds the config from the process environment.
func Load() (Config, error) {
	return LoadFrom(os.Getenv)
}

// LoadFrom is Load with a custom environment lookup.
func LoadFrom(getenv func(string) string) (Config, error) {
	cfg := Default()
	if path := getenv("SETBACK_CONFIG"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return Config{}, err
		}
	}
	if v := getenv("ADDR"); v != "" {
		cfg.Addr = v
	}
	if err := intVar(getenv, "WIN_SCORE", &cfg.WinScore); err != nil {
		return Config{}, err
	}
	if err := intVar(getenv, "BOTS", &cfg.Bots); err != nil {
		return Config{}, err
	}
	if err := intVar(getenv, "BOT_POLL_MS", &cfg.BotPollMS); err != nil {
		return Config{}, err
	}
	if v := getenv("BOT_LEVEL"); v != "" {
		cfg.BotLevel = v
	}
	if v := getenv("SEED"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("%w: SEED=%q: %w", ErrInvalid, v, err)
		}
		cfg.Seed = n
		cfg.seedExplicit = true
	}
	return cfg, cfg.Validate()
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	var raw struct {
		Config
		Seed *int64 `json:"seed"`
	}
	raw.Config = *c
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	*c = raw.Config
	if raw.Seed != nil {
		c.Seed = *raw.Seed
		c.seedExplicit = true
	}
	return nil
}

func intVar(getenv func(string) string, name string, dst *int) error {
	v := getenv(name)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%w: %s=%q: %w", ErrInvalid, name, v, err)
	}
	*dst = n
	return nil
}

func (c Config) Validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: empty address", ErrInvalid)
	case c.WinScore <= 0:
		return fmt.Errorf("%w: win score %d", ErrInvalid, c.WinScore)
	case c.Bots < 0 || c.Bots > len(engine.Seats):
		return fmt.Errorf("%w: %d bots", ErrInvalid, c.Bots)
	case c.BotPollMS <= 0:
		return fmt.Errorf("%w: bot poll %dms", ErrInvalid, c.BotPollMS)
	case c.BotLevel != "easy" && c.BotLevel != "normal":
		return fmt.Errorf("%w: bot level %q", ErrInvalid, c.BotLevel)
	}
	return nil
}

func (c Config) Rules() engine.Rules {
	r := engine.StandardPreset()
	r.WinScore = c.WinScore
	return r
}

func (c Config) BotPoll() time.Duration {
	return time.Duration(c.BotPollMS) * time.Millisecond
}

// MatchSeed returns the seed for the n-th match. Without a configured seed
// every match is seeded from the clock.
func (c Config) MatchSeed(n int) int64 {
	if !c.seedExplicit {
		return time.Now().UnixNano()
	}
	return c.Seed + int64(n)
}
