package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/ratel-online/duel/consts"
	"github.com/ratel-online/duel/uno/session"
)

const (
	StorageNone   = "none"
	StorageSQLite = "sqlite"
	StorageRedis  = "redis"
)

type Config struct {
	TCPAddr string `env:"UNO_TCP_ADDR" envDefault:":9999"`
	WSAddr  string `env:"UNO_WS_ADDR" envDefault:":9998"`

	ThinkDelay       time.Duration `env:"UNO_THINK_DELAY"`
	DrawDelayMin     time.Duration `env:"UNO_DRAW_DELAY_MIN"`
	DrawDelayMax     time.Duration `env:"UNO_DRAW_DELAY_MAX"`
	DeclareWindowMin time.Duration `env:"UNO_DECLARE_WINDOW_MIN"`
	DeclareWindowMax time.Duration `env:"UNO_DECLARE_WINDOW_MAX"`

	// SessionIdle is how long an untouched session survives the sweeper.
	SessionIdle time.Duration `env:"UNO_SESSION_IDLE" envDefault:"30m"`

	Storage    string        `env:"UNO_STORAGE" envDefault:"none"`
	SQLitePath string        `env:"UNO_SQLITE_PATH" envDefault:"uno.db"`
	RedisAddr  string        `env:"UNO_REDIS_ADDR" envDefault:"localhost:6379"`
	RedisDB    int           `env:"UNO_REDIS_DB" envDefault:"0"`
	RedisTTL   time.Duration `env:"UNO_REDIS_TTL" envDefault:"168h"`
}

// Load reads the configuration from the environment and validates it.
func Load() (Config, error) {
	cfg := Config{
		ThinkDelay:       consts.ThinkDelay,
		DrawDelayMin:     consts.DrawDelayMin,
		DrawDelayMax:     consts.DrawDelayMax,
		DeclareWindowMin: consts.DeclareWindowMin,
		DeclareWindowMax: consts.DeclareWindowMax,
	}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.ThinkDelay <= 0 {
		return fmt.Errorf("UNO_THINK_DELAY must be positive, got %s", c.ThinkDelay)
	}
	if c.DrawDelayMin <= 0 || c.DrawDelayMax < c.DrawDelayMin {
		return fmt.Errorf("draw delay range [%s, %s] is invalid", c.DrawDelayMin, c.DrawDelayMax)
	}
	if c.DeclareWindowMin <= 0 || c.DeclareWindowMax < c.DeclareWindowMin {
		return fmt.Errorf("declare window [%s, %s] is invalid", c.DeclareWindowMin, c.DeclareWindowMax)
	}
	if c.SessionIdle <= 0 {
		return fmt.Errorf("UNO_SESSION_IDLE must be positive, got %s", c.SessionIdle)
	}
	switch c.Storage {
	case StorageNone:
	case StorageSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("UNO_SQLITE_PATH is required for sqlite storage")
		}
	case StorageRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("UNO_REDIS_ADDR is required for redis storage")
		}
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage)
	}
	return nil
}

func (c Config) Timing() session.Timing {
	return session.Timing{
		Think:      c.ThinkDelay,
		DrawMin:    c.DrawDelayMin,
		DrawMax:    c.DrawDelayMax,
		DeclareMin: c.DeclareWindowMin,
		DeclareMax: c.DeclareWindowMax,
	}
}
