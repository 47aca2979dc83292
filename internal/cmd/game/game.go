// Package game parses game service flags and launches the service.
package game

import (
	"context"
	"flag"

	entrypoint "github.com/louisbranch/life.space/internal/platform/cmd"
	"github.com/louisbranch/life.space/internal/services/game/app"
)

// Config holds game command configuration.
type Config struct {
	HTTPAddr string `env:"LIFE_SPACE_HTTP_ADDR" envDefault:":8080"`
	Backend  string `env:"LIFE_SPACE_STORAGE_BACKEND" envDefault:"sqlite"`
	DBPath   string `env:"LIFE_SPACE_DB_PATH" envDefault:"life.db"`
	KVPath   string `env:"LIFE_SPACE_KV_PATH" envDefault:"life.kv"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "addr", cfg.HTTPAddr, "The HTTP listen address")
	fs.StringVar(&cfg.Backend, "backend", cfg.Backend, "The storage backend: sqlite or kv")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "The SQLite database path")
	fs.StringVar(&cfg.KVPath, "kv-path", cfg.KVPath, "The key-value database path")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the game HTTP service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceGame, func(ctx context.Context) error {
		return app.Run(ctx, app.Config{
			HTTPAddr: cfg.HTTPAddr,
			Backend:  cfg.Backend,
			DBPath:   cfg.DBPath,
			KVPath:   cfg.KVPath,
		})
	})
}
