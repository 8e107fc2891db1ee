// Package seed parses seeder flags and loads the default music catalog.
package seed

import (
	"context"
	"flag"
	"log"
	"path/filepath"
	"strings"

	entrypoint "github.com/aashu-app/aashu/internal/platform/cmd"
	"github.com/aashu-app/aashu/internal/seed"
	"github.com/aashu-app/aashu/internal/storage/sqlite"
)

// Config holds seed command configuration.
type Config struct {
	DBPath string `env:"AASHU_DB_PATH"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "path to the planning database")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if strings.TrimSpace(cfg.DBPath) == "" {
		cfg.DBPath = filepath.Join("data", "planner.db")
	}
	return cfg, nil
}

// Run opens the store and applies the default music catalog.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceSeed, func(context.Context) error {
		store, err := sqlite.Open(cfg.DBPath)
		if err != nil {
			return err
		}
		defer func() {
			if err := store.Close(); err != nil {
				log.Printf("close planning store: %v", err)
			}
		}()

		inserted, err := seed.Apply(ctx, store)
		if err != nil {
			return err
		}
		log.Printf("seeded %d music tracks", inserted)
		return nil
	})
}
