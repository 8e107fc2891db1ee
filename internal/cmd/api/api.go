// Package api parses API service flags and launches the service.
package api

import (
	"context"
	"flag"

	"github.com/aashu-app/aashu/internal/app"
	entrypoint "github.com/aashu-app/aashu/internal/platform/cmd"
)

// Config holds API command configuration.
type Config struct {
	Port int `env:"AASHU_PORT" envDefault:"8080"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The API server port")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the REST API service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceAPI, func(context.Context) error {
		return app.Run(ctx, cfg.Port)
	})
}
