package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/farmstack/cropreqs/internal/crops"
	"github.com/farmstack/cropreqs/internal/database"
)

// Crop data source kinds selectable through CROPS_SOURCE.
const (
	sourceEmbedded = "embedded"
	sourceFile     = "file"
	sourcePostgres = "postgres"
)

var errUnknownSource = errors.New("unknown crop data source")

type sourceConfig struct {
	Kind     string
	FilePath string
	Database database.Config
}

func sourceConfigFromEnv() sourceConfig {
	kind := os.Getenv("CROPS_SOURCE")
	if kind == "" {
		kind = sourceEmbedded
	}
	return sourceConfig{
		Kind:     kind,
		FilePath: os.Getenv("CROPS_FILE"),
		Database: database.ConfigFromEnv(),
	}
}

// openSource returns the configured crop source and a func releasing any
// resources it holds. The release func is safe to call once the table is loaded.
func openSource(ctx context.Context, cfg sourceConfig, log zerolog.Logger) (crops.Source, func(), error) {
	noop := func() {}

	switch cfg.Kind {
	case sourceEmbedded:
		return crops.EmbeddedSource{}, noop, nil

	case sourceFile:
		if cfg.FilePath == "" {
			return nil, noop, fmt.Errorf("%s source: CROPS_FILE is required", sourceFile)
		}
		return crops.FileSource{Path: cfg.FilePath}, noop, nil

	case sourcePostgres:
		pool, err := database.ConnectWithRetry(ctx, cfg.Database, log)
		if err != nil {
			return nil, noop, fmt.Errorf("%s source: %w", sourcePostgres, err)
		}
		log.Info().
			Str("host", cfg.Database.Host).
			Int("port", cfg.Database.Port).
			Str("database", cfg.Database.Database).
			Msg("database connected")
		return crops.NewPostgresSource(pool), pool.Close, nil

	default:
		return nil, noop, fmt.Errorf("%w: %q", errUnknownSource, cfg.Kind)
	}
}
