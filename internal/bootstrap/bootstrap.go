// Package bootstrap wires configuration, storage, catalog and session
// together for the clubhub binaries.
package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"clubhub/internal/adapters/catalog"
	"clubhub/internal/adapters/sqlite"
	"clubhub/internal/application"
	"clubhub/internal/config"
)

// Runtime holds the adapters shared by a running binary
type Runtime struct {
	Config  config.Config
	Logger  zerolog.Logger
	Store   *sqlite.Store
	Catalog *catalog.Catalog
	Session *application.Session
}

// Open opens the database, loads the catalog and resumes the session
func Open(ctx context.Context, cfg config.Config, logger zerolog.Logger) (*Runtime, error) {
	cat, err := LoadCatalog(cfg.CatalogPath)
	if err != nil {
		return nil, err
	}

	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open deck database: %w", err)
	}

	session, err := application.NewSession(ctx, store, cat,
		application.WithLookahead(cfg.Lookahead),
		application.WithBatchSize(cfg.BatchSize),
		application.WithLogger(logger),
	)
	if err != nil {
		store.Close()
		return nil, err
	}

	logger.Debug().
		Str("db", store.Path()).
		Str("catalog", catalogName(cfg.CatalogPath)).
		Int("spots", session.Deck().Len()).
		Msg("session ready")

	return &Runtime{
		Config:  cfg,
		Logger:  logger,
		Store:   store,
		Catalog: cat,
		Session: session,
	}, nil
}

// LoadCatalog reads the catalog file, or returns the builtin clubs when
// no path is configured
func LoadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Builtin(), nil
	}
	cat, err := catalog.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return cat, nil
}

// Watch reloads the catalog when its file changes. Without a catalog file
// it returns a nil channel.
func (r *Runtime) Watch(ctx context.Context) (<-chan struct{}, error) {
	if r.Config.CatalogPath == "" {
		return nil, nil
	}
	return catalog.Watch(ctx, r.Config.CatalogPath, r.Catalog, r.Logger)
}

// Close releases the database
func (r *Runtime) Close() error {
	if r == nil || r.Store == nil {
		return errors.New("runtime not open")
	}
	return r.Store.Close()
}

func catalogName(path string) string {
	if path == "" {
		return "builtin"
	}
	return path
}
