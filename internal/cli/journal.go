package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kupikrutcher/relationship-app/internal/config"
	"github.com/kupikrutcher/relationship-app/internal/records"
	"github.com/kupikrutcher/relationship-app/internal/store"
)

// pinger is a backend that can report its own health.
type pinger interface {
	Ping(ctx context.Context) error
}

// journal is a record store bound to its persistence backend.
type journal struct {
	*records.Store
	storage string // "sqlite" or "file"
	path    string
	db      *store.DB
	backend pinger
}

func (j *journal) ping(ctx context.Context) error {
	return j.backend.Ping(ctx)
}

// Close flushes the pending save and releases the backend.
func (j *journal) Close() {
	j.Store.Close()
	if j.db != nil {
		j.db.Close()
	}
}

// openJournal opens the configured backend and loads the records from it.
func openJournal(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*journal, error) {
	j := &journal{storage: cfg.Storage.Driver}

	var p records.Persister
	switch cfg.Storage.Driver {
	case config.DriverFile:
		j.path = cfg.Storage.DataFilePath
		if j.path == "" {
			j.path = store.DefaultDataFilePath()
		}
		fs := store.NewFileStore(j.path)
		j.backend = fs
		p = fs
	case config.DriverSQLite:
		j.path = cfg.Storage.DatabasePath
		if j.path == "" {
			var err error
			j.path, err = store.DefaultDBPath()
			if err != nil {
				return nil, fmt.Errorf("resolve db path: %w", err)
			}
		}
		db, err := store.Open(j.path)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		j.db = db
		j.backend = db
		p = db
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}

	j.Store = records.Open(ctx, p, records.WithLogger(logger))
	return j, nil
}

// withJournal loads config, opens the journal, runs fn and flushes.
func withJournal(ctx context.Context, fn func(j *journal) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg.Log)

	j, err := openJournal(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer j.Close()
	return fn(j)
}
