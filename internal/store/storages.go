package store

import (
	"context"
	"fmt"

	"github.com/isavelev/go-cart-keeper/internal/config"
	"github.com/isavelev/go-cart-keeper/internal/logger"
)

// ClientStorages groups the per-partition snapshot repositories into a single
// value that can be passed around the service layer.
type ClientStorages struct {
	// TodoRepository is the todos_by_user partition.
	TodoRepository TodoSnapshotRepository

	// CartRepository is the cart_by_user partition.
	CartRepository CartSnapshotRepository

	db *DB
}

// NewClientStorages initialises the local storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [ClientStorages] value wired to both
//     snapshot repositories.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(cfg config.Storage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		TodoRepository: NewTodoSnapshotRepository(db, logger),
		CartRepository: NewCartSnapshotRepository(db, logger),
		db:             db,
	}, nil
}

// Close releases the underlying database handle.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
