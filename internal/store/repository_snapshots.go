package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/isavelev/go-cart-keeper/internal/logger"
	"github.com/isavelev/go-cart-keeper/models"
)

// snapshotRepository implements whole-snapshot load/save/clear against one
// partition table. The two typed repositories below delegate to it; the only
// difference between partitions is the table and the element type.
type snapshotRepository struct {
	db     *DB
	logger *logger.Logger

	table    string
	loadSQL  string
	saveSQL  string
	clearSQL string
}

func (r *snapshotRepository) load(ctx context.Context, userID string) ([]byte, error) {
	if userID == "" {
		return nil, ErrEmptyUserID
	}

	var raw []byte
	err := r.db.QueryRowContext(ctx, r.loadSQL, userID).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		// absent key reads as an empty collection
		return nil, nil
	}
	if err != nil {
		r.logger.Err(err).
			Str("func", "snapshotRepository.load").
			Str("table", r.table).
			Str("user_id", userID).
			Msg("failed to query snapshot")
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return raw, nil
}

func (r *snapshotRepository) save(ctx context.Context, userID string, raw []byte) error {
	if userID == "" {
		return ErrEmptyUserID
	}

	_, err := r.db.ExecContext(ctx, r.saveSQL, userID, raw, time.Now().UTC())
	if err != nil {
		r.logger.Err(err).
			Str("func", "snapshotRepository.save").
			Str("table", r.table).
			Str("user_id", userID).
			Msg("failed to upsert snapshot")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	return nil
}

func (r *snapshotRepository) clear(ctx context.Context, userID string) error {
	if userID == "" {
		return ErrEmptyUserID
	}

	_, err := r.db.ExecContext(ctx, r.clearSQL, userID)
	if err != nil {
		r.logger.Err(err).
			Str("func", "snapshotRepository.clear").
			Str("table", r.table).
			Str("user_id", userID).
			Msg("failed to delete snapshot")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	return nil
}

// todoSnapshotRepository is the todos_by_user partition.
type todoSnapshotRepository struct {
	snapshotRepository
}

// NewTodoSnapshotRepository creates the SQLite-backed repository for per-user
// todo snapshots.
func NewTodoSnapshotRepository(db *DB, logger *logger.Logger) TodoSnapshotRepository {
	return &todoSnapshotRepository{snapshotRepository{
		db:       db,
		logger:   logger,
		table:    todosTable,
		loadSQL:  loadSnapshotFromTodos,
		saveSQL:  saveSnapshotToTodos,
		clearSQL: clearSnapshotFromTodos,
	}}
}

func (r *todoSnapshotRepository) Load(ctx context.Context, userID string) ([]models.Todo, error) {
	raw, err := r.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return []models.Todo{}, nil
	}

	var todos []models.Todo
	if err = json.Unmarshal(raw, &todos); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodingSnapshot, err)
	}
	if todos == nil {
		todos = []models.Todo{}
	}

	return todos, nil
}

func (r *todoSnapshotRepository) Save(ctx context.Context, userID string, todos []models.Todo) error {
	if todos == nil {
		todos = []models.Todo{}
	}
	raw, err := json.Marshal(todos)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncodingSnapshot, err)
	}

	return r.save(ctx, userID, raw)
}

func (r *todoSnapshotRepository) Clear(ctx context.Context, userID string) error {
	return r.clear(ctx, userID)
}

// cartSnapshotRepository is the cart_by_user partition.
type cartSnapshotRepository struct {
	snapshotRepository
}

// NewCartSnapshotRepository creates the SQLite-backed repository for per-user
// cart snapshots.
func NewCartSnapshotRepository(db *DB, logger *logger.Logger) CartSnapshotRepository {
	return &cartSnapshotRepository{snapshotRepository{
		db:       db,
		logger:   logger,
		table:    cartTable,
		loadSQL:  loadSnapshotFromCart,
		saveSQL:  saveSnapshotToCart,
		clearSQL: clearSnapshotFromCart,
	}}
}

func (r *cartSnapshotRepository) Load(ctx context.Context, userID string) ([]models.CartItem, error) {
	raw, err := r.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return []models.CartItem{}, nil
	}

	var items []models.CartItem
	if err = json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodingSnapshot, err)
	}
	if items == nil {
		items = []models.CartItem{}
	}

	return items, nil
}

func (r *cartSnapshotRepository) Save(ctx context.Context, userID string, items []models.CartItem) error {
	if items == nil {
		items = []models.CartItem{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncodingSnapshot, err)
	}

	return r.save(ctx, userID, raw)
}

func (r *cartSnapshotRepository) Clear(ctx context.Context, userID string) error {
	return r.clear(ctx, userID)
}
