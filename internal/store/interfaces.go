package store

import (
	"context"

	"github.com/isavelev/go-cart-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// TodoSnapshotRepository persists whole per-user todo snapshots.
// Load returns an empty slice (not an error) when no snapshot exists for the
// given user. Save replaces the entire stored snapshot.
type TodoSnapshotRepository interface {
	Load(ctx context.Context, userID string) ([]models.Todo, error)
	Save(ctx context.Context, userID string, todos []models.Todo) error
	Clear(ctx context.Context, userID string) error
}

// CartSnapshotRepository persists whole per-user cart snapshots with the same
// contract as [TodoSnapshotRepository].
type CartSnapshotRepository interface {
	Load(ctx context.Context, userID string) ([]models.CartItem, error)
	Save(ctx context.Context, userID string, items []models.CartItem) error
	Clear(ctx context.Context, userID string) error
}
