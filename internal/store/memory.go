package store

import (
	"context"
	"sync"

	"github.com/isavelev/go-cart-keeper/models"
)

// memoryTodoRepository is an in-memory TodoSnapshotRepository used in tests
// and when running without a writable disk.
type memoryTodoRepository struct {
	mu        sync.RWMutex
	snapshots map[string][]models.Todo
}

// NewMemoryTodoRepository creates an empty in-memory todo partition.
func NewMemoryTodoRepository() TodoSnapshotRepository {
	return &memoryTodoRepository{snapshots: make(map[string][]models.Todo)}
}

func (m *memoryTodoRepository) Load(_ context.Context, userID string) ([]models.Todo, error) {
	if userID == "" {
		return nil, ErrEmptyUserID
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	stored := m.snapshots[userID]
	out := make([]models.Todo, len(stored))
	copy(out, stored)
	return out, nil
}

func (m *memoryTodoRepository) Save(_ context.Context, userID string, todos []models.Todo) error {
	if userID == "" {
		return ErrEmptyUserID
	}

	snapshot := make([]models.Todo, len(todos))
	copy(snapshot, todos)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshots[userID] = snapshot
	return nil
}

func (m *memoryTodoRepository) Clear(_ context.Context, userID string) error {
	if userID == "" {
		return ErrEmptyUserID
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.snapshots, userID)
	return nil
}

// memoryCartRepository is the in-memory cart partition.
type memoryCartRepository struct {
	mu        sync.RWMutex
	snapshots map[string][]models.CartItem
}

// NewMemoryCartRepository creates an empty in-memory cart partition.
func NewMemoryCartRepository() CartSnapshotRepository {
	return &memoryCartRepository{snapshots: make(map[string][]models.CartItem)}
}

func (m *memoryCartRepository) Load(_ context.Context, userID string) ([]models.CartItem, error) {
	if userID == "" {
		return nil, ErrEmptyUserID
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	stored := m.snapshots[userID]
	out := make([]models.CartItem, len(stored))
	copy(out, stored)
	return out, nil
}

func (m *memoryCartRepository) Save(_ context.Context, userID string, items []models.CartItem) error {
	if userID == "" {
		return ErrEmptyUserID
	}

	snapshot := make([]models.CartItem, len(items))
	copy(snapshot, items)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshots[userID] = snapshot
	return nil
}

func (m *memoryCartRepository) Clear(_ context.Context, userID string) error {
	if userID == "" {
		return ErrEmptyUserID
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.snapshots, userID)
	return nil
}
