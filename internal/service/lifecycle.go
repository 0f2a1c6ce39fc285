package service

import (
	"context"

	"github.com/isavelev/go-cart-keeper/internal/logger"
	"github.com/isavelev/go-cart-keeper/internal/store"
	"github.com/isavelev/go-cart-keeper/models"
)

// LifecycleService reacts to session transitions: it clears the in-memory
// collections at every boundary, hydrates them from the local store for
// persisted users, and gates the persist jobs so hydration is never written
// back and writes scheduled for a previous session never land.
type LifecycleService struct {
	todos    TodoService
	cart     CartService
	todoRepo store.TodoSnapshotRepository
	cartRepo store.CartSnapshotRepository
	jobs     []*PersistJob
	logger   *logger.Logger
}

func NewLifecycleService(
	todos TodoService,
	cart CartService,
	todoRepo store.TodoSnapshotRepository,
	cartRepo store.CartSnapshotRepository,
	jobs []*PersistJob,
	log *logger.Logger,
) *LifecycleService {
	return &LifecycleService{
		todos:    todos,
		cart:     cart,
		todoRepo: todoRepo,
		cartRepo: cartRepo,
		jobs:     jobs,
		logger:   log,
	}
}

// OnSessionTransition is registered with the session manager and runs
// synchronously inside each transition. Order matters: jobs are disarmed
// first so the Clear notifications and the hydration SetAll cannot schedule
// writes, and re-armed only after hydration has fully replaced the state.
func (l *LifecycleService) OnSessionTransition(s models.Session) {
	for _, job := range l.jobs {
		job.Disarm()
	}

	l.todos.Clear()
	l.cart.Clear()

	uid := s.PersistID()
	if uid == "" {
		// unresolved, signed out or guest: collections stay empty and
		// write-back stays off
		return
	}

	ctx := context.Background()
	l.hydrate(ctx, uid)

	for _, job := range l.jobs {
		job.Arm()
	}
}

// hydrate loads both partitions for the user. A load failure degrades to an
// empty collection; the session stays usable and the error is logged.
func (l *LifecycleService) hydrate(ctx context.Context, userID string) {
	todos, err := l.todoRepo.Load(ctx, userID)
	if err != nil {
		l.logger.Warn().Err(err).
			Str("func", "LifecycleService.hydrate").
			Str("user_id", userID).
			Msg("loading todos snapshot failed, starting empty")
		todos = []models.Todo{}
	}
	l.todos.SetAll(todos)

	items, err := l.cartRepo.Load(ctx, userID)
	if err != nil {
		l.logger.Warn().Err(err).
			Str("func", "LifecycleService.hydrate").
			Str("user_id", userID).
			Msg("loading cart snapshot failed, starting empty")
		items = []models.CartItem{}
	}
	l.cart.SetAll(items)

	l.logger.Debug().
		Str("func", "LifecycleService.hydrate").
		Str("user_id", userID).
		Int("todos", len(todos)).
		Int("cart_items", len(items)).
		Msg("collections hydrated")
}
