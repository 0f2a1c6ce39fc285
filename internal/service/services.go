package service

import (
	"context"

	"github.com/isavelev/go-cart-keeper/internal/config"
	"github.com/isavelev/go-cart-keeper/internal/logger"
	"github.com/isavelev/go-cart-keeper/internal/session"
	"github.com/isavelev/go-cart-keeper/internal/store"
)

type ClientServices struct {
	TodoService    TodoService
	CartService    CartService
	TodoJob        *PersistJob
	CartJob        *PersistJob
	Lifecycle      *LifecycleService
	SessionManager *session.Manager
}

// NewClientServices wires the collections, the debounced write-back jobs and
// the session lifecycle together. Each collection notifies its job on every
// mutation; each job flushes that collection's current items under the user
// id captured when the mutation was observed; the lifecycle handler is
// registered with the session manager and runs inside every transition.
func NewClientServices(cfg *config.StructuredConfig, storages *store.ClientStorages, log *logger.Logger) *ClientServices {
	sessions := session.NewManager(log)

	todoSvc := NewTodoService(sessions, cfg.App.GuestTodoCap, cfg.App.TodoTextLimit, log)
	cartSvc := NewCartService(log)

	todoJob := NewPersistJob("todos", cfg.App.DebounceWindow, sessions,
		func(ctx context.Context, userID string) error {
			return storages.TodoRepository.Save(ctx, userID, todoSvc.Items())
		}, log)
	cartJob := NewPersistJob("cart", cfg.App.DebounceWindow, sessions,
		func(ctx context.Context, userID string) error {
			return storages.CartRepository.Save(ctx, userID, cartSvc.Items())
		}, log)

	todoSvc.OnChange(todoJob.CollectionChanged)
	cartSvc.OnChange(cartJob.CollectionChanged)

	lifecycle := NewLifecycleService(
		todoSvc, cartSvc,
		storages.TodoRepository, storages.CartRepository,
		[]*PersistJob{todoJob, cartJob},
		log,
	)
	sessions.OnTransition(lifecycle.OnSessionTransition)

	return &ClientServices{
		TodoService:    todoSvc,
		CartService:    cartSvc,
		TodoJob:        todoJob,
		CartJob:        cartJob,
		Lifecycle:      lifecycle,
		SessionManager: sessions,
	}
}

// Stop cancels pending write-back timers and waits for in-flight flushes.
func (s *ClientServices) Stop() {
	s.TodoJob.Stop()
	s.CartJob.Stop()
}
