package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/isavelev/go-cart-keeper/internal/config"
	"github.com/isavelev/go-cart-keeper/internal/identity"
	"github.com/isavelev/go-cart-keeper/internal/logger"
	"github.com/isavelev/go-cart-keeper/internal/mock"
	"github.com/isavelev/go-cart-keeper/internal/session"
	"github.com/isavelev/go-cart-keeper/internal/store"
	"github.com/isavelev/go-cart-keeper/models"
)

func newTestClientServices(t *testing.T) (*ClientServices, *store.ClientStorages) {
	t.Helper()

	storages := &store.ClientStorages{
		TodoRepository: store.NewMemoryTodoRepository(),
		CartRepository: store.NewMemoryCartRepository(),
	}

	cfg := &config.StructuredConfig{}
	cfg.App.DebounceWindow = testWindow
	cfg.App.GuestTodoCap = 3
	cfg.App.TodoTextLimit = 100

	services := NewClientServices(cfg, storages, logger.Nop())
	t.Cleanup(services.Stop)
	return services, storages
}

func TestLifecycle_HydratesBeforeWriteBack(t *testing.T) {
	services, storages := newTestClientServices(t)
	ctx := context.Background()

	stored := []models.Todo{{ID: "t1", Text: "buy milk"}}
	require.NoError(t, storages.TodoRepository.Save(ctx, "u1", stored))

	services.SessionManager.Apply(&identity.User{UID: "u1", ProviderID: "password"})

	assert.Equal(t, stored, services.TodoService.Items())

	// hydration itself must not schedule a write; the stored snapshot
	// stays exactly as it was
	time.Sleep(3 * testWindow)
	loaded, err := storages.TodoRepository.Load(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, stored, loaded)
}

func TestLifecycle_MutationsPersistAfterQuiescence(t *testing.T) {
	services, storages := newTestClientServices(t)
	ctx := context.Background()

	services.SessionManager.Apply(&identity.User{UID: "u1", ProviderID: "password"})

	todo, err := services.TodoService.Add("buy milk")
	require.NoError(t, err)
	services.TodoService.Toggle(todo.ID)
	services.CartService.AddProduct(testPhone)
	services.CartService.Increment(testPhone.ID)

	// the stored snapshots reflect the state after the last mutation
	require.Eventually(t, func() bool {
		todos, err := storages.TodoRepository.Load(ctx, "u1")
		if err != nil || len(todos) != 1 || !todos[0].Completed {
			return false
		}
		items, err := storages.CartRepository.Load(ctx, "u1")
		return err == nil && len(items) == 1 && items[0].Quantity == 2
	}, 20*testWindow, time.Millisecond)
}

func TestLifecycle_SignOutClearsWithoutWriting(t *testing.T) {
	services, storages := newTestClientServices(t)
	ctx := context.Background()

	services.SessionManager.Apply(&identity.User{UID: "u1", ProviderID: "password"})
	_, err := services.TodoService.Add("buy milk")
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		todos, err := storages.TodoRepository.Load(ctx, "u1")
		return err == nil && len(todos) == 1
	}, 20*testWindow, time.Millisecond)

	services.SessionManager.Apply(nil)

	assert.Empty(t, services.TodoService.Items())
	assert.Empty(t, services.CartService.Items())

	// the clear at the boundary is not written back: u1's snapshot
	// survives for the next sign-in
	time.Sleep(3 * testWindow)
	todos, err := storages.TodoRepository.Load(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, todos, 1)
}

func TestLifecycle_UsersDoNotSeeEachOthersData(t *testing.T) {
	services, storages := newTestClientServices(t)
	ctx := context.Background()

	services.SessionManager.Apply(&identity.User{UID: "u1", ProviderID: "password"})
	_, err := services.TodoService.Add("u1 only")
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		todos, err := storages.TodoRepository.Load(ctx, "u1")
		return err == nil && len(todos) == 1
	}, 20*testWindow, time.Millisecond)

	services.SessionManager.Apply(&identity.User{UID: "u2", ProviderID: "password"})

	assert.Empty(t, services.TodoService.Items())

	_, err = services.TodoService.Add("u2 only")
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		todos, err := storages.TodoRepository.Load(ctx, "u2")
		return err == nil && len(todos) == 1 && todos[0].Text == "u2 only"
	}, 20*testWindow, time.Millisecond)

	todos, err := storages.TodoRepository.Load(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, todos, 1)
	assert.Equal(t, "u1 only", todos[0].Text)
}

func TestLifecycle_GuestSessionStaysOffDisk(t *testing.T) {
	services, storages := newTestClientServices(t)
	ctx := context.Background()

	services.SessionManager.Apply(&identity.User{UID: "guest-1", IsAnonymous: true})

	_, err := services.TodoService.Add("ephemeral")
	require.NoError(t, err)
	services.CartService.AddProduct(testPhone)

	time.Sleep(3 * testWindow)
	todos, err := storages.TodoRepository.Load(ctx, "guest-1")
	require.NoError(t, err)
	assert.Empty(t, todos)
	items, err := storages.CartRepository.Load(ctx, "guest-1")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestLifecycle_LoadFailureDegradesToEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	sessions := session.NewManager(logger.Nop())
	todoSvc := NewTodoService(sessions, 3, 100, logger.Nop())
	cartSvc := NewCartService(logger.Nop())

	todoRepo := mock.NewMockTodoSnapshotRepository(ctrl)
	cartRepo := mock.NewMockCartSnapshotRepository(ctrl)

	todoRepo.EXPECT().Load(gomock.Any(), "u1").
		Return(nil, errors.New("disk gone"))
	cartRepo.EXPECT().Load(gomock.Any(), "u1").
		Return([]models.CartItem{{Product: testPhone, Quantity: 2}}, nil)

	lifecycle := NewLifecycleService(todoSvc, cartSvc, todoRepo, cartRepo, nil, logger.Nop())
	sessions.OnTransition(lifecycle.OnSessionTransition)

	sessions.Apply(&identity.User{UID: "u1", ProviderID: "password"})

	// the failed partition comes up empty, the healthy one hydrates
	assert.Empty(t, todoSvc.Items())
	require.Len(t, cartSvc.Items(), 1)
	assert.Equal(t, int64(2), cartSvc.Items()[0].Quantity)
}
