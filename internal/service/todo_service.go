package service

import (
	"sync"

	"github.com/google/uuid"

	"github.com/isavelev/go-cart-keeper/internal/logger"
	"github.com/isavelev/go-cart-keeper/internal/session"
	"github.com/isavelev/go-cart-keeper/internal/validators"
	"github.com/isavelev/go-cart-keeper/models"
)

type todoService struct {
	mu    sync.Mutex
	todos []models.Todo

	sessions  *session.Manager
	validator *validators.TodoTextValidator
	guestCap  int

	observerMu sync.RWMutex
	observers  []func()

	logger *logger.Logger
}

// NewTodoService creates an empty todo collection. guestCap bounds the
// collection size for guest sessions; textLimit bounds todo text length.
func NewTodoService(sessions *session.Manager, guestCap, textLimit int, log *logger.Logger) TodoService {
	return &todoService{
		sessions:  sessions,
		validator: validators.NewTodoTextValidator(textLimit),
		guestCap:  guestCap,
		logger:    log,
	}
}

func (s *todoService) Add(text string) (models.Todo, error) {
	trimmed, err := s.validator.Validate(text)
	if err != nil {
		return models.Todo{}, err
	}

	s.mu.Lock()
	if s.sessions.Current().IsGuest && len(s.todos) >= s.guestCap {
		s.mu.Unlock()
		return models.Todo{}, ErrGuestLimitReached
	}

	todo := models.Todo{
		ID:   newTodoID(),
		Text: trimmed,
	}
	s.todos = append(s.todos, todo)
	s.mu.Unlock()

	s.notify()
	return todo, nil
}

func (s *todoService) Toggle(id string) {
	s.mu.Lock()
	changed := false
	for i := range s.todos {
		if s.todos[i].ID == id {
			s.todos[i].Completed = !s.todos[i].Completed
			changed = true
			break
		}
	}
	s.mu.Unlock()

	if changed {
		s.notify()
	}
}

func (s *todoService) Delete(id string) {
	s.mu.Lock()
	changed := false
	for i := range s.todos {
		if s.todos[i].ID == id {
			s.todos = append(s.todos[:i], s.todos[i+1:]...)
			changed = true
			break
		}
	}
	s.mu.Unlock()

	if changed {
		s.notify()
	}
}

func (s *todoService) SetAll(todos []models.Todo) {
	snapshot := make([]models.Todo, len(todos))
	copy(snapshot, todos)

	s.mu.Lock()
	s.todos = snapshot
	s.mu.Unlock()
	// hydration is not a user mutation: observers stay silent
}

func (s *todoService) Clear() {
	s.mu.Lock()
	s.todos = nil
	s.mu.Unlock()

	s.notify()
}

func (s *todoService) Items() []models.Todo {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Todo, len(s.todos))
	copy(out, s.todos)
	return out
}

func (s *todoService) OnChange(fn func()) {
	s.observerMu.Lock()
	defer s.observerMu.Unlock()
	s.observers = append(s.observers, fn)
}

func (s *todoService) notify() {
	s.observerMu.RLock()
	observers := make([]func(), len(s.observers))
	copy(observers, s.observers)
	s.observerMu.RUnlock()

	for _, fn := range observers {
		fn()
	}
}

// newTodoID returns a time-ordered unique id, falling back to a random one
// if the clock-based generator fails.
func newTodoID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
