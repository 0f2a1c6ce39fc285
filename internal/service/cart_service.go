package service

import (
	"math"
	"sync"

	"github.com/isavelev/go-cart-keeper/internal/logger"
	"github.com/isavelev/go-cart-keeper/models"
)

type cartService struct {
	mu    sync.Mutex
	items []models.CartItem

	observerMu sync.RWMutex
	observers  []func()

	logger *logger.Logger
}

// NewCartService creates an empty cart collection.
func NewCartService(log *logger.Logger) CartService {
	return &cartService{logger: log}
}

func (s *cartService) AddProduct(product models.Product) {
	s.mu.Lock()
	found := false
	for i := range s.items {
		if s.items[i].ID == product.ID {
			s.items[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		s.items = append(s.items, models.CartItem{Product: product, Quantity: 1})
	}
	s.mu.Unlock()

	s.notify()
}

func (s *cartService) Increment(id int64) {
	s.mu.Lock()
	changed := false
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Quantity++
			changed = true
			break
		}
	}
	s.mu.Unlock()

	if changed {
		s.notify()
	}
}

func (s *cartService) Decrement(id int64) {
	s.mu.Lock()
	changed := false
	for i := range s.items {
		if s.items[i].ID == id {
			if s.items[i].Quantity > 1 {
				s.items[i].Quantity--
			} else {
				// quantity would hit zero: drop the row instead
				s.items = append(s.items[:i], s.items[i+1:]...)
			}
			changed = true
			break
		}
	}
	s.mu.Unlock()

	if changed {
		s.notify()
	}
}

func (s *cartService) Remove(id int64) {
	s.mu.Lock()
	changed := false
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			changed = true
			break
		}
	}
	s.mu.Unlock()

	if changed {
		s.notify()
	}
}

func (s *cartService) Clear() {
	s.mu.Lock()
	s.items = nil
	s.mu.Unlock()

	s.notify()
}

func (s *cartService) SetAll(items []models.CartItem) {
	snapshot := make([]models.CartItem, len(items))
	copy(snapshot, items)

	s.mu.Lock()
	s.items = snapshot
	s.mu.Unlock()
	// hydration is not a user mutation: observers stay silent
}

func (s *cartService) Items() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *cartService) TotalItemCount() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total int64
	for i := range s.items {
		total += safeQuantity(s.items[i].Quantity)
	}
	return total
}

func (s *cartService) TotalPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for i := range s.items {
		total += safePrice(s.items[i].Price) * float64(safeQuantity(s.items[i].Quantity))
	}
	return total
}

func (s *cartService) OnChange(fn func()) {
	s.observerMu.Lock()
	defer s.observerMu.Unlock()
	s.observers = append(s.observers, fn)
}

func (s *cartService) notify() {
	s.observerMu.RLock()
	observers := make([]func(), len(s.observers))
	copy(observers, s.observers)
	s.observerMu.RUnlock()

	for _, fn := range observers {
		fn()
	}
}

// safeQuantity clamps malformed quantities to zero so derived totals never
// go negative.
func safeQuantity(q int64) int64 {
	if q < 0 {
		return 0
	}
	return q
}

// safePrice clamps NaN and negative prices to zero so derived totals never
// propagate them.
func safePrice(p float64) float64 {
	if math.IsNaN(p) || p < 0 {
		return 0
	}
	return p
}
