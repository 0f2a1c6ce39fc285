package service

import (
	"github.com/isavelev/go-cart-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// TodoService is the in-memory todo collection with its mutation operations.
// Mutations are atomic relative to each other; observers registered with
// OnChange run synchronously after every structural user mutation.
type TodoService interface {
	// Add validates text, appends a new todo and returns it. Rejections
	// (empty text, over-limit text, guest cap) leave the collection
	// untouched.
	Add(text string) (models.Todo, error)

	// Toggle flips Completed for the todo with the given id. No-op if the
	// id is absent.
	Toggle(id string)

	// Delete removes the todo with the given id. No-op if absent.
	Delete(id string)

	// SetAll replaces the whole collection. Hydration only: observers are
	// not notified.
	SetAll(todos []models.Todo)

	// Clear empties the collection and notifies observers.
	Clear()

	// Items returns a copy of the collection in insertion order.
	Items() []models.Todo

	// OnChange registers an observer invoked after every structural user
	// mutation. Not invoked for reads, rejected adds, no-ops or SetAll.
	OnChange(fn func())
}

// CartService is the in-memory cart collection with its mutation operations
// and derived totals. Observer semantics match [TodoService].
type CartService interface {
	// AddProduct upserts the product: an existing row's quantity grows by
	// one, otherwise a new row with quantity 1 is appended.
	AddProduct(product models.Product)

	// Increment raises the quantity of the given product id by one.
	// No-op if absent.
	Increment(id int64)

	// Decrement lowers the quantity by one; at quantity 1 the row is
	// removed. No-op if absent.
	Decrement(id int64)

	// Remove deletes the row unconditionally. No-op if absent.
	Remove(id int64)

	// Clear empties the cart (logout, order completion) and notifies
	// observers.
	Clear()

	// SetAll replaces the whole cart. Hydration only: observers are not
	// notified.
	SetAll(items []models.CartItem)

	// Items returns a copy of the cart in insertion order.
	Items() []models.CartItem

	// TotalItemCount sums quantities, treating bad values as zero.
	TotalItemCount() int64

	// TotalPrice sums price*quantity, treating bad values as zero.
	TotalPrice() float64

	// OnChange registers an observer invoked after every structural user
	// mutation.
	OnChange(fn func())
}
