package adapter

import (
	"context"

	"github.com/isavelev/go-cart-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// CatalogAdapter reads the remote product catalog. The catalog is the only
// remote data source of the application and is strictly read-only; cart rows
// embed the product data they were created from, so a catalog outage never
// blocks the cart.
type CatalogAdapter interface {
	// ListProducts returns one page of the catalog. limit caps the page
	// size; skip is the offset of the first product.
	ListProducts(ctx context.Context, limit, skip int) ([]models.Product, error)

	// GetProduct returns a single product by its catalog id.
	GetProduct(ctx context.Context, id int64) (models.Product, error)

	// ListCategories returns the catalog's category labels.
	ListCategories(ctx context.Context) ([]string, error)
}
