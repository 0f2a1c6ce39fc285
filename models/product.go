package models

// Product is a catalog entry served by the remote product API.
// The catalog is read-only from this application's point of view.
type Product struct {
	// ID is the catalog-wide unique product identifier.
	ID int64 `json:"id"`

	// Title is the display name of the product.
	Title string `json:"title"`

	// Price is the unit price. Never negative in well-formed catalogs;
	// derived totals treat bad values defensively anyway.
	Price float64 `json:"price"`

	// Category is the catalog category label.
	Category string `json:"category"`

	// Thumbnail is the URL of the product's preview image.
	Thumbnail string `json:"thumbnail"`

	// Images holds URLs of full-size product images.
	Images []string `json:"images"`
}
