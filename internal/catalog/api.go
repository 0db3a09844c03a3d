package catalog

import (
	"context"

	"github.com/shopspring/decimal"
)

// ProductAPI is the external product service the dashboard mirrors.
// Implementations must be safe for concurrent use.
type ProductAPI interface {
	// ListProducts returns every product.
	ListProducts(ctx context.Context) ([]Product, error)

	// UpdateProduct saves in for product id and returns the fields the API
	// reports back. Fields the response omits stay nil in the patch.
	UpdateProduct(ctx context.Context, id int, in UpdateInput) (ProductPatch, error)

	// CreateProduct creates a product and returns it with its assigned id.
	CreateProduct(ctx context.Context, in CreateInput) (Product, error)
}

// UpdateInput is the validated body of an update request.
type UpdateInput struct {
	Title       string
	Price       decimal.Decimal
	Description string
}

// CreateInput is the validated body of a create request.
type CreateInput struct {
	Title       string
	Price       decimal.Decimal
	Description string
	CategoryID  int
	Images      []string
}
