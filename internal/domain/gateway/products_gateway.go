package gateway

import (
	"context"

	"agora/internal/domain/entity"

	"github.com/google/uuid"
)

// NewProduct is the create payload forwarded unchanged to the Products
// backend after the seller existence gate has passed.
type NewProduct struct {
	ProductName  string  `json:"product_name"`
	Category     string  `json:"category"`
	SellerID     string  `json:"seller_id"`
	Price        float64 `json:"price"`
	Availability int     `json:"availability"`
	Quantity     int     `json:"quantity"`
	Description  *string `json:"description,omitempty"`
	Condition    *string `json:"condition,omitempty"`
}

// ProductsGateway is the typed client contract for the Products backend.
type ProductsGateway interface {
	// Get retrieves a single product by ID.
	Get(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// List retrieves all products.
	List(ctx context.Context) ([]entity.Product, error)

	// ListBySeller retrieves the products owned by a seller. An empty result
	// is a valid answer, not an error.
	ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]entity.Product, error)

	// Create registers a new product.
	Create(ctx context.Context, draft *NewProduct) (*entity.Product, error)

	// Search runs a free-text search on the Products backend.
	Search(ctx context.Context, query string) ([]entity.Product, error)
}
