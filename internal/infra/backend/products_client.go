package backend

import (
	"context"
	"log/slog"
	"net/http"

	"agora/config"
	"agora/internal/domain/entity"
	"agora/internal/domain/gateway"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// productsClient implements gateway.ProductsGateway over the Products
// backend's REST surface.
type productsClient struct {
	*client
}

// NewProductsClient is the constructor for the Products backend gateway.
func NewProductsClient(cfg *config.Config, logger *slog.Logger) gateway.ProductsGateway {
	return &productsClient{
		client: newClient("products", cfg.Backends.Products.BaseURL, cfg.Backends.Timeout, logger),
	}
}

func (c *productsClient) Get(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var product entity.Product
	if err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/products/" + id.String(),
	}, &product); err != nil {
		return nil, err
	}

	return &product, nil
}

func (c *productsClient) List(ctx context.Context) ([]entity.Product, error) {
	var products []entity.Product
	if err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/products",
	}, &products); err != nil {
		return nil, err
	}

	return products, nil
}

func (c *productsClient) ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]entity.Product, error) {
	var products []entity.Product
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/products/seller/" + sellerID.String(),
	}, &products)
	if err != nil {
		// A 404 on a scoped list means no matches, not a missing resource.
		if errors.Is(err, gateway.ErrNotFound) {
			return []entity.Product{}, nil
		}

		return nil, err
	}
	if products == nil {
		products = []entity.Product{}
	}

	return products, nil
}

func (c *productsClient) Create(ctx context.Context, draft *gateway.NewProduct) (*entity.Product, error) {
	var product entity.Product
	if err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/products",
		body:   draft,
	}, &product); err != nil {
		return nil, err
	}

	return &product, nil
}

func (c *productsClient) Search(ctx context.Context, query string) ([]entity.Product, error) {
	var products []entity.Product
	if err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/products/search",
		body:   map[string]string{"query": query},
	}, &products); err != nil {
		return nil, err
	}
	if products == nil {
		products = []entity.Product{}
	}

	return products, nil
}
