package backend

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"agora/config"
	"agora/internal/domain/entity"
	"agora/internal/domain/gateway"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// reviewsClient implements gateway.ReviewsGateway over the Reviews backend's
// REST surface.
type reviewsClient struct {
	*client
}

// NewReviewsClient is the constructor for the Reviews backend gateway.
func NewReviewsClient(cfg *config.Config, logger *slog.Logger) gateway.ReviewsGateway {
	return &reviewsClient{
		client: newClient("reviews", cfg.Backends.Reviews.BaseURL, cfg.Backends.Timeout, logger),
	}
}

func (c *reviewsClient) Get(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	var review entity.Review
	if err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/reviews/" + id.String(),
	}, &review); err != nil {
		return nil, err
	}

	return &review, nil
}

func (c *reviewsClient) ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]entity.Review, error) {
	var reviews []entity.Review
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/reviews/seller/" + sellerID.String(),
	}, &reviews)
	if err != nil {
		if errors.Is(err, gateway.ErrNotFound) {
			return []entity.Review{}, nil
		}

		return nil, err
	}
	if reviews == nil {
		reviews = []entity.Review{}
	}

	return reviews, nil
}

func (c *reviewsClient) ListByWriter(ctx context.Context, writerID uuid.UUID) ([]entity.Review, error) {
	// The Reviews backend scopes this listing by the X-User-Id header rather
	// than a path segment.
	header := http.Header{}
	header.Set("X-User-Id", writerID.String())

	var reviews []entity.Review
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/reviews/mine",
		header: header,
	}, &reviews)
	if err != nil {
		if errors.Is(err, gateway.ErrNotFound) {
			return []entity.Review{}, nil
		}

		return nil, err
	}
	if reviews == nil {
		reviews = []entity.Review{}
	}

	return reviews, nil
}

func (c *reviewsClient) Create(ctx context.Context, draft *gateway.NewReview) (*entity.Review, error) {
	var review entity.Review
	if err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/reviews",
		body:   draft,
	}, &review); err != nil {
		return nil, err
	}

	return &review, nil
}

func (c *reviewsClient) Delete(ctx context.Context, id uuid.UUID) (json.RawMessage, error) {
	var ack json.RawMessage
	if err := c.do(ctx, request{
		method: http.MethodDelete,
		path:   "/reviews/" + id.String(),
	}, &ack); err != nil {
		return nil, err
	}

	return ack, nil
}
