package gateway

import (
	"context"
	"encoding/json"

	"agora/internal/domain/entity"

	"github.com/google/uuid"
)

// NewReview is the create payload forwarded unchanged to the Reviews backend
// after both existence gates have passed.
type NewReview struct {
	WriterID string  `json:"writer_id"`
	SellerID string  `json:"seller_id"`
	Rating   float64 `json:"rating"`
	Comment  *string `json:"comment,omitempty"`
}

// ReviewsGateway is the typed client contract for the Reviews backend.
type ReviewsGateway interface {
	// Get retrieves a single review by ID.
	Get(ctx context.Context, id uuid.UUID) (*entity.Review, error)

	// ListBySeller retrieves the reviews received by a seller.
	ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]entity.Review, error)

	// ListByWriter retrieves the reviews written by a user.
	ListByWriter(ctx context.Context, writerID uuid.UUID) ([]entity.Review, error)

	// Create registers a new review.
	Create(ctx context.Context, draft *NewReview) (*entity.Review, error)

	// Delete removes a review and returns the backend's response unchanged.
	Delete(ctx context.Context, id uuid.UUID) (json.RawMessage, error)
}
