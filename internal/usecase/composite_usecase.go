// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"encoding/json"

	"agora/internal/domain/entity"
	"agora/internal/domain/gateway"

	"github.com/google/uuid"
)

// CompositeUsecase defines the aggregation operations: each one decides which
// backend calls to issue, in what order, how to merge the results, and how to
// degrade when a secondary lookup fails. Independent calls run concurrently;
// a call whose input depends on another's output runs after it. No call is
// retried and nothing is cached.
//
// The cross-service integrity gates (existence checks before create,
// dependency checks before delete) are advisory: the backends are
// independently owned, there is no shared lock authority, and another request
// may invalidate a check between its evaluation and the guarded write.
type CompositeUsecase interface {
	GetSellerProfile(ctx context.Context, sellerID uuid.UUID) (*SellerProfile, error)
	GetProductDetails(ctx context.Context, productID uuid.UUID) (*ProductDetails, error)
	CreateProduct(ctx context.Context, input *CreateProductInput) (*EnrichedProduct, error)
	CreateReview(ctx context.Context, input *CreateReviewInput) (*entity.Review, error)
	DeleteUser(ctx context.Context, userID uuid.UUID, cred gateway.Credential) (json.RawMessage, error)
	SearchProducts(ctx context.Context, query string) ([]EnrichedProduct, error)
}

// --- Input DTOs ---

// CreateProductInput defines the data required to create a product.
type CreateProductInput struct {
	ProductName  string    `json:"product_name" validate:"required"`
	Category     string    `json:"category" validate:"required"`
	SellerID     uuid.UUID `json:"seller_id" validate:"required"`
	Price        float64   `json:"price" validate:"min=0"`
	Availability int       `json:"availability"`
	Quantity     int       `json:"quantity" validate:"min=0"`
	Description  *string   `json:"description,omitempty"`
	Condition    *string   `json:"condition,omitempty"`
}

// CreateReviewInput defines the data required to create a review.
type CreateReviewInput struct {
	WriterID uuid.UUID `json:"writer_id" validate:"required"`
	SellerID uuid.UUID `json:"seller_id" validate:"required"`
	Rating   float64   `json:"rating" validate:"min=1,max=5"`
	Comment  *string   `json:"comment,omitempty"`
}

// --- Output views ---

// ReviewWithWriter is a review enriched with the writer's display name.
// WriterName degrades to "Anonymous" when the writer lookup fails; a single
// failed enrichment never fails the containing request.
type ReviewWithWriter struct {
	entity.Review
	WriterName string `json:"writer_name"`
}

// SellerStatistics aggregates a seller's catalogue and review figures.
type SellerStatistics struct {
	TotalProducts int     `json:"totalProducts"`
	AverageRating float64 `json:"averageRating"`
	TotalReviews  int     `json:"totalReviews"`
}

// SellerProfile is the assembled seller view. Constructed fresh per request;
// never cached.
type SellerProfile struct {
	Seller     *entity.User       `json:"seller"`
	Products   []entity.Product   `json:"products"`
	Reviews    []ReviewWithWriter `json:"reviews"`
	Statistics SellerStatistics   `json:"statistics"`
}

// SellerRatingStats is the review-only statistics block of a product view.
type SellerRatingStats struct {
	AverageRating float64 `json:"averageRating"`
	TotalReviews  int     `json:"totalReviews"`
}

// ProductDetails is the assembled product view.
type ProductDetails struct {
	Product       *entity.Product   `json:"product"`
	Seller        *entity.User      `json:"seller"`
	SellerReviews []entity.Review   `json:"sellerReviews"`
	SellerStats   SellerRatingStats `json:"sellerStats"`
}

// EnrichedProduct is a product carrying its seller record. SellerInfo is nil
// when the seller lookup failed or found nothing; that is a degraded field,
// not an error.
type EnrichedProduct struct {
	entity.Product
	SellerInfo *entity.User `json:"seller_info"`
}
