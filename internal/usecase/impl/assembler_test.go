package impl

import (
	"testing"

	"agora/internal/domain/entity"
	"agora/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAverageRating_Empty(t *testing.T) {
	assert.Zero(t, averageRating(nil))
	assert.Zero(t, averageRating([]entity.Review{}))
}

func TestAverageRating_RoundsToTwoDecimals(t *testing.T) {
	reviews := []entity.Review{
		{Rating: ratingPtr(5)},
		{Rating: ratingPtr(4)},
		{Rating: ratingPtr(5)},
	}

	assert.InDelta(t, 4.67, averageRating(reviews), 0.0001)
}

func TestAverageRating_LegacyStarsField(t *testing.T) {
	reviews := []entity.Review{
		{Rating: ratingPtr(4)},
		{Stars: ratingPtr(2)},
		{},
	}

	// 4 + 2 + 0 over three reviews
	assert.InDelta(t, 2.0, averageRating(reviews), 0.0001)
}

func TestAssembleSellerProfile_NilSlicesBecomeEmpty(t *testing.T) {
	seller := &entity.User{Name: "Alice"}

	profile := assembleSellerProfile(seller, nil, nil, nil)

	require.NotNil(t, profile)
	assert.NotNil(t, profile.Products)
	assert.NotNil(t, profile.Reviews)
	assert.Empty(t, profile.Products)
	assert.Empty(t, profile.Reviews)
	assert.Zero(t, profile.Statistics.AverageRating)
}

func TestAssembleProductDetails_Statistics(t *testing.T) {
	product := &entity.Product{ProductName: "Lamp"}
	seller := &entity.User{Name: "Alice"}
	reviews := []entity.Review{
		{Rating: ratingPtr(1)},
		{Rating: ratingPtr(2)},
	}

	details := assembleProductDetails(product, seller, reviews)

	assert.Equal(t, product, details.Product)
	assert.Equal(t, seller, details.Seller)
	assert.Equal(t, 2, details.SellerStats.TotalReviews)
	assert.InDelta(t, 1.5, details.SellerStats.AverageRating, 0.0001)
}

func TestAssembleSellerProfile_UsesEnrichedReviews(t *testing.T) {
	reviews := []entity.Review{{Rating: ratingPtr(3)}}
	enriched := []usecase.ReviewWithWriter{{Review: reviews[0], WriterName: "Bob"}}

	profile := assembleSellerProfile(&entity.User{}, nil, reviews, enriched)

	require.Len(t, profile.Reviews, 1)
	assert.Equal(t, "Bob", profile.Reviews[0].WriterName)
	assert.Equal(t, 1, profile.Statistics.TotalReviews)
}
