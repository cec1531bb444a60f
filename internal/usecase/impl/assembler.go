package impl

import (
	"math"

	"agora/internal/domain/entity"
	"agora/internal/usecase"
)

// averageRating is the arithmetic mean of the review scores rounded to two
// decimal places. No reviews means 0, not NaN.
func averageRating(reviews []entity.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}

	var sum float64
	for _, review := range reviews {
		sum += review.Score()
	}

	return math.Round(sum/float64(len(reviews))*100) / 100
}

// assembleSellerProfile shapes the joined backend payloads into the seller
// profile view. Pure transform, no I/O.
func assembleSellerProfile(
	seller *entity.User,
	products []entity.Product,
	reviews []entity.Review,
	enriched []usecase.ReviewWithWriter,
) *usecase.SellerProfile {
	if products == nil {
		products = []entity.Product{}
	}
	if enriched == nil {
		enriched = []usecase.ReviewWithWriter{}
	}

	return &usecase.SellerProfile{
		Seller:   seller,
		Products: products,
		Reviews:  enriched,
		Statistics: usecase.SellerStatistics{
			TotalProducts: len(products),
			AverageRating: averageRating(reviews),
			TotalReviews:  len(reviews),
		},
	}
}

// assembleProductDetails shapes the joined backend payloads into the product
// details view. Pure transform, no I/O.
func assembleProductDetails(
	product *entity.Product,
	seller *entity.User,
	sellerReviews []entity.Review,
) *usecase.ProductDetails {
	if sellerReviews == nil {
		sellerReviews = []entity.Review{}
	}

	return &usecase.ProductDetails{
		Product:       product,
		Seller:        seller,
		SellerReviews: sellerReviews,
		SellerStats: usecase.SellerRatingStats{
			AverageRating: averageRating(sellerReviews),
			TotalReviews:  len(sellerReviews),
		},
	}
}
