package impl

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"agora/internal/domain/entity"
	domainerrors "agora/internal/domain/errors"
	"agora/internal/domain/gateway"
	mockGw "agora/internal/mocks/gateway"
	mockSvc "agora/internal/mocks/service"
	"agora/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// compositeServiceFixtures holds all test dependencies for composite service tests.
type compositeServiceFixtures struct {
	service   usecase.CompositeUsecase
	users     *mockGw.MockUsersGateway
	products  *mockGw.MockProductsGateway
	reviews   *mockGw.MockReviewsGateway
	directory *mockSvc.MockUserDirectory
}

func createTestCompositeService(t *testing.T) compositeServiceFixtures {
	users := mockGw.NewMockUsersGateway(t)
	products := mockGw.NewMockProductsGateway(t)
	reviews := mockGw.NewMockReviewsGateway(t)
	directory := mockSvc.NewMockUserDirectory(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewCompositeService(users, products, reviews, directory, logger)

	return compositeServiceFixtures{
		service:   service,
		users:     users,
		products:  products,
		reviews:   reviews,
		directory: directory,
	}
}

func ratingPtr(v float64) *float64 {
	return &v
}

func noCred() gateway.Credential {
	return gateway.Credential("")
}

func TestCompositeService_GetSellerProfile_Success(t *testing.T) {
	fixtures := createTestCompositeService(t)

	ctx := context.Background()
	sellerID := uuid.New()
	writerA := uuid.New()
	writerB := uuid.New()

	seller := &entity.User{ID: sellerID, Name: "Alice", Role: "seller"}
	productList := []entity.Product{
		{ID: uuid.New(), ProductName: "Lamp", SellerID: sellerID},
		{ID: uuid.New(), ProductName: "Desk", SellerID: sellerID},
	}
	reviewList := []entity.Review{
		{ID: uuid.New(), WriterID: writerA, SellerID: sellerID, Rating: ratingPtr(5)},
		{ID: uuid.New(), WriterID: writerB, SellerID: sellerID, Rating: ratingPtr(4)},
		{ID: uuid.New(), WriterID: writerA, SellerID: sellerID, Rating: ratingPtr(5)},
	}

	fixtures.users.EXPECT().Get(mock.Anything, sellerID, noCred()).Return(seller, nil)
	fixtures.products.EXPECT().ListBySeller(mock.Anything, sellerID).Return(productList, nil)
	fixtures.reviews.EXPECT().ListBySeller(mock.Anything, sellerID).Return(reviewList, nil)
	fixtures.users.EXPECT().Get(mock.Anything, writerA, noCred()).
		Return(&entity.User{ID: writerA, Name: "Bob"}, nil)
	fixtures.users.EXPECT().Get(mock.Anything, writerB, noCred()).
		Return(&entity.User{ID: writerB, Name: "Carol"}, nil)

	profile, err := fixtures.service.GetSellerProfile(ctx, sellerID)

	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, seller, profile.Seller)
	assert.Len(t, profile.Products, 2)
	require.Len(t, profile.Reviews, 3)
	assert.Equal(t, "Bob", profile.Reviews[0].WriterName)
	assert.Equal(t, "Carol", profile.Reviews[1].WriterName)
	assert.Equal(t, "Bob", profile.Reviews[2].WriterName)
	assert.Equal(t, 2, profile.Statistics.TotalProducts)
	assert.Equal(t, 3, profile.Statistics.TotalReviews)
	assert.InDelta(t, 4.67, profile.Statistics.AverageRating, 0.001)
}

func TestCompositeService_GetSellerProfile_NoReviews(t *testing.T) {
	fixtures := createTestCompositeService(t)

	ctx := context.Background()
	sellerID := uuid.New()

	fixtures.users.EXPECT().Get(mock.Anything, sellerID, noCred()).
		Return(&entity.User{ID: sellerID, Name: "Alice"}, nil)
	fixtures.products.EXPECT().ListBySeller(mock.Anything, sellerID).Return([]entity.Product{}, nil)
	fixtures.reviews.EXPECT().ListBySeller(mock.Anything, sellerID).Return([]entity.Review{}, nil)

	profile, err := fixtures.service.GetSellerProfile(ctx, sellerID)

	require.NoError(t, err)
	assert.Empty(t, profile.Products)
	assert.Empty(t, profile.Reviews)
	assert.Equal(t, 0, profile.Statistics.TotalReviews)
	assert.Zero(t, profile.Statistics.AverageRating)
}

func TestCompositeService_GetSellerProfile_SellerNotFound(t *testing.T) {
	fixtures := createTestCompositeService(t)

	ctx := context.Background()
	sellerID := uuid.New()

	fixtures.users.EXPECT().Get(mock.Anything, sellerID, noCred()).
		Return(nil, gateway.ErrNotFound)
	fixtures.products.EXPECT().ListBySeller(mock.Anything, sellerID).
		Return([]entity.Product{}, nil).Maybe()
	fixtures.reviews.EXPECT().ListBySeller(mock.Anything, sellerID).
		Return([]entity.Review{}, nil).Maybe()

	profile, err := fixtures.service.GetSellerProfile(ctx, sellerID)

	require.Error(t, err)
	assert.Nil(t, profile)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestCompositeService_GetSellerProfile_WriterLookupDegrades(t *testing.T) {
	fixtures := createTestCompositeService(t)

	ctx := context.Background()
	sellerID := uuid.New()
	goodWriter := uuid.New()
	brokenWriter := uuid.New()

	reviewList := []entity.Review{
		{ID: uuid.New(), WriterID: goodWriter, SellerID: sellerID, Rating: ratingPtr(5)},
		{ID: uuid.New(), WriterID: brokenWriter, SellerID: sellerID, Rating: ratingPtr(3)},
	}

	fixtures.users.EXPECT().Get(mock.Anything, sellerID, noCred()).
		Return(&entity.User{ID: sellerID, Name: "Alice"}, nil)
	fixtures.products.EXPECT().ListBySeller(mock.Anything, sellerID).Return([]entity.Product{}, nil)
	fixtures.reviews.EXPECT().ListBySeller(mock.Anything, sellerID).Return(reviewList, nil)
	fixtures.users.EXPECT().Get(mock.Anything, goodWriter, noCred()).
		Return(&entity.User{ID: goodWriter, Name: "Bob"}, nil)
	fixtures.users.EXPECT().Get(mock.Anything, brokenWriter, noCred()).
		Return(nil, &gateway.UnavailableError{Service: "users", Status: 500})

	profile, err := fixtures.service.GetSellerProfile(ctx, sellerID)

	require.NoError(t, err)
	require.Len(t, profile.Reviews, 2)
	assert.Equal(t, "Bob", profile.Reviews[0].WriterName)
	assert.Equal(t, "Anonymous", profile.Reviews[1].WriterName)
}

func TestCompositeService_GetProductDetails_Success(t *testing.T) {
	fixtures := createTestCompositeService(t)

	ctx := context.Background()
	productID := uuid.New()
	sellerID := uuid.New()

	product := &entity.Product{ID: productID, ProductName: "Lamp", SellerID: sellerID}
	seller := &entity.User{ID: sellerID, Name: "Alice"}
	reviewList := []entity.Review{
		{ID: uuid.New(), SellerID: sellerID, Rating: ratingPtr(4)},
		{ID: uuid.New(), SellerID: sellerID, Stars: ratingPtr(2)},
	}

	fixtures.products.EXPECT().Get(mock.Anything, productID).Return(product, nil)
	fixtures.users.EXPECT().Get(mock.Anything, sellerID, noCred()).Return(seller, nil)
	fixtures.reviews.EXPECT().ListBySeller(mock.Anything, sellerID).Return(reviewList, nil)

	details, err := fixtures.service.GetProductDetails(ctx, productID)

	require.NoError(t, err)
	assert.Equal(t, product, details.Product)
	assert.Equal(t, seller, details.Seller)
	assert.Len(t, details.SellerReviews, 2)
	assert.Equal(t, 2, details.SellerStats.TotalReviews)
	assert.InDelta(t, 3.0, details.SellerStats.AverageRating, 0.001)
}

func TestCompositeService_GetProductDetails_ProductNotFound(t *testing.T) {
	fixtures := createTestCompositeService(t)

	ctx := context.Background()
	productID := uuid.New()

	fixtures.products.EXPECT().Get(mock.Anything, productID).Return(nil, gateway.ErrNotFound)

	details, err := fixtures.service.GetProductDetails(ctx, productID)

	require.Error(t, err)
	assert.Nil(t, details)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCompositeService_CreateProduct_SellerMissing(t *testing.T) {
	fixtures := createTestCompositeService(t)

	ctx := context.Background()
	input := &usecase.CreateProductInput{
		ProductName: "Lamp",
		Category:    "furniture",
		SellerID:    uuid.New(),
		Price:       19.99,
		Quantity:    3,
	}

	fixtures.directory.EXPECT().Exists(mock.Anything, input.SellerID).Return(false, nil)

	product, err := fixtures.service.CreateProduct(ctx, input)

	require.Error(t, err)
	assert.Nil(t, product)
	assert.ErrorIs(t, err, domainerrors.ErrSellerNotExists)
	fixtures.products.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCompositeService_CreateProduct_ExistenceCheckUnavailable(t *testing.T) {
	fixtures := createTestCompositeService(t)

	ctx := context.Background()
	input := &usecase.CreateProductInput{
		ProductName: "Lamp",
		Category:    "furniture",
		SellerID:    uuid.New(),
	}

	fixtures.directory.EXPECT().Exists(mock.Anything, input.SellerID).
		Return(false, errors.Wrap(&gateway.UnavailableError{Service: "users", Status: 503}, "user existence probe"))

	product, err := fixtures.service.CreateProduct(ctx, input)

	require.Error(t, err)
	assert.Nil(t, product)

	var unavailable *domainerrors.BackendUnavailableError
	assert.ErrorAs(t, err, &unavailable)
	fixtures.products.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCompositeService_CreateProduct_Success(t *testing.T) {
	fixtures := createTestCompositeService(t)

	ctx := context.Background()
	sellerID := uuid.New()
	input := &usecase.CreateProductInput{
		ProductName: "Lamp",
		Category:    "furniture",
		SellerID:    sellerID,
		Price:       19.99,
		Quantity:    3,
	}
	created := &entity.Product{ID: uuid.New(), ProductName: "Lamp", SellerID: sellerID}
	seller := &entity.User{ID: sellerID, Name: "Alice"}

	fixtures.directory.EXPECT().Exists(mock.Anything, sellerID).Return(true, nil)
	fixtures.products.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*gateway.NewProduct")).
		Run(func(ctx context.Context, draft *gateway.NewProduct) {
			assert.Equal(t, sellerID.String(), draft.SellerID)
			assert.Equal(t, "Lamp", draft.ProductName)
		}).
		Return(created, nil)
	fixtures.users.EXPECT().Get(mock.Anything, sellerID, noCred()).Return(seller, nil)

	product, err := fixtures.service.CreateProduct(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, product)
	assert.Equal(t, *created, product.Product)
	assert.Equal(t, seller, product.SellerInfo)
}

func TestCompositeService_CreateProduct_EnrichmentDegrades(t *testing.T) {
	fixtures := createTestCompositeService(t)

	ctx := context.Background()
	sellerID := uuid.New()
	input := &usecase.CreateProductInput{
		ProductName: "Lamp",
		Category:    "furniture",
		SellerID:    sellerID,
	}
	created := &entity.Product{ID: uuid.New(), ProductName: "Lamp", SellerID: sellerID}

	fixtures.directory.EXPECT().Exists(mock.Anything, sellerID).Return(true, nil)
	fixtures.products.EXPECT().Create(mock.Anything, mock.Anything).Return(created, nil)
	fixtures.users.EXPECT().Get(mock.Anything, sellerID, noCred()).
		Return(nil, &gateway.UnavailableError{Service: "users", Status: 500})

	product, err := fixtures.service.CreateProduct(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, product)
	assert.Equal(t, *created, product.Product)
	assert.Nil(t, product.SellerInfo)
}

func TestCompositeService_CreateReview_Success(t *testing.T) {
	fixtures := createTestCompositeService(t)

	ctx := context.Background()
	input := &usecase.CreateReviewInput{
		WriterID: uuid.New(),
		SellerID: uuid.New(),
		Rating:   4,
	}
	created := &entity.Review{ID: uuid.New(), WriterID: input.WriterID, SellerID: input.SellerID, Rating: ratingPtr(4)}

	fixtures.directory.EXPECT().Exists(mock.Anything, input.WriterID).Return(true, nil)
	fixtures.directory.EXPECT().Exists(mock.Anything, input.SellerID).Return(true, nil)
	fixtures.reviews.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*gateway.NewReview")).
		Run(func(ctx context.Context, draft *gateway.NewReview) {
			assert.Equal(t, input.WriterID.String(), draft.WriterID)
			assert.Equal(t, input.SellerID.String(), draft.SellerID)
			assert.InDelta(t, 4.0, draft.Rating, 0.001)
		}).
		Return(created, nil)

	review, err := fixtures.service.CreateReview(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, created, review)
}

func TestCompositeService_CreateReview_SellerMissing(t *testing.T) {
	fixtures := createTestCompositeService(t)

	ctx := context.Background()
	input := &usecase.CreateReviewInput{
		WriterID: uuid.New(),
		SellerID: uuid.New(),
		Rating:   4,
	}

	fixtures.directory.EXPECT().Exists(mock.Anything, input.WriterID).Return(true, nil)
	fixtures.directory.EXPECT().Exists(mock.Anything, input.SellerID).Return(false, nil)

	review, err := fixtures.service.CreateReview(ctx, input)

	require.Error(t, err)
	assert.Nil(t, review)
	assert.ErrorIs(t, err, domainerrors.ErrSellerNotExists)
	fixtures.reviews.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCompositeService_CreateReview_BothMissingReportsWriter(t *testing.T) {
	fixtures := createTestCompositeService(t)

	ctx := context.Background()
	input := &usecase.CreateReviewInput{
		WriterID: uuid.New(),
		SellerID: uuid.New(),
		Rating:   2,
	}

	fixtures.directory.EXPECT().Exists(mock.Anything, input.WriterID).Return(false, nil)
	fixtures.directory.EXPECT().Exists(mock.Anything, input.SellerID).Return(false, nil)

	review, err := fixtures.service.CreateReview(ctx, input)

	require.Error(t, err)
	assert.Nil(t, review)
	assert.ErrorIs(t, err, domainerrors.ErrWriterNotExists)
	fixtures.reviews.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCompositeService_CreateReview_ExistenceCheckUnavailable(t *testing.T) {
	fixtures := createTestCompositeService(t)

	ctx := context.Background()
	input := &usecase.CreateReviewInput{
		WriterID: uuid.New(),
		SellerID: uuid.New(),
		Rating:   5,
	}

	fixtures.directory.EXPECT().Exists(mock.Anything, input.WriterID).
		Return(false, errors.Wrap(&gateway.UnavailableError{Service: "users", Status: 502}, "user existence probe"))
	fixtures.directory.EXPECT().Exists(mock.Anything, input.SellerID).
		Return(true, nil).Maybe()

	review, err := fixtures.service.CreateReview(ctx, input)

	require.Error(t, err)
	assert.Nil(t, review)

	var unavailable *domainerrors.BackendUnavailableError
	assert.ErrorAs(t, err, &unavailable)
	fixtures.reviews.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCompositeService_DeleteUser_Conflict(t *testing.T) {
	fixtures := createTestCompositeService(t)

	ctx := context.Background()
	userID := uuid.New()

	fixtures.products.EXPECT().ListBySeller(mock.Anything, userID).
		Return([]entity.Product{{ID: uuid.New()}, {ID: uuid.New()}}, nil)
	fixtures.reviews.EXPECT().ListByWriter(mock.Anything, userID).
		Return([]entity.Review{}, nil)
	fixtures.reviews.EXPECT().ListBySeller(mock.Anything, userID).
		Return([]entity.Review{{ID: uuid.New()}}, nil)

	ack, err := fixtures.service.DeleteUser(ctx, userID, noCred())

	require.Error(t, err)
	assert.Nil(t, ack)

	var conflict *domainerrors.DependencyConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, 2, conflict.Counts.Products)
	assert.Equal(t, 0, conflict.Counts.WrittenReviews)
	assert.Equal(t, 1, conflict.Counts.ReceivedReviews)
	fixtures.users.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
}

func TestCompositeService_DeleteUser_Success(t *testing.T) {
	fixtures := createTestCompositeService(t)

	ctx := context.Background()
	userID := uuid.New()
	cred := gateway.Credential("Bearer token")
	backendAck := json.RawMessage(`{"deleted":true}`)

	fixtures.products.EXPECT().ListBySeller(mock.Anything, userID).Return([]entity.Product{}, nil)
	fixtures.reviews.EXPECT().ListByWriter(mock.Anything, userID).Return([]entity.Review{}, nil)
	fixtures.reviews.EXPECT().ListBySeller(mock.Anything, userID).Return([]entity.Review{}, nil)
	fixtures.users.EXPECT().Delete(mock.Anything, userID, cred).Return(backendAck, nil).Once()

	ack, err := fixtures.service.DeleteUser(ctx, userID, cred)

	require.NoError(t, err)
	assert.Equal(t, backendAck, ack)
}

func TestCompositeService_DeleteUser_SnapshotUnavailable(t *testing.T) {
	fixtures := createTestCompositeService(t)

	ctx := context.Background()
	userID := uuid.New()

	fixtures.products.EXPECT().ListBySeller(mock.Anything, userID).
		Return(nil, &gateway.UnavailableError{Service: "products", Status: 500})
	fixtures.reviews.EXPECT().ListByWriter(mock.Anything, userID).
		Return([]entity.Review{}, nil).Maybe()
	fixtures.reviews.EXPECT().ListBySeller(mock.Anything, userID).
		Return([]entity.Review{}, nil).Maybe()

	ack, err := fixtures.service.DeleteUser(ctx, userID, noCred())

	require.Error(t, err)
	assert.Nil(t, ack)

	var unavailable *domainerrors.BackendUnavailableError
	assert.ErrorAs(t, err, &unavailable)
	fixtures.users.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
}

func TestCompositeService_SearchProducts_DedupesSellerLookups(t *testing.T) {
	fixtures := createTestCompositeService(t)

	ctx := context.Background()
	sellerA := uuid.New()
	sellerB := uuid.New()

	found := []entity.Product{
		{ID: uuid.New(), ProductName: "Lamp", SellerID: sellerA},
		{ID: uuid.New(), ProductName: "Desk", SellerID: sellerB},
		{ID: uuid.New(), ProductName: "Chair", SellerID: sellerA},
	}

	fixtures.products.EXPECT().Search(mock.Anything, "furniture").Return(found, nil)
	fixtures.users.EXPECT().Get(mock.Anything, sellerA, noCred()).
		Return(&entity.User{ID: sellerA, Name: "Alice"}, nil).Once()
	fixtures.users.EXPECT().Get(mock.Anything, sellerB, noCred()).
		Return(&entity.User{ID: sellerB, Name: "Bob"}, nil).Once()

	enriched, err := fixtures.service.SearchProducts(ctx, "furniture")

	require.NoError(t, err)
	require.Len(t, enriched, 3)
	assert.Equal(t, "Alice", enriched[0].SellerInfo.Name)
	assert.Equal(t, "Bob", enriched[1].SellerInfo.Name)
	assert.Equal(t, "Alice", enriched[2].SellerInfo.Name)
}

func TestCompositeService_SearchProducts_SellerLookupDegrades(t *testing.T) {
	fixtures := createTestCompositeService(t)

	ctx := context.Background()
	sellerA := uuid.New()
	sellerB := uuid.New()

	found := []entity.Product{
		{ID: uuid.New(), ProductName: "Lamp", SellerID: sellerA},
		{ID: uuid.New(), ProductName: "Desk", SellerID: sellerB},
	}

	fixtures.products.EXPECT().Search(mock.Anything, "lamp").Return(found, nil)
	fixtures.users.EXPECT().Get(mock.Anything, sellerA, noCred()).
		Return(nil, &gateway.UnavailableError{Service: "users", Status: 500}).Once()
	fixtures.users.EXPECT().Get(mock.Anything, sellerB, noCred()).
		Return(&entity.User{ID: sellerB, Name: "Bob"}, nil).Once()

	enriched, err := fixtures.service.SearchProducts(ctx, "lamp")

	require.NoError(t, err)
	require.Len(t, enriched, 2)
	assert.Nil(t, enriched[0].SellerInfo)
	assert.Equal(t, "Bob", enriched[1].SellerInfo.Name)
}

func TestCompositeService_SearchProducts_BackendUnavailable(t *testing.T) {
	fixtures := createTestCompositeService(t)

	ctx := context.Background()

	fixtures.products.EXPECT().Search(mock.Anything, "lamp").
		Return(nil, &gateway.UnavailableError{Service: "products", Status: 503})

	enriched, err := fixtures.service.SearchProducts(ctx, "lamp")

	require.Error(t, err)
	assert.Nil(t, enriched)

	var unavailable *domainerrors.BackendUnavailableError
	assert.ErrorAs(t, err, &unavailable)
}

func TestCompositeService_SearchProducts_NoResults(t *testing.T) {
	fixtures := createTestCompositeService(t)

	ctx := context.Background()

	fixtures.products.EXPECT().Search(mock.Anything, "nothing").Return([]entity.Product{}, nil)

	enriched, err := fixtures.service.SearchProducts(ctx, "nothing")

	require.NoError(t, err)
	assert.Empty(t, enriched)
}

func TestCompositeService_CreateProduct_BackendRejects(t *testing.T) {
	fixtures := createTestCompositeService(t)

	ctx := context.Background()
	sellerID := uuid.New()
	input := &usecase.CreateProductInput{
		ProductName: "Lamp",
		Category:    "furniture",
		SellerID:    sellerID,
		Price:       -1,
	}

	fixtures.directory.EXPECT().Exists(mock.Anything, sellerID).Return(true, nil)
	fixtures.products.EXPECT().Create(mock.Anything, mock.Anything).
		Return(nil, &gateway.RejectedError{Reason: "price must be non-negative"})

	product, err := fixtures.service.CreateProduct(ctx, input)

	require.Error(t, err)
	assert.Nil(t, product)

	var rejected *domainerrors.BackendRejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Contains(t, rejected.Message(), "price must be non-negative")
}
