// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"agora/internal/domain/entity"
	domainerrors "agora/internal/domain/errors"
	"agora/internal/domain/gateway"
	"agora/internal/domain/service"
	"agora/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// anonymousWriter is the sentinel writer name used when a review's writer
// lookup fails; the review itself is still returned.
const anonymousWriter = "Anonymous"

// compositeService implements the CompositeUsecase interface. It is stateless
// between calls; every fan-out set is request-local.
type compositeService struct {
	users     gateway.UsersGateway
	products  gateway.ProductsGateway
	reviews   gateway.ReviewsGateway
	directory service.UserDirectory
	logger    *slog.Logger
}

// NewCompositeService is the constructor for compositeService.
func NewCompositeService(
	users gateway.UsersGateway,
	products gateway.ProductsGateway,
	reviews gateway.ReviewsGateway,
	directory service.UserDirectory,
	logger *slog.Logger,
) usecase.CompositeUsecase {
	return &compositeService{
		users:     users,
		products:  products,
		reviews:   reviews,
		directory: directory,
		logger:    logger,
	}
}

// GetSellerProfile assembles a seller's profile from all three backends. The
// seller record, product list and review list are independent, so they are
// fetched concurrently; writer enrichment runs after the join because it
// needs the review list.
func (srv *compositeService) GetSellerProfile(ctx context.Context, sellerID uuid.UUID) (*usecase.SellerProfile, error) {
	srv.logger.Debug("Assembling seller profile", "sellerID", sellerID)

	var (
		seller      *entity.User
		productList []entity.Product
		reviewList  []entity.Review
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		found, err := srv.users.Get(groupCtx, sellerID, "")
		if err != nil {
			return translateGatewayError(err, domainerrors.ErrUserNotFound)
		}
		seller = found

		return nil
	})
	group.Go(func() error {
		found, err := srv.products.ListBySeller(groupCtx, sellerID)
		if err != nil {
			return translateGatewayError(err, domainerrors.ErrNotFound)
		}
		productList = found

		return nil
	})
	group.Go(func() error {
		found, err := srv.reviews.ListBySeller(groupCtx, sellerID)
		if err != nil {
			return translateGatewayError(err, domainerrors.ErrNotFound)
		}
		reviewList = found

		return nil
	})

	if err := group.Wait(); err != nil {
		return nil, errors.Wrap(err, "failed to assemble seller profile")
	}

	enriched := srv.enrichReviewWriters(ctx, reviewList)

	return assembleSellerProfile(seller, productList, reviewList, enriched), nil
}

// GetProductDetails assembles a product view. The product is fetched first
// because its seller_id is needed downstream; the seller record and the
// seller's reviews are then independent and fetched concurrently.
func (srv *compositeService) GetProductDetails(ctx context.Context, productID uuid.UUID) (*usecase.ProductDetails, error) {
	srv.logger.Debug("Assembling product details", "productID", productID)

	product, err := srv.products.Get(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(translateGatewayError(err, domainerrors.ErrProductNotFound), "product lookup")
	}

	var (
		seller     *entity.User
		reviewList []entity.Review
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		found, err := srv.users.Get(groupCtx, product.SellerID, "")
		if err != nil {
			return translateGatewayError(err, domainerrors.ErrUserNotFound)
		}
		seller = found

		return nil
	})
	group.Go(func() error {
		found, err := srv.reviews.ListBySeller(groupCtx, product.SellerID)
		if err != nil {
			return translateGatewayError(err, domainerrors.ErrNotFound)
		}
		reviewList = found

		return nil
	})

	if err := group.Wait(); err != nil {
		return nil, errors.Wrap(err, "failed to assemble product details")
	}

	return assembleProductDetails(product, seller, reviewList), nil
}

// CreateProduct validates the logical foreign key before any write: a product
// referencing a missing seller is rejected without touching the Products
// backend. After a successful create, the seller enrichment is best-effort;
// the product is the source of truth and is not rolled back when the
// enrichment lookup fails.
func (srv *compositeService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*usecase.EnrichedProduct, error) {
	srv.logger.Info("Creating product", "sellerID", input.SellerID)

	exists, err := srv.directory.Exists(ctx, input.SellerID)
	if err != nil {
		return nil, errors.Wrap(translateGatewayError(err, domainerrors.ErrUserNotFound), "seller existence check")
	}
	if !exists {
		return nil, errors.WithStack(domainerrors.ErrSellerNotExists)
	}

	created, err := srv.products.Create(ctx, &gateway.NewProduct{
		ProductName:  input.ProductName,
		Category:     input.Category,
		SellerID:     input.SellerID.String(),
		Price:        input.Price,
		Availability: input.Availability,
		Quantity:     input.Quantity,
		Description:  input.Description,
		Condition:    input.Condition,
	})
	if err != nil {
		return nil, errors.Wrap(translateGatewayError(err, domainerrors.ErrNotFound), "product create")
	}

	// The product already exists at this point. A failed seller lookup is a
	// soft inconsistency: degrade the enrichment and keep the success.
	seller, err := srv.users.Get(ctx, input.SellerID, "")
	if err != nil {
		srv.logger.Warn("Seller enrichment failed after product create",
			"sellerID", input.SellerID, "error", err)
		seller = nil
	}

	return &usecase.EnrichedProduct{Product: *created, SellerInfo: seller}, nil
}

// CreateReview validates both logical foreign keys concurrently before
// forwarding the review unchanged. When both checks fail, the writer is
// reported; the evaluation order is fixed writer-then-seller.
func (srv *compositeService) CreateReview(ctx context.Context, input *usecase.CreateReviewInput) (*entity.Review, error) {
	srv.logger.Info("Creating review", "writerID", input.WriterID, "sellerID", input.SellerID)

	var writerExists, sellerExists bool

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		exists, err := srv.directory.Exists(groupCtx, input.WriterID)
		if err != nil {
			return translateGatewayError(err, domainerrors.ErrUserNotFound)
		}
		writerExists = exists

		return nil
	})
	group.Go(func() error {
		exists, err := srv.directory.Exists(groupCtx, input.SellerID)
		if err != nil {
			return translateGatewayError(err, domainerrors.ErrUserNotFound)
		}
		sellerExists = exists

		return nil
	})

	if err := group.Wait(); err != nil {
		return nil, errors.Wrap(err, "review existence checks")
	}

	if !writerExists {
		return nil, errors.WithStack(domainerrors.ErrWriterNotExists)
	}
	if !sellerExists {
		return nil, errors.WithStack(domainerrors.ErrSellerNotExists)
	}

	created, err := srv.reviews.Create(ctx, &gateway.NewReview{
		WriterID: input.WriterID.String(),
		SellerID: input.SellerID.String(),
		Rating:   input.Rating,
		Comment:  input.Comment,
	})
	if err != nil {
		return nil, errors.Wrap(translateGatewayError(err, domainerrors.ErrNotFound), "review create")
	}

	return created, nil
}

// DeleteUser takes a dependency snapshot (products owned, reviews written,
// reviews received) with a concurrent three-way fan-out and refuses the
// delete while any set is non-empty. A snapshot fetch failure is fatal: a
// backend that cannot answer must never be read as "no dependencies".
func (srv *compositeService) DeleteUser(ctx context.Context, userID uuid.UUID, cred gateway.Credential) (json.RawMessage, error) {
	srv.logger.Info("Deleting user", "userID", userID)

	var (
		ownedProducts   []entity.Product
		writtenReviews  []entity.Review
		receivedReviews []entity.Review
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		found, err := srv.products.ListBySeller(groupCtx, userID)
		if err != nil {
			return translateGatewayError(err, domainerrors.ErrNotFound)
		}
		ownedProducts = found

		return nil
	})
	group.Go(func() error {
		found, err := srv.reviews.ListByWriter(groupCtx, userID)
		if err != nil {
			return translateGatewayError(err, domainerrors.ErrNotFound)
		}
		writtenReviews = found

		return nil
	})
	group.Go(func() error {
		found, err := srv.reviews.ListBySeller(groupCtx, userID)
		if err != nil {
			return translateGatewayError(err, domainerrors.ErrNotFound)
		}
		receivedReviews = found

		return nil
	})

	if err := group.Wait(); err != nil {
		return nil, errors.Wrap(err, "dependency snapshot")
	}

	if len(ownedProducts) > 0 || len(writtenReviews) > 0 || len(receivedReviews) > 0 {
		return nil, errors.WithStack(domainerrors.NewDependencyConflictError(
			len(ownedProducts), len(writtenReviews), len(receivedReviews)))
	}

	ack, err := srv.users.Delete(ctx, userID, cred)
	if err != nil {
		return nil, errors.Wrap(translateGatewayError(err, domainerrors.ErrUserNotFound), "user delete")
	}

	return ack, nil
}

// SearchProducts enriches a product search with seller records. Distinct
// sellers are fetched once each (order of first appearance), concurrently; a
// failed seller lookup degrades that seller to "missing" for every product
// that references it.
func (srv *compositeService) SearchProducts(ctx context.Context, query string) ([]usecase.EnrichedProduct, error) {
	srv.logger.Debug("Searching products", "query", query)

	found, err := srv.products.Search(ctx, query)
	if err != nil {
		return nil, errors.Wrap(translateGatewayError(err, domainerrors.ErrNotFound), "product search")
	}

	sellers := srv.fetchDistinctSellers(ctx, found)

	enriched := make([]usecase.EnrichedProduct, 0, len(found))
	for _, product := range found {
		enriched = append(enriched, usecase.EnrichedProduct{
			Product:    product,
			SellerInfo: sellers[product.SellerID],
		})
	}

	return enriched, nil
}

// fetchDistinctSellers resolves each distinct seller_id in the product list
// exactly once, concurrently. Lookup failures leave the seller absent from
// the returned map; they are logged, never propagated.
func (srv *compositeService) fetchDistinctSellers(ctx context.Context, products []entity.Product) map[uuid.UUID]*entity.User {
	seen := make(map[uuid.UUID]struct{}, len(products))
	distinct := make([]uuid.UUID, 0, len(products))
	for _, product := range products {
		if _, ok := seen[product.SellerID]; ok {
			continue
		}
		seen[product.SellerID] = struct{}{}
		distinct = append(distinct, product.SellerID)
	}

	results := make([]*entity.User, len(distinct))

	var waitGroup sync.WaitGroup
	for i, sellerID := range distinct {
		waitGroup.Add(1)
		go func(i int, sellerID uuid.UUID) {
			defer waitGroup.Done()

			seller, err := srv.users.Get(ctx, sellerID, "")
			if err != nil {
				srv.logger.Warn("Seller enrichment failed during search",
					"sellerID", sellerID, "error", err)

				return
			}
			results[i] = seller
		}(i, sellerID)
	}
	waitGroup.Wait()

	sellers := make(map[uuid.UUID]*entity.User, len(distinct))
	for i, sellerID := range distinct {
		if results[i] != nil {
			sellers[sellerID] = results[i]
		}
	}

	return sellers
}

// enrichReviewWriters resolves writer names for all reviews concurrently.
// Each branch degrades to the anonymous sentinel on failure so one broken
// lookup cannot affect the other reviews or the request.
func (srv *compositeService) enrichReviewWriters(ctx context.Context, reviews []entity.Review) []usecase.ReviewWithWriter {
	enriched := make([]usecase.ReviewWithWriter, len(reviews))

	var waitGroup sync.WaitGroup
	for i, review := range reviews {
		enriched[i] = usecase.ReviewWithWriter{Review: review, WriterName: anonymousWriter}

		waitGroup.Add(1)
		go func(i int, writerID uuid.UUID) {
			defer waitGroup.Done()

			writer, err := srv.users.Get(ctx, writerID, "")
			if err != nil {
				srv.logger.Warn("Writer enrichment failed",
					"writerID", writerID, "error", err)

				return
			}
			enriched[i].WriterName = writer.Name
		}(i, review.WriterID)
	}
	waitGroup.Wait()

	return enriched
}

// translateGatewayError maps the uniform gateway failure taxonomy onto the
// application error taxonomy. notFound names the AppError to surface when the
// underlying call answered 404.
func translateGatewayError(err error, notFound domainerrors.AppError) error {
	var unavailable *gateway.UnavailableError
	if errors.As(err, &unavailable) {
		return errors.Wrap(domainerrors.NewBackendUnavailableError(unavailable.Service), err.Error())
	}

	var rejected *gateway.RejectedError
	if errors.As(err, &rejected) {
		return errors.WithStack(domainerrors.NewBackendRejectedError(rejected.Reason))
	}

	if errors.Is(err, gateway.ErrNotFound) {
		return errors.Wrap(notFound, err.Error())
	}

	return errors.WithStack(err)
}
