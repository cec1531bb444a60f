// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"agora/internal/delivery/http/response"
	"agora/internal/domain/gateway"
	"agora/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CompositeHandler holds dependencies for the aggregation endpoints.
type CompositeHandler struct {
	uc usecase.CompositeUsecase
}

// NewCompositeHandler is the constructor for CompositeHandler, injected by Fx.
func NewCompositeHandler(uc usecase.CompositeUsecase) *CompositeHandler {
	return &CompositeHandler{uc: uc}
}

// credential returns the caller's Authorization header verbatim, empty when
// the request carried none.
func credential(c echo.Context) gateway.Credential {
	return gateway.Credential(c.Request().Header.Get("Authorization"))
}

// pathID parses a UUID path parameter.
func pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, errors.Wrapf(err, "invalid %s", name)
	}

	return id, nil
}

// GetSellerProfile handles the assembled seller view request.
func (h *CompositeHandler) GetSellerProfile(c echo.Context) error {
	sellerID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid seller ID")
	}

	profile, err := h.uc.GetSellerProfile(c.Request().Context(), sellerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Seller profile retrieved successfully")
}

// GetProductDetails handles the assembled product view request.
func (h *CompositeHandler) GetProductDetails(c echo.Context) error {
	productID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	details, err := h.uc.GetProductDetails(c.Request().Context(), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, details, "Product details retrieved successfully")
}

// CreateProduct handles the gated product creation request.
func (h *CompositeHandler) CreateProduct(c echo.Context) error {
	var input *usecase.CreateProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created successfully")
}

// CreateReview handles the gated review creation request.
func (h *CompositeHandler) CreateReview(c echo.Context) error {
	var input *usecase.CreateReviewInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}

	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	review, err := h.uc.CreateReview(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, review, "Review created successfully")
}

// DeleteUser handles the dependency-guarded user deletion request.
func (h *CompositeHandler) DeleteUser(c echo.Context) error {
	userID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user ID")
	}

	result, err := h.uc.DeleteUser(c.Request().Context(), userID, credential(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "User deleted successfully")
}

// SearchProducts handles the enriched product search request.
func (h *CompositeHandler) SearchProducts(c echo.Context) error {
	query := c.QueryParam("query")
	if query == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Query parameter 'query' is required")
	}

	products, err := h.uc.SearchProducts(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "Products retrieved successfully")
}
