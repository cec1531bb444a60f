// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"agora/internal/delivery/http/middleware"
	"agora/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CompositeHandler    *handler.CompositeHandler
	UserHandler         *handler.UserHandler
	AuthHandler         *handler.AuthHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	compositeHandler    *handler.CompositeHandler
	userHandler         *handler.UserHandler
	authHandler         *handler.AuthHandler
	authMiddleware      *middleware.AuthMiddleware
	requestIDMiddleware *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		compositeHandler:    params.CompositeHandler,
		userHandler:         params.UserHandler,
		authHandler:         params.AuthHandler,
		authMiddleware:      params.AuthMiddleware,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes proxied to the Users backend
	authGroup := e.Group("/auth")
	{
		authGroup.GET("/google", r.authHandler.GoogleLogin)
		authGroup.GET("/google/callback", r.authHandler.GoogleCallback)
	}

	api := e.Group("/api")
	{
		// Aggregated read views
		api.GET("/sellers/:id/profile", r.compositeHandler.GetSellerProfile)
		api.GET("/products/:id/details", r.compositeHandler.GetProductDetails)
		api.GET("/products/search", r.compositeHandler.SearchProducts)

		// Gated writes
		api.POST("/products", r.compositeHandler.CreateProduct)
		api.POST("/reviews", r.compositeHandler.CreateReview)
		api.DELETE("/users/:id", r.compositeHandler.DeleteUser)

		// Users passthrough
		api.GET("/users", r.userHandler.GetUsers)
		api.POST("/users", r.userHandler.CreateUser)
		api.PATCH("/users/:id", r.userHandler.UpdateUser)
	}

	// Routes that require a verified token
	profileGroup := e.Group("/api/profile")
	profileGroup.Use(r.authMiddleware.Authenticate)
	{
		profileGroup.GET("", r.userHandler.GetProfile)
	}
}
