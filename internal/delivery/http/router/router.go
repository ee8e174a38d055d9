// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"shopfront/internal/delivery/http/middleware"
	"shopfront/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	CatalogHandler *handler.CatalogHandler
	ProductHandler *handler.ProductHandler
	ReviewHandler  *handler.ReviewHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	catalogHandler *handler.CatalogHandler
	productHandler *handler.ProductHandler
	reviewHandler  *handler.ReviewHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		catalogHandler: params.CatalogHandler,
		productHandler: params.ProductHandler,
		reviewHandler:  params.ReviewHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.SignUp)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.GET("/oauth/:provider", r.authHandler.OAuthLogin)
		authGroup.GET("/oauth/:provider/callback", r.authHandler.OAuthCallback)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	// Public browsing routes
	e.GET("/categories", r.catalogHandler.MainCategories)
	e.GET("/categories/:id/children", r.catalogHandler.ChildCategories)
	e.GET("/categories/:id/path", r.catalogHandler.CategoryPath)
	e.GET("/products", r.catalogHandler.ListProducts)
	e.GET("/products/search", r.catalogHandler.SearchProducts)
	e.GET("/products/:id", r.catalogHandler.GetProduct)
	e.GET("/products/:id/qrcode", r.catalogHandler.ProductShareQR)
	e.GET("/products/:id/reviews", r.reviewHandler.ProductReviews)

	// Seller routes that require authentication
	sellerGroup := e.Group("/seller")
	sellerGroup.Use(r.authMiddleware.Authenticate)
	{
		sellerGroup.GET("/products", r.productHandler.MyProducts)
		sellerGroup.POST("/products", r.productHandler.CreateProduct)
		sellerGroup.PUT("/products/:id", r.productHandler.UpdateProduct)
		sellerGroup.DELETE("/products/:id", r.productHandler.DeleteProduct)
	}

	// Review writes require authentication
	e.POST("/products/:id/reviews", r.reviewHandler.CreateReview, r.authMiddleware.Authenticate)
	e.PUT("/reviews/:id", r.reviewHandler.UpdateReview, r.authMiddleware.Authenticate)
	e.DELETE("/reviews/:id", r.reviewHandler.DeleteReview, r.authMiddleware.Authenticate)
}
