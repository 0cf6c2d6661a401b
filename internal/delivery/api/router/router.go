// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/config"
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"
	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	SessionHandler *handler.SessionHandler
	ProductHandler *handler.ProductHandler
	ReviewHandler  *handler.ReviewHandler
	ShareHandler   *handler.ShareHandler
	PaymentHandler *handler.PaymentHandler
	AdminHandler   *handler.AdminHandler
	TestHandler    *handler.TestHandler
	AuthMiddleware *middleware.AuthMiddleware
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	sessionHandler *handler.SessionHandler
	productHandler *handler.ProductHandler
	reviewHandler  *handler.ReviewHandler
	shareHandler   *handler.ShareHandler
	paymentHandler *handler.PaymentHandler
	adminHandler   *handler.AdminHandler
	testHandler    *handler.TestHandler
	authMiddleware *middleware.AuthMiddleware
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		sessionHandler: params.SessionHandler,
		productHandler: params.ProductHandler,
		reviewHandler:  params.ReviewHandler,
		shareHandler:   params.ShareHandler,
		paymentHandler: params.PaymentHandler,
		adminHandler:   params.AdminHandler,
		testHandler:    params.TestHandler,
		authMiddleware: params.AuthMiddleware,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout, r.authMiddleware.Authenticate)
	}

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	// Current-user state
	apiV1.GET("/session", r.sessionHandler.GetSession)
	apiV1.GET("/session/events", r.sessionHandler.StreamSession)
	apiV1.PATCH("/profile", r.sessionHandler.UpdateProfile)

	// Catalog routes
	productsGroup := apiV1.Group("/products")
	{
		productsGroup.GET("", r.productHandler.SearchProducts)
		productsGroup.POST("/filter-draft", r.productHandler.EvaluateFilterDraft)
		productsGroup.GET("/:id", r.productHandler.GetProduct)
		productsGroup.GET("/:id/reviews", r.reviewHandler.ListReviews)
		productsGroup.POST("/:id/reviews", r.reviewHandler.SubmitReview)
		productsGroup.GET("/:id/share", r.shareHandler.ShareProduct)
		productsGroup.GET("/:id/share/qr", r.shareHandler.ShareQRCode)
	}
	apiV1.GET("/categories", r.productHandler.ListCategories)
	apiV1.GET("/brands", r.productHandler.ListBrands)
	apiV1.GET("/share/resolve", r.shareHandler.ResolveLink)

	// Payment routes
	paymentsGroup := apiV1.Group("/payments")
	{
		paymentsGroup.POST("/intents", r.paymentHandler.CreatePaymentIntent)
		paymentsGroup.GET("/config", r.paymentHandler.GetClientConfig)
	}

	// Admin routes that require authentication and "admin" role
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)                  // First, check if logged in
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin)) // Then, check for the role
	{
		adminGroup.GET("/products", r.adminHandler.ListProducts)
		adminGroup.POST("/products", r.adminHandler.CreateProduct)
		adminGroup.GET("/users", r.adminHandler.ListUsers)
	}
}

func (r *router) RegisterTestRoutes(e *echo.Echo) {
	// Test routes - only enabled when configured
	if r.config.TestRoutes != nil && r.config.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		testGroup.GET("/public", r.testHandler.TestPublicEndpoint)

		testGroup.Use(r.authMiddleware.Authenticate) // Apply bearer token authentication middleware
		{
			testGroup.GET("/auth", r.testHandler.TestAuthMiddleware)
		}
	}
}
