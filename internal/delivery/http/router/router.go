// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"wayfare/config"
	"wayfare/internal/delivery/http/middleware"
	"wayfare/internal/delivery/http/router/handler"
	"wayfare/internal/domain/constants"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config           *config.Config
	ProximityHandler *handler.ProximityHandler
	BusinessHandler  *handler.BusinessHandler
	TestHandler      *handler.TestHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	config           *config.Config
	proximityHandler *handler.ProximityHandler
	businessHandler  *handler.BusinessHandler
	testHandler      *handler.TestHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		config:           params.Config,
		proximityHandler: params.ProximityHandler,
		businessHandler:  params.BusinessHandler,
		testHandler:      params.TestHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Traveler routes that require authentication and "traveler" role
	travelerGroup := e.Group("/traveler")
	travelerGroup.Use(r.authMiddleware.Authenticate)
	travelerGroup.Use(r.authMiddleware.RequireRole(constants.RoleTraveler))
	{
		travelerGroup.POST("/location", r.proximityHandler.ReportLocation)
		travelerGroup.POST("/scan-qr", r.businessHandler.ResolveListingQR)
	}

	// Business routes that require authentication and "business" role
	businessGroup := e.Group("/business")
	businessGroup.Use(r.authMiddleware.Authenticate)
	businessGroup.Use(r.authMiddleware.RequireRole(constants.RoleBusiness))
	{
		businessGroup.PUT("/location", r.businessHandler.UpdateLocation)
		businessGroup.PUT("/settings/location-sharing", r.businessHandler.SetLocationSharing)
		businessGroup.GET("/notifications", r.businessHandler.GetNotifications)
		businessGroup.GET("/share-qr", r.businessHandler.GetShareQR)
	}
}

// RegisterTestRoutes sets up middleware-validation routes, only when configured.
func (r *router) RegisterTestRoutes(e *echo.Echo) {
	if r.config.TestRoutes != nil && r.config.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		testGroup.GET("/public", r.testHandler.TestPublicEndpoint)

		testGroup.Use(r.authMiddleware.Authenticate) // Apply JWT authentication middleware
		{
			testGroup.GET("/auth", r.testHandler.TestAuthMiddleware)
		}
	}
}
