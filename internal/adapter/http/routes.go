package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all route analytics API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, h *ViewHandler) {
	// Health check endpoint (no version prefix)
	e.GET("/health", h.Health)

	// API v1 group
	api := e.Group("/api/v1")

	// Views group
	views := api.Group("/views")
	views.GET("", h.ListViews)
	views.GET("/:name", h.GetView)
}

// RegisterRoutesWithMiddleware registers routes with custom middleware.
// This allows for endpoint-specific middleware configuration.
func RegisterRoutesWithMiddleware(e *echo.Echo, h *ViewHandler, middleware ...echo.MiddlewareFunc) {
	// Health check endpoint (no version prefix, no middleware)
	e.GET("/health", h.Health)

	// API v1 group with middleware
	api := e.Group("/api/v1", middleware...)

	views := api.Group("/views")
	views.GET("", h.ListViews)
	views.GET("/:name", h.GetView)
}
