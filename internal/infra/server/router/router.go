// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/shoplist/backend/internal/integration/entrypoint/controller"
	"github.com/shoplist/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine            *gin.Engine
	healthController  *controller.HealthController
	authController    *controller.AuthController
	listController    *controller.ListController
	catalogController *controller.CatalogController
	statsController   *controller.StatsController
	loginRateLimiter  *middleware.RateLimiter
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	listController *controller.ListController,
	catalogController *controller.CatalogController,
	statsController *controller.StatsController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:  healthController,
		authController:    authController,
		listController:    listController,
		catalogController: catalogController,
		statsController:   statsController,
		loginRateLimiter:  loginRateLimiter,
		authMiddleware:    authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.RefreshToken)
				auth.POST("/logout", r.authController.Logout)
			}
		}

		// Shopping list routes (require authentication)
		if r.listController != nil && r.authMiddleware != nil {
			lists := v1.Group("/lists")
			lists.Use(r.authMiddleware.Authenticate())
			{
				lists.GET("", r.listController.List)
				lists.POST("", r.listController.Create)
				lists.GET("/:id", r.listController.Get)
				lists.PATCH("/:id", r.listController.Update)
				lists.DELETE("/:id", r.listController.Delete)
				lists.POST("/:id/entries", r.listController.AddEntry)
				lists.POST("/:id/entries/toggle-all", r.listController.ToggleAllEntries)
				lists.PATCH("/:id/entries/:entryId", r.listController.UpdateEntry)
				lists.DELETE("/:id/entries/:entryId", r.listController.RemoveEntry)
				lists.POST("/:id/shares", r.listController.Share)
				lists.DELETE("/:id/shares/:userId", r.listController.Unshare)
			}
		}

		// Catalog routes (require authentication)
		if r.catalogController != nil && r.authMiddleware != nil {
			catalog := v1.Group("/catalog")
			catalog.Use(r.authMiddleware.Authenticate())
			{
				catalog.GET("/items", r.catalogController.Search)
				catalog.POST("/items", r.catalogController.Create)
				catalog.GET("/items/popular", r.catalogController.Popular)
				catalog.DELETE("/items/:id", r.catalogController.Delete)
			}
		}

		// Stats routes (require authentication)
		if r.statsController != nil && r.authMiddleware != nil {
			stats := v1.Group("/stats")
			stats.Use(r.authMiddleware.Authenticate())
			{
				stats.GET("", r.statsController.Get)
			}
		}
	}
}
