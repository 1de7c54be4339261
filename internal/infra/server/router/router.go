// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/carbon-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/carbon-tracker/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine               *gin.Engine
	healthController     *controller.HealthController
	targetController     *controller.TargetController
	replanningController *controller.ReplanningController
	actualsController    *controller.ActualsController
	varianceController   *controller.VarianceController
	metricController     *controller.MetricController
	replanRateLimiter    *middleware.RateLimiter
	authMiddleware       *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	targetController *controller.TargetController,
	replanningController *controller.ReplanningController,
	actualsController *controller.ActualsController,
	varianceController *controller.VarianceController,
	metricController *controller.MetricController,
	replanRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:     healthController,
		targetController:     targetController,
		replanningController: replanningController,
		actualsController:    actualsController,
		varianceController:   varianceController,
		metricController:     metricController,
		replanRateLimiter:    replanRateLimiter,
		authMiddleware:       authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Default middleware: logger and recovery
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes. All data routes require
// authentication; the destructive replan route is additionally rate limited.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		if r.targetController != nil && r.authMiddleware != nil {
			targets := v1.Group("/targets")
			targets.Use(r.authMiddleware.Authenticate())
			{
				targets.GET("", r.targetController.List)
				targets.POST("", r.targetController.Create)
				targets.GET("/:id", r.targetController.Get)
				targets.GET("/:id/replanning-history", r.targetController.ListHistory)

				if r.replanningController != nil && r.replanRateLimiter != nil {
					targets.POST("/:id/replan", r.replanRateLimiter.Middleware(), r.replanningController.Apply)
				}
				if r.varianceController != nil {
					targets.GET("/:id/variance", r.varianceController.Analyze)
				}
			}
		}

		if r.replanningController != nil && r.authMiddleware != nil {
			history := v1.Group("/replanning-history")
			history.Use(r.authMiddleware.Authenticate())
			{
				history.POST("/:id/rollback", r.replanningController.Rollback)
			}
		}

		if r.actualsController != nil && r.authMiddleware != nil {
			metricTargets := v1.Group("/metric-targets")
			metricTargets.Use(r.authMiddleware.Authenticate())
			{
				metricTargets.PUT("/:id/actuals", r.actualsController.Record)
			}
		}

		if r.metricController != nil && r.authMiddleware != nil {
			metrics := v1.Group("/metrics")
			metrics.Use(r.authMiddleware.Authenticate())
			{
				metrics.GET("", r.metricController.List)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
