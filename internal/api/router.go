package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	cache "github.com/patrickmn/go-cache"
	"github.com/portfolio-content-api/internal/auth"
	"github.com/portfolio-content-api/internal/config"
	"github.com/portfolio-content-api/internal/database"
	"github.com/portfolio-content-api/internal/repository"
	"github.com/rs/zerolog"
)

// NewRouter creates and configures the Gin router
func NewRouter(db *database.DB, repos *repository.Repositories, verifier auth.Verifier, issuer *auth.Issuer, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware(cfg.CORS))
	if cfg.RateLimit.Enabled {
		router.Use(rateLimitMiddleware(cfg.RateLimit))
	}

	// Shared read cache for hot public endpoints
	store := cache.New(5*time.Minute, 10*time.Minute)

	// Handlers
	projectHandler := NewProjectHandler(repos, store, log)
	blogHandler := NewBlogHandler(repos, log)
	workHandler := NewWorkHistoryHandler(repos, log)
	educationHandler := NewEducationHandler(repos, log)
	certHandler := NewCertificationHandler(repos, log)
	learningHandler := NewLearningHandler(repos, log)
	skillHandler := NewSkillHandler(repos, log)
	flagHandler := NewFeatureFlagHandler(repos, store, log)
	analyticsHandler := NewAnalyticsHandler(repos, log)
	authHandler := NewAuthHandler(repos, issuer, log)

	authd := RequireAuth(verifier, repos.User, log)
	admin := RequireRole("admin")

	// Health check
	router.GET("/health", healthCheck(db))

	// API
	api := router.Group("/api")
	{
		projects := api.Group("/projects")
		{
			projects.GET("", projectHandler.List)
			projects.GET("/:id", projectHandler.Get)
			projects.POST("", authd, admin, projectHandler.Create)
			projects.PUT("/:id", authd, admin, projectHandler.Update)
			projects.DELETE("/:id", authd, admin, projectHandler.Delete)
		}

		blog := api.Group("/blog")
		{
			blog.GET("", blogHandler.List)
			blog.GET("/:slug", blogHandler.GetBySlug)
			blog.GET("/admin/all", authd, admin, blogHandler.ListAll)
			blog.POST("", authd, admin, blogHandler.Create)
			blog.PUT("/:id", authd, admin, blogHandler.Update)
			blog.DELETE("/:id", authd, admin, blogHandler.Delete)
		}

		work := api.Group("/work-history")
		{
			work.GET("", workHandler.List)
			work.GET("/:id", workHandler.Get)
			work.POST("", authd, admin, workHandler.Create)
			work.PUT("/:id", authd, admin, workHandler.Update)
			work.DELETE("/:id", authd, admin, workHandler.Delete)
		}

		education := api.Group("/education")
		{
			education.GET("", educationHandler.List)
			education.GET("/:id", educationHandler.Get)
			education.POST("", authd, admin, educationHandler.Create)
			education.PUT("/:id", authd, admin, educationHandler.Update)
			education.DELETE("/:id", authd, admin, educationHandler.Delete)
		}

		certs := api.Group("/certifications")
		{
			certs.GET("", certHandler.List)
			certs.GET("/:id", certHandler.Get)
			certs.POST("", authd, admin, certHandler.Create)
			certs.PUT("/:id", authd, admin, certHandler.Update)
			certs.DELETE("/:id", authd, admin, certHandler.Delete)
		}

		learning := api.Group("/learning")
		{
			learning.GET("", learningHandler.List)
			learning.GET("/:id", learningHandler.Get)
			learning.POST("", authd, admin, learningHandler.Create)
			learning.PUT("/:id", authd, admin, learningHandler.Update)
			learning.DELETE("/:id", authd, admin, learningHandler.Delete)
		}

		skills := api.Group("/skills")
		{
			skills.GET("", skillHandler.List)
			skills.GET("/:id", skillHandler.Get)
			skills.POST("", authd, admin, skillHandler.Create)
			skills.PUT("/:id", authd, admin, skillHandler.Update)
			skills.DELETE("/:id", authd, admin, skillHandler.Delete)
		}

		flags := api.Group("/feature-flags")
		{
			flags.GET("/maintenance", flagHandler.Maintenance)
			flags.GET("", authd, admin, flagHandler.List)
			flags.GET("/:id", authd, admin, flagHandler.Get)
			flags.POST("", authd, admin, flagHandler.Create)
			flags.PUT("/:id", authd, admin, flagHandler.Update)
			flags.DELETE("/:id", authd, admin, flagHandler.Delete)
		}

		analytics := api.Group("/analytics")
		{
			analytics.POST("/track", analyticsHandler.Track)
			analytics.GET("/overview", authd, admin, analyticsHandler.Overview)
			analytics.GET("/detailed", authd, admin, analyticsHandler.Detailed)
		}

		authGroup := api.Group("/auth")
		{
			authGroup.POST("/login", authHandler.Login)
			authGroup.GET("/me", authd, authHandler.Me)
			authGroup.POST("/logout", authd, authHandler.Logout)
			authGroup.PUT("/profile", authd, authHandler.UpdateProfile)
			authGroup.PUT("/change-password", authd, authHandler.ChangePassword)
		}
	}

	return router
}

// healthCheck reports service and database health
func healthCheck(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := "healthy"
		code := http.StatusOK
		if db != nil {
			if err := db.HealthCheck(c.Request.Context()); err != nil {
				status = "unhealthy"
				code = http.StatusServiceUnavailable
			}
		}
		c.JSON(code, gin.H{
			"status":    status,
			"timestamp": time.Now().Format(time.RFC3339),
			"service":   "portfolio-content-api",
		})
	}
}
