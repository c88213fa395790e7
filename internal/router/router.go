package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/harir2002/cyber-resilience-Quiz/internal/config"
	"github.com/harir2002/cyber-resilience-Quiz/internal/handler"
	"github.com/harir2002/cyber-resilience-Quiz/internal/middleware"
	"github.com/harir2002/cyber-resilience-Quiz/internal/response"
	"github.com/harir2002/cyber-resilience-Quiz/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth       *handler.AuthHandler
	Schema     *handler.SchemaHandler
	Config     *handler.ConfigHandler
	Assessment *handler.AssessmentHandler
	Admin      *handler.AdminHandler
	WS         *handler.WSHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Apply brotli middleware globally.
	router.Use(middleware.Brotli())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Rate limiter for public intake routes (30 requests per minute per IP).
	intakeLimiter := middleware.NewRateLimiter(30, time.Minute)

	// ─── 1. Public Group (No Auth) ─────────────────────────────────────
	publicAPI := router.Group("/api/v1")
	{
		publicAPI.GET("/config", handlers.Config.GetConfig)
		publicAPI.GET("/stats", handlers.Assessment.GetStats)

		// The schema only changes on deploy; let clients cache it briefly.
		schemaGroup := publicAPI.Group("/questionnaire")
		schemaGroup.Use(middleware.CacheControl(300))
		{
			schemaGroup.GET("/schema", handlers.Schema.GetSchema)
			schemaGroup.GET("/sections", handlers.Schema.GetSections)
		}

		intake := publicAPI.Group("")
		intake.Use(intakeLimiter.Middleware())
		{
			intake.POST("/company", handlers.Assessment.CreateCompany)
			intake.POST("/assessments/:assessment_id/responses", handlers.Assessment.SaveResponses)
			intake.POST("/assessments/:assessment_id/submit", handlers.Assessment.Submit)
		}

		publicAPI.GET("/assessments/:assessment_id", handlers.Assessment.GetAssessment)
	}

	// ─── 2. Admin Auth (Public, Rate Limited) ──────────────────────────
	authLimiter := middleware.NewRateLimiter(10, time.Minute)
	auth := router.Group("/api/v1/admin")
	{
		auth.POST("/login", authLimiter.Middleware(), handlers.Auth.Login)
		auth.POST("/logout", middleware.RequireAdminJWT(authService), handlers.Auth.Logout)
	}

	// ─── 3. Admin Group (JWT) ──────────────────────────────────────────
	adminAPI := router.Group("/api/v1/admin")
	adminAPI.Use(middleware.RequireAdminJWT(authService))
	{
		adminAPI.GET("/assessments", handlers.Admin.ListAssessments)
		adminAPI.GET("/assessments/export", handlers.Admin.ExportAssessments)
	}

	// ─── 4. WebSocket Group (Admin WS Auth) ────────────────────────────
	ws := router.Group("/ws/v1")
	ws.Use(middleware.RequireAdminWSAuth(authService))
	{
		ws.GET("/admin/submissions", handlers.WS.SubmissionsStream)
	}

	return router
}
