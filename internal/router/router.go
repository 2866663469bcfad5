package router

import (
	"net/http"
	"time"

	"bobber/internal/builds"
	"bobber/internal/catalog"
	"bobber/internal/config"
	"bobber/internal/diag"
	"bobber/internal/middleware"
	"bobber/internal/pricing"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers collects everything the route table needs.
type Handlers struct {
	Catalog *catalog.Handler
	Pricing *pricing.Handler
	Builds  *builds.Handler
	Diag    *diag.Handler
}

func New(cfg *config.Config, h Handlers) *gin.Engine {
	if cfg.Environment().IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestLogger(), gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── ROOT ─────────────────────────
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Bobber Customizer Backend (Go)"})
	})

	// ───────────────────────── API ─────────────────────────
	api := r.Group("/api")
	{
		api.GET("/options", h.Catalog.GetOptions)
		api.POST("/price", h.Pricing.CalculatePrice)

		api.POST("/builds", h.Builds.SubmitBuild)
		api.GET("/builds", h.Builds.ListBuilds)

		api.GET("/hello", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "Hello from the backend API!"})
		})

		// Demo endpoints kept for the polyglot frontend showcase
		api.GET("/demo/java", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"service": "java-demo",
				"status":  "ok",
				"message": "Hello from the Java demo service (simulated)",
				"version": "1.0.0",
			})
		})
		api.GET("/demo/cpp", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"service": "cpp-demo",
				"status":  "ok",
				"message": "Hello from the C++ demo service (simulated)",
				"build":   "gcc-13",
			})
		})
	}

	// ───────────────────────── DIAGNOSTICS ─────────────────────────
	r.GET("/test", h.Diag.DatabaseStatus)

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r
}
