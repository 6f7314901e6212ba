package router

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"doclens/internal/config"
	"doclens/internal/handler"
	"doclens/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	analyzeH *handler.AnalyzeHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	api := r.Group("/api")
	api.POST("/analyze", analyzeH.Analyze)

	// Unmatched GETs fall through to the companion front-end when one is
	// deployed alongside the API.
	if dir := cfg.Server.StaticDir; dir != "" {
		if _, err := os.Stat(dir); err == nil {
			fs := http.FileServer(http.Dir(dir))
			r.NoRoute(func(c *gin.Context) {
				if c.Request.Method != http.MethodGet {
					c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
					return
				}
				// Paths that do not map to a file resolve to index.html so
				// front-end routes survive a refresh.
				path := filepath.Join(dir, filepath.Clean("/"+c.Request.URL.Path))
				if info, err := os.Stat(path); err != nil || info.IsDir() {
					c.File(filepath.Join(dir, "index.html"))
					return
				}
				fs.ServeHTTP(c.Writer, c.Request)
			})
		}
	}

	return r
}
