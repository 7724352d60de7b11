// api/router.go
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Annany2002/querygate/api/handlers"
	"github.com/Annany2002/querygate/api/middleware"
	"github.com/Annany2002/querygate/config"
	"github.com/Annany2002/querygate/internal/logger"
)

var (
	customLog = logger.NewLogger()
)

// Pinger reports whether the database behind the gateway is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// SetupRouter initializes the Gin router and sets up all routes.
// db and gw are the process-wide handles built once in main.
func SetupRouter(db Pinger, gw handlers.Asker, cfg *config.Config) *gin.Engine {
	router := gin.Default() // Includes Logger and Recovery

	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:    []string{"*", "Authorization"}, // "*" does not cover Authorization in browsers
		ExposeHeaders:   []string{middleware.RequestIDHeader},
		MaxAge:          12 * time.Hour,
	}))
	if cfg.RateLimitPerMinute > 0 {
		router.Use(middleware.RateLimitMiddleware(middleware.NewRateLimiter(cfg.RateLimitPerMinute, time.Minute)))
	}
	router.Use(middleware.ErrorHandler())

	queryHandler := handlers.NewQueryHandler(gw)

	// --- Public Routes ---
	router.GET("/ping", func(c *gin.Context) {
		status := http.StatusOK
		message := "pong"
		if err := db.PingContext(c.Request.Context()); err != nil {
			status = http.StatusInternalServerError
			message = "pong, but DB connection error"
			customLog.Printf("DB Ping error during /ping request: %v", err)
		}
		c.JSON(status, gin.H{"message": message})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// --- Query Routes ---
	apiRoutes := router.Group("/api")
	if cfg.AuthJWTSecret != "" {
		apiRoutes.Use(middleware.AuthMiddleware(cfg.AuthJWTSecret))
	}
	{
		apiRoutes.POST("/query", queryHandler.Query)
	}

	return router
}
