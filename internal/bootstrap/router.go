package bootstrap

import (
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/devjourney/devjourney-backend/config"
	httpapi "github.com/devjourney/devjourney-backend/internal/api/http"
	"github.com/devjourney/devjourney-backend/internal/api/http/middleware"
	authhttp "github.com/devjourney/devjourney-backend/internal/auth/http"
	journalhttp "github.com/devjourney/devjourney-backend/internal/journal/http"
	"github.com/devjourney/devjourney-backend/internal/journal/service"
	"github.com/devjourney/devjourney-backend/internal/metrics"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	Backend     string
	Server      config.ServerConfig
	RateLimit   config.RateLimitConfig

	Journal *service.JournalService
	Metrics *metrics.Metrics
	// Auth resolves the caller for every /api/v1 route.
	Auth gin.HandlerFunc
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	if dep.Metrics != nil {
		r.Use(middleware.Metrics(dep.Metrics))
	}
	r.Use(cors.New(corsConfig(dep.Server.AllowedOrigins)))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Backend, dep.Journal)
	healthHandler.RegisterRoutes(r)
	if dep.Metrics != nil {
		r.GET("/metrics", gin.WrapH(dep.Metrics.Handler()))
	}

	api := r.Group("/api/v1")
	api.Use(dep.Auth)

	authhttp.New().Register(api)

	var writes []gin.HandlerFunc
	if dep.RateLimit.RPS > 0 {
		writes = append(writes, middleware.NewRateLimiter(dep.RateLimit.RPS, dep.RateLimit.Burst).Middleware())
	}
	journalhttp.New(dep.Journal).Register(api, writes...)

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-Id", "X-User-Id", "X-User-Email"},
		ExposeHeaders: []string{"X-Request-Id"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}
