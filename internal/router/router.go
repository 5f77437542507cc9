package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stemsi/quiz-backend/internal/config"
	"github.com/stemsi/quiz-backend/internal/handler"
	"github.com/stemsi/quiz-backend/internal/middleware"
	"github.com/stemsi/quiz-backend/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Question *handler.QuestionHandler
	Health   *handler.HealthHandler
}

// SetupRouter configures the Gin engine with middlewares and routes.
func SetupRouter(handlers *Handlers, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(gin.Recovery())

	// ─── CORS ──────────────────────────────────────────────────────────
	router.Use(middleware.EchoRequestHeaders())
	router.Use(cors.New(corsConfig(cfg)))

	router.Use(response.RequestIDMiddleware())
	router.Use(middleware.AccessLog(log))

	if cfg.RateLimitPerMinute > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimitPerMinute, time.Minute)
		router.Use(limiter.Middleware())
	}

	router.Use(middleware.Brotli())

	router.NoRoute(func(c *gin.Context) {
		response.Fail(c, http.StatusNotFound, response.ErrRouteNotFound)
	})

	router.GET("/health", handlers.Health.Health)

	// ─── Questions (read-only, immutable for the process lifetime) ─────
	questions := router.Group("/questions")
	questions.Use(middleware.CacheControl(cfg.CacheMaxAge))
	{
		questions.GET("", handlers.Question.ListQuestions)
		questions.GET("/:question_id", handlers.Question.GetQuestion)
	}

	return router
}

// corsConfig accepts any origin and method with credentials.
// The request origin is echoed back rather than "*", which browsers
// reject on credentialed requests. ALLOWED_ORIGINS narrows the origins.
// AllowHeaders stays empty: EchoRequestHeaders allows whatever a
// preflight asks for.
func corsConfig(cfg *config.Config) cors.Config {
	c := cors.Config{
		AllowMethods: []string{
			http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		ExposeHeaders:    []string{response.HeaderRequestID},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) > 0 {
		c.AllowOrigins = cfg.AllowedOrigins
	} else {
		c.AllowOriginFunc = func(string) bool { return true }
	}
	return c
}
