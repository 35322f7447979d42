package ecommerce_routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/middleware"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/models"
	"go.uber.org/zap"
)

type RouterConfig struct {
	Controllers Controllers

	Tokens         middleware.SessionTokens
	Sessions       middleware.SessionRegistry
	SessionOptions middleware.SessionOptions

	AllowedOrigins []string
	// FormLimiter guards the form endpoints. Nil leaves them unlimited.
	FormLimiter gin.HandlerFunc

	Logger         *zap.Logger
	ErrorReporting bool
}

// NewRouter builds the storefront API under /api/v1.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(cfg.Logger, cfg.ErrorReporting))

	// ✅ Single CORS config; the session token header is exposed for clients that cannot read cookies
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders:    []string{middleware.SessionHeader, "Content-Disposition", "Content-Length"},
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "ok", nil))
	})

	api := router.Group("/api/v1")

	// Public
	SetupStorefrontRoutes(api, cfg.Controllers)
	SetupContentRoutes(api, cfg.Controllers)
	SetupFormRoutes(api, cfg.Controllers, cfg.FormLimiter)

	// Per-visitor state
	visitor := api.Group("")
	visitor.Use(middleware.SessionMiddleware(cfg.Tokens, cfg.Sessions, cfg.SessionOptions, cfg.Logger))
	SetupAuthRoutes(visitor, cfg.Controllers)
	SetupSessionRoutes(visitor, cfg.Controllers)

	return router
}
