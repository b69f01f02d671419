package routes

import (
	"assettrack/internal/core/container"
	"assettrack/internal/middleware"
	"assettrack/pkg/security"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter builds the engine with the full middleware chain and every route.
func NewRouter(c *container.Container) *gin.Engine {
	if c.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	if err := router.SetTrustedProxies(c.Config.TrustedProxies); err != nil {
		c.Logger.Warn("Ignoring invalid trusted proxies", zap.Error(err))
		_ = router.SetTrustedProxies(nil)
	}
	router.Use(
		middleware.RecoveryMiddleware(c.Logger),
		middleware.LoggingMiddleware(c.Logger),
		middleware.CorsMiddleware(c.Config.CORSAllowedOrigins),
		c.Metrics.Middleware(),
		middleware.TimeoutMiddleware(c.Config.RequestTimeout),
	)

	RegisterPublicRoutes(router, c)
	RegisterProtectedRoutes(router, c)
	RegisterUtilityRoutes(router, c)

	return router
}

func RegisterPublicRoutes(router *gin.Engine, c *container.Container) {
	c.LoginHandler.RegisterRoutes(router.Group("/api"))
}

func RegisterProtectedRoutes(router *gin.Engine, c *container.Container) {
	protectedRoutes := router.Group("/api")
	protectedRoutes.Use(security.JWTMiddleware(c.Tokens))

	c.AdminHandler.RegisterRoutes(protectedRoutes)
	c.AssetHandler.RegisterRoutes(protectedRoutes)
	c.DepartmentHandler.RegisterRoutes(protectedRoutes)
	c.UserHandler.RegisterRoutes(protectedRoutes)
}

func RegisterUtilityRoutes(router *gin.Engine, c *container.Container) {
	router.GET("/health", c.Health.HealthCheckMiddleware())
	router.GET("/metrics", gin.WrapH(c.Metrics.Handler()))
}
