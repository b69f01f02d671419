package container

import (
	"database/sql"

	"assettrack/internal/admin"
	"assettrack/internal/core/config"
	"assettrack/internal/core/metrics"
	"assettrack/internal/directory/departments"
	"assettrack/internal/directory/users"
	"assettrack/internal/inventory/assets"
	"assettrack/internal/middleware"
	"assettrack/internal/rate_limiter"
	"assettrack/internal/repository"
	"assettrack/pkg/security"

	"go.uber.org/zap"
)

// Version is reported by /health and the CLI. Overridden at build time with -ldflags.
var Version = "1.0.0"

type Container struct {
	Config     *config.Config
	Logger     *zap.Logger
	Repository *repository.Repository
	Metrics    *metrics.Metrics
	Health     *middleware.HealthChecker
	Tokens     *security.TokenIssuer

	AssetService      *assets.AssetService
	UserService       *users.UserService
	DepartmentService *departments.DepartmentService
	AdminService      *admin.AdminService

	LoginHandler      *security.LoginHandler
	AssetHandler      *assets.AssetHandler
	UserHandler       *users.UsersHandler
	DepartmentHandler *departments.DepartmentHandler
	AdminHandler      *admin.AdminHandler

	rateLimiter *rate_limiter.RateLimiter
}

func NewAppContainer(cfg *config.Config, db *sql.DB, dialect string, logger *zap.Logger, m *metrics.Metrics) *Container {
	repo := repository.NewRepository(db, dialect)

	userService := users.NewUserService(users.NewRepository(repo), logger)
	departmentService := departments.NewDepartmentService(departments.NewRepository(repo), logger)
	adminService := admin.NewAdminService(admin.NewRepository(repo), logger)
	assetService := assets.NewAssetService(assets.NewRepository(repo), userService, m, logger)

	tokens := security.NewTokenIssuer(cfg.JWTSecret, cfg.JWTExpiration)
	limiter := rate_limiter.NewRateLimiter(cfg.LoginRateLimit, cfg.LoginRateWindow)

	return &Container{
		Config:     cfg,
		Logger:     logger,
		Repository: repo,
		Metrics:    m,
		Health:     middleware.NewHealthChecker(db.PingContext, Version, logger),
		Tokens:     tokens,

		AssetService:      assetService,
		UserService:       userService,
		DepartmentService: departmentService,
		AdminService:      adminService,

		LoginHandler:      security.NewLoginHandler(adminService, tokens, limiter, m, logger),
		AssetHandler:      assets.NewAssetHandler(assetService, logger),
		UserHandler:       users.NewHandler(userService, logger),
		DepartmentHandler: departments.NewDepartmentHandler(departmentService, logger),
		AdminHandler:      admin.NewAdminHandler(adminService, logger),

		rateLimiter: limiter,
	}
}

// Close stops background workers. The database is owned by the caller.
func (c *Container) Close() {
	c.rateLimiter.Stop()
}
