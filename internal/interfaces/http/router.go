package http

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	appaccess "github.com/atriumhq/atrium/internal/application/access"
	appauth "github.com/atriumhq/atrium/internal/application/auth"
	overrideusecases "github.com/atriumhq/atrium/internal/application/override/usecases"
	apptenant "github.com/atriumhq/atrium/internal/application/tenant"
	tmusecases "github.com/atriumhq/atrium/internal/application/tenantmodule/usecases"
	appuser "github.com/atriumhq/atrium/internal/application/user"
	infraauth "github.com/atriumhq/atrium/internal/infrastructure/auth"
	"github.com/atriumhq/atrium/internal/infrastructure/config"
	"github.com/atriumhq/atrium/internal/infrastructure/ratelimit"
	"github.com/atriumhq/atrium/internal/infrastructure/repository"
	"github.com/atriumhq/atrium/internal/interfaces/http/handlers"
	"github.com/atriumhq/atrium/internal/interfaces/http/middleware"
	"github.com/atriumhq/atrium/internal/interfaces/http/routes"
	"github.com/atriumhq/atrium/internal/shared/logger"
)

// Router wires repositories, services and handlers into a gin engine.
type Router struct {
	engine *gin.Engine
}

func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config) *Router {
	log := logger.NewLogger()

	// repositories
	tenantRepo := repository.NewTenantRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	rbacRepo := repository.NewRBACRepository(db)
	userRepo := repository.NewUserRepository(db)
	snapshotLoader := repository.NewSnapshotLoader(tenantRepo, catalogRepo, rbacRepo, userRepo)

	// infrastructure services
	jwtService := infraauth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	hasher := infraauth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)

	// application services
	accessService := appaccess.NewService(snapshotLoader, log.Named("access"))
	tenantService := apptenant.NewService(tenantRepo, log.Named("tenant"))
	userService := appuser.NewService(userRepo, tenantRepo, rbacRepo, hasher, log.Named("user"))
	authService := appauth.NewService(userRepo, hasher, jwtService, log.Named("auth"))

	enableModule := tmusecases.NewEnableModuleUseCase(tenantRepo, catalogRepo, log.Named("tenantmodule"))
	disableModule := tmusecases.NewDisableModuleUseCase(catalogRepo, log.Named("tenantmodule"))
	listTenantModules := tmusecases.NewListTenantModulesUseCase(catalogRepo, log.Named("tenantmodule"))

	recordOverride := overrideusecases.NewRecordOverrideUseCase(userRepo, catalogRepo, rbacRepo, log.Named("override"))
	removeOverride := overrideusecases.NewRemoveOverrideUseCase(rbacRepo, log.Named("override"))
	listOverrides := overrideusecases.NewListOverridesUseCase(catalogRepo, rbacRepo, log.Named("override"))

	// handlers
	deps := routes.Deps{
		AuthHandler:   handlers.NewAuthHandler(authService, log.Named("http.auth")),
		AccessHandler: handlers.NewAccessHandler(accessService, log.Named("http.access")),
		TenantHandler: handlers.NewTenantHandler(tenantService, log.Named("http.tenant")),
		TenantModuleHandler: handlers.NewTenantModuleHandler(
			enableModule, disableModule, listTenantModules, log.Named("http.tenantmodule")),
		OverrideHandler: handlers.NewOverrideHandler(
			recordOverride, removeOverride, listOverrides, log.Named("http.override")),
		UserHandler:   handlers.NewUserHandler(userService, log.Named("http.user")),
		AccessService: accessService,
		JWTService:    jwtService,
	}

	gin.SetMode(ginMode(cfg.Server.Mode))
	engine := gin.New()

	engine.Use(middleware.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.Logger(log.Named("http")))
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	if cfg.RateLimit.Enabled && redisClient != nil {
		limiter := ratelimit.NewRedisRateLimiter(redisClient)
		engine.Use(middleware.RateLimit(limiter, ratelimit.RateLimitConfig{
			RequestsPerMinute: cfg.RateLimit.RequestsPerMinute,
			RequestsPerHour:   cfg.RateLimit.RequestsPerHour,
		}, log.Named("ratelimit")))
	}

	routes.Register(engine, deps)

	return &Router{engine: engine}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func ginMode(mode string) string {
	switch mode {
	case gin.ReleaseMode, gin.TestMode, gin.DebugMode:
		return mode
	default:
		return gin.DebugMode
	}
}
