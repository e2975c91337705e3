// Package routes maps the HTTP surface onto handlers. Route groups
// behind RequireModuleAction are re-evaluated against entitlement
// state on every request.
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appaccess "github.com/atriumhq/atrium/internal/application/access"
	"github.com/atriumhq/atrium/internal/domain/catalog"
	infraauth "github.com/atriumhq/atrium/internal/infrastructure/auth"
	"github.com/atriumhq/atrium/internal/interfaces/http/handlers"
	"github.com/atriumhq/atrium/internal/interfaces/http/middleware"
)

type Deps struct {
	AuthHandler         *handlers.AuthHandler
	AccessHandler       *handlers.AccessHandler
	TenantHandler       *handlers.TenantHandler
	TenantModuleHandler *handlers.TenantModuleHandler
	OverrideHandler     *handlers.OverrideHandler
	UserHandler         *handlers.UserHandler
	AccessService       *appaccess.Service
	JWTService          *infraauth.JWTService
}

func Register(engine *gin.Engine, deps Deps) {
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := engine.Group("/api")

	// authentication
	api.POST("/auth/login", deps.AuthHandler.Login)

	// access checks work for both authenticated and anonymous callers
	api.POST("/access/check", middleware.OptionalAuth(deps.JWTService), deps.AccessHandler.Check)

	authed := api.Group("", middleware.Auth(deps.JWTService))

	authed.GET("/navigation", deps.AccessHandler.Navigation)

	// platform administration: tenant lifecycle is super admin territory
	platform := authed.Group("/tenants", middleware.RequireSuperAdmin())
	platform.POST("", deps.TenantHandler.Create)
	platform.GET("", deps.TenantHandler.List)
	platform.GET("/:id", deps.TenantHandler.Get)
	platform.POST("/:id/suspend", deps.TenantHandler.Suspend)
	platform.POST("/:id/reactivate", deps.TenantHandler.Reactivate)
	platform.POST("/:id/expire", deps.TenantHandler.MarkExpired)
	platform.GET("/:id/users", deps.UserHandler.ListByTenant)

	// module enablement and user management live under the ADMIN module
	admin := authed.Group("", middleware.RequireModuleAction(deps.AccessService, catalog.CodeAdmin.String(), "manage"))
	admin.GET("/tenants/:id/modules", deps.TenantModuleHandler.List)
	admin.POST("/tenants/:id/modules/:code/enable", deps.TenantModuleHandler.Enable)
	admin.POST("/tenants/:id/modules/:code/disable", deps.TenantModuleHandler.Disable)

	admin.POST("/users", deps.UserHandler.Register)
	admin.GET("/users/:id", deps.UserHandler.Get)
	admin.POST("/users/:id/roles", deps.UserHandler.AssignRole)
	admin.DELETE("/users/:id/roles/:role", deps.UserHandler.RevokeRole)
	admin.POST("/users/:id/disable", deps.UserHandler.Disable)

	admin.POST("/overrides", deps.OverrideHandler.Record)
	admin.DELETE("/overrides/:id", deps.OverrideHandler.Remove)
	admin.GET("/users/:id/overrides/:code", deps.OverrideHandler.List)
}
