package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/atriumhq/atrium/internal/domain/rbac"
	"github.com/atriumhq/atrium/internal/infrastructure/auth"
	"github.com/atriumhq/atrium/internal/shared/constants"
	"github.com/atriumhq/atrium/internal/shared/utils"
)

const contextKeyRoles = "user_roles"

// Auth validates the bearer token and stores the caller's identity on
// the request context.
func Auth(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseBearer(c, jwtService)
		if !ok {
			utils.ErrorResponse(c, http.StatusUnauthorized, constants.ErrMsgUnauthorized)
			c.Abort()
			return
		}

		setIdentity(c, claims)
		c.Next()
	}
}

// OptionalAuth stores the caller's identity when a valid bearer token
// is present and lets the request through anonymously otherwise.
// Endpoints evaluating anonymous access use this instead of Auth.
func OptionalAuth(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := parseBearer(c, jwtService); ok {
			setIdentity(c, claims)
		}
		c.Next()
	}
}

// RequireSuperAdmin restricts the endpoint to platform operators. It
// runs after Auth.
func RequireSuperAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, role := range RolesFromContext(c) {
			if role == rbac.RoleSuperAdmin {
				c.Next()
				return
			}
		}

		utils.ErrorResponse(c, http.StatusForbidden, constants.ErrMsgForbidden)
		c.Abort()
	}
}

func parseBearer(c *gin.Context, jwtService *auth.JWTService) (*auth.Claims, bool) {
	header := c.GetHeader(constants.HeaderAuthorization)
	if header == "" {
		return nil, false
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, false
	}

	claims, err := jwtService.Verify(parts[1])
	if err != nil {
		return nil, false
	}

	return claims, true
}

func setIdentity(c *gin.Context, claims *auth.Claims) {
	c.Set(constants.ContextKeyUserID, claims.UserID)
	c.Set(contextKeyRoles, claims.Roles)
	if claims.TenantID != nil {
		c.Set(constants.ContextKeyTenantID, *claims.TenantID)
	}
}

// UserIDFromContext returns the authenticated user ID, or 0 for
// anonymous requests.
func UserIDFromContext(c *gin.Context) uint {
	if v, exists := c.Get(constants.ContextKeyUserID); exists {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// TenantIDFromContext returns the caller's tenant ID from the token,
// or 0 for platform-scoped and anonymous callers.
func TenantIDFromContext(c *gin.Context) uint {
	if v, exists := c.Get(constants.ContextKeyTenantID); exists {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// RolesFromContext returns the caller's role names from the token
func RolesFromContext(c *gin.Context) []string {
	if v, exists := c.Get(contextKeyRoles); exists {
		if roles, ok := v.([]string); ok {
			return roles
		}
	}
	return nil
}
