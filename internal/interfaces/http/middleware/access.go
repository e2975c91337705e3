package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	appaccess "github.com/atriumhq/atrium/internal/application/access"
	"github.com/atriumhq/atrium/internal/application/access/dto"
	"github.com/atriumhq/atrium/internal/shared/constants"
	"github.com/atriumhq/atrium/internal/shared/utils"
)

// HeaderTenantID selects the tenant context for platform operators and
// anonymous requests, which carry no tenant in their token.
const HeaderTenantID = "X-Tenant-ID"

// RequireModuleAction guards a route group behind one access decision.
// The decision is evaluated against current entitlement state on every
// request; a denial answers 403 with the reason code and never reveals
// more than the engine decided.
func RequireModuleAction(svc *appaccess.Service, moduleCode, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		decision, err := decide(c, svc, moduleCode, action)
		if err != nil {
			utils.AppErrorResponse(c, err)
			c.Abort()
			return
		}

		if !decision.Allowed {
			utils.ErrorResponse(c, http.StatusForbidden, constants.ErrMsgForbidden, decision.Reason)
			c.Abort()
			return
		}

		c.Next()
	}
}

func decide(c *gin.Context, svc *appaccess.Service, moduleCode, action string) (*dto.DecisionResponse, error) {
	ctx := c.Request.Context()
	userID := UserIDFromContext(c)
	headerTenant := tenantFromHeader(c)

	switch {
	case userID == 0:
		return svc.DecideAnonymous(ctx, headerTenant, moduleCode, action)
	case headerTenant != 0 && headerTenant != TenantIDFromContext(c):
		return svc.DecideInTenant(ctx, userID, headerTenant, moduleCode, action)
	default:
		return svc.Decide(ctx, userID, moduleCode, action)
	}
}

func tenantFromHeader(c *gin.Context) uint {
	raw := c.GetHeader(HeaderTenantID)
	if raw == "" {
		return 0
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0
	}
	return uint(id)
}
