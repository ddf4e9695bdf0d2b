package middleware

import (
	apperrors "pms/errors"
	"pms/response"
	"pms/services"

	"github.com/gin-gonic/gin"
)

const (
	// ContextTenantID holds the resolved tenant id for the request.
	ContextTenantID = "tenantID"
	tenantHeader    = "X-Tenant"
)

// TenantMiddleware resolves the tenant from the X-Tenant slug header through
// the cached tenant service. Every data query downstream is scoped to the
// resolved tenant id; requests without a valid tenant never reach the engine.
func TenantMiddleware(tenants *services.TenantService) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.GetHeader(tenantHeader)
		if slug == "" {
			response.BadRequest(c, "missing "+tenantHeader+" header")
			c.Abort()
			return
		}

		tenant, err := tenants.GetBySlug(c.Request.Context(), slug)
		if err != nil {
			if apperrors.IsNotFound(err) {
				response.NotFound(c, apperrors.GetAppError(err).Message)
			} else {
				response.ServerError(c)
			}
			c.Abort()
			return
		}

		c.Set(ContextTenantID, tenant.ID)
		c.Next()
	}
}

// TenantID reads the tenant id resolved by TenantMiddleware.
func TenantID(c *gin.Context) uint {
	if v, ok := c.Get(ContextTenantID); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}
