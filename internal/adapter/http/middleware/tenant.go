package middleware

import (
	"net/http"
	"strings"

	"garage_workflow/pkg"

	"github.com/gin-gonic/gin"
)

const (
	HeaderTenantID = "X-Tenant-ID"
	HeaderActorID  = "X-Actor-ID"

	tenantKey = "tenant_id"
	actorKey  = "actor_id"

	systemActor = "system"
)

var errMissingTenant = pkg.NewDomainErrorSimple("MISSING_TENANT", "X-Tenant-ID header is required", http.StatusBadRequest)

// Tenant requires the X-Tenant-ID header and stores it, with the optional X-Actor-ID, on the gin context.
func Tenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		tenantID := strings.TrimSpace(c.GetHeader(HeaderTenantID))
		if tenantID == "" {
			c.AbortWithStatusJSON(errMissingTenant.HTTPStatus, errMissingTenant.ToHTTPError())
			return
		}
		c.Set(tenantKey, tenantID)

		actor := strings.TrimSpace(c.GetHeader(HeaderActorID))
		if actor == "" {
			actor = systemActor
		}
		c.Set(actorKey, actor)
		c.Next()
	}
}

// TenantID returns the tenant stored by Tenant, or "" when the middleware did not run.
func TenantID(c *gin.Context) string {
	return c.GetString(tenantKey)
}

// Actor returns the acting user for audit fields.
func Actor(c *gin.Context) string {
	if a := c.GetString(actorKey); a != "" {
		return a
	}
	return systemActor
}
