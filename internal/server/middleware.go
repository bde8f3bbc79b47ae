package server

import (
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"

	"github.com/bharatbooks/bharatbooks/pkg/tenantctx"
)

const HeaderTenant = "X-Tenant-ID"

// TenantContext resolves the acting tenant for every API request. The header
// wins; an absent header falls back to the configured default tenant so a
// single-tenant deployment needs no client changes.
func (s *Server) TenantContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader(HeaderTenant))

		var tenantID snowflake.ID
		if raw != "" {
			parsed, err := snowflake.ParseString(raw)
			if err != nil {
				AbortWithError(c, newValidationError("tenant", "invalid_tenant", "invalid tenant id"))
				return
			}
			tenantID = parsed
		} else if s.cfg.DefaultTenantID != 0 {
			tenantID = snowflake.ID(s.cfg.DefaultTenantID)
		} else {
			AbortWithError(c, newValidationError("tenant", "invalid_tenant", "missing tenant id"))
			return
		}

		ctx := tenantctx.WithTenantID(c.Request.Context(), tenantID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
