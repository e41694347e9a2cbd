package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/adminpanel/admin-system/internal/api/metrics"
	"github.com/adminpanel/admin-system/internal/core/domain"
)

// RBAC enforces role-based access control against the live role attached
// by Auth. The 403 names the roles the route requires.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	names := make([]string, 0, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
		names = append(names, string(r))
	}
	required := strings.Join(names, ", ")

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[domain.Role(role)]; !ok {
				metrics.AuthRejectionsTotal.WithLabelValues("forbidden_role").Inc()
				return c.JSON(http.StatusForbidden, map[string]string{
					"error": "access denied, required roles: " + required,
				})
			}
			return next(c)
		}
	}
}
