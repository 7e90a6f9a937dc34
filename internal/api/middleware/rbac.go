package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/photoalbums/studio-api/internal/core/domain"
)

// RBAC restricts a route to the given roles. It must run after Session so
// the user is already in the context; requests without one are rejected.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := c.Get(UserKey).(domain.User)
			if !ok {
				return domain.ErrForbidden
			}
			if _, ok := allowed[user.Role]; !ok {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
