package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/photoalbums/studio-api/internal/core/store"
)

// UserKey is the echo context key the session user is stored under.
const UserKey = "session_user"

// Session rejects requests while nobody is logged in and injects the
// session user into the request context. The dashboard holds a single
// in-process session; there are no tokens to validate.
func Session(st *store.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := st.Session()
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "not logged in")
			}
			c.Set(UserKey, user)
			return next(c)
		}
	}
}
