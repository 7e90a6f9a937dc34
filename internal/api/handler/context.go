package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/photoalbums/studio-api/internal/api/middleware"
	"github.com/photoalbums/studio-api/internal/core/domain"
)

// sessionUser extracts the user injected by the Session middleware. Its
// absence means the route was wired without the middleware; fail closed.
func sessionUser(c echo.Context) (domain.User, error) {
	user, ok := c.Get(middleware.UserKey).(domain.User)
	if !ok {
		return domain.User{}, echo.NewHTTPError(http.StatusUnauthorized, "not logged in")
	}
	return user, nil
}
