package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sounddesk/client-portal/internal/core/ports"
)

// ctxCaller extracts the identity injected by the Auth middleware. A missing
// user_id means the middleware did not run; fail fast with 401 instead of
// letting an empty caller reach a service.
func ctxCaller(c echo.Context) (ports.Caller, error) {
	id, _ := c.Get("user_id").(string)
	if id == "" {
		return ports.Caller{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	isAdmin, _ := c.Get("is_admin").(bool)
	return ports.Caller{ID: id, IsAdmin: isAdmin}, nil
}
