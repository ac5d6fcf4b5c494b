package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxUserID extracts the identity injected by the Auth middleware. Its
// presence proves the gate ran; handlers on protected routes fail fast with
// 401 when it is absent rather than calling a service with an empty identity.
func ctxUserID(c echo.Context) (string, error) {
	id, _ := c.Get("user_id").(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}
