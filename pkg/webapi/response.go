package webapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Every response carries a success flag; failures are reported in-band with
// an HTTP 200 rather than a transport-level status.

func ok(ctx echo.Context, fields map[string]any) error {
	body := map[string]any{"success": true}
	for k, v := range fields {
		body[k] = v
	}
	return ctx.JSON(http.StatusOK, body)
}

func fail(ctx echo.Context, message string) error {
	if message == "" {
		return ctx.JSON(http.StatusOK, map[string]any{"success": false})
	}
	return ctx.JSON(http.StatusOK, map[string]any{"success": false, "message": message})
}
