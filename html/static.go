package html

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"mergington.GO/api"
	"mergington.GO/core/registry"
)

func init() {
	api.RegisterRoute(RegisterStaticRoutes)
}

// RegisterStaticRoutes serves the frontend from html/static and redirects the
// root path to it.
func RegisterStaticRoutes(e *echo.Echo, _ *registry.Registry) {
	e.Static("/static", "html/static")
	e.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusTemporaryRedirect, "/static/index.html")
	})
}
