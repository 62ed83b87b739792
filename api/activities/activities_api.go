package activities

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"mergington.GO/api"
	"mergington.GO/core/registry"
)

func init() {
	api.RegisterRoute(RegisterActivityRoutes)
}

// RegisterActivityRoutes wires the activity endpoints. Activity names arrive
// as path segments; matching against the catalog is exact and case-sensitive
// after URL decoding.
func RegisterActivityRoutes(e *echo.Echo, reg *registry.Registry) {
	// GET /activities – full catalog with live participant lists
	e.GET("/activities", func(c echo.Context) error {
		return c.JSON(http.StatusOK, reg.List())
	})

	// POST /activities/:name/signup?email=...
	e.POST("/activities/:name/signup", func(c echo.Context) error {
		name := pathParam(c, "name")
		email := c.QueryParam("email")

		if err := reg.SignUp(name, email); err != nil {
			return enrollmentError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{
			"message": fmt.Sprintf("Signed up %s for %s", email, name),
		})
	})

	// DELETE /activities/:name/unregister?email=...
	e.DELETE("/activities/:name/unregister", func(c echo.Context) error {
		name := pathParam(c, "name")
		email := c.QueryParam("email")

		if err := reg.Unregister(name, email); err != nil {
			return enrollmentError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{
			"message": fmt.Sprintf("Unregistered %s from %s", email, name),
		})
	})
}

// pathParam returns the named path parameter, URL-decoded. Echo hands back
// the raw segment when the request path was escaped (%20 et al.); decoding is
// the only normalization performed.
func pathParam(c echo.Context, name string) string {
	v := c.Param(name)
	if decoded, err := url.PathUnescape(v); err == nil {
		return decoded
	}
	return v
}

func enrollmentError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, registry.ErrActivityNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"detail": "Activity not found"})
	case errors.Is(err, registry.ErrAlreadyRegistered):
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "Student is already registered for this activity"})
	case errors.Is(err, registry.ErrNotRegistered):
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "Student is not registered for this activity"})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"detail": err.Error()})
}
