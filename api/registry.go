package api

import (
	"sync"

	"github.com/labstack/echo/v4"

	"mergington.GO/core/registry"
)

// RouteFunc registers routes on the Echo instance with access to the live
// activity registry.
type RouteFunc func(e *echo.Echo, reg *registry.Registry)

var (
	mu     sync.Mutex
	routes []RouteFunc
	locked bool
)

// RegisterRoute registers a route module. Call from init() in route packages.
func RegisterRoute(fn RouteFunc) {
	mu.Lock()
	defer mu.Unlock()
	if locked {
		panic("api/registry: routes locked (register only during init)")
	}
	routes = append(routes, fn)
}

// RegisterGET is shorthand for registering a simple GET route.
func RegisterGET(path string, handler echo.HandlerFunc) {
	RegisterRoute(func(e *echo.Echo, _ *registry.Registry) {
		e.GET(path, handler)
	})
}

// RegisterPOST is shorthand for registering a simple POST route.
func RegisterPOST(path string, handler echo.HandlerFunc) {
	RegisterRoute(func(e *echo.Echo, _ *registry.Registry) {
		e.POST(path, handler)
	})
}

// ApplyRoutes calls all registered route modules. Locks the registry against
// further registration; applying to a fresh Echo instance stays allowed (the
// test suites build one per test).
func ApplyRoutes(e *echo.Echo, reg *registry.Registry) {
	mu.Lock()
	defer mu.Unlock()
	for _, fn := range routes {
		fn(e, reg)
	}
	locked = true
}
