//go:build !cli

package main

import (
	"log"
	"strconv"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"mergington.GO/api"
	_ "mergington.GO/api/activities"
	"mergington.GO/config"
	"mergington.GO/core/registry"
	"mergington.GO/cron"
	_ "mergington.GO/html"
)

func main() {
	config.LoadEnv()
	config.LoadAppConfig()

	catalog, err := config.EffectiveCatalog()
	if err != nil {
		log.Fatalf("failed to load catalog: %v", err)
	}
	reg := registry.NewRegistry(catalog)
	log.Printf("Catalog loaded: %d activities", len(catalog))

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.Gzip())
	e.Use(middleware.Decompress())

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			duration := time.Since(start).Milliseconds()
			c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))
			return err
		}
	})

	api.ApplyRoutes(e, reg)

	if config.AppConfig.CronEnabled {
		cron.Register("enrollment:snapshot", config.AppConfig.CronStatsSchedule, func(...string) {
			for name, act := range reg.List() {
				log.Printf("enrollment %s: %d/%d", name, len(act.Participants), act.MaxParticipants)
			}
		})
		c := cron.StartCron()
		defer c.Stop()
	}

	// ASCII banner on start
	fig := figure.NewFigure("Mergington ->", "standard", true)
	fig.Print()

	port := config.AppConfig.Port
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on :%s", port)
	e.Logger.Fatal(e.Start(":" + port))
}
