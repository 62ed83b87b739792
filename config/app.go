package config

import (
	"os"
	"sync"
)

// AppConfig holds global application configuration
var AppConfig *Config
var once sync.Once

type Config struct {
	AppName           string
	Port              string
	Env               string
	Debug             bool
	CatalogFile       string
	CronEnabled       bool
	CronStatsSchedule string
}

// LoadAppConfig initializes the global AppConfig variable
func LoadAppConfig() {
	once.Do(func() {
		schedule := os.Getenv("CRON_STATS_SCHEDULE")
		if schedule == "" {
			schedule = "@hourly"
		}
		AppConfig = &Config{
			AppName:           os.Getenv("APP_NAME"),
			Port:              os.Getenv("PORT"),
			Env:               os.Getenv("APP_ENV"),
			Debug:             os.Getenv("DEBUG") == "true",
			CatalogFile:       os.Getenv("CATALOG_FILE"),
			CronEnabled:       os.Getenv("CRON_ENABLED") == "true",
			CronStatsSchedule: schedule,
		}
	})
}
