package config

import (
	"log"

	"github.com/joho/godotenv"
)

// LoadEnv loads .env if present. Missing files are fine — env vars can be
// set by other means.
func LoadEnv() {
	if err := godotenv.Load(); err == nil {
		log.Println(".env loaded")
	}
}
