// Package config reads settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"

	"workshop-scheduler/internal/store"
)

// StorageKey is the namespaced key the appointment list lives under.
const StorageKey = "@citas_taller"

type Config struct {
	// Driver is one of store.DriverMemory, DriverSQLite, DriverPostgres.
	Driver      string
	SQLitePath  string
	DatabaseURL string
	StorageKey  string

	// Server only.
	JWTSecret string
	GRPCPort  string
	WebPort   string
	// TZ names the location appointment slots are read in.
	TZ string
}

// Load reads .env (if present) and the environment. The storage driver
// defaults to postgres when DATABASE_URL is set and sqlite otherwise.
func Load() Config {
	_ = godotenv.Load()

	c := Config{
		SQLitePath:  env("SQLITE_PATH", "./data/taller.db"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		StorageKey:  env("STORAGE_KEY", StorageKey),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		GRPCPort:    env("PORT", "50051"),
		WebPort:     env("WEB_PORT", "8080"),
		TZ:          os.Getenv("TZ"),
	}
	c.Driver = os.Getenv("STORAGE_DRIVER")
	if c.Driver == "" {
		c.Driver = store.DriverSQLite
		if c.DatabaseURL != "" {
			c.Driver = store.DriverPostgres
		}
	}
	return c
}

// DSN is the data source for the selected driver.
func (c Config) DSN() string {
	switch c.Driver {
	case store.DriverPostgres:
		return c.DatabaseURL
	case store.DriverSQLite:
		return c.SQLitePath
	}
	return ""
}

// Location resolves TZ, falling back to the local zone.
func (c Config) Location() *time.Location {
	if c.TZ == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.TZ)
	if err != nil {
		return time.Local
	}
	return loc
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
