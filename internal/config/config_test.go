package config

import (
	"testing"
	"time"

	"workshop-scheduler/internal/store"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"STORAGE_DRIVER", "DATABASE_URL", "SQLITE_PATH", "STORAGE_KEY", "PORT", "WEB_PORT", "TZ"} {
		t.Setenv(k, "")
	}
	c := Load()
	if c.Driver != store.DriverSQLite {
		t.Errorf("driver = %q", c.Driver)
	}
	if c.DSN() != "./data/taller.db" {
		t.Errorf("dsn = %q", c.DSN())
	}
	if c.StorageKey != "@citas_taller" || c.GRPCPort != "50051" || c.WebPort != "8080" {
		t.Errorf("defaults = %+v", c)
	}
	if c.Location() != time.Local {
		t.Errorf("location = %v", c.Location())
	}
}

func TestLoadDriver(t *testing.T) {
	tests := []struct {
		name    string
		driver  string
		dbURL   string
		want    string
		wantDSN string
	}{
		{"postgres when url set", "", "postgres://x", store.DriverPostgres, "postgres://x"},
		{"explicit wins", store.DriverMemory, "postgres://x", store.DriverMemory, ""},
		{"explicit sqlite", store.DriverSQLite, "", store.DriverSQLite, "./data/taller.db"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("STORAGE_DRIVER", tt.driver)
			t.Setenv("DATABASE_URL", tt.dbURL)
			t.Setenv("SQLITE_PATH", "")
			c := Load()
			if c.Driver != tt.want || c.DSN() != tt.wantDSN {
				t.Errorf("driver %q dsn %q, want %q %q", c.Driver, c.DSN(), tt.want, tt.wantDSN)
			}
		})
	}
}

func TestLocation(t *testing.T) {
	c := Config{TZ: "UTC"}
	if c.Location() != time.UTC {
		t.Errorf("location = %v", c.Location())
	}
	c.TZ = "Nowhere/Invalid"
	if c.Location() != time.Local {
		t.Errorf("invalid TZ gave %v", c.Location())
	}
}
