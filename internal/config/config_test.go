package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile_Defaults(t *testing.T) {
	cfg := LoadFile(filepath.Join(t.TempDir(), "missing.env"))

	assert.Equal(t, "kuittikone", cfg.App.Name)
	assert.Equal(t, "file", cfg.Store.Driver)
	assert.True(t, cfg.Store.SeedDefaults)
	assert.Equal(t, "none", cfg.Printer.Type)
	assert.Equal(t, 42, cfg.Printer.Width)
	assert.Equal(t, 12*time.Hour, cfg.JWT.ExpiryHours)
	assert.Equal(t, "admin", cfg.JWT.AdminUsername)
}

func TestLoadFile_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("STORE_DRIVER=Postgres\nPRINTER_TYPE=network\nPRINTER_ADDRESS=10.0.0.5:9100\nRECEIPT_WIDTH=32\n"), 0o600))

	cfg := LoadFile(path)
	assert.Equal(t, "postgres", cfg.Store.Driver)
	assert.Equal(t, "network", cfg.Printer.Type)
	assert.Equal(t, "10.0.0.5:9100", cfg.Printer.Address)
	assert.Equal(t, 32, cfg.Receipt.Width)
}

func TestLoadFile_EnvironmentWins(t *testing.T) {
	t.Setenv("APP_PORT", "9999")
	cfg := LoadFile(filepath.Join(t.TempDir(), "missing.env"))
	assert.Equal(t, "9999", cfg.App.Port)
}

func TestDSN(t *testing.T) {
	db := DatabaseConfig{Host: "h", Port: "5432", Name: "n", User: "u", Password: "p", SSLMode: "disable", Timezone: "UTC"}
	assert.Equal(t, "host=h user=u password=p dbname=n port=5432 sslmode=disable TimeZone=UTC", db.DSN())
}
