package config

import (
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Log       LogConfig
	Store     StoreConfig
	Database  DatabaseConfig
	Printer   PrinterConfig
	Receipt   ReceiptConfig
	JWT       JWTConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

type LogConfig struct {
	Level  string
	Format string // console or json
}

// StoreConfig selects where the store document lives
type StoreConfig struct {
	Driver       string // file or postgres
	Path         string
	DocumentID   string
	BackupDir    string
	SeedDefaults bool
	SeedFile     string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	Timezone string
}

type PrinterConfig struct {
	Type    string // usb, network or none
	USBPath string
	Address string
	Width   int
}

type ReceiptConfig struct {
	// Width overrides the store's default_receipt_width when positive
	Width int
}

type JWTConfig struct {
	Secret            string
	ExpiryHours       time.Duration
	AdminUsername     string
	AdminPasswordHash string
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

// Load reads .env and the environment
func Load() *Config {
	return LoadFile(".env")
}

// LoadFile reads the given env file, if present, and the environment
func LoadFile(path string) *Config {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		log.Debug().Err(err).Str("file", path).Msg("env file not read, using environment variables")
	}

	setDefaults(v)

	return &Config{
		App: AppConfig{
			Name:  v.GetString("APP_NAME"),
			Env:   v.GetString("APP_ENV"),
			Port:  v.GetString("APP_PORT"),
			Debug: v.GetBool("APP_DEBUG"),
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		Store: StoreConfig{
			Driver:       strings.ToLower(v.GetString("STORE_DRIVER")),
			Path:         v.GetString("STORE_PATH"),
			DocumentID:   v.GetString("STORE_DOCUMENT_ID"),
			BackupDir:    v.GetString("BACKUP_DIR"),
			SeedDefaults: v.GetBool("STORE_SEED_DEFAULTS"),
			SeedFile:     v.GetString("STORE_SEED_FILE"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			Name:     v.GetString("DB_NAME"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			SSLMode:  v.GetString("DB_SSL_MODE"),
			Timezone: v.GetString("DB_TIMEZONE"),
		},
		Printer: PrinterConfig{
			Type:    strings.ToLower(v.GetString("PRINTER_TYPE")),
			USBPath: v.GetString("PRINTER_USB_PATH"),
			Address: v.GetString("PRINTER_ADDRESS"),
			Width:   v.GetInt("PRINTER_WIDTH"),
		},
		Receipt: ReceiptConfig{
			Width: v.GetInt("RECEIPT_WIDTH"),
		},
		JWT: JWTConfig{
			Secret:            v.GetString("JWT_SECRET"),
			ExpiryHours:       time.Duration(v.GetInt("JWT_EXPIRY_HOURS")) * time.Hour,
			AdminUsername:     v.GetString("ADMIN_USERNAME"),
			AdminPasswordHash: v.GetString("ADMIN_PASSWORD_HASH"),
		},
		CORS: CORSConfig{
			AllowedOrigins: v.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: v.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: v.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: v.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: v.GetInt("RATE_LIMIT_DURATION"),
		},
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "kuittikone")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_DEBUG", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")
	v.SetDefault("STORE_DRIVER", "file")
	v.SetDefault("STORE_PATH", "./data/kuittikone_config.json")
	v.SetDefault("STORE_DOCUMENT_ID", "default")
	v.SetDefault("BACKUP_DIR", "./backups")
	v.SetDefault("STORE_SEED_DEFAULTS", true)
	v.SetDefault("STORE_SEED_FILE", "")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_NAME", "kuittikone")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_TIMEZONE", "Europe/Helsinki")
	v.SetDefault("PRINTER_TYPE", "none")
	v.SetDefault("PRINTER_USB_PATH", "/dev/usb/lp0")
	v.SetDefault("PRINTER_ADDRESS", "")
	v.SetDefault("PRINTER_WIDTH", 42)
	v.SetDefault("RECEIPT_WIDTH", 0)
	v.SetDefault("JWT_SECRET", "change-this-secret-in-production")
	v.SetDefault("JWT_EXPIRY_HOURS", 12)
	v.SetDefault("ADMIN_USERNAME", "admin")
	v.SetDefault("ADMIN_PASSWORD_HASH", "")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	v.SetDefault("RATE_LIMIT_REQUESTS", 100)
	v.SetDefault("RATE_LIMIT_DURATION", 60)
}

func (c *DatabaseConfig) DSN() string {
	return "host=" + c.Host +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Name +
		" port=" + c.Port +
		" sslmode=" + c.SSLMode +
		" TimeZone=" + c.Timezone
}
