package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store backends selectable via STORE_BACKEND.
const (
	StoreBackendSQLite = "sqlite"
	StoreBackendMemory = "memory"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// StoreBackend selects the key-value store implementation: "sqlite"
	// for the on-disk database, "memory" for an ephemeral store.
	StoreBackend string

	// DataPath is the sqlite database file location. Defaults to the
	// XDG data directory.
	DataPath string

	// RateLimit is a limiter format string such as "100-M" (100
	// requests per minute).
	RateLimit string

	// CORSAllowedOrigins lists origins allowed to call the API. "*"
	// allows any origin.
	CORSAllowedOrigins []string

	// DefaultCurrency is the currency for wallets created without an
	// explicit one when the profile has no default either.
	DefaultCurrency string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("STORE_BACKEND", StoreBackendSQLite)
	viper.SetDefault("DATA_PATH", "")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	viper.SetDefault("DEFAULT_CURRENCY", "USD")

	viper.AutomaticEnv()

	cfg := &Config{
		Port:            viper.GetString("PORT"),
		IsProduction:    viper.GetBool("IS_PRODUCTION"),
		StoreBackend:    viper.GetString("STORE_BACKEND"),
		DataPath:        viper.GetString("DATA_PATH"),
		RateLimit:       viper.GetString("RATE_LIMIT"),
		DefaultCurrency: viper.GetString("DEFAULT_CURRENCY"),
	}

	switch cfg.StoreBackend {
	case StoreBackendSQLite, StoreBackendMemory:
	default:
		return nil, fmt.Errorf("unknown STORE_BACKEND %q", cfg.StoreBackend)
	}

	if cfg.DataPath == "" && cfg.StoreBackend == StoreBackendSQLite {
		path, err := xdg.DataFile("pocketledger/pocketledger.db")
		if err != nil {
			return nil, fmt.Errorf("resolving data path: %w", err)
		}
		cfg.DataPath = path
		log.Printf("DATA_PATH not set. Defaulting to %s\n", cfg.DataPath)
	}

	origins := viper.GetString("CORS_ALLOWED_ORIGINS")
	for _, origin := range strings.Split(origins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		cfg.CORSAllowedOrigins = []string{"*"}
	}

	return cfg, nil
}
