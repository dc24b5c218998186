package config

import (
	"os"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

type Config struct {
	AppEnv   string
	LogLevel string

	HTTPPort  int
	ClientURL string

	// memory | postgres. Carts and the catalog are always in-memory;
	// the driver selects the order/user backend.
	StorageDriver string

	PostgresHost string
	PostgresPort int
	PostgresUser string
	PostgresPass string
	PostgresDB   string

	JWTSecret string
	JWTTTL    time.Duration

	CatalogSeed int64

	Pricing Pricing
}

// Pricing is the single shipping/tax policy applied to both the cart
// preview and order placement.
type Pricing struct {
	FreeShippingThreshold decimal.Decimal
	FlatShippingFee       decimal.Decimal
	TaxRate               decimal.Decimal
}

func Load() Config {
	return Config{
		AppEnv:   getEnv("APP_ENV", "dev"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		HTTPPort:  getEnvInt("HTTP_PORT", 5000),
		ClientURL: getEnv("CLIENT_URL", "http://localhost:3000"),

		StorageDriver: getEnv("STORAGE_DRIVER", "memory"),

		PostgresHost: getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort: getEnvInt("POSTGRES_PORT", 5432),
		PostgresUser: getEnv("POSTGRES_USER", ""),
		PostgresPass: getEnv("POSTGRES_PASSWORD", ""),
		PostgresDB:   getEnv("POSTGRES_DB", ""),

		JWTSecret: getEnv("JWT_SECRET", ""),
		JWTTTL:    getEnvDuration("JWT_TTL", 24*time.Hour),

		CatalogSeed: int64(getEnvInt("CATALOG_SEED", 1)),

		Pricing: Pricing{
			FreeShippingThreshold: getEnvDecimal("FREE_SHIPPING_THRESHOLD", "50"),
			FlatShippingFee:       getEnvDecimal("FLAT_SHIPPING_FEE", "5.99"),
			TaxRate:               getEnvDecimal("TAX_RATE", "0.08"),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)

	if v == "" {
		return def
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}

	return n
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}

	return d
}

func getEnvDecimal(key, def string) decimal.Decimal {
	v := os.Getenv(key)
	if v == "" {
		v = def
	}

	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.RequireFromString(def)
	}

	return d
}
