// Package config loads application configuration from environment variables.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// Store drivers accepted by STORE_DRIVER.
const (
	DriverMongo  = "mongo"
	DriverMemory = "memory"
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.
type Config struct {
	Env  string // application environment (dev, test, prod)
	Port string // HTTP port to listen on

	StoreDriver  string        // mongo or memory
	MongoURI     string        // connection string, required for the mongo driver
	MongoDB      string        // database name
	StoreTimeout time.Duration // upper bound of every store call

	// MySQL refresh-token ledger; tokens are kept in memory when DBHost is empty.
	DBUser string
	DBPass string
	DBHost string
	DBPort string
	DBName string

	JWTSecret      string
	AccessTTLMin   int
	RefreshTTLDays int
	BcryptCost     int
	ResetTokenTTL  time.Duration

	CORSOrigins []string
	RabbitURL   string // empty disables domain event publishing
}

// Load reads configuration values from environment variables.  Required
// variables are enforced by must() and a missing value stops the process.
func Load() Config {
	c := Config{
		Env:            envStr("APP_ENV", "dev"),
		Port:           envStr("APP_PORT", "8080"),
		StoreDriver:    strings.ToLower(envStr("STORE_DRIVER", DriverMongo)),
		MongoDB:        envStr("MONGO_DB", "expo"),
		StoreTimeout:   envDur("STORE_TIMEOUT", 5*time.Second),
		DBUser:         os.Getenv("DB_USER"),
		DBPass:         os.Getenv("DB_PASS"),
		DBHost:         os.Getenv("DB_HOST"),
		DBPort:         envStr("DB_PORT", "3306"),
		DBName:         os.Getenv("DB_NAME"),
		JWTSecret:      must("JWT_SECRET"),
		AccessTTLMin:   mustInt("ACCESS_TOKEN_TTL_MIN"),
		RefreshTTLDays: mustInt("REFRESH_TOKEN_TTL_DAYS"),
		BcryptCost:     envInt("BCRYPT_COST", 10),
		ResetTokenTTL:  envDur("RESET_TOKEN_TTL", 15*time.Minute),
		CORSOrigins:    splitList(envStr("CORS_ORIGINS", "*")),
		RabbitURL:      os.Getenv("RABBITMQ_URL"),
	}
	switch c.StoreDriver {
	case DriverMongo:
		c.MongoURI = must("MONGO_URI")
	case DriverMemory:
	default:
		log.Fatal().Str("driver", c.StoreDriver).Msg("STORE_DRIVER must be mongo or memory")
	}
	if c.DBHost != "" {
		c.DBUser = must("DB_USER")
		c.DBName = must("DB_NAME")
	}
	return c
}

// IsDev reports whether the process runs in the development environment.
func (c Config) IsDev() bool { return c.Env == "dev" }

// AccessTTL and RefreshTTL convert the configured token lifetimes.
func (c Config) AccessTTL() time.Duration  { return time.Duration(c.AccessTTLMin) * time.Minute }
func (c Config) RefreshTTL() time.Duration { return time.Duration(c.RefreshTTLDays) * 24 * time.Hour }

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the process logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatal().Str("key", key).Msg("missing required env var")
	}
	return v
}

// mustInt is like must() but converts the value into an integer.
func mustInt(key string) int {
	s := must(key)
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatal().Str("key", key).Str("value", s).Msg("invalid int")
	}
	return n
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func envStr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func envBool(k string, d bool) bool {
	switch strings.ToLower(os.Getenv(k)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return d
}

func envInt(k string, d int) int {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return d
}

func envDur(k string, d time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if dur, err := time.ParseDuration(v); err == nil {
		return dur
	}
	return d
}
