package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	JWTSecret    string
	AdminKey     string
	TokenTTL     time.Duration
	RateRPS      float64
	RateBurst    int
	TrustProxy   bool
}

// ParseFlags validates flags and fills the rest from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	// A missing .env is fine; real deployments use the process environment.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load .env file", "error", err)
	}

	fs := flag.NewFlagSet("statevote", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", "", "Session signing secret (prefer env)")
	fs.StringVar(&cfg.AdminKey, "admin-key", "", "Admin API key (prefer env)")

	fs.DurationVar(&cfg.TokenTTL, "token-ttl", 0, "Session token lifetime")
	fs.Float64Var(&cfg.RateRPS, "rate-rps", 0, "Per-IP requests per second on write endpoints")
	fs.IntVar(&cfg.RateBurst, "rate-burst", 0, "Per-IP burst on write endpoints")
	fs.BoolVar(&cfg.TrustProxy, "trust-proxy", false, "Key rate limits on X-Forwarded-For (only behind a proxy)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3318 // default
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	if cfg.TokenTTL == 0 {
		if ttlStr := os.Getenv("TOKEN_TTL"); ttlStr != "" {
			ttl, err := time.ParseDuration(ttlStr)
			if err != nil {
				return Config{}, errors.New("invalid TOKEN_TTL env variable")
			}
			cfg.TokenTTL = ttl
		} else {
			cfg.TokenTTL = time.Hour
		}
	}

	if cfg.RateRPS == 0 {
		if rpsStr := os.Getenv("RATE_RPS"); rpsStr != "" {
			rps, err := strconv.ParseFloat(rpsStr, 64)
			if err != nil {
				return Config{}, errors.New("invalid RATE_RPS env variable")
			}
			cfg.RateRPS = rps
		} else {
			cfg.RateRPS = 5
		}
	}
	if cfg.RateBurst == 0 {
		if burstStr := os.Getenv("RATE_BURST"); burstStr != "" {
			burst, err := strconv.Atoi(burstStr)
			if err != nil {
				return Config{}, errors.New("invalid RATE_BURST env variable")
			}
			cfg.RateBurst = burst
		} else {
			cfg.RateBurst = 10
		}
	}

	if !cfg.TrustProxy {
		if proxyStr := os.Getenv("TRUST_PROXY"); proxyStr != "" {
			trust, err := strconv.ParseBool(proxyStr)
			if err != nil {
				return Config{}, errors.New("invalid TRUST_PROXY env variable")
			}
			cfg.TrustProxy = trust
		}
	}

	// Secrets - MUST be provided
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = os.Getenv("JWT_SECRET")
	}
	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET required")
	}

	if cfg.AdminKey == "" {
		cfg.AdminKey = os.Getenv("ADMIN_KEY")
	}
	if cfg.AdminKey == "" {
		return Config{}, errors.New("ADMIN_KEY required")
	}

	return cfg, nil
}
