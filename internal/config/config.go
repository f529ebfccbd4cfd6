// Package config builds the process configuration once at startup. Nothing
// below the command layer reads the environment directly.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"

	devJWTSecret = "dev-only-jwt-secret"
)

type Config struct {
	Env      string
	HTTPAddr string

	DBDriver    string
	DatabaseURL string

	JWTSecret string
	JWTTTL    time.Duration

	GoogleClientID string

	UploadDir     string
	MaxUploadSize int64 // bytes, per file

	RedisAddr       string
	LoginMaxStrikes int
	LoginBanWindow  time.Duration

	CORSOrigins []string
}

// Load reads defaults, an optional .env file, an optional config.yaml in the
// working directory and finally the process environment, in increasing order
// of precedence.
func Load() (*Config, error) {
	// .env is optional; a missing file is not an error.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}
	v.AutomaticEnv()

	cfg := &Config{
		Env:             strings.ToLower(v.GetString("APP_ENV")),
		HTTPAddr:        v.GetString("HTTP_ADDR"),
		DBDriver:        strings.ToLower(v.GetString("DB_DRIVER")),
		DatabaseURL:     v.GetString("DATABASE_URL"),
		JWTSecret:       v.GetString("JWT_SECRET"),
		JWTTTL:          v.GetDuration("JWT_TTL"),
		GoogleClientID:  v.GetString("GOOGLE_CLIENT_ID"),
		UploadDir:       v.GetString("UPLOAD_DIR"),
		MaxUploadSize:   v.GetInt64("MAX_UPLOAD_SIZE_MB") << 20,
		RedisAddr:       v.GetString("REDIS_ADDR"),
		LoginMaxStrikes: v.GetInt("LOGIN_MAX_STRIKES"),
		LoginBanWindow:  v.GetDuration("LOGIN_BAN_WINDOW"),
		CORSOrigins:     splitList(v.GetString("CORS_ORIGINS")),
	}

	if cfg.JWTSecret == "" && cfg.IsDevelopment() {
		cfg.JWTSecret = devJWTSecret
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", EnvDevelopment)
	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("DB_DRIVER", DriverPostgres)
	v.SetDefault("JWT_TTL", 30*24*time.Hour)
	v.SetDefault("UPLOAD_DIR", "uploads")
	v.SetDefault("MAX_UPLOAD_SIZE_MB", 5)
	v.SetDefault("LOGIN_MAX_STRIKES", 5)
	v.SetDefault("LOGIN_BAN_WINDOW", 15*time.Minute)
	v.SetDefault("CORS_ORIGINS", "*")
}

func (c *Config) Validate() error {
	var errs []error
	if c.DatabaseURL == "" {
		errs = append(errs, errors.New("DATABASE_URL is required"))
	}
	if c.DBDriver != DriverPostgres && c.DBDriver != DriverMySQL {
		errs = append(errs, fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver))
	}
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required outside development"))
	}
	if c.JWTTTL <= 0 {
		errs = append(errs, errors.New("JWT_TTL must be positive"))
	}
	if c.MaxUploadSize <= 0 {
		errs = append(errs, errors.New("MAX_UPLOAD_SIZE_MB must be positive"))
	}
	return errors.Join(errs...)
}

func (c *Config) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
