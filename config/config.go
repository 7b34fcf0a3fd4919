package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Env            string
	Port           string
	MongoURI       string
	MongoDB        string
	AllowedOrigins []string
	JWTSecret      string
	TokenTTL       time.Duration

	LogLevel      string
	LogFile       string
	LogMaxSizeMB  int
	LogMaxBackups int
	LogMaxAgeDays int

	ConsulAddr  string
	ServiceName string
	ServiceHost string
}

func LoadConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("ENV", "development")
	v.SetDefault("PORT", "3000")
	v.SetDefault("MONGO_DB", "hapsay360")
	v.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")
	v.SetDefault("TOKEN_TTL", "48h")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_MAX_SIZE_MB", 50)
	v.SetDefault("LOG_MAX_BACKUPS", 5)
	v.SetDefault("LOG_MAX_AGE_DAYS", 14)
	v.SetDefault("SERVICE_NAME", "hapsay-service")
	v.SetDefault("SERVICE_HOST", "localhost")

	return &Config{
		Env:            v.GetString("ENV"),
		Port:           v.GetString("PORT"),
		MongoURI:       v.GetString("MONGO_URI"),
		MongoDB:        v.GetString("MONGO_DB"),
		AllowedOrigins: splitList(v.GetString("ALLOWED_ORIGINS")),
		JWTSecret:      v.GetString("JWT_SECRET"),
		TokenTTL:       v.GetDuration("TOKEN_TTL"),
		LogLevel:       v.GetString("LOG_LEVEL"),
		LogFile:        v.GetString("LOG_FILE"),
		LogMaxSizeMB:   v.GetInt("LOG_MAX_SIZE_MB"),
		LogMaxBackups:  v.GetInt("LOG_MAX_BACKUPS"),
		LogMaxAgeDays:  v.GetInt("LOG_MAX_AGE_DAYS"),
		ConsulAddr:     v.GetString("CONSUL_ADDR"),
		ServiceName:    v.GetString("SERVICE_NAME"),
		ServiceHost:    v.GetString("SERVICE_HOST"),
	}
}

// Validate reports settings the server cannot start without.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.MongoURI) == "" {
		errs = append(errs, errors.New("MONGO_URI is required"))
	}
	if strings.TrimSpace(c.JWTSecret) == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	if c.TokenTTL <= 0 {
		errs = append(errs, errors.New("TOKEN_TTL must be positive"))
	}
	return errors.Join(errs...)
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
