package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
)

type MailConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	To       string
}

type Config struct {
	Env         string
	Port        string
	StoreDriver string
	MongoURI    string
	MongoDB     string
	DatabaseURL string
	AMQPURL     string
	Mail        MailConfig
}

// Load reads .env (if present) and the environment. The store connection
// string is mandatory; the process must not come up without it.
func Load() (*Config, error) {
	godotenv.Load()

	mailPort, _ := strconv.Atoi(getEnv("MAIL_PORT", "587"))

	cfg := &Config{
		Env:         getEnv("APP_ENV", "development"),
		Port:        getEnv("PORT", "5000"),
		StoreDriver: getEnv("STORE_DRIVER", DriverMongo),
		MongoURI:    os.Getenv("MONGODB_URI"),
		MongoDB:     getEnv("MONGODB_DB", "leadtrack"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		AMQPURL:     os.Getenv("AMQP_URL"),
		Mail: MailConfig{
			Host:     os.Getenv("MAIL_HOST"),
			Port:     mailPort,
			User:     os.Getenv("MAIL_USER"),
			Password: os.Getenv("MAIL_PASS"),
			From:     getEnv("MAIL_FROM", "no-reply@leadtrack.local"),
			To:       os.Getenv("MAIL_TO"),
		},
	}

	switch cfg.StoreDriver {
	case DriverMongo:
		if cfg.MongoURI == "" {
			return nil, errors.New("MONGODB_URI environment variable is required")
		}
	case DriverPostgres:
		if cfg.DatabaseURL == "" {
			return nil, errors.New("DATABASE_URL environment variable is required")
		}
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}

	return cfg, nil
}

// MailEnabled reports whether the notification worker has enough
// configuration to run.
func (c *Config) MailEnabled() bool {
	return c.Mail.Host != "" && c.Mail.To != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
