package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	AppName     string
	AppVersion  string
	Environment string

	Logger LoggerConfig
	Server ServerConfig
	DB     DBConfig
	SMTP   SMTPConfig

	// AdminKey is the shared secret guarding the admin listing endpoint.
	// When empty the endpoint always answers 401.
	AdminKey string
}

type LoggerConfig struct {
	Level  string
	Format string
}

type ServerConfig struct {
	Addr string
}

type DBConfig struct {
	Type            string
	Host            string
	Port            string
	Name            string
	User            string
	Password        string
	SSLMode         string
	SQLitePath      string
	MaxIdleConn     int
	MaxOpenConn     int
	ConnMaxLifetime int
	ConnMaxIdleTime int
}

// SMTPConfig configures the contact notification transport. Notification is
// attempted only when the config is complete; see Complete.
type SMTPConfig struct {
	Host     string
	Port     int
	Secure   bool
	Username string
	Password string
	From     string
	To       string
	Timeout  time.Duration
}

// Complete reports whether enough is configured to attempt delivery.
// From falls back to Username when unset.
func (c SMTPConfig) Complete() bool {
	return c.Host != "" && c.Port > 0 && c.Username != "" && c.Password != "" && c.To != ""
}

// Load loads configuration from environment variables and an optional .env file.
func Load() Config {
	_ = godotenv.Load()

	smtpPort := getenvInt("SMTP_PORT", 0)
	smtpUser := strings.TrimSpace(getenv("SMTP_USER", ""))

	cfg := Config{
		AppName:     getenv("APP_SERVICE", "portfolio"),
		AppVersion:  getenv("APP_VERSION", "0.1.0"),
		Environment: getenv("ENVIRONMENT", "development"),
		Logger: LoggerConfig{
			Level:  strings.ToLower(getenv("LOG_LEVEL", "info")),
			Format: strings.ToLower(getenv("LOG_FORMAT", "json")),
		},
		Server: ServerConfig{
			Addr: getenv("HTTP_ADDR", ":8080"),
		},
		DB: DBConfig{
			Type:            getenv("DATABASE_TYPE", "postgres"),
			Host:            getenv("DATABASE_HOST", "localhost"),
			Port:            getenv("DATABASE_PORT", "5432"),
			Name:            getenv("DATABASE_NAME", "portfolio"),
			User:            getenv("DATABASE_USER", "postgres"),
			Password:        getenv("DATABASE_PASSWORD", ""),
			SSLMode:         getenv("DATABASE_SSLMODE", "disable"),
			SQLitePath:      getenv("DATABASE_SQLITE_PATH", "portfolio.db"),
			MaxIdleConn:     getenvInt("DATABASE_MAX_IDLE_CONN", 2),
			MaxOpenConn:     getenvInt("DATABASE_MAX_OPEN_CONN", 10),
			ConnMaxLifetime: getenvInt("DATABASE_CONN_MAX_LIFETIME", 3600),
			ConnMaxIdleTime: getenvInt("DATABASE_CONN_MAX_IDLE_TIME", 600),
		},
		SMTP: SMTPConfig{
			Host:     strings.TrimSpace(getenv("SMTP_HOST", "")),
			Port:     smtpPort,
			Secure:   getenvBool("SMTP_SECURE", smtpPort == 465),
			Username: smtpUser,
			Password: getenv("SMTP_PASS", ""),
			From:     strings.TrimSpace(getenv("CONTACT_FROM", smtpUser)),
			To:       strings.TrimSpace(getenv("CONTACT_TO", "")),
			Timeout:  time.Duration(getenvInt("SMTP_TIMEOUT_SECONDS", 10)) * time.Second,
		},
		AdminKey: strings.TrimSpace(getenv("ADMIN_KEY", "")),
	}

	return cfg
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	value := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	if value == "" {
		return def
	}
	switch value {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}

func getenvInt(key string, def int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return parsed
}
