package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server ServerConfig
	DB     DBConfig
	CORS   CORSConfig
	Log    LogConfig
	Query  QueryConfig
	Source SourceConfig
}

type ServerConfig struct {
	Port              string        `envconfig:"PORT" required:"true"`
	ReadHeaderTimeout time.Duration `envconfig:"SERVER_READ_HEADER_TIMEOUT" default:"5s"`
	ShutdownTimeout   time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER"`
	Password string `envconfig:"DB_PASSWORD"`
	DBName   string `envconfig:"DB_NAME"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Tokyo"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"10"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,X-Query-Session"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-Query-Superseded"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Tokyo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"32400"` // 9*60*60
}

type QueryConfig struct {
	// Debounce coalesces bursts of session queries for the same key.
	Debounce time.Duration `envconfig:"QUERY_DEBOUNCE" default:"300ms"`
	// Timeout bounds every repository round trip.
	Timeout      time.Duration `envconfig:"QUERY_TIMEOUT" default:"5s"`
	MaxRangeDays int           `envconfig:"QUERY_MAX_RANGE_DAYS" default:"366"`
}

const (
	SourcePostgres = "postgres"
	SourceICS      = "ics"
)

type SourceConfig struct {
	Kind           string `envconfig:"EVENT_SOURCE" default:"postgres"`
	ICSURL         string `envconfig:"ICS_URL"`
	ICSRefreshCron string `envconfig:"ICS_REFRESH_CRON" default:"*/5 * * * *"`
	ICSTimeZone    string `envconfig:"ICS_TIMEZONE" default:"UTC"`
	// ICSMaxAge is how long the last good snapshot may serve reads after
	// refreshes start failing.
	ICSMaxAge time.Duration `envconfig:"ICS_MAX_AGE" default:"15m"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c Config) Validate() error {
	switch c.Source.Kind {
	case SourcePostgres:
		if c.DB.User == "" || c.DB.DBName == "" {
			return fmt.Errorf("DB_USER and DB_NAME are required when EVENT_SOURCE=%s", SourcePostgres)
		}
	case SourceICS:
		if c.Source.ICSURL == "" {
			return fmt.Errorf("ICS_URL is required when EVENT_SOURCE=%s", SourceICS)
		}
		if _, err := time.LoadLocation(c.Source.ICSTimeZone); err != nil {
			return fmt.Errorf("invalid ICS_TIMEZONE: %w", err)
		}
	default:
		return fmt.Errorf("unsupported EVENT_SOURCE %q", c.Source.Kind)
	}
	if c.Query.MaxRangeDays <= 0 {
		return fmt.Errorf("QUERY_MAX_RANGE_DAYS must be positive")
	}
	if c.Query.Timeout <= 0 {
		return fmt.Errorf("QUERY_TIMEOUT must be positive")
	}
	if c.Query.Debounce < 0 {
		return fmt.Errorf("QUERY_DEBOUNCE must not be negative")
	}
	return nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:              "8889", // Test port
			ReadHeaderTimeout: 5 * time.Second,
			ShutdownTimeout:   time.Second,
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Tokyo",
			MaxConns: 4,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Tokyo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 32400,
		},
		Query: QueryConfig{
			Debounce:     10 * time.Millisecond,
			Timeout:      2 * time.Second,
			MaxRangeDays: 366,
		},
		Source: SourceConfig{
			Kind:           SourcePostgres,
			ICSRefreshCron: "*/5 * * * *",
			ICSTimeZone:    "UTC",
			ICSMaxAge:      15 * time.Minute,
		},
	}
}
