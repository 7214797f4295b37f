// Package config provides application configuration loaded from environment
// variables with defaults and validation. It centralizes settings for the
// backend server (timeouts, logging, database, rate limiting, observability,
// e-mail notifications) and for the form submission client (API base URL,
// submit mode, fallback storage).
package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// Submit modes accepted by SUBMIT_MODE.
const (
	// SubmitModeDemo reports success for every backend outcome.
	SubmitModeDemo = "demo"
	// SubmitModeStrict surfaces non-2xx backend responses as failures.
	SubmitModeStrict = "strict"
)

// CORSConfig defines Cross-Origin Resource Sharing settings.
type CORSConfig struct {
	AllowedOrigins []string
}

// SecurityConfig defines security-related settings such as HSTS.
type SecurityConfig struct {
	EnableHSTS bool
	HSTSMaxAge time.Duration
}

// OTELConfig defines OpenTelemetry observability settings.
type OTELConfig struct {
	Enabled     bool    // OTEL_ENABLED
	Endpoint    string  // OTEL_EXPORTER_OTLP_ENDPOINT (e.g. "otel:4317")
	Insecure    bool    // OTEL_EXPORTER_OTLP_INSECURE (true if no TLS)
	ServiceName string  // OTEL_SERVICE_NAME
	SampleRatio float64 // OTEL_TRACES_SAMPLER_ARG in [0..1]
}

// SMTPConfig holds the outgoing mail settings used for admin notifications.
// Notifications are skipped unless both User and Password are set.
type SMTPConfig struct {
	Server     string // SMTP_SERVER
	Port       int    // SMTP_PORT
	User       string // SMTP_USER
	Password   string // SMTP_PASSWORD
	AdminEmail string // ADMIN_EMAIL
}

// Enabled reports whether credentials are configured.
func (s SMTPConfig) Enabled() bool {
	return s.User != "" && s.Password != ""
}

// ClientConfig configures the form submission client.
type ClientConfig struct {
	APIBaseURL  string        // API_BASE_URL
	Timeout     time.Duration // CLIENT_TIMEOUT
	SubmitMode  string        // SUBMIT_MODE: demo|strict
	LocalDBPath string        // LOCAL_DB_PATH, backs the fallback slots
}

// Config holds all configuration values for the application.
type Config struct {
	// Server
	Port              string        // just the number
	ReadTimeout       time.Duration // e.g. 15s
	ReadHeaderTimeout time.Duration // e.g. 10s
	WriteTimeout      time.Duration // e.g. 20s
	IdleTimeout       time.Duration // e.g. 60s
	MaxHeaderBytes    int           // bytes
	GinMode           string        // debug|release|test

	// Logging / Docs
	LogLevel       string // debug|info|warn|error|fatal|panic
	LogPretty      bool   // pretty console logs in dev
	SwaggerEnabled bool   // enable Swagger UI route

	// App
	DBPath  string // SQLite path for orders and contact messages
	SiteDir string // directory holding the static HTML pages

	// Rate limiting
	RateRPS   float64 // tokens per second (>= 0)
	RateBurst int     // bucket size (>= 1)

	// Web protection
	CORS     CORSConfig
	Security SecurityConfig

	// Notifications
	SMTP SMTPConfig

	// Observability
	OTEL OTELConfig

	// Form submission client
	Client ClientConfig
}

// MustLoad loads the configuration and panics if validation fails.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load reads configuration from environment variables,
// applies defaults, normalizes values, and validates the result.
func Load() (Config, error) {
	cfg := Config{
		Port:              getenv("PORT", "5000"),
		ReadTimeout:       getdur("READ_TIMEOUT", 15*time.Second),
		ReadHeaderTimeout: getdur("READ_HEADER_TIMEOUT", 10*time.Second),
		WriteTimeout:      getdur("WRITE_TIMEOUT", 20*time.Second),
		IdleTimeout:       getdur("IDLE_TIMEOUT", 60*time.Second),
		MaxHeaderBytes:    getint("MAX_HEADER_BYTES", 1<<20),
		GinMode:           strings.ToLower(getenv("GIN_MODE", "release")),

		LogLevel:       strings.ToLower(getenv("LOG_LEVEL", "info")),
		LogPretty:      getbool("LOG_PRETTY", false),
		SwaggerEnabled: getbool("SWAGGER_ENABLED", false),

		DBPath:  getenv("DB_PATH", "aqua_blue.db"),
		SiteDir: getenv("SITE_DIR", "."),

		RateRPS:   getfloat("RATE_RPS", 2.0),
		RateBurst: getint("RATE_BURST", 5),

		CORS: CORSConfig{
			AllowedOrigins: splitCSV(getenv("CORS_ALLOWED_ORIGINS", "")),
		},
		Security: SecurityConfig{
			EnableHSTS: getbool("ENABLE_HSTS", false),
			HSTSMaxAge: getdur("HSTS_MAX_AGE", 180*24*time.Hour),
		},

		SMTP: SMTPConfig{
			Server:     getenv("SMTP_SERVER", "smtp.gmail.com"),
			Port:       getint("SMTP_PORT", 587),
			User:       getenv("SMTP_USER", ""),
			Password:   getenv("SMTP_PASSWORD", ""),
			AdminEmail: getenv("ADMIN_EMAIL", "admin@aquablue.in"),
		},

		OTEL: OTELConfig{
			Enabled:     getbool("OTEL_ENABLED", false),
			Endpoint:    getenv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
			Insecure:    getbool("OTEL_EXPORTER_OTLP_INSECURE", true),
			ServiceName: getenv("OTEL_SERVICE_NAME", "aqua-blue"),
			SampleRatio: getfloat("OTEL_TRACES_SAMPLER_ARG", 1.0),
		},

		Client: ClientConfig{
			APIBaseURL:  strings.TrimRight(getenv("API_BASE_URL", "http://localhost:5000"), "/"),
			Timeout:     getdur("CLIENT_TIMEOUT", 30*time.Second),
			SubmitMode:  strings.ToLower(getenv("SUBMIT_MODE", SubmitModeDemo)),
			LocalDBPath: getenv("LOCAL_DB_PATH", "aqua_blue_local.db"),
		},
	}

	// --- normalization ---
	if cfg.LogLevel == "warning" {
		cfg.LogLevel = "warn"
	}
	switch cfg.GinMode {
	case "debug", "release", "test":
	default:
		cfg.GinMode = "release"
	}

	// --- validation ---
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error", "fatal", "panic":
	default:
		return cfg, errors.New("LOG_LEVEL must be one of: debug, info, warn, error, fatal, panic")
	}
	if strings.TrimSpace(cfg.Port) == "" {
		return cfg, errors.New("PORT must not be empty")
	}
	if cfg.ReadTimeout <= 0 || cfg.ReadHeaderTimeout <= 0 || cfg.WriteTimeout <= 0 || cfg.IdleTimeout <= 0 {
		return cfg, errors.New("timeouts must be positive durations")
	}
	if cfg.MaxHeaderBytes <= 0 {
		return cfg, errors.New("MAX_HEADER_BYTES must be > 0")
	}
	if strings.TrimSpace(cfg.DBPath) == "" {
		return cfg, errors.New("DB_PATH must not be empty")
	}
	if cfg.RateRPS < 0 {
		return cfg, errors.New("RATE_RPS must be >= 0")
	}
	if cfg.RateBurst < 1 {
		return cfg, errors.New("RATE_BURST must be >= 1")
	}
	if cfg.Security.HSTSMaxAge < 0 {
		return cfg, errors.New("HSTS_MAX_AGE must be >= 0")
	}
	if cfg.SMTP.Port <= 0 || cfg.SMTP.Port > 65535 {
		return cfg, errors.New("SMTP_PORT must be a valid TCP port")
	}
	if cfg.OTEL.SampleRatio < 0 || cfg.OTEL.SampleRatio > 1 {
		return cfg, errors.New("OTEL_TRACES_SAMPLER_ARG must be in [0,1]")
	}
	switch cfg.Client.SubmitMode {
	case SubmitModeDemo, SubmitModeStrict:
	default:
		return cfg, errors.New("SUBMIT_MODE must be one of: demo, strict")
	}
	if cfg.Client.Timeout <= 0 {
		return cfg, errors.New("CLIENT_TIMEOUT must be a positive duration")
	}
	if !strings.HasPrefix(cfg.Client.APIBaseURL, "http://") && !strings.HasPrefix(cfg.Client.APIBaseURL, "https://") {
		return cfg, errors.New("API_BASE_URL must be an http(s) URL")
	}
	if strings.TrimSpace(cfg.Client.LocalDBPath) == "" {
		return cfg, errors.New("LOCAL_DB_PATH must not be empty")
	}

	return cfg, nil
}

// ---- helpers ----

func getenv(k, def string) string {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		return v
	}
	return def
}

func getfloat(k string, def float64) float64 {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getint(k string, def int) int {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getbool(k string, def bool) bool {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "yes", "y", "on":
			return true
		case "0", "false", "no", "n", "off":
			return false
		}
	}
	return def
}

func getdur(k string, def time.Duration) time.Duration {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		t := strings.TrimSpace(p)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
