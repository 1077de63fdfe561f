// Package config gathers settings from flags, the environment and an optional
// .env file. Flags win over the environment.
package config

import (
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	StorePostgres = "postgres"
	// StoreMemory keeps sessions in process and serves only the session routes.
	StoreMemory = "memory"
)

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// ConnString builds a lib/pq URL.
func (d Database) ConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

type Config struct {
	Port           int
	Store          string
	DB             Database
	JWTSecret      string
	GoogleClientID string
	RedirectURL    string
	CookieDomain   string
	CookieSameSite http.SameSite
	AllowedOrigins []string
	LogLevel       string
	LogFormat      string
	// Args holds the positional arguments left after the flags.
	Args []string
}

// Load reads .env (if present) and parses args on top of the environment.
func Load(name string, args []string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}
	return Parse(name, args)
}

func Parse(name string, args []string) (Config, error) {
	var cfg Config
	var sameSite, origins string

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.IntVar(&cfg.Port, "port", envInt("PORT", 8080), "HTTP port")
	fs.StringVar(&cfg.Store, "store", env("STORE", StorePostgres), "Session store: postgres or memory")
	fs.StringVar(&cfg.DB.Host, "db-host", env("POSTGRES_HOST", "localhost"), "Database host")
	fs.StringVar(&cfg.DB.Port, "db-port", env("POSTGRES_PORT", "5432"), "Database port")
	fs.StringVar(&cfg.DB.User, "db-user", os.Getenv("POSTGRES_USER"), "Database user")
	fs.StringVar(&cfg.DB.Password, "db-pass", os.Getenv("POSTGRES_PASSWORD"), "Database password")
	fs.StringVar(&cfg.DB.Name, "db-name", os.Getenv("POSTGRES_DB"), "Database name")
	fs.StringVar(&cfg.DB.SSLMode, "db-sslmode", env("POSTGRES_SSLMODE", "disable"), "Database sslmode")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", os.Getenv("JWT_SECRET"), "HS256 signing secret (prefer env)")
	fs.StringVar(&cfg.GoogleClientID, "google-client-id", os.Getenv("GOOGLE_CLIENT_ID"), "Google OAuth client id")
	fs.StringVar(&cfg.RedirectURL, "redirect-url", os.Getenv("OAUTH_REDIRECT_URL"), "Where to send the browser after Google sign-in")
	fs.StringVar(&cfg.CookieDomain, "cookie-domain", os.Getenv("COOKIE_DOMAIN"), "Domain for auth cookies")
	fs.StringVar(&sameSite, "cookie-samesite", env("COOKIE_SAMESITE", "lax"), "SameSite for auth cookies: lax, strict or none")
	fs.StringVar(&origins, "allowed-origins", env("ALLOWED_ORIGINS", "*"), "Comma separated CORS origins")
	fs.StringVar(&cfg.LogLevel, "log-level", env("LOG_LEVEL", "info"), "Log level")
	fs.StringVar(&cfg.LogFormat, "log-format", env("LOG_FORMAT", "json"), "Log format: json or console")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("invalid port %d", cfg.Port)
	}

	if cfg.Store != StorePostgres && cfg.Store != StoreMemory {
		return Config{}, fmt.Errorf("invalid store %q", cfg.Store)
	}

	s, err := parseSameSite(sameSite)
	if err != nil {
		return Config{}, err
	}
	cfg.CookieSameSite = s
	cfg.AllowedOrigins = splitList(origins)
	cfg.Args = fs.Args()

	return cfg, nil
}

// SetupLogging configures the global zerolog logger.
func (c Config) SetupLogging() {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if c.LogFormat == "console" {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).With().Timestamp().Logger()
		return
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}

func parseSameSite(v string) (http.SameSite, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "lax":
		return http.SameSiteLaxMode, nil
	case "strict":
		return http.SameSiteStrictMode, nil
	case "none":
		return http.SameSiteNoneMode, nil
	default:
		return 0, fmt.Errorf("invalid cookie samesite %q", v)
	}
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func env(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
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
