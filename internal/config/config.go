package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Defaults applied before the YAML file and environment overlays.
const (
	// DefaultConfigFile is the config file name looked up in the working directory.
	DefaultConfigFile = "config.yaml"
	// DefaultListenAddr is the HTTP bind address.
	DefaultListenAddr = ":8080"
	// DefaultDatabaseDSN points at a local SQLite file.
	DefaultDatabaseDSN = "file:data/ocevave.db"
	// DefaultSessionTTL matches the session cookie lifetime.
	DefaultSessionTTL = 7 * 24 * time.Hour
	// MinSessionSecretLength is the minimum HMAC secret size in bytes.
	MinSessionSecretLength = 32
)

// AppConfig holds process-level options supplied by the command line.
type AppConfig struct {
	ConfigPath string
}

// Config is the full runtime configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server" envPrefix:"SERVER_"`
	Database DatabaseConfig `yaml:"database" envPrefix:"DATABASE_"`
	Session  SessionConfig  `yaml:"session" envPrefix:"SESSION_"`
	Admin    AdminConfig    `yaml:"admin" envPrefix:"ADMIN_"`
	Log      LogConfig      `yaml:"log" envPrefix:"LOG_"`
	S3       S3Config       `yaml:"s3" envPrefix:"S3_"`
	Redis    RedisConfig    `yaml:"redis" envPrefix:"REDIS_"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Addr         string `yaml:"addr" env:"ADDR"`
	CORS         bool   `yaml:"cors" env:"CORS"`
	CookieSecure bool   `yaml:"cookie_secure" env:"COOKIE_SECURE"`
	// LoginPerMinute caps login attempts per client IP.
	LoginPerMinute int `yaml:"login_per_minute" env:"LOGIN_PER_MINUTE"`
	// TrustedProxies lists proxy CIDRs allowed to set X-Forwarded-For. Empty trusts none.
	TrustedProxies []string `yaml:"trusted_proxies" env:"TRUSTED_PROXIES" envSeparator:","`
}

// DatabaseConfig configures the relational store.
type DatabaseConfig struct {
	DSN string `yaml:"dsn" env:"DSN"`
}

// SessionConfig configures session token signing.
type SessionConfig struct {
	Secret string        `yaml:"secret" env:"SECRET"`
	TTL    time.Duration `yaml:"ttl" env:"TTL"`
}

// AdminConfig describes the single privileged account.
type AdminConfig struct {
	Email        string `yaml:"email" env:"EMAIL"`
	Name         string `yaml:"name" env:"NAME"`
	Password     string `yaml:"password" env:"PASSWORD"`
	PasswordHash string `yaml:"password_hash" env:"PASSWORD_HASH"`
	TOTPSecret   string `yaml:"totp_secret" env:"TOTP_SECRET"`
}

// LogConfig configures logrus output.
type LogConfig struct {
	Level      string `yaml:"level" env:"LEVEL"`
	Format     string `yaml:"format" env:"FORMAT"`
	File       string `yaml:"file" env:"FILE"`
	MaxSizeMB  int    `yaml:"max_size_mb" env:"MAX_SIZE_MB"`
	MaxBackups int    `yaml:"max_backups" env:"MAX_BACKUPS"`
	MaxAgeDays int    `yaml:"max_age_days" env:"MAX_AGE_DAYS"`
}

// S3Config configures the optional image blob store.
type S3Config struct {
	Endpoint     string `yaml:"endpoint" env:"ENDPOINT"`
	Region       string `yaml:"region" env:"REGION"`
	Bucket       string `yaml:"bucket" env:"BUCKET"`
	AccessKey    string `yaml:"access_key" env:"ACCESS_KEY"`
	SecretKey    string `yaml:"secret_key" env:"SECRET_KEY"`
	UsePathStyle bool   `yaml:"use_path_style" env:"USE_PATH_STYLE"`
}

// Enabled reports whether enough settings are present to build an S3 client.
func (c S3Config) Enabled() bool {
	return strings.TrimSpace(c.Bucket) != ""
}

// RedisConfig configures the optional session revocation store.
type RedisConfig struct {
	Addr     string `yaml:"addr" env:"ADDR"`
	Password string `yaml:"password" env:"PASSWORD"`
	DB       int    `yaml:"db" env:"DB"`
}

// Enabled reports whether a Redis address is configured.
func (c RedisConfig) Enabled() bool {
	return strings.TrimSpace(c.Addr) != ""
}

// envPrefix scopes all environment overrides.
const envPrefix = "OCEVAVE_"

// ResolveConfigPath returns the config path to use, falling back to the
// OCEVAVE_CONFIG environment variable and then the working directory.
func ResolveConfigPath(path string) string {
	if trimmed := strings.TrimSpace(path); trimmed != "" {
		return filepath.Clean(trimmed)
	}
	if fromEnv := strings.TrimSpace(os.Getenv(envPrefix + "CONFIG")); fromEnv != "" {
		return filepath.Clean(fromEnv)
	}
	wd, errWd := os.Getwd()
	if errWd != nil {
		return DefaultConfigFile
	}
	return filepath.Join(wd, DefaultConfigFile)
}

// Default returns a Config populated with defaults.
func Default() Config {
	return Config{
		Server:   ServerConfig{Addr: DefaultListenAddr, CORS: true, CookieSecure: true, LoginPerMinute: 10},
		Database: DatabaseConfig{DSN: DefaultDatabaseDSN},
		Session:  SessionConfig{TTL: DefaultSessionTTL},
		Admin:    AdminConfig{Name: "OCEVAVE Admin"},
		Log:      LogConfig{Level: "info", Format: "text", MaxSizeMB: 100, MaxBackups: 5, MaxAgeDays: 30},
		S3:       S3Config{Region: "auto"},
	}
}

// Load reads the YAML file at path (missing files are tolerated), applies a
// .env file when present, then overlays OCEVAVE_* environment variables.
func Load(path string) (Config, error) {
	cfg := Default()

	if errEnv := godotenv.Load(); errEnv != nil && !errors.Is(errEnv, os.ErrNotExist) {
		return cfg, fmt.Errorf("config: load .env: %w", errEnv)
	}

	if strings.TrimSpace(path) != "" {
		data, errRead := os.ReadFile(path)
		switch {
		case errRead == nil:
			if errUnmarshal := yaml.Unmarshal(data, &cfg); errUnmarshal != nil {
				return cfg, fmt.Errorf("config: parse %s: %w", path, errUnmarshal)
			}
		case errors.Is(errRead, os.ErrNotExist):
		default:
			return cfg, fmt.Errorf("config: read %s: %w", path, errRead)
		}
	}

	if errParse := env.ParseWithOptions(&cfg, env.Options{Prefix: envPrefix}); errParse != nil {
		return cfg, fmt.Errorf("config: env: %w", errParse)
	}

	cfg.normalize()
	return cfg, nil
}

// LoadDatabaseDSN loads the config file and returns only the database DSN.
func LoadDatabaseDSN(path string) (string, error) {
	cfg, err := Load(path)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(cfg.Database.DSN) == "" {
		return "", errors.New("config: database.dsn is empty")
	}
	return cfg.Database.DSN, nil
}

func (c *Config) normalize() {
	c.Admin.Email = strings.ToLower(strings.TrimSpace(c.Admin.Email))
	c.Admin.Name = strings.TrimSpace(c.Admin.Name)
	c.Database.DSN = strings.TrimSpace(c.Database.DSN)
	if c.Session.TTL <= 0 {
		c.Session.TTL = DefaultSessionTTL
	}
	if strings.TrimSpace(c.Server.Addr) == "" {
		c.Server.Addr = DefaultListenAddr
	}
}

// Validate checks settings the server cannot start without.
func (c Config) Validate() error {
	if c.Database.DSN == "" {
		return errors.New("config: database.dsn is required")
	}
	if len(c.Session.Secret) < MinSessionSecretLength {
		return fmt.Errorf("config: session.secret must be at least %d bytes", MinSessionSecretLength)
	}
	if c.Admin.Email == "" {
		return errors.New("config: admin.email is required")
	}
	if c.Admin.Password == "" && c.Admin.PasswordHash == "" {
		return errors.New("config: admin.password or admin.password_hash is required")
	}
	return nil
}
