package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"

	defaultPort          = 3005
	defaultEnv           = "development"
	defaultMongoURI      = "mongodb://localhost:27017"
	defaultMongoDatabase = "vegamovies"
	defaultTokenDays     = 7
)

// AppConfig holds runtime startup configuration loaded from YAML, with
// environment variables taking precedence over file values.
type AppConfig struct {
	Port           int           `yaml:"port"`
	Env            string        `yaml:"env"` // "development" | "production"
	Mongo          MongoConfig   `yaml:"mongo"`
	Admin          AdminIdentity `yaml:"admin"`
	JWTSecret      string        `yaml:"jwt_secret"`
	TokenDays      int           `yaml:"token_days"`
	AllowedOrigins []string      `yaml:"allowed_origins"`
}

// MongoConfig points at the record store.
type MongoConfig struct {
	URI      string `yaml:"uri"`
	Database string `yaml:"database"`
}

// AdminIdentity is the single fixed admin login. There is no user table.
type AdminIdentity struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

// Load reads the YAML config file (if present) and applies environment
// overrides. A missing file is not an error when the environment supplies
// the required values.
func Load(configPath string) (*AppConfig, error) {
	path := strings.TrimSpace(configPath)
	if path == "" {
		path = DefaultConfigPath
	}

	cfg := defaultAppConfig()

	content, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return nil, fmt.Errorf("parse config file %q: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		// env-only configuration
	default:
		return nil, fmt.Errorf("read config file %q: %w", path, err)
	}

	applyEnvOverrides(&cfg)

	if cfg.Port < 1 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d, expected 1-65535", cfg.Port)
	}
	if cfg.TokenDays < 1 {
		return nil, fmt.Errorf("invalid token_days %d, expected >= 1", cfg.TokenDays)
	}
	if strings.TrimSpace(cfg.Mongo.URI) == "" {
		return nil, errors.New("mongo.uri is required")
	}
	if strings.TrimSpace(cfg.Mongo.Database) == "" {
		return nil, errors.New("mongo.database is required")
	}

	return &cfg, nil
}

func defaultAppConfig() AppConfig {
	return AppConfig{
		Port: defaultPort,
		Env:  defaultEnv,
		Mongo: MongoConfig{
			URI:      defaultMongoURI,
			Database: defaultMongoDatabase,
		},
		TokenDays: defaultTokenDays,
	}
}

func applyEnvOverrides(cfg *AppConfig) {
	if v, ok := envInt("PORT"); ok {
		cfg.Port = v
	}
	if v := envStr("NODE_ENV"); v != "" {
		cfg.Env = v
	}
	if v := envStr("APP_ENV"); v != "" {
		cfg.Env = v
	}
	if v := envStr("MONGODB_URI"); v != "" {
		cfg.Mongo.URI = v
	}
	if v := envStr("MONGODB_DATABASE"); v != "" {
		cfg.Mongo.Database = v
	}
	if v := envStr("ADMIN_EMAIL"); v != "" {
		cfg.Admin.Email = v
	}
	if v := envStr("ADMIN_PASSWORD"); v != "" {
		cfg.Admin.Password = v
	}
	if v := envStr("JWT_SECRET"); v != "" {
		cfg.JWTSecret = v
	}
	if v, ok := envInt("JWT_EXPIRE_DAYS"); ok {
		cfg.TokenDays = v
	}
	if v := envStr("FRONTEND_URL"); v != "" {
		cfg.AllowedOrigins = appendUnique(cfg.AllowedOrigins, v)
	}
	if v := envStr("ALLOWED_ORIGINS"); v != "" {
		for _, origin := range strings.Split(v, ",") {
			cfg.AllowedOrigins = appendUnique(cfg.AllowedOrigins, origin)
		}
	}
}

// IsDev reports whether the app runs in a development-like environment.
func (c *AppConfig) IsDev() bool {
	return !strings.EqualFold(strings.TrimSpace(c.Env), "production")
}

func envStr(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func envInt(key string) (int, bool) {
	raw := envStr(key)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func appendUnique(list []string, v string) []string {
	v = strings.TrimSpace(v)
	if v == "" {
		return list
	}
	for _, existing := range list {
		if existing == v {
			return list
		}
	}
	return append(list, v)
}
