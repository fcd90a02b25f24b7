package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application
type Config struct {
	Env Environment `yaml:"-"`

	// Server configuration
	ServerHost string `yaml:"server_host"`
	ServerPort string `yaml:"server_port"`

	// Database configuration
	DBDriver       string `yaml:"db_driver"`
	DBHost         string `yaml:"db_host"`
	DBPort         string `yaml:"db_port"`
	DBUser         string `yaml:"db_user"`
	DBPassword     string `yaml:"db_password"`
	DBName         string `yaml:"db_name"`
	DBSSLMode      string `yaml:"db_ssl_mode"`
	DBMaxOpenConns int    `yaml:"db_max_open_conns"`
	DBMaxIdleConns int    `yaml:"db_max_idle_conns"`

	// Redis configuration
	RedisURL      string `yaml:"redis_url"`
	RedisHost     string `yaml:"redis_host"`
	RedisPort     string `yaml:"redis_port"`
	RedisPassword string `yaml:"redis_password"`
	RedisDB       int    `yaml:"redis_db"`

	// JWT configuration
	JWTSecret string        `yaml:"jwt_secret"`
	TokenTTL  time.Duration `yaml:"token_ttl"`

	// Rate limits, per user per hour
	RecipeCreateLimit   int `yaml:"recipe_create_limit"`
	FavoriteToggleLimit int `yaml:"favorite_toggle_limit"`

	CORSOrigins []string `yaml:"cors_origins"`

	// Recipe image storage; empty bucket disables uploads
	S3Bucket  string `yaml:"s3_bucket"`
	AWSRegion string `yaml:"aws_region"`

	LogLevel string `yaml:"log_level"`
}

const defaultJWTSecret = "change-me-in-production"

// Default returns the configuration used when nothing else is provided
func Default() *Config {
	return &Config{
		Env:                 Development,
		ServerHost:          "0.0.0.0",
		ServerPort:          "8000",
		DBDriver:            "postgres",
		DBHost:              "localhost",
		DBPort:              "5432",
		DBUser:              "postgres",
		DBName:              "recipes",
		DBSSLMode:           "disable",
		DBMaxOpenConns:      25,
		DBMaxIdleConns:      25,
		RedisHost:           "localhost",
		RedisPort:           "6379",
		JWTSecret:           defaultJWTSecret,
		TokenTTL:            30 * time.Minute,
		RecipeCreateLimit:   30,
		FavoriteToggleLimit: 120,
		CORSOrigins:         []string{"http://localhost:5173", "http://localhost:3000"},
		LogLevel:            "info",
	}
}

// LoadConfig builds the configuration for the current environment. Later sources win:
// defaults, CONFIG_FILE (yaml), .env (development only), environment variables, secrets.
func LoadConfig() (*Config, error) {
	env := GetEnvironment()
	cfg := Default()
	cfg.Env = env

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadFile(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	if env == Development {
		// .env is optional
		_ = godotenv.Load()
	}

	if err := loadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to load %s configuration: %w", env, err)
	}

	// CI injects credentials as plain variables; elsewhere they come from Docker secrets
	if env != CI {
		loadSecrets(cfg)
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func loadFile(cfg *Config, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(content, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func loadEnv(cfg *Config) error {
	setString(&cfg.ServerHost, "SERVER_HOST")
	setString(&cfg.ServerPort, "SERVER_PORT")
	setString(&cfg.DBDriver, "DB_DRIVER")
	setString(&cfg.DBHost, "DB_HOST")
	setString(&cfg.DBPort, "DB_PORT")
	setString(&cfg.DBUser, "DB_USER")
	setString(&cfg.DBPassword, "DB_PASSWORD")
	setString(&cfg.DBName, "DB_NAME")
	setString(&cfg.DBSSLMode, "DB_SSL_MODE")
	setString(&cfg.RedisURL, "REDIS_URL")
	setString(&cfg.RedisHost, "REDIS_HOST")
	setString(&cfg.RedisPort, "REDIS_PORT")
	setString(&cfg.RedisPassword, "REDIS_PASSWORD")
	setString(&cfg.JWTSecret, "JWT_SECRET")
	setString(&cfg.S3Bucket, "S3_BUCKET_NAME")
	setString(&cfg.AWSRegion, "AWS_REGION")
	setString(&cfg.LogLevel, "LOG_LEVEL")

	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		cfg.CORSOrigins = splitList(v)
	}

	for key, dst := range map[string]*int{
		"DB_MAX_OPEN_CONNS":     &cfg.DBMaxOpenConns,
		"DB_MAX_IDLE_CONNS":     &cfg.DBMaxIdleConns,
		"REDIS_DB":              &cfg.RedisDB,
		"RECIPE_CREATE_LIMIT":   &cfg.RecipeCreateLimit,
		"FAVORITE_TOGGLE_LIMIT": &cfg.FavoriteToggleLimit,
	} {
		if err := setInt(dst, key); err != nil {
			return err
		}
	}

	if v := os.Getenv("TOKEN_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("TOKEN_TTL: %w", err)
		}
		cfg.TokenTTL = d
	}

	return nil
}

// loadSecrets overlays Docker secrets on top of the sensitive values
func loadSecrets(cfg *Config) {
	if v := readSecret("db_password"); v != "" {
		cfg.DBPassword = v
	}
	if v := readSecret("jwt_secret"); v != "" {
		cfg.JWTSecret = v
	}
	if v := readSecret("redis_password"); v != "" {
		cfg.RedisPassword = v
	}
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = n
	return nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Addr returns the host:port the HTTP server listens on
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

// DSN returns the connection string for the configured database driver
func (c *Config) DSN() string {
	if c.DBDriver == "sqlite" {
		return c.DBName
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}
