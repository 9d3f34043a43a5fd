package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application
type Config struct {
	Server struct {
		Port            string        `yaml:"port"`
		GinMode         string        `yaml:"gin_mode"`
		Environment     string        `yaml:"environment"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`

	CORS struct {
		AllowOrigins string `yaml:"allow_origins"`
		AllowMethods string `yaml:"allow_methods"`
		AllowHeaders string `yaml:"allow_headers"`
	} `yaml:"cors"`

	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`

	Storage struct {
		Type             string        `yaml:"type"`
		SnapshotPath     string        `yaml:"snapshot_path"`
		Autoload         bool          `yaml:"autoload"`
		AutosaveInterval time.Duration `yaml:"autosave_interval"`
	} `yaml:"storage"`

	File struct {
		DataDir string `yaml:"data_dir"`
	} `yaml:"file"`

	Minio struct {
		Endpoint  string `yaml:"endpoint"`
		AccessKey string `yaml:"access_key"`
		SecretKey string `yaml:"secret_key"`
		Bucket    string `yaml:"bucket"`
		UseSSL    bool   `yaml:"use_ssl"`
	} `yaml:"minio"`

	DB struct {
		Host     string `yaml:"host"`
		Port     string `yaml:"port"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		Name     string `yaml:"name"`
		SSLMode  string `yaml:"sslmode"`
	} `yaml:"db"`

	Firestore struct {
		ProjectID       string `yaml:"project_id"`
		Collection      string `yaml:"collection"`
		CredentialsFile string `yaml:"credentials_file"`
	} `yaml:"firestore"`

	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
}

// Load reads .env, then the YAML file named by CONFIG_FILE if set, then
// environment variables. Later sources override earlier ones.
func Load() (*Config, error) {
	_ = godotenv.Load()

	config := Default()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := config.applyFile(path); err != nil {
			return nil, err
		}
	}

	config.applyEnv()
	return config, nil
}

// Default returns the built-in configuration
func Default() *Config {
	config := &Config{}

	config.Server.Port = "8080"
	config.Server.GinMode = "debug"
	config.Server.Environment = "development"
	config.Server.ShutdownTimeout = 10 * time.Second

	config.CORS.AllowOrigins = "*"
	config.CORS.AllowMethods = "GET,POST,PUT,PATCH,DELETE,HEAD,OPTIONS"
	config.CORS.AllowHeaders = "Origin,Content-Length,Content-Type,Authorization"

	config.Log.Level = "info"

	config.Storage.Type = "file"
	config.Storage.SnapshotPath = "default"

	config.File.DataDir = "./data"

	config.Minio.Bucket = "turnier"

	config.DB.Host = "localhost"
	config.DB.Port = "5432"
	config.DB.User = "turnier"
	config.DB.Password = "turnier_password"
	config.DB.Name = "turnier_db"
	config.DB.SSLMode = "disable"

	config.Firestore.Collection = "snapshots"

	config.Metrics.Enabled = true
	config.Metrics.Path = "/metrics"

	return config
}

func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to unmarshal config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.Server.Port = getEnv("PORT", c.Server.Port)
	c.Server.GinMode = getEnv("GIN_MODE", c.Server.GinMode)
	c.Server.Environment = getEnv("ENVIRONMENT", c.Server.Environment)
	c.Server.ShutdownTimeout = getEnvAsDuration("SHUTDOWN_TIMEOUT", c.Server.ShutdownTimeout)

	c.CORS.AllowOrigins = getEnv("CORS_ALLOW_ORIGINS", c.CORS.AllowOrigins)
	c.CORS.AllowMethods = getEnv("CORS_ALLOW_METHODS", c.CORS.AllowMethods)
	c.CORS.AllowHeaders = getEnv("CORS_ALLOW_HEADERS", c.CORS.AllowHeaders)

	c.Log.Level = getEnv("LOG_LEVEL", c.Log.Level)

	c.Storage.Type = getEnv("STORAGE_TYPE", c.Storage.Type)
	c.Storage.SnapshotPath = getEnv("SNAPSHOT_PATH", c.Storage.SnapshotPath)
	c.Storage.Autoload = getEnvAsBool("AUTOLOAD", c.Storage.Autoload)
	c.Storage.AutosaveInterval = getEnvAsDuration("AUTOSAVE_INTERVAL", c.Storage.AutosaveInterval)

	c.File.DataDir = getEnv("DATA_DIR", c.File.DataDir)

	c.Minio.Endpoint = getEnv("MINIO_ENDPOINT", c.Minio.Endpoint)
	c.Minio.AccessKey = getEnv("MINIO_ACCESS_KEY", c.Minio.AccessKey)
	c.Minio.SecretKey = getEnv("MINIO_SECRET_KEY", c.Minio.SecretKey)
	c.Minio.Bucket = getEnv("MINIO_BUCKET", c.Minio.Bucket)
	c.Minio.UseSSL = getEnvAsBool("MINIO_USE_SSL", c.Minio.UseSSL)

	c.DB.Host = getEnv("DB_HOST", c.DB.Host)
	c.DB.Port = getEnv("DB_PORT", c.DB.Port)
	c.DB.User = getEnv("DB_USER", c.DB.User)
	c.DB.Password = getEnv("DB_PASSWORD", c.DB.Password)
	c.DB.Name = getEnv("DB_NAME", c.DB.Name)
	c.DB.SSLMode = getEnv("DB_SSLMODE", c.DB.SSLMode)

	c.Firestore.ProjectID = getEnv("FIRESTORE_PROJECT_ID", c.Firestore.ProjectID)
	c.Firestore.Collection = getEnv("FIRESTORE_COLLECTION", c.Firestore.Collection)
	c.Firestore.CredentialsFile = getEnv("FIRESTORE_CREDENTIALS_FILE", c.Firestore.CredentialsFile)

	c.Metrics.Enabled = getEnvAsBool("METRICS_ENABLED", c.Metrics.Enabled)
	c.Metrics.Path = getEnv("METRICS_PATH", c.Metrics.Path)
}

// GetDatabaseURL returns the database connection URL
func (c *Config) GetDatabaseURL() string {
	return "postgres://" + c.DB.User + ":" + c.DB.Password + "@" + c.DB.Host + ":" + c.DB.Port + "/" + c.DB.Name + "?sslmode=" + c.DB.SSLMode
}

// AllowOrigins splits the CORS origin list
func (c *Config) AllowOrigins() []string {
	return splitList(c.CORS.AllowOrigins)
}

// AllowMethods splits the CORS method list
func (c *Config) AllowMethods() []string {
	return splitList(c.CORS.AllowMethods)
}

// AllowHeaders splits the CORS header list
func (c *Config) AllowHeaders() []string {
	return splitList(c.CORS.AllowHeaders)
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

// getEnvAsDuration accepts Go durations ("30s") or plain seconds
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.ParseInt(value, 10, 64); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}
