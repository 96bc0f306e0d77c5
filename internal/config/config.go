package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server       ServerConfig
	Storage      StorageConfig
	Database     DatabaseConfig
	Redis        RedisConfig
	JWT          JWTConfig
	App          AppConfig
	GeminiAPIKey string
}

type ServerConfig struct {
	Host         string
	Port         int
	Env          string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// StorageConfig selects the key-value backend state is mirrored into.
// Type is one of "file", "redis", "postgres".
type StorageConfig struct {
	Type string
	Path string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type JWTConfig struct {
	Secret    string
	ExpiryMin int
}

// AppConfig carries application-level knobs.
type AppConfig struct {
	Namespace string
}

// Load loads configuration from environment variables or .env file
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Try to read from .env file, but don't fail if it doesn't exist
	_ = viper.ReadInConfig()

	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("SERVER_PORT", 8080)
	viper.SetDefault("STORAGE_TYPE", "file")
	viper.SetDefault("STORAGE_PATH", "./data/state")
	viper.SetDefault("JWT_EXPIRY_MIN", 7*24*60)
	viper.SetDefault("APP_NAMESPACE", "passportpals")

	config := &Config{
		Server: ServerConfig{
			Host:         viper.GetString("SERVER_HOST"),
			Port:         viper.GetInt("SERVER_PORT"),
			Env:          viper.GetString("ENV"),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
		Storage: StorageConfig{
			Type: viper.GetString("STORAGE_TYPE"),
			Path: viper.GetString("STORAGE_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetInt("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			DBName:   viper.GetString("DB_NAME"),
			SSLMode:  viper.GetString("DB_SSL_MODE"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:    viper.GetString("JWT_SECRET"),
			ExpiryMin: viper.GetInt("JWT_EXPIRY_MIN"),
		},
		App: AppConfig{
			Namespace: viper.GetString("APP_NAMESPACE"),
		},
		GeminiAPIKey: viper.GetString("GEMINI_API_KEY"),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates critical configuration values
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if len(c.JWT.Secret) < 32 {
		return fmt.Errorf("JWT secret must be at least 32 characters")
	}
	switch c.Storage.Type {
	case "file":
		if c.Storage.Path == "" {
			return fmt.Errorf("storage path is required for file storage")
		}
	case "redis":
		if c.Redis.Host == "" {
			return fmt.Errorf("redis host is required for redis storage")
		}
	case "postgres":
		if c.Database.Host == "" || c.Database.User == "" || c.Database.DBName == "" {
			return fmt.Errorf("database host, user and name are required for postgres storage")
		}
	default:
		return fmt.Errorf("unknown storage type %q", c.Storage.Type)
	}
	return nil
}

// DSN returns PostgreSQL connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// Addr returns Redis address
func (c *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
