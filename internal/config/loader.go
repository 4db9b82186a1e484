package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

// EnvPrefix prefixes every environment override, e.g. PROJTRACK_SERVER_PORT.
const EnvPrefix = "PROJTRACK"

// LoadConfig loads configuration from configFile, or from config.yaml in . or ./config
// when configFile is empty. A missing default file is not an error; every key then
// comes from defaults and the environment.
func LoadConfig(configFile string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	v := viper.New()
	registerDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	setDefaults(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// registerDefaults makes every key known to viper so environment overrides apply
// even when the config file omits them.
func registerDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.production_mode", false)
	v.SetDefault("server.expose_error_details", true)

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.path", "./database/projtrack.db")
	v.SetDefault("database.dsn", "")
	v.SetDefault("database.auto_migrate", true)
	v.SetDefault("database.max_open_conns", 0)
	v.SetDefault("database.max_idle_conns", 0)
	v.SetDefault("database.log_level", "silent")

	v.SetDefault("redis_service.enabled", false)
	v.SetDefault("redis_service.host", "localhost")
	v.SetDefault("redis_service.port", 6379)
	v.SetDefault("redis_service.db", 0)
	v.SetDefault("redis_service.password", "")
	v.SetDefault("redis_service.key_prefix", "projtrack:")
	v.SetDefault("redis_service.names_ttl_seconds", 300)

	v.SetDefault("auth.bcrypt_cost", bcrypt.DefaultCost)

	v.SetDefault("cors.origins", []string{"*"})
	v.SetDefault("cors.allow_credentials", false)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}

// setDefaults fills values that depend on other settings.
func setDefaults(cfg *Config) {
	if cfg.Database.MaxOpenConns == 0 {
		if cfg.Database.Driver == "sqlite" {
			// a single writer keeps sqlite transactions from tripping over each other
			cfg.Database.MaxOpenConns = 1
		} else {
			cfg.Database.MaxOpenConns = 10
		}
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = cfg.Database.MaxOpenConns
	}
	if cfg.CORS.AllowMethods == nil {
		cfg.CORS.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	}
	if cfg.CORS.AllowHeaders == nil {
		cfg.CORS.AllowHeaders = []string{"*"}
	}
}

// validateConfig rejects settings the server cannot start with.
func validateConfig(cfg *Config) error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", cfg.Server.Port)
	}

	switch cfg.Database.Driver {
	case "sqlite":
		if cfg.Database.Path == "" {
			return errors.New("database.path is required for sqlite")
		}
		if !isInMemory(cfg.Database.Path) {
			dbDir := filepath.Dir(cfg.Database.Path)
			if _, err := os.Stat(dbDir); os.IsNotExist(err) {
				if err := os.MkdirAll(dbDir, 0755); err != nil {
					return fmt.Errorf("create database directory: %w", err)
				}
			}
		}
	case "postgres":
		if cfg.Database.DSN == "" {
			return errors.New("database.dsn is required for postgres")
		}
	default:
		return fmt.Errorf("unsupported database driver: %q", cfg.Database.Driver)
	}

	if cfg.Auth.BcryptCost < bcrypt.MinCost || cfg.Auth.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.bcrypt_cost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}

	if cfg.Redis.Enabled && cfg.Redis.NamesTTLSeconds <= 0 {
		return errors.New("redis_service.names_ttl_seconds must be positive")
	}

	if _, err := logrus.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	if cfg.Log.Format != "json" && cfg.Log.Format != "text" {
		return fmt.Errorf("invalid log format: %q", cfg.Log.Format)
	}

	return nil
}

func isInMemory(path string) bool {
	return path == ":memory:" || strings.HasPrefix(path, "file:")
}
