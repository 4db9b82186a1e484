package config

import (
	"fmt"
	"time"
)

// Config is the application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis_service"`
	Auth     AuthConfig     `mapstructure:"auth"`
	CORS     CORSConfig     `mapstructure:"cors"`
	Log      LogConfig      `mapstructure:"log"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Host               string `mapstructure:"host"`
	Port               int    `mapstructure:"port"`
	ProductionMode     bool   `mapstructure:"production_mode"`
	ExposeErrorDetails bool   `mapstructure:"expose_error_details"`
}

// GetAddress returns host:port for the listener.
func (s *ServerConfig) GetAddress() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig selects the relational store.
// Driver is "sqlite" (Path is used) or "postgres" (DSN is used).
type DatabaseConfig struct {
	Driver       string `mapstructure:"driver"`
	Path         string `mapstructure:"path"`
	DSN          string `mapstructure:"dsn"`
	AutoMigrate  bool   `mapstructure:"auto_migrate"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
	LogLevel     string `mapstructure:"log_level"`
}

// RedisConfig configures the optional lookup cache.
type RedisConfig struct {
	Enabled         bool   `mapstructure:"enabled"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	DB              int    `mapstructure:"db"`
	Password        string `mapstructure:"password"`
	KeyPrefix       string `mapstructure:"key_prefix"`
	NamesTTLSeconds int    `mapstructure:"names_ttl_seconds"`
}

// GetAddress returns the Redis address.
func (r *RedisConfig) GetAddress() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// GetNamesTTL returns how long a cached names projection stays valid.
func (r *RedisConfig) GetNamesTTL() time.Duration {
	return time.Duration(r.NamesTTLSeconds) * time.Second
}

// AuthConfig holds credential hashing settings.
type AuthConfig struct {
	BcryptCost int `mapstructure:"bcrypt_cost"`
}

// CORSConfig holds cross-origin settings.
type CORSConfig struct {
	Origins          []string `mapstructure:"origins"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	AllowMethods     []string `mapstructure:"allow_methods"`
	AllowHeaders     []string `mapstructure:"allow_headers"`
}

// LogConfig selects log level and output format.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}
