// Package config loads application configuration from environment variables.
package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds all settings the server needs at boot time.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	Auth   AuthConfig
	Redis  RedisConfig
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Addr string `mapstructure:"server_addr"`
}

// DBConfig contains database connection settings.
// Driver selects between the MySQL and PostgreSQL gorm drivers.
type DBConfig struct {
	Driver        string `mapstructure:"db_driver"`
	User          string `mapstructure:"db_user"`
	Password      string `mapstructure:"db_password"`
	Host          string `mapstructure:"db_host"`
	Port          string `mapstructure:"db_port"`
	Name          string `mapstructure:"db_name"`
	RunMigrations bool   `mapstructure:"run_migrations"`
}

// AuthConfig contains token signing settings.
type AuthConfig struct {
	JWTSecret string        `mapstructure:"jwt_secret"`
	TokenTTL  time.Duration `mapstructure:"jwt_ttl"`
}

// RedisConfig contains cache connection settings.
type RedisConfig struct {
	Host     string `mapstructure:"redis_host"`
	Port     string `mapstructure:"redis_port"`
	Password string `mapstructure:"redis_password"`
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server_addr", ":8080")
	v.SetDefault("db_driver", "mysql")
	v.SetDefault("db_host", "127.0.0.1")
	v.SetDefault("db_port", "3306")
	v.SetDefault("jwt_ttl", time.Hour)
	v.SetDefault("redis_port", "6379")
	v.SetDefault("run_migrations", false)

	v.AutomaticEnv()
	// AutomaticEnv alone does not make Unmarshal see env-only keys,
	// so bind each key explicitly.
	for _, key := range []string{
		"server_addr",
		"db_driver", "db_user", "db_password", "db_host", "db_port", "db_name",
		"run_migrations",
		"jwt_secret", "jwt_ttl",
		"redis_host", "redis_port", "redis_password",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(&cfg.Server); err != nil {
		return nil, err
	}
	if err := v.Unmarshal(&cfg.DB); err != nil {
		return nil, err
	}
	if err := v.Unmarshal(&cfg.Auth); err != nil {
		return nil, err
	}
	if err := v.Unmarshal(&cfg.Redis); err != nil {
		return nil, err
	}
	return cfg, nil
}
