package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

type Config struct {
	LogLevel   string  `yaml:"log-level" env:"RPS_LOG_LEVEL" env-default:"info"`
	HTTPPort   string  `yaml:"http-port" env:"RPS_HTTP_PORT" env-default:"9090"`
	SocketPort string  `yaml:"socket-port" env:"RPS_SOCKET_PORT" env-default:"9091"`
	Storage    string  `yaml:"storage" env:"RPS_STORAGE" env-default:"memory"`
	Redis      Redis   `yaml:"redis"`
	Session    Session `yaml:"session"`
	Match      Match   `yaml:"match"`
}

type Redis struct {
	Host     string `yaml:"host" env:"RPS_REDIS_HOST" env-default:"localhost"`
	Port     string `yaml:"port" env:"RPS_REDIS_PORT" env-default:"6379"`
	Password string `yaml:"password" env:"RPS_REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"RPS_REDIS_DB" env-default:"0"`
}

// Session - applies to whichever storage holds the sessions.
type Session struct {
	TTL time.Duration `yaml:"ttl" env:"RPS_SESSION_TTL" env-default:"24h"`
}

type Match struct {
	DefaultTargetScore int   `yaml:"default-target-score" env:"RPS_DEFAULT_TARGET_SCORE" env-default:"3"`
	MaxTargetScore     int   `yaml:"max-target-score" env:"RPS_MAX_TARGET_SCORE" env-default:"10"`
	Seed               int64 `yaml:"seed" env:"RPS_SEED" env-default:"0"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load - reads the config file, applies env overrides and validates the result.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

func (that *Config) Validate() error {
	switch that.Storage {
	case StorageMemory, StorageRedis:
	default:
		return fmt.Errorf("unknown storage %q", that.Storage)
	}

	if that.Session.TTL < 0 {
		return fmt.Errorf("session ttl must not be negative, got %s", that.Session.TTL)
	}

	if that.Match.DefaultTargetScore <= 0 {
		return fmt.Errorf("default target score must be positive, got %d", that.Match.DefaultTargetScore)
	}

	if that.Match.MaxTargetScore > 0 && that.Match.DefaultTargetScore > that.Match.MaxTargetScore {
		return fmt.Errorf("default target score %d is above the max of %d",
			that.Match.DefaultTargetScore, that.Match.MaxTargetScore)
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
