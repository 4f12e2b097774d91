package config

import (
	"errors"
	"log/slog"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     Server
	Bun        BunConfig
	Redis      RedisConfig
	Sync       SyncConfig
	Quiz       QuizConfig
	Media      MediaConfig
	LoggerMode LoggerMode
}

type Server struct {
	Port        string
	Environment string
}

type BunConfig struct {
	DSN string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type SyncConfig struct {
	// OpTimeout bounds every single backing-store operation.
	OpTimeout time.Duration
	// MaxRetries bounds backoff retries for retryable sync stages.
	MaxRetries uint64
}

type QuizConfig struct {
	BaseURL    string
	Amount     int
	Difficulty string
}

type MediaConfig struct {
	BaseDir string
	BaseURL string
}

type LoggerMode struct {
	Development bool
	Prod        bool
	Level       string
}

func LoadConfig(filename string) (*viper.Viper, error) {
	v := viper.New()

	v.SetConfigName(filename)
	v.SetConfigType("yaml")
	v.AddConfigPath("config")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil, errors.New("config file not found")
		}
		return nil, err
	}
	return v, nil
}

func ParseConfig(v *viper.Viper) (*Config, error) {
	var c Config
	err := v.Unmarshal(&c)
	if err != nil {
		slog.Error("Unable to unmarshal config", "err", err)
		return nil, err
	}

	if c.Sync.OpTimeout <= 0 {
		c.Sync.OpTimeout = 10 * time.Second
	}
	if c.Sync.MaxRetries == 0 {
		c.Sync.MaxRetries = 3
	}
	if c.Quiz.Amount <= 0 || c.Quiz.Amount > 1000 {
		c.Quiz.Amount = 1000
	}
	return &c, nil
}
