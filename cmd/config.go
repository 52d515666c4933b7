package main

import (
	"fmt"

	"github.com/lexnotes/journal/internal/app/article"
	articleusecase "github.com/lexnotes/journal/internal/app/article/usecase"
	"github.com/lexnotes/journal/internal/app/auth"
	"github.com/lexnotes/journal/internal/app/processing"
	"github.com/lexnotes/journal/internal/app/user"
	"github.com/lexnotes/journal/internal/infrastructure/docapi"
	"github.com/lexnotes/journal/internal/infrastructure/storage"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

type config struct {
	Port          string   `mapstructure:"port" json:"port"`
	DatabaseDSN   string   `mapstructure:"database_dsn" json:"database_dsn"`
	LogLevel      logLevel `mapstructure:"log_level" json:"log_level"`
	MaxBodySize   int64    `mapstructure:"max_body_size" json:"max_body_size"`
	RedisAddr     string   `mapstructure:"redis_addr" json:"redis_addr"`
	MigrationsDir string   `mapstructure:"migrations_dir" json:"migrations_dir"`

	User           user.Config            `mapstructure:"user" json:"user"`
	UserValidation user.ValidationConfig  `mapstructure:"user_validation" json:"user_validation"`
	Auth           auth.Config            `mapstructure:"auth" json:"auth"`
	Article        article.Config         `mapstructure:"article" json:"article"`
	Submission     articleusecase.Config  `mapstructure:"submission" json:"submission"`
	Storage        storage.Config         `mapstructure:"storage" json:"storage"`
	DocAPI         docapi.Config          `mapstructure:"docapi" json:"docapi"`
	Sweep          processing.SweepConfig `mapstructure:"sweep" json:"sweep"`
}

func loadConfig() config {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("config")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		panic(fmt.Errorf("fatal error config file: %w", err))
	}

	var cfg config
	if err := viper.Unmarshal(&cfg); err != nil {
		panic(fmt.Errorf("fatal error config file: %w", err))
	}
	if cfg.MigrationsDir == "" {
		cfg.MigrationsDir = "migrations"
	}

	return cfg
}

type logLevel string

const (
	logLevelDebug logLevel = "debug"
	logLevelInfo  logLevel = "info"
	logLevelWarn  logLevel = "warn"
	logLevelError logLevel = "error"
)

func (l logLevel) zeroLog() zerolog.Level {
	switch l {
	case logLevelDebug:
		return zerolog.DebugLevel
	case logLevelInfo:
		return zerolog.InfoLevel
	case logLevelWarn:
		return zerolog.WarnLevel
	case logLevelError:
		return zerolog.ErrorLevel

	default:
		return zerolog.InfoLevel
	}
}
