package config

import (
	"fmt"
	"time"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Server      ServerConfig      `yaml:"server"      validate:"required"`
	Logger      LoggerConfig      `yaml:"logger"      validate:"required"`
	Gin         GinConfig         `yaml:"gin"         validate:"required"`
	Upstream    UpstreamConfig    `yaml:"upstream"    validate:"required"`
	Credentials CredentialsConfig `yaml:"credentials" validate:"required"`
	Telegram    TelegramConfig    `yaml:"telegram"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:"127.0.0.1:8090" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"            validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"30s"            validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"            validate:"gt=0"`
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog" validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info" validate:"required,oneof=debug info warn error"`
}

func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"release" validate:"required,oneof=debug release test"`
}

// UpstreamConfig points at the remote booking API this gateway consumes.
// Timeout bounds every upstream call.
type UpstreamConfig struct {
	BaseURL       string        `yaml:"base_url"       env:"UPSTREAM_BASE_URL"       env-default:"http://127.0.0.1:5000" validate:"required,url"`
	Timeout       time.Duration `yaml:"timeout"        env:"UPSTREAM_TIMEOUT"        env-default:"15s"                   validate:"gt=0"`
	RetryAttempts int           `yaml:"retry_attempts" env:"UPSTREAM_RETRY_ATTEMPTS" env-default:"3"                     validate:"min=1"`
	RetryDelay    time.Duration `yaml:"retry_delay"    env:"UPSTREAM_RETRY_DELAY"    env-default:"300ms"                 validate:"gt=0"`
	RetryBackoff  float64       `yaml:"retry_backoff"  env:"UPSTREAM_RETRY_BACKOFF"  env-default:"2"                     validate:"min=1"`
}

type CredentialsConfig struct {
	Path string `yaml:"path" env:"CREDENTIALS_PATH" env-default:"eventdesk.db" validate:"required"`
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token" env:"TELEGRAM_BOT_TOKEN" env-default:""`
	ChatID   int64  `yaml:"chat_id"   env:"TELEGRAM_CHAT_ID"   env-default:"0"`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
