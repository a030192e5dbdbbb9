package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
)

const envPrefix = "BRIDGE_"

type Config struct {
	Primary   Primary         `koanf:"primary"`
	Server    ServerConfig    `koanf:"server"`
	Redeban   RedebanConfig   `koanf:"redeban"`
	Auth      AuthConfig      `koanf:"auth"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Logger    LoggerConfig    `koanf:"logger"`
}

type Primary struct {
	Env string `koanf:"env" validate:"required,oneof=development staging production"`
}

type ServerConfig struct {
	Port         string        `koanf:"port" validate:"required,numeric"`
	ReadTimeout  time.Duration `koanf:"read_timeout" validate:"required"`
	WriteTimeout time.Duration `koanf:"write_timeout" validate:"required"`
	IdleTimeout  time.Duration `koanf:"idle_timeout" validate:"required"`
	// CallTimeout bounds how long the HTTP channel waits for a pending call.
	CallTimeout time.Duration `koanf:"call_timeout" validate:"required"`
}

// RedebanConfig points the SDK adapter at the card API hosts.
type RedebanConfig struct {
	TestBaseURL string        `koanf:"test_base_url" validate:"required,url"`
	ProdBaseURL string        `koanf:"prod_base_url" validate:"required,url"`
	ConnTimeout time.Duration `koanf:"conn_timeout" validate:"required"`
}

// AuthConfig enables bearer token checks on the channel when JWTSecret is set.
type AuthConfig struct {
	JWTSecret string `koanf:"jwt_secret" validate:"omitempty,min=16"`
	Issuer    string `koanf:"issuer"`
}

type TelemetryConfig struct {
	ServiceName string `koanf:"service_name" validate:"required"`
	Endpoint    string `koanf:"endpoint" validate:"omitempty,url"`
}

type LoggerConfig struct {
	Level  string `koanf:"level" validate:"omitempty,oneof=debug info warn error DEBUG INFO WARN ERROR"`
	Format string `koanf:"format" validate:"omitempty,oneof=text json"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"primary.env":            "development",
		"server.port":            "8080",
		"server.read_timeout":    "10s",
		"server.write_timeout":   "40s",
		"server.idle_timeout":    "60s",
		"server.call_timeout":    "30s",
		"redeban.test_base_url":  "https://ccapi-stg.redeban.com",
		"redeban.prod_base_url":  "https://ccapi.redeban.com",
		"redeban.conn_timeout":   "25s",
		"telemetry.service_name": "redeban-payment-bridge",
		"logger.level":           "info",
		"logger.format":          "text",
	}
}

func LoadConfig() (*Config, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		logger.Error("failed to load default configuration", "error", err)
		return nil, err
	}

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, envPrefix)),
			"__",
			".",
		)
	}), nil)
	if err != nil {
		logger.Error("failed to load environment variables", "error", err)
		return nil, err
	}

	mainConfig := &Config{}

	err = k.Unmarshal("", mainConfig)
	if err != nil {
		logger.Error("could not unmarshal main config", "error", err)
		return nil, err
	}

	validate := validator.New()

	err = validate.Struct(mainConfig)
	if err != nil {
		logger.Error("config validation failed", "error", err)
		return nil, err
	}

	return mainConfig, nil
}
