package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel       string        `yaml:"log-level" env:"TRIQUI_LOG_LEVEL" env-default:"info"`
	LogFile        string        `yaml:"log-file" env:"TRIQUI_LOG_FILE" env-default:"triqui.log"`
	Theme          string        `yaml:"theme" env:"TRIQUI_THEME" env-default:"dark"`
	DownloadURL    string        `yaml:"download-url" env:"TRIQUI_DOWNLOAD_URL" env-default:"https://github.com/rocketscienceinc/triqui/releases/latest"`
	PublishTimeout time.Duration `yaml:"publish-timeout" env:"TRIQUI_PUBLISH_TIMEOUT" env-default:"2s"`
	Redis          Redis         `yaml:"redis"`
	Telemetry      Telemetry     `yaml:"telemetry"`
}

type Redis struct {
	Enabled bool   `yaml:"enabled" env:"TRIQUI_REDIS_ENABLED" env-default:"false"`
	Host    string `yaml:"host" env:"TRIQUI_REDIS_HOST" env-default:"localhost"`
	Port    string `yaml:"port" env:"TRIQUI_REDIS_PORT" env-default:"6379"`
	Channel string `yaml:"channel" env:"TRIQUI_REDIS_CHANNEL" env-default:"triqui:results"`
}

type Telemetry struct {
	Enabled     bool   `yaml:"enabled" env:"TRIQUI_TELEMETRY_ENABLED" env-default:"false"`
	ServiceName string `yaml:"service-name" env:"OTEL_SERVICE_NAME" env-default:"triqui"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load - reads the config file, falling back to environment variables and defaults
// when the file does not exist.
func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read config from env: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	if that.Host == "" || that.Port == "" {
		return ""
	}

	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
