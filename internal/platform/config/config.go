package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"virtual-pet/internal/platform/logger"
)

// Config del servicio, leída de variables de entorno.
type Config struct {
	Port         string        `env:"PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`

	DefaultPetName    string        `env:"DEFAULT_PET_NAME" envDefault:"Pico"`
	EffectRevertAfter time.Duration `env:"EFFECT_REVERT_AFTER" envDefault:"600ms"`
	DemoTickInterval  time.Duration `env:"DEMO_TICK_INTERVAL" envDefault:"1s"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	AppName   string `env:"APP_NAME" envDefault:"virtual-pet"`
}

// Load parsea el entorno.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func (c Config) Addr() string {
	return ":" + c.Port
}

func (c Config) Logger() logger.Logger {
	return logger.New(logger.Options{
		Level:  logger.ParseLevel(c.LogLevel),
		Format: logger.ParseFormat(c.LogFormat),
		App:    c.AppName,
	})
}
