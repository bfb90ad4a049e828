// Package config reads server settings from the environment.
package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type ServerConfig struct {
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`

	// TickIntervalMS is the round-timer polling interval. Resolution
	// may lag a round's deadline by up to one tick.
	TickIntervalMS int `env:"TICK_INTERVAL_MS" envDefault:"1000"`

	// EventBuffer is the per-subscriber event queue depth; a consumer
	// further behind than this loses its oldest events.
	EventBuffer int `env:"EVENT_BUFFER" envDefault:"64"`
}

func (c ServerConfig) TickInterval() time.Duration {
	return time.Duration(c.TickIntervalMS) * time.Millisecond
}

type LogConfig struct {
	Level       string `env:"LOG_LEVEL" envDefault:"info"`
	Pretty      bool   `env:"LOG_PRETTY" envDefault:"false"`
	SampleEvery int    `env:"LOG_SAMPLE_EVERY" envDefault:"0"`
	File        string `env:"LOG_FILE"`
	MaxMB       int    `env:"LOG_MAX_MB" envDefault:"10"`
}

// AppConfig bundles everything main needs to boot.
type AppConfig struct {
	Server ServerConfig
	Log    LogConfig
}

func LoadServer() (ServerConfig, error) {
	var cfg ServerConfig
	err := env.Parse(&cfg)
	return cfg, err
}

func LoadLog() (LogConfig, error) {
	var cfg LogConfig
	err := env.Parse(&cfg)
	return cfg, err
}

func LoadApp() (AppConfig, error) {
	serverCfg, err := LoadServer()
	if err != nil {
		return AppConfig{}, err
	}
	logCfg, err := LoadLog()
	if err != nil {
		return AppConfig{}, err
	}
	return AppConfig{Server: serverCfg, Log: logCfg}, nil
}
