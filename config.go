// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"github.com/xmidt-org/autoresolve/apiclient"
	"github.com/xmidt-org/autoresolve/autoresolve"
	"github.com/xmidt-org/candlelight"
	"github.com/xmidt-org/touchstone"
	"go.uber.org/zap"
)

const (
	defaultIntervalSeconds = 60
	defaultServerAddress   = ":6600"
	defaultMetricsPath     = "/metrics"
	defaultHealthPath      = "/health"
)

// ServerConfig describes the HTTP server exposing the events, health and
// metrics routes.
type ServerConfig struct {
	Address     string `validate:"required"`
	MetricsPath string `validate:"required,startswith=/"`
	HealthPath  string `validate:"required,startswith=/"`
}

// Config is the immutable application configuration, built once at startup.
type Config struct {
	// Interval is the time between two expiration sweeps.
	Interval time.Duration `validate:"gt=0"`

	API    apiclient.Config
	Server ServerConfig
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("interval", defaultIntervalSeconds)
	v.SetDefault("api.port", apiclient.DefaultPort)
	v.SetDefault("api.timeout", "10s")
	v.SetDefault("server.address", defaultServerAddress)
	v.SetDefault("server.metricsPath", defaultMetricsPath)
	v.SetDefault("server.healthPath", defaultHealthPath)
}

// NewConfig reads the recognized keys out of viper and validates the result.
func NewConfig(v *viper.Viper) (Config, error) {
	interval, err := toSeconds(v.Get("interval"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid interval: %w", err)
	}

	port, err := cast.ToIntE(v.Get("api.port"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid api.port: %w", err)
	}

	timeout, err := cast.ToDurationE(v.Get("api.timeout"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid api.timeout: %w", err)
	}

	c := Config{
		Interval: interval,
		API: apiclient.Config{
			Host:     cast.ToString(v.Get("api.host")),
			Port:     port,
			User:     cast.ToString(v.Get("api.user")),
			Password: cast.ToString(v.Get("api.password")),
			Timeout:  timeout,
			InMem:    cast.ToBool(v.Get("api.inmem")),
		},
		Server: ServerConfig{
			Address:     cast.ToString(v.Get("server.address")),
			MetricsPath: cast.ToString(v.Get("server.metricsPath")),
			HealthPath:  cast.ToString(v.Get("server.healthPath")),
		},
	}

	if err := validator.New().Struct(c); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return c, nil
}

// toSeconds accepts either a bare number of seconds or a duration string.
func toSeconds(raw interface{}) (time.Duration, error) {
	if s, ok := raw.(string); ok && strings.ContainsAny(s, "hmsuµ") {
		return cast.ToDurationE(s)
	}
	n, err := cast.ToInt64E(raw)
	if err != nil {
		return 0, err
	}
	return time.Duration(n) * time.Second, nil
}

func provideSweeperConfig(c Config, logger *zap.Logger) autoresolve.SweeperConfig {
	return autoresolve.SweeperConfig{
		Interval: c.Interval,
		Logger:   logger,
	}
}

func provideTracingConfig(v *viper.Viper) (candlelight.Config, error) {
	var config candlelight.Config
	err := v.UnmarshalKey("tracing", &config)
	if err != nil {
		return candlelight.Config{}, err
	}
	config.ApplicationName = applicationName
	return config, nil
}

func provideMetricsConfig(v *viper.Viper) (touchstone.Config, error) {
	var config touchstone.Config
	err := v.UnmarshalKey("prometheus", &config)
	if err != nil {
		return touchstone.Config{}, err
	}
	return config, nil
}
