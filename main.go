// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/xmidt-org/autoresolve/autoresolve"
	"github.com/xmidt-org/autoresolve/ingest"
	"github.com/xmidt-org/candlelight"
	"github.com/xmidt-org/touchstone"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

const (
	applicationName = "autoresolve"
	apiBase         = "api/v1"
)

var (
	GitCommit = "undefined"
	Version   = "undefined"
	BuildTime = "undefined"
)

func main() {
	v, fs, logger, err := setup(os.Args[1:])
	switch {
	case errors.Is(err, pflag.ErrHelp):
		return
	case err != nil:
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	config, err := NewConfig(v)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if pipe, _ := fs.GetBool("stdin"); pipe {
		err = runStdin(context.Background(), config, logger, os.Stdin, os.Stdout)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	app := fx.New(provideApp(config, v, logger))

	switch err := app.Err(); {
	case err == nil:
		app.Run()
	default:
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

// provideApp assembles the application. Whether the expiration sweeper
// exists at all is decided here, once, from the API configuration.
func provideApp(config Config, v *viper.Viper, logger *zap.Logger) fx.Option {
	options := []fx.Option{
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger}
		}),
		fx.Supply(logger, v, config, config.API, config.Server),
		fx.Provide(
			provideSweeperConfig,
			provideMetricsConfig,
			provideTracingConfig,
			candlelight.New,
		),
		touchstone.Provide(),
		provideMetrics(),
		autoresolve.ProvideHandler(),
		ingest.Provide(),
		provideRoutes(),
		fx.Invoke(runServer),
	}

	activation := autoresolve.ActivationFor(config.API)
	if activation == autoresolve.Active {
		options = append(options, provideAPI(), autoresolve.ProvideSweeper())
	} else {
		logger.Info("No API access, deactivating TTL expiration loop")
	}
	logger.Info("auto_resolve sweeper activation", zap.Stringer("activation", activation),
		zap.Duration("interval", config.Interval))

	return fx.Options(options...)
}
