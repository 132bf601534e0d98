// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package autoresolve

import (
	"github.com/xmidt-org/autoresolve/apiclient"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type handlerIn struct {
	fx.In

	Logger   *zap.Logger
	Measures Measures
	API      apiclient.API `optional:"true"`
}

type sweeperIn struct {
	fx.In

	Config   SweeperConfig
	Measures Measures
	API      apiclient.API
}

// ProvideHandler provides the event Handler. The monitoring API is optional:
// without it every tagged event is reported as ErrAPINotConfigured.
func ProvideHandler() fx.Option {
	return fx.Options(
		ProvideMetrics(),
		fx.Provide(
			func(in handlerIn) *Handler {
				var s apiclient.Stasher
				if in.API != nil {
					s = in.API
				}
				return NewHandler(HandlerConfig{Logger: in.Logger}, &in.Measures, s)
			},
		),
	)
}

// ProvideSweeper provides the Sweeper and ties its loop to the application
// lifecycle. Only include it when the activation is Active.
func ProvideSweeper() fx.Option {
	return fx.Options(
		fx.Provide(
			func(in sweeperIn) (*Sweeper, error) {
				return NewSweeper(in.Config, &in.Measures, in.API)
			},
		),
		fx.Invoke(
			func(lc fx.Lifecycle, s *Sweeper) {
				lc.Append(fx.Hook{
					OnStart: s.Start,
					OnStop:  s.Stop,
				})
			},
		),
	)
}
