// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/xmidt-org/autoresolve/apiclient"
	"github.com/xmidt-org/autoresolve/apiclient/inmem"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type apiIn struct {
	fx.In

	Config   apiclient.Config
	Logger   *zap.Logger
	Measures apiclient.Measures
}

// provideAPI provides the monitoring API implementation along with the
// request metrics of the HTTP client.
func provideAPI() fx.Option {
	return fx.Options(
		apiclient.ProvideMetrics(),
		fx.Provide(
			func(in apiIn) (apiclient.API, error) {
				return newAPI(in.Config, in.Logger, &in.Measures)
			},
		),
	)
}

// newAPI picks the in memory implementation when api.inmem is set and the
// HTTP client otherwise. measures may be nil.
func newAPI(c apiclient.Config, logger *zap.Logger, measures *apiclient.Measures) (apiclient.API, error) {
	if c.InMem {
		logger.Info("using in memory monitoring API implementation")
		return inmem.NewInMem(), nil
	}

	client, err := apiclient.NewBasicClient(apiclient.NewBasicClientConfig(c, logger), measures)
	if err != nil {
		return nil, err
	}
	logger.Info("using monitoring API", zap.String("address", c.Address()))
	return client, nil
}
