// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/justinas/alice"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/xmidt-org/autoresolve/ingest"
	"github.com/xmidt-org/candlelight"
	"github.com/xmidt-org/httpaux"
	"github.com/xmidt-org/httpaux/recovery"
	"github.com/xmidt-org/touchstone/touchhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const readHeaderTimeout = 10 * time.Second

type RoutesIn struct {
	fx.In
	PrimaryMetrics touchhttp.ServerInstrumenter `name:"servers.primary.metrics"`
	Tracing        candlelight.Tracing
	Gatherer       prometheus.Gatherer
	Server         ServerConfig
	Events         ingest.Handler
}

type RoutesOut struct {
	fx.Out
	Handler http.Handler `name:"servers.primary.handler"`
}

func provideRoutes() fx.Option {
	return fx.Provide(
		func(in RoutesIn) RoutesOut {
			return RoutesOut{
				Handler: BuildRoutes(in),
			}
		},
	)
}

// BuildRoutes lays out the events, health and metrics routes.
func BuildRoutes(in RoutesIn) http.Handler {
	router := mux.NewRouter()

	router.Handle(in.Server.HealthPath, httpaux.ConstantHandler{
		StatusCode: http.StatusOK,
	}).Methods(http.MethodGet)
	router.Handle(in.Server.MetricsPath,
		promhttp.HandlerFor(in.Gatherer, promhttp.HandlerOpts{}),
	).Methods(http.MethodGet)

	api := router.PathPrefix("/" + apiBase).Subrouter()
	options := []otelmux.Option{
		otelmux.WithTracerProvider(in.Tracing.TracerProvider()),
		otelmux.WithPropagators(in.Tracing.Propagator()),
	}
	api.Use(otelmux.Middleware("server_primary", options...),
		mux.MiddlewareFunc(candlelight.EchoFirstTraceNodeInfo(in.Tracing, false)))
	api.Handle("/events", in.PrimaryMetrics.Then(in.Events)).Methods(http.MethodPost)

	return alice.New(
		alice.Constructor(recovery.Middleware(recovery.WithStatusCode(555))),
	).Then(router)
}

type ServerIn struct {
	fx.In
	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *zap.Logger
	Server     ServerConfig
	Handler    http.Handler `name:"servers.primary.handler"`
}

func runServer(in ServerIn) {
	server := &http.Server{
		Addr:              in.Server.Address,
		Handler:           in.Handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	in.Lifecycle.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			l, err := net.Listen("tcp", server.Addr)
			if err != nil {
				return err
			}
			in.Logger.Info("server listening", zap.String("address", l.Addr().String()))
			go func() {
				err := server.Serve(l)
				if err != nil && !errors.Is(err, http.ErrServerClosed) {
					in.Logger.Error("server stopped unexpectedly", zap.Error(err))
					_ = in.Shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: server.Shutdown,
	})
}
