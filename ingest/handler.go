// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package ingest

import (
	"context"
	"net/http"

	kithttp "github.com/go-kit/kit/transport/http"
	"go.uber.org/zap"
)

// Handler accepts monitoring events over HTTP.
type Handler http.Handler

// HandlerConfig contains the optional settings of the events Handler.
type HandlerConfig struct {
	// MaxBodyBytes bounds the size of an inbound event.
	// (Optional). Defaults to 1MiB.
	MaxBodyBytes int64

	// Logger to be used by the handler.
	// (Optional). By default a no op logger will be used.
	Logger *zap.Logger
}

// NewHandler builds the HTTP handler feeding inbound events to h.
func NewHandler(config HandlerConfig, h EventHandler) Handler {
	if config.MaxBodyBytes == 0 {
		config.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if config.Logger == nil {
		config.Logger = zap.NewNop()
	}
	logger := config.Logger

	return kithttp.NewServer(
		newEventEndpoint(h),
		eventRequestDecoder(config.MaxBodyBytes),
		encodeOutcomeResponse,
		kithttp.ServerErrorEncoder(encodeError),
		kithttp.ServerBefore(func(ctx context.Context, r *http.Request) context.Context {
			logger.Debug("event received", zap.String("remoteAddr", r.RemoteAddr),
				zap.Int64("contentLength", r.ContentLength))
			return ctx
		}),
	)
}
