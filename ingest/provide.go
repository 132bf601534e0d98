// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package ingest

import (
	"github.com/xmidt-org/autoresolve/autoresolve"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type handlerIn struct {
	fx.In

	Logger  *zap.Logger
	Handler *autoresolve.Handler
}

// Provide builds the events handler for the primary router.
func Provide() fx.Option {
	return fx.Provide(
		func(in handlerIn) Handler {
			return NewHandler(HandlerConfig{Logger: in.Logger}, in.Handler)
		},
	)
}
