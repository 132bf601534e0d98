// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package ingest

import (
	"context"

	"github.com/go-kit/kit/endpoint"
	"github.com/xmidt-org/autoresolve/autoresolve"
)

// EventHandler processes one raw event and acknowledges it. Handling
// failures are part of the outcome, never returned.
type EventHandler interface {
	HandleRaw(ctx context.Context, data []byte) autoresolve.Outcome
}

type eventRequest struct {
	body []byte
}

func newEventEndpoint(h EventHandler) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		r, ok := request.(*eventRequest)
		if !ok {
			return nil, errCasting
		}
		outcome := h.HandleRaw(ctx, r.body)
		return &outcome, nil
	}
}
