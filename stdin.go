// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/xmidt-org/autoresolve/apiclient"
	"github.com/xmidt-org/autoresolve/autoresolve"
	"go.uber.org/zap"
)

// runStdin is the pipe mode: a single event is read from in, handled and
// its outcome printed to out. No sweeper runs in this mode.
func runStdin(ctx context.Context, config Config, logger *zap.Logger, in io.Reader, out io.Writer) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("failed to read event from stdin: %w", err)
	}

	var stasher apiclient.Stasher
	if config.API.Configured() {
		api, err := newAPI(config.API, logger, nil)
		if err != nil {
			return err
		}
		stasher = api
	}

	h := autoresolve.NewHandler(autoresolve.HandlerConfig{Logger: logger}, nil, stasher)
	outcome := h.HandleRaw(ctx, data)
	_, err = fmt.Fprintln(out, outcome.String())
	return err
}
