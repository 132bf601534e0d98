// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xmidt-org/autoresolve/apiclient"
	"github.com/xmidt-org/autoresolve/apiclient/inmem"
	"github.com/xmidt-org/autoresolve/autoresolve"
	"github.com/xmidt-org/sallust"
)

func TestNewAPI(t *testing.T) {
	tcs := []struct {
		desc         string
		config       apiclient.Config
		expectInMem  bool
		expectClient bool
	}{
		{
			desc:        "In memory",
			config:      apiclient.Config{InMem: true},
			expectInMem: true,
		},
		{
			desc:        "In memory wins over host",
			config:      apiclient.Config{Host: "localhost", InMem: true},
			expectInMem: true,
		},
		{
			desc:         "HTTP client",
			config:       apiclient.Config{Host: "localhost"},
			expectClient: true,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.desc, func(t *testing.T) {
			assert := assert.New(t)
			api, err := newAPI(tc.config, sallust.Default(), nil)
			assert.NoError(err)
			_, isInMem := api.(*inmem.InMem)
			_, isClient := api.(*apiclient.BasicClient)
			assert.Equal(tc.expectInMem, isInMem)
			assert.Equal(tc.expectClient, isClient)
		})
	}
}

func TestNewAPIInMemSweeps(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	api, err := newAPI(apiclient.Config{InMem: true}, sallust.Default(), nil)
	require.NoError(err)

	h := autoresolve.NewHandler(autoresolve.HandlerConfig{}, nil, api)
	outcome := h.HandleRaw(context.Background(),
		[]byte(`{"client":{"name":"web1"},"check":{"name":"disk","tags":["auto_resolve_time=0"]}}`))
	require.NoError(outcome.Err)

	s, err := autoresolve.NewSweeper(autoresolve.SweeperConfig{}, nil, api)
	require.NoError(err)
	report, err := s.Sweep(context.Background())
	require.NoError(err)
	assert.Equal(1, report.Resolved)
	assert.Equal(1, report.Removed)
}
