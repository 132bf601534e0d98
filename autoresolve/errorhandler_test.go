// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package autoresolve

import (
	"testing"

	"emperror.dev/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogErrorHandler(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	core, logs := observer.New(zap.ErrorLevel)
	h := NewLogErrorHandler(zap.New(core))

	h.Handle(nil)
	h.Handle(errors.WithDetails(errors.New("resolve failed"), "path", "auto_resolve/web1_disk", "client", "web1"))

	entries := logs.All()
	require.Len(entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal("auto_resolve/web1_disk", fields["path"])
	assert.Equal("web1", fields["client"])
	assert.Equal("resolve failed", fields["error"])
}
