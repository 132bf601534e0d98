// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package ingest

import (
	"context"
	"net/http"

	"github.com/xmidt-org/autoresolve/model"
)

type recordingStasher struct {
	paths []string
}

func newRecordingStasher() *recordingStasher {
	return &recordingStasher{}
}

func (r *recordingStasher) PushStash(_ context.Context, stash model.Stash) (int, error) {
	r.paths = append(r.paths, stash.Path)
	return http.StatusCreated, nil
}
