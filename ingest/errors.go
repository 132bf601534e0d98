// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package ingest

import (
	"errors"
	"net/http"

	"github.com/xmidt-org/httpaux/erraux"
)

var (
	errReadingBody  = errors.New("failed to read event body")
	errBodyTooLarge = errors.New("event body exceeds the size limit")
	errCasting      = errors.New("unexpected value type")
)

func badRequest(err error) error {
	return &erraux.Error{
		Err:  err,
		Code: http.StatusBadRequest,
	}
}
