// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	kithttp "github.com/go-kit/kit/transport/http"
	"github.com/xmidt-org/autoresolve/autoresolve"
)

const (
	// ErrorHeaderKey carries the error message of failed requests.
	ErrorHeaderKey = "X-Autoresolve-Error"

	// DefaultMaxBodyBytes bounds the size of an inbound event.
	DefaultMaxBodyBytes int64 = 1 << 20
)

// outcomeResponse is the JSON acknowledgment of a handled event.
type outcomeResponse struct {
	Message   string `json:"message"`
	Path      string `json:"path,omitempty"`
	ExpiresAt int64  `json:"expiresAt,omitempty"`
	Code      int    `json:"code,omitempty"`
	Error     string `json:"error,omitempty"`
}

func eventRequestDecoder(maxBodyBytes int64) kithttp.DecodeRequestFunc {
	return func(_ context.Context, r *http.Request) (interface{}, error) {
		var body io.Reader = r.Body
		if maxBodyBytes > 0 {
			body = io.LimitReader(r.Body, maxBodyBytes+1)
		}

		data, err := io.ReadAll(body)
		if err != nil {
			return nil, badRequest(errReadingBody)
		}
		if maxBodyBytes > 0 && int64(len(data)) > maxBodyBytes {
			return nil, badRequest(errBodyTooLarge)
		}

		return &eventRequest{body: data}, nil
	}
}

func encodeOutcomeResponse(_ context.Context, rw http.ResponseWriter, response interface{}) error {
	outcome, ok := response.(*autoresolve.Outcome)
	if !ok {
		return errCasting
	}

	resp := outcomeResponse{
		Message:   outcome.String(),
		Path:      outcome.Path,
		ExpiresAt: outcome.ExpiresAt,
		Code:      outcome.Code,
	}
	if outcome.Err != nil {
		resp.Error = outcome.Err.Error()
	}

	data, err := json.Marshal(&resp)
	if err != nil {
		return err
	}

	rw.Header().Set("Content-Type", "application/json")
	_, err = rw.Write(data)
	return err
}

func encodeError(_ context.Context, err error, w http.ResponseWriter) {
	w.Header().Set(ErrorHeaderKey, err.Error())
	var headerer kithttp.Headerer
	if errors.As(err, &headerer) {
		for k, values := range headerer.Headers() {
			for _, v := range values {
				w.Header().Add(k, v)
			}
		}
	}
	code := http.StatusInternalServerError
	var sc kithttp.StatusCoder
	if errors.As(err, &sc) {
		code = sc.StatusCode()
	}
	w.WriteHeader(code)
}
