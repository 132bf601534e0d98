// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package ingest

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xmidt-org/autoresolve/apiclient"
	"github.com/xmidt-org/autoresolve/autoresolve"
	"github.com/xmidt-org/httpaux/erraux"
)

func TestEventRequestDecoder(t *testing.T) {
	tcs := []struct {
		desc         string
		body         string
		maxBodyBytes int64
		expectedCode int
	}{
		{
			desc: "Event",
			body: `{"client":{"name":"web1"}}`,
		},
		{
			desc: "Empty body",
		},
		{
			desc:         "Too large",
			body:         `{"client":{"name":"web1"}}`,
			maxBodyBytes: 4,
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.desc, func(t *testing.T) {
			assert := assert.New(t)
			r := httptest.NewRequest(http.MethodPost, "http://localhost/api/v1/events", strings.NewReader(tc.body))

			decoded, err := eventRequestDecoder(tc.maxBodyBytes)(context.Background(), r)

			if tc.expectedCode != 0 {
				var httpErr *erraux.Error
				assert.True(errors.As(err, &httpErr))
				assert.Equal(tc.expectedCode, httpErr.Code)
				return
			}
			assert.NoError(err)
			assert.Equal(&eventRequest{body: []byte(tc.body)}, decoded)
		})
	}
}

func TestEncodeOutcomeResponse(t *testing.T) {
	tcs := []struct {
		desc         string
		outcome      interface{}
		expectedBody string
		expectedErr  error
	}{
		{
			desc:         "No tag",
			outcome:      &autoresolve.Outcome{},
			expectedBody: `{"message":"event has no tag auto_resolve_time=X"}`,
		},
		{
			desc: "Stashed",
			outcome: &autoresolve.Outcome{
				Path:      "auto_resolve/web1_disk",
				ExpiresAt: 1700000120,
				Code:      http.StatusCreated,
			},
			expectedBody: `{"message":"stashed auto_resolve for event - code 201","path":"auto_resolve/web1_disk","expiresAt":1700000120,"code":201}`,
		},
		{
			desc: "Failed",
			outcome: &autoresolve.Outcome{
				Path:      "auto_resolve/web1_disk",
				ExpiresAt: 1700000120,
				Code:      http.StatusInternalServerError,
				Err:       apiclient.ErrNonSuccessResponse,
			},
			expectedBody: `{"message":"stashed auto_resolve for event - code 500","path":"auto_resolve/web1_disk","expiresAt":1700000120,"code":500,"error":"monitoring API responded with a non-success status code"}`,
		},
		{
			desc:        "Wrong type",
			outcome:     "nope",
			expectedErr: errCasting,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.desc, func(t *testing.T) {
			assert := assert.New(t)
			recorder := httptest.NewRecorder()

			err := encodeOutcomeResponse(context.Background(), recorder, tc.outcome)

			if tc.expectedErr != nil {
				assert.ErrorIs(err, tc.expectedErr)
				return
			}
			assert.NoError(err)
			assert.Equal(http.StatusOK, recorder.Code)
			assert.Equal("application/json", recorder.Header().Get("Content-Type"))
			assert.JSONEq(tc.expectedBody, recorder.Body.String())
		})
	}
}

func TestEncodeError(t *testing.T) {
	tcs := []struct {
		desc         string
		err          error
		expectedCode int
	}{
		{
			desc:         "Bad request",
			err:          badRequest(errReadingBody),
			expectedCode: http.StatusBadRequest,
		},
		{
			desc:         "Unknown",
			err:          errors.New("boom"),
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.desc, func(t *testing.T) {
			assert := assert.New(t)
			recorder := httptest.NewRecorder()
			encodeError(context.Background(), tc.err, recorder)
			assert.Equal(tc.expectedCode, recorder.Code)
			assert.Equal(tc.err.Error(), recorder.Header().Get(ErrorHeaderKey))
		})
	}
}

func TestHandler(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	api := newRecordingStasher()
	h := NewHandler(HandlerConfig{}, autoresolve.NewHandler(autoresolve.HandlerConfig{}, nil, api))

	recorder := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "http://localhost/api/v1/events", strings.NewReader(
		`{"client":{"name":"web1"},"check":{"name":"disk","tags":["auto_resolve_time=120"]}}`))
	h.ServeHTTP(recorder, r)

	assert.Equal(http.StatusOK, recorder.Code)
	assert.Contains(recorder.Body.String(), `"message":"stashed auto_resolve for event - code 201"`)
	require.Len(api.paths, 1)
	assert.Equal("auto_resolve/web1_disk", api.paths[0])

	recorder = httptest.NewRecorder()
	r = httptest.NewRequest(http.MethodPost, "http://localhost/api/v1/events", strings.NewReader(`garbage`))
	h.ServeHTTP(recorder, r)

	assert.Equal(http.StatusOK, recorder.Code)
	assert.JSONEq(`{"message":"event has no tag auto_resolve_time=X"}`, recorder.Body.String())
	assert.Len(api.paths, 1)
}
