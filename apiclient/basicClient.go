// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package apiclient

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/xmidt-org/autoresolve/model"
	"github.com/xmidt-org/bascule/acquire"
	"github.com/xmidt-org/sallust"
	"go.uber.org/zap"
)

var (
	ErrAddressEmpty         = errors.New("monitoring API address is required")
	ErrStashPathEmpty       = errors.New("stash path is required")
	ErrStashNotFound        = errors.New("stash not found")
	ErrAuthAcquirerFailure  = errors.New("failed acquiring auth token")
	ErrBadRequest           = errors.New("monitoring API rejected the request as invalid")
	ErrFailedAuthentication = errors.New("failed to authenticate with the monitoring API")
	ErrNonSuccessResponse   = errors.New("monitoring API responded with a non-success status code")
)

var (
	errNewRequestFailure  = errors.New("failed creating an HTTP request")
	errDoRequestFailure   = errors.New("http client failed while sending request")
	errReadingBodyFailure = errors.New("failed while reading http response body")
	errJSONUnmarshal      = errors.New("failed unmarshaling JSON response payload")
	errJSONMarshal        = errors.New("failed marshaling JSON payload")
)

const (
	stashesAPIPath   = "/stashes"
	resolveAPIPath   = "/resolve"
	errWrappedFmt    = "%w: %s"
	errStatusCodeFmt = "%w: received status %v"

	// DefaultPort is the port the monitoring API listens on when none is configured.
	DefaultPort = 4567

	defaultTimeout = 10 * time.Second
)

// Config is the monitoring API section of the configuration.
type Config struct {
	// Host is the monitoring API host. Leaving it empty means the API is
	// not configured.
	Host string

	// Port is the monitoring API port.
	// (Optional) Defaults to 4567.
	Port int `validate:"omitempty,min=1,max=65535"`

	// User and Password enable basic auth when both are set.
	User     string
	Password string

	// Timeout bounds every request sent to the API.
	// (Optional) Defaults to 10 seconds.
	Timeout time.Duration `validate:"gte=0"`

	// InMem replaces the HTTP client with an in memory API. Nothing is
	// persisted, so it is meant for local runs.
	InMem bool
}

// Configured reports whether enough information is present to reach the API.
func (c Config) Configured() bool {
	return len(c.Host) > 0 || c.InMem
}

// Address returns the base URL of the API, i.e. http://localhost:4567
func (c Config) Address() string {
	port := c.Port
	if port == 0 {
		port = DefaultPort
	}
	return "http://" + net.JoinHostPort(c.Host, strconv.Itoa(port))
}

// BasicAuth returns the Authorization header value for the configured
// credentials, empty when either credential is missing.
func (c Config) BasicAuth() string {
	if len(c.User) == 0 || len(c.Password) == 0 {
		return ""
	}
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(c.User+":"+c.Password))
}

// BasicClientConfig contains config data for the client that will be used to
// make requests to the monitoring API.
type BasicClientConfig struct {
	// Address is the API URL (i.e. http://sensu-api.example.io:4567)
	Address string

	// HTTPClient refers to the client that will be used to send requests.
	// (Optional) Defaults to an http.Client with a 10 second timeout.
	HTTPClient *http.Client

	// Auth is the Authorization header value added to outgoing requests.
	// (Optional) If not provided, no auth headers are added.
	Auth string

	// Logger to be used by the client.
	// (Optional). By default sallust's default logger is used.
	Logger *zap.Logger
}

// NewBasicClientConfig translates the API section of the configuration
// into client settings.
func NewBasicClientConfig(c Config, logger *zap.Logger) BasicClientConfig {
	timeout := c.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	return BasicClientConfig{
		Address:    c.Address(),
		HTTPClient: &http.Client{Timeout: timeout},
		Auth:       c.BasicAuth(),
		Logger:     logger,
	}
}

// BasicClient is the client used to make requests to the monitoring API.
type BasicClient struct {
	client   *http.Client
	auth     acquire.Acquirer
	baseURL  string
	logger   *zap.Logger
	measures *Measures
}

type response struct {
	Body []byte
	Code int
}

// NewBasicClient creates a new BasicClient that can be used to
// make requests to the monitoring API. measures may be nil.
func NewBasicClient(config BasicClientConfig, measures *Measures) (*BasicClient, error) {
	err := validateBasicConfig(&config)
	if err != nil {
		return nil, err
	}

	tokenAcquirer, err := buildTokenAcquirer(config.Auth)
	if err != nil {
		return nil, err
	}

	return &BasicClient{
		client:   config.HTTPClient,
		auth:     tokenAcquirer,
		logger:   config.Logger,
		baseURL:  strings.TrimSuffix(config.Address, "/"),
		measures: measures,
	}, nil
}

// PushStash creates the stash or overwrites an existing one at the same path.
// The returned code is the HTTP status the API responded with, zero when no
// response was received.
func (c *BasicClient) PushStash(ctx context.Context, stash model.Stash) (int, error) {
	if len(stash.Path) < 1 {
		return 0, ErrStashPathEmpty
	}

	data, err := json.Marshal(stash.Content)
	if err != nil {
		return 0, fmt.Errorf(errWrappedFmt, errJSONMarshal, err.Error())
	}

	resp, err := c.sendRequest(ctx, PushOperation, http.MethodPost, c.stashURL(stash.Path), bytes.NewReader(data))
	if err != nil {
		return 0, err
	}

	if resp.Code == http.StatusCreated || resp.Code == http.StatusOK || resp.Code == http.StatusNoContent {
		return resp.Code, nil
	}

	c.logger.Error("monitoring API responded with a non-successful status code for a PushStash request",
		zap.Int("code", resp.Code), zap.String("path", stash.Path))
	return resp.Code, fmt.Errorf(errStatusCodeFmt, translateNonSuccessStatusCode(resp.Code), resp.Code)
}

// GetStashes fetches every stash known to the API, regardless of namespace.
func (c *BasicClient) GetStashes(ctx context.Context) (Stashes, error) {
	resp, err := c.sendRequest(ctx, ListOperation, http.MethodGet, c.baseURL+stashesAPIPath, nil)
	if err != nil {
		return nil, err
	}

	if resp.Code != http.StatusOK {
		c.logger.Error("monitoring API responded with non-200 response for GetStashes request",
			zap.Int("code", resp.Code))
		return nil, fmt.Errorf(errStatusCodeFmt, translateNonSuccessStatusCode(resp.Code), resp.Code)
	}

	var stashes Stashes
	err = json.Unmarshal(resp.Body, &stashes)
	if err != nil {
		return nil, fmt.Errorf("GetStashes: %w: %s", errJSONUnmarshal, err.Error())
	}

	return stashes, nil
}

// RemoveStash deletes the stash at the given path.
func (c *BasicClient) RemoveStash(ctx context.Context, path string) error {
	if len(path) < 1 {
		return ErrStashPathEmpty
	}

	resp, err := c.sendRequest(ctx, RemoveOperation, http.MethodDelete, c.stashURL(path), nil)
	if err != nil {
		return err
	}

	switch resp.Code {
	case http.StatusOK, http.StatusAccepted, http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return fmt.Errorf(errWrappedFmt, ErrStashNotFound, path)
	}

	c.logger.Error("monitoring API responded with a non-successful status code for a RemoveStash request",
		zap.Int("code", resp.Code), zap.String("path", path))
	return fmt.Errorf(errStatusCodeFmt, translateNonSuccessStatusCode(resp.Code), resp.Code)
}

// Resolve asks the API to mark the client/check pair as no longer failing.
func (c *BasicClient) Resolve(ctx context.Context, req model.ResolveRequest) error {
	data, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf(errWrappedFmt, errJSONMarshal, err.Error())
	}

	resp, err := c.sendRequest(ctx, ResolveOperation, http.MethodPost, c.baseURL+resolveAPIPath, bytes.NewReader(data))
	if err != nil {
		return err
	}

	if resp.Code >= http.StatusOK && resp.Code < http.StatusMultipleChoices {
		return nil
	}

	c.logger.Error("monitoring API responded with a non-successful status code for a Resolve request",
		zap.Int("code", resp.Code), zap.String("client", req.Client), zap.String("check", req.Check))
	return fmt.Errorf(errStatusCodeFmt, translateNonSuccessStatusCode(resp.Code), resp.Code)
}

// stashURL escapes each path segment but keeps the separators, so that
// auto_resolve/web1_disk stays a two segment path.
func (c *BasicClient) stashURL(path string) string {
	segments := strings.Split(path, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return c.baseURL + stashesAPIPath + "/" + strings.Join(segments, "/")
}

func (c *BasicClient) sendRequest(ctx context.Context, operation, method, url string, body io.Reader) (resp response, err error) {
	defer func() {
		c.measures.observe(operation, resp.Code, err)
	}()

	r, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return response{}, fmt.Errorf(errWrappedFmt, errNewRequestFailure, err.Error())
	}
	if body != nil {
		r.Header.Set("Content-Type", "application/json")
	}
	err = acquire.AddAuth(r, c.auth)
	if err != nil {
		return response{}, fmt.Errorf(errWrappedFmt, ErrAuthAcquirerFailure, err.Error())
	}

	c.logger.Debug("sending request to monitoring API", zap.String("method", method), zap.String("url", url))
	httpResp, err := c.client.Do(r)
	if err != nil {
		return response{}, fmt.Errorf(errWrappedFmt, errDoRequestFailure, err.Error())
	}
	defer httpResp.Body.Close()

	resp = response{
		Code: httpResp.StatusCode,
	}
	bodyBytes, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return resp, fmt.Errorf(errWrappedFmt, errReadingBodyFailure, err.Error())
	}
	resp.Body = bodyBytes
	return resp, nil
}

// translateNonSuccessStatusCode returns as specific error
// for known status codes.
func translateNonSuccessStatusCode(code int) error {
	switch code {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrFailedAuthentication
	case http.StatusNotFound:
		return ErrStashNotFound
	default:
		return ErrNonSuccessResponse
	}
}

func buildTokenAcquirer(auth string) (acquire.Acquirer, error) {
	if len(auth) > 0 {
		return acquire.NewFixedAuthAcquirer(auth)
	}
	return &acquire.DefaultAcquirer{}, nil
}

func validateBasicConfig(config *BasicClientConfig) error {
	if config.Address == "" {
		return ErrAddressEmpty
	}

	if config.HTTPClient == nil {
		config.HTTPClient = &http.Client{Timeout: defaultTimeout}
	}

	if config.Logger == nil {
		config.Logger = sallust.Default()
	}
	return nil
}

// observe is safe to call on a nil receiver.
func (m *Measures) observe(operation string, code int, err error) {
	if m == nil || m.Requests == nil {
		return
	}
	outcome := SuccessOutcome
	if err != nil || code >= http.StatusMultipleChoices {
		outcome = FailureOutcome
	}
	m.Requests.With(prometheus.Labels{
		OperationLabel: operation,
		OutcomeLabel:   outcome,
	}).Inc()
}
