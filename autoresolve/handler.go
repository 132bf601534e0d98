// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package autoresolve

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/xmidt-org/autoresolve/apiclient"
	"github.com/xmidt-org/autoresolve/model"
	"go.uber.org/zap"
)

var ErrAPINotConfigured = errors.New("monitoring API is not configured")

const noTagMessage = "event has no tag " + TTLTagKey + "=X"

// MaxExpiry is the latest absolute expiry written to a stash. Stash content
// travels as JSON, so expiries stay within the integers a float64 holds
// exactly. Larger TTLs are capped here rather than wrapping around.
const MaxExpiry int64 = 1 << 53

// Outcome is the acknowledgment returned for every handled event. Failures
// to write the stash are reported here instead of being returned as errors.
type Outcome struct {
	// Path is the stash path written for the event, empty when the event
	// carried no usable auto_resolve_time tag.
	Path string `json:"path,omitempty"`

	// ExpiresAt is the absolute expiry in unix seconds stored in the stash.
	ExpiresAt int64 `json:"expiresAt,omitempty"`

	// Code is the HTTP status returned by the stash write, zero when no
	// response was received.
	Code int `json:"code,omitempty"`

	// Err holds the write failure, if any.
	Err error `json:"-"`
}

// Tagged reports whether the event carried a usable auto_resolve_time tag.
func (o Outcome) Tagged() bool {
	return len(o.Path) > 0
}

func (o Outcome) String() string {
	switch {
	case !o.Tagged():
		return noTagMessage
	case o.Code == 0 && o.Err != nil:
		return fmt.Sprintf("failed to stash auto_resolve for event: %v", o.Err)
	default:
		return fmt.Sprintf("stashed auto_resolve for event - code %d", o.Code)
	}
}

// HandlerConfig contains the optional settings of a Handler.
type HandlerConfig struct {
	// Logger to be used by the handler.
	// (Optional). By default a no op logger will be used.
	Logger *zap.Logger

	// Now is the clock used to turn a TTL into an absolute expiry.
	// (Optional). Defaults to time.Now.
	Now func() time.Time
}

// Handler turns inbound events carrying an auto_resolve_time tag into
// auto_resolve stashes.
type Handler struct {
	stasher  apiclient.Stasher
	logger   *zap.Logger
	now      func() time.Time
	measures *Measures
}

// NewHandler creates a Handler. A nil stasher is allowed: events are still
// inspected but every write is reported as ErrAPINotConfigured.
func NewHandler(config HandlerConfig, measures *Measures, s apiclient.Stasher) *Handler {
	if config.Logger == nil {
		config.Logger = zap.NewNop()
	}
	if config.Now == nil {
		config.Now = time.Now
	}
	return &Handler{
		stasher:  s,
		logger:   config.Logger,
		now:      config.Now,
		measures: measures,
	}
}

// HandleRaw decodes a JSON event and handles it. Undecodable payloads are
// treated as events without tags.
func (h *Handler) HandleRaw(ctx context.Context, data []byte) Outcome {
	var event model.Event
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Warn("failed to decode event, skipping auto_resolve", zap.Error(err))
		h.measures.countStashWrite(SkippedOutcome)
		return Outcome{}
	}
	return h.Handle(ctx, event)
}

// Handle writes or refreshes the auto_resolve stash of the event's
// client/check pair when the check declares an auto_resolve_time tag.
func (h *Handler) Handle(ctx context.Context, event model.Event) Outcome {
	h.logger.Debug("auto_resolve process event")

	client, check := event.ClientName(), event.CheckName()
	if len(client) == 0 || len(check) == 0 {
		h.logger.Debug("event is missing its client or check, skipping auto_resolve",
			zap.String("client", client), zap.String("check", check))
		h.measures.countStashWrite(SkippedOutcome)
		return Outcome{}
	}

	ttl, ok := ExtractTTL(h.logger, event.Tags())
	if !ok {
		h.measures.countStashWrite(SkippedOutcome)
		return Outcome{}
	}

	path := StashPath(client, check)
	expiresAt := expiryFor(h.now().Unix(), ttl)
	h.logger.Info("received event with tag auto_resolve_time",
		zap.String("path", path), zap.Int64("expiresInSeconds", ttl), zap.Int64("expiresAt", expiresAt))

	outcome := Outcome{
		Path:      path,
		ExpiresAt: expiresAt,
	}

	if h.stasher == nil {
		outcome.Err = ErrAPINotConfigured
		h.logger.Warn("cannot stash auto_resolve", zap.String("path", path), zap.Error(outcome.Err))
		h.measures.countStashWrite(FailureOutcome)
		return outcome
	}

	outcome.Code, outcome.Err = h.stasher.PushStash(ctx, model.Stash{
		Path: path,
		Content: map[string]interface{}{
			Namespace: expiresAt,
		},
	})
	if outcome.Err != nil {
		h.logger.Error("failed to stash auto_resolve", zap.String("path", path),
			zap.Int("code", outcome.Code), zap.Error(outcome.Err))
		h.measures.countStashWrite(FailureOutcome)
		return outcome
	}

	h.measures.countStashWrite(SuccessOutcome)
	return outcome
}

// expiryFor returns now + ttl, capped at MaxExpiry.
func expiryFor(now, ttl int64) int64 {
	if ttl > MaxExpiry-now {
		return MaxExpiry
	}
	return now + ttl
}
