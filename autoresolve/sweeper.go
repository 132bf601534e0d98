// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package autoresolve

import (
	"context"
	"sync/atomic"
	"time"

	"emperror.dev/emperror"
	"emperror.dev/errors"
	"github.com/spf13/cast"
	"github.com/xmidt-org/autoresolve/apiclient"
	"github.com/xmidt-org/autoresolve/model"
	"go.uber.org/zap"
)

// Errors that can be returned by the sweeper. Since some of these errors are
// returned wrapped, it is safest to use errors.Is() to check for them.
var (
	ErrSweeperNotStopped = errors.NewPlain("sweeper is either running or starting")
	ErrSweeperNotRunning = errors.NewPlain("sweeper is either stopped or stopping")
	ErrNoAPIProvided     = errors.NewPlain("no monitoring API provided")
)

// sweeping states
const (
	stopped int32 = iota
	running
	transitioning
)

// DefaultInterval is the time between two sweeps when none is configured.
const DefaultInterval = 60 * time.Second

// Activation is the decision, made once at startup, of whether expired
// stashes are swept at all.
type Activation int

const (
	// Inactive means no monitoring API is configured. No sweeper is scheduled.
	Inactive Activation = iota

	// Active means the sweeper runs on its interval for the process lifetime.
	Active
)

// ActivationFor decides the sweeper activation from the API configuration.
func ActivationFor(c apiclient.Config) Activation {
	if c.Configured() {
		return Active
	}
	return Inactive
}

func (a Activation) String() string {
	if a == Active {
		return "active"
	}
	return "inactive"
}

// SweepAPI is the subset of the monitoring API a sweep needs.
type SweepAPI interface {
	apiclient.Lister
	apiclient.Remover
	apiclient.Resolver
}

// SweeperConfig contains the settings of a Sweeper.
type SweeperConfig struct {
	// Interval is the time between two sweeps.
	// (Optional). Defaults to 60 seconds.
	Interval time.Duration

	// Logger to be used by the sweeper.
	// (Optional). By default a no op logger will be used.
	Logger *zap.Logger

	// ErrorHandler receives every per-stash failure.
	// (Optional). Defaults to a handler logging through Logger.
	ErrorHandler emperror.ErrorHandler

	// Now is the clock expiries are compared against.
	// (Optional). Defaults to time.Now.
	Now func() time.Time
}

// SweepReport summarizes a single sweep.
type SweepReport struct {
	// Candidates is the number of stashes found under auto_resolve/.
	Candidates int

	// Expired is the number of candidates whose expiry had passed.
	Expired int

	// Resolved and Removed count the successful resolve and delete calls.
	Resolved int
	Removed  int

	// Skipped counts candidates without a usable expiry.
	Skipped int

	// Err combines every per-stash failure of the sweep.
	Err error
}

// Sweeper periodically resolves the checks whose auto_resolve stash has
// expired and removes those stashes.
type Sweeper struct {
	api          SweepAPI
	logger       *zap.Logger
	errorHandler emperror.ErrorHandler
	now          func() time.Time
	measures     *Measures

	interval time.Duration
	ticker   *time.Ticker
	shutdown chan struct{}
	state    int32
}

// NewSweeper creates a stopped Sweeper. measures may be nil.
func NewSweeper(config SweeperConfig, measures *Measures, api SweepAPI) (*Sweeper, error) {
	if api == nil {
		return nil, ErrNoAPIProvided
	}
	validateSweeperConfig(&config)

	ticker := time.NewTicker(config.Interval)
	ticker.Stop()

	return &Sweeper{
		api:          api,
		logger:       config.Logger,
		errorHandler: config.ErrorHandler,
		now:          config.Now,
		measures:     measures,
		interval:     config.Interval,
		ticker:       ticker,
		shutdown:     make(chan struct{}),
	}, nil
}

// Start begins sweeping on the configured interval. Calling Start on a
// sweeper that is not stopped returns ErrSweeperNotStopped.
func (s *Sweeper) Start(_ context.Context) error {
	if !atomic.CompareAndSwapInt32(&s.state, stopped, transitioning) {
		s.logger.Error("Start called when the sweeper was not in stopped state", zap.Error(ErrSweeperNotStopped))
		return ErrSweeperNotStopped
	}

	s.ticker.Reset(s.interval)
	go func() {
		for {
			select {
			case <-s.shutdown:
				return
			case <-s.ticker.C:
				// failures are already logged and counted by Sweep
				_, _ = s.Sweep(context.Background())
			}
		}
	}()

	atomic.SwapInt32(&s.state, running)
	s.logger.Info("auto_resolve sweeper started", zap.Duration("interval", s.interval))
	return nil
}

// Stop halts the sweeping loop. A sweep in progress is allowed to finish
// before Stop returns. Calling Stop on a sweeper that is not running returns
// ErrSweeperNotRunning.
func (s *Sweeper) Stop(_ context.Context) error {
	if !atomic.CompareAndSwapInt32(&s.state, running, transitioning) {
		s.logger.Error("Stop called when the sweeper was not in running state", zap.Error(ErrSweeperNotRunning))
		return ErrSweeperNotRunning
	}

	s.ticker.Stop()
	s.shutdown <- struct{}{}
	atomic.SwapInt32(&s.state, stopped)
	s.logger.Info("auto_resolve sweeper stopped")
	return nil
}

// Sweep runs a single expiration pass. The returned error is only set when
// the stashes could not be listed; per-stash failures are collected in the
// report and the pass carries on.
func (s *Sweeper) Sweep(ctx context.Context) (SweepReport, error) {
	var report SweepReport

	stashes, err := s.api.GetStashes(ctx)
	if err != nil {
		s.logger.Error("failed to list stashes, skipping this auto_resolve sweep", zap.Error(err))
		s.measures.countSweep(FailureOutcome)
		return report, err
	}

	now := s.now().Unix()
	var errs []error
	for _, stash := range stashes {
		if !Owns(stash.Path) {
			continue
		}
		report.Candidates++

		expiresAt, ok := s.expiry(stash)
		if !ok {
			report.Skipped++
			s.measures.countExpired(SkippedOutcome)
			continue
		}
		if expiresAt > now {
			continue
		}

		report.Expired++
		if err := s.expire(ctx, stash.Path, now-expiresAt, &report); err != nil {
			for _, e := range errors.GetErrors(err) {
				s.errorHandler.Handle(e)
			}
			errs = append(errs, err)
			s.measures.countExpired(FailureOutcome)
			continue
		}
		s.measures.countExpired(SuccessOutcome)
	}

	report.Err = errors.Combine(errs...)
	outcome := SuccessOutcome
	if report.Err != nil {
		outcome = PartialOutcome
	}
	s.measures.countSweep(outcome)

	s.logger.Debug("auto_resolve sweep complete",
		zap.Int("candidates", report.Candidates),
		zap.Int("expired", report.Expired),
		zap.Int("resolved", report.Resolved),
		zap.Int("removed", report.Removed),
		zap.Int("skipped", report.Skipped),
		zap.Int("errors", len(errs)),
	)
	return report, nil
}

// expiry reads the absolute expiry stored in the stash content.
func (s *Sweeper) expiry(stash model.Stash) (int64, bool) {
	raw, ok := stash.Content[Namespace]
	if !ok {
		s.logger.Debug("auto_resolve stash has no expiry, skipping", zap.String("path", stash.Path))
		return 0, false
	}

	expiresAt, err := cast.ToInt64E(raw)
	if err != nil {
		s.logger.Info("auto_resolve stash expiry is not an integer, skipping",
			zap.String("path", stash.Path), zap.Any("expiry", raw), zap.Error(err))
		return 0, false
	}
	return expiresAt, true
}

// expire resolves the check behind an expired stash and removes the stash.
// Both calls are attempted even when the first one fails.
func (s *Sweeper) expire(ctx context.Context, path string, age int64, report *SweepReport) error {
	client, check, err := NamesFromPath(path)
	if err != nil {
		return errors.WithDetails(err, "path", path)
	}

	s.logger.Info("auto_resolve stash marked for resolve",
		zap.String("path", path), zap.Int64("secondsAgo", age))

	var resolveErr, removeErr error
	resolveErr = s.api.Resolve(ctx, model.ResolveRequest{Client: client, Check: check})
	if resolveErr == nil {
		report.Resolved++
	} else {
		resolveErr = errors.WithDetails(errors.WithMessage(resolveErr, "resolve failed"),
			"path", path, "client", client, "check", check)
	}

	removeErr = s.api.RemoveStash(ctx, path)
	switch {
	case removeErr == nil:
		report.Removed++
	case errors.Is(removeErr, apiclient.ErrStashNotFound):
		// already gone, the sweep is idempotent
		report.Removed++
		removeErr = nil
	default:
		removeErr = errors.WithDetails(errors.WithMessage(removeErr, "remove stash failed"),
			"path", path, "client", client, "check", check)
	}

	return errors.Combine(resolveErr, removeErr)
}

func validateSweeperConfig(config *SweeperConfig) {
	if config.Interval <= 0 {
		config.Interval = DefaultInterval
	}
	if config.Logger == nil {
		config.Logger = zap.NewNop()
	}
	if config.ErrorHandler == nil {
		config.ErrorHandler = NewLogErrorHandler(config.Logger)
	}
	if config.Now == nil {
		config.Now = time.Now
	}
}
