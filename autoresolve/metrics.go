// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package autoresolve

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/xmidt-org/touchstone"
	"go.uber.org/fx"
)

// Names
const (
	SweepCounter        = "auto_resolve_sweeps_total"
	StashWriteCounter   = "auto_resolve_stash_writes_total"
	ExpiredStashCounter = "auto_resolve_expired_stashes_total"
)

// Labels
const (
	OutcomeLabel = "outcome"
)

// Label Values
const (
	SuccessOutcome = "success"
	FailureOutcome = "failure"
	PartialOutcome = "partial"
	SkippedOutcome = "skipped"
)

// ProvideMetrics returns the Metrics relevant to this package
func ProvideMetrics() fx.Option {
	return fx.Options(
		touchstone.CounterVec(
			prometheus.CounterOpts{
				Name: SweepCounter,
				Help: "Counter for the number of expiration sweeps (and their success/partial/failure outcomes).",
			},
			OutcomeLabel,
		),
		touchstone.CounterVec(
			prometheus.CounterOpts{
				Name: StashWriteCounter,
				Help: "Counter for the number of handled events by stash write outcome.",
			},
			OutcomeLabel,
		),
		touchstone.CounterVec(
			prometheus.CounterOpts{
				Name: ExpiredStashCounter,
				Help: "Counter for the number of expired stashes processed by a sweep and their outcomes.",
			},
			OutcomeLabel,
		),
	)
}

type Measures struct {
	fx.In
	Sweeps         *prometheus.CounterVec `name:"auto_resolve_sweeps_total"`
	StashWrites    *prometheus.CounterVec `name:"auto_resolve_stash_writes_total"`
	ExpiredStashes *prometheus.CounterVec `name:"auto_resolve_expired_stashes_total"`
}

func (m *Measures) countStashWrite(outcome string) {
	if m == nil || m.StashWrites == nil {
		return
	}
	m.StashWrites.With(prometheus.Labels{OutcomeLabel: outcome}).Inc()
}

func (m *Measures) countExpired(outcome string) {
	if m == nil || m.ExpiredStashes == nil {
		return
	}
	m.ExpiredStashes.With(prometheus.Labels{OutcomeLabel: outcome}).Inc()
}

func (m *Measures) countSweep(outcome string) {
	if m == nil || m.Sweeps == nil {
		return
	}
	m.Sweeps.With(prometheus.Labels{OutcomeLabel: outcome}).Inc()
}
