// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package autoresolve

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/mock"
	"github.com/xmidt-org/autoresolve/apiclient"
	"github.com/xmidt-org/autoresolve/model"
)

type mockAPI struct {
	mock.Mock
}

func (m *mockAPI) PushStash(ctx context.Context, stash model.Stash) (int, error) {
	args := m.Called(ctx, stash)
	return args.Int(0), args.Error(1)
}

func (m *mockAPI) GetStashes(ctx context.Context) (apiclient.Stashes, error) {
	args := m.Called(ctx)
	stashes, _ := args.Get(0).(apiclient.Stashes)
	return stashes, args.Error(1)
}

func (m *mockAPI) RemoveStash(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}

func (m *mockAPI) Resolve(ctx context.Context, req model.ResolveRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func newTestMeasures() *Measures {
	newVec := func(name string) *prometheus.CounterVec {
		return prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: name,
			Help: name,
		}, []string{OutcomeLabel})
	}
	return &Measures{
		Sweeps:         newVec("testSweepsCounter"),
		StashWrites:    newVec("testStashWritesCounter"),
		ExpiredStashes: newVec("testExpiredStashesCounter"),
	}
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
