// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package apiclient

import (
	"context"

	"github.com/xmidt-org/autoresolve/model"
)

// Stashes is a slice of model.Stash(es).
type Stashes []model.Stash

type Stasher interface {
	// PushStash creates or overwrites the stash at stash.Path and returns the
	// status code reported by the API.
	PushStash(ctx context.Context, stash model.Stash) (int, error)
}

type Lister interface {
	// GetStashes returns every stash known to the API.
	GetStashes(ctx context.Context) (Stashes, error)
}

type Remover interface {
	// RemoveStash deletes the stash at the given path.
	RemoveStash(ctx context.Context, path string) error
}

type Resolver interface {
	// Resolve marks the client/check pair as no longer failing.
	Resolve(ctx context.Context, req model.ResolveRequest) error
}

// API is the full set of monitoring API operations used by this service.
type API interface {
	Stasher
	Lister
	Remover
	Resolver
}
