// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package inmem

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"sync"

	"github.com/xmidt-org/autoresolve/apiclient"
	"github.com/xmidt-org/autoresolve/model"
)

type InMem struct {
	stashes  map[string]model.Stash
	resolved []model.ResolveRequest
	lock     sync.Mutex
}

func NewInMem() *InMem {
	return &InMem{
		stashes: map[string]model.Stash{},
	}
}

// PushStash stores a copy of the stash. It reports 201 for a new path and
// 200 when an existing stash got overwritten.
func (i *InMem) PushStash(_ context.Context, stash model.Stash) (int, error) {
	if len(stash.Path) < 1 {
		return 0, apiclient.ErrStashPathEmpty
	}

	i.lock.Lock()
	defer i.lock.Unlock()
	_, existing := i.stashes[stash.Path]
	i.stashes[stash.Path] = copyStash(stash)
	if existing {
		return http.StatusOK, nil
	}
	return http.StatusCreated, nil
}

// GetStashes returns all stashes ordered by path.
func (i *InMem) GetStashes(_ context.Context) (apiclient.Stashes, error) {
	i.lock.Lock()
	defer i.lock.Unlock()
	result := make(apiclient.Stashes, 0, len(i.stashes))
	for _, stash := range i.stashes {
		result = append(result, copyStash(stash))
	}
	sort.Slice(result, func(a, b int) bool { return result[a].Path < result[b].Path })
	return result, nil
}

func (i *InMem) RemoveStash(_ context.Context, path string) error {
	if len(path) < 1 {
		return apiclient.ErrStashPathEmpty
	}

	i.lock.Lock()
	defer i.lock.Unlock()
	if _, ok := i.stashes[path]; !ok {
		return fmt.Errorf("%w: %s", apiclient.ErrStashNotFound, path)
	}
	delete(i.stashes, path)
	return nil
}

// Resolve records the request. Resolving the same pair twice is allowed.
func (i *InMem) Resolve(_ context.Context, req model.ResolveRequest) error {
	i.lock.Lock()
	defer i.lock.Unlock()
	i.resolved = append(i.resolved, req)
	return nil
}

// Stash returns the stash stored at path, if any.
func (i *InMem) Stash(path string) (model.Stash, bool) {
	i.lock.Lock()
	defer i.lock.Unlock()
	stash, ok := i.stashes[path]
	if !ok {
		return model.Stash{}, false
	}
	return copyStash(stash), true
}

// Resolved returns every resolve request received so far, in order.
func (i *InMem) Resolved() []model.ResolveRequest {
	i.lock.Lock()
	defer i.lock.Unlock()
	return append([]model.ResolveRequest(nil), i.resolved...)
}

func copyStash(stash model.Stash) model.Stash {
	c := model.Stash{Path: stash.Path}
	if stash.Content != nil {
		c.Content = make(map[string]interface{}, len(stash.Content))
		for k, v := range stash.Content {
			c.Content[k] = v
		}
	}
	return c
}
