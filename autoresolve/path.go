// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package autoresolve

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// Namespace is the stash path prefix owned by this policy. It doubles as
	// the content key holding the absolute expiry.
	Namespace = "auto_resolve"

	namespacePrefix = Namespace + "/"
)

var (
	ErrForeignPath   = errors.New("stash path is outside the auto_resolve namespace")
	ErrAmbiguousPath = errors.New("stash path does not separate client and check with an underscore")
)

// StashPath returns the stash path for a client/check pair, i.e.
// auto_resolve/web1_disk.
func StashPath(client, check string) string {
	return namespacePrefix + client + "_" + check
}

// Owns reports whether the stash path belongs to the auto_resolve namespace.
func Owns(path string) bool {
	return strings.HasPrefix(path, namespacePrefix)
}

// NamesFromPath reverses StashPath. The identity is split on the first
// underscore, so a client name containing an underscore cannot be recovered
// faithfully: auto_resolve/web_1_disk yields client "web" and check "1_disk".
func NamesFromPath(path string) (client, check string, err error) {
	if !Owns(path) {
		return "", "", fmt.Errorf("%w: %s", ErrForeignPath, path)
	}

	client, check, found := strings.Cut(strings.TrimPrefix(path, namespacePrefix), "_")
	if !found {
		return "", "", fmt.Errorf("%w: %s", ErrAmbiguousPath, path)
	}

	return client, check, nil
}
