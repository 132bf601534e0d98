// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package autoresolve

import (
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// TTLTagKey is the check tag key declaring the auto resolve TTL in seconds.
const TTLTagKey = "auto_resolve_time"

var ttlValueRegex = regexp.MustCompile(`^[0-9]+$`)

// ExtractTTL scans tags in order and returns the value of the first
// auto_resolve_time tag holding a plain non-negative integer. Tags with that
// key but a malformed value are logged and skipped. ok is false when no tag
// qualifies.
//
// A tag splits on its first "=" only, so auto_resolve_time=12=3 carries the
// value "12=3" and is rejected. Earlier Sensu handlers split on every "=" and
// read such a tag as 12.
func ExtractTTL(logger *zap.Logger, tags []string) (ttl int64, ok bool) {
	if logger == nil {
		logger = zap.NewNop()
	}

	for _, tag := range tags {
		key, value, _ := strings.Cut(tag, "=")
		if key != TTLTagKey {
			continue
		}

		logger.Debug("auto_resolve_time is set", zap.String("tag", tag))
		if !ttlValueRegex.MatchString(value) {
			logger.Info("auto_resolve_time is not an integer", zap.String("value", value))
			continue
		}

		seconds, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			logger.Info("auto_resolve_time is out of range", zap.String("value", value), zap.Error(err))
			continue
		}

		return seconds, true
	}

	return 0, false
}
