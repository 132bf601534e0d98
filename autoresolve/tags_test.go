// SPDX-FileCopyrightText: 2026 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package autoresolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xmidt-org/sallust"
)

func TestExtractTTL(t *testing.T) {
	tcs := []struct {
		desc        string
		tags        []string
		expectedTTL int64
		expectedOK  bool
	}{
		{
			desc: "No tags",
		},
		{
			desc: "Unrelated tags",
			tags: []string{"foo=bar", "env=prod"},
		},
		{
			desc:        "Single tag",
			tags:        []string{"auto_resolve_time=120"},
			expectedTTL: 120,
			expectedOK:  true,
		},
		{
			desc:        "Zero",
			tags:        []string{"auto_resolve_time=0"},
			expectedTTL: 0,
			expectedOK:  true,
		},
		{
			desc:        "Malformed value is skipped",
			tags:        []string{"auto_resolve_time=abc", "auto_resolve_time=30"},
			expectedTTL: 30,
			expectedOK:  true,
		},
		{
			desc:        "First valid wins",
			tags:        []string{"env=prod", "auto_resolve_time=10", "auto_resolve_time=20"},
			expectedTTL: 10,
			expectedOK:  true,
		},
		{
			desc: "Negative",
			tags: []string{"auto_resolve_time=-5"},
		},
		{
			desc: "Signed",
			tags: []string{"auto_resolve_time=+5"},
		},
		{
			desc: "Decimal",
			tags: []string{"auto_resolve_time=1.5"},
		},
		{
			desc: "Whitespace",
			tags: []string{"auto_resolve_time= 5"},
		},
		{
			desc: "Empty value",
			tags: []string{"auto_resolve_time="},
		},
		{
			desc: "No separator",
			tags: []string{"auto_resolve_time"},
		},
		{
			desc: "Value containing a separator",
			tags: []string{"auto_resolve_time=12=3"},
		},
		{
			desc:        "Largest int64",
			tags:        []string{"auto_resolve_time=9223372036854775807"},
			expectedTTL: 9223372036854775807,
			expectedOK:  true,
		},
		{
			desc: "Overflow",
			tags: []string{"auto_resolve_time=99999999999999999999"},
		},
		{
			desc:        "Overflow then valid",
			tags:        []string{"auto_resolve_time=99999999999999999999", "auto_resolve_time=7"},
			expectedTTL: 7,
			expectedOK:  true,
		},
		{
			desc: "Key prefix only",
			tags: []string{"auto_resolve_time_x=5", "xauto_resolve_time=5"},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.desc, func(t *testing.T) {
			assert := assert.New(t)
			ttl, ok := ExtractTTL(sallust.Default(), tc.tags)
			assert.Equal(tc.expectedOK, ok)
			assert.Equal(tc.expectedTTL, ttl)
		})
	}
}

func TestExtractTTLNilLogger(t *testing.T) {
	ttl, ok := ExtractTTL(nil, []string{"auto_resolve_time=abc", "auto_resolve_time=3"})
	assert.True(t, ok)
	assert.Equal(t, int64(3), ttl)
}
