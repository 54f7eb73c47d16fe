// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package paginator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────────────────────
// UnboundedLimit
// ─────────────────────────────────────────────────────────────

func TestUnboundedLimit(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		limits Limits
		want   int
	}{
		{name: "absent uses default", raw: "", limits: Limits{Default: 20, Max: 1000}, want: 20},
		{name: "absent without default", raw: "", limits: Limits{}, want: DefaultLimitPerPage},
		{name: "explicit within max", raw: "50", limits: Limits{Default: 20, Max: 1000}, want: 50},
		{name: "above max is clamped", raw: "5000", limits: Limits{Default: 20, Max: 1000}, want: 1000},
		{name: "minus one without max", raw: "-1", limits: Limits{Default: 20}, want: UnboundedCap},
		{name: "minus one with max above cap", raw: "-1", limits: Limits{Default: 20, Max: 5000}, want: UnboundedCap},
		{name: "minus one with max below cap", raw: "-1", limits: Limits{Default: 20, Max: 1000}, want: 1000},
		{name: "minus one with max equal to cap", raw: "-1", limits: Limits{Max: UnboundedCap}, want: UnboundedCap},
		{name: "zero is clamped to max", raw: "0", limits: Limits{Max: 1000}, want: 1000},
		{name: "zero without max", raw: "0", limits: Limits{}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UnboundedLimit(tt.raw, tt.limits)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUnboundedLimit_Invalid(t *testing.T) {
	for _, raw := range []string{"-2", "abc", "1.5"} {
		_, err := UnboundedLimit(raw, Limits{Max: 1000})
		assert.ErrorIs(t, err, ErrInvalidLimit, raw)
	}
}

// ─────────────────────────────────────────────────────────────
// StandardLimit
// ─────────────────────────────────────────────────────────────

func TestStandardLimit(t *testing.T) {
	got, err := StandardLimit("10", Limits{Default: 20, Max: 100})
	require.NoError(t, err)
	assert.Equal(t, 10, got)

	got, err = StandardLimit("500", Limits{Default: 20, Max: 100})
	require.NoError(t, err)
	assert.Equal(t, 100, got)

	got, err = StandardLimit("", Limits{Default: 15})
	require.NoError(t, err)
	assert.Equal(t, 15, got)
}

func TestStandardLimit_RejectsMinusOne(t *testing.T) {
	_, err := StandardLimit("-1", Limits{Max: 100})
	assert.ErrorIs(t, err, ErrInvalidLimit)
}
