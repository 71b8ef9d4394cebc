// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package secrets

import (
	"testing"
)

func TestMask(t *testing.T) {
	testCases := []struct {
		name     string
		value    string
		expected string
	}{
		{
			name:     "long value keeps first and last four",
			value:    "sk_live_abcdef123456",
			expected: "sk_l****3456",
		},
		{
			name:     "nine characters is the shortest partial reveal",
			value:    "123456789",
			expected: "1234****6789",
		},
		{
			name:     "eight characters collapses to fixed mask",
			value:    "12345678",
			expected: FixedMask,
		},
		{
			name:     "short value collapses to fixed mask",
			value:    "abc",
			expected: FixedMask,
		},
		{
			name:     "empty value collapses to fixed mask",
			value:    "",
			expected: FixedMask,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Mask(tc.value); got != tc.expected {
				t.Errorf("Mask(%q) = %q, want %q", tc.value, got, tc.expected)
			}
		})
	}
}

func TestIsMaskedEcho(t *testing.T) {
	stored := "sk_live_abcdef123456"

	testCases := []struct {
		name     string
		incoming string
		stored   string
		expected bool
	}{
		{
			name:     "echoed masked rendering is skipped",
			incoming: Mask(stored),
			stored:   stored,
			expected: true,
		},
		{
			name:     "fixed mask is always an echo",
			incoming: FixedMask,
			stored:   "short",
			expected: true,
		},
		{
			name:     "fixed mask against empty stored value is still an echo",
			incoming: FixedMask,
			stored:   "",
			expected: true,
		},
		{
			name:     "new value is intentional",
			incoming: "sk_live_newvalue99999",
			stored:   stored,
			expected: false,
		},
		{
			name:     "value that merely looks masked is intentional",
			incoming: "abcd****wxyz",
			stored:   stored,
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsMaskedEcho(tc.incoming, tc.stored); got != tc.expected {
				t.Errorf("IsMaskedEcho(%q, %q) = %v, want %v", tc.incoming, tc.stored, got, tc.expected)
			}
		})
	}
}
