// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package secrets

// FixedMask is the rendering for values too short to partially reveal.
const FixedMask = "********"

// Mask renders a secret for display. Values longer than 8 characters keep
// their first and last four characters; anything shorter collapses to the
// fixed mask so length is not leaked. This is a display transform only.
func Mask(value string) string {
	if len(value) <= 8 {
		return FixedMask
	}
	return value[:4] + "****" + value[len(value)-4:]
}

// MaskAll masks every value of a secrets map into a new map.
func MaskAll(values map[string]string) map[string]string {
	masked := make(map[string]string, len(values))
	for k, v := range values {
		masked[k] = Mask(v)
	}
	return masked
}

// IsMaskedEcho reports whether an incoming write value is just the masked
// rendering of the currently stored value echoed back by a client. Echoes
// are silently skipped on write so a round-tripped form can never overwrite
// a real secret with asterisks.
func IsMaskedEcho(incoming, stored string) bool {
	if incoming == FixedMask {
		return true
	}
	return stored != "" && incoming == Mask(stored)
}
