// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"errors"
	"testing"
)

func TestValidatePasswordStrength(t *testing.T) {
	testCases := []struct {
		name        string
		password    string
		expectedErr error
	}{
		{"valid", "CorrectHorse9Battery", nil},
		{"empty", "", ErrPasswordEmpty},
		{"too short", "Ab1", ErrPasswordTooShort},
		{"no uppercase", "correcthorse9battery", ErrPasswordNoUpper},
		{"no lowercase", "CORRECTHORSE9BATTERY", ErrPasswordNoLower},
		{"no number", "CorrectHorseBattery", ErrPasswordNoNumber},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidatePasswordStrength(tc.password)
			if !errors.Is(err, tc.expectedErr) {
				t.Errorf("expected %v, got %v", tc.expectedErr, err)
			}
		})
	}
}

func TestHashAndVerifyPassword(t *testing.T) {
	password := "CorrectHorse9Battery"

	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash == password {
		t.Fatal("hash must not equal the plaintext")
	}

	if err := VerifyPassword(hash, password); err != nil {
		t.Errorf("expected the password to verify, got %v", err)
	}

	if err := VerifyPassword(hash, "wrong"); !errors.Is(err, ErrUnauthenticated) {
		t.Errorf("expected ErrUnauthenticated, got %v", err)
	}

	if err := VerifyPassword("", password); !errors.Is(err, ErrUnauthenticated) {
		t.Errorf("expected ErrUnauthenticated for an empty hash, got %v", err)
	}
}
