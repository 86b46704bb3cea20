// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// PasswordHasher turns plaintext passwords into self-describing credentials
// and checks plaintext against them. Implementations must be safe for
// concurrent use.
type PasswordHasher interface {
	// Hash derives a credential from password with a fresh random salt.
	// Two calls with the same password never return the same string.
	Hash(password string) (string, error)

	// Verify reports whether password matches credential. A malformed
	// credential never matches.
	Verify(password, credential string) bool
}
