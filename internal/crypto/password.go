// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
)

const (
	saltLength = 16

	// maxMemory bounds the memory cost accepted from a stored credential
	// (4 GiB expressed in KiB).
	maxMemory = 4 * 1024 * 1024
)

var (
	ErrInvalidCredential   = errors.New("invalid credential format")
	ErrIncompatibleVersion = errors.New("incompatible argon2 version")
)

// Params holds the Argon2id cost parameters used for new credentials.
// Existing credentials are always verified with the parameters encoded in
// them, so changing Params does not invalidate stored passwords.
type Params struct {
	Time    uint32
	Memory  uint32 // KiB
	Threads uint8
	KeyLen  uint32
}

// DefaultParams returns the parameters recommended by OWASP:
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func DefaultParams() Params {
	return Params{
		Time:    1,
		Memory:  64 * 1024,
		Threads: 4,
		KeyLen:  32,
	}
}

// argonHasher is the Argon2id implementation of [PasswordHasher].
type argonHasher struct {
	params Params
	rand   io.Reader
}

// NewPasswordHasher constructs an Argon2id [PasswordHasher]. Zero fields of
// params are replaced with the corresponding [DefaultParams] value.
func NewPasswordHasher(params Params) PasswordHasher {
	def := DefaultParams()
	if params.Time == 0 {
		params.Time = def.Time
	}
	if params.Memory == 0 {
		params.Memory = def.Memory
	}
	if params.Threads == 0 {
		params.Threads = def.Threads
	}
	if params.KeyLen == 0 {
		params.KeyLen = def.KeyLen
	}

	return &argonHasher{params: params, rand: rand.Reader}
}

// Hash implements [PasswordHasher]. The result has the PHC-style form
//
//	$argon2id$v=19$m=65536,t=1,p=4$<salt>$<key>
//
// with salt and key in unpadded standard base64.
func (h *argonHasher) Hash(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := io.ReadFull(h.rand, salt); err != nil {
		return "", fmt.Errorf("error generating salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, h.params.Time, h.params.Memory, h.params.Threads, h.params.KeyLen)

	return fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.params.Memory,
		h.params.Time,
		h.params.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify implements [PasswordHasher]. The key is recomputed with the
// parameters and salt stored in credential and compared in constant time.
func (h *argonHasher) Verify(password, credential string) bool {
	params, salt, key, err := decodeCredential(credential)
	if err != nil {
		return false
	}

	candidate := argon2.IDKey([]byte(password), salt, params.Time, params.Memory, params.Threads, params.KeyLen)

	return subtle.ConstantTimeCompare(key, candidate) == 1
}

// decodeCredential splits an encoded credential into its parameters, salt
// and derived key.
func decodeCredential(credential string) (Params, []byte, []byte, error) {
	var params Params

	parts := strings.Split(credential, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return params, nil, nil, ErrInvalidCredential
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return params, nil, nil, ErrInvalidCredential
	}
	if version != argon2.Version {
		return params, nil, nil, ErrIncompatibleVersion
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &params.Memory, &params.Time, &params.Threads); err != nil {
		return params, nil, nil, ErrInvalidCredential
	}
	if params.Time == 0 || params.Threads == 0 || params.Memory == 0 || params.Memory > maxMemory {
		return params, nil, nil, ErrInvalidCredential
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil || len(salt) == 0 {
		return params, nil, nil, ErrInvalidCredential
	}

	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return params, nil, nil, ErrInvalidCredential
	}
	params.KeyLen = uint32(len(key))

	return params, salt, key, nil
}
