// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"
	"runtime"
	"strings"

	"golang.org/x/crypto/argon2"
)

// argon2Hasher is the private implementation of [PasswordHasher].
type argon2Hasher struct {
	// Argon2id tuning parameters used for new hashes. Verification reads
	// the parameters back from the stored hash.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
	saltLen      int

	// slots bounds concurrent computations.
	slots chan struct{}
}

// NewPasswordHasher constructs a [PasswordHasher] with the libsodium
// "interactive" Argon2id parameters:
//   - time cost:   2 iterations
//   - memory cost: 64 MiB
//   - parallelism: 1 thread
//   - key length:  32 bytes (256 bits)
//
// concurrency caps simultaneous computations; zero or less means one per
// CPU.
func NewPasswordHasher(concurrency int) PasswordHasher {
	if concurrency <= 0 {
		concurrency = runtime.NumCPU()
	}

	return &argon2Hasher{
		argonTime:    2,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 1,
		argonKeyLen:  32, // 256 bits
		saltLen:      16,
		slots:        make(chan struct{}, concurrency),
	}
}

func (a *argon2Hasher) Hash(ctx context.Context, password string) (string, error) {
	salt := make([]byte, a.saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("%w: %w", ErrGeneratingSalt, err)
	}

	params := argonParams{time: a.argonTime, memory: a.argonMemory, threads: a.argonThreads}
	key, err := a.compute(ctx, password, salt, params, a.argonKeyLen)
	if err != nil {
		return "", err
	}

	return params.encode(salt, key), nil
}

func (a *argon2Hasher) Verify(ctx context.Context, password, encoded string) (bool, error) {
	params, salt, want, err := decodeHash(encoded)
	if err != nil {
		return false, err
	}

	got, err := a.compute(ctx, password, salt, params, uint32(len(want)))
	if err != nil {
		return false, err
	}

	return subtle.ConstantTimeCompare(got, want) == 1, nil
}

// compute runs argon2 in its own goroutine once a slot is free, so the
// caller can stop waiting when ctx is done.
func (a *argon2Hasher) compute(ctx context.Context, password string, salt []byte, p argonParams, keyLen uint32) ([]byte, error) {
	select {
	case a.slots <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	result := make(chan []byte, 1)
	go func() {
		defer func() { <-a.slots }()
		result <- argon2.IDKey([]byte(password), salt, p.time, p.memory, p.threads, keyLen)
	}()

	select {
	case key := <-result:
		return key, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

type argonParams struct {
	time    uint32
	memory  uint32
	threads uint8
}

func (p argonParams) encode(salt, key []byte) string {
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, p.memory, p.time, p.threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)
}

func decodeHash(encoded string) (argonParams, []byte, []byte, error) {
	// libsodium pads its hashes with NUL bytes
	encoded = strings.TrimRight(encoded, "\x00")

	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return argonParams{}, nil, nil, ErrInvalidHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return argonParams{}, nil, nil, fmt.Errorf("%w: %w", ErrInvalidHash, err)
	}
	if version != argon2.Version {
		return argonParams{}, nil, nil, ErrIncompatibleVersion
	}

	var p argonParams
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.memory, &p.time, &p.threads); err != nil {
		return argonParams{}, nil, nil, fmt.Errorf("%w: %w", ErrInvalidHash, err)
	}
	if p.time == 0 || p.threads == 0 {
		return argonParams{}, nil, nil, ErrInvalidHash
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return argonParams{}, nil, nil, fmt.Errorf("%w: %w", ErrInvalidHash, err)
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return argonParams{}, nil, nil, ErrInvalidHash
	}

	return p, salt, key, nil
}
