// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto hashes and verifies user passwords with Argon2id.
//
// Hashes are PHC strings ($argon2id$v=19$m=...,t=...,p=...$salt$key) so the
// parameters travel with every stored hash and can change without
// invalidating existing accounts.
package crypto

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher computes and checks password hashes.
//
// Both operations are CPU and memory heavy; implementations bound how many
// run at once and give up when ctx is done while waiting for a slot.
type PasswordHasher interface {
	// Hash returns the PHC encoded Argon2id hash of password.
	Hash(ctx context.Context, password string) (string, error)

	// Verify reports whether password matches encoded. A malformed hash is
	// an error, a mismatch is (false, nil).
	Verify(ctx context.Context, password, encoded string) (bool, error)
}
