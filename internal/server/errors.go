// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoServersAreCreated = errors.New("no servers are created")

	// ErrTLSKeyPair means only one of the certificate and key files is
	// configured.
	ErrTLSKeyPair = errors.New("TLS certificate and key must be set together")

	// ErrClientCA means the client CA file holds no usable certificate.
	ErrClientCA = errors.New("no certificates found in client CA file")
)
