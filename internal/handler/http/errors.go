// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised while reading a request, before any service is
// called. Callers can match against them with [errors.Is].
var (
	// ErrInvalidJSON is returned when the request body is not valid JSON
	// for the expected shape.
	ErrInvalidJSON = errors.New("request body is not valid JSON")

	// ErrInvalidPathParam is returned when a path segment such as a message
	// or user id cannot be parsed.
	ErrInvalidPathParam = errors.New("invalid path parameter")

	// ErrMissingPrincipal means a route that needs an authenticated user was
	// reached without the basic auth middleware. It is a wiring bug.
	ErrMissingPrincipal = errors.New("no authenticated user in request context")

	// ErrMissingLinkContext is the link-authenticated counterpart of
	// [ErrMissingPrincipal].
	ErrMissingLinkContext = errors.New("no message link in request context")
)
