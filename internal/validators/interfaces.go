// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the bounds enforced on received request bodies
// (name and password lengths, the username pattern, timedelta and file name
// rules) and the [Validator] that applies them per DTO.
//
// Validation failures are [*ValidationError] values matching [ErrValidation],
// so transport layers can map them to 400 without knowing each rule.
package validators

import "context"

// Validator validates a received value, optionally restricted to the named
// fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
