// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request values before they reach the services.
//
// A [Validator] validates a value as a whole or, when field names are given,
// only those fields. Unsupported types yield [ErrUnsupportedType] and unknown
// field names [ErrUnknownField].
package validators

import "context"

// Validator validates the provided input and optionally restricts
// validation to specific named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
