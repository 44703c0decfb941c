// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds input validation for both sides of ParseGuard.
//
// Server side, request DTOs are checked by implementations of [Validator],
// which services receive by injection. Client side, the form helpers
// (ValidateEmail, ValidatePassword, ValidateRegisterForm, ...) return
// user-facing messages that the TUI shows next to the offending field.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
