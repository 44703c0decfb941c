// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyTitle       = errors.New("title is required")
	ErrTitleTooLong     = errors.New("title is too long")
	ErrInvalidStatus    = errors.New("invalid status")
	ErrInvalidPriority  = errors.New("invalid priority")
	ErrInvalidRiskLevel = errors.New("invalid risk level")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
	ErrSetAndClear      = errors.New("field cannot be both set and cleared")

	ErrInvalidEmail    = errors.New("invalid email")
	ErrInvalidPassword = errors.New("invalid password")
	ErrNameTooLong     = errors.New("name is too long")

	ErrEmptyContent    = errors.New("content is required")
	ErrContentTooLarge = errors.New("content is too large")
	ErrEmptyText       = errors.New("text is required")
)
