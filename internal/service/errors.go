// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrAnalysisFailed = errors.New("analysis failed")
)

// Client-side errors. Their text is the message shown to the user.
var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrNoTokenReturned  = errors.New("server returned no token")
)
