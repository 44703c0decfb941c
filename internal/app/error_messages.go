// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer message constants.
//
// The first block holds the messages the server writes into ApiError
// bodies. The second block holds the fixed user-facing messages the client
// shows when an operation fails; transport details never reach the user.
package app

// Server response messages.
const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidEmailPassword is returned when the supplied email/password
	// combination does not match any existing user record.
	MsgInvalidEmailPassword = "invalid email/password"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNotAuthenticated is returned when a protected route is called
	// without a bearer token.
	MsgNotAuthenticated = "not authenticated"

	// MsgEmailAlreadyExists is returned when a registration attempt is
	// rejected because the email is already in use.
	MsgEmailAlreadyExists = "email already registered"

	// MsgUserNotFound is returned by /auth/me when the token's subject no
	// longer exists.
	MsgUserNotFound = "user not found"

	// MsgComplianceItemNotFound is returned for a missing or foreign
	// compliance item.
	MsgComplianceItemNotFound = "compliance item not found"

	// MsgDocumentNotFound is returned for a missing or foreign document.
	MsgDocumentNotFound = "document not found"

	// MsgRateLimited is returned with 429 on /api/ai.
	MsgRateLimited = "too many requests, slow down"

	// MsgAnalysisFailed is returned when every analyzer backend failed.
	MsgAnalysisFailed = "analysis failed"
)

// ApiError codes.
const (
	CodeValidation   = "validation_error"
	CodeUnauthorized = "unauthorized"
	CodeNotFound     = "not_found"
	CodeConflict     = "conflict"
	CodeRateLimited  = "rate_limited"
	CodeInternal     = "internal_error"
	CodeBadGateway   = "upstream_error"
)

// Client user-facing messages.
const (
	MsgLoginFailed          = "Login failed. Please check your credentials."
	MsgRegistrationFailed   = "Registration failed. Email may already be in use."
	MsgSessionExpired       = "Session expired. Please login again."
	MsgLoadStatsFailed      = "Failed to load dashboard statistics."
	MsgLoadActivityFailed   = "Failed to load activity."
	MsgLoadComplianceFailed = "Failed to load compliance items."
	MsgLoadItemFailed       = "Failed to load compliance item."
	MsgCreateItemFailed     = "Failed to create compliance item."
	MsgUpdateItemFailed     = "Failed to update compliance item."
	MsgDeleteItemFailed     = "Failed to delete compliance item."
	MsgAnalyzeFailed        = "Failed to analyze document."
	MsgAssessRiskFailed     = "Failed to assess risk."
	MsgSaveDocumentFailed   = "Failed to save document."
	MsgLoadDocumentsFailed  = "Failed to load documents."
)
