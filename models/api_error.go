// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ApiError is the JSON error body returned by the server for every non-2xx
// response.
type ApiError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
	Status  int    `json:"status,omitempty"`
}

// Error implements the error interface.
func (e ApiError) Error() string {
	return e.Message
}
