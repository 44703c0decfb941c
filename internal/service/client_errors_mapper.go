// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/parse-guard/internal/adapter"
	"github.com/MKhiriev/parse-guard/internal/app"
	"github.com/MKhiriev/parse-guard/internal/store"
)

// ClientError is what client services return. Error() is the message for
// the user, Unwrap() the reason behind it.
type ClientError struct {
	Message string
	Err     error
}

func (e *ClientError) Error() string {
	return e.Message
}

func (e *ClientError) Unwrap() error {
	return e.Err
}

func clientError(message string, err error) error {
	return &ClientError{Message: message, Err: mapAdapterError(err)}
}

// mapAdapterError translates the adapter's transport error into a service
// business error. The transport error stays in the chain.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)

	case errors.Is(err, adapter.ErrUnauthorized):
		if msg == app.MsgInvalidEmailPassword {
			return fmt.Errorf("%w: %w", ErrWrongPassword, err)
		}
		return fmt.Errorf("%w: %w", ErrNotAuthenticated, err)

	case errors.Is(err, adapter.ErrNotFound):
		switch msg {
		case app.MsgComplianceItemNotFound:
			return fmt.Errorf("%w: %w", store.ErrComplianceItemNotFound, err)
		case app.MsgDocumentNotFound:
			return fmt.Errorf("%w: %w", store.ErrDocumentNotFound, err)
		}

	case errors.Is(err, adapter.ErrConflict):
		if msg == app.MsgEmailAlreadyExists {
			return fmt.Errorf("%w: %w", store.ErrEmailAlreadyExists, err)
		}

	case errors.Is(err, adapter.ErrBadGateway):
		return fmt.Errorf("%w: %w", ErrAnalysisFailed, err)
	}

	return err
}

// extractBody extracts the message from an error of the form
// "bad request: <message>".
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
