// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account of the compliance dashboard.
type User struct {
	// ID is the unique user identifier (UUIDv7 string).
	ID string `json:"id"`

	// Email is the unique login of the user.
	Email string `json:"email"`

	// Name is the optional display name shown in the UI.
	Name string `json:"name,omitempty"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// It is never serialised.
	PasswordHash string `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DisplayName returns the name of the user, falling back to the email.
func (u User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}
