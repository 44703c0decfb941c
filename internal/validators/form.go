// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 8

// PasswordStrength grades a password by the character classes it uses.
type PasswordStrength string

const (
	StrengthWeak   PasswordStrength = "weak"
	StrengthMedium PasswordStrength = "medium"
	StrengthStrong PasswordStrength = "strong"
)

// Form field keys used in the maps returned by the form validators.
const (
	FormFieldName            = "name"
	FormFieldEmail           = "email"
	FormFieldPassword        = "password"
	FormFieldConfirmPassword = "confirmPassword"
)

// Messages shown next to form fields.
const (
	MsgEmailRequired    = "Email is required"
	MsgInvalidEmail     = "Invalid email format"
	MsgPasswordTooShort = "Password must be at least 8 characters"
	MsgPasswordWeak     = "Password is weak. Add uppercase, numbers, and special characters."
	MsgPasswordMismatch = "Passwords do not match"
)

// FieldResult is the outcome of validating a single form field.
// Message is empty when the value is valid.
type FieldResult struct {
	Valid   bool
	Message string
}

// PasswordResult extends FieldResult with the password strength. A weak
// password is valid but carries a warning message.
type PasswordResult struct {
	Valid    bool
	Message  string
	Strength PasswordStrength
}

// FormErrors maps a form field to its error message.
type FormErrors map[string]string

// HasErrors reports whether any field failed.
func (e FormErrors) HasErrors() bool {
	return len(e) > 0
}

// ValidateEmail checks that email is present and well-formed.
func ValidateEmail(email string) FieldResult {
	if strings.TrimSpace(email) == "" {
		return FieldResult{Message: MsgEmailRequired}
	}

	if !EmailRegex.MatchString(email) {
		return FieldResult{Message: MsgInvalidEmail}
	}

	return FieldResult{Valid: true}
}

// ValidatePassword checks the minimum length and grades the strength.
func ValidatePassword(password string) PasswordResult {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return PasswordResult{Message: MsgPasswordTooShort, Strength: StrengthWeak}
	}

	strength := PasswordStrengthOf(password)
	res := PasswordResult{Valid: true, Strength: strength}
	if strength == StrengthWeak {
		res.Message = MsgPasswordWeak
	}

	return res
}

// PasswordStrengthOf counts uppercase, lowercase, digit and special
// characters: three or more classes is strong, two is medium.
func PasswordStrengthOf(password string) PasswordStrength {
	score := 0
	for _, re := range []*regexp.Regexp{uppercaseRegex, lowercaseRegex, numberRegex, specialRegex} {
		if re.MatchString(password) {
			score++
		}
	}

	switch {
	case score >= 3:
		return StrengthStrong
	case score >= 2:
		return StrengthMedium
	default:
		return StrengthWeak
	}
}

// ValidateRequired fails for blank values.
func ValidateRequired(value, fieldName string) FieldResult {
	if strings.TrimSpace(value) == "" {
		return FieldResult{Message: fieldName + " is required"}
	}
	return FieldResult{Valid: true}
}

// ValidateMinLength fails for values shorter than minLength characters.
func ValidateMinLength(value string, minLength int, fieldName string) FieldResult {
	if utf8.RuneCountInString(value) < minLength {
		return FieldResult{Message: fmt.Sprintf("%s must be at least %d characters", fieldName, minLength)}
	}
	return FieldResult{Valid: true}
}

// ValidateLoginForm validates the login screen.
func ValidateLoginForm(email, password string) FormErrors {
	errs := FormErrors{}

	if res := ValidateEmail(email); !res.Valid {
		errs[FormFieldEmail] = res.Message
	}
	if res := ValidateRequired(password, "Password"); !res.Valid {
		errs[FormFieldPassword] = res.Message
	}

	return errs
}

// ValidateRegisterForm validates the registration screen.
func ValidateRegisterForm(name, email, password, confirmPassword string) FormErrors {
	errs := FormErrors{}

	if res := ValidateRequired(name, "Name"); !res.Valid {
		errs[FormFieldName] = res.Message
	}
	if res := ValidateEmail(email); !res.Valid {
		errs[FormFieldEmail] = res.Message
	}
	if res := ValidatePassword(password); !res.Valid {
		errs[FormFieldPassword] = res.Message
	}
	if password != confirmPassword {
		errs[FormFieldConfirmPassword] = MsgPasswordMismatch
	}

	return errs
}
