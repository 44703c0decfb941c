// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "regexp"

var (
	EmailRegex            = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	URLRegex              = regexp.MustCompile(`^https?://(www\.)?[-a-zA-Z0-9@:%._+~#=]{1,256}\.[a-zA-Z0-9()]{1,6}\b([-a-zA-Z0-9()@:%_+.~#?&/=]*)$`)
	PhoneRegex            = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
	AlphanumericWithSpace = regexp.MustCompile(`^[a-zA-Z0-9\s]+$`)
	NumbersOnlyRegex      = regexp.MustCompile(`^\d+$`)

	uppercaseRegex = regexp.MustCompile(`[A-Z]`)
	lowercaseRegex = regexp.MustCompile(`[a-z]`)
	numberRegex    = regexp.MustCompile(`[0-9]`)
	specialRegex   = regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{};':"\\|,.<>/?]`)
)
