// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package otp generates the short numeric passcodes sent in recovery
// emails. The code shape is part of the mail template contract; change
// CodeLength only together with the translations.
package otp

import "crypto/rand"

// CodeLength is the number of digits in a passcode.
const CodeLength = 6

// digits is the passcode alphabet.
const digits = "0123456789"

// Generate returns a random numeric passcode of CodeLength digits.
func Generate() (string, error) {
	bytes := make([]byte, CodeLength)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}

	for i := range bytes {
		bytes[i] = digits[int(bytes[i])%len(digits)]
	}

	return string(bytes), nil
}
