// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package otp_test

import (
	"testing"

	"codeberg.org/oliverandrich/tripwell/internal/services/otp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Length(t *testing.T) {
	code, err := otp.Generate()

	require.NoError(t, err)
	assert.Len(t, code, otp.CodeLength)
}

func TestGenerate_DigitsOnly(t *testing.T) {
	for i := 0; i < 50; i++ {
		code, err := otp.Generate()
		require.NoError(t, err)
		for _, r := range code {
			assert.True(t, r >= '0' && r <= '9', "unexpected character %q in %q", r, code)
		}
	}
}

func TestGenerate_Varies(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		code, err := otp.Generate()
		require.NoError(t, err)
		seen[code] = true
	}
	// 20 draws from a million possibilities collide about never; more
	// than one distinct value proves the generator is not constant.
	assert.Greater(t, len(seen), 1)
}
