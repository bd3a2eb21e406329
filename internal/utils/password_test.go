// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TaskFlow Authors

package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("admin")
	require.NoError(t, err)

	assert.NotEqual(t, "admin", hash)
	assert.True(t, strings.HasPrefix(hash, "$2a$"), "expected bcrypt hash, got %q", hash)
}

func TestHashPassword_Salted(t *testing.T) {
	first, err := HashPassword("admin")
	require.NoError(t, err)
	second, err := HashPassword("admin")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, CheckPassword(first, "admin"))
	assert.True(t, CheckPassword(second, "admin"))
}

func TestHashPassword_TooLong(t *testing.T) {
	_, err := HashPassword(strings.Repeat("x", 73))
	assert.Error(t, err)
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)

	tests := []struct {
		name     string
		hash     string
		password string
		want     bool
	}{
		{name: "match", hash: hash, password: "s3cret", want: true},
		{name: "mismatch", hash: hash, password: "S3cret", want: false},
		{name: "empty password", hash: hash, password: "", want: false},
		{name: "not a hash", hash: "s3cret", password: "s3cret", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckPassword(tt.hash, tt.password))
		})
	}
}
