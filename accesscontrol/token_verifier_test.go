// Copyright 2025 Label Studio contributors.
// SPDX-License-Identifier: Apache-2.0

package accesscontrol

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStaticTokenVerifier(t *testing.T) {
	verifier := NewStaticTokenVerifier("abc:user1,def:user2,malformed")

	t.Run("should resolve a bearer token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer abc")

		userID, scopes, err := verifier.VerifyRequest(req)

		assert.NoError(t, err)
		assert.Equal(t, "user1", userID)
		assert.ElementsMatch(t, []string{"manage"}, scopes)
	})

	t.Run("should accept the Token prefix as well", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Token def")

		userID, _, err := verifier.VerifyRequest(req)

		assert.NoError(t, err)
		assert.Equal(t, "user2", userID)
	})

	t.Run("should report a missing token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)

		_, _, err := verifier.VerifyRequest(req)

		assert.EqualError(t, err, "no token provided")
	})

	t.Run("should report an unknown token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer nope")

		_, _, err := verifier.VerifyRequest(req)

		assert.EqualError(t, err, "token provided but not found")
	})

	t.Run("should skip malformed pairs in the configuration", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer malformed")

		_, _, err := verifier.VerifyRequest(req)

		assert.Error(t, err)
	})
}
