// Copyright 2025 Label Studio contributors.
// SPDX-License-Identifier: Apache-2.0

package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/PC91/label-studio/accesscontrol"
	"github.com/PC91/label-studio/mocks"
	"github.com/PC91/label-studio/shared"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSessionMiddleware(t *testing.T) {
	t.Run("should set the userID and scopes of a verified token", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		verifier := mocks.NewVerifier(t)
		verifier.On("VerifyRequest", mock.Anything).Return("user1", []string{"manage"}, nil)

		mw := SessionMiddleware(verifier)

		var called bool
		handler := mw(func(ctx echo.Context) error {
			called = true
			sess := shared.GetSession(ctx)

			assert.Equal(t, "user1", sess.GetUserID())
			assert.ElementsMatch(t, []string{"manage"}, sess.GetScopes())
			return nil
		})

		_ = handler(c)
		assert.True(t, called)
	})

	t.Run("should pass with no session when no token is provided", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		verifier := mocks.NewVerifier(t)
		verifier.On("VerifyRequest", mock.Anything).Return("", nil, errors.New("no token provided"))

		mw := SessionMiddleware(verifier)

		var called bool
		handler := mw(func(ctx echo.Context) error {
			called = true
			sess := shared.GetSession(ctx)
			assert.Equal(t, accesscontrol.NoSession, sess)
			return nil
		})

		_ = handler(c)
		assert.True(t, called)
	})

	t.Run("should answer 401 for an unknown token", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		verifier := mocks.NewVerifier(t)
		verifier.On("VerifyRequest", mock.Anything).Return("", nil, errors.New("token provided but not found"))

		mw := SessionMiddleware(verifier)

		var called bool
		err := mw(func(ctx echo.Context) error {
			called = true
			return nil
		})(c)

		assert.False(t, called)
		var httpErr *echo.HTTPError
		if assert.ErrorAs(t, err, &httpErr) {
			assert.Equal(t, 401, httpErr.Code)
		}
	})
}

func TestEnsureSession(t *testing.T) {
	t.Run("should reject the empty session", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Set("session", accesscontrol.NoSession)

		var called bool
		err := EnsureSession()(func(ctx echo.Context) error {
			called = true
			return nil
		})(c)

		assert.False(t, called)
		var httpErr *echo.HTTPError
		if assert.ErrorAs(t, err, &httpErr) {
			assert.Equal(t, 401, httpErr.Code)
		}
	})

	t.Run("should let an authenticated session pass", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Set("session", accesscontrol.NewSession("user1", []string{"manage"}))

		var called bool
		err := EnsureSession()(func(ctx echo.Context) error {
			called = true
			return nil
		})(c)

		assert.Nil(t, err)
		assert.True(t, called)
	})
}
