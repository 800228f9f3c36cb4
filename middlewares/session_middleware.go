// Copyright 2025 Label Studio contributors.
// SPDX-License-Identifier: Apache-2.0

package middlewares

import (
	"log/slog"
	"strings"

	"github.com/PC91/label-studio/accesscontrol"
	"github.com/PC91/label-studio/shared"
	"github.com/getsentry/sentry-go"
	"github.com/labstack/echo/v4"
)

// SessionMiddleware resolves the caller identity. An unauthenticated
// request still passes with NoSession - the access control middleware
// downstream decides whether that is enough.
func SessionMiddleware(verifier shared.Verifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			userID, scopes, err := verifier.VerifyRequest(ctx.Request())
			if err != nil {
				if strings.Contains(err.Error(), "no token provided") {
					ctx.Set("session", accesscontrol.NoSession)
					return next(ctx)
				}
				if strings.Contains(err.Error(), "token provided but not found") {
					return echo.NewHTTPError(401, "token provided but not found").WithInternal(err)
				}
				sentry.CurrentHub().CaptureException(err)
				return echo.NewHTTPError(500, "unexpected error").WithInternal(err)
			}

			ctx.Set("session", accesscontrol.NewSession(userID, scopes))
			return next(ctx)
		}
	}
}

// EnsureSession rejects requests that carry no authenticated identity.
func EnsureSession() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			session := shared.GetSession(ctx)
			if session.GetUserID() == "" {
				slog.Warn("unauthenticated request rejected", "path", ctx.Request().URL.Path)
				return echo.NewHTTPError(401, "you are not authenticated")
			}
			return next(ctx)
		}
	}
}
