// Copyright 2025 Label Studio contributors.
// SPDX-License-Identifier: Apache-2.0

package router

import (
	"github.com/PC91/label-studio/middlewares"
	"github.com/PC91/label-studio/shared"
	"github.com/labstack/echo/v4"
)

type SessionRouter struct {
	*echo.Group
}

func whoami(rbacProvider shared.RBACProvider) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		userID := shared.GetSession(ctx).GetUserID()

		workspaces, err := rbacProvider.DomainsOfUser(userID)
		if err != nil {
			return echo.NewHTTPError(500, "could not determine the workspaces of the user").WithInternal(err)
		}

		return ctx.JSON(200, map[string]any{
			"userID":     userID,
			"workspaces": workspaces,
		})
	}
}

// NewSessionRouter groups every route that requires an authenticated
// caller. The session middleware resolves the token; EnsureSession
// rejects anonymous requests.
func NewSessionRouter(apiRouter APIRouter, verifier shared.Verifier, rbacProvider shared.RBACProvider) SessionRouter {
	sessionRouter := apiRouter.Group.Group("",
		middlewares.SessionMiddleware(verifier),
		middlewares.EnsureSession(),
	)

	sessionRouter.GET("/whoami/", whoami(rbacProvider))

	return SessionRouter{Group: sessionRouter}
}
