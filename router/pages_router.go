// Copyright 2025 Label Studio contributors.
// SPDX-License-Identifier: Apache-2.0

package router

import (
	"github.com/PC91/label-studio/controllers"
	"github.com/PC91/label-studio/middlewares"
	"github.com/PC91/label-studio/shared"
	"github.com/labstack/echo/v4"
)

type PagesRouter struct {
	*echo.Group
}

// NewPagesRouter wires the server-rendered pages. They sit outside
// /api but share the session and workspace scoping middlewares.
func NewPagesRouter(
	e *echo.Echo,
	pagesController *controllers.PagesController,
	verifier shared.Verifier,
	workspaceRepository shared.WorkspaceRepository,
	casbinRBACProvider shared.RBACProvider,
) PagesRouter {
	pagesRouter := e.Group("/workspaces",
		middlewares.SessionMiddleware(verifier),
		middlewares.EnsureSession(),
	)

	pagesRouter.GET("/", pagesController.WorkspaceList)
	pagesRouter.GET("/:workspaceID/settings/", pagesController.WorkspaceSettings,
		middlewares.WorkspaceMiddleware(workspaceRepository, casbinRBACProvider))

	return PagesRouter{Group: pagesRouter}
}
