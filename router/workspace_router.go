// Copyright 2025 Label Studio contributors.
// SPDX-License-Identifier: Apache-2.0

package router

import (
	"github.com/PC91/label-studio/controllers"
	"github.com/PC91/label-studio/middlewares"
	"github.com/PC91/label-studio/shared"
	"github.com/labstack/echo/v4"
)

type WorkspaceRouter struct {
	*echo.Group
}

func NewWorkspaceRouter(
	sessionRouter SessionRouter,
	workspaceController *controllers.WorkspaceController,
	projectController *controllers.ProjectController,
	memberController *controllers.MemberController,
	webhookController *controllers.WebhookController,
	workspaceRepository shared.WorkspaceRepository,
	projectRepository shared.ProjectRepository,
	casbinRBACProvider shared.RBACProvider,
) WorkspaceRouter {
	workspaceRouter := sessionRouter.Group.Group("/workspaces")
	workspaceRouter.GET("/", workspaceController.List)
	workspaceRouter.POST("/", workspaceController.Create, middlewares.NeededScope([]string{"manage"}))

	// the step catalog is global, not workspace scoped
	workspaceRouter.GET("/onboarding-steps/", workspaceController.ListOnboardingSteps)

	/**
	Workspace scoped router
	All routes below are scoped to a specific workspace. Membership is
	checked here; non-members get a 404, never a 403.
	*/
	scopedRouter := workspaceRouter.Group("/:workspaceID",
		middlewares.WorkspaceMiddleware(workspaceRepository, casbinRBACProvider),
		middlewares.WorkspaceAccessControl(shared.ObjectWorkspace, shared.ActionRead),
	)

	scopedRouter.GET("/", workspaceController.Read)
	scopedRouter.GET("/onboarding/", workspaceController.OnboardingState)

	manageRequired := scopedRouter.Group("", middlewares.NeededScope([]string{"manage"}))

	manageRequired.PATCH("/", workspaceController.Patch, middlewares.WorkspaceAccessControl(shared.ObjectWorkspace, shared.ActionUpdate))
	// full updates deliberately require the create capability
	manageRequired.PUT("/", workspaceController.Put, middlewares.WorkspaceAccessControl(shared.ObjectWorkspace, shared.ActionCreate))
	manageRequired.DELETE("/", workspaceController.Delete, middlewares.WorkspaceAccessControl(shared.ObjectWorkspace, shared.ActionDelete))
	manageRequired.POST("/onboarding/", workspaceController.CompleteOnboardingStep, middlewares.WorkspaceAccessControl(shared.ObjectWorkspace, shared.ActionUpdate))

	/**
	Members
	Role assignments live in the rbac policy; there is no member table.
	*/
	scopedRouter.GET("/members/", memberController.List, middlewares.WorkspaceAccessControl(shared.ObjectUser, shared.ActionRead))
	manageRequired.PUT("/members/:userID/", memberController.Put, middlewares.WorkspaceAccessControl(shared.ObjectUser, shared.ActionUpdate))
	manageRequired.DELETE("/members/:userID/", memberController.Remove, middlewares.WorkspaceAccessControl(shared.ObjectUser, shared.ActionDelete))

	/**
	Projects
	*/
	scopedRouter.GET("/projects/", projectController.List)
	manageRequired.POST("/projects/", projectController.Create, middlewares.WorkspaceAccessControl(shared.ObjectProject, shared.ActionCreate))

	projectScopedRouter := scopedRouter.Group("/projects/:projectID", middlewares.ProjectMiddleware(projectRepository))
	projectScopedRouter.GET("/", projectController.Read, middlewares.ProjectAccessControl(shared.ObjectProject, shared.ActionRead))
	projectScopedRouter.DELETE("/", projectController.Delete, middlewares.NeededScope([]string{"manage"}), middlewares.ProjectAccessControl(shared.ObjectProject, shared.ActionDelete))
	projectScopedRouter.POST("/duplicate/", projectController.Duplicate, middlewares.NeededScope([]string{"manage"}), middlewares.WorkspaceAccessControl(shared.ObjectProject, shared.ActionCreate))

	projectScopedRouter.PUT("/members/:userID/", memberController.GrantProjectRole, middlewares.NeededScope([]string{"manage"}), middlewares.WorkspaceAccessControl(shared.ObjectUser, shared.ActionUpdate))
	projectScopedRouter.DELETE("/members/:userID/", memberController.RevokeProjectRole, middlewares.NeededScope([]string{"manage"}), middlewares.WorkspaceAccessControl(shared.ObjectUser, shared.ActionDelete))

	/**
	Webhook integrations
	*/
	webhookRouter := manageRequired.Group("/integrations/webhook", middlewares.WorkspaceAccessControl(shared.ObjectWorkspace, shared.ActionUpdate))
	webhookRouter.GET("/", webhookController.List)
	webhookRouter.POST("/", webhookController.Create)
	webhookRouter.PUT("/:webhookID/", webhookController.Patch)
	webhookRouter.DELETE("/:webhookID/", webhookController.Delete)

	return WorkspaceRouter{Group: workspaceRouter}
}
