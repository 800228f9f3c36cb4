// Copyright 2025 Label Studio contributors.
// SPDX-License-Identifier: Apache-2.0

package middlewares

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/PC91/label-studio/shared"
	"github.com/PC91/label-studio/utils"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// WorkspaceMiddleware loads the workspace named in the path, scopes the
// rbac to its domain and rejects users without any role in it. An
// unknown id and a missing role both read as 404 - not leaking whether
// the workspace exists.
func WorkspaceMiddleware(workspaceRepository shared.WorkspaceRepository, rbacProvider shared.RBACProvider) shared.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx shared.Context) error {
			workspaceID, err := shared.GetWorkspaceID(ctx)
			if err != nil {
				return echo.NewHTTPError(400, "no workspace id provided").WithInternal(err)
			}

			id, err := uuid.Parse(workspaceID)
			if err != nil {
				return echo.NewHTTPError(404, "could not find workspace").WithInternal(err)
			}

			workspace, err := workspaceRepository.Read(id)
			if err != nil {
				return echo.NewHTTPError(404, "could not find workspace").WithInternal(err)
			}

			rbac := rbacProvider.GetDomainRBAC(workspace.ID.String())

			user := shared.GetSession(ctx).GetUserID()
			hasAccess, err := rbac.HasAccess(user)
			if err != nil {
				return echo.NewHTTPError(500, "could not determine if the user has access").WithInternal(err)
			}
			if !hasAccess {
				slog.Warn("access denied to workspace", "user", user, "workspace", workspace.ID)
				return echo.NewHTTPError(404, "could not find workspace")
			}

			shared.SetWorkspace(ctx, workspace)
			shared.SetRBAC(ctx, rbac)

			return next(ctx)
		}
	}
}

// WorkspaceAccessControl gates a route on a capability inside the
// current workspace domain.
func WorkspaceAccessControl(obj shared.Object, act shared.Action) shared.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx shared.Context) error {
			rbac := shared.GetRBAC(ctx)
			user := shared.GetSession(ctx).GetUserID()

			allowed, err := rbac.IsAllowed(user, obj, act)
			if err != nil {
				return echo.NewHTTPError(500, "could not determine if the user has access").WithInternal(err)
			}

			if !allowed {
				slog.Warn("access denied in accessControlMiddleware", "user", user, "object", obj, "action", act)
				return echo.NewHTTPError(403, "you are not allowed to do this")
			}

			return next(ctx)
		}
	}
}

// ProjectMiddleware loads the project named in the path and rejects ids
// outside the current workspace.
func ProjectMiddleware(projectRepository shared.ProjectRepository) shared.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx shared.Context) error {
			workspace := shared.GetWorkspace(ctx)

			projectID, err := uuid.Parse(shared.GetParam(ctx, "projectID"))
			if err != nil {
				return echo.NewHTTPError(404, "could not find project").WithInternal(err)
			}

			project, err := projectRepository.Read(projectID)
			if err != nil {
				return echo.NewHTTPError(404, "could not find project").WithInternal(err)
			}

			if project.WorkspaceID != workspace.ID {
				return echo.NewHTTPError(404, "could not find project")
			}

			shared.SetProject(ctx, project)

			return next(ctx)
		}
	}
}

// ProjectAccessControl gates a route on a capability, accepting either
// a project scoped grant or the workspace wide one.
func ProjectAccessControl(obj shared.Object, act shared.Action) shared.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx shared.Context) error {
			rbac := shared.GetRBAC(ctx)
			project := shared.GetProject(ctx)
			user := shared.GetSession(ctx).GetUserID()

			allowed, err := rbac.IsAllowedInProject(&project, user, obj, act)
			if err != nil {
				return echo.NewHTTPError(500, "could not determine if the user has access").WithInternal(err)
			}
			if !allowed {
				allowed, err = rbac.IsAllowed(user, obj, act)
				if err != nil {
					return echo.NewHTTPError(500, "could not determine if the user has access").WithInternal(err)
				}
			}

			if !allowed {
				slog.Warn("access denied in projectAccessControlMiddleware", "user", user, "project", project.ID, "object", obj, "action", act)
				return echo.NewHTTPError(403, "you are not allowed to do this")
			}

			return next(ctx)
		}
	}
}

// NeededScope rejects tokens that miss one of the required scopes.
func NeededScope(neededScopes []string) shared.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c shared.Context) error {
			userScopes := shared.GetSession(c).GetScopes()

			if !utils.ContainsAll(userScopes, neededScopes) {
				slog.Error("user does not have the required scopes", "neededScopes", neededScopes, "userScopes", userScopes)
				return echo.NewHTTPError(403, fmt.Sprintf("your access token does not have the required scope, needed scopes: %s", strings.Join(neededScopes, ", ")))
			}

			return next(c)
		}
	}
}
