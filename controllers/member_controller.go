// Copyright 2025 Label Studio contributors.
// SPDX-License-Identifier: Apache-2.0

package controllers

import (
	"fmt"

	"github.com/PC91/label-studio/dtos"
	"github.com/PC91/label-studio/shared"
	"github.com/labstack/echo/v4"
)

// MemberController manages workspace and project role assignments. The
// member list lives entirely in the rbac policy, there is no user table
// row behind it.
type MemberController struct{}

func NewMemberController() *MemberController {
	return &MemberController{}
}

func (controller *MemberController) List(ctx shared.Context) error {
	rbac := shared.GetRBAC(ctx)

	members, err := rbac.GetAllMembersOfWorkspace()
	if err != nil {
		return echo.NewHTTPError(500, "could not list members").WithInternal(err)
	}

	owner, err := rbac.GetOwnerOfWorkspace()
	if err != nil {
		return echo.NewHTTPError(500, "could not determine the workspace owner").WithInternal(err)
	}

	result := make([]dtos.MemberDTO, 0, len(members))
	for _, member := range members {
		role, err := rbac.GetDomainRole(member)
		if err != nil {
			role = shared.RoleUnknown
		}
		result = append(result, dtos.MemberDTO{
			ID:    member,
			Role:  string(role),
			Owner: member == owner,
		})
	}

	return ctx.JSON(200, result)
}

// Put adds the user to the workspace with the requested role, or moves
// an existing member to it.
func (controller *MemberController) Put(ctx shared.Context) error {
	rbac := shared.GetRBAC(ctx)
	userID := shared.GetParam(ctx, "userID")

	var req dtos.ChangeRoleRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	owner, err := rbac.GetOwnerOfWorkspace()
	if err != nil {
		return echo.NewHTTPError(500, "could not determine the workspace owner").WithInternal(err)
	}
	if userID == owner {
		return echo.NewHTTPError(400, "the owner role cannot be changed")
	}

	role := shared.Role(req.Role)

	current, err := rbac.GetDomainRole(userID)
	if err == nil && current == role {
		return ctx.JSON(200, dtos.MemberDTO{ID: userID, Role: req.Role})
	}
	if err == nil {
		if err := rbac.RevokeRole(userID, current); err != nil {
			return echo.NewHTTPError(500, "could not revoke the current role").WithInternal(err)
		}
	}

	if err := rbac.GrantRole(userID, role); err != nil {
		return echo.NewHTTPError(500, "could not grant the role").WithInternal(err)
	}

	return ctx.JSON(200, dtos.MemberDTO{ID: userID, Role: req.Role})
}

func (controller *MemberController) Remove(ctx shared.Context) error {
	rbac := shared.GetRBAC(ctx)
	userID := shared.GetParam(ctx, "userID")

	owner, err := rbac.GetOwnerOfWorkspace()
	if err != nil {
		return echo.NewHTTPError(500, "could not determine the workspace owner").WithInternal(err)
	}
	if userID == owner {
		return echo.NewHTTPError(400, "the owner cannot be removed")
	}

	role, err := rbac.GetDomainRole(userID)
	if err != nil {
		return echo.NewHTTPError(404, "user is not a member of this workspace").WithInternal(err)
	}

	if err := rbac.RevokeRole(userID, role); err != nil {
		return echo.NewHTTPError(500, "could not revoke the role").WithInternal(err)
	}

	return ctx.NoContent(204)
}

// GrantProjectRole hands a member an additional role scoped to a single
// project inside the workspace.
func (controller *MemberController) GrantProjectRole(ctx shared.Context) error {
	rbac := shared.GetRBAC(ctx)
	project := shared.GetProject(ctx)
	userID := shared.GetParam(ctx, "userID")

	var req dtos.ChangeRoleRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	if err := rbac.GrantRoleInProject(userID, shared.Role(req.Role), project.ID.String()); err != nil {
		return echo.NewHTTPError(500, "could not grant the project role").WithInternal(err)
	}

	return ctx.JSON(200, dtos.MemberDTO{ID: userID, Role: req.Role})
}

func (controller *MemberController) RevokeProjectRole(ctx shared.Context) error {
	rbac := shared.GetRBAC(ctx)
	project := shared.GetProject(ctx)
	userID := shared.GetParam(ctx, "userID")

	role := ctx.QueryParam("role")
	if role != string(shared.RoleAdmin) && role != string(shared.RoleMember) {
		return echo.NewHTTPError(400, "role query parameter must be admin or member")
	}

	if err := rbac.RevokeRoleInProject(userID, shared.Role(role), project.ID.String()); err != nil {
		return echo.NewHTTPError(500, "could not revoke the project role").WithInternal(err)
	}

	return ctx.NoContent(204)
}
