// Copyright 2025 Label Studio contributors.
// SPDX-License-Identifier: Apache-2.0

package controllers

import (
	"fmt"

	"github.com/PC91/label-studio/database/models"
	"github.com/PC91/label-studio/dtos"
	"github.com/PC91/label-studio/shared"
	"github.com/PC91/label-studio/transformer"
	"github.com/labstack/echo/v4"
)

type ProjectController struct {
	projectRepository shared.ProjectRepository
	projectService    shared.ProjectService
}

func NewProjectController(projectRepository shared.ProjectRepository, projectService shared.ProjectService) *ProjectController {
	return &ProjectController{
		projectRepository: projectRepository,
		projectService:    projectService,
	}
}

func (controller *ProjectController) List(ctx shared.Context) error {
	workspace := shared.GetWorkspace(ctx)
	pageInfo := shared.GetPageInfo(ctx)

	page, err := controller.projectRepository.ListByWorkspacePaged(workspace.ID, pageInfo)
	if err != nil {
		return echo.NewHTTPError(500, "could not list projects").WithInternal(err)
	}

	return ctx.JSON(200, page.Map(func(project models.Project) any {
		return transformer.ProjectModelToDTO(project)
	}))
}

func (controller *ProjectController) Create(ctx shared.Context) error {
	workspace := shared.GetWorkspace(ctx)

	var req dtos.ProjectCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	project := transformer.ProjectCreateRequestToModel(req, workspace.ID)

	if err := controller.projectRepository.Create(nil, &project); err != nil {
		return echo.NewHTTPError(500, "could not create project").WithInternal(err)
	}

	if err := shared.BootstrapProject(shared.GetRBAC(ctx), project.ID.String()); err != nil {
		return echo.NewHTTPError(500, "could not bootstrap project roles").WithInternal(err)
	}

	return ctx.JSON(201, transformer.ProjectModelToDTO(project))
}

func (controller *ProjectController) Read(ctx shared.Context) error {
	project := shared.GetProject(ctx)
	return ctx.JSON(200, transformer.ProjectModelToDTO(project))
}

func (controller *ProjectController) Delete(ctx shared.Context) error {
	project := shared.GetProject(ctx)

	if err := controller.projectRepository.Delete(nil, project.ID); err != nil {
		return echo.NewHTTPError(500, "could not delete project").WithInternal(err)
	}

	return ctx.NoContent(204)
}

func (controller *ProjectController) Duplicate(ctx shared.Context) error {
	project := shared.GetProject(ctx)

	duplicate, err := controller.projectService.Duplicate(project.ID)
	if err != nil {
		return err
	}

	if err := shared.BootstrapProject(shared.GetRBAC(ctx), duplicate.ID.String()); err != nil {
		return echo.NewHTTPError(500, "could not bootstrap project roles").WithInternal(err)
	}

	return ctx.JSON(201, transformer.ProjectModelToDTO(duplicate))
}
