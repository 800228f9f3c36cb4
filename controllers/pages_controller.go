// Copyright 2025 Label Studio contributors.
// SPDX-License-Identifier: Apache-2.0

package controllers

import (
	"embed"
	"html/template"

	"github.com/PC91/label-studio/shared"
	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// PagesController serves the minimal server-rendered pages. The real
// UI is a separate frontend; these pages only cover listing and
// settings for installations without it.
type PagesController struct {
	workspaceRepository shared.WorkspaceRepository
}

func NewPagesController(workspaceRepository shared.WorkspaceRepository) *PagesController {
	return &PagesController{
		workspaceRepository: workspaceRepository,
	}
}

func (controller *PagesController) WorkspaceList(ctx shared.Context) error {
	workspaces, err := controller.workspaceRepository.List([]string{"projects_count"})
	if err != nil {
		return echo.NewHTTPError(500, "could not list workspaces").WithInternal(err)
	}

	ctx.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	return pageTemplates.ExecuteTemplate(ctx.Response(), "workspace_list.html", map[string]any{
		"Workspaces": workspaces,
	})
}

func (controller *PagesController) WorkspaceSettings(ctx shared.Context) error {
	workspace := shared.GetWorkspace(ctx)

	ctx.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	return pageTemplates.ExecuteTemplate(ctx.Response(), "workspace_settings.html", map[string]any{
		"Workspace": workspace,
	})
}
