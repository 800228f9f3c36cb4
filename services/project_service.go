// Copyright 2025 Label Studio contributors.
// SPDX-License-Identifier: Apache-2.0
package services

import (
	"fmt"

	"github.com/PC91/label-studio/database/models"
	"github.com/PC91/label-studio/monitoring"
	"github.com/PC91/label-studio/shared"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/labstack/echo/v4"
)

type ProjectService struct {
	projectRepository shared.ProjectRepository
}

func NewProjectService(projectRepository shared.ProjectRepository) *ProjectService {
	return &ProjectService{
		projectRepository: projectRepository,
	}
}

// Duplicate copies a project inside its workspace. A missing source
// project is an explicit not-found, never a silent no-op.
func (p *ProjectService) Duplicate(projectID uuid.UUID) (models.Project, error) {
	source, err := p.projectRepository.FindFirstByID(projectID)
	if err != nil {
		return models.Project{}, echo.NewHTTPError(500, "could not look up project").WithInternal(err)
	}
	if source == nil {
		return models.Project{}, echo.NewHTTPError(404, "project not found").WithInternal(fmt.Errorf("project %s does not exist", projectID))
	}

	title := source.Title + " (copy)"
	duplicate := models.Project{
		Title:       title,
		Slug:        slug.Make(title),
		Description: source.Description,
		WorkspaceID: source.WorkspaceID,
	}

	if err := p.projectRepository.Create(nil, &duplicate); err != nil {
		return models.Project{}, echo.NewHTTPError(500, "could not duplicate project").WithInternal(err)
	}

	monitoring.ProjectDuplicatedAmount.Inc()
	return duplicate, nil
}
