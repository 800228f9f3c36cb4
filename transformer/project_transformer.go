// Copyright 2025 Label Studio contributors.
// SPDX-License-Identifier: Apache-2.0

package transformer

import (
	"github.com/gosimple/slug"

	"github.com/PC91/label-studio/database/models"
	"github.com/PC91/label-studio/dtos"
	"github.com/google/uuid"
)

func ProjectCreateRequestToModel(c dtos.ProjectCreateRequest, workspaceID uuid.UUID) models.Project {
	return models.Project{
		Title:       c.Title,
		Slug:        slug.Make(c.Title),
		Description: c.Description,
		WorkspaceID: workspaceID,
	}
}

func ProjectModelToDTO(project models.Project) dtos.ProjectDTO {
	return dtos.ProjectDTO{
		ID:          project.ID,
		Title:       project.Title,
		Slug:        project.Slug,
		Description: project.Description,
		WorkspaceID: project.WorkspaceID,
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}
}
