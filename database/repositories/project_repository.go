// Copyright 2025 Label Studio contributors.
// SPDX-License-Identifier: Apache-2.0

package repositories

import (
	"errors"
	"fmt"

	"github.com/PC91/label-studio/database/models"
	"github.com/PC91/label-studio/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type projectRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.Project]
}

func NewProjectRepository(db *gorm.DB) *projectRepository {
	return &projectRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.Project](db),
	}
}

func (g *projectRepository) Create(tx *gorm.DB, project *models.Project) error {
	firstFreeSlug, err := g.firstFreeSlug(project.WorkspaceID, project.Slug)
	if err != nil {
		return fmt.Errorf("could not generate next slug: %w", err)
	}
	project.Slug = firstFreeSlug

	return g.GetDB(tx).Create(project).Error
}

// FindFirstByID returns nil when no project exists with the given id.
func (g *projectRepository) FindFirstByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := g.db.First(&project, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (g *projectRepository) ListByWorkspacePaged(workspaceID uuid.UUID, pageInfo shared.PageInfo) (shared.Paged[models.Project], error) {
	var count int64
	if err := g.db.Model(&models.Project{}).Where("workspace_id = ?", workspaceID).Count(&count).Error; err != nil {
		return shared.Paged[models.Project]{}, err
	}

	var projects []models.Project
	q := g.db.Where("workspace_id = ?", workspaceID).Order("created_at ASC")
	if err := pageInfo.ApplyOnDB(q).Find(&projects).Error; err != nil {
		return shared.Paged[models.Project]{}, err
	}

	return shared.NewPaged(pageInfo, count, projects), nil
}

func (g *projectRepository) CountByWorkspaceID(workspaceID uuid.UUID) (int64, error) {
	var count int64
	err := g.db.Model(&models.Project{}).Where("workspace_id = ?", workspaceID).Count(&count).Error
	return count, err
}

// slugs are unique per workspace, not globally
func (g *projectRepository) firstFreeSlug(workspaceID uuid.UUID, projectSlug string) (string, error) {
	var slugs []string
	err := g.db.Model(&models.Project{}).
		Where("workspace_id = ? AND slug LIKE ?", workspaceID, projectSlug+"%").
		Pluck("slug", &slugs).Error
	if err != nil {
		return "", err
	}

	baseTaken := false
	existing := make(map[string]bool)
	for _, s := range slugs {
		existing[s] = true
		if s == projectSlug {
			baseTaken = true
		}
	}

	if !baseTaken {
		return projectSlug, nil
	}

	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s-%d", projectSlug, i)
		if !existing[candidate] {
			return candidate, nil
		}
	}
}
