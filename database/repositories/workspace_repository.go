// Copyright 2025 Label Studio contributors.
// SPDX-License-Identifier: Apache-2.0

package repositories

import (
	"github.com/PC91/label-studio/database/models"
	"github.com/PC91/label-studio/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// countSelects maps an include field name to the select expression that
// annotates it. Field names outside this map are ignored.
var countSelects = map[string]string{
	"projects_count": "(SELECT COUNT(*) FROM projects WHERE projects.workspace_id = workspaces.id) AS projects_count",
}

type workspaceRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.Workspace]
}

func NewWorkspaceRepository(db *gorm.DB) *workspaceRepository {
	return &workspaceRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.Workspace](db),
	}
}

func (g *workspaceRepository) selectWithCounts(db *gorm.DB, fields []string) *gorm.DB {
	selects := []string{"workspaces.*"}
	for _, f := range fields {
		if expr, ok := countSelects[f]; ok {
			selects = append(selects, expr)
		}
	}
	return db.Model(&models.Workspace{}).Select(selects)
}

func applyFilter(db *gorm.DB, filter shared.ListFilter) *gorm.DB {
	switch filter {
	case shared.FilterPinnedOnly:
		return db.Where("pinned_at IS NOT NULL")
	case shared.FilterExcludePinned:
		return db.Where("pinned_at IS NULL")
	}
	return db
}

func (g *workspaceRepository) List(fields []string) ([]models.Workspace, error) {
	var workspaces []models.Workspace
	err := g.selectWithCounts(g.db, fields).
		Order("created_at ASC").
		Find(&workspaces).Error
	return workspaces, err
}

func (g *workspaceRepository) ListPaged(pageInfo shared.PageInfo, fields []string, filter shared.ListFilter) (shared.Paged[models.Workspace], error) {
	var count int64
	if err := applyFilter(g.db.Model(&models.Workspace{}), filter).Count(&count).Error; err != nil {
		return shared.Paged[models.Workspace]{}, err
	}

	var workspaces []models.Workspace
	q := applyFilter(g.selectWithCounts(g.db, fields), filter).
		Order("created_at ASC")
	if err := pageInfo.ApplyOnDB(q).Find(&workspaces).Error; err != nil {
		return shared.Paged[models.Workspace]{}, err
	}

	return shared.NewPaged(pageInfo, count, workspaces), nil
}

func (g *workspaceRepository) ReadWithCounts(id uuid.UUID, fields []string) (models.Workspace, error) {
	var workspace models.Workspace
	err := g.selectWithCounts(g.db, fields).
		Where("workspaces.id = ?", id).
		First(&workspace).Error
	return workspace, err
}

func (g *workspaceRepository) Save(tx *gorm.DB, workspace *models.Workspace) error {
	return g.GetDB(tx).Omit(clause.Associations).Save(workspace).Error
}

func (g *workspaceRepository) Update(tx *gorm.DB, workspace *models.Workspace) error {
	return g.Save(tx, workspace)
}

// DeleteCascade removes a workspace and all projects it owns in one
// transaction. Hooks stay off so project deletions do not trigger any
// per-project recalculation.
func (g *workspaceRepository) DeleteCascade(id uuid.UUID) error {
	return g.Transaction(func(tx *gorm.DB) error {
		session := tx.Session(&gorm.Session{SkipHooks: true})
		if err := session.Where("workspace_id = ?", id).Delete(&models.Project{}).Error; err != nil {
			return err
		}

		result := session.Delete(&models.Workspace{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (g *workspaceRepository) Count() (int64, error) {
	var count int64
	err := g.db.Model(&models.Workspace{}).Count(&count).Error
	return count, err
}
