// Copyright 2025 Label Studio contributors.
// SPDX-License-Identifier: Apache-2.0

package repositories

import (
	"github.com/PC91/label-studio/database/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type onboardingRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.WorkspaceOnboarding]
}

func NewOnboardingRepository(db *gorm.DB) *onboardingRepository {
	return &onboardingRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.WorkspaceOnboarding](db),
	}
}

func (g *onboardingRepository) Steps() ([]models.WorkspaceOnboardingStep, error) {
	var steps []models.WorkspaceOnboardingStep
	err := g.db.Order(`"order" ASC`).Find(&steps).Error
	return steps, err
}

func (g *onboardingRepository) CountSteps() (int64, error) {
	var count int64
	err := g.db.Model(&models.WorkspaceOnboardingStep{}).Count(&count).Error
	return count, err
}

func (g *onboardingRepository) FindStepByCode(code string) (models.WorkspaceOnboardingStep, error) {
	var step models.WorkspaceOnboardingStep
	err := g.db.First(&step, "code = ?", code).Error
	return step, err
}

// Upsert marks a step for a workspace, creating the tracking row on
// first touch.
func (g *onboardingRepository) Upsert(tx *gorm.DB, onboarding *models.WorkspaceOnboarding) error {
	return g.GetDB(tx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "workspace_id"}, {Name: "step_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"finished", "updated_at"}),
	}).Create(onboarding).Error
}

func (g *onboardingRepository) CountFinished(tx *gorm.DB, workspaceID uuid.UUID) (int64, error) {
	var count int64
	err := g.GetDB(tx).Model(&models.WorkspaceOnboarding{}).
		Where("workspace_id = ? AND finished = ?", workspaceID, true).
		Count(&count).Error
	return count, err
}
