// Copyright 2025 Label Studio contributors.
// SPDX-License-Identifier: Apache-2.0

package repositories

import (
	"github.com/PC91/label-studio/database/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type webhookRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.WebhookIntegration]
}

func NewWebhookRepository(db *gorm.DB) *webhookRepository {
	return &webhookRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.WebhookIntegration](db),
	}
}

func (g *webhookRepository) FindByWorkspaceID(workspaceID uuid.UUID) ([]models.WebhookIntegration, error) {
	var webhooks []models.WebhookIntegration
	err := g.db.Where("workspace_id = ?", workspaceID).Find(&webhooks).Error
	return webhooks, err
}
