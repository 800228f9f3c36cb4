// Copyright 2025 Label Studio contributors.
// SPDX-License-Identifier: Apache-2.0

package models

import (
	"github.com/google/uuid"
)

type WebhookIntegration struct {
	Model
	Name        *string `json:"name"`
	URL         string  `json:"url" gorm:"column:url"`
	Secret      *string `json:"secret" gorm:"column:secret"`
	SendPayload bool    `json:"sendPayload" gorm:"column:send_payload;default:true"`

	Workspace   Workspace `json:"workspace" gorm:"foreignKey:WorkspaceID;constraint:OnDelete:CASCADE;"`
	WorkspaceID uuid.UUID `json:"workspaceId" gorm:"column:workspace_id"`
}

func (WebhookIntegration) TableName() string {
	return "webhook_integrations"
}
