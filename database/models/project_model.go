// Copyright 2025 Label Studio contributors.
// SPDX-License-Identifier: Apache-2.0

package models

import (
	"github.com/google/uuid"
)

type Project struct {
	Model
	Title       string    `json:"title" gorm:"type:text;not null"`
	Slug        string    `json:"slug" gorm:"type:text;not null;uniqueIndex:idx_project_workspace_slug"`
	Description string    `json:"description" gorm:"type:text"`
	WorkspaceID uuid.UUID `json:"workspaceId" gorm:"type:uuid;not null;uniqueIndex:idx_project_workspace_slug;index"`
}

func (p Project) TableName() string {
	return "projects"
}
