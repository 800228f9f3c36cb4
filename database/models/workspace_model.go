// Copyright 2025 Label Studio contributors.
// SPDX-License-Identifier: Apache-2.0

package models

import (
	"time"

	"github.com/google/uuid"
)

type Workspace struct {
	Model
	Title          string     `json:"title" gorm:"type:text;not null"`
	Color          string     `json:"color" gorm:"type:text;default:'#FFFFFF'"`
	IsDraft        bool       `json:"isDraft" gorm:"default:false"`
	SkipOnboarding bool       `json:"skipOnboarding" gorm:"default:false"`
	PinnedAt       *time.Time `json:"pinnedAt"`
	CreatedByID    *string    `json:"createdById" gorm:"type:text"`

	Projects []Project `json:"projects" gorm:"foreignKey:WorkspaceID;constraint:OnDelete:CASCADE"`

	// populated by list queries when the count annotation is requested,
	// never written back
	ProjectsCount *int64 `json:"projectsCount,omitempty" gorm:"->;-:migration"`
}

func (w Workspace) TableName() string {
	return "workspaces"
}

// WorkspaceOnboardingStep is the catalog of onboarding steps. The set of
// rows defines how many finished steps a workspace needs before
// onboarding counts as done.
type WorkspaceOnboardingStep struct {
	Model
	Code  string `json:"code" gorm:"type:varchar(2);unique;not null"`
	Title string `json:"title" gorm:"type:text;not null"`
	Order int    `json:"order" gorm:"column:order;default:0"`
}

func (s WorkspaceOnboardingStep) TableName() string {
	return "workspace_onboarding_steps"
}

type WorkspaceOnboarding struct {
	Model
	WorkspaceID uuid.UUID               `json:"workspaceId" gorm:"type:uuid;not null;uniqueIndex:idx_onboarding_workspace_step"`
	StepID      uuid.UUID               `json:"stepId" gorm:"type:uuid;not null;uniqueIndex:idx_onboarding_workspace_step"`
	Step        WorkspaceOnboardingStep `json:"step" gorm:"foreignKey:StepID"`
	Finished    bool                    `json:"finished" gorm:"default:false"`
}

func (o WorkspaceOnboarding) TableName() string {
	return "workspace_onboardings"
}
