// Copyright 2025 Label Studio contributors.
// SPDX-License-Identifier: Apache-2.0

package transformer

import (
	"time"

	"github.com/PC91/label-studio/database/models"
	"github.com/PC91/label-studio/dtos"
)

func WorkspaceCreateRequestToModel(c dtos.WorkspaceCreateRequest) models.Workspace {
	workspace := models.Workspace{
		Color: "#FFFFFF",
	}

	if c.Title != nil {
		workspace.Title = *c.Title
	}
	if c.Color != nil {
		workspace.Color = *c.Color
	}
	if c.IsDraft != nil {
		workspace.IsDraft = *c.IsDraft
	}

	return workspace
}

func ApplyWorkspacePatchRequestToModel(p dtos.WorkspacePatchRequest, workspace *models.Workspace) bool {
	updated := false

	if p.Title != nil {
		updated = true
		workspace.Title = *p.Title
	}

	if p.Color != nil {
		updated = true
		workspace.Color = *p.Color
	}

	if p.IsDraft != nil {
		updated = true
		workspace.IsDraft = *p.IsDraft
	}

	if p.Pinned != nil {
		updated = true
		if *p.Pinned {
			now := time.Now()
			workspace.PinnedAt = &now
		} else {
			workspace.PinnedAt = nil
		}
	}

	if p.SkipOnboarding != nil {
		updated = true
		workspace.SkipOnboarding = *p.SkipOnboarding
	}

	return updated
}

// ApplyWorkspaceUpdateRequestToModel overwrites all client-settable
// fields, resetting omitted ones to their defaults.
func ApplyWorkspaceUpdateRequestToModel(u dtos.WorkspaceUpdateRequest, workspace *models.Workspace) {
	workspace.Title = u.Title
	workspace.IsDraft = u.IsDraft

	workspace.Color = u.Color
	if workspace.Color == "" {
		workspace.Color = "#FFFFFF"
	}
}

func WorkspaceModelToDTO(workspace models.Workspace) dtos.WorkspaceDTO {
	return dtos.WorkspaceDTO{
		ID:      workspace.ID,
		Title:   workspace.Title,
		Color:   workspace.Color,
		IsDraft: workspace.IsDraft,

		IsPrivate:  nil,
		SecureMode: false,

		PinnedAt:       workspace.PinnedAt,
		SkipOnboarding: workspace.SkipOnboarding,
		CreatedAt:      workspace.CreatedAt,
		UpdatedAt:      workspace.UpdatedAt,

		ProjectsCount: workspace.ProjectsCount,
	}
}

func OnboardingStepModelToDTO(step models.WorkspaceOnboardingStep) dtos.OnboardingStepDTO {
	return dtos.OnboardingStepDTO{
		ID:    step.ID,
		Code:  step.Code,
		Title: step.Title,
		Order: step.Order,
	}
}

func WebhookIntegrationModelToDTO(webhook models.WebhookIntegration) dtos.WebhookIntegrationDTO {
	return dtos.WebhookIntegrationDTO{
		ID:          webhook.ID,
		Name:        webhook.Name,
		URL:         webhook.URL,
		SendPayload: webhook.SendPayload,
		WorkspaceID: webhook.WorkspaceID,
		CreatedAt:   webhook.CreatedAt,
	}
}

func WebhookIntegrationCreateRequestToModel(c dtos.WebhookIntegrationCreateRequest) models.WebhookIntegration {
	webhook := models.WebhookIntegration{
		Name:        c.Name,
		URL:         c.URL,
		Secret:      c.Secret,
		SendPayload: true,
	}
	if c.SendPayload != nil {
		webhook.SendPayload = *c.SendPayload
	}
	return webhook
}

func ApplyWebhookIntegrationPatchRequestToModel(p dtos.WebhookIntegrationPatchRequest, webhook *models.WebhookIntegration) bool {
	updated := false

	if p.Name != nil {
		updated = true
		webhook.Name = p.Name
	}

	if p.URL != nil {
		updated = true
		webhook.URL = *p.URL
	}

	if p.Secret != nil {
		updated = true
		webhook.Secret = p.Secret
	}

	if p.SendPayload != nil {
		updated = true
		webhook.SendPayload = *p.SendPayload
	}

	return updated
}
