// Copyright 2025 Label Studio contributors.
// SPDX-License-Identifier: Apache-2.0

package dtos

import (
	"time"

	"github.com/google/uuid"
)

type WorkspaceCreateRequest struct {
	// omitting the title creates an untitled workspace
	Title   *string `json:"title"`
	Color   *string `json:"color"`
	IsDraft *bool   `json:"is_draft"`
}

type WorkspacePatchRequest struct {
	Title          *string `json:"title"`
	Color          *string `json:"color"`
	IsDraft        *bool   `json:"is_draft"`
	Pinned         *bool   `json:"pinned"`
	SkipOnboarding *bool   `json:"skip_onboarding"`
}

// WorkspaceUpdateRequest is the full-update body. Missing fields reset
// to their defaults, matching PUT semantics.
type WorkspaceUpdateRequest struct {
	Title   string `json:"title"`
	Color   string `json:"color"`
	IsDraft bool   `json:"is_draft"`
}

type WorkspaceDTO struct {
	ID      uuid.UUID `json:"id"`
	Title   string    `json:"title"`
	Color   string    `json:"color"`
	IsDraft bool      `json:"is_draft"`

	// compatibility fields: workspaces carry no visibility settings,
	// clients still expect the keys
	IsPrivate  *bool `json:"is_private"`
	SecureMode bool  `json:"secure_mode"`

	PinnedAt       *time.Time `json:"pinned_at"`
	SkipOnboarding bool       `json:"skip_onboarding"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	ProjectsCount *int64 `json:"projects_count,omitempty"`
}

type MemberDTO struct {
	ID    string `json:"id"`
	Role  string `json:"role"`
	Owner bool   `json:"owner"`
}

// ChangeRoleRequest assigns a role to a member. The owner role is
// fixed at workspace creation and cannot be handed out.
type ChangeRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=admin member"`
}

type OnboardingStepDTO struct {
	ID    uuid.UUID `json:"id"`
	Code  string    `json:"code"`
	Title string    `json:"title"`
	Order int       `json:"order"`
}

type OnboardingRequest struct {
	Code     string `json:"code" validate:"required"`
	Finished *bool  `json:"finished"`
}

type OnboardingStateDTO struct {
	FinishedSteps int64 `json:"finished_steps"`
	TotalSteps    int64 `json:"total_steps"`
	Done          bool  `json:"done"`
}

type WebhookIntegrationCreateRequest struct {
	Name        *string `json:"name"`
	URL         string  `json:"url" validate:"required,url"`
	Secret      *string `json:"secret"`
	SendPayload *bool   `json:"send_payload"`
}

type WebhookIntegrationPatchRequest struct {
	Name        *string `json:"name"`
	URL         *string `json:"url" validate:"omitempty,url"`
	Secret      *string `json:"secret"`
	SendPayload *bool   `json:"send_payload"`
}

type WebhookIntegrationDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        *string   `json:"name"`
	URL         string    `json:"url"`
	SendPayload bool      `json:"send_payload"`
	WorkspaceID uuid.UUID `json:"workspace_id"`
	CreatedAt   time.Time `json:"created_at"`
}
