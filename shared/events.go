// Copyright 2025 Label Studio contributors.
// SPDX-License-Identifier: Apache-2.0

package shared

import (
	"time"

	"github.com/PC91/label-studio/database/models"
	"github.com/google/uuid"
)

// WebhookAction names a lifecycle transition as it appears on the wire.
type WebhookAction string

const (
	WebhookActionWorkspaceCreated WebhookAction = "WORKSPACE_CREATED"
	WebhookActionWorkspaceUpdated WebhookAction = "WORKSPACE_UPDATED"
	WebhookActionWorkspaceDeleted WebhookAction = "WORKSPACE_DELETED"
	WebhookActionProjectUpdated   WebhookAction = "PROJECT_UPDATED"
)

// WorkspaceObject is the event payload snapshot of a workspace. For the
// delete event it is captured before the row is gone.
type WorkspaceObject struct {
	ID      uuid.UUID `json:"id"`
	Title   string    `json:"title"`
	Color   string    `json:"color"`
	IsDraft bool      `json:"is_draft"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToWorkspaceObject(workspace models.Workspace) WorkspaceObject {
	return WorkspaceObject{
		ID:        workspace.ID,
		Title:     workspace.Title,
		Color:     workspace.Color,
		IsDraft:   workspace.IsDraft,
		CreatedAt: workspace.CreatedAt,
		UpdatedAt: workspace.UpdatedAt,
	}
}

type WorkspaceCreatedEvent struct {
	Workspace WorkspaceObject
}

type WorkspaceUpdatedEvent struct {
	Workspace WorkspaceObject
}

type WorkspaceDeletedEvent struct {
	Workspace WorkspaceObject
}

// ProjectUpdatedEvent is fired when a full workspace update cascades to
// project-level display fields.
type ProjectUpdatedEvent struct {
	Workspace WorkspaceObject
}

func (e WorkspaceCreatedEvent) Action() WebhookAction { return WebhookActionWorkspaceCreated }
func (e WorkspaceUpdatedEvent) Action() WebhookAction { return WebhookActionWorkspaceUpdated }
func (e WorkspaceDeletedEvent) Action() WebhookAction { return WebhookActionWorkspaceDeleted }
func (e ProjectUpdatedEvent) Action() WebhookAction   { return WebhookActionProjectUpdated }
