// Copyright 2025 Label Studio contributors.
// SPDX-License-Identifier: Apache-2.0

package webhook

import (
	"log/slog"

	"github.com/PC91/label-studio/shared"
	"github.com/google/uuid"
)

// WebhookIntegration forwards workspace lifecycle events to every
// webhook configured for the affected workspace.
type WebhookIntegration struct {
	webhookRepository shared.WebhookIntegrationRepository
}

var _ shared.Integration = &WebhookIntegration{}

func NewWebhookIntegration(webhookRepository shared.WebhookIntegrationRepository) *WebhookIntegration {
	return &WebhookIntegration{
		webhookRepository: webhookRepository,
	}
}

func (w *WebhookIntegration) HandleEvent(event any) error {
	switch event := event.(type) {
	case shared.WorkspaceCreatedEvent:
		return w.deliver(event.Workspace.ID, shared.WebhookActionWorkspaceCreated, event.Workspace)
	case shared.WorkspaceUpdatedEvent:
		return w.deliver(event.Workspace.ID, shared.WebhookActionWorkspaceUpdated, event.Workspace)
	case shared.WorkspaceDeletedEvent:
		// the row is already gone - deliver the pre-delete snapshot
		return w.deliver(event.Workspace.ID, shared.WebhookActionWorkspaceDeleted, event.Workspace)
	case shared.ProjectUpdatedEvent:
		return w.deliver(event.Workspace.ID, shared.WebhookActionProjectUpdated, event.Workspace)
	}
	return nil
}

func (w *WebhookIntegration) deliver(workspaceID uuid.UUID, action shared.WebhookAction, payload any) error {
	webhooks, err := w.webhookRepository.FindByWorkspaceID(workspaceID)
	if err != nil {
		slog.Error("failed to find webhooks", "workspaceID", workspaceID, "err", err)
		return err
	}

	for _, webhook := range webhooks {
		client := NewWebhookClient(webhook.URL, webhook.Secret)

		body := payload
		if !webhook.SendPayload {
			body = nil
		}

		if err := client.Send(action, body); err != nil {
			slog.Error("failed to deliver webhook", "webhookID", webhook.ID, "action", action, "err", err)
			continue
		}
		slog.Debug("webhook delivered", "webhookID", webhook.ID, "action", action)
	}
	return nil
}
