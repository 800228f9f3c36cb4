// Copyright 2025 Label Studio contributors.
// SPDX-License-Identifier: Apache-2.0

package webhook

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/PC91/label-studio/database/models"
	"github.com/PC91/label-studio/mocks"
	"github.com/PC91/label-studio/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestWebhookIntegrationHandleEvent(t *testing.T) {
	t.Run("should fan events out to every hook of the workspace", func(t *testing.T) {
		var envelopes []envelope
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var e envelope
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&e))
			envelopes = append(envelopes, e)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		workspaceID := uuid.New()
		hooks := []models.WebhookIntegration{
			{URL: server.URL, SendPayload: true, WorkspaceID: workspaceID},
			{URL: server.URL, SendPayload: false, WorkspaceID: workspaceID},
		}

		webhookRepository := mocks.NewWebhookIntegrationRepository(t)
		webhookRepository.On("FindByWorkspaceID", workspaceID).Return(hooks, nil)

		integration := NewWebhookIntegration(webhookRepository)

		err := integration.HandleEvent(shared.WorkspaceCreatedEvent{
			Workspace: shared.WorkspaceObject{ID: workspaceID, Title: "w"},
		})

		assert.NoError(t, err)
		if assert.Len(t, envelopes, 2) {
			assert.Equal(t, shared.WebhookActionWorkspaceCreated, envelopes[0].Action)
			// one hook sends the payload, one sends the action only
			payloads := 0
			for _, e := range envelopes {
				if e.Payload != nil {
					payloads++
				}
			}
			assert.Equal(t, 1, payloads)
		}
	})

	t.Run("should ignore events it does not consume", func(t *testing.T) {
		webhookRepository := mocks.NewWebhookIntegrationRepository(t)

		integration := NewWebhookIntegration(webhookRepository)

		assert.NoError(t, integration.HandleEvent(struct{}{}))
	})
}
