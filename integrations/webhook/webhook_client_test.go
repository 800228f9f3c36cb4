// Copyright 2025 Label Studio contributors.
// SPDX-License-Identifier: Apache-2.0

package webhook

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/PC91/label-studio/shared"
	"github.com/stretchr/testify/assert"
)

func shortenRetries(t *testing.T) {
	original := retryDelays
	retryDelays = []time.Duration{time.Millisecond, time.Millisecond}
	t.Cleanup(func() { retryDelays = original })
}

func TestWebhookClientSend(t *testing.T) {
	t.Run("should deliver the action envelope with the secret header", func(t *testing.T) {
		var received envelope
		var token string

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token = r.Header.Get("X-Label-Studio-Token")
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		secret := "whsec"
		client := NewWebhookClient(server.URL, &secret)

		err := client.Send(shared.WebhookActionWorkspaceCreated, map[string]string{"title": "w"})

		assert.NoError(t, err)
		assert.Equal(t, "whsec", token)
		assert.Equal(t, shared.WebhookActionWorkspaceCreated, received.Action)
	})

	t.Run("should omit the payload when nil", func(t *testing.T) {
		var raw map[string]any

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := NewWebhookClient(server.URL, nil)

		err := client.Send(shared.WebhookActionWorkspaceDeleted, nil)

		assert.NoError(t, err)
		assert.NotContains(t, raw, "payload")
	})

	t.Run("should make exactly 3 attempts when deliveries fail", func(t *testing.T) {
		shortenRetries(t)
		attemptCount := 0

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			attemptCount++
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := NewWebhookClient(server.URL, nil)

		err := client.Send(shared.WebhookActionWorkspaceUpdated, nil)

		assert.Error(t, err)
		assert.Equal(t, 3, attemptCount)
	})

	t.Run("should recover on a later attempt", func(t *testing.T) {
		shortenRetries(t)
		attemptCount := 0

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			attemptCount++
			if attemptCount < 2 {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := NewWebhookClient(server.URL, nil)

		err := client.Send(shared.WebhookActionWorkspaceUpdated, nil)

		assert.NoError(t, err)
		assert.Equal(t, 2, attemptCount)
	})
}
