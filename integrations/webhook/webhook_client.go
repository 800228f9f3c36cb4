// Copyright 2025 Label Studio contributors.
// SPDX-License-Identifier: Apache-2.0

package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/PC91/label-studio/monitoring"
	"github.com/PC91/label-studio/shared"
)

// retryDelays is waited through after a failed delivery attempt. Three
// attempts total, then the event is dropped.
var retryDelays = []time.Duration{time.Second, 5 * time.Second}

type envelope struct {
	Action  shared.WebhookAction `json:"action"`
	Payload any                  `json:"payload,omitempty"`
}

type webhookClient struct {
	URL    string
	Secret *string

	httpClient *http.Client
}

func NewWebhookClient(url string, secret *string) *webhookClient {
	return &webhookClient{
		URL:        url,
		Secret:     secret,
		httpClient: http.DefaultClient,
	}
}

func (c *webhookClient) doRequest(body []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewReader(body))
	if err != nil {
		return err
	}

	if c.Secret != nil {
		req.Header.Set("X-Label-Studio-Token", *c.Secret)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("webhook endpoint answered %s: %s", resp.Status, respBody)
	}
	return nil
}

// Send posts the action envelope to the configured URL. A nil payload
// sends the action name only. Failed attempts are retried with
// increasing delays before giving up.
func (c *webhookClient) Send(action shared.WebhookAction, payload any) error {
	body, err := json.Marshal(envelope{Action: action, Payload: payload})
	if err != nil {
		return err
	}

	var lastErr error
	for attempt := 0; ; attempt++ {
		lastErr = c.doRequest(body)
		if lastErr == nil {
			monitoring.WebhookDeliveredAmount.Inc()
			return nil
		}
		if attempt >= len(retryDelays) {
			break
		}
		time.Sleep(retryDelays[attempt])
	}

	monitoring.WebhookFailedAmount.Inc()
	return lastErr
}
