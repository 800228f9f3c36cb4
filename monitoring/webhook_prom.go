// Copyright 2025 Label Studio contributors.
// SPDX-License-Identifier: Apache-2.0

package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var WebhookDeliveredAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "labelstudio_webhook_delivered_amount",
	Help: "The total number of webhook payloads delivered successfully",
})

var WebhookFailedAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "labelstudio_webhook_failed_amount",
	Help: "The total number of webhook deliveries that exhausted all retries",
})
