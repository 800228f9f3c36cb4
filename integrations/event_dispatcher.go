// Copyright 2025 Label Studio contributors.
// SPDX-License-Identifier: Apache-2.0

package integrations

import (
	"log/slog"

	"github.com/PC91/label-studio/shared"
)

// eventDispatcher fans lifecycle events out to all registered
// integrations. Delivery runs in the background; the request that
// caused the event never waits on it.
type eventDispatcher struct {
	integrations []shared.Integration
}

var _ shared.EventDispatcher = &eventDispatcher{}

func NewEventDispatcher(integrations ...shared.Integration) *eventDispatcher {
	return &eventDispatcher{integrations: integrations}
}

func (d *eventDispatcher) Dispatch(event any) {
	for _, integration := range d.integrations {
		go func(integration shared.Integration) {
			if err := integration.HandleEvent(event); err != nil {
				slog.Error("integration failed to handle event", "event", event, "err", err)
			}
		}(integration)
	}
}
