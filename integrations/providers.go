// Copyright 2025 Label Studio contributors.
// SPDX-License-Identifier: Apache-2.0

package integrations

import (
	"github.com/PC91/label-studio/integrations/webhook"
	"github.com/PC91/label-studio/shared"
	"go.uber.org/fx"
)

// Module provides all integration constructors plus the dispatcher
// fanning events out to them.
var Module = fx.Options(
	fx.Provide(webhook.NewWebhookIntegration),

	fx.Provide(fx.Annotate(
		func(webhookIntegration *webhook.WebhookIntegration) *eventDispatcher {
			return NewEventDispatcher(webhookIntegration)
		},
		fx.As(new(shared.EventDispatcher)),
	)),
)
