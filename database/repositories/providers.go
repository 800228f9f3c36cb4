// Copyright 2025 Label Studio contributors.
// SPDX-License-Identifier: Apache-2.0

package repositories

import (
	"github.com/PC91/label-studio/shared"
	"go.uber.org/fx"
)

// Module provides all repository constructors as their interfaces
var Module = fx.Options(
	fx.Provide(fx.Annotate(NewWorkspaceRepository, fx.As(new(shared.WorkspaceRepository)))),
	fx.Provide(fx.Annotate(NewProjectRepository, fx.As(new(shared.ProjectRepository)))),
	fx.Provide(fx.Annotate(NewOnboardingRepository, fx.As(new(shared.OnboardingRepository)))),
	fx.Provide(fx.Annotate(NewWebhookRepository, fx.As(new(shared.WebhookIntegrationRepository)))),
)
