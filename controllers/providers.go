// Copyright 2025 Label Studio contributors.
// SPDX-License-Identifier: Apache-2.0

package controllers

import (
	"go.uber.org/fx"
)

// ControllerModule provides all HTTP controller constructors
var ControllerModule = fx.Options(
	fx.Provide(NewWorkspaceController),
	fx.Provide(NewProjectController),
	fx.Provide(NewMemberController),
	fx.Provide(NewWebhookController),
	fx.Provide(NewPagesController),
)
