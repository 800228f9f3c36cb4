// Copyright 2025 Label Studio contributors.
// SPDX-License-Identifier: Apache-2.0

package router

import "go.uber.org/fx"

var RouterModule = fx.Options(
	fx.Provide(NewAPIRouter),
	fx.Provide(NewSessionRouter),
	fx.Provide(NewWorkspaceRouter),
	fx.Provide(NewPagesRouter),
)
