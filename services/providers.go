// Copyright 2025 Label Studio contributors.
// SPDX-License-Identifier: Apache-2.0
package services

import (
	"github.com/PC91/label-studio/shared"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(fx.Annotate(NewWorkspaceService, fx.As(new(shared.WorkspaceService)))),
	fx.Provide(fx.Annotate(NewProjectService, fx.As(new(shared.ProjectService)))),
)
