// Copyright 2025 Label Studio contributors.
// SPDX-License-Identifier: Apache-2.0
package accesscontrol

import (
	"github.com/PC91/label-studio/shared"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(fx.Annotate(NewCasbinRBACProvider, fx.As(new(shared.RBACProvider)))),
)
