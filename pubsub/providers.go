// Copyright 2025 Label Studio contributors.
// SPDX-License-Identifier: Apache-2.0

package pubsub

import "go.uber.org/fx"

var Module = fx.Options(
	fx.Provide(BrokerFactory),
)
