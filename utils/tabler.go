// Copyright 2025 Label Studio contributors.
// SPDX-License-Identifier: Apache-2.0

package utils

type Tabler interface {
	TableName() string
}
