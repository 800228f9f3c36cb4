// Copyright 2025 Label Studio contributors.
// SPDX-License-Identifier: Apache-2.0

package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var WorkspaceCreatedAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "labelstudio_workspace_created_amount",
	Help: "The total number of workspaces created",
})

var WorkspaceDeletedAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "labelstudio_workspace_deleted_amount",
	Help: "The total number of workspaces deleted",
})

var ProjectDuplicatedAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "labelstudio_project_duplicated_amount",
	Help: "The total number of projects duplicated",
})
