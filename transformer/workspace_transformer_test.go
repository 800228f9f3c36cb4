// Copyright 2025 Label Studio contributors.
// SPDX-License-Identifier: Apache-2.0

package transformer

import (
	"testing"
	"time"

	"github.com/PC91/label-studio/database/models"
	"github.com/PC91/label-studio/dtos"
	"github.com/PC91/label-studio/shared"
	"github.com/stretchr/testify/assert"
)

func TestWorkspaceCreateRequestToModelDefaults(t *testing.T) {
	workspace := WorkspaceCreateRequestToModel(dtos.WorkspaceCreateRequest{Title: shared.Ptr("New")})
	assert.Equal(t, "New", workspace.Title)
	assert.Equal(t, "#FFFFFF", workspace.Color)
	assert.False(t, workspace.IsDraft)

	// no title means an untitled workspace, not an error
	workspace = WorkspaceCreateRequestToModel(dtos.WorkspaceCreateRequest{})
	assert.Equal(t, "", workspace.Title)
	assert.Equal(t, "#FFFFFF", workspace.Color)

	workspace = WorkspaceCreateRequestToModel(dtos.WorkspaceCreateRequest{
		Title:   shared.Ptr("Drafty"),
		Color:   shared.Ptr("#00FF00"),
		IsDraft: shared.Ptr(true),
	})
	assert.Equal(t, "#00FF00", workspace.Color)
	assert.True(t, workspace.IsDraft)
}

func TestApplyWorkspacePatchRequestToModel(t *testing.T) {
	workspace := models.Workspace{Title: "old", Color: "#FFFFFF"}

	updated := ApplyWorkspacePatchRequestToModel(dtos.WorkspacePatchRequest{}, &workspace)
	assert.False(t, updated)
	assert.Equal(t, "old", workspace.Title)

	updated = ApplyWorkspacePatchRequestToModel(dtos.WorkspacePatchRequest{
		Title: shared.Ptr("new"),
	}, &workspace)
	assert.True(t, updated)
	assert.Equal(t, "new", workspace.Title)
	assert.Equal(t, "#FFFFFF", workspace.Color)

	updated = ApplyWorkspacePatchRequestToModel(dtos.WorkspacePatchRequest{
		Pinned: shared.Ptr(true),
	}, &workspace)
	assert.True(t, updated)
	assert.NotNil(t, workspace.PinnedAt)

	updated = ApplyWorkspacePatchRequestToModel(dtos.WorkspacePatchRequest{
		Pinned: shared.Ptr(false),
	}, &workspace)
	assert.True(t, updated)
	assert.Nil(t, workspace.PinnedAt)
}

func TestApplyWorkspaceUpdateRequestToModelResetsOmitted(t *testing.T) {
	now := time.Now()
	workspace := models.Workspace{Title: "old", Color: "#123456", IsDraft: true, PinnedAt: &now}

	ApplyWorkspaceUpdateRequestToModel(dtos.WorkspaceUpdateRequest{Title: "full"}, &workspace)
	assert.Equal(t, "full", workspace.Title)
	assert.Equal(t, "#FFFFFF", workspace.Color)
	assert.False(t, workspace.IsDraft)
	// pinning is not client-settable through the full update
	assert.NotNil(t, workspace.PinnedAt)
}

func TestWorkspaceModelToDTOCompatibilityFields(t *testing.T) {
	dto := WorkspaceModelToDTO(models.Workspace{Title: "w", Color: "#FFFFFF"})
	assert.Nil(t, dto.IsPrivate)
	assert.False(t, dto.SecureMode)
	assert.Nil(t, dto.ProjectsCount)

	count := int64(3)
	dto = WorkspaceModelToDTO(models.Workspace{Title: "w", ProjectsCount: &count})
	if assert.NotNil(t, dto.ProjectsCount) {
		assert.Equal(t, int64(3), *dto.ProjectsCount)
	}
}
