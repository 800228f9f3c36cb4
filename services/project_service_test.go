// Copyright 2025 Label Studio contributors.
// SPDX-License-Identifier: Apache-2.0

package services

import (
	"fmt"
	"testing"

	"github.com/PC91/label-studio/database/models"
	"github.com/PC91/label-studio/mocks"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestDuplicateProject(t *testing.T) {
	t.Run("should return not found when the source project is missing", func(t *testing.T) {
		projectRepository := mocks.NewProjectRepository(t)
		projectRepository.On("FindFirstByID", mock.Anything).Return(nil, nil)

		h := NewProjectService(projectRepository)

		_, err := h.Duplicate(uuid.New())
		var httpErr *echo.HTTPError
		if assert.ErrorAs(t, err, &httpErr) {
			assert.Equal(t, 404, httpErr.Code)
		}
	})

	t.Run("should fail when the lookup itself errors", func(t *testing.T) {
		projectRepository := mocks.NewProjectRepository(t)
		projectRepository.On("FindFirstByID", mock.Anything).Return(nil, fmt.Errorf("connection refused"))

		h := NewProjectService(projectRepository)

		_, err := h.Duplicate(uuid.New())
		assert.Error(t, err)
	})

	t.Run("should copy the project inside its workspace", func(t *testing.T) {
		workspaceID := uuid.New()
		source := &models.Project{Title: "Sentiment", Slug: "sentiment", Description: "d", WorkspaceID: workspaceID}
		source.ID = uuid.New()

		projectRepository := mocks.NewProjectRepository(t)
		projectRepository.On("FindFirstByID", source.ID).Return(source, nil)
		projectRepository.On("Create", mock.Anything, mock.MatchedBy(func(project *models.Project) bool {
			return project.Title == "Sentiment (copy)" &&
				project.WorkspaceID == workspaceID &&
				project.Description == "d"
		})).Return(nil)

		h := NewProjectService(projectRepository)

		duplicate, err := h.Duplicate(source.ID)
		assert.Nil(t, err)
		assert.Equal(t, "Sentiment (copy)", duplicate.Title)
		assert.Equal(t, "sentiment-copy", duplicate.Slug)
	})
}
