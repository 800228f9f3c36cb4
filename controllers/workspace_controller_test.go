// Copyright 2025 Label Studio contributors.
// SPDX-License-Identifier: Apache-2.0

package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PC91/label-studio/database/models"
	"github.com/PC91/label-studio/mocks"
	"github.com/PC91/label-studio/shared"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestWorkspaceCreate(t *testing.T) {
	t.Run("should fail on a garbage body", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/workspaces/", bytes.NewBufferString("fantasy"))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

		e := echo.New()
		ctx := e.NewContext(req, httptest.NewRecorder())

		h := NewWorkspaceController(nil, nil, nil, nil)

		err := h.Create(ctx)
		if err == nil {
			t.Fail()
		}
	})

	t.Run("should create an untitled workspace when the title is omitted", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"color": "#FF0000"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

		rec := httptest.NewRecorder()
		e := echo.New()
		ctx := e.NewContext(req, rec)

		workspaceService := mocks.NewWorkspaceService(t)
		workspaceService.On("CreateWorkspace", mock.Anything, mock.MatchedBy(func(workspace *models.Workspace) bool {
			return workspace.Title == "" && workspace.Color == "#FF0000"
		})).Return(nil)

		dispatcher := mocks.NewEventDispatcher(t)
		dispatcher.On("Dispatch", mock.AnythingOfType("shared.WorkspaceCreatedEvent")).Return()

		h := NewWorkspaceController(nil, workspaceService, nil, dispatcher)

		err := h.Create(ctx)
		assert.Nil(t, err)
		assert.Equal(t, 201, rec.Code)
	})

	t.Run("should create the workspace and announce it", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title": "cool workspace"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

		rec := httptest.NewRecorder()
		e := echo.New()
		ctx := e.NewContext(req, rec)

		workspaceID := uuid.New()

		workspaceService := mocks.NewWorkspaceService(t)
		workspaceService.On("CreateWorkspace", mock.Anything, mock.MatchedBy(func(workspace *models.Workspace) bool {
			return workspace.Title == "cool workspace" && workspace.Color == "#FFFFFF"
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*models.Workspace).ID = workspaceID
		}).Return(nil)

		dispatcher := mocks.NewEventDispatcher(t)
		dispatcher.On("Dispatch", mock.MatchedBy(func(event any) bool {
			created, ok := event.(shared.WorkspaceCreatedEvent)
			return ok && created.Workspace.ID == workspaceID
		})).Return()

		h := NewWorkspaceController(nil, workspaceService, nil, dispatcher)

		err := h.Create(ctx)
		assert.Nil(t, err)
		assert.Equal(t, 201, rec.Code)
		dispatcher.AssertNumberOfCalls(t, "Dispatch", 1)
	})
}

func TestWorkspaceList(t *testing.T) {
	t.Run("should reject a malformed include parameter", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/?include=projects_count,,", nil)

		e := echo.New()
		ctx := e.NewContext(req, httptest.NewRecorder())

		h := NewWorkspaceController(nil, nil, nil, nil)

		err := h.List(ctx)
		var httpErr *echo.HTTPError
		if assert.ErrorAs(t, err, &httpErr) {
			assert.Equal(t, 400, httpErr.Code)
		}
	})

	t.Run("should silently drop an unknown filter", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/?filter=bogus", nil)

		rec := httptest.NewRecorder()
		e := echo.New()
		ctx := e.NewContext(req, rec)

		workspaceRepository := mocks.NewWorkspaceRepository(t)
		workspaceRepository.On("ListPaged", mock.Anything, mock.Anything, shared.FilterAll).
			Return(shared.NewPaged(shared.PageInfo{Page: 1, PageSize: 10000}, 0, []models.Workspace{}), nil)

		h := NewWorkspaceController(workspaceRepository, nil, nil, nil)

		err := h.List(ctx)
		assert.Nil(t, err)
		assert.Equal(t, 200, rec.Code)
	})

	t.Run("should pass the pinned filter through", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/?filter=pinned_only", nil)

		rec := httptest.NewRecorder()
		e := echo.New()
		ctx := e.NewContext(req, rec)

		workspaceRepository := mocks.NewWorkspaceRepository(t)
		workspaceRepository.On("ListPaged", mock.Anything, mock.Anything, shared.FilterPinnedOnly).
			Return(shared.NewPaged(shared.PageInfo{Page: 1, PageSize: 10000}, 0, []models.Workspace{}), nil)

		h := NewWorkspaceController(workspaceRepository, nil, nil, nil)

		err := h.List(ctx)
		assert.Nil(t, err)
	})
}

func TestWorkspacePatch(t *testing.T) {
	t.Run("should not hit the database when nothing changes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(`{}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

		rec := httptest.NewRecorder()
		e := echo.New()
		ctx := e.NewContext(req, rec)

		workspace := models.Workspace{Title: "untouched", Color: "#FFFFFF"}
		workspace.ID = uuid.New()
		shared.SetWorkspace(ctx, workspace)

		h := NewWorkspaceController(nil, nil, nil, nil)

		err := h.Patch(ctx)
		assert.Nil(t, err)
		assert.Equal(t, 200, rec.Code)
	})

	t.Run("should persist a changed title and announce the update", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(`{"title": "renamed"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

		rec := httptest.NewRecorder()
		e := echo.New()
		ctx := e.NewContext(req, rec)

		workspace := models.Workspace{Title: "old", Color: "#FFFFFF"}
		workspace.ID = uuid.New()
		shared.SetWorkspace(ctx, workspace)

		workspaceRepository := mocks.NewWorkspaceRepository(t)
		workspaceRepository.On("Update", mock.Anything, mock.MatchedBy(func(w *models.Workspace) bool {
			return w.Title == "renamed"
		})).Return(nil)

		workspaceService := mocks.NewWorkspaceService(t)
		workspaceService.On("ValidateTitle", "renamed").Return(nil)

		dispatcher := mocks.NewEventDispatcher(t)
		dispatcher.On("Dispatch", mock.AnythingOfType("shared.WorkspaceUpdatedEvent")).Return()

		h := NewWorkspaceController(workspaceRepository, workspaceService, nil, dispatcher)

		err := h.Patch(ctx)
		assert.Nil(t, err)

		var resp map[string]any
		assert.Nil(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "renamed", resp["title"])
		// compatibility keys are always present
		assert.Contains(t, resp, "is_private")
		assert.Equal(t, false, resp["secure_mode"])
	})
}

func TestWorkspacePut(t *testing.T) {
	t.Run("should announce a project update and nothing else", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"title": "full update"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

		rec := httptest.NewRecorder()
		e := echo.New()
		ctx := e.NewContext(req, rec)

		workspace := models.Workspace{Title: "old", Color: "#123456", IsDraft: true}
		workspace.ID = uuid.New()
		shared.SetWorkspace(ctx, workspace)

		workspaceRepository := mocks.NewWorkspaceRepository(t)
		workspaceRepository.On("Update", mock.Anything, mock.MatchedBy(func(w *models.Workspace) bool {
			return w.Title == "full update" && w.Color == "#FFFFFF" && !w.IsDraft
		})).Return(nil)

		workspaceService := mocks.NewWorkspaceService(t)
		workspaceService.On("ValidateTitle", "full update").Return(nil)

		dispatcher := mocks.NewEventDispatcher(t)
		dispatcher.On("Dispatch", mock.AnythingOfType("shared.ProjectUpdatedEvent")).Return()

		h := NewWorkspaceController(workspaceRepository, workspaceService, nil, dispatcher)

		err := h.Put(ctx)
		assert.Nil(t, err)
		assert.Equal(t, 200, rec.Code)
		dispatcher.AssertNumberOfCalls(t, "Dispatch", 1)
	})
}

func TestWorkspaceDelete(t *testing.T) {
	t.Run("should capture the payload before the row is gone", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/", nil)

		rec := httptest.NewRecorder()
		e := echo.New()
		ctx := e.NewContext(req, rec)

		workspace := models.Workspace{Title: "doomed", Color: "#FFFFFF"}
		workspace.ID = uuid.New()
		shared.SetWorkspace(ctx, workspace)

		workspaceRepository := mocks.NewWorkspaceRepository(t)
		workspaceRepository.On("DeleteCascade", workspace.ID).Return(nil)

		dispatcher := mocks.NewEventDispatcher(t)
		dispatcher.On("Dispatch", mock.MatchedBy(func(event any) bool {
			deleted, ok := event.(shared.WorkspaceDeletedEvent)
			return ok && deleted.Workspace.Title == "doomed"
		})).Return()

		h := NewWorkspaceController(workspaceRepository, nil, nil, dispatcher)

		err := h.Delete(ctx)
		assert.Nil(t, err)
		assert.Equal(t, 204, rec.Code)
	})
}
