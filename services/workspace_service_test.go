// Copyright 2025 Label Studio contributors.
// SPDX-License-Identifier: Apache-2.0

package services

import (
	"fmt"
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
	"gorm.io/gorm"
)

func newTestContext() shared.Context {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title": "cool workspace"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	e := echo.New()
	return e.NewContext(req, httptest.NewRecorder())
}

func TestCreateWorkspace(t *testing.T) {
	t.Run("should reject a title outside the configured bounds", func(t *testing.T) {
		ctx := newTestContext()

		h := NewWorkspaceService(nil, nil, nil)

		err := h.CreateWorkspace(ctx, &models.Workspace{Title: "ab"})
		assert.Error(t, err)

		err = h.CreateWorkspace(ctx, &models.Workspace{Title: strings.Repeat("x", 51)})
		assert.Error(t, err)
	})

	t.Run("should count characters, not bytes", func(t *testing.T) {
		h := NewWorkspaceService(nil, nil, nil)

		// two runes but six bytes, still below the minimum
		assert.Error(t, h.ValidateTitle("日本"))
		// fifty runes but well over fifty bytes
		assert.Nil(t, h.ValidateTitle(strings.Repeat("字", shared.Cfg.WorkspaceTitleMaxLen)))
	})

	t.Run("should accept the empty title as the untitled default", func(t *testing.T) {
		ctx := newTestContext()

		workspaceRepository := mocks.NewWorkspaceRepository(t)
		workspaceRepository.On("Create", mock.Anything, mock.Anything).Return(nil)

		accesscontrol := mocks.NewAccessControl(t)
		accesscontrol.On("GrantRole", "user-1", shared.RoleOwner).Return(nil)
		accesscontrol.On("InheritRole", mock.Anything, mock.Anything).Return(nil)
		accesscontrol.On("AllowRole", mock.Anything, mock.Anything, mock.Anything).Return(nil)

		authSession := mocks.NewAuthSession(t)
		authSession.On("GetUserID").Return("user-1")
		shared.SetSession(ctx, authSession)

		rbacProvider := mocks.NewRBACProvider(t)
		rbacProvider.On("GetDomainRBAC", mock.Anything).Return(accesscontrol)

		h := NewWorkspaceService(workspaceRepository, nil, rbacProvider)
		assert.Nil(t, h.CreateWorkspace(ctx, &models.Workspace{}))
	})

	t.Run("should accept a title at exactly the minimum and maximum length", func(t *testing.T) {
		for _, title := range []string{
			strings.Repeat("x", shared.Cfg.WorkspaceTitleMinLen),
			strings.Repeat("x", shared.Cfg.WorkspaceTitleMaxLen),
		} {
			ctx := newTestContext()

			workspaceRepository := mocks.NewWorkspaceRepository(t)
			workspaceRepository.On("Create", mock.Anything, mock.Anything).Return(nil)

			accesscontrol := mocks.NewAccessControl(t)
			accesscontrol.On("GrantRole", "user-1", shared.RoleOwner).Return(nil)
			accesscontrol.On("InheritRole", mock.Anything, mock.Anything).Return(nil)
			accesscontrol.On("AllowRole", mock.Anything, mock.Anything, mock.Anything).Return(nil)

			authSession := mocks.NewAuthSession(t)
			authSession.On("GetUserID").Return("user-1")
			shared.SetSession(ctx, authSession)

			rbacProvider := mocks.NewRBACProvider(t)
			rbacProvider.On("GetDomainRBAC", mock.Anything).Return(accesscontrol)

			h := NewWorkspaceService(workspaceRepository, nil, rbacProvider)
			assert.Nil(t, h.CreateWorkspace(ctx, &models.Workspace{Title: title}))
		}
	})

	t.Run("should fail if the repository cannot create the workspace", func(t *testing.T) {
		ctx := newTestContext()

		workspaceRepository := mocks.NewWorkspaceRepository(t)
		workspaceRepository.On("Create", mock.Anything, mock.Anything).Return(fmt.Errorf("something went wrong"))

		authSession := mocks.NewAuthSession(t)
		authSession.On("GetUserID").Return("user-1")
		shared.SetSession(ctx, authSession)

		h := NewWorkspaceService(workspaceRepository, nil, nil)

		err := h.CreateWorkspace(ctx, &models.Workspace{Title: "cool workspace"})
		assert.Error(t, err)
	})

	t.Run("should map a duplicate key error to a conflict", func(t *testing.T) {
		ctx := newTestContext()

		workspaceRepository := mocks.NewWorkspaceRepository(t)
		workspaceRepository.On("Create", mock.Anything, mock.Anything).Return(fmt.Errorf("ERROR: duplicate key value violates unique constraint"))

		authSession := mocks.NewAuthSession(t)
		authSession.On("GetUserID").Return("user-1")
		shared.SetSession(ctx, authSession)

		h := NewWorkspaceService(workspaceRepository, nil, nil)

		err := h.CreateWorkspace(ctx, &models.Workspace{Title: "cool workspace"})
		var httpErr *echo.HTTPError
		if assert.ErrorAs(t, err, &httpErr) {
			assert.Equal(t, 409, httpErr.Code)
		}
	})

	t.Run("should bootstrap the rbac domain when everything goes right", func(t *testing.T) {
		ctx := newTestContext()

		workspaceRepository := mocks.NewWorkspaceRepository(t)
		workspaceRepository.On("Create", mock.Anything, mock.Anything).Return(nil)

		accesscontrol := mocks.NewAccessControl(t)
		accesscontrol.On("GrantRole", "user-1", shared.RoleOwner).Return(nil)
		accesscontrol.On("InheritRole", mock.Anything, mock.Anything).Return(nil)
		accesscontrol.On("AllowRole", mock.Anything, mock.Anything, mock.Anything).Return(nil)

		authSession := mocks.NewAuthSession(t)
		authSession.On("GetUserID").Return("user-1")
		shared.SetSession(ctx, authSession)

		rbacProvider := mocks.NewRBACProvider(t)
		rbacProvider.On("GetDomainRBAC", mock.Anything).Return(accesscontrol)

		h := NewWorkspaceService(workspaceRepository, nil, rbacProvider)

		err := h.CreateWorkspace(ctx, &models.Workspace{Title: "cool workspace"})
		assert.Nil(t, err)
	})
}

func TestEnsureDefaultWorkspace(t *testing.T) {
	t.Run("should create the default workspace on an empty installation", func(t *testing.T) {
		workspaceRepository := mocks.NewWorkspaceRepository(t)
		workspaceRepository.On("Count").Return(int64(0), nil)
		workspaceRepository.On("Create", mock.Anything, mock.MatchedBy(func(workspace *models.Workspace) bool {
			return workspace.Title == DefaultWorkspaceTitle && workspace.Color == "#FFFFFF"
		})).Return(nil)

		h := NewWorkspaceService(workspaceRepository, nil, nil)
		assert.Nil(t, h.EnsureDefaultWorkspace())
	})

	t.Run("should do nothing when a workspace already exists", func(t *testing.T) {
		workspaceRepository := mocks.NewWorkspaceRepository(t)
		workspaceRepository.On("Count").Return(int64(2), nil)

		h := NewWorkspaceService(workspaceRepository, nil, nil)
		assert.Nil(t, h.EnsureDefaultWorkspace())
	})

	t.Run("should tolerate losing the creation race to another replica", func(t *testing.T) {
		workspaceRepository := mocks.NewWorkspaceRepository(t)
		workspaceRepository.On("Count").Return(int64(0), nil)
		workspaceRepository.On("Create", mock.Anything, mock.Anything).Return(fmt.Errorf("duplicate key value violates unique constraint"))

		h := NewWorkspaceService(workspaceRepository, nil, nil)
		assert.Nil(t, h.EnsureDefaultWorkspace())
	})
}

func TestCompleteOnboardingStep(t *testing.T) {
	workspaceID := uuid.New()

	t.Run("should return not found for an unknown step code", func(t *testing.T) {
		onboardingRepository := mocks.NewOnboardingRepository(t)
		onboardingRepository.On("FindStepByCode", "XX").Return(models.WorkspaceOnboardingStep{}, gorm.ErrRecordNotFound)

		h := NewWorkspaceService(nil, onboardingRepository, nil)

		_, err := h.CompleteOnboardingStep(workspaceID, "XX", true)
		var httpErr *echo.HTTPError
		if assert.ErrorAs(t, err, &httpErr) {
			assert.Equal(t, 404, httpErr.Code)
		}
	})

	t.Run("should flip skip onboarding once every step is finished", func(t *testing.T) {
		workspace := models.Workspace{Title: "w"}
		workspace.ID = workspaceID

		tx := &gorm.DB{}

		// the workspace row is read and saved on the transaction handle
		workspaceRepository := mocks.NewWorkspaceRepository(t)
		workspaceRepository.On("ReadTx", tx, workspaceID).Return(workspace, nil)
		workspaceRepository.On("Save", tx, mock.MatchedBy(func(w *models.Workspace) bool {
			return w.SkipOnboarding
		})).Return(nil)

		onboardingRepository := mocks.NewOnboardingRepository(t)
		onboardingRepository.On("FindStepByCode", "IM").Return(models.WorkspaceOnboardingStep{Code: "IM"}, nil)
		onboardingRepository.On("Transaction", mock.Anything).Return(func(f func(tx *gorm.DB) error) error {
			return f(tx)
		})
		onboardingRepository.On("Upsert", mock.Anything, mock.Anything).Return(nil)
		onboardingRepository.On("CountFinished", mock.Anything, workspaceID).Return(int64(4), nil)
		onboardingRepository.On("CountSteps").Return(int64(4), nil)

		h := NewWorkspaceService(workspaceRepository, onboardingRepository, nil)

		updated, err := h.CompleteOnboardingStep(workspaceID, "IM", true)
		assert.Nil(t, err)
		assert.True(t, updated.SkipOnboarding)
	})

	t.Run("should not touch the workspace while steps are missing", func(t *testing.T) {
		workspace := models.Workspace{Title: "w"}
		workspace.ID = workspaceID

		workspaceRepository := mocks.NewWorkspaceRepository(t)
		workspaceRepository.On("ReadTx", mock.Anything, workspaceID).Return(workspace, nil)

		onboardingRepository := mocks.NewOnboardingRepository(t)
		onboardingRepository.On("FindStepByCode", "CF").Return(models.WorkspaceOnboardingStep{Code: "CF"}, nil)
		onboardingRepository.On("Transaction", mock.Anything).Return(func(f func(tx *gorm.DB) error) error {
			return f(nil)
		})
		onboardingRepository.On("Upsert", mock.Anything, mock.MatchedBy(func(onboarding *models.WorkspaceOnboarding) bool {
			return onboarding.WorkspaceID == workspaceID && onboarding.Finished
		})).Return(nil)
		onboardingRepository.On("CountFinished", mock.Anything, workspaceID).Return(int64(1), nil)
		onboardingRepository.On("CountSteps").Return(int64(4), nil)

		h := NewWorkspaceService(workspaceRepository, onboardingRepository, nil)

		updated, err := h.CompleteOnboardingStep(workspaceID, "CF", true)
		assert.Nil(t, err)
		assert.False(t, updated.SkipOnboarding)
	})
}
