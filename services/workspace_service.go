// Copyright 2025 Label Studio contributors.
// SPDX-License-Identifier: Apache-2.0
package services

import (
	"fmt"
	"unicode/utf8"

	"github.com/PC91/label-studio/database"
	"github.com/PC91/label-studio/database/models"
	"github.com/PC91/label-studio/shared"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// DefaultWorkspaceTitle is the title of the workspace created on an
// empty installation.
const DefaultWorkspaceTitle = "Default Workspace"

type WorkspaceService struct {
	workspaceRepository  shared.WorkspaceRepository
	onboardingRepository shared.OnboardingRepository
	rbacProvider         shared.RBACProvider
}

func NewWorkspaceService(workspaceRepository shared.WorkspaceRepository, onboardingRepository shared.OnboardingRepository, rbacProvider shared.RBACProvider) *WorkspaceService {
	return &WorkspaceService{
		workspaceRepository:  workspaceRepository,
		onboardingRepository: onboardingRepository,
		rbacProvider:         rbacProvider,
	}
}

// ValidateTitle enforces the configured title length bounds. The empty
// title is always valid, an untitled workspace is the default state.
func (w *WorkspaceService) ValidateTitle(title string) error {
	if title == "" {
		return nil
	}
	length := utf8.RuneCountInString(title)
	if length < shared.Cfg.WorkspaceTitleMinLen || length > shared.Cfg.WorkspaceTitleMaxLen {
		return echo.NewHTTPError(400, fmt.Sprintf("title must be between %d and %d characters", shared.Cfg.WorkspaceTitleMinLen, shared.Cfg.WorkspaceTitleMaxLen))
	}
	return nil
}

func (w *WorkspaceService) CreateWorkspace(ctx shared.Context, workspace *models.Workspace) error {
	if err := w.ValidateTitle(workspace.Title); err != nil {
		return err
	}

	userID := shared.GetSession(ctx).GetUserID()
	workspace.CreatedByID = &userID

	err := w.workspaceRepository.Create(nil, workspace)
	if err != nil {
		if database.IsDuplicateKeyError(err) {
			return echo.NewHTTPError(409, "database error during workspace creation, try again").WithInternal(err)
		}
		return echo.NewHTTPError(500, "could not create workspace").WithInternal(err)
	}

	rbac := w.rbacProvider.GetDomainRBAC(workspace.ID.String())
	if err = shared.BootstrapWorkspace(rbac, userID, shared.RoleOwner); err != nil {
		return echo.NewHTTPError(500, "could not bootstrap workspace roles").WithInternal(err)
	}
	ctx.Set("rbac", rbac)

	return nil
}

// EnsureDefaultWorkspace creates the default workspace on an empty
// installation. Safe to call on every startup.
func (w *WorkspaceService) EnsureDefaultWorkspace() error {
	count, err := w.workspaceRepository.Count()
	if err != nil {
		return fmt.Errorf("could not count workspaces: %w", err)
	}
	if count > 0 {
		return nil
	}

	workspace := models.Workspace{
		Title: DefaultWorkspaceTitle,
		Color: "#FFFFFF",
	}
	if err := w.workspaceRepository.Create(nil, &workspace); err != nil {
		// a concurrent replica may have won the race
		if database.IsDuplicateKeyError(err) {
			return nil
		}
		return fmt.Errorf("could not create default workspace: %w", err)
	}
	return nil
}

// CompleteOnboardingStep marks a single onboarding step for the
// workspace. When every step of the catalog is finished the workspace
// stops showing onboarding hints.
func (w *WorkspaceService) CompleteOnboardingStep(workspaceID uuid.UUID, stepCode string, finished bool) (models.Workspace, error) {
	step, err := w.onboardingRepository.FindStepByCode(stepCode)
	if err != nil {
		return models.Workspace{}, echo.NewHTTPError(404, "unknown onboarding step").WithInternal(err)
	}

	// the skip_onboarding read-modify-write has to stay inside one
	// transaction, concurrent step completions would otherwise race
	var workspace models.Workspace
	err = w.onboardingRepository.Transaction(func(tx shared.DB) error {
		workspace, err = w.workspaceRepository.ReadTx(tx, workspaceID)
		if err != nil {
			return err
		}

		onboarding := models.WorkspaceOnboarding{
			WorkspaceID: workspaceID,
			StepID:      step.ID,
			Finished:    finished,
		}
		if err := w.onboardingRepository.Upsert(tx, &onboarding); err != nil {
			return err
		}

		finishedCount, err := w.onboardingRepository.CountFinished(tx, workspaceID)
		if err != nil {
			return err
		}
		totalSteps, err := w.onboardingRepository.CountSteps()
		if err != nil {
			return err
		}

		done := totalSteps > 0 && finishedCount >= totalSteps
		if workspace.SkipOnboarding != done {
			workspace.SkipOnboarding = done
			return w.workspaceRepository.Save(tx, &workspace)
		}
		return nil
	})
	if err != nil {
		return models.Workspace{}, err
	}

	return workspace, nil
}

// OnboardingState reports progress against the step catalog.
func (w *WorkspaceService) OnboardingState(workspaceID uuid.UUID) (finished int64, total int64, err error) {
	finished, err = w.onboardingRepository.CountFinished(nil, workspaceID)
	if err != nil {
		return 0, 0, err
	}
	total, err = w.onboardingRepository.CountSteps()
	if err != nil {
		return 0, 0, err
	}
	return finished, total, nil
}
