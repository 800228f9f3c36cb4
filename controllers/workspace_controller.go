// Copyright 2025 Label Studio contributors.
// SPDX-License-Identifier: Apache-2.0

package controllers

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/PC91/label-studio/database/models"
	"github.com/PC91/label-studio/dtos"
	"github.com/PC91/label-studio/monitoring"
	"github.com/PC91/label-studio/shared"
	"github.com/PC91/label-studio/transformer"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type WorkspaceController struct {
	workspaceRepository  shared.WorkspaceRepository
	workspaceService     shared.WorkspaceService
	onboardingRepository shared.OnboardingRepository
	dispatcher           shared.EventDispatcher
}

func NewWorkspaceController(workspaceRepository shared.WorkspaceRepository, workspaceService shared.WorkspaceService, onboardingRepository shared.OnboardingRepository, dispatcher shared.EventDispatcher) *WorkspaceController {
	return &WorkspaceController{
		workspaceRepository:  workspaceRepository,
		workspaceService:     workspaceService,
		onboardingRepository: onboardingRepository,
		dispatcher:           dispatcher,
	}
}

func (controller *WorkspaceController) List(ctx shared.Context) error {
	fieldsQuery, err := shared.GetFieldsQuery(ctx)
	if err != nil {
		return err
	}

	pageInfo := shared.GetPageInfo(ctx)

	page, err := controller.workspaceRepository.ListPaged(pageInfo, fieldsQuery.Include, fieldsQuery.Filter)
	if err != nil {
		return echo.NewHTTPError(500, "could not list workspaces").WithInternal(err)
	}

	return ctx.JSON(200, page.Map(func(workspace models.Workspace) any {
		return transformer.WorkspaceModelToDTO(workspace)
	}))
}

func (controller *WorkspaceController) Create(ctx shared.Context) error {
	var req dtos.WorkspaceCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	workspace := transformer.WorkspaceCreateRequestToModel(req)

	if err := controller.workspaceService.CreateWorkspace(ctx, &workspace); err != nil {
		return err
	}

	monitoring.WorkspaceCreatedAmount.Inc()
	controller.dispatcher.Dispatch(shared.WorkspaceCreatedEvent{
		Workspace: shared.ToWorkspaceObject(workspace),
	})

	return ctx.JSON(201, transformer.WorkspaceModelToDTO(workspace))
}

func (controller *WorkspaceController) Read(ctx shared.Context) error {
	fieldsQuery, err := shared.GetFieldsQuery(ctx)
	if err != nil {
		return err
	}

	workspace := shared.GetWorkspace(ctx)

	if len(fieldsQuery.Include) > 0 {
		workspace, err = controller.workspaceRepository.ReadWithCounts(workspace.ID, fieldsQuery.Include)
		if err != nil {
			return echo.NewHTTPError(500, "could not read workspace").WithInternal(err)
		}
	}

	return ctx.JSON(200, transformer.WorkspaceModelToDTO(workspace))
}

func (controller *WorkspaceController) Patch(ctx shared.Context) error {
	workspace := shared.GetWorkspace(ctx)

	req := ctx.Request().Body
	defer req.Close()

	var patchRequest dtos.WorkspacePatchRequest
	if err := json.NewDecoder(req).Decode(&patchRequest); err != nil {
		return echo.NewHTTPError(400, "could not decode request").WithInternal(err)
	}

	updated := transformer.ApplyWorkspacePatchRequestToModel(patchRequest, &workspace)

	if patchRequest.Title != nil {
		if err := controller.workspaceService.ValidateTitle(workspace.Title); err != nil {
			return err
		}
	}

	if updated {
		if err := controller.workspaceRepository.Update(nil, &workspace); err != nil {
			return echo.NewHTTPError(500, "could not update workspace").WithInternal(err)
		}

		controller.dispatcher.Dispatch(shared.WorkspaceUpdatedEvent{
			Workspace: shared.ToWorkspaceObject(workspace),
		})
	}

	return ctx.JSON(200, transformer.WorkspaceModelToDTO(workspace))
}

// Put overwrites all client-settable fields. The full update refreshes
// project-level display data, so it announces a project update rather
// than a workspace one.
func (controller *WorkspaceController) Put(ctx shared.Context) error {
	workspace := shared.GetWorkspace(ctx)

	var req dtos.WorkspaceUpdateRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	if err := controller.workspaceService.ValidateTitle(req.Title); err != nil {
		return err
	}

	transformer.ApplyWorkspaceUpdateRequestToModel(req, &workspace)

	if err := controller.workspaceRepository.Update(nil, &workspace); err != nil {
		return echo.NewHTTPError(500, "could not update workspace").WithInternal(err)
	}

	controller.dispatcher.Dispatch(shared.ProjectUpdatedEvent{
		Workspace: shared.ToWorkspaceObject(workspace),
	})

	return ctx.JSON(200, transformer.WorkspaceModelToDTO(workspace))
}

func (controller *WorkspaceController) Delete(ctx shared.Context) error {
	workspace := shared.GetWorkspace(ctx)

	// snapshot before the row is gone
	payload := shared.ToWorkspaceObject(workspace)

	if err := controller.workspaceRepository.DeleteCascade(workspace.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(404, "workspace not found").WithInternal(err)
		}
		return echo.NewHTTPError(500, "could not delete workspace").WithInternal(err)
	}

	monitoring.WorkspaceDeletedAmount.Inc()
	controller.dispatcher.Dispatch(shared.WorkspaceDeletedEvent{
		Workspace: payload,
	})

	return ctx.NoContent(204)
}

func (controller *WorkspaceController) ListOnboardingSteps(ctx shared.Context) error {
	steps, err := controller.onboardingRepository.Steps()
	if err != nil {
		return echo.NewHTTPError(500, "could not list onboarding steps").WithInternal(err)
	}

	result := make([]dtos.OnboardingStepDTO, 0, len(steps))
	for _, step := range steps {
		result = append(result, transformer.OnboardingStepModelToDTO(step))
	}
	return ctx.JSON(200, result)
}

func (controller *WorkspaceController) CompleteOnboardingStep(ctx shared.Context) error {
	workspace := shared.GetWorkspace(ctx)

	var req dtos.OnboardingRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	finished := true
	if req.Finished != nil {
		finished = *req.Finished
	}

	updated, err := controller.workspaceService.CompleteOnboardingStep(workspace.ID, req.Code, finished)
	if err != nil {
		return err
	}

	return ctx.JSON(200, transformer.WorkspaceModelToDTO(updated))
}

func (controller *WorkspaceController) OnboardingState(ctx shared.Context) error {
	workspace := shared.GetWorkspace(ctx)

	finished, total, err := controller.workspaceService.OnboardingState(workspace.ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not read onboarding state").WithInternal(err)
	}

	return ctx.JSON(200, dtos.OnboardingStateDTO{
		FinishedSteps: finished,
		TotalSteps:    total,
		Done:          workspace.SkipOnboarding || (total > 0 && finished >= total),
	})
}
