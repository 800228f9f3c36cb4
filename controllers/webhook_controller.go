// Copyright 2025 Label Studio contributors.
// SPDX-License-Identifier: Apache-2.0

package controllers

import (
	"encoding/json"
	"fmt"

	"github.com/PC91/label-studio/database/models"
	"github.com/PC91/label-studio/dtos"
	"github.com/PC91/label-studio/shared"
	"github.com/PC91/label-studio/transformer"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type WebhookController struct {
	webhookRepository shared.WebhookIntegrationRepository
}

func NewWebhookController(webhookRepository shared.WebhookIntegrationRepository) *WebhookController {
	return &WebhookController{
		webhookRepository: webhookRepository,
	}
}

func (controller *WebhookController) List(ctx shared.Context) error {
	workspace := shared.GetWorkspace(ctx)

	webhooks, err := controller.webhookRepository.FindByWorkspaceID(workspace.ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not list webhooks").WithInternal(err)
	}

	result := make([]dtos.WebhookIntegrationDTO, 0, len(webhooks))
	for _, webhook := range webhooks {
		result = append(result, transformer.WebhookIntegrationModelToDTO(webhook))
	}
	return ctx.JSON(200, result)
}

func (controller *WebhookController) Create(ctx shared.Context) error {
	workspace := shared.GetWorkspace(ctx)

	var req dtos.WebhookIntegrationCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	webhook := transformer.WebhookIntegrationCreateRequestToModel(req)
	webhook.WorkspaceID = workspace.ID

	if err := controller.webhookRepository.Save(nil, &webhook); err != nil {
		return echo.NewHTTPError(500, "could not create webhook").WithInternal(err)
	}

	return ctx.JSON(201, transformer.WebhookIntegrationModelToDTO(webhook))
}

func (controller *WebhookController) Patch(ctx shared.Context) error {
	webhook, err := controller.readScoped(ctx)
	if err != nil {
		return err
	}

	body := ctx.Request().Body
	defer body.Close()

	var patchRequest dtos.WebhookIntegrationPatchRequest
	if err := json.NewDecoder(body).Decode(&patchRequest); err != nil {
		return echo.NewHTTPError(400, "could not decode request").WithInternal(err)
	}

	if err := shared.V.Struct(patchRequest); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	if transformer.ApplyWebhookIntegrationPatchRequestToModel(patchRequest, &webhook) {
		if err := controller.webhookRepository.Save(nil, &webhook); err != nil {
			return echo.NewHTTPError(500, "could not update webhook").WithInternal(err)
		}
	}

	return ctx.JSON(200, transformer.WebhookIntegrationModelToDTO(webhook))
}

func (controller *WebhookController) Delete(ctx shared.Context) error {
	webhook, err := controller.readScoped(ctx)
	if err != nil {
		return err
	}

	if err := controller.webhookRepository.Delete(nil, webhook.ID); err != nil {
		return echo.NewHTTPError(500, "could not delete webhook").WithInternal(err)
	}

	return ctx.NoContent(204)
}

// readScoped loads the webhook from the path and rejects ids that
// belong to another workspace.
func (controller *WebhookController) readScoped(ctx shared.Context) (models.WebhookIntegration, error) {
	workspace := shared.GetWorkspace(ctx)

	webhookID, err := uuid.Parse(ctx.Param("webhookID"))
	if err != nil {
		return models.WebhookIntegration{}, echo.NewHTTPError(400, "invalid webhook id").WithInternal(err)
	}

	webhook, err := controller.webhookRepository.Read(webhookID)
	if err != nil {
		return models.WebhookIntegration{}, echo.NewHTTPError(404, "webhook not found").WithInternal(err)
	}

	if webhook.WorkspaceID != workspace.ID {
		return models.WebhookIntegration{}, echo.NewHTTPError(404, "webhook not found")
	}

	return webhook, nil
}
