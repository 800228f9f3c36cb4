// Copyright 2025 Label Studio contributors.
// SPDX-License-Identifier: Apache-2.0

package router

import (
	"runtime"

	"github.com/PC91/label-studio/shared"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type APIRouter struct {
	*echo.Group
}

func NewAPIRouter(e *echo.Echo, db shared.DB) APIRouter {
	apiRouter := e.Group("/api")

	apiRouter.GET("/health/", func(ctx echo.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return ctx.JSON(500, map[string]string{"status": "unhealthy"})
		}
		if err := sqlDB.Ping(); err != nil {
			return ctx.JSON(500, map[string]string{"status": "unhealthy"})
		}
		return ctx.JSON(200, map[string]any{
			"status":        "healthy",
			"goVersion":     runtime.Version(),
			"numGoroutines": runtime.NumGoroutine(),
		})
	})

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return APIRouter{Group: apiRouter}
}
