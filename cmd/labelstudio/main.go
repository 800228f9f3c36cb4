// Copyright 2025 Label Studio contributors.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/PC91/label-studio/accesscontrol"
	"github.com/PC91/label-studio/controllers"
	"github.com/PC91/label-studio/database"
	"github.com/PC91/label-studio/database/repositories"
	"github.com/PC91/label-studio/integrations"
	"github.com/PC91/label-studio/middlewares"
	"github.com/PC91/label-studio/pubsub"
	"github.com/PC91/label-studio/router"
	"github.com/PC91/label-studio/services"
	"github.com/PC91/label-studio/shared"
	"github.com/getsentry/sentry-go"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	_ "github.com/lib/pq"
)

var release string // Will be filled at build time

func main() {
	shared.LoadConfig() // nolint: errcheck
	shared.InitLogger()
	shared.LoadAppConfig()

	if os.Getenv("ERROR_TRACKING_DSN") != "" {
		initSentry()

		defer func() {
			if err := recover(); err != nil {
				sentry.CurrentHub().Recover(err)
				sentry.Flush(time.Second * 5)
			}
		}()
	}

	db, err := database.NewConnection(
		shared.Cfg.PostgresHost,
		shared.Cfg.PostgresUser,
		shared.Cfg.PostgresPassword,
		shared.Cfg.PostgresDB,
		shared.Cfg.PostgresPort,
	)
	if err != nil {
		slog.Error(err.Error())
		panic(errors.New("failed to setup database connection"))
	}

	if os.Getenv("DISABLE_AUTOMIGRATE") != "true" {
		slog.Info("running database migrations...")
		if err := database.RunMigrationsWithDB(db); err != nil {
			slog.Error("failed to run database migrations", "error", err)
			panic(errors.New("failed to run database migrations"))
		}
	} else {
		slog.Info("automatic migrations disabled via DISABLE_AUTOMIGRATE=true")
	}

	fx.New(
		fx.Supply(db),
		fx.Provide(middlewares.Server),
		fx.Provide(func() shared.Verifier {
			return accesscontrol.NewStaticTokenVerifier(shared.Cfg.APITokens)
		}),
		pubsub.Module,
		repositories.Module,
		services.Module,
		controllers.ControllerModule,
		accesscontrol.Module,
		integrations.Module,
		router.RouterModule,

		// every workspace operation assumes at least one workspace exists
		fx.Invoke(func(workspaceService shared.WorkspaceService) error {
			return workspaceService.EnsureDefaultWorkspace()
		}),

		// invoke all routers to register their routes
		fx.Invoke(func(workspaceRouter router.WorkspaceRouter) {}),
		fx.Invoke(func(pagesRouter router.PagesRouter) {}),

		fx.Invoke(func(lc fx.Lifecycle, server *echo.Echo) {
			lc.Append(fx.Hook{
				OnStart: func(ctx context.Context) error {
					go func() {
						if err := server.Start(":8080"); err != nil {
							slog.Error("server stopped", "err", err)
						}
					}()
					return nil
				},
				OnStop: func(ctx context.Context) error {
					return server.Shutdown(ctx)
				},
			})
		}),
	).Run()
}

func initSentry() {
	environment := os.Getenv("ENVIRONMENT")
	if environment == "" {
		environment = "dev"
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              os.Getenv("ERROR_TRACKING_DSN"),
		Environment:      environment,
		Release:          release,
		Debug:            environment == "dev",
		AttachStacktrace: true,
		SendDefaultPII:   false,
	})
	if err != nil {
		slog.Error("failed to init error tracking", "err", err)
	}
}
