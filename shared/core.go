// Copyright 2025 Label Studio contributors.
// SPDX-License-Identifier: Apache-2.0

package shared

import (
	"log/slog"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/lmittmann/tint"
	"gorm.io/gorm"
)

type MiddlewareFunc = echo.MiddlewareFunc
type Context = echo.Context
type DB = *gorm.DB

func Ptr[T any](t T) *T {
	return &t
}

// InitLogger initializes the logger with a tint handler.
// tint is a simple logging library that allows to add colors to the log output.
// this is obviously not required, but it makes the logs easier to read.
func InitLogger() {
	w := os.Stderr

	// set global logger with custom options
	slog.SetDefault(slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:      slog.LevelDebug,
			AddSource:  true,
			TimeFormat: time.Kitchen,
		}),
	))
}

func LoadConfig() error {
	return godotenv.Load()
}

var V = validator.New()

// BootstrapWorkspace sets up the role hierarchy and the default
// capabilities inside a freshly created workspace domain. The creating
// user becomes the owner.
func BootstrapWorkspace(rbac AccessControl, userID string, userRole Role) error {
	if err := rbac.GrantRole(userID, userRole); err != nil {
		return err
	}

	if err := rbac.InheritRole(RoleOwner, RoleAdmin); err != nil { // an owner is an admin
		return err
	}
	if err := rbac.InheritRole(RoleAdmin, RoleMember); err != nil { // an admin is a member
		return err
	}

	if err := rbac.AllowRole(RoleOwner, ObjectWorkspace, []Action{
		ActionCreate,
		ActionDelete,
	}); err != nil {
		return err
	}

	if err := rbac.AllowRole(RoleAdmin, ObjectWorkspace, []Action{
		ActionUpdate,
	}); err != nil {
		return err
	}

	if err := rbac.AllowRole(RoleAdmin, ObjectProject, []Action{
		ActionCreate,
		ActionRead, // listing all projects
		ActionUpdate,
		ActionDelete,
	}); err != nil {
		return err
	}

	if err := rbac.AllowRole(RoleAdmin, ObjectUser, []Action{
		ActionUpdate,
		ActionDelete,
	}); err != nil {
		return err
	}

	if err := rbac.AllowRole(RoleMember, ObjectWorkspace, []Action{
		ActionRead,
	}); err != nil {
		return err
	}

	if err := rbac.AllowRole(RoleMember, ObjectUser, []Action{
		ActionRead, // listing the members
	}); err != nil {
		return err
	}

	return rbac.AllowRole(RoleMember, ObjectProject, []Action{
		ActionRead,
	})
}

// BootstrapProject registers the project scoped roles and their
// capabilities inside the surrounding workspace domain. Project roles
// only narrow access, workspace wide grants keep working.
func BootstrapProject(rbac AccessControl, projectID string) error {
	if err := rbac.AllowRoleInProject(projectID, RoleAdmin, ObjectProject, []Action{
		ActionRead,
		ActionUpdate,
		ActionDelete,
	}); err != nil {
		return err
	}

	return rbac.AllowRoleInProject(projectID, RoleMember, ObjectProject, []Action{
		ActionRead,
	})
}
