// Copyright 2025 Label Studio contributors.
// SPDX-License-Identifier: Apache-2.0

package repositories

import (
	"testing"

	"github.com/PC91/label-studio/database/models"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatal(err)
	}

	if err := db.AutoMigrate(
		&models.Workspace{},
		&models.Project{},
		&models.WorkspaceOnboardingStep{},
		&models.WorkspaceOnboarding{},
		&models.WebhookIntegration{},
	); err != nil {
		t.Fatal(err)
	}

	return db
}

func seedOnboardingSteps(t *testing.T, db *gorm.DB) []models.WorkspaceOnboardingStep {
	t.Helper()

	steps := []models.WorkspaceOnboardingStep{
		{Code: "CF", Title: "Configure settings", Order: 0},
		{Code: "IV", Title: "Invite collaborators", Order: 1},
		{Code: "PJ", Title: "Create a project", Order: 2},
		{Code: "IM", Title: "Import annotation tasks", Order: 3},
	}
	if err := db.Create(&steps).Error; err != nil {
		t.Fatal(err)
	}
	return steps
}
