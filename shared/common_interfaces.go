// Copyright 2025 Label Studio contributors.
// SPDX-License-Identifier: Apache-2.0

package shared

import (
	"net/http"

	"github.com/PC91/label-studio/database/models"
	"github.com/google/uuid"
)

type WorkspaceRepository interface {
	// List returns all workspaces, annotated with the derived count
	// fields named in fields. Unknown field names are ignored.
	List(fields []string) ([]models.Workspace, error)
	ListPaged(pageInfo PageInfo, fields []string, filter ListFilter) (Paged[models.Workspace], error)
	Read(id uuid.UUID) (models.Workspace, error)
	// ReadTx reads inside an open transaction so the caller sees its
	// own uncommitted writes.
	ReadTx(tx DB, id uuid.UUID) (models.Workspace, error)
	ReadWithCounts(id uuid.UUID, fields []string) (models.Workspace, error)
	Create(tx DB, workspace *models.Workspace) error
	Save(tx DB, workspace *models.Workspace) error
	Update(tx DB, workspace *models.Workspace) error
	// DeleteCascade removes the workspace together with its owned
	// projects inside a single transaction, without firing per-project
	// recalculation hooks.
	DeleteCascade(id uuid.UUID) error
	Count() (int64, error)
	Transaction(f func(tx DB) error) error
	GetDB(tx DB) DB
}

type ProjectRepository interface {
	Read(id uuid.UUID) (models.Project, error)
	// FindFirstByID returns nil when no project matches. Callers must
	// handle the empty case explicitly.
	FindFirstByID(id uuid.UUID) (*models.Project, error)
	ListByWorkspacePaged(workspaceID uuid.UUID, pageInfo PageInfo) (Paged[models.Project], error)
	CountByWorkspaceID(workspaceID uuid.UUID) (int64, error)
	Create(tx DB, project *models.Project) error
	Save(tx DB, project *models.Project) error
	Delete(tx DB, id uuid.UUID) error
	Transaction(f func(tx DB) error) error
}

type OnboardingRepository interface {
	Steps() ([]models.WorkspaceOnboardingStep, error)
	CountSteps() (int64, error)
	FindStepByCode(code string) (models.WorkspaceOnboardingStep, error)
	Upsert(tx DB, onboarding *models.WorkspaceOnboarding) error
	CountFinished(tx DB, workspaceID uuid.UUID) (int64, error)
	Transaction(f func(tx DB) error) error
}

type WebhookIntegrationRepository interface {
	Read(id uuid.UUID) (models.WebhookIntegration, error)
	Save(tx DB, webhook *models.WebhookIntegration) error
	Delete(tx DB, id uuid.UUID) error
	FindByWorkspaceID(workspaceID uuid.UUID) ([]models.WebhookIntegration, error)
}

type WorkspaceService interface {
	CreateWorkspace(ctx Context, workspace *models.Workspace) error
	ValidateTitle(title string) error
	// EnsureDefaultWorkspace creates the "Default Workspace" when no
	// workspace exists yet. Idempotent.
	EnsureDefaultWorkspace() error
	CompleteOnboardingStep(workspaceID uuid.UUID, stepCode string, finished bool) (models.Workspace, error)
	OnboardingState(workspaceID uuid.UUID) (finished int64, total int64, err error)
}

type ProjectService interface {
	Duplicate(projectID uuid.UUID) (models.Project, error)
}

// EventDispatcher fans a lifecycle event out to all registered
// integrations. Dispatch is fire-and-forget; delivery failures are
// logged, never surfaced to the request that caused the event.
type EventDispatcher interface {
	Dispatch(event any)
}

// Integration consumes lifecycle events.
type Integration interface {
	HandleEvent(event any) error
}

type AuthSession interface {
	GetUserID() string
	GetScopes() []string
}

// Verifier resolves the identity behind an incoming request. Token
// storage and verification internals live behind this interface.
type Verifier interface {
	VerifyRequest(req *http.Request) (userID string, scopes []string, err error)
}

type Channel string

// PolicyChange is published whenever a replica mutates the casbin
// policy, so all others reload it.
const PolicyChange Channel = "policy_change"

// PubSubBroker distributes small control-plane messages between
// replicas (casbin policy reloads).
type PubSubBroker interface {
	Publish(channel Channel, payload map[string]interface{}) error
	Subscribe(channel Channel) (<-chan map[string]interface{}, error)
	Close() error
}

type AccessControl interface {
	HasAccess(subject string) (bool, error)

	InheritRole(roleWhichGetsPermissions, roleWhichProvidesPermissions Role) error

	GrantRole(subject string, role Role) error
	RevokeRole(subject string, role Role) error

	GrantRoleInProject(subject string, role Role, project string) error
	RevokeRoleInProject(subject string, role Role, project string) error

	AllowRole(role Role, object Object, action []Action) error
	AllowRoleInProject(project string, role Role, object Object, action []Action) error

	IsAllowed(subject string, object Object, action Action) (bool, error)
	IsAllowedInProject(project *models.Project, user string, object Object, action Action) (bool, error)

	GetOwnerOfWorkspace() (string, error)
	GetAllMembersOfWorkspace() ([]string, error)
	GetDomainRole(user string) (Role, error)
}

type RBACProvider interface {
	GetDomainRBAC(domain string) AccessControl
	DomainsOfUser(user string) ([]string, error)
}

type Role string

const (
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"

	// default value - nobody should ever actually carry it
	RoleUnknown Role = "unknown"
)

type Action string

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

type Object string

const (
	ObjectWorkspace Object = "workspace"
	ObjectProject   Object = "project"
	ObjectUser      Object = "user"
)
