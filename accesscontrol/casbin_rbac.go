// Copyright 2025 Label Studio contributors.
// SPDX-License-Identifier: Apache-2.0
package accesscontrol

import (
	"fmt"
	"log"
	"log/slog"
	"strings"

	"github.com/casbin/casbin/v2"
	gormadapter "github.com/casbin/gorm-adapter/v3"

	"github.com/PC91/label-studio/database/models"
	"github.com/PC91/label-studio/shared"
	"github.com/PC91/label-studio/utils"
	"gorm.io/gorm"
)

var _ shared.AccessControl = &casbinRBAC{}
var casbinEnforcer *casbin.SyncedEnforcer

// casbinRBAC scopes the enforcer to a single domain - a workspace.
type casbinRBAC struct {
	domain   string
	enforcer *casbin.SyncedEnforcer
}

type casbinRBACProvider struct {
	enforcer *casbin.SyncedEnforcer
}

func (c casbinRBACProvider) GetDomainRBAC(domain string) shared.AccessControl {
	return &casbinRBAC{
		domain:   domain,
		enforcer: c.enforcer,
	}
}

func (c casbinRBACProvider) DomainsOfUser(user string) ([]string, error) {
	domains, err := c.enforcer.GetDomainsForUser("user::" + user)
	if err != nil {
		return nil, err
	}
	// slice the "domain::" prefix
	for i, d := range domains {
		domains[i] = d[8:]
	}
	return domains, nil
}

func (c *casbinRBAC) GetOwnerOfWorkspace() (string, error) {
	listOfUsers := c.enforcer.GetUsersForRoleInDomain("role::owner", "domain::"+c.domain)
	if len(listOfUsers) == 0 {
		return "", fmt.Errorf("no owner found for workspace")
	}
	if len(listOfUsers) > 1 {
		return "", fmt.Errorf("more than one owner found for workspace")
	}
	return strings.TrimPrefix(listOfUsers[0], "user::"), nil
}

func (c *casbinRBAC) GetAllMembersOfWorkspace() ([]string, error) {
	users, err := c.enforcer.GetAllUsersByDomain("domain::" + c.domain)
	if err != nil {
		return nil, err
	}
	return utils.Map(utils.Filter(users, func(u string) bool {
		return strings.HasPrefix(u, "user::")
	}), func(u string) string {
		return strings.TrimPrefix(u, "user::")
	}), nil
}

func (c *casbinRBAC) HasAccess(user string) (bool, error) {
	roles := c.enforcer.GetRolesForUserInDomain("user::"+user, "domain::"+c.domain)
	return len(roles) > 0, nil
}

func (c *casbinRBAC) getAllRoles(user string) []string {
	roles, err := c.enforcer.GetImplicitRolesForUser("user::"+user, "domain::"+c.domain)
	if err != nil {
		slog.Error("getAllRoles failed", "err", err)
		return []string{}
	}
	return roles
}

func (c *casbinRBAC) GetDomainRole(user string) (shared.Role, error) {
	dbRoles := c.getAllRoles(user)
	roles := utils.Map(utils.Filter(dbRoles, func(r string) bool {
		return strings.HasPrefix(r, "role::")
	}), func(r string) shared.Role {
		return shared.Role(strings.TrimPrefix(r, "role::"))
	})

	role, err := getMostPowerfulRole(roles)
	if err != nil {
		slog.Warn("GetDomainRole: no domain role found for user", "user", user, "roles", roles, "domain", c.domain)
	}
	return role, err
}

func getMostPowerfulRole(roles []shared.Role) (shared.Role, error) {
	if utils.Contains(roles, shared.RoleOwner) {
		return shared.RoleOwner, nil
	}
	if utils.Contains(roles, shared.RoleAdmin) {
		return shared.RoleAdmin, nil
	}
	if utils.Contains(roles, shared.RoleMember) {
		return shared.RoleMember, nil
	}

	return shared.RoleUnknown, fmt.Errorf("no domain role found for user. Roles from user: %v", roles)
}

func (c *casbinRBAC) GrantRole(user string, role shared.Role) error {
	_, err := c.enforcer.AddRoleForUserInDomain("user::"+user, "role::"+string(role), "domain::"+c.domain)
	return err
}

func (c *casbinRBAC) RevokeRole(user string, role shared.Role) error {
	_, err := c.enforcer.DeleteRoleForUserInDomain("user::"+user, "role::"+string(role), "domain::"+c.domain)
	return err
}

func (c *casbinRBAC) InheritRole(roleWhichGetsPermissions, roleWhichProvidesPermissions shared.Role) error {
	_, err := c.enforcer.AddRoleForUserInDomain("role::"+string(roleWhichGetsPermissions), "role::"+string(roleWhichProvidesPermissions), "domain::"+c.domain)
	return err
}

func (c *casbinRBAC) getProjectRoleName(role shared.Role, project string) string {
	return "project::" + project + "|role::" + string(role)
}

func (c *casbinRBAC) GrantRoleInProject(user string, role shared.Role, project string) error {
	_, err := c.enforcer.AddRoleForUserInDomain("user::"+user, c.getProjectRoleName(role, project), "domain::"+c.domain)
	return err
}

func (c *casbinRBAC) RevokeRoleInProject(user string, role shared.Role, project string) error {
	_, err := c.enforcer.DeleteRoleForUserInDomain("user::"+user, c.getProjectRoleName(role, project), "domain::"+c.domain)
	return err
}

func (c *casbinRBAC) AllowRole(role shared.Role, object shared.Object, action []shared.Action) error {
	policies := make([][]string, len(action))
	for i, ac := range action {
		policies[i] = []string{"role::" + string(role), "domain::" + c.domain, "obj::" + string(object), "act::" + string(ac)}
	}

	_, err := c.enforcer.AddPolicies(policies)
	return err
}

func (c *casbinRBAC) AllowRoleInProject(project string, role shared.Role, object shared.Object, action []shared.Action) error {
	policies := make([][]string, len(action))
	for i, ac := range action {
		policies[i] = []string{c.getProjectRoleName(role, project), "domain::" + c.domain, "project::" + project + "|obj::" + string(object), "act::" + string(ac)}
	}
	_, err := c.enforcer.AddPolicies(policies)
	return err
}

func (c *casbinRBAC) IsAllowed(user string, object shared.Object, action shared.Action) (bool, error) {
	permissions, err := c.enforcer.GetImplicitPermissionsForUser("user::"+user, "domain::"+c.domain)
	if err != nil {
		return false, err
	}

	for _, p := range permissions {
		if p[2] == "obj::"+string(object) && p[3] == "act::"+string(action) {
			return true, nil
		}
	}
	return false, nil
}

func (c *casbinRBAC) IsAllowedInProject(project *models.Project, user string, object shared.Object, action shared.Action) (bool, error) {
	permissions, err := c.enforcer.GetImplicitPermissionsForUser("user::"+user, "domain::"+c.domain)
	if err != nil {
		return false, err
	}

	projectID := project.ID.String()
	for _, p := range permissions {
		if p[2] == "project::"+projectID+"|obj::"+string(object) && p[3] == "act::"+string(action) {
			return true, nil
		}
	}
	return false, nil
}

// NewCasbinRBACProvider can be used to create domain specific RBAC instances
func NewCasbinRBACProvider(db *gorm.DB, broker shared.PubSubBroker) (casbinRBACProvider, error) {
	enforcer, err := buildEnforcer(db, broker)
	if err != nil {
		return casbinRBACProvider{}, err
	}
	return casbinRBACProvider{
		enforcer: enforcer,
	}, nil
}

func buildEnforcer(db *gorm.DB, broker shared.PubSubBroker) (*casbin.SyncedEnforcer, error) {
	if casbinEnforcer != nil {
		return casbinEnforcer, nil
	}
	// the adapter creates the casbin_rule table on first use
	a, err := gormadapter.NewAdapterByDB(db)
	if err != nil {
		return nil, err
	}

	e, err := casbin.NewSyncedEnforcer(shared.Cfg.RBACConfigPath, a)
	if err != nil {
		return nil, err
	}

	e.EnableLog(false)
	// make sure to publish a pub sub message when the policy changes
	watcher := newCasbinPubSubWatcher(broker)
	if err := e.SetWatcher(watcher); err != nil {
		return nil, fmt.Errorf("could not set watcher: %w", err)
	}
	if err := watcher.SetUpdateCallback(func(string) {
		if err := e.LoadPolicy(); err != nil {
			slog.Error("error while loading policy after update", "err", err)
		} else {
			slog.Debug("policy successfully reloaded after update")
		}
	}); err != nil {
		return nil, fmt.Errorf("could not set update callback: %w", err)
	}

	if err = e.LoadPolicy(); err != nil {
		log.Println("LoadPolicy failed, err: ", err)
	}

	casbinEnforcer = e

	return e, nil
}
