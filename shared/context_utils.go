// Copyright 2025 Label Studio contributors.
// SPDX-License-Identifier: Apache-2.0

package shared

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PC91/label-studio/database/models"
	"github.com/labstack/echo/v4"
)

func SetWorkspace(ctx Context, workspace models.Workspace) {
	ctx.Set("workspace", workspace)
}

func GetWorkspace(ctx Context) models.Workspace {
	return ctx.Get("workspace").(models.Workspace)
}

func HasWorkspace(ctx Context) bool {
	_, ok := ctx.Get("workspace").(models.Workspace)
	return ok
}

func SetProject(ctx Context, project models.Project) {
	ctx.Set("project", project)
}

func GetProject(ctx Context) models.Project {
	return ctx.Get("project").(models.Project)
}

func HasProject(ctx Context) bool {
	_, ok := ctx.Get("project").(models.Project)
	return ok
}

func GetRBAC(ctx Context) AccessControl {
	return ctx.Get("rbac").(AccessControl)
}

func SetRBAC(ctx Context, rbac AccessControl) {
	ctx.Set("rbac", rbac)
}

func GetSession(ctx Context) AuthSession {
	return ctx.Get("session").(AuthSession)
}

func SetSession(ctx Context, session AuthSession) {
	ctx.Set("session", session)
}

func GetParam(ctx Context, param string) string {
	v := ctx.Param(param)
	if v == "" {
		fallback := ctx.Get(param)
		if fallback == nil {
			return ""
		}
		return fallback.(string)
	}
	return v
}

func GetWorkspaceID(ctx Context) (string, error) {
	workspaceID := GetParam(ctx, "workspaceID")
	if workspaceID == "" {
		return "", fmt.Errorf("could not get workspace id")
	}
	return workspaceID, nil
}

type PageInfo struct {
	PageSize int `json:"page_size"`
	Page     int `json:"page"`
}

func (p PageInfo) ApplyOnDB(db DB) DB {
	return db.Offset((p.Page - 1) * p.PageSize).Limit(p.PageSize)
}

type Paged[T any] struct {
	PageInfo
	Total int64 `json:"total"`
	Data  []T   `json:"data"`
}

func (p Paged[T]) Map(f func(T) any) Paged[any] {
	data := make([]any, len(p.Data))
	for i, d := range p.Data {
		data[i] = f(d)
	}
	return Paged[any]{
		PageInfo: p.PageInfo,
		Total:    p.Total,
		Data:     data,
	}
}

func NewPaged[T any](pageInfo PageInfo, total int64, data []T) Paged[T] {
	return Paged[T]{
		PageInfo: pageInfo,
		Total:    total,
		Data:     data,
	}
}

// GetPageInfo reads the page and page_size query parameters. The default
// page size is intentionally large - listing endpoints historically
// returned everything unless the client asked for less.
func GetPageInfo(ctx Context) PageInfo {
	page, _ := strconv.Atoi(ctx.QueryParam("page"))
	if page <= 0 {
		page = 1
	}

	pageSize, _ := strconv.Atoi(ctx.QueryParam("page_size"))
	if pageSize <= 0 {
		pageSize = Cfg.DefaultPageSize
	}

	return PageInfo{
		Page:     page,
		PageSize: pageSize,
	}
}

// ListFilter restricts a workspace listing to pinned or unpinned entries.
type ListFilter string

const (
	FilterAll           ListFilter = "all"
	FilterPinnedOnly    ListFilter = "pinned_only"
	FilterExcludePinned ListFilter = "exclude_pinned"
)

// FieldsQuery carries the validated include/filter query parameters of
// the workspace listing endpoints.
type FieldsQuery struct {
	Include []string
	Filter  ListFilter
}

// GetFieldsQuery parses the include and filter query parameters.
// include is a comma separated list of count-annotation field names; a
// malformed list (empty elements) is a validation error. An unknown
// filter value silently degrades to "all".
func GetFieldsQuery(ctx Context) (FieldsQuery, error) {
	result := FieldsQuery{Filter: FilterAll}

	if raw := ctx.QueryParam("include"); raw != "" {
		fields := strings.Split(raw, ",")
		for _, f := range fields {
			if strings.TrimSpace(f) == "" {
				return result, echo.NewHTTPError(400, "malformed include parameter")
			}
		}
		result.Include = fields
	}

	switch f := ListFilter(ctx.QueryParam("filter")); f {
	case FilterPinnedOnly, FilterExcludePinned:
		result.Filter = f
	}

	return result, nil
}
