// Copyright 2025 Label Studio contributors.
// SPDX-License-Identifier: Apache-2.0

package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/PC91/label-studio/mocks"
	"github.com/PC91/label-studio/shared"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestWhoami(t *testing.T) {
	t.Run("should report the user together with their workspaces", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		e := echo.New()
		ctx := e.NewContext(req, rec)

		authSession := mocks.NewAuthSession(t)
		authSession.On("GetUserID").Return("alice")
		shared.SetSession(ctx, authSession)

		rbacProvider := mocks.NewRBACProvider(t)
		rbacProvider.On("DomainsOfUser", "alice").Return([]string{"ws-1", "ws-2"}, nil)

		err := whoami(rbacProvider)(ctx)
		assert.Nil(t, err)
		assert.Equal(t, 200, rec.Code)

		var resp map[string]any
		assert.Nil(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "alice", resp["userID"])
		assert.Equal(t, []any{"ws-1", "ws-2"}, resp["workspaces"])
	})
}
