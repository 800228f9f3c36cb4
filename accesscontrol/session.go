// Copyright 2025 Label Studio contributors.
// SPDX-License-Identifier: Apache-2.0
package accesscontrol

import "github.com/PC91/label-studio/shared"

type userSession struct {
	userID string
	scopes []string
}

func (s userSession) GetUserID() string {
	return s.userID
}

func (s userSession) GetScopes() []string {
	return s.scopes
}

func NewSession(userID string, scopes []string) shared.AuthSession {
	return userSession{
		userID: userID,
		scopes: scopes,
	}
}

// NoSession marks an unauthenticated request. Such a request may still
// pass for public resources.
var NoSession = userSession{}
