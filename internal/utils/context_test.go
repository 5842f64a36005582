// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/data-catalog/models"
	"github.com/stretchr/testify/assert"
)

func TestContextKeyString(t *testing.T) {
	assert.Equal(t, "testKey", contextKey("testKey").String())
	assert.Equal(t, "user", UserCtxKey.String())
}

func TestGetUserFromContext(t *testing.T) {
	alice := models.User{Username: "alice", HasSecretsAccess: true}

	tests := []struct {
		name   string
		ctx    context.Context
		want   models.User
		wantOK bool
	}{
		{name: "present", ctx: context.WithValue(context.Background(), UserCtxKey, alice), want: alice, wantOK: true},
		{name: "missing", ctx: context.Background()},
		{name: "wrong type", ctx: context.WithValue(context.Background(), UserCtxKey, "alice")},
		{name: "pointer is not accepted", ctx: context.WithValue(context.Background(), UserCtxKey, &alice)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, ok := GetUserFromContext(tt.ctx)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, user)
		})
	}
}
