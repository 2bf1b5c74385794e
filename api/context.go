package api

import (
	"context"

	"github.com/google/uuid"

	"github.com/artifexgroup/artifex-site-backend/errs"
)

type keyType string

const (
	userIDKey   keyType = "userID"
	userRoleKey keyType = "userRole"
)

// ctxWithIdentity adds the authenticated user's ID and role to the context
func ctxWithIdentity(ctx context.Context, userID uuid.UUID, role string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, userRoleKey, role)
}

// ctxGetUserID retrieves the authenticated user's ID from the context
func ctxGetUserID(ctx context.Context) (uuid.UUID, error) {
	value := ctx.Value(userIDKey)
	if value == nil {
		return uuid.Nil, errs.Unauthorized
	}
	userID, ok := value.(uuid.UUID)
	if !ok {
		return uuid.Nil, errs.Unauthorized
	}
	return userID, nil
}

// ctxGetRole retrieves the authenticated user's role from the context
func ctxGetRole(ctx context.Context) (string, error) {
	value := ctx.Value(userRoleKey)
	if value == nil {
		return "", errs.Unauthorized
	}
	role, ok := value.(string)
	if !ok {
		return "", errs.Unauthorized
	}
	return role, nil
}
