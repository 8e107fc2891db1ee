// Package guard enforces per-resource ownership checks.
package guard

import (
	apperrors "github.com/aashu-app/aashu/internal/platform/errors"
)

// Authorize verifies that requesterID owns the resource identified by
// ownerID. The operation name is recorded as metadata so denials can be
// traced back to the route that produced them.
func Authorize(ownerID, requesterID, operation string) error {
	if ownerID == requesterID {
		return nil
	}
	return apperrors.WithMetadata(apperrors.CodeOwnershipDenied, "resource belongs to another user", map[string]string{
		"operation": operation,
	})
}

// RequireAdmin verifies that the requester carries the admin role.
func RequireAdmin(isAdmin bool, operation string) error {
	if isAdmin {
		return nil
	}
	return apperrors.WithMetadata(apperrors.CodeAdminRequired, "admin role required", map[string]string{
		"operation": operation,
	})
}
