package guard

import (
	"testing"

	apperrors "github.com/aashu-app/aashu/internal/platform/errors"
)

func TestAuthorizeOwner(t *testing.T) {
	t.Parallel()

	if err := Authorize("user-1", "user-1", "tasks.update"); err != nil {
		t.Fatalf("authorize owner: %v", err)
	}
}

func TestAuthorizeDeniesOtherUser(t *testing.T) {
	t.Parallel()

	err := Authorize("user-1", "user-2", "tasks.update")
	if !apperrors.IsCode(err, apperrors.CodeOwnershipDenied) {
		t.Fatalf("err = %v, want %s", err, apperrors.CodeOwnershipDenied)
	}
}

func TestRequireAdmin(t *testing.T) {
	t.Parallel()

	if err := RequireAdmin(true, "music.create"); err != nil {
		t.Fatalf("require admin: %v", err)
	}
	if err := RequireAdmin(false, "music.create"); !apperrors.IsCode(err, apperrors.CodeAdminRequired) {
		t.Fatalf("err = %v, want %s", err, apperrors.CodeAdminRequired)
	}
}
