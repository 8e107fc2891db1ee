package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrorCodeRoundTrip(t *testing.T) {
	t.Parallel()

	err := New(CodeNotFound, "task not found")
	if got := GetCode(err); got != CodeNotFound {
		t.Fatalf("GetCode = %q, want %q", got, CodeNotFound)
	}
	if !IsCode(err, CodeNotFound) {
		t.Fatal("expected IsCode to match")
	}
}

func TestGetCodeWrappedError(t *testing.T) {
	t.Parallel()

	inner := New(CodeOwnershipDenied, "not the owner")
	wrapped := fmt.Errorf("update task: %w", inner)
	if got := GetCode(wrapped); got != CodeOwnershipDenied {
		t.Fatalf("GetCode = %q, want %q", got, CodeOwnershipDenied)
	}
}

func TestGetCodeUnknownForPlainErrors(t *testing.T) {
	t.Parallel()

	if got := GetCode(stderrors.New("boom")); got != CodeUnknown {
		t.Fatalf("GetCode = %q, want %q", got, CodeUnknown)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	t.Parallel()

	cause := stderrors.New("disk gone")
	err := Wrap(CodeUnknown, "store failure", cause)
	if !stderrors.Is(err, cause) {
		t.Fatal("expected cause in chain")
	}
}

func TestHTTPStatusMapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		code Code
		want int
	}{
		{CodeNotFound, http.StatusNotFound},
		{CodeOwnershipDenied, http.StatusForbidden},
		{CodeAdminRequired, http.StatusForbidden},
		{CodeUnauthenticated, http.StatusUnauthorized},
		{CodeTaskTitleEmpty, http.StatusBadRequest},
		{CodeEventEndBeforeStart, http.StatusBadRequest},
		{CodeTimerInvalidDuration, http.StatusBadRequest},
		{CodeSessionAlreadyCompleted, http.StatusConflict},
		{CodeRangeInvalid, http.StatusBadRequest},
		{CodeUnknown, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := tc.code.HTTPStatus(); got != tc.want {
			t.Fatalf("HTTPStatus(%s) = %d, want %d", tc.code, got, tc.want)
		}
	}
}

func TestHTTPStatusNilError(t *testing.T) {
	t.Parallel()

	if got := HTTPStatus(nil); got != http.StatusOK {
		t.Fatalf("HTTPStatus(nil) = %d, want %d", got, http.StatusOK)
	}
}
