// Package errors provides structured error handling for the planner core.
package errors

import "net/http"

// Code is a machine-readable error code. Clients branch on codes, never on
// message text.
type Code string

const (
	// CodeUnknown represents an unexpected internal failure.
	CodeUnknown Code = "UNKNOWN"

	// Identity errors
	CodeUnauthenticated Code = "UNAUTHENTICATED"
	CodeAdminRequired   Code = "ADMIN_REQUIRED"

	// Ownership errors
	CodeOwnershipDenied Code = "OWNERSHIP_DENIED"

	// Lookup errors
	CodeNotFound Code = "NOT_FOUND"

	// Task errors
	CodeTaskTitleEmpty      Code = "TASK_TITLE_EMPTY"
	CodeTaskInvalidStatus   Code = "TASK_INVALID_STATUS"
	CodeTaskInvalidPriority Code = "TASK_INVALID_PRIORITY"

	// Event errors
	CodeEventTitleEmpty        Code = "EVENT_TITLE_EMPTY"
	CodeEventStartRequired     Code = "EVENT_START_REQUIRED"
	CodeEventEndRequired       Code = "EVENT_END_REQUIRED"
	CodeEventEndBeforeStart    Code = "EVENT_END_BEFORE_START"
	CodeEventInvalidRecurrence Code = "EVENT_INVALID_RECURRENCE"

	// Timer errors
	CodeTimerNameEmpty       Code = "TIMER_NAME_EMPTY"
	CodeTimerInvalidDuration Code = "TIMER_INVALID_DURATION"
	CodeTimerInvalidKind     Code = "TIMER_INVALID_KIND"

	// Timer session errors
	CodeSessionEmptyTimerID     Code = "SESSION_EMPTY_TIMER_ID"
	CodeSessionAlreadyCompleted Code = "SESSION_ALREADY_COMPLETED"

	// Music errors
	CodeMusicTitleEmpty      Code = "MUSIC_TITLE_EMPTY"
	CodeMusicURLEmpty        Code = "MUSIC_URL_EMPTY"
	CodeMusicInvalidCategory Code = "MUSIC_INVALID_CATEGORY"
	CodeMusicInvalidDuration Code = "MUSIC_INVALID_DURATION"

	// Query errors
	CodeRangeInvalid Code = "RANGE_INVALID"

	// Transport errors
	CodeInvalidPayload Code = "INVALID_PAYLOAD"
)

// HTTPStatus maps domain codes to HTTP status codes.
func (c Code) HTTPStatus() int {
	switch c {
	// Bad request - validation failures, bad input
	case CodeTaskTitleEmpty,
		CodeTaskInvalidStatus,
		CodeTaskInvalidPriority,
		CodeEventTitleEmpty,
		CodeEventStartRequired,
		CodeEventEndRequired,
		CodeEventEndBeforeStart,
		CodeEventInvalidRecurrence,
		CodeTimerNameEmpty,
		CodeTimerInvalidDuration,
		CodeTimerInvalidKind,
		CodeSessionEmptyTimerID,
		CodeMusicTitleEmpty,
		CodeMusicURLEmpty,
		CodeMusicInvalidCategory,
		CodeMusicInvalidDuration,
		CodeRangeInvalid,
		CodeInvalidPayload:
		return http.StatusBadRequest

	// Unauthorized - requester identity missing or unusable
	case CodeUnauthenticated:
		return http.StatusUnauthorized

	// Forbidden - resource exists, requester lacks rights
	case CodeOwnershipDenied,
		CodeAdminRequired:
		return http.StatusForbidden

	// Not found - resource doesn't exist
	case CodeNotFound:
		return http.StatusNotFound

	// Conflict - state doesn't allow the transition
	case CodeSessionAlreadyCompleted:
		return http.StatusConflict

	default:
		return http.StatusInternalServerError
	}
}
