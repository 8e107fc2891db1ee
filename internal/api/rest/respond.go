package rest

import (
	"net/http"
	"strings"
	"time"

	apperrors "github.com/aashu-app/aashu/internal/platform/errors"
	"github.com/aashu-app/aashu/internal/platform/httpx"
)

func writeData(w http.ResponseWriter, status int, payload any) {
	_ = httpx.WriteJSON(w, status, map[string]any{
		"success": true,
		"data":    payload,
	})
}

func writeList(w http.ResponseWriter, count int, payload any) {
	_ = httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"count":   count,
		"data":    payload,
	})
}

func writeDeleted(w http.ResponseWriter) {
	_ = httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
	})
}

// parseTimeSegment accepts an RFC 3339 timestamp or a bare YYYY-MM-DD
// date, which reads as midnight UTC.
func parseTimeSegment(segment string) (time.Time, error) {
	segment = strings.TrimSpace(segment)
	if value, err := time.Parse(time.RFC3339, segment); err == nil {
		return value.UTC(), nil
	}
	value, err := time.Parse("2006-01-02", segment)
	if err != nil {
		return time.Time{}, apperrors.WithMetadata(apperrors.CodeRangeInvalid, "invalid time segment", map[string]string{"segment": segment})
	}
	return value.UTC(), nil
}

// splitPathParts breaks a trimmed URL path into its non-empty segments.
func splitPathParts(path string) []string {
	var parts []string
	for _, part := range strings.Split(path, "/") {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}
