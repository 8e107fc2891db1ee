package rest

import (
	"fmt"
	"net/http"
	"strings"

	apperrors "github.com/aashu-app/aashu/internal/platform/errors"
	"github.com/aashu-app/aashu/internal/platform/httpx"
	"github.com/aashu-app/aashu/internal/platform/requestctx"
	"github.com/golang-jwt/jwt/v5"
)

// authenticate verifies the bearer token and stashes the caller identity
// in the request context. Tokens are HS256 with the subject claim holding
// the user ID and an optional role claim.
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, role, err := h.identityFromRequest(r)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		ctx := requestctx.WithUserID(r.Context(), userID)
		ctx = requestctx.WithRole(ctx, role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) identityFromRequest(r *http.Request) (userID, role string, err error) {
	if len(h.jwtSecret) == 0 {
		return "", "", fmt.Errorf("jwt secret is not configured")
	}
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", "", apperrors.New(apperrors.CodeUnauthenticated, "bearer token is required")
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(strings.TrimSpace(token), claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return h.jwtSecret, nil
	})
	if err != nil || !parsed.Valid {
		return "", "", apperrors.New(apperrors.CodeUnauthenticated, "invalid bearer token")
	}

	subject, err := claims.GetSubject()
	if err != nil || strings.TrimSpace(subject) == "" {
		return "", "", apperrors.New(apperrors.CodeUnauthenticated, "token subject is required")
	}
	if value, ok := claims["role"].(string); ok {
		role = value
	}
	return subject, role, nil
}
