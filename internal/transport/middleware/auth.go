package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/postcraft-backend/internal/auth"
	"github.com/heartmarshall/postcraft-backend/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
}

// Auth resolves a bearer token into the owner's user id. A request without
// credentials continues anonymously so RequireAuth can decide; a present but
// unusable token is rejected here.
func Auth(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, present := bearerToken(r)
			if !present {
				next.ServeHTTP(w, r)
				return
			}

			userID, err := validator.ValidateToken(r.Context(), token)
			if err != nil {
				desc := "token invalid"
				if errors.Is(err, auth.ErrTokenExpired) {
					desc = "token expired"
				}
				challenge(w, `Bearer error="invalid_token", error_description="`+desc+`"`, desc)
				return
			}
			next.ServeHTTP(w, r.WithContext(ctxutil.WithUserID(r.Context(), userID)))
		})
	}
}

// RequireAuth rejects requests Auth left anonymous.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
			challenge(w, "Bearer", "authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func challenge(w http.ResponseWriter, header, message string) {
	w.Header().Set("WWW-Authenticate", header)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"error":"` + message + `","code":"unauthorized"}`)) //nolint:errcheck
}

// bearerToken reports the credentials of an Authorization: Bearer header.
// A bearer scheme with an empty token counts as present.
func bearerToken(r *http.Request) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(r.Header.Get("Authorization")), " ")
	if !ok {
		if strings.EqualFold(scheme, "bearer") {
			return "", true
		}
		return "", false
	}
	if !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	return strings.TrimSpace(token), true
}
