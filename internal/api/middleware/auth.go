package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"learnpath_backend/internal/common"
	"learnpath_backend/internal/common/security"
	"learnpath_backend/internal/platform/sessionstore"
)

type contextKey string

const (
	UserIDCtxKey    contextKey = "userID"
	SessionIDCtxKey contextKey = "sessionID"
)

// Authenticator requires a live session. The signed cookie is only half the
// proof: the session id inside it must still exist in the session store and
// map to the same user, so a cookie replayed after logout is rejected.
func Authenticator(sessions sessionstore.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil || token == nil {
				common.RespondWithError(w, http.StatusUnauthorized, "Not logged in")
				return
			}

			sessionID, err := security.GetSessionIDFromClaims(claims)
			if err != nil {
				common.RespondWithError(w, http.StatusUnauthorized, "Not logged in")
				return
			}
			claimedUserID, err := security.GetUserIDFromClaims(claims)
			if err != nil {
				common.RespondWithError(w, http.StatusUnauthorized, "Not logged in")
				return
			}

			storedUserID, err := sessions.Get(r.Context(), sessionID)
			if err != nil || storedUserID != claimedUserID {
				common.RespondWithError(w, http.StatusUnauthorized, "Not logged in")
				return
			}

			ctx := context.WithValue(r.Context(), UserIDCtxKey, storedUserID)
			ctx = context.WithValue(ctx, SessionIDCtxKey, sessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Helper to get user ID from context
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(string)
	return userID, ok
}

// Helper to get session ID from context
func GetSessionIDFromContext(ctx context.Context) (string, bool) {
	sessionID, ok := ctx.Value(SessionIDCtxKey).(string)
	return sessionID, ok
}
