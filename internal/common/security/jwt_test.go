package security

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	t.Parallel()

	ta := NewTokenAuth([]byte("test-secret"))

	token, err := GenerateSessionToken(ta, "sid-1", "user-1", time.Hour)
	require.NoError(t, err)

	decoded, err := jwtauth.VerifyToken(ta, token)
	require.NoError(t, err)

	claims, err := decoded.AsMap(context.Background())
	require.NoError(t, err)

	sid, err := GetSessionIDFromClaims(claims)
	require.NoError(t, err)
	require.Equal(t, "sid-1", sid)

	userID, err := GetUserIDFromClaims(claims)
	require.NoError(t, err)
	require.Equal(t, "user-1", userID)
}

func TestSessionToken_WrongKeyRejected(t *testing.T) {
	t.Parallel()

	token, err := GenerateSessionToken(NewTokenAuth([]byte("right-key")), "sid-1", "user-1", time.Hour)
	require.NoError(t, err)

	_, err = jwtauth.VerifyToken(NewTokenAuth([]byte("wrong-key")), token)
	require.Error(t, err)
}

func TestSessionToken_Expired(t *testing.T) {
	t.Parallel()

	ta := NewTokenAuth([]byte("test-secret"))
	token, err := GenerateSessionToken(ta, "sid-1", "user-1", -time.Minute)
	require.NoError(t, err)

	_, err = jwtauth.VerifyToken(ta, token)
	require.Error(t, err)
}

func TestClaimHelpers_Missing(t *testing.T) {
	t.Parallel()

	_, err := GetSessionIDFromClaims(map[string]interface{}{})
	require.Error(t, err)

	_, err = GetUserIDFromClaims(map[string]interface{}{"user_id": 42})
	require.Error(t, err)
}
