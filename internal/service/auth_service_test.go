package service

import (
	"context"
	"testing"

	"github.com/ahmadqo/school-attendance/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testJWT = config.JWTConfig{Secret: "test-secret", ExpireHours: 1, RefreshExpHours: 24}

func newAuthFixture(t *testing.T) (AuthService, *fakeSessionRepo) {
	t.Helper()
	sessions := newFakeSessionRepo()
	svc := NewAuthService(&fakeAdminRepo{}, sessions, testJWT)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Username: "admin",
		Password: "Rahasia123",
		FullName: "Administrator",
	})
	require.NoError(t, err)
	return svc, sessions
}

func TestAuthService_LoginAndAuthenticate(t *testing.T) {
	svc, sessions := newAuthFixture(t)
	ctx := context.Background()

	resp, err := svc.Login(ctx, LoginRequest{Username: "admin", Password: "Rahasia123"})
	require.NoError(t, err)
	assert.Equal(t, "admin", resp.Admin.Username)
	assert.NotEmpty(t, resp.Token.AccessToken)
	assert.Len(t, sessions.sessions, 1)

	claims, err := svc.Authenticate(ctx, resp.Token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, resp.Admin.ID.String(), claims.AdminID)

	_, err = svc.Authenticate(ctx, resp.Token.RefreshToken)
	assert.Equal(t, ErrSessionExpired, err)
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	svc, sessions := newAuthFixture(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, LoginRequest{Username: "admin", Password: "salah"})
	assert.Equal(t, ErrInvalidCredentials, err)

	_, err = svc.Login(ctx, LoginRequest{Username: "tidak-ada", Password: "Rahasia123"})
	assert.Equal(t, ErrInvalidCredentials, err)
	assert.Empty(t, sessions.sessions)
}

func TestAuthService_LogoutRevokesTokens(t *testing.T) {
	svc, _ := newAuthFixture(t)
	ctx := context.Background()

	resp, err := svc.Login(ctx, LoginRequest{Username: "admin", Password: "Rahasia123"})
	require.NoError(t, err)
	claims, err := svc.Authenticate(ctx, resp.Token.AccessToken)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, claims.SessionID))

	_, err = svc.Authenticate(ctx, resp.Token.AccessToken)
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = svc.RefreshToken(ctx, resp.Token.RefreshToken)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAuthService_RefreshToken(t *testing.T) {
	svc, _ := newAuthFixture(t)
	ctx := context.Background()

	resp, err := svc.Login(ctx, LoginRequest{Username: "admin", Password: "Rahasia123"})
	require.NoError(t, err)

	pair, err := svc.RefreshToken(ctx, resp.Token.RefreshToken)
	require.NoError(t, err)

	claims, err := svc.Authenticate(ctx, pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)

	_, err = svc.RefreshToken(ctx, resp.Token.AccessToken)
	assert.Equal(t, ErrSessionExpired, err)
}

func TestAuthService_RegisterDuplicateAndMe(t *testing.T) {
	svc, _ := newAuthFixture(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterRequest{Username: "admin", Password: "Rahasia123", FullName: "Lagi"})
	assert.Equal(t, ErrUsernameExists, err)

	resp, err := svc.Login(ctx, LoginRequest{Username: "admin", Password: "Rahasia123"})
	require.NoError(t, err)

	me, err := svc.Me(ctx, resp.Admin.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Administrator", me.FullName)

	_, err = svc.Me(ctx, "bukan-uuid")
	assert.Equal(t, ErrInvalidID, err)
}
