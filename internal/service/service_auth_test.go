// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/ml-community/internal/crypto"
	"github.com/MKhiriev/ml-community/internal/logger"
	"github.com/MKhiriev/ml-community/internal/mock"
	"github.com/MKhiriev/ml-community/internal/store"
	"github.com/MKhiriev/ml-community/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type authFixture struct {
	svc    AuthService
	repo   *memoryUserRepository
	clock  *testClock
	tokens TokenService
}

func newAuthFixture(t *testing.T, revocations store.RevocationStorage) *authFixture {
	t.Helper()
	clock := newTestClock()
	repo := newMemoryUserRepository()
	repo.now = clock.Now
	tokens := newTestTokenService(clock, revocations)
	svc := NewAuthService(repo, tokens, crypto.NewPasswordHasher(cheapHasherParams), logger.Nop())
	return &authFixture{svc: svc, repo: repo, clock: clock, tokens: tokens}
}

func (f *authFixture) register(t *testing.T, username, email, password string) models.User {
	t.Helper()
	user, err := f.svc.Register(context.Background(), models.RegisterRequest{
		Username: username,
		Email:    email,
		Password: password,
	})
	require.NoError(t, err)
	return user
}

// ─────────────────────────────────────────────
// End to end
// ─────────────────────────────────────────────

func TestAuthService_RegisterLoginResolveExpire(t *testing.T) {
	f := newAuthFixture(t, nil)
	ctx := context.Background()

	user := f.register(t, "miya_main", "Miya@Example.com", "arrows2024")
	assert.NotZero(t, user.UserID)
	assert.Equal(t, "miya@example.com", user.Email)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.True(t, user.IsActive)
	assert.False(t, user.IsVerified)
	assert.NotEqual(t, "arrows2024", user.PasswordHash)

	_, err := f.svc.Register(ctx, models.RegisterRequest{Username: "other", Email: "miya@example.com", Password: "arrows2024"})
	assert.ErrorIs(t, err, ErrDuplicateCredential, "same email")

	_, err = f.svc.Register(ctx, models.RegisterRequest{Username: "miya_main", Email: "other@example.com", Password: "arrows2024"})
	assert.ErrorIs(t, err, ErrDuplicateCredential, "same username")

	token, err := f.svc.Login(ctx, "miya_main", "arrows2024")
	require.NoError(t, err)
	assert.Equal(t, "miya_main", token.Subject)

	_, err = f.svc.Login(ctx, "miya_main", "wrong-password1")
	assert.ErrorIs(t, err, ErrIncorrectCredentials)

	_, err = f.svc.Login(ctx, "nobody", "arrows2024")
	assert.ErrorIs(t, err, ErrIncorrectCredentials)

	resolved, err := f.svc.ResolveCurrentUser(ctx, token.String())
	require.NoError(t, err)
	assert.Equal(t, user.UserID, resolved.UserID)

	f.clock.Set(token.Expiry())
	_, err = f.svc.ResolveCurrentUser(ctx, token.String())
	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestAuthService_Register_InvalidData(t *testing.T) {
	f := newAuthFixture(t, nil)

	tests := []models.RegisterRequest{
		{Username: "ab", Email: "ab@example.com", Password: "arrows2024"},
		{Username: "miya", Email: "not-an-email", Password: "arrows2024"},
		{Username: "miya", Email: "miya@example.com", Password: "short1"},
		{Username: "miya", Email: "miya@example.com", Password: "noDigitsHere"},
	}
	for _, req := range tests {
		_, err := f.svc.Register(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidData)
	}
	assert.Empty(t, f.repo.users)
}

func TestAuthService_Register_StoreUniqueViolation(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	svc := NewAuthService(repo, newTestTokenService(newTestClock(), nil), crypto.NewPasswordHasher(cheapHasherParams), logger.Nop())
	ctx := context.Background()

	// a concurrent registration wins between the lookup and the insert
	repo.EXPECT().FindUserByEmail(ctx, "miya@example.com").Return(models.User{}, store.ErrUserNotFound)
	repo.EXPECT().FindUserByUsername(ctx, "miya").Return(models.User{}, store.ErrUserNotFound)
	repo.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrUserAlreadyExists)

	_, err := svc.Register(ctx, models.RegisterRequest{Username: "miya", Email: "miya@example.com", Password: "arrows2024"})
	assert.ErrorIs(t, err, ErrDuplicateCredential)
}

// ─────────────────────────────────────────────
// Resolve
// ─────────────────────────────────────────────

func TestAuthService_ResolveCurrentUser_DeletedSubject(t *testing.T) {
	f := newAuthFixture(t, nil)
	ctx := context.Background()

	user := f.register(t, "miya", "miya@example.com", "arrows2024")
	token, err := f.svc.Login(ctx, "miya", "arrows2024")
	require.NoError(t, err)

	require.NoError(t, f.repo.DeleteUser(ctx, user.UserID))

	_, err = f.svc.ResolveCurrentUser(ctx, token.String())
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestAuthService_ResolveCurrentUser_TokenPredatesAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("username freed by deletion", func(t *testing.T) {
		f := newAuthFixture(t, nil)
		first := f.register(t, "miya", "miya@example.com", "arrows2024")
		stale, err := f.svc.Login(ctx, "miya", "arrows2024")
		require.NoError(t, err)

		require.NoError(t, f.repo.DeleteUser(ctx, first.UserID))
		f.clock.Advance(5 * time.Minute)
		second := f.register(t, "miya", "second@example.com", "arrows2025")

		_, err = f.svc.ResolveCurrentUser(ctx, stale.String())
		assert.ErrorIs(t, err, ErrUnauthenticated)
		assert.ErrorIs(t, err, ErrTokenInvalidClaims)

		fresh, err := f.svc.Login(ctx, "miya", "arrows2025")
		require.NoError(t, err)
		resolved, err := f.svc.ResolveCurrentUser(ctx, fresh.String())
		require.NoError(t, err)
		assert.Equal(t, second.UserID, resolved.UserID)
	})

	t.Run("username freed by rename", func(t *testing.T) {
		f := newAuthFixture(t, nil)
		first := f.register(t, "miya", "miya@example.com", "arrows2024")
		stale, err := f.svc.Login(ctx, "miya", "arrows2024")
		require.NoError(t, err)

		renamed := "miya_old"
		_, err = f.repo.UpdateUserFields(ctx, first.UserID, models.UserFields{Username: &renamed})
		require.NoError(t, err)
		f.clock.Advance(time.Second)
		f.register(t, "miya", "second@example.com", "arrows2025")

		_, err = f.svc.ResolveCurrentUser(ctx, stale.String())
		assert.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("login in the second of registration", func(t *testing.T) {
		f := newAuthFixture(t, nil)
		f.clock.Advance(900 * time.Millisecond)
		user := f.register(t, "miya", "miya@example.com", "arrows2024")
		token, err := f.svc.Login(ctx, "miya", "arrows2024")
		require.NoError(t, err)

		resolved, err := f.svc.ResolveCurrentUser(ctx, token.String())
		require.NoError(t, err)
		assert.Equal(t, user.UserID, resolved.UserID)
	})
}

func TestAuthService_ResolveCurrentUser_TokenFailuresAreUnauthenticated(t *testing.T) {
	f := newAuthFixture(t, nil)
	ctx := context.Background()

	f.register(t, "miya", "miya@example.com", "arrows2024")
	token, err := f.svc.Login(ctx, "miya", "arrows2024")
	require.NoError(t, err)

	_, err = f.svc.ResolveCurrentUser(ctx, "garbage")
	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.ErrorIs(t, err, ErrTokenMalformed)

	_, err = f.svc.ResolveCurrentUser(ctx, flipSignature(token.String()))
	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.ErrorIs(t, err, ErrTokenInvalidSignature)
}

func TestAuthService_ResolveCurrentUser_StoreFailureIsNotUnauthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	tokens := newTestTokenService(newTestClock(), nil)
	svc := NewAuthService(repo, tokens, crypto.NewPasswordHasher(cheapHasherParams), logger.Nop())
	ctx := context.Background()

	token, err := tokens.Issue(ctx, "miya")
	require.NoError(t, err)

	dbErr := errors.New("connection reset")
	repo.EXPECT().FindUserByUsername(ctx, "miya").Return(models.User{}, dbErr)

	_, err = svc.ResolveCurrentUser(ctx, token.String())
	assert.ErrorIs(t, err, dbErr)
	assert.False(t, errors.Is(err, ErrUnauthenticated))
}

func TestAuthService_ResolveActiveUser_Inactive(t *testing.T) {
	f := newAuthFixture(t, nil)
	ctx := context.Background()

	user := f.register(t, "miya", "miya@example.com", "arrows2024")
	inactive := false
	_, err := f.repo.UpdateUserFields(ctx, user.UserID, models.UserFields{IsActive: &inactive})
	require.NoError(t, err)

	// inactive accounts can still log in
	token, err := f.svc.Login(ctx, "miya", "arrows2024")
	require.NoError(t, err)

	current, err := f.svc.ResolveCurrentUser(ctx, token.String())
	require.NoError(t, err)
	assert.False(t, current.IsActive)

	_, err = f.svc.ResolveActiveUser(ctx, token.String())
	assert.ErrorIs(t, err, ErrInactiveAccount)
	assert.False(t, errors.Is(err, ErrUnauthenticated))
}

func TestAuthService_RoleChangeSeenOnNextResolve(t *testing.T) {
	f := newAuthFixture(t, nil)
	ctx := context.Background()

	user := f.register(t, "miya", "miya@example.com", "arrows2024")
	token, err := f.svc.Login(ctx, "miya", "arrows2024")
	require.NoError(t, err)

	moderator := models.RoleModerator
	_, err = f.repo.UpdateUserFields(ctx, user.UserID, models.UserFields{Role: &moderator})
	require.NoError(t, err)

	resolved, err := f.svc.ResolveActiveUser(ctx, token.String())
	require.NoError(t, err)
	assert.Equal(t, models.RoleModerator, resolved.Role)
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func TestAuthService_Login_UnknownUserRunsDummyVerify(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	hasher := mock.NewMockPasswordHasher(ctrl)
	svc := NewAuthService(repo, newTestTokenService(newTestClock(), nil), hasher, logger.Nop())
	ctx := context.Background()

	repo.EXPECT().FindUserByUsername(ctx, "ghost").Return(models.User{}, store.ErrUserNotFound).Times(2)
	hasher.EXPECT().Hash(dummyPassword).Return("dummy-credential", nil).Times(1)
	hasher.EXPECT().Verify("arrows2024", "dummy-credential").Return(false).Times(2)

	for i := 0; i < 2; i++ {
		_, err := svc.Login(ctx, "ghost", "arrows2024")
		assert.ErrorIs(t, err, ErrIncorrectCredentials)
	}
}

func TestAuthService_Login_DummyHashFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	hasher := mock.NewMockPasswordHasher(ctrl)
	svc := NewAuthService(repo, newTestTokenService(newTestClock(), nil), hasher, logger.Nop())
	ctx := context.Background()

	repo.EXPECT().FindUserByUsername(ctx, "ghost").Return(models.User{}, store.ErrUserNotFound)
	hasher.EXPECT().Hash(dummyPassword).Return("", errors.New("entropy exhausted"))
	hasher.EXPECT().Verify("arrows2024", fallbackDummyCredential).Return(false)

	_, err := svc.Login(ctx, "ghost", "arrows2024")
	assert.ErrorIs(t, err, ErrIncorrectCredentials)
}

func TestAuthService_Login_EmptyInput(t *testing.T) {
	f := newAuthFixture(t, nil)

	_, err := f.svc.Login(context.Background(), " ", "arrows2024")
	assert.ErrorIs(t, err, ErrInvalidData)

	_, err = f.svc.Login(context.Background(), "miya", "")
	assert.ErrorIs(t, err, ErrInvalidData)
}

func TestAuthService_Login_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	hasher := mock.NewMockPasswordHasher(ctrl)
	svc := NewAuthService(repo, newTestTokenService(newTestClock(), nil), hasher, logger.Nop())
	ctx := context.Background()

	dbErr := errors.New("timeout")
	repo.EXPECT().FindUserByUsername(ctx, "miya").Return(models.User{}, dbErr)

	_, err := svc.Login(ctx, "miya", "arrows2024")
	assert.ErrorIs(t, err, dbErr)
	assert.False(t, errors.Is(err, ErrIncorrectCredentials))
}

// ─────────────────────────────────────────────
// Refresh / Logout
// ─────────────────────────────────────────────

func TestAuthService_Refresh(t *testing.T) {
	f := newAuthFixture(t, nil)
	ctx := context.Background()

	user := f.register(t, "miya", "miya@example.com", "arrows2024")
	first, err := f.svc.Login(ctx, "miya", "arrows2024")
	require.NoError(t, err)

	f.clock.Advance(10 * time.Minute)
	refreshed, err := f.svc.Refresh(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, "miya", refreshed.Subject)
	assert.True(t, refreshed.Expiry().After(first.Expiry()))

	_, err = f.svc.Refresh(ctx, models.User{})
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestAuthService_Logout_RevokesToken(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	f := newAuthFixture(t, store.NewRevocationStorage(client, "test:revoked:", logger.Nop()))
	ctx := context.Background()

	f.register(t, "miya", "miya@example.com", "arrows2024")
	token, err := f.svc.Login(ctx, "miya", "arrows2024")
	require.NoError(t, err)
	other, err := f.svc.Login(ctx, "miya", "arrows2024")
	require.NoError(t, err)

	require.NoError(t, f.svc.Logout(ctx, token.String()))
	assert.True(t, mr.Exists("test:revoked:"+token.ID))

	_, err = f.svc.ResolveCurrentUser(ctx, token.String())
	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.ErrorIs(t, err, ErrTokenRevoked)

	// other sessions stay valid
	_, err = f.svc.ResolveCurrentUser(ctx, other.String())
	assert.NoError(t, err)

	err = f.svc.Logout(ctx, token.String())
	assert.ErrorIs(t, err, ErrUnauthenticated)
}
