// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/ml-community/internal/config"
	"github.com/MKhiriev/ml-community/internal/logger"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRevocationStorage(t *testing.T) (RevocationStorage, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRevocationStorage(client, "test:revoked:", logger.Nop()), mr
}

func TestRevocationStorage_RevokeAndCheck(t *testing.T) {
	storage, mr := newTestRevocationStorage(t)
	ctx := context.Background()

	revoked, err := storage.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, storage.Revoke(ctx, "jti-1", 10*time.Minute))

	revoked, err = storage.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	assert.True(t, mr.Exists("test:revoked:jti-1"))
	assert.Equal(t, 10*time.Minute, mr.TTL("test:revoked:jti-1"))

	revoked, err = storage.IsRevoked(ctx, "jti-2")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRevocationStorage_EntryExpiresWithToken(t *testing.T) {
	storage, mr := newTestRevocationStorage(t)
	ctx := context.Background()

	require.NoError(t, storage.Revoke(ctx, "jti-short", time.Minute))
	mr.FastForward(time.Minute + time.Second)

	revoked, err := storage.IsRevoked(ctx, "jti-short")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRevocationStorage_ExpiredTokenIsNoop(t *testing.T) {
	storage, mr := newTestRevocationStorage(t)

	require.NoError(t, storage.Revoke(context.Background(), "jti-old", -time.Second))
	assert.False(t, mr.Exists("test:revoked:jti-old"))
}

func TestRevocationStorage_RedisDown(t *testing.T) {
	storage, mr := newTestRevocationStorage(t)
	mr.Close()

	assert.Error(t, storage.Revoke(context.Background(), "jti", time.Minute))

	_, err := storage.IsRevoked(context.Background(), "jti")
	assert.Error(t, err)
}

func TestNoopRevocationStorage(t *testing.T) {
	storage := NewNoopRevocationStorage()

	require.NoError(t, storage.Revoke(context.Background(), "jti", time.Hour))
	revoked, err := storage.IsRevoked(context.Background(), "jti")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestNewRedisClient(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()

	client, err := NewRedisClient(context.Background(), config.Redis{Addr: addr}, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, client.Close())

	mr.Close()
	_, err = NewRedisClient(context.Background(), config.Redis{Addr: addr}, logger.Nop())
	assert.Error(t, err)
}
