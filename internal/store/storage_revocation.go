// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/ml-community/internal/config"
	"github.com/MKhiriev/ml-community/internal/logger"
	"github.com/redis/go-redis/v9"
)

// redisRevocationStorage keeps revoked token ids as Redis keys that expire
// together with the token.
type redisRevocationStorage struct {
	client    *redis.Client
	keyPrefix string
	logger    *logger.Logger
}

// NewRedisClient connects to the Redis server described by cfg and pings it.
func NewRedisClient(ctx context.Context, cfg config.Redis, log *logger.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewRedisClient").Msg("error connecting redis (ping)")
		_ = client.Close()
		return nil, fmt.Errorf("error connecting redis: %w", err)
	}
	log.Info().Str("func", "NewRedisClient").Msg("connected to redis successfully")

	return client, nil
}

// NewRevocationStorage returns a Redis-backed [RevocationStorage].
func NewRevocationStorage(client *redis.Client, keyPrefix string, log *logger.Logger) RevocationStorage {
	log.Debug().Msg("creating redis revocation storage")
	return &redisRevocationStorage{
		client:    client,
		keyPrefix: keyPrefix,
		logger:    log,
	}
}

func (s *redisRevocationStorage) key(tokenID string) string {
	return s.keyPrefix + tokenID
}

func (s *redisRevocationStorage) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	if err := s.client.Set(ctx, s.key(tokenID), 1, ttl).Err(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*redisRevocationStorage.Revoke").Msg("error revoking token")
		return fmt.Errorf("error revoking token: %w", err)
	}

	return nil
}

func (s *redisRevocationStorage) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	exists, err := s.client.Exists(ctx, s.key(tokenID)).Result()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*redisRevocationStorage.IsRevoked").Msg("error checking revocation list")
		return false, fmt.Errorf("error checking revocation list: %w", err)
	}

	return exists > 0, nil
}

// noopRevocationStorage is used when no Redis server is configured. Logout
// then has no server-side effect and tokens live until they expire.
type noopRevocationStorage struct{}

// NewNoopRevocationStorage returns a [RevocationStorage] that never revokes.
func NewNoopRevocationStorage() RevocationStorage {
	return noopRevocationStorage{}
}

func (noopRevocationStorage) Revoke(context.Context, string, time.Duration) error {
	return nil
}

func (noopRevocationStorage) IsRevoked(context.Context, string) (bool, error) {
	return false, nil
}
