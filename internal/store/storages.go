// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/ml-community/internal/config"
	"github.com/MKhiriev/ml-community/internal/logger"
	"github.com/redis/go-redis/v9"
)

// Storages bundles every persistence backend used by the services.
type Storages struct {
	UserRepository    UserRepository
	GuideRepository   GuideRepository
	RevocationStorage RevocationStorage

	db    *DB
	redis *redis.Client
}

// NewStorages connects to PostgreSQL, applies migrations and, when a Redis
// address is configured, connects the revocation list.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	storages := &Storages{
		UserRepository:    NewUserRepository(db, log),
		GuideRepository:   NewGuideRepository(db, log),
		RevocationStorage: NewNoopRevocationStorage(),
		db:                db,
	}

	if cfg.Redis.Addr == "" {
		log.Warn().Msg("redis address is not set: logout will not revoke tokens")
		return storages, nil
	}

	client, err := NewRedisClient(ctx, cfg.Redis, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	storages.redis = client
	storages.RevocationStorage = NewRevocationStorage(client, cfg.Redis.KeyPrefix, log)

	return storages, nil
}

// Close releases the database pool and the Redis client.
func (s *Storages) Close() error {
	var errs []error
	if s.db != nil {
		errs = append(errs, s.db.Close())
	}
	if s.redis != nil {
		errs = append(errs, s.redis.Close())
	}
	return errors.Join(errs...)
}
