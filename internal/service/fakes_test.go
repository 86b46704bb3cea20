// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/ml-community/internal/crypto"
	"github.com/MKhiriev/ml-community/internal/store"
	"github.com/MKhiriev/ml-community/models"
)

const testSignKey = "0123456789abcdef0123456789abcdef"

// cheapHasherParams keep Argon2id fast enough for unit tests.
var cheapHasherParams = crypto.Params{Time: 1, Memory: 8, Threads: 1, KeyLen: 16}

// memoryUserRepository is an in-memory store.UserRepository with the same
// uniqueness and not-found semantics as the PostgreSQL one.
type memoryUserRepository struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]models.User

	// now stamps CreatedAt and UpdatedAt.
	now func() time.Time
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{users: make(map[int64]models.User), now: time.Now}
}

func (r *memoryUserRepository) CreateUser(_ context.Context, user models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == user.Username || u.Email == user.Email {
			return models.User{}, store.ErrUserAlreadyExists
		}
	}

	r.nextID++
	user.UserID = r.nextID
	user.CreatedAt = r.now()
	user.UpdatedAt = user.CreatedAt
	r.users[user.UserID] = user
	return user, nil
}

func (r *memoryUserRepository) FindUserByUsername(_ context.Context, username string) (models.User, error) {
	return r.find(func(u models.User) bool { return u.Username == username })
}

func (r *memoryUserRepository) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	return r.find(func(u models.User) bool { return u.Email == email })
}

func (r *memoryUserRepository) FindUserByID(_ context.Context, userID int64) (models.User, error) {
	return r.find(func(u models.User) bool { return u.UserID == userID })
}

func (r *memoryUserRepository) find(match func(models.User) bool) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if match(u) {
			return u, nil
		}
	}
	return models.User{}, store.ErrUserNotFound
}

func (r *memoryUserRepository) UpdateUserFields(_ context.Context, userID int64, fields models.UserFields) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if fields.IsEmpty() {
		return models.User{}, store.ErrNothingToUpdate
	}
	u, ok := r.users[userID]
	if !ok {
		return models.User{}, store.ErrUserNotFound
	}

	if fields.Username != nil {
		u.Username = *fields.Username
	}
	if fields.Email != nil {
		u.Email = *fields.Email
	}
	if fields.PasswordHash != nil {
		u.PasswordHash = *fields.PasswordHash
	}
	if fields.Role != nil {
		u.Role = *fields.Role
	}
	if fields.IsActive != nil {
		u.IsActive = *fields.IsActive
	}
	if fields.IsVerified != nil {
		u.IsVerified = *fields.IsVerified
	}
	if fields.IGN != nil {
		u.IGN = *fields.IGN
	}
	if fields.CurrentRank != nil {
		u.CurrentRank = *fields.CurrentRank
	}
	u.UpdatedAt = r.now()
	r.users[userID] = u
	return u, nil
}

func (r *memoryUserRepository) DeleteUser(_ context.Context, userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[userID]; !ok {
		return store.ErrUserNotFound
	}
	delete(r.users, userID)
	return nil
}

// testClock is a settable clock for token expiry tests.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
