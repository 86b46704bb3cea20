// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/ml-community/internal/access"
	"github.com/MKhiriev/ml-community/internal/logger"
	"github.com/MKhiriev/ml-community/internal/mock"
	"github.com/MKhiriev/ml-community/internal/store"
	"github.com/MKhiriev/ml-community/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestGuideSvc(t *testing.T) (GuideService, *mock.MockGuideRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockGuideRepository(ctrl)
	return NewGuideService(repo, logger.Nop()), repo
}

func guideBy(author models.User) models.Guide {
	return models.Guide{GuideID: 10, AuthorID: author.UserID, Title: "Miya jungle", Content: "..."}
}

func TestGuideService_CreateGuide(t *testing.T) {
	svc, repo := newTestGuideSvc(t)
	ctx := context.Background()

	repo.EXPECT().CreateGuide(ctx, models.Guide{AuthorID: plainUser.UserID, Title: "Miya jungle", Content: "farm first"}).
		Return(guideBy(plainUser), nil)

	got, err := svc.CreateGuide(ctx, plainUser, models.GuideRequest{Title: strPtr("  Miya jungle "), Content: strPtr("farm first")})
	require.NoError(t, err)
	assert.Equal(t, plainUser.UserID, got.AuthorID)

	_, err = svc.CreateGuide(ctx, plainUser, models.GuideRequest{Title: strPtr("no content")})
	assert.ErrorIs(t, err, ErrInvalidData)

	_, err = svc.CreateGuide(ctx, models.User{UserID: 9}, models.GuideRequest{Title: strPtr("t"), Content: strPtr("c")})
	assert.ErrorIs(t, err, access.ErrForbidden, "unknown role")
}

func TestGuideService_CreateGuide_AuthorGone(t *testing.T) {
	svc, repo := newTestGuideSvc(t)
	ctx := context.Background()

	repo.EXPECT().CreateGuide(ctx, gomock.Any()).Return(models.Guide{}, store.ErrAuthorNotFound)

	_, err := svc.CreateGuide(ctx, plainUser, models.GuideRequest{Title: strPtr("t"), Content: strPtr("c")})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGuideService_UpdateGuide_Ownership(t *testing.T) {
	ctx := context.Background()
	request := models.GuideRequest{Content: strPtr("updated")}

	tests := []struct {
		name    string
		actor   models.User
		allowed bool
	}{
		{name: "author", actor: plainUser, allowed: true},
		{name: "other user", actor: otherUser, allowed: false},
		{name: "content creator", actor: models.User{UserID: 5, Role: models.RoleContentCreator}, allowed: false},
		{name: "moderator", actor: moderator, allowed: true},
		{name: "admin", actor: admin, allowed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestGuideSvc(t)
			repo.EXPECT().FindGuideByID(ctx, int64(10)).Return(guideBy(plainUser), nil)
			if tt.allowed {
				repo.EXPECT().UpdateGuide(ctx, int64(10), models.GuideFields{Content: request.Content}).Return(guideBy(plainUser), nil)
			}

			_, err := svc.UpdateGuide(ctx, tt.actor, 10, request)
			if tt.allowed {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, access.ErrForbidden)
		})
	}
}

func TestGuideService_UpdateGuide_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		svc, repo := newTestGuideSvc(t)
		repo.EXPECT().FindGuideByID(ctx, int64(404)).Return(models.Guide{}, store.ErrGuideNotFound)

		_, err := svc.UpdateGuide(ctx, admin, 404, models.GuideRequest{Title: strPtr("t")})
		assert.ErrorIs(t, err, ErrGuideNotFound)
	})

	t.Run("empty update", func(t *testing.T) {
		svc, repo := newTestGuideSvc(t)
		repo.EXPECT().FindGuideByID(ctx, int64(10)).Return(guideBy(plainUser), nil)

		_, err := svc.UpdateGuide(ctx, plainUser, 10, models.GuideRequest{})
		assert.ErrorIs(t, err, ErrInvalidData)
	})
}

func TestGuideService_DeleteGuide(t *testing.T) {
	ctx := context.Background()

	t.Run("author deletes", func(t *testing.T) {
		svc, repo := newTestGuideSvc(t)
		repo.EXPECT().FindGuideByID(ctx, int64(10)).Return(guideBy(plainUser), nil)
		repo.EXPECT().DeleteGuide(ctx, int64(10)).Return(nil)

		assert.NoError(t, svc.DeleteGuide(ctx, plainUser, 10))
	})

	t.Run("stranger denied", func(t *testing.T) {
		svc, repo := newTestGuideSvc(t)
		repo.EXPECT().FindGuideByID(ctx, int64(10)).Return(guideBy(plainUser), nil)

		err := svc.DeleteGuide(ctx, otherUser, 10)
		assert.ErrorIs(t, err, access.ErrForbidden)
	})

	t.Run("moderator deletes", func(t *testing.T) {
		svc, repo := newTestGuideSvc(t)
		repo.EXPECT().FindGuideByID(ctx, int64(10)).Return(guideBy(plainUser), nil)
		repo.EXPECT().DeleteGuide(ctx, int64(10)).Return(nil)

		assert.NoError(t, svc.DeleteGuide(ctx, moderator, 10))
	})
}
