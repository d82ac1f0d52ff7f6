package service_test

import (
	"context"
	"testing"
	"time"

	"levelhub/internal/http-api/models"
	"levelhub/internal/http-api/service"
	"levelhub/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUploadService_UploadURL(t *testing.T) {
	ctx := context.Background()

	t.Run("issues presigned url", func(t *testing.T) {
		avatars := new(MockAvatarStorage)
		userRepo := new(MockUserRepo)
		svc := service.NewUploadService(avatars, userRepo)

		avatars.On("UploadURL", mock.Anything, "me", "image/png", int64(1024)).
			Return(&storage.UploadInfo{
				UploadURL:       "https://minio.example/presigned",
				Key:             "avatars/me/abc.png",
				Expires:         15 * time.Minute,
				RequiredHeaders: map[string]string{"Content-Type": "image/png"},
			}, nil).Once()

		resp, err := svc.UploadURL(ctx, "me", "image/png", 1024)
		assert.NoError(t, err)
		assert.Equal(t, "avatars/me/abc.png", resp.Key)
		assert.Equal(t, int64(900), resp.ExpiresIn)
	})

	t.Run("disallowed type maps to forbidden", func(t *testing.T) {
		avatars := new(MockAvatarStorage)
		userRepo := new(MockUserRepo)
		svc := service.NewUploadService(avatars, userRepo)

		avatars.On("UploadURL", mock.Anything, "me", "application/zip", int64(1024)).
			Return(nil, storage.ErrDisallowedType).Once()

		_, err := svc.UploadURL(ctx, "me", "application/zip", 1024)
		assert.ErrorIs(t, err, service.ErrForbidden)
	})
}

func TestUploadService_Complete(t *testing.T) {
	ctx := context.Background()

	t.Run("persists avatar url after confirmation", func(t *testing.T) {
		avatars := new(MockAvatarStorage)
		userRepo := new(MockUserRepo)
		svc := service.NewUploadService(avatars, userRepo)

		avatars.On("ConfirmUpload", mock.Anything, "me", "avatars/me/abc.png").
			Return("https://cdn.example/avatars/me/abc.png", nil).Once()
		userRepo.On("FindByID", mock.Anything, "me").Return(&models.User{ID: "me"}, nil).Once()
		userRepo.On("Update", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
			return u.AvatarURL == "https://cdn.example/avatars/me/abc.png"
		})).Return(nil).Once()

		resp, err := svc.Complete(ctx, "me", "avatars/me/abc.png")
		assert.NoError(t, err)
		assert.Equal(t, "https://cdn.example/avatars/me/abc.png", resp.AvatarURL)
		userRepo.AssertExpectations(t)
	})

	t.Run("missing object maps to not found", func(t *testing.T) {
		avatars := new(MockAvatarStorage)
		userRepo := new(MockUserRepo)
		svc := service.NewUploadService(avatars, userRepo)

		avatars.On("ConfirmUpload", mock.Anything, "me", "avatars/me/ghost.png").
			Return("", storage.ErrNotUploaded).Once()

		_, err := svc.Complete(ctx, "me", "avatars/me/ghost.png")
		assert.ErrorIs(t, err, service.ErrNotFound)
		userRepo.AssertNotCalled(t, "Update")
	})

	t.Run("disallowed stored type maps to forbidden", func(t *testing.T) {
		avatars := new(MockAvatarStorage)
		userRepo := new(MockUserRepo)
		svc := service.NewUploadService(avatars, userRepo)

		avatars.On("ConfirmUpload", mock.Anything, "me", "avatars/other/abc.png").
			Return("", storage.ErrDisallowedType).Once()

		_, err := svc.Complete(ctx, "me", "avatars/other/abc.png")
		assert.ErrorIs(t, err, service.ErrForbidden)
	})
}
