package service

import (
	"context"
	"errors"

	"levelhub/internal/http-api/dto"
	"levelhub/internal/http-api/repository"
	"levelhub/internal/storage"

	"gorm.io/gorm"
)

type UploadService interface {
	UploadURL(ctx context.Context, principalID, contentType string, contentLength int64) (*dto.UploadPathResponse, error)
	Complete(ctx context.Context, principalID, key string) (*dto.UploadCompletedResponse, error)
}

type uploadService struct {
	avatars  storage.AvatarStorage
	userRepo repository.UserRepository
}

func NewUploadService(avatars storage.AvatarStorage, userRepo repository.UserRepository) UploadService {
	return &uploadService{
		avatars:  avatars,
		userRepo: userRepo,
	}
}

// UploadURL hands out a presigned PUT URL for the caller's next avatar.
// Disallowed file types and sizes fail with ErrForbidden; nothing is
// persisted until the upload is confirmed.
func (s *uploadService) UploadURL(ctx context.Context, principalID, contentType string, contentLength int64) (*dto.UploadPathResponse, error) {
	info, err := s.avatars.UploadURL(ctx, principalID, contentType, contentLength)
	if err != nil {
		if errors.Is(err, storage.ErrDisallowedType) || errors.Is(err, storage.ErrInvalidSize) {
			return nil, ErrForbidden
		}
		return nil, err
	}

	return &dto.UploadPathResponse{
		UploadURL: info.UploadURL,
		Key:       info.Key,
		ExpiresIn: int64(info.Expires.Seconds()),
		Headers:   info.RequiredHeaders,
	}, nil
}

// Complete confirms the upload against object storage and persists the
// public URL on the caller's profile.
func (s *uploadService) Complete(ctx context.Context, principalID, key string) (*dto.UploadCompletedResponse, error) {
	publicURL, err := s.avatars.ConfirmUpload(ctx, principalID, key)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotUploaded):
			return nil, ErrNotFound
		case errors.Is(err, storage.ErrDisallowedType), errors.Is(err, storage.ErrInvalidSize):
			return nil, ErrForbidden
		}
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, principalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	user.AvatarURL = publicURL
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return &dto.UploadCompletedResponse{AvatarURL: publicURL}, nil
}
