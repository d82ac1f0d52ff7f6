package service

import (
	"context"
	"errors"

	"levelhub/internal/http-api/dto"
	"levelhub/internal/http-api/models"
	"levelhub/internal/http-api/repository"

	"gorm.io/gorm"
)

type UserService interface {
	EstablishSession(ctx context.Context, id, username, email, avatarURL string) (*dto.UserResponse, error)
	GetProfile(ctx context.Context, userID, principalID string) (*dto.ProfileResponse, error)
	UpdateProfile(ctx context.Context, principalID string, req dto.UpdateUserDTO) (*dto.UserResponse, error)
}

type userService struct {
	userRepo  repository.UserRepository
	levelRepo repository.LevelRepository
}

func NewUserService(userRepo repository.UserRepository, levelRepo repository.LevelRepository) UserService {
	return &userService{
		userRepo:  userRepo,
		levelRepo: levelRepo,
	}
}

// EstablishSession upserts the profile row for an identity-provider
// principal. First login creates the row from the provider claims; the
// display name must be unique across users. Later logins just return the
// stored profile, which may have diverged from the provider claims.
func (s *userService) EstablishSession(ctx context.Context, id, username, email, avatarURL string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err == nil {
		resp := dto.FromModelToUserResponse(user)
		return &resp, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user = &models.User{
		ID:        id,
		Username:  username,
		Email:     email,
		AvatarURL: avatarURL,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrNameInUse
		}
		return nil, err
	}

	resp := dto.FromModelToUserResponse(user)
	return &resp, nil
}

// GetProfile returns a user's profile and their levels. Unpublished levels
// appear only when the requester is the profile owner.
func (s *userService) GetProfile(ctx context.Context, userID, principalID string) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	levels, err := s.levelRepo.ListByUser(ctx, userID, userID == principalID)
	if err != nil {
		return nil, err
	}

	levelResponses := make([]dto.LevelResponse, 0, len(levels))
	for _, level := range levels {
		levelResponses = append(levelResponses, dto.FromModelToLevelResponse(&level))
	}

	return &dto.ProfileResponse{
		User:   dto.FromModelToUserResponse(user),
		Levels: levelResponses,
	}, nil
}

// UpdateProfile changes the caller's own display name and avatar URL.
func (s *userService) UpdateProfile(ctx context.Context, principalID string, req dto.UpdateUserDTO) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, principalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	req.ApplyTo(user)
	if err := s.userRepo.Update(ctx, user); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrNameInUse
		}
		return nil, err
	}

	resp := dto.FromModelToUserResponse(user)
	return &resp, nil
}
