package service

import (
	"context"
	"errors"

	"levelhub/internal/http-api/dto"
	"levelhub/internal/http-api/repository"

	"gorm.io/gorm"
)

type LevelService interface {
	Get(ctx context.Context, levelID int64, principalID string) (*dto.LevelDetailResponse, error)
	Create(ctx context.Context, principalID string, req dto.CreateLevelDTO) (*dto.LevelResponse, error)
	Update(ctx context.Context, principalID string, req dto.UpdateLevelDTO) (*dto.LevelResponse, error)
	Delete(ctx context.Context, principalID string, levelID int64) error
}

type levelService struct {
	levelRepo   repository.LevelRepository
	commentRepo repository.CommentRepository
}

func NewLevelService(levelRepo repository.LevelRepository, commentRepo repository.CommentRepository) LevelService {
	return &levelService{
		levelRepo:   levelRepo,
		commentRepo: commentRepo,
	}
}

// Get returns a level with its comment thread. An unpublished level is
// visible only to its owner; everyone else gets ErrNotFound rather than
// ErrForbidden so its existence does not leak.
func (s *levelService) Get(ctx context.Context, levelID int64, principalID string) (*dto.LevelDetailResponse, error) {
	level, err := s.levelRepo.GetByID(ctx, levelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !level.Published && level.UserID != principalID {
		return nil, ErrNotFound
	}

	comments, err := s.commentRepo.ListByLevel(ctx, levelID)
	if err != nil {
		return nil, err
	}

	commentResponses := make([]dto.CommentResponse, 0, len(comments))
	for _, comment := range comments {
		commentResponses = append(commentResponses, *dto.FromModelToCommentResponse(&comment))
	}

	return &dto.LevelDetailResponse{
		Level:    dto.FromModelToLevelResponse(level),
		Comments: commentResponses,
	}, nil
}

// Create stores a new level. The owner is always the authenticated
// principal, never anything from the payload.
func (s *levelService) Create(ctx context.Context, principalID string, req dto.CreateLevelDTO) (*dto.LevelResponse, error) {
	level := req.ToModel(principalID)
	if err := s.levelRepo.Create(ctx, &level); err != nil {
		return nil, err
	}

	resp := dto.FromModelToLevelResponse(&level)
	return &resp, nil
}

// Update applies a partial update after the ownership check. Nothing is
// written when the caller does not own the level.
func (s *levelService) Update(ctx context.Context, principalID string, req dto.UpdateLevelDTO) (*dto.LevelResponse, error) {
	level, err := s.levelRepo.GetByID(ctx, req.LevelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if level.UserID != principalID {
		return nil, ErrForbidden
	}

	req.ApplyTo(level)
	if err := s.levelRepo.Update(ctx, level); err != nil {
		return nil, err
	}

	resp := dto.FromModelToLevelResponse(level)
	return &resp, nil
}

// Delete removes a level (and its comments) after the ownership check.
func (s *levelService) Delete(ctx context.Context, principalID string, levelID int64) error {
	level, err := s.levelRepo.GetByID(ctx, levelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if level.UserID != principalID {
		return ErrForbidden
	}

	return s.levelRepo.Delete(ctx, levelID)
}
