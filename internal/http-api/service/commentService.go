package service

import (
	"context"
	"errors"

	"levelhub/internal/http-api/dto"
	"levelhub/internal/http-api/models"
	"levelhub/internal/http-api/repository"

	"gorm.io/gorm"
)

type CommentService interface {
	// Add returns (nil, nil) when the comment was silently dropped (owner
	// commenting on their own level, or level not published).
	Add(ctx context.Context, principalID string, req dto.CreateCommentDTO) (*dto.CommentResponse, error)
	Update(ctx context.Context, principalID string, req dto.UpdateCommentDTO) (*dto.CommentResponse, error)
	Delete(ctx context.Context, principalID string, commentID int64) error
}

type commentService struct {
	commentRepo repository.CommentRepository
	levelRepo   repository.LevelRepository
}

func NewCommentService(commentRepo repository.CommentRepository, levelRepo repository.LevelRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		levelRepo:   levelRepo,
	}
}

// Add creates a comment on a published level and recomputes the level's
// rating in the same transaction. A level owner commenting on their own
// level is a silent no-op rather than an error; that asymmetry matches the
// shipped product behavior and is intentional.
func (s *commentService) Add(ctx context.Context, principalID string, req dto.CreateCommentDTO) (*dto.CommentResponse, error) {
	level, err := s.levelRepo.GetByID(ctx, req.LevelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !level.Published || level.UserID == principalID {
		return nil, nil
	}

	comment := &models.Comment{
		UserID:  principalID,
		LevelID: req.LevelID,
		Content: req.Content,
		Rating:  req.Rating,
	}
	if err := s.commentRepo.CreateWithRating(ctx, comment); err != nil {
		return nil, err
	}

	// Reload with user data
	comment, err = s.commentRepo.GetByID(ctx, comment.ID)
	if err != nil {
		return nil, err
	}

	return dto.FromModelToCommentResponse(comment), nil
}

// Update rewrites a comment's content and rating after the authorship
// check, recomputing the level rating in the same transaction.
func (s *commentService) Update(ctx context.Context, principalID string, req dto.UpdateCommentDTO) (*dto.CommentResponse, error) {
	comment, err := s.commentRepo.GetByID(ctx, req.CommentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if comment.UserID != principalID {
		return nil, ErrForbidden
	}

	comment.Content = req.Content
	comment.Rating = req.Rating
	if err := s.commentRepo.UpdateWithRating(ctx, comment); err != nil {
		return nil, err
	}

	comment, err = s.commentRepo.GetByID(ctx, req.CommentID)
	if err != nil {
		return nil, err
	}

	return dto.FromModelToCommentResponse(comment), nil
}

// Delete removes a comment after the authorship check; the level rating is
// recomputed (possibly back to 0) in the same transaction.
func (s *commentService) Delete(ctx context.Context, principalID string, commentID int64) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if comment.UserID != principalID {
		return ErrForbidden
	}

	return s.commentRepo.DeleteWithRating(ctx, commentID, comment.LevelID)
}
