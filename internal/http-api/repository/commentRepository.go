package repository

import (
	"context"
	"fmt"

	"levelhub/internal/http-api/models"

	"gorm.io/gorm"
)

// CommentRepository defines the interface for comment data operations.
// Every mutation recomputes the owning level's rating inside the same
// transaction, so the derived rating can never drift from the comments.
type CommentRepository interface {
	CreateWithRating(ctx context.Context, comment *models.Comment) error
	UpdateWithRating(ctx context.Context, comment *models.Comment) error
	DeleteWithRating(ctx context.Context, commentID, levelID int64) error
	GetByID(ctx context.Context, commentID int64) (*models.Comment, error)
	ListByLevel(ctx context.Context, levelID int64) ([]models.Comment, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// CreateWithRating inserts the comment and refreshes the level rating
// atomically; both writes commit or both roll back.
func (r *commentRepository) CreateWithRating(ctx context.Context, comment *models.Comment) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(comment).Error; err != nil {
			return err
		}
		return recomputeLevelRating(tx, comment.LevelID)
	})
	if err != nil {
		return fmt.Errorf("create comment: %w", err)
	}
	return nil
}

// UpdateWithRating saves the comment and refreshes the level rating in one
// transaction.
func (r *commentRepository) UpdateWithRating(ctx context.Context, comment *models.Comment) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(comment).Error; err != nil {
			return err
		}
		return recomputeLevelRating(tx, comment.LevelID)
	})
	if err != nil {
		return fmt.Errorf("update comment: %w", err)
	}
	return nil
}

// DeleteWithRating removes the comment and refreshes the level rating in one
// transaction. Deleting the last comment drops the rating back to 0.
func (r *commentRepository) DeleteWithRating(ctx context.Context, commentID, levelID int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.Comment{}, commentID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return recomputeLevelRating(tx, levelID)
	})
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	return nil
}

func (r *commentRepository) GetByID(ctx context.Context, commentID int64) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.WithContext(ctx).
		Preload("User").
		First(&comment, commentID).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListByLevel retrieves all comments for a level, newest first.
func (r *commentRepository) ListByLevel(ctx context.Context, levelID int64) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.WithContext(ctx).
		Where("level_id = ?", levelID).
		Preload("User").
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

// recomputeLevelRating sets the level's rating to the mean of its remaining
// comment ratings, 0 when none remain. Runs inside the caller's transaction.
func recomputeLevelRating(tx *gorm.DB, levelID int64) error {
	return tx.Model(&models.Level{}).
		Where("id = ?", levelID).
		Update("rating", gorm.Expr(
			"(SELECT COALESCE(AVG(rating), 0) FROM comments WHERE level_id = ?)", levelID,
		)).Error
}
