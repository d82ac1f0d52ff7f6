package dto

import (
	"time"

	"levelhub/internal/http-api/models"
)

// CreateCommentDTO for creating a comment on a level
type CreateCommentDTO struct {
	LevelID int64  `json:"level_id" binding:"required"`
	Content string `json:"content" binding:"required,min=1,max=5000"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
}

// UpdateCommentDTO for updating a comment
type UpdateCommentDTO struct {
	CommentID int64  `json:"comment_id" binding:"required"`
	Content   string `json:"content" binding:"required,min=1,max=5000"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
}

// DeleteCommentDTO used for DELETE /delete-comment
type DeleteCommentDTO struct {
	CommentID int64 `json:"comment_id" binding:"required"`
}

// CommentResponse for returning comment information
type CommentResponse struct {
	ID         int64     `json:"id"`
	Username   string    `json:"username"`
	UserAvatar string    `json:"user_avatar"`
	Content    string    `json:"content"`
	Rating     int       `json:"rating"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// FromModelToCommentResponse converts a Comment model to CommentResponse DTO
func FromModelToCommentResponse(comment *models.Comment) *CommentResponse {
	return &CommentResponse{
		ID:         comment.ID,
		Username:   comment.User.Username,
		UserAvatar: comment.User.AvatarURL,
		Content:    comment.Content,
		Rating:     comment.Rating,
		CreatedAt:  comment.CreatedAt,
		UpdatedAt:  comment.UpdatedAt,
	}
}
