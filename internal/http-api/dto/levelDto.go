package dto

import (
	"time"

	"levelhub/internal/http-api/models"
)

// CreateLevelDTO used for POST /add-level. The owner is never part of the
// payload; it is always taken from the authenticated principal.
type CreateLevelDTO struct {
	Name        string `json:"name" binding:"required,min=1,max=200"`
	Summary     string `json:"summary" binding:"max=500"`
	Description string `json:"description" binding:"max=65535"`
	Difficulty  string `json:"difficulty" binding:"required,oneof=easy medium hard"`
	Published   bool   `json:"published"`
}

// UpdateLevelDTO used for PATCH /update-level (partial updates allowed)
type UpdateLevelDTO struct {
	LevelID     int64   `json:"level_id" binding:"required"`
	Name        *string `json:"name,omitempty" binding:"omitempty,min=1,max=200"`
	Summary     *string `json:"summary,omitempty" binding:"omitempty,max=500"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=65535"`
	Difficulty  *string `json:"difficulty,omitempty" binding:"omitempty,oneof=easy medium hard"`
	Published   *bool   `json:"published,omitempty"`
}

func (d CreateLevelDTO) ToModel(ownerID string) models.Level {
	return models.Level{
		UserID:      ownerID,
		Name:        d.Name,
		Summary:     d.Summary,
		Description: d.Description,
		Difficulty:  d.Difficulty,
		Published:   d.Published,
	}
}

func (d UpdateLevelDTO) ApplyTo(l *models.Level) {
	if d.Name != nil {
		l.Name = *d.Name
	}
	if d.Summary != nil {
		l.Summary = *d.Summary
	}
	if d.Description != nil {
		l.Description = *d.Description
	}
	if d.Difficulty != nil {
		l.Difficulty = *d.Difficulty
	}
	if d.Published != nil {
		l.Published = *d.Published
	}
}

// DeleteLevelDTO used for DELETE /delete-level
type DeleteLevelDTO struct {
	LevelID int64 `json:"level_id" binding:"required"`
}

// LevelResponse DTO for single-level responses
type LevelResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Summary     string    `json:"summary"`
	Description string    `json:"description"`
	Difficulty  string    `json:"difficulty"`
	Rating      float64   `json:"rating"`
	Published   bool      `json:"published"`
	OwnerID     string    `json:"owner_id"`
	OwnerName   string    `json:"owner_name,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromModelToLevelResponse(l *models.Level) LevelResponse {
	return LevelResponse{
		ID:          l.ID,
		Name:        l.Name,
		Summary:     l.Summary,
		Description: l.Description,
		Difficulty:  l.Difficulty,
		Rating:      l.Rating,
		Published:   l.Published,
		OwnerID:     l.UserID,
		OwnerName:   l.User.Username,
		CreatedAt:   l.CreatedAt,
	}
}

// LevelDetailResponse is the GET /level/:id shape: the level plus its
// comment thread.
type LevelDetailResponse struct {
	Level    LevelResponse     `json:"level"`
	Comments []CommentResponse `json:"comments"`
}

// FeedItem is one row of the home feed: the level joined with its owner.
type FeedItem struct {
	LevelID     int64   `json:"level_id"`
	Name        string  `json:"name"`
	Rating      float64 `json:"rating"`
	Summary     string  `json:"summary"`
	Description string  `json:"description"`
	Difficulty  string  `json:"difficulty"`
	OwnerID     string  `json:"owner_id"`
	OwnerName   string  `json:"owner_name"`
	OwnerAvatar string  `json:"owner_avatar"`
}

// FeedResponse for returning the paginated home feed
type FeedResponse struct {
	Data       []FeedItem `json:"data"`
	Page       int        `json:"page"`
	PageSize   int        `json:"page_size"`
	Total      int        `json:"total"`
	TotalPages int        `json:"total_pages"`
}

// NewFeedResponse creates a paginated feed response
func NewFeedResponse(data []FeedItem, total, page, pageSize int) *FeedResponse {
	totalPages := total / pageSize
	if total%pageSize != 0 {
		totalPages++
	}

	return &FeedResponse{
		Data:       data,
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}
