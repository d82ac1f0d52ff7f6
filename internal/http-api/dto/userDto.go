package dto

import (
	"time"

	"levelhub/internal/http-api/models"
)

// UpdateUserDTO used for PATCH /update-user. Only the caller's own profile
// can be updated, so no user id is accepted in the payload.
type UpdateUserDTO struct {
	Username  *string `json:"username,omitempty" binding:"omitempty,min=1,max=50"`
	AvatarURL *string `json:"avatar_url,omitempty" binding:"omitempty,url,max=500"`
}

func (d UpdateUserDTO) ApplyTo(u *models.User) {
	if d.Username != nil {
		u.Username = *d.Username
	}
	if d.AvatarURL != nil {
		u.AvatarURL = *d.AvatarURL
	}
}

// UserResponse for returning profile information
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	AvatarURL string    `json:"avatar_url"`
	CreatedAt time.Time `json:"created_at"`
}

func FromModelToUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		AvatarURL: u.AvatarURL,
		CreatedAt: u.CreatedAt,
	}
}

// ProfileResponse is the GET /user/:id shape: the profile plus the user's
// levels (published only, unless the requester is the profile owner).
type ProfileResponse struct {
	User   UserResponse    `json:"user"`
	Levels []LevelResponse `json:"levels"`
}
