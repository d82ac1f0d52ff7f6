package models

import "time"

// Rating bounds for a single comment. A level's stored rating is the mean
// over these, so it lives in [0, RatingMax] with 0 meaning "no comments".
const (
	RatingMin = 1
	RatingMax = 5
)

type Comment struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    string    `json:"user_id" gorm:"not null;index"`
	LevelID   int64     `json:"level_id" gorm:"not null;index"`
	Content   string    `json:"content" gorm:"not null;type:text"`
	Rating    int       `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	User  User  `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Level Level `json:"level,omitempty" gorm:"foreignKey:LevelID;constraint:OnDelete:CASCADE;"`
}

func (Comment) TableName() string {
	return "comments"
}
