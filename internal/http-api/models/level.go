package models

import "time"

// Allowed difficulty values. Enforced both at the DTO boundary and by a
// check constraint on the column.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

type Level struct {
	ID          int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID      string `json:"user_id" gorm:"not null;index"`
	Name        string `json:"name" gorm:"not null"`
	Summary     string `json:"summary"`
	Description string `json:"description" gorm:"type:text"` // serialized attack list + metadata
	Difficulty  string `json:"difficulty" gorm:"not null;check:difficulty IN ('easy','medium','hard')"`
	// Rating is derived: the mean of this level's comment ratings, 0 when
	// there are none. Recomputed in the same transaction as every comment
	// mutation, never written directly by handlers.
	Rating    float64   `json:"rating" gorm:"not null;default:0;type:decimal(3,2)"`
	Published bool      `json:"published" gorm:"not null;default:false;index"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime;index"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	User     User      `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Comments []Comment `json:"comments,omitempty" gorm:"foreignKey:LevelID;constraint:OnDelete:CASCADE;"`
}

func (Level) TableName() string {
	return "levels"
}

// ValidDifficulty reports whether d is a member of the closed difficulty set.
func ValidDifficulty(d string) bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}
