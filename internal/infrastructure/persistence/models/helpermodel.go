package models

import (
	"gorm.io/datatypes"

	"github.com/kindredhq/kindred/internal/shared/constants"
)

type HelperModel struct {
	ID                 string         `gorm:"primaryKey;size:32"`
	ExternalIdentityID string         `gorm:"uniqueIndex;size:64;not null"`
	DisplayName        string         `gorm:"size:100;not null"`
	Bio                string         `gorm:"type:text"`
	Role               string         `gorm:"size:20;not null;index"`
	Reputation         float64        `gorm:"not null;default:0"`
	IsAvailable        bool           `gorm:"not null;default:false;index"`
	Expertise          datatypes.JSON `gorm:"type:json"`
	KudosCount         int            `gorm:"not null;default:0"`
	Achievements       datatypes.JSON `gorm:"type:json"`
	XP                 int            `gorm:"column:xp;not null;default:0"`
	Level              int            `gorm:"not null;default:1"`
	NextLevelXP        int            `gorm:"column:next_level_xp;not null;default:100"`
	ApplicationStatus  string         `gorm:"size:20;not null;default:'none'"`
	TrainingCompleted  bool           `gorm:"not null;default:false"`
	QuizScore          *int
	Version            int   `gorm:"not null;default:1"`
	CreatedAt          int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt          int64 `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (HelperModel) TableName() string {
	return constants.TableHelpers
}
