package models

import "github.com/kindredhq/kindred/internal/shared/constants"

type SessionModel struct {
	ID                string `gorm:"primaryKey;size:32"`
	DilemmaID         string `gorm:"uniqueIndex;size:32;not null"`
	SeekerToken       string `gorm:"size:64;not null;index"`
	HelperID          string `gorm:"size:32;not null;index"`
	HelperDisplayName string `gorm:"size:100;not null"`
	IsFavorited       bool   `gorm:"not null;default:false"`
	KudosGiven        bool   `gorm:"not null;default:false"`
	Summary           string `gorm:"type:text"`
	StartedAt         int64  `gorm:"not null;index"`
	EndedAt           *int64
	Version           int   `gorm:"not null;default:1"`
	CreatedAt         int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt         int64 `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (SessionModel) TableName() string {
	return constants.TableSessions
}
