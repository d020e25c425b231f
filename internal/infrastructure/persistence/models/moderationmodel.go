package models

import "github.com/kindredhq/kindred/internal/shared/constants"

type ModerationActionModel struct {
	ID               string `gorm:"primaryKey;size:32"`
	UserID           string `gorm:"size:64;not null;index"`
	Action           string `gorm:"size:50;not null"`
	Reason           string `gorm:"size:500"`
	RelatedContentID string `gorm:"size:32;index"`
	ModeratorID      string `gorm:"size:32;not null;index"`
	Timestamp        int64  `gorm:"not null;index"`
	CreatedAt        int64  `gorm:"autoCreateTime:milli;not null"`
}

func (ModerationActionModel) TableName() string {
	return constants.TableModerationActions
}

type UserStatusModel struct {
	UserID     string `gorm:"primaryKey;size:64"`
	Warnings   int    `gorm:"not null;default:0"`
	IsBanned   bool   `gorm:"not null;default:false;index"`
	BanReason  string `gorm:"size:500"`
	BanExpires *int64
	CreatedAt  int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt  int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (UserStatusModel) TableName() string {
	return constants.TableUserStatuses
}

// UserBlockModel records one user hiding another's posts. The pair is
// unique so repeated blocks collapse to a single row.
type UserBlockModel struct {
	ID        uint   `gorm:"primaryKey"`
	BlockerID string `gorm:"size:64;not null;uniqueIndex:idx_blocker_blocked"`
	BlockedID string `gorm:"size:64;not null;uniqueIndex:idx_blocker_blocked"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
}

func (UserBlockModel) TableName() string {
	return constants.TableUserBlocks
}
