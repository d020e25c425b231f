package models

import "github.com/kindredhq/kindred/internal/shared/constants"

type DilemmaModel struct {
	ID                    string  `gorm:"primaryKey;size:32"`
	AuthorToken           string  `gorm:"size:64;not null;index"`
	Category              string  `gorm:"size:50;not null;index"`
	Content               string  `gorm:"type:text;not null"`
	Status                string  `gorm:"size:30;not null;index"`
	SupportCount          int     `gorm:"not null;default:0"`
	IsReported            bool    `gorm:"not null;default:false;index"`
	ReportReason          string  `gorm:"size:500"`
	AssignedHelperID      *string `gorm:"size:32;index"`
	RequestedHelperID     *string `gorm:"size:32;index"`
	ResolvedBySeeker      bool    `gorm:"not null;default:false"`
	Summary               string  `gorm:"type:text"`
	ModerationAction      *string `gorm:"size:20"`
	ModerationModeratorID *string `gorm:"size:32"`
	ModerationAt          *int64
	Version               int   `gorm:"not null;default:1"`
	CreatedAt             int64 `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt             int64 `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (DilemmaModel) TableName() string {
	return constants.TableDilemmas
}

// DilemmaSupportModel records one viewer's support mark on one dilemma.
// The pair is unique so toggling is a row insert or delete.
type DilemmaSupportModel struct {
	ID          uint   `gorm:"primaryKey"`
	DilemmaID   string `gorm:"size:32;not null;uniqueIndex:idx_dilemma_viewer"`
	ViewerToken string `gorm:"size:64;not null;uniqueIndex:idx_dilemma_viewer;index"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
}

func (DilemmaSupportModel) TableName() string {
	return constants.TableDilemmaSupports
}
