package models

import (
	"gorm.io/datatypes"

	"github.com/kindredhq/kindred/internal/shared/constants"
)

type ReflectionModel struct {
	ID        string         `gorm:"primaryKey;size:32"`
	UserToken string         `gorm:"size:64;not null;index"`
	Content   string         `gorm:"type:text;not null"`
	Reactions datatypes.JSON `gorm:"type:json"`
	Version   int            `gorm:"not null;default:1"`
	CreatedAt int64          `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt int64          `gorm:"autoUpdateTime:milli;not null"`
}

func (ReflectionModel) TableName() string {
	return constants.TableReflections
}
