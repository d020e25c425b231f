package mappers

import (
	"time"

	"github.com/kindredhq/kindred/internal/domain/moderation"
	"github.com/kindredhq/kindred/internal/infrastructure/persistence/models"
)

// ModerationMapper handles the conversion between moderation domain values and persistence models.
type ModerationMapper interface {
	ActionToModel(a *moderation.Action) *models.ModerationActionModel
	ActionToDomain(model *models.ModerationActionModel) *moderation.Action

	UserStatusToModel(s moderation.UserStatus) *models.UserStatusModel
	UserStatusToDomain(model *models.UserStatusModel) moderation.UserStatus
}

// ModerationMapperImpl is the concrete implementation of ModerationMapper.
type ModerationMapperImpl struct{}

// NewModerationMapper creates a new ModerationMapper.
func NewModerationMapper() ModerationMapper {
	return &ModerationMapperImpl{}
}

func (m *ModerationMapperImpl) ActionToModel(a *moderation.Action) *models.ModerationActionModel {
	return &models.ModerationActionModel{
		ID:               a.ID,
		UserID:           a.UserID,
		Action:           a.Action,
		Reason:           a.Reason,
		RelatedContentID: a.RelatedContentID,
		ModeratorID:      a.ModeratorID,
		Timestamp:        a.Timestamp.UnixMilli(),
	}
}

func (m *ModerationMapperImpl) ActionToDomain(model *models.ModerationActionModel) *moderation.Action {
	return &moderation.Action{
		ID:               model.ID,
		UserID:           model.UserID,
		Action:           model.Action,
		Reason:           model.Reason,
		RelatedContentID: model.RelatedContentID,
		ModeratorID:      model.ModeratorID,
		Timestamp:        time.UnixMilli(model.Timestamp),
	}
}

func (m *ModerationMapperImpl) UserStatusToModel(s moderation.UserStatus) *models.UserStatusModel {
	model := &models.UserStatusModel{
		UserID:    s.UserID,
		Warnings:  s.Warnings,
		IsBanned:  s.IsBanned,
		BanReason: s.BanReason,
	}

	if s.BanExpires != nil {
		expires := s.BanExpires.UnixMilli()
		model.BanExpires = &expires
	}

	return model
}

func (m *ModerationMapperImpl) UserStatusToDomain(model *models.UserStatusModel) moderation.UserStatus {
	status := moderation.UserStatus{
		UserID:    model.UserID,
		Warnings:  model.Warnings,
		IsBanned:  model.IsBanned,
		BanReason: model.BanReason,
	}

	if model.BanExpires != nil {
		expires := time.UnixMilli(*model.BanExpires)
		status.BanExpires = &expires
	}

	return status
}
