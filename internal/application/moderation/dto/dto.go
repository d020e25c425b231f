package dto

import (
	"time"

	"github.com/kindredhq/kindred/internal/domain/moderation"
)

type ActionDTO struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	Action           string    `json:"action"`
	Reason           string    `json:"reason,omitempty"`
	RelatedContentID string    `json:"related_content_id,omitempty"`
	ModeratorID      string    `json:"moderator_id"`
	Timestamp        time.Time `json:"timestamp"`
}

type UserStatusDTO struct {
	UserID     string     `json:"user_id"`
	Warnings   int        `json:"warnings"`
	IsBanned   bool       `json:"is_banned"`
	BanReason  string     `json:"ban_reason,omitempty"`
	BanExpires *time.Time `json:"ban_expires,omitempty"`
}

func ToActionDTO(a *moderation.Action) *ActionDTO {
	if a == nil {
		return nil
	}
	return &ActionDTO{
		ID:               a.ID,
		UserID:           a.UserID,
		Action:           a.Action,
		Reason:           a.Reason,
		RelatedContentID: a.RelatedContentID,
		ModeratorID:      a.ModeratorID,
		Timestamp:        a.Timestamp,
	}
}

func ToActionDTOs(as []*moderation.Action) []*ActionDTO {
	out := make([]*ActionDTO, 0, len(as))
	for _, a := range as {
		out = append(out, ToActionDTO(a))
	}
	return out
}

func ToUserStatusDTO(s moderation.UserStatus) *UserStatusDTO {
	return &UserStatusDTO{
		UserID:     s.UserID,
		Warnings:   s.Warnings,
		IsBanned:   s.IsBanned,
		BanReason:  s.BanReason,
		BanExpires: s.BanExpires,
	}
}
