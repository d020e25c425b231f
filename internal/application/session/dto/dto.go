package dto

import (
	"time"

	"github.com/kindredhq/kindred/internal/domain/session"
)

type SessionDTO struct {
	ID                string     `json:"id"`
	DilemmaID         string     `json:"dilemma_id"`
	SeekerToken       string     `json:"seeker_token"`
	HelperID          string     `json:"helper_id"`
	HelperDisplayName string     `json:"helper_display_name"`
	IsFavorited       bool       `json:"is_favorited"`
	KudosGiven        bool       `json:"kudos_given"`
	Summary           string     `json:"summary,omitempty"`
	StartedAt         time.Time  `json:"started_at"`
	EndedAt           *time.Time `json:"ended_at,omitempty"`
}

func ToSessionDTO(s *session.Session) *SessionDTO {
	if s == nil {
		return nil
	}

	return &SessionDTO{
		ID:                s.ID(),
		DilemmaID:         s.DilemmaID(),
		SeekerToken:       s.SeekerToken(),
		HelperID:          s.HelperID(),
		HelperDisplayName: s.HelperDisplayName(),
		IsFavorited:       s.IsFavorited(),
		KudosGiven:        s.KudosGiven(),
		Summary:           s.Summary(),
		StartedAt:         s.StartedAt(),
		EndedAt:           s.EndedAt(),
	}
}

func ToSessionDTOs(ss []*session.Session) []*SessionDTO {
	out := make([]*SessionDTO, 0, len(ss))
	for _, s := range ss {
		out = append(out, ToSessionDTO(s))
	}
	return out
}
