package dto

import (
	"time"

	"github.com/kindredhq/kindred/internal/domain/helper"
)

type HelperDTO struct {
	ID                 string    `json:"id"`
	ExternalIdentityID string    `json:"external_identity_id"`
	DisplayName        string    `json:"display_name"`
	Bio                string    `json:"bio,omitempty"`
	Role               string    `json:"role"`
	Reputation         float64   `json:"reputation"`
	IsAvailable        bool      `json:"is_available"`
	Expertise          []string  `json:"expertise"`
	KudosCount         int       `json:"kudos_count"`
	Achievements       []string  `json:"achievements"`
	XP                 int       `json:"xp"`
	Level              int       `json:"level"`
	NextLevelXP        int       `json:"next_level_xp"`
	ApplicationStatus  string    `json:"application_status"`
	TrainingCompleted  bool      `json:"training_completed"`
	QuizScore          *int      `json:"quiz_score,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

type AchievementDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

func ToHelperDTO(h *helper.Helper) *HelperDTO {
	if h == nil {
		return nil
	}

	expertise := make([]string, 0, len(h.Expertise()))
	for _, e := range h.Expertise() {
		expertise = append(expertise, e.String())
	}

	return &HelperDTO{
		ID:                 h.ID(),
		ExternalIdentityID: h.ExternalIdentityID(),
		DisplayName:        h.DisplayName(),
		Bio:                h.Bio(),
		Role:               h.Role().String(),
		Reputation:         h.Reputation(),
		IsAvailable:        h.IsAvailable(),
		Expertise:          expertise,
		KudosCount:         h.KudosCount(),
		Achievements:       h.Achievements(),
		XP:                 h.XP(),
		Level:              h.Level(),
		NextLevelXP:        h.NextLevelXP(),
		ApplicationStatus:  h.ApplicationStatus().String(),
		TrainingCompleted:  h.TrainingCompleted(),
		QuizScore:          h.QuizScore(),
		CreatedAt:          h.CreatedAt(),
	}
}

func ToAchievementDTO(a helper.Achievement) AchievementDTO {
	return AchievementDTO{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		Icon:        a.Icon,
	}
}

func ToAchievementDTOs(as []helper.Achievement) []AchievementDTO {
	out := make([]AchievementDTO, 0, len(as))
	for _, a := range as {
		out = append(out, ToAchievementDTO(a))
	}
	return out
}
