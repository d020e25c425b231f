package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	dvo "github.com/kindredhq/kindred/internal/domain/dilemma/valueobjects"
	"github.com/kindredhq/kindred/internal/domain/helper"
	vo "github.com/kindredhq/kindred/internal/domain/helper/valueobjects"
	"github.com/kindredhq/kindred/internal/infrastructure/persistence/models"
	"github.com/kindredhq/kindred/internal/shared/authorization"
)

// HelperMapper handles the conversion between Helper domain entities and persistence models.
type HelperMapper interface {
	// ToModel converts a helper domain entity to a persistence model.
	ToModel(h *helper.Helper) *models.HelperModel

	// ToDomain converts a helper persistence model to a domain entity.
	ToDomain(model *models.HelperModel) (*helper.Helper, error)
}

// HelperMapperImpl is the concrete implementation of HelperMapper.
type HelperMapperImpl struct{}

// NewHelperMapper creates a new HelperMapper.
func NewHelperMapper() HelperMapper {
	return &HelperMapperImpl{}
}

func (m *HelperMapperImpl) ToModel(h *helper.Helper) *models.HelperModel {
	model := &models.HelperModel{
		ID:                 h.ID(),
		ExternalIdentityID: h.ExternalIdentityID(),
		DisplayName:        h.DisplayName(),
		Bio:                h.Bio(),
		Role:               h.Role().String(),
		Reputation:         h.Reputation(),
		IsAvailable:        h.IsAvailable(),
		KudosCount:         h.KudosCount(),
		XP:                 h.XP(),
		Level:              h.Level(),
		NextLevelXP:        h.NextLevelXP(),
		ApplicationStatus:  h.ApplicationStatus().String(),
		TrainingCompleted:  h.TrainingCompleted(),
		QuizScore:          h.QuizScore(),
		Version:            h.Version(),
		CreatedAt:          h.CreatedAt().UnixMilli(),
		UpdatedAt:          h.UpdatedAt().UnixMilli(),
	}

	expertise := make([]string, 0, len(h.Expertise()))
	for _, category := range h.Expertise() {
		expertise = append(expertise, category.String())
	}
	expertiseJSON, _ := json.Marshal(expertise)
	model.Expertise = expertiseJSON

	achievementsJSON, _ := json.Marshal(h.Achievements())
	model.Achievements = achievementsJSON

	return model
}

func (m *HelperMapperImpl) ToDomain(model *models.HelperModel) (*helper.Helper, error) {
	applicationStatus, err := vo.NewApplicationStatus(model.ApplicationStatus)
	if err != nil {
		return nil, err
	}

	var expertiseStrings []string
	if len(model.Expertise) > 0 {
		if err := json.Unmarshal(model.Expertise, &expertiseStrings); err != nil {
			return nil, fmt.Errorf("failed to unmarshal expertise: %w", err)
		}
	}
	expertise := make([]dvo.Category, 0, len(expertiseStrings))
	for _, s := range expertiseStrings {
		category, err := dvo.NewCategory(s)
		if err != nil {
			return nil, err
		}
		expertise = append(expertise, category)
	}

	var achievements []string
	if len(model.Achievements) > 0 {
		if err := json.Unmarshal(model.Achievements, &achievements); err != nil {
			return nil, fmt.Errorf("failed to unmarshal achievements: %w", err)
		}
	}

	return helper.ReconstructHelper(
		model.ID,
		model.ExternalIdentityID,
		model.DisplayName,
		model.Bio,
		authorization.ParseRole(model.Role),
		model.Reputation,
		model.IsAvailable,
		expertise,
		model.KudosCount,
		achievements,
		model.XP,
		model.Level,
		model.NextLevelXP,
		applicationStatus,
		model.TrainingCompleted,
		model.QuizScore,
		model.Version,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}
