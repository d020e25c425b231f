package mappers

import (
	"time"

	"github.com/kindredhq/kindred/internal/domain/dilemma"
	vo "github.com/kindredhq/kindred/internal/domain/dilemma/valueobjects"
	"github.com/kindredhq/kindred/internal/infrastructure/persistence/models"
)

// DilemmaMapper handles the conversion between Dilemma domain entities and persistence models.
type DilemmaMapper interface {
	// ToModel converts a dilemma domain entity to a persistence model.
	ToModel(d *dilemma.Dilemma) *models.DilemmaModel

	// ToDomain converts a dilemma persistence model to a domain entity.
	ToDomain(model *models.DilemmaModel) (*dilemma.Dilemma, error)
}

// DilemmaMapperImpl is the concrete implementation of DilemmaMapper.
type DilemmaMapperImpl struct{}

// NewDilemmaMapper creates a new DilemmaMapper.
func NewDilemmaMapper() DilemmaMapper {
	return &DilemmaMapperImpl{}
}

func (m *DilemmaMapperImpl) ToModel(d *dilemma.Dilemma) *models.DilemmaModel {
	model := &models.DilemmaModel{
		ID:                d.ID(),
		AuthorToken:       d.AuthorToken(),
		Category:          d.Category().String(),
		Content:           d.Content(),
		Status:            d.Status().String(),
		SupportCount:      d.SupportCount(),
		IsReported:        d.IsReported(),
		ReportReason:      d.ReportReason(),
		AssignedHelperID:  d.AssignedHelperID(),
		RequestedHelperID: d.RequestedHelperID(),
		ResolvedBySeeker:  d.ResolvedBySeeker(),
		Summary:           d.Summary(),
		Version:           d.Version(),
		CreatedAt:         d.CreatedAt().UnixMilli(),
		UpdatedAt:         d.UpdatedAt().UnixMilli(),
	}

	if record := d.ModerationRecord(); record != nil {
		action := record.Action
		moderatorID := record.ModeratorID
		at := record.Timestamp.UnixMilli()
		model.ModerationAction = &action
		model.ModerationModeratorID = &moderatorID
		model.ModerationAt = &at
	}

	return model
}

func (m *DilemmaMapperImpl) ToDomain(model *models.DilemmaModel) (*dilemma.Dilemma, error) {
	category, err := vo.NewCategory(model.Category)
	if err != nil {
		return nil, err
	}

	status, err := vo.NewDilemmaStatus(model.Status)
	if err != nil {
		return nil, err
	}

	var record *dilemma.ModerationRecord
	if model.ModerationAction != nil && model.ModerationModeratorID != nil && model.ModerationAt != nil {
		record = &dilemma.ModerationRecord{
			Action:      *model.ModerationAction,
			ModeratorID: *model.ModerationModeratorID,
			Timestamp:   time.UnixMilli(*model.ModerationAt),
		}
	}

	return dilemma.ReconstructDilemma(
		model.ID,
		model.AuthorToken,
		category,
		model.Content,
		status,
		model.SupportCount,
		model.IsReported,
		model.ReportReason,
		model.AssignedHelperID,
		model.RequestedHelperID,
		model.ResolvedBySeeker,
		model.Summary,
		record,
		model.Version,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}
