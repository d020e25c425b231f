package dto

import (
	"time"

	"github.com/kindredhq/kindred/internal/domain/dilemma"
)

type ModerationRecordDTO struct {
	Action      string    `json:"action"`
	ModeratorID string    `json:"moderator_id"`
	Timestamp   time.Time `json:"timestamp"`
}

type DilemmaDTO struct {
	ID                string               `json:"id"`
	AuthorToken       string               `json:"author_token"`
	Category          string               `json:"category"`
	Content           string               `json:"content"`
	Status            string               `json:"status"`
	SupportCount      int                  `json:"support_count"`
	IsSupported       bool                 `json:"is_supported"`
	IsReported        bool                 `json:"is_reported"`
	ReportReason      string               `json:"report_reason,omitempty"`
	AssignedHelperID  *string              `json:"assigned_helper_id,omitempty"`
	RequestedHelperID *string              `json:"requested_helper_id,omitempty"`
	ResolvedBySeeker  bool                 `json:"resolved_by_seeker"`
	Summary           string               `json:"summary,omitempty"`
	ModerationRecord  *ModerationRecordDTO `json:"moderation_record,omitempty"`
	CreatedAt         time.Time            `json:"created_at"`
	UpdatedAt         time.Time            `json:"updated_at"`
}

// ToDilemmaDTO projects the aggregate for a specific viewer; isSupported
// is per viewer, not a property of the dilemma itself.
func ToDilemmaDTO(d *dilemma.Dilemma, isSupported bool) *DilemmaDTO {
	if d == nil {
		return nil
	}

	var record *ModerationRecordDTO
	if mr := d.ModerationRecord(); mr != nil {
		record = &ModerationRecordDTO{
			Action:      mr.Action,
			ModeratorID: mr.ModeratorID,
			Timestamp:   mr.Timestamp,
		}
	}

	return &DilemmaDTO{
		ID:                d.ID(),
		AuthorToken:       d.AuthorToken(),
		Category:          d.Category().String(),
		Content:           d.Content(),
		Status:            d.Status().String(),
		SupportCount:      d.SupportCount(),
		IsSupported:       isSupported,
		IsReported:        d.IsReported(),
		ReportReason:      d.ReportReason(),
		AssignedHelperID:  d.AssignedHelperID(),
		RequestedHelperID: d.RequestedHelperID(),
		ResolvedBySeeker:  d.ResolvedBySeeker(),
		Summary:           d.Summary(),
		ModerationRecord:  record,
		CreatedAt:         d.CreatedAt(),
		UpdatedAt:         d.UpdatedAt(),
	}
}

// ToDilemmaDTOs projects a slice using the viewer's supported-ID set.
func ToDilemmaDTOs(ds []*dilemma.Dilemma, supported map[string]bool) []*DilemmaDTO {
	out := make([]*DilemmaDTO, 0, len(ds))
	for _, d := range ds {
		out = append(out, ToDilemmaDTO(d, supported[d.ID()]))
	}
	return out
}
