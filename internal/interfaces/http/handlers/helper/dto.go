package helper

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kindredhq/kindred/internal/application/helper/usecases"
	"github.com/kindredhq/kindred/internal/shared/utils"
)

type CreateHelperRequest struct {
	DisplayName string `json:"display_name" binding:"required,max=100"`
}

type UpdateProfileRequest struct {
	DisplayName string   `json:"display_name" binding:"required,max=100"`
	Bio         string   `json:"bio" binding:"max=2000"`
	Expertise   []string `json:"expertise"`
}

func (r *UpdateProfileRequest) ToCommand(helperID, actorID string) usecases.UpdateProfileCommand {
	return usecases.UpdateProfileCommand{
		HelperID:    helperID,
		ActorID:     actorID,
		DisplayName: r.DisplayName,
		Bio:         r.Bio,
		Expertise:   r.Expertise,
	}
}

type SetAvailabilityRequest struct {
	IsAvailable *bool `json:"is_available" binding:"required"`
}

type CompleteTrainingRequest struct {
	QuizScore int `json:"quiz_score" binding:"min=0,max=100"`
}

type ReviewApplicationRequest struct {
	Approve *bool `json:"approve" binding:"required"`
}

type ChangeRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

type ListHelpersRequest struct {
	Role        string
	IsAvailable *bool
	Expertise   string
	Page        int
	PageSize    int
}

func (r *ListHelpersRequest) ToQuery() usecases.ListHelpersQuery {
	return usecases.ListHelpersQuery{
		Role:        r.Role,
		IsAvailable: r.IsAvailable,
		Expertise:   r.Expertise,
		Page:        r.Page,
		PageSize:    r.PageSize,
	}
}

func parseListHelpersRequest(c *gin.Context) *ListHelpersRequest {
	pagination := utils.ParsePagination(c)

	req := &ListHelpersRequest{
		Role:      c.Query("role"),
		Expertise: c.Query("expertise"),
		Page:      pagination.Page,
		PageSize:  pagination.PageSize,
	}

	if availableStr := c.Query("is_available"); availableStr != "" {
		if available, err := strconv.ParseBool(availableStr); err == nil {
			req.IsAvailable = &available
		}
	}

	return req
}
