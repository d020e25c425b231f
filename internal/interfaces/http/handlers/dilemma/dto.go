package dilemma

import (
	"github.com/gin-gonic/gin"

	"github.com/kindredhq/kindred/internal/application/dilemma/usecases"
	"github.com/kindredhq/kindred/internal/shared/utils"
)

type PostDilemmaRequest struct {
	Category string `json:"category" binding:"required"`
	Content  string `json:"content" binding:"required,max=2000"`
}

func (r *PostDilemmaRequest) ToCommand(userToken string) usecases.PostDilemmaCommand {
	return usecases.PostDilemmaCommand{
		UserToken: userToken,
		Category:  r.Category,
		Content:   r.Content,
	}
}

type CreateDirectRequestRequest struct {
	Category string `json:"category" binding:"required"`
	Content  string `json:"content" binding:"required,max=2000"`
	HelperID string `json:"helper_id" binding:"required"`
}

func (r *CreateDirectRequestRequest) ToCommand(userToken string) usecases.CreateDirectRequestCommand {
	return usecases.CreateDirectRequestCommand{
		UserToken:         userToken,
		Category:          r.Category,
		Content:           r.Content,
		RequestedHelperID: r.HelperID,
	}
}

type ReportDilemmaRequest struct {
	Reason string `json:"reason" binding:"required,max=500"`
}

type ListDilemmasRequest struct {
	Status    string
	Category  string
	Search    string
	SortBy    string
	SortOrder string
	Page      int
	PageSize  int
}

func (r *ListDilemmasRequest) ToQuery(viewerToken string) usecases.ListDilemmasQuery {
	return usecases.ListDilemmasQuery{
		ViewerToken: viewerToken,
		Status:      r.Status,
		Category:    r.Category,
		Search:      r.Search,
		SortBy:      r.SortBy,
		SortOrder:   r.SortOrder,
		Page:        r.Page,
		PageSize:    r.PageSize,
	}
}

func parseListDilemmasRequest(c *gin.Context) *ListDilemmasRequest {
	pagination := utils.ParsePagination(c)

	return &ListDilemmasRequest{
		Status:    c.Query("status"),
		Category:  c.Query("category"),
		Search:    c.Query("search"),
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
		Page:      pagination.Page,
		PageSize:  pagination.PageSize,
	}
}
