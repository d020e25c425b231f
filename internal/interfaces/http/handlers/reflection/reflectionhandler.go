package reflection

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kindredhq/kindred/internal/application/reflection/usecases"
	"github.com/kindredhq/kindred/internal/shared/constants"
	"github.com/kindredhq/kindred/internal/shared/id"
	"github.com/kindredhq/kindred/internal/shared/logger"
	"github.com/kindredhq/kindred/internal/shared/utils"
)

type PostReflectionRequest struct {
	Content string `json:"content" binding:"required,max=1000"`
}

type ReactRequest struct {
	ReactionType string `json:"reaction_type" binding:"required"`
}

type ReflectionHandler struct {
	postReflectionUC  *usecases.PostReflectionUseCase
	listReflectionsUC *usecases.ListReflectionsUseCase
	reactUC           *usecases.ReactUseCase
	logger            logger.Interface
}

func NewReflectionHandler(
	postReflectionUC *usecases.PostReflectionUseCase,
	listReflectionsUC *usecases.ListReflectionsUseCase,
	reactUC *usecases.ReactUseCase,
) *ReflectionHandler {
	return &ReflectionHandler{
		postReflectionUC:  postReflectionUC,
		listReflectionsUC: listReflectionsUC,
		reactUC:           reactUC,
		logger:            logger.NewLogger(),
	}
}

// PostReflection handles POST /api/reflections
func (h *ReflectionHandler) PostReflection(c *gin.Context) {
	var req PostReflectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for post reflection", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.PostReflectionCommand{
		UserToken: c.GetString(constants.ContextKeySeekerToken),
		Content:   req.Content,
	}

	result, err := h.postReflectionUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Reflection posted successfully")
}

// ListReflections handles GET /api/reflections
func (h *ReflectionHandler) ListReflections(c *gin.Context) {
	result, err := h.listReflectionsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Reflections, int64(result.Total), false)
}

// React handles POST /api/reflections/:id/react
func (h *ReflectionHandler) React(c *gin.Context) {
	reflectionID, err := utils.ParseSIDParam(c, "id", id.PrefixReflection, "reflection")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ReactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for react", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.ReactCommand{
		ReflectionID: reflectionID,
		ReactionType: req.ReactionType,
	}

	result, err := h.reactUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
