package helper

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kindredhq/kindred/internal/application/helper/usecases"
	"github.com/kindredhq/kindred/internal/shared/constants"
	"github.com/kindredhq/kindred/internal/shared/id"
	"github.com/kindredhq/kindred/internal/shared/logger"
	"github.com/kindredhq/kindred/internal/shared/utils"
)

type HelperHandler struct {
	createHelperUC      *usecases.CreateHelperUseCase
	getHelperUC         *usecases.GetHelperUseCase
	listHelpersUC       *usecases.ListHelpersUseCase
	updateProfileUC     *usecases.UpdateProfileUseCase
	setAvailabilityUC   *usecases.SetAvailabilityUseCase
	completeTrainingUC  *usecases.CompleteTrainingUseCase
	submitApplicationUC *usecases.SubmitApplicationUseCase
	reviewApplicationUC *usecases.ReviewApplicationUseCase
	changeRoleUC        *usecases.ChangeRoleUseCase
	onlineCountUC       *usecases.OnlineCountUseCase
	logger              logger.Interface
}

func NewHelperHandler(
	createHelperUC *usecases.CreateHelperUseCase,
	getHelperUC *usecases.GetHelperUseCase,
	listHelpersUC *usecases.ListHelpersUseCase,
	updateProfileUC *usecases.UpdateProfileUseCase,
	setAvailabilityUC *usecases.SetAvailabilityUseCase,
	completeTrainingUC *usecases.CompleteTrainingUseCase,
	submitApplicationUC *usecases.SubmitApplicationUseCase,
	reviewApplicationUC *usecases.ReviewApplicationUseCase,
	changeRoleUC *usecases.ChangeRoleUseCase,
	onlineCountUC *usecases.OnlineCountUseCase,
) *HelperHandler {
	return &HelperHandler{
		createHelperUC:      createHelperUC,
		getHelperUC:         getHelperUC,
		listHelpersUC:       listHelpersUC,
		updateProfileUC:     updateProfileUC,
		setAvailabilityUC:   setAvailabilityUC,
		completeTrainingUC:  completeTrainingUC,
		submitApplicationUC: submitApplicationUC,
		reviewApplicationUC: reviewApplicationUC,
		changeRoleUC:        changeRoleUC,
		onlineCountUC:       onlineCountUC,
		logger:              logger.NewLogger(),
	}
}

// CreateHelper handles POST /api/helpers
func (h *HelperHandler) CreateHelper(c *gin.Context) {
	var req CreateHelperRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create helper", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.CreateHelperCommand{
		ExternalIdentityID: c.GetString(constants.ContextKeyUserID),
		DisplayName:        req.DisplayName,
	}

	result, err := h.createHelperUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Helper profile created successfully")
}

// GetMe handles GET /api/helpers/me
func (h *HelperHandler) GetMe(c *gin.Context) {
	query := usecases.GetHelperQuery{
		ExternalIdentityID: c.GetString(constants.ContextKeyUserID),
	}

	result, err := h.getHelperUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetHelper handles GET /api/helpers/:id
func (h *HelperHandler) GetHelper(c *gin.Context) {
	helperID, err := utils.ParseSIDParam(c, "id", id.PrefixHelper, "helper")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.GetHelperQuery{HelperID: helperID}

	result, err := h.getHelperUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListHelpers handles GET /api/helpers
func (h *HelperHandler) ListHelpers(c *gin.Context) {
	req := parseListHelpersRequest(c)

	result, err := h.listHelpersUC.Execute(c.Request.Context(), req.ToQuery())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	hasMore := false
	if req.PageSize > 0 {
		hasMore = int64(req.Page*req.PageSize) < result.Total
	}

	utils.ListSuccessResponse(c, result.Helpers, result.Total, hasMore)
}

// OnlineCount handles GET /api/helpers/online-count
func (h *HelperHandler) OnlineCount(c *gin.Context) {
	result, err := h.onlineCountUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateProfile handles PATCH /api/helpers/:id/profile
func (h *HelperHandler) UpdateProfile(c *gin.Context) {
	helperID, err := utils.ParseSIDParam(c, "id", id.PrefixHelper, "helper")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update profile", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := req.ToCommand(helperID, c.GetString(constants.ContextKeyUserID))

	result, err := h.updateProfileUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Profile updated", result)
}

// SetAvailability handles PATCH /api/helpers/:id/availability
func (h *HelperHandler) SetAvailability(c *gin.Context) {
	helperID, err := utils.ParseSIDParam(c, "id", id.PrefixHelper, "helper")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for set availability", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.SetAvailabilityCommand{
		HelperID:    helperID,
		ActorID:     c.GetString(constants.ContextKeyUserID),
		IsAvailable: *req.IsAvailable,
	}

	result, err := h.setAvailabilityUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Availability updated", result)
}

// CompleteTraining handles POST /api/helpers/:id/training
func (h *HelperHandler) CompleteTraining(c *gin.Context) {
	helperID, err := utils.ParseSIDParam(c, "id", id.PrefixHelper, "helper")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CompleteTrainingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for complete training", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.CompleteTrainingCommand{
		HelperID:  helperID,
		ActorID:   c.GetString(constants.ContextKeyUserID),
		QuizScore: req.QuizScore,
	}

	result, err := h.completeTrainingUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Training recorded", result)
}

// SubmitApplication handles POST /api/helpers/:id/application
func (h *HelperHandler) SubmitApplication(c *gin.Context) {
	helperID, err := utils.ParseSIDParam(c, "id", id.PrefixHelper, "helper")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.SubmitApplicationCommand{
		HelperID: helperID,
		ActorID:  c.GetString(constants.ContextKeyUserID),
	}

	result, err := h.submitApplicationUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Application submitted", result)
}

// ReviewApplication handles POST /api/helpers/:id/application/review
func (h *HelperHandler) ReviewApplication(c *gin.Context) {
	helperID, err := utils.ParseSIDParam(c, "id", id.PrefixHelper, "helper")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ReviewApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for review application", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.ReviewApplicationCommand{
		HelperID: helperID,
		Approve:  *req.Approve,
	}

	result, err := h.reviewApplicationUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Application reviewed", result)
}

// ChangeRole handles PATCH /api/helpers/:id/role
func (h *HelperHandler) ChangeRole(c *gin.Context) {
	helperID, err := utils.ParseSIDParam(c, "id", id.PrefixHelper, "helper")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ChangeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for change role", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.ChangeRoleCommand{
		HelperID: helperID,
		Role:     req.Role,
	}

	result, err := h.changeRoleUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Role updated", result)
}
