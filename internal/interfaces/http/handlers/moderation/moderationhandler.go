package moderation

import (
	"net/http"

	"github.com/gin-gonic/gin"

	feedusecases "github.com/kindredhq/kindred/internal/application/feed/usecases"
	"github.com/kindredhq/kindred/internal/application/moderation/usecases"
	"github.com/kindredhq/kindred/internal/shared/constants"
	"github.com/kindredhq/kindred/internal/shared/errors"
	"github.com/kindredhq/kindred/internal/shared/id"
	"github.com/kindredhq/kindred/internal/shared/logger"
	"github.com/kindredhq/kindred/internal/shared/utils"
)

type WarnUserRequest struct {
	Reason string `json:"reason" binding:"required,max=500"`
}

type BanUserRequest struct {
	Reason        string `json:"reason" binding:"required,max=500"`
	DurationHours int    `json:"duration_hours" binding:"min=0"`
}

type BlockUserRequest struct {
	BlockedID string `json:"blocked_id" binding:"required"`
}

type ModerationHandler struct {
	reportedQueueUC *feedusecases.GetReportedQueueUseCase
	removePostUC    *usecases.RemovePostUseCase
	dismissReportUC *usecases.DismissReportUseCase
	warnUserUC      *usecases.WarnUserUseCase
	banUserUC       *usecases.BanUserUseCase
	userStatusUC    *usecases.GetUserStatusUseCase
	historyUC       *usecases.GetHistoryUseCase
	blockUserUC     *usecases.BlockUserUseCase
	unblockUserUC   *usecases.UnblockUserUseCase
	listBlockedUC   *usecases.ListBlockedUseCase
	logger          logger.Interface
}

func NewModerationHandler(
	reportedQueueUC *feedusecases.GetReportedQueueUseCase,
	removePostUC *usecases.RemovePostUseCase,
	dismissReportUC *usecases.DismissReportUseCase,
	warnUserUC *usecases.WarnUserUseCase,
	banUserUC *usecases.BanUserUseCase,
	userStatusUC *usecases.GetUserStatusUseCase,
	historyUC *usecases.GetHistoryUseCase,
	blockUserUC *usecases.BlockUserUseCase,
	unblockUserUC *usecases.UnblockUserUseCase,
	listBlockedUC *usecases.ListBlockedUseCase,
) *ModerationHandler {
	return &ModerationHandler{
		reportedQueueUC: reportedQueueUC,
		removePostUC:    removePostUC,
		dismissReportUC: dismissReportUC,
		warnUserUC:      warnUserUC,
		banUserUC:       banUserUC,
		userStatusUC:    userStatusUC,
		historyUC:       historyUC,
		blockUserUC:     blockUserUC,
		unblockUserUC:   unblockUserUC,
		listBlockedUC:   listBlockedUC,
		logger:          logger.NewLogger(),
	}
}

// GetReportedQueue handles GET /api/moderation/queue
func (h *ModerationHandler) GetReportedQueue(c *gin.Context) {
	result, err := h.reportedQueueUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Dilemmas, int64(result.Total), false)
}

// RemovePost handles POST /api/moderation/dilemmas/:id/remove
func (h *ModerationHandler) RemovePost(c *gin.Context) {
	dilemmaID, err := utils.ParseSIDParam(c, "id", id.PrefixDilemma, "dilemma")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.RemovePostCommand{
		DilemmaID:   dilemmaID,
		ModeratorID: c.GetString(constants.ContextKeyUserID),
	}

	result, err := h.removePostUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Post removed", result)
}

// DismissReport handles POST /api/moderation/dilemmas/:id/dismiss
func (h *ModerationHandler) DismissReport(c *gin.Context) {
	dilemmaID, err := utils.ParseSIDParam(c, "id", id.PrefixDilemma, "dilemma")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.DismissReportCommand{
		DilemmaID:   dilemmaID,
		ModeratorID: c.GetString(constants.ContextKeyUserID),
	}

	result, err := h.dismissReportUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Report dismissed", result)
}

// WarnUser handles POST /api/moderation/users/:user_id/warn
func (h *ModerationHandler) WarnUser(c *gin.Context) {
	userID := c.Param("user_id")
	if userID == "" {
		utils.ErrorResponseWithError(c, errors.NewValidationError("user ID is required"))
		return
	}

	var req WarnUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for warn user", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.WarnUserCommand{
		UserID:      userID,
		Reason:      req.Reason,
		ModeratorID: c.GetString(constants.ContextKeyUserID),
	}

	result, err := h.warnUserUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User warned", result)
}

// BanUser handles POST /api/moderation/users/:user_id/ban
func (h *ModerationHandler) BanUser(c *gin.Context) {
	userID := c.Param("user_id")
	if userID == "" {
		utils.ErrorResponseWithError(c, errors.NewValidationError("user ID is required"))
		return
	}

	var req BanUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for ban user", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.BanUserCommand{
		UserID:        userID,
		Reason:        req.Reason,
		ModeratorID:   c.GetString(constants.ContextKeyUserID),
		DurationHours: req.DurationHours,
	}

	result, err := h.banUserUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User banned", result)
}

// GetUserStatus handles GET /api/moderation/users/:user_id/status
func (h *ModerationHandler) GetUserStatus(c *gin.Context) {
	userID := c.Param("user_id")
	if userID == "" {
		utils.ErrorResponseWithError(c, errors.NewValidationError("user ID is required"))
		return
	}

	result, err := h.userStatusUC.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetHistory handles GET /api/moderation/users/:user_id/history
func (h *ModerationHandler) GetHistory(c *gin.Context) {
	userID := c.Param("user_id")
	if userID == "" {
		utils.ErrorResponseWithError(c, errors.NewValidationError("user ID is required"))
		return
	}

	result, err := h.historyUC.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Actions, int64(result.Total), false)
}

// BlockUser handles POST /api/users/blocks
func (h *ModerationHandler) BlockUser(c *gin.Context) {
	var req BlockUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for block user", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.BlockUserCommand{
		BlockerID: c.GetString(constants.ContextKeyUserID),
		BlockedID: req.BlockedID,
	}

	if err := h.blockUserUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User blocked", nil)
}

// UnblockUser handles DELETE /api/users/blocks/:blocked_id
func (h *ModerationHandler) UnblockUser(c *gin.Context) {
	blockedID := c.Param("blocked_id")
	if blockedID == "" {
		utils.ErrorResponseWithError(c, errors.NewValidationError("blocked user ID is required"))
		return
	}

	cmd := usecases.UnblockUserCommand{
		BlockerID: c.GetString(constants.ContextKeyUserID),
		BlockedID: blockedID,
	}

	if err := h.unblockUserUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// ListBlocked handles GET /api/users/blocks
func (h *ModerationHandler) ListBlocked(c *gin.Context) {
	result, err := h.listBlockedUC.Execute(c.Request.Context(), c.GetString(constants.ContextKeyUserID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
