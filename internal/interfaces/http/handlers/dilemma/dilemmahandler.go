package dilemma

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kindredhq/kindred/internal/application/dilemma/usecases"
	"github.com/kindredhq/kindred/internal/shared/constants"
	"github.com/kindredhq/kindred/internal/shared/id"
	"github.com/kindredhq/kindred/internal/shared/logger"
	"github.com/kindredhq/kindred/internal/shared/utils"
)

type DilemmaHandler struct {
	postDilemmaUC     usecases.PostDilemmaExecutor
	directRequestUC   usecases.CreateDirectRequestExecutor
	acceptDilemmaUC   usecases.AcceptDilemmaExecutor
	declineDilemmaUC  usecases.DeclineDilemmaExecutor
	resolveDilemmaUC  usecases.ResolveDilemmaExecutor
	reportDilemmaUC   usecases.ReportDilemmaExecutor
	toggleSupportUC   usecases.ToggleSupportExecutor
	summarizeUC       usecases.SummarizeDilemmaExecutor
	getDilemmaUC      usecases.GetDilemmaExecutor
	listDilemmasUC    usecases.ListDilemmasExecutor
	logger            logger.Interface
}

func NewDilemmaHandler(
	postDilemmaUC usecases.PostDilemmaExecutor,
	directRequestUC usecases.CreateDirectRequestExecutor,
	acceptDilemmaUC usecases.AcceptDilemmaExecutor,
	declineDilemmaUC usecases.DeclineDilemmaExecutor,
	resolveDilemmaUC usecases.ResolveDilemmaExecutor,
	reportDilemmaUC usecases.ReportDilemmaExecutor,
	toggleSupportUC usecases.ToggleSupportExecutor,
	summarizeUC usecases.SummarizeDilemmaExecutor,
	getDilemmaUC usecases.GetDilemmaExecutor,
	listDilemmasUC usecases.ListDilemmasExecutor,
) *DilemmaHandler {
	return &DilemmaHandler{
		postDilemmaUC:    postDilemmaUC,
		directRequestUC:  directRequestUC,
		acceptDilemmaUC:  acceptDilemmaUC,
		declineDilemmaUC: declineDilemmaUC,
		resolveDilemmaUC: resolveDilemmaUC,
		reportDilemmaUC:  reportDilemmaUC,
		toggleSupportUC:  toggleSupportUC,
		summarizeUC:      summarizeUC,
		getDilemmaUC:     getDilemmaUC,
		listDilemmasUC:   listDilemmasUC,
		logger:           logger.NewLogger(),
	}
}

// PostDilemma handles POST /api/dilemmas
func (h *DilemmaHandler) PostDilemma(c *gin.Context) {
	var req PostDilemmaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for post dilemma", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := req.ToCommand(c.GetString(constants.ContextKeySeekerToken))

	result, err := h.postDilemmaUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Dilemma posted successfully")
}

// CreateDirectRequest handles POST /api/dilemmas/direct-request
func (h *DilemmaHandler) CreateDirectRequest(c *gin.Context) {
	var req CreateDirectRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for direct request", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := req.ToCommand(c.GetString(constants.ContextKeySeekerToken))

	result, err := h.directRequestUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Direct request created successfully")
}

// AcceptDilemma handles POST /api/dilemmas/:id/accept
func (h *DilemmaHandler) AcceptDilemma(c *gin.Context) {
	dilemmaID, err := utils.ParseSIDParam(c, "id", id.PrefixDilemma, "dilemma")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.AcceptDilemmaCommand{
		DilemmaID: dilemmaID,
		HelperID:  c.GetString(constants.ContextKeyUserID),
	}

	result, err := h.acceptDilemmaUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Dilemma accepted", result)
}

// DeclineDilemma handles POST /api/dilemmas/:id/decline
func (h *DilemmaHandler) DeclineDilemma(c *gin.Context) {
	dilemmaID, err := utils.ParseSIDParam(c, "id", id.PrefixDilemma, "dilemma")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.DeclineDilemmaCommand{
		DilemmaID: dilemmaID,
		HelperID:  c.GetString(constants.ContextKeyUserID),
	}

	result, err := h.declineDilemmaUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Direct request declined", result)
}

// ResolveDilemma handles POST /api/dilemmas/:id/resolve
func (h *DilemmaHandler) ResolveDilemma(c *gin.Context) {
	dilemmaID, err := utils.ParseSIDParam(c, "id", id.PrefixDilemma, "dilemma")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.ResolveDilemmaCommand{
		DilemmaID:   dilemmaID,
		SeekerToken: c.GetString(constants.ContextKeySeekerToken),
	}

	result, err := h.resolveDilemmaUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Dilemma resolved", result)
}

// ReportDilemma handles POST /api/dilemmas/:id/report
func (h *DilemmaHandler) ReportDilemma(c *gin.Context) {
	dilemmaID, err := utils.ParseSIDParam(c, "id", id.PrefixDilemma, "dilemma")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ReportDilemmaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for report dilemma", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.ReportDilemmaCommand{
		DilemmaID: dilemmaID,
		Reason:    req.Reason,
	}

	result, err := h.reportDilemmaUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Dilemma reported", result)
}

// ToggleSupport handles POST /api/dilemmas/:id/support
func (h *DilemmaHandler) ToggleSupport(c *gin.Context) {
	dilemmaID, err := utils.ParseSIDParam(c, "id", id.PrefixDilemma, "dilemma")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.ToggleSupportCommand{
		DilemmaID:   dilemmaID,
		ViewerToken: c.GetString(constants.ContextKeySeekerToken),
	}

	result, err := h.toggleSupportUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// SummarizeDilemma handles POST /api/dilemmas/:id/summarize
func (h *DilemmaHandler) SummarizeDilemma(c *gin.Context) {
	dilemmaID, err := utils.ParseSIDParam(c, "id", id.PrefixDilemma, "dilemma")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.SummarizeDilemmaCommand{DilemmaID: dilemmaID}

	result, err := h.summarizeUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Summary generated", result)
}

// GetDilemma handles GET /api/dilemmas/:id
func (h *DilemmaHandler) GetDilemma(c *gin.Context) {
	dilemmaID, err := utils.ParseSIDParam(c, "id", id.PrefixDilemma, "dilemma")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.GetDilemmaQuery{
		DilemmaID:   dilemmaID,
		ViewerToken: c.GetString(constants.ContextKeySeekerToken),
	}

	result, err := h.getDilemmaUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListDilemmas handles GET /api/dilemmas
func (h *DilemmaHandler) ListDilemmas(c *gin.Context) {
	req := parseListDilemmasRequest(c)

	query := req.ToQuery(c.GetString(constants.ContextKeySeekerToken))

	result, err := h.listDilemmasUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	hasMore := false
	if query.PageSize > 0 {
		hasMore = int64(query.Page*query.PageSize) < result.Total
	}

	utils.ListSuccessResponse(c, result.Dilemmas, result.Total, hasMore)
}
