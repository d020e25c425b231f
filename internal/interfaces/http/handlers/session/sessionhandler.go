package session

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kindredhq/kindred/internal/application/session/usecases"
	"github.com/kindredhq/kindred/internal/shared/constants"
	"github.com/kindredhq/kindred/internal/shared/id"
	"github.com/kindredhq/kindred/internal/shared/logger"
	"github.com/kindredhq/kindred/internal/shared/utils"
)

type SessionHandler struct {
	listSessionsUC   *usecases.ListSessionsUseCase
	toggleFavoriteUC *usecases.ToggleFavoriteUseCase
	giveKudosUC      *usecases.GiveKudosUseCase
	logger           logger.Interface
}

func NewSessionHandler(
	listSessionsUC *usecases.ListSessionsUseCase,
	toggleFavoriteUC *usecases.ToggleFavoriteUseCase,
	giveKudosUC *usecases.GiveKudosUseCase,
) *SessionHandler {
	return &SessionHandler{
		listSessionsUC:   listSessionsUC,
		toggleFavoriteUC: toggleFavoriteUC,
		giveKudosUC:      giveKudosUC,
		logger:           logger.NewLogger(),
	}
}

// ListSessions handles GET /api/sessions
func (h *SessionHandler) ListSessions(c *gin.Context) {
	query := usecases.ListSessionsQuery{
		ActorID: c.GetString(constants.ContextKeyUserID),
	}

	result, err := h.listSessionsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Sessions, int64(result.Total), false)
}

// ToggleFavorite handles POST /api/sessions/:id/favorite
func (h *SessionHandler) ToggleFavorite(c *gin.Context) {
	sessionID, err := utils.ParseSIDParam(c, "id", id.PrefixSession, "session")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.ToggleFavoriteCommand{
		SessionID:   sessionID,
		SeekerToken: c.GetString(constants.ContextKeySeekerToken),
	}

	result, err := h.toggleFavoriteUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GiveKudos handles POST /api/sessions/:id/kudos
func (h *SessionHandler) GiveKudos(c *gin.Context) {
	sessionID, err := utils.ParseSIDParam(c, "id", id.PrefixSession, "session")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.GiveKudosCommand{
		SessionID:   sessionID,
		SeekerToken: c.GetString(constants.ContextKeySeekerToken),
	}

	result, err := h.giveKudosUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Kudos given", result)
}
