package companion

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kindredhq/kindred/internal/application/companion/usecases"
	"github.com/kindredhq/kindred/internal/shared/constants"
	"github.com/kindredhq/kindred/internal/shared/logger"
	"github.com/kindredhq/kindred/internal/shared/utils"
)

type ChatRequest struct {
	Messages []usecases.ChatMessage `json:"messages" binding:"required"`
}

type CompanionHandler struct {
	chatUC *usecases.ChatUseCase
	logger logger.Interface
}

func NewCompanionHandler(chatUC *usecases.ChatUseCase) *CompanionHandler {
	return &CompanionHandler{
		chatUC: chatUC,
		logger: logger.NewLogger(),
	}
}

// Chat handles POST /api/companion/chat
func (h *CompanionHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for companion chat", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.ChatCommand{
		UserToken: c.GetString(constants.ContextKeySeekerToken),
		Messages:  req.Messages,
	}

	result, err := h.chatUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
