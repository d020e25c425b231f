package feed

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kindredhq/kindred/internal/application/feed/usecases"
	"github.com/kindredhq/kindred/internal/shared/constants"
	"github.com/kindredhq/kindred/internal/shared/logger"
	"github.com/kindredhq/kindred/internal/shared/utils"
)

type FeedHandler struct {
	communityFeedUC *usecases.GetCommunityFeedUseCase
	forYouFeedUC    *usecases.GetForYouFeedUseCase
	logger          logger.Interface
}

func NewFeedHandler(
	communityFeedUC *usecases.GetCommunityFeedUseCase,
	forYouFeedUC *usecases.GetForYouFeedUseCase,
) *FeedHandler {
	return &FeedHandler{
		communityFeedUC: communityFeedUC,
		forYouFeedUC:    forYouFeedUC,
		logger:          logger.NewLogger(),
	}
}

// GetCommunityFeed handles GET /api/dilemmas/feed
func (h *FeedHandler) GetCommunityFeed(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	query := usecases.GetCommunityFeedQuery{
		ViewerToken: c.GetString(constants.ContextKeySeekerToken),
		Category:    c.Query("category"),
		Sort:        c.Query("sort"),
		Search:      c.Query("search"),
		Page:        page,
	}

	result, err := h.communityFeedUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Dilemmas, int64(result.Total), result.HasMore)
}

// GetForYouFeed handles GET /api/dilemmas/for-you/:userToken
func (h *FeedHandler) GetForYouFeed(c *gin.Context) {
	userToken := c.Param("userToken")
	if userToken == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "user token is required")
		return
	}

	query := usecases.GetForYouFeedQuery{ViewerToken: userToken}

	result, err := h.forYouFeedUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
