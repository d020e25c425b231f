package http

import (
	companionHandlers "github.com/kindredhq/kindred/internal/interfaces/http/handlers/companion"
	dilemmaHandlers "github.com/kindredhq/kindred/internal/interfaces/http/handlers/dilemma"
	feedHandlers "github.com/kindredhq/kindred/internal/interfaces/http/handlers/feed"
	helperHandlers "github.com/kindredhq/kindred/internal/interfaces/http/handlers/helper"
	moderationHandlers "github.com/kindredhq/kindred/internal/interfaces/http/handlers/moderation"
	reflectionHandlers "github.com/kindredhq/kindred/internal/interfaces/http/handlers/reflection"
	sessionHandlers "github.com/kindredhq/kindred/internal/interfaces/http/handlers/session"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	dilemmaHandler    *dilemmaHandlers.DilemmaHandler
	feedHandler       *feedHandlers.FeedHandler
	helperHandler     *helperHandlers.HelperHandler
	sessionHandler    *sessionHandlers.SessionHandler
	reflectionHandler *reflectionHandlers.ReflectionHandler
	moderationHandler *moderationHandlers.ModerationHandler
	companionHandler  *companionHandlers.CompanionHandler
}

func (c *Container) initHandlers() {
	c.hdlrs = &allHandlers{
		dilemmaHandler: dilemmaHandlers.NewDilemmaHandler(
			c.ucs.postDilemmaUC,
			c.ucs.directRequestUC,
			c.ucs.acceptDilemmaUC,
			c.ucs.declineDilemmaUC,
			c.ucs.resolveDilemmaUC,
			c.ucs.reportDilemmaUC,
			c.ucs.toggleSupportUC,
			c.ucs.summarizeDilemmaUC,
			c.ucs.getDilemmaUC,
			c.ucs.listDilemmasUC,
		),
		feedHandler: feedHandlers.NewFeedHandler(
			c.ucs.communityFeedUC,
			c.ucs.forYouFeedUC,
		),
		helperHandler: helperHandlers.NewHelperHandler(
			c.ucs.createHelperUC,
			c.ucs.getHelperUC,
			c.ucs.listHelpersUC,
			c.ucs.updateProfileUC,
			c.ucs.setAvailabilityUC,
			c.ucs.completeTrainingUC,
			c.ucs.submitApplicationUC,
			c.ucs.reviewApplicationUC,
			c.ucs.changeRoleUC,
			c.ucs.onlineCountUC,
		),
		sessionHandler: sessionHandlers.NewSessionHandler(
			c.ucs.listSessionsUC,
			c.ucs.toggleFavoriteUC,
			c.ucs.giveKudosUC,
		),
		reflectionHandler: reflectionHandlers.NewReflectionHandler(
			c.ucs.postReflectionUC,
			c.ucs.listReflectionsUC,
			c.ucs.reactUC,
		),
		moderationHandler: moderationHandlers.NewModerationHandler(
			c.ucs.reportedQueueUC,
			c.ucs.removePostUC,
			c.ucs.dismissReportUC,
			c.ucs.warnUserUC,
			c.ucs.banUserUC,
			c.ucs.userStatusUC,
			c.ucs.historyUC,
			c.ucs.blockUserUC,
			c.ucs.unblockUserUC,
			c.ucs.listBlockedUC,
		),
		companionHandler: companionHandlers.NewCompanionHandler(c.ucs.chatUC),
	}
}
