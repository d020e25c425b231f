package http

import (
	"github.com/kindredhq/kindred/internal/application/achievement"
	companionUsecases "github.com/kindredhq/kindred/internal/application/companion/usecases"
	dilemmaUsecases "github.com/kindredhq/kindred/internal/application/dilemma/usecases"
	feedUsecases "github.com/kindredhq/kindred/internal/application/feed/usecases"
	helperUsecases "github.com/kindredhq/kindred/internal/application/helper/usecases"
	moderationUsecases "github.com/kindredhq/kindred/internal/application/moderation/usecases"
	reflectionUsecases "github.com/kindredhq/kindred/internal/application/reflection/usecases"
	sessionUsecases "github.com/kindredhq/kindred/internal/application/session/usecases"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// Dilemma lifecycle
	postDilemmaUC      *dilemmaUsecases.PostDilemmaUseCase
	directRequestUC    *dilemmaUsecases.CreateDirectRequestUseCase
	acceptDilemmaUC    *dilemmaUsecases.AcceptDilemmaUseCase
	declineDilemmaUC   *dilemmaUsecases.DeclineDilemmaUseCase
	resolveDilemmaUC   *dilemmaUsecases.ResolveDilemmaUseCase
	reportDilemmaUC    *dilemmaUsecases.ReportDilemmaUseCase
	toggleSupportUC    *dilemmaUsecases.ToggleSupportUseCase
	summarizeDilemmaUC *dilemmaUsecases.SummarizeDilemmaUseCase
	getDilemmaUC       *dilemmaUsecases.GetDilemmaUseCase
	listDilemmasUC     *dilemmaUsecases.ListDilemmasUseCase

	// Feeds
	communityFeedUC *feedUsecases.GetCommunityFeedUseCase
	forYouFeedUC    *feedUsecases.GetForYouFeedUseCase
	reportedQueueUC *feedUsecases.GetReportedQueueUseCase

	// Helpers
	createHelperUC      *helperUsecases.CreateHelperUseCase
	getHelperUC         *helperUsecases.GetHelperUseCase
	listHelpersUC       *helperUsecases.ListHelpersUseCase
	updateProfileUC     *helperUsecases.UpdateProfileUseCase
	setAvailabilityUC   *helperUsecases.SetAvailabilityUseCase
	completeTrainingUC  *helperUsecases.CompleteTrainingUseCase
	submitApplicationUC *helperUsecases.SubmitApplicationUseCase
	reviewApplicationUC *helperUsecases.ReviewApplicationUseCase
	changeRoleUC        *helperUsecases.ChangeRoleUseCase
	onlineCountUC       *helperUsecases.OnlineCountUseCase

	// Sessions
	listSessionsUC   *sessionUsecases.ListSessionsUseCase
	toggleFavoriteUC *sessionUsecases.ToggleFavoriteUseCase
	giveKudosUC      *sessionUsecases.GiveKudosUseCase

	// Reflections
	postReflectionUC  *reflectionUsecases.PostReflectionUseCase
	listReflectionsUC *reflectionUsecases.ListReflectionsUseCase
	reactUC           *reflectionUsecases.ReactUseCase

	// Moderation
	removePostUC    *moderationUsecases.RemovePostUseCase
	dismissReportUC *moderationUsecases.DismissReportUseCase
	warnUserUC      *moderationUsecases.WarnUserUseCase
	banUserUC       *moderationUsecases.BanUserUseCase
	userStatusUC    *moderationUsecases.GetUserStatusUseCase
	historyUC       *moderationUsecases.GetHistoryUseCase
	blockUserUC     *moderationUsecases.BlockUserUseCase
	unblockUserUC   *moderationUsecases.UnblockUserUseCase
	listBlockedUC   *moderationUsecases.ListBlockedUseCase

	// Companion
	chatUC *companionUsecases.ChatUseCase
}

func (c *Container) initUseCases() {
	evaluator := achievement.NewEvaluator(c.repos.helperRepo, c.repos.sessionRepo, c.achievementCatalog, c.log)
	c.evaluator = evaluator

	c.ucs = &allUseCases{
		postDilemmaUC:      dilemmaUsecases.NewPostDilemmaUseCase(c.repos.dilemmaRepo, c.log),
		directRequestUC:    dilemmaUsecases.NewCreateDirectRequestUseCase(c.repos.dilemmaRepo, c.repos.helperRepo, c.notifier, c.log),
		acceptDilemmaUC:    dilemmaUsecases.NewAcceptDilemmaUseCase(c.repos.dilemmaRepo, c.repos.helperRepo, c.repos.sessionRepo, evaluator, c.log),
		declineDilemmaUC:   dilemmaUsecases.NewDeclineDilemmaUseCase(c.repos.dilemmaRepo, c.repos.helperRepo, c.log),
		resolveDilemmaUC:   dilemmaUsecases.NewResolveDilemmaUseCase(c.repos.dilemmaRepo, c.repos.sessionRepo, c.log),
		reportDilemmaUC:    dilemmaUsecases.NewReportDilemmaUseCase(c.repos.dilemmaRepo, c.log),
		toggleSupportUC:    dilemmaUsecases.NewToggleSupportUseCase(c.repos.dilemmaRepo, c.log),
		summarizeDilemmaUC: dilemmaUsecases.NewSummarizeDilemmaUseCase(c.repos.dilemmaRepo, c.aiService, c.log),
		getDilemmaUC:       dilemmaUsecases.NewGetDilemmaUseCase(c.repos.dilemmaRepo, c.log),
		listDilemmasUC:     dilemmaUsecases.NewListDilemmasUseCase(c.repos.dilemmaRepo, c.log),

		communityFeedUC: feedUsecases.NewGetCommunityFeedUseCase(c.repos.dilemmaRepo, c.repos.blockRepo, c.log),
		forYouFeedUC:    feedUsecases.NewGetForYouFeedUseCase(c.repos.dilemmaRepo, c.log),
		reportedQueueUC: feedUsecases.NewGetReportedQueueUseCase(c.repos.dilemmaRepo, c.log),

		createHelperUC:      helperUsecases.NewCreateHelperUseCase(c.repos.helperRepo, c.log),
		getHelperUC:         helperUsecases.NewGetHelperUseCase(c.repos.helperRepo, c.log),
		listHelpersUC:       helperUsecases.NewListHelpersUseCase(c.repos.helperRepo, c.log),
		updateProfileUC:     helperUsecases.NewUpdateProfileUseCase(c.repos.helperRepo, c.markdownService, c.log),
		setAvailabilityUC:   helperUsecases.NewSetAvailabilityUseCase(c.repos.helperRepo, c.presenceCache, c.log),
		completeTrainingUC:  helperUsecases.NewCompleteTrainingUseCase(c.repos.helperRepo, c.log),
		submitApplicationUC: helperUsecases.NewSubmitApplicationUseCase(c.repos.helperRepo, c.log),
		reviewApplicationUC: helperUsecases.NewReviewApplicationUseCase(c.repos.helperRepo, c.log),
		changeRoleUC:        helperUsecases.NewChangeRoleUseCase(c.repos.helperRepo, c.log),
		onlineCountUC:       helperUsecases.NewOnlineCountUseCase(c.repos.helperRepo, c.presenceCache, c.log),

		listSessionsUC:   sessionUsecases.NewListSessionsUseCase(c.repos.sessionRepo, c.log),
		toggleFavoriteUC: sessionUsecases.NewToggleFavoriteUseCase(c.repos.sessionRepo, c.log),
		giveKudosUC:      sessionUsecases.NewGiveKudosUseCase(c.repos.sessionRepo, c.repos.helperRepo, evaluator, c.log),

		postReflectionUC:  reflectionUsecases.NewPostReflectionUseCase(c.repos.reflectionRepo, c.log),
		listReflectionsUC: reflectionUsecases.NewListReflectionsUseCase(c.repos.reflectionRepo, c.log),
		reactUC:           reflectionUsecases.NewReactUseCase(c.repos.reflectionRepo, c.log),

		removePostUC:    moderationUsecases.NewRemovePostUseCase(c.repos.dilemmaRepo, c.repos.moderationRepo, c.log),
		dismissReportUC: moderationUsecases.NewDismissReportUseCase(c.repos.dilemmaRepo, c.repos.moderationRepo, c.log),
		warnUserUC:      moderationUsecases.NewWarnUserUseCase(c.repos.moderationRepo, c.log),
		banUserUC:       moderationUsecases.NewBanUserUseCase(c.repos.moderationRepo, c.log),
		userStatusUC:    moderationUsecases.NewGetUserStatusUseCase(c.repos.moderationRepo, c.log),
		historyUC:       moderationUsecases.NewGetHistoryUseCase(c.repos.moderationRepo, c.log),
		blockUserUC:     moderationUsecases.NewBlockUserUseCase(c.repos.blockRepo, c.log),
		unblockUserUC:   moderationUsecases.NewUnblockUserUseCase(c.repos.blockRepo, c.log),
		listBlockedUC:   moderationUsecases.NewListBlockedUseCase(c.repos.blockRepo, c.log),

		chatUC: companionUsecases.NewChatUseCase(c.aiService, c.log),
	}
}
