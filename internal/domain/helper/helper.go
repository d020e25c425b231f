package helper

import (
	"fmt"
	"time"

	dvo "github.com/kindredhq/kindred/internal/domain/dilemma/valueobjects"
	vo "github.com/kindredhq/kindred/internal/domain/helper/valueobjects"
	"github.com/kindredhq/kindred/internal/shared/authorization"
)

const (
	initialLevel       = 1
	initialNextLevelXP = 100
)

// Helper is the aggregate for a volunteer or certified supporter.
type Helper struct {
	id                 string
	externalIdentityID string
	displayName        string
	bio                string
	role               authorization.Role
	reputation         float64
	isAvailable        bool
	expertise          []dvo.Category
	kudosCount         int
	achievements       []string
	xp                 int
	level              int
	nextLevelXP        int
	applicationStatus  vo.ApplicationStatus
	trainingCompleted  bool
	quizScore          *int
	version            int
	createdAt          time.Time
	updatedAt          time.Time
}

func NewHelper(externalIdentityID, displayName string) (*Helper, error) {
	if len(externalIdentityID) == 0 {
		return nil, fmt.Errorf("external identity ID is required")
	}
	if len(displayName) == 0 {
		return nil, fmt.Errorf("display name is required")
	}
	if len(displayName) > 100 {
		return nil, fmt.Errorf("display name exceeds maximum length of 100 characters")
	}

	now := time.Now()
	return &Helper{
		externalIdentityID: externalIdentityID,
		displayName:        displayName,
		role:               authorization.RoleCommunity,
		reputation:         0,
		isAvailable:        false,
		expertise:          []dvo.Category{},
		kudosCount:         0,
		achievements:       []string{},
		xp:                 0,
		level:              initialLevel,
		nextLevelXP:        initialNextLevelXP,
		applicationStatus:  vo.ApplicationNone,
		trainingCompleted:  false,
		version:            1,
		createdAt:          now,
		updatedAt:          now,
	}, nil
}

func ReconstructHelper(
	id string,
	externalIdentityID string,
	displayName string,
	bio string,
	role authorization.Role,
	reputation float64,
	isAvailable bool,
	expertise []dvo.Category,
	kudosCount int,
	achievements []string,
	xp int,
	level int,
	nextLevelXP int,
	applicationStatus vo.ApplicationStatus,
	trainingCompleted bool,
	quizScore *int,
	version int,
	createdAt, updatedAt time.Time,
) (*Helper, error) {
	if len(id) == 0 {
		return nil, fmt.Errorf("helper ID is required")
	}
	if len(externalIdentityID) == 0 {
		return nil, fmt.Errorf("external identity ID is required")
	}
	if len(displayName) == 0 {
		return nil, fmt.Errorf("display name is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role")
	}
	if !applicationStatus.IsValid() {
		return nil, fmt.Errorf("invalid application status")
	}
	if kudosCount < 0 {
		return nil, fmt.Errorf("kudos count cannot be negative")
	}

	if expertise == nil {
		expertise = []dvo.Category{}
	}
	if achievements == nil {
		achievements = []string{}
	}

	return &Helper{
		id:                 id,
		externalIdentityID: externalIdentityID,
		displayName:        displayName,
		bio:                bio,
		role:               role,
		reputation:         reputation,
		isAvailable:        isAvailable,
		expertise:          expertise,
		kudosCount:         kudosCount,
		achievements:       achievements,
		xp:                 xp,
		level:              level,
		nextLevelXP:        nextLevelXP,
		applicationStatus:  applicationStatus,
		trainingCompleted:  trainingCompleted,
		quizScore:          quizScore,
		version:            version,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}, nil
}

func (h *Helper) ID() string                               { return h.id }
func (h *Helper) ExternalIdentityID() string               { return h.externalIdentityID }
func (h *Helper) DisplayName() string                      { return h.displayName }
func (h *Helper) Bio() string                              { return h.bio }
func (h *Helper) Role() authorization.Role                 { return h.role }
func (h *Helper) Reputation() float64                      { return h.reputation }
func (h *Helper) IsAvailable() bool                        { return h.isAvailable }
func (h *Helper) KudosCount() int                          { return h.kudosCount }
func (h *Helper) XP() int                                  { return h.xp }
func (h *Helper) Level() int                               { return h.level }
func (h *Helper) NextLevelXP() int                         { return h.nextLevelXP }
func (h *Helper) ApplicationStatus() vo.ApplicationStatus  { return h.applicationStatus }
func (h *Helper) TrainingCompleted() bool                  { return h.trainingCompleted }
func (h *Helper) QuizScore() *int                          { return h.quizScore }
func (h *Helper) Version() int                             { return h.version }
func (h *Helper) CreatedAt() time.Time                     { return h.createdAt }
func (h *Helper) UpdatedAt() time.Time                     { return h.updatedAt }

func (h *Helper) Expertise() []dvo.Category {
	expertiseCopy := make([]dvo.Category, len(h.expertise))
	copy(expertiseCopy, h.expertise)
	return expertiseCopy
}

// Achievements returns the ordered achievement IDs earned so far.
func (h *Helper) Achievements() []string {
	achievementsCopy := make([]string, len(h.achievements))
	copy(achievementsCopy, h.achievements)
	return achievementsCopy
}

func (h *Helper) SetID(id string) error {
	if len(h.id) > 0 {
		return fmt.Errorf("helper ID is already set")
	}
	if len(id) == 0 {
		return fmt.Errorf("helper ID cannot be empty")
	}
	h.id = id
	return nil
}

// UpdateProfile replaces the mutable profile fields.
func (h *Helper) UpdateProfile(displayName, bio string, expertise []dvo.Category) error {
	if len(displayName) == 0 {
		return fmt.Errorf("display name is required")
	}
	if len(displayName) > 100 {
		return fmt.Errorf("display name exceeds maximum length of 100 characters")
	}
	if len(bio) > 2000 {
		return fmt.Errorf("bio exceeds maximum length of 2000 characters")
	}
	for _, e := range expertise {
		if !e.IsValid() {
			return fmt.Errorf("invalid expertise category: %s", e)
		}
	}

	h.displayName = displayName
	h.bio = bio
	if expertise == nil {
		expertise = []dvo.Category{}
	}
	h.expertise = expertise
	h.touch()
	return nil
}

func (h *Helper) SetAvailability(isAvailable bool) {
	if h.isAvailable == isAvailable {
		return
	}
	h.isAvailable = isAvailable
	h.touch()
}

// HasAchievement reports whether the achievement has already been earned.
func (h *Helper) HasAchievement(achievementID string) bool {
	for _, a := range h.achievements {
		if a == achievementID {
			return true
		}
	}
	return false
}

// GrantAchievement appends the achievement ID if not already present.
// The set only ever grows.
func (h *Helper) GrantAchievement(achievementID string) bool {
	if len(achievementID) == 0 || h.HasAchievement(achievementID) {
		return false
	}
	h.achievements = append(h.achievements, achievementID)
	h.touch()
	return true
}

// ReceiveKudos increments the kudos counter by one.
func (h *Helper) ReceiveKudos() {
	h.kudosCount++
	h.touch()
}

// AwardXP adds experience points and applies level-ups. Leftover XP
// carries into the next level; the requirement grows with each level.
func (h *Helper) AwardXP(amount int) error {
	if amount <= 0 {
		return fmt.Errorf("XP amount must be positive")
	}

	h.xp += amount
	for h.xp >= h.nextLevelXP {
		h.xp -= h.nextLevelXP
		h.level++
		h.nextLevelXP = h.level * initialNextLevelXP
	}
	h.touch()
	return nil
}

// CompleteTraining records a passed training quiz.
func (h *Helper) CompleteTraining(score int) error {
	if score < 0 || score > 100 {
		return fmt.Errorf("quiz score must be between 0 and 100")
	}
	h.trainingCompleted = true
	h.quizScore = &score
	h.touch()
	return nil
}

// SubmitApplication moves the certification application to pending.
func (h *Helper) SubmitApplication() error {
	if !h.applicationStatus.CanTransitionTo(vo.ApplicationPending) {
		return fmt.Errorf("cannot submit application with status %s", h.applicationStatus)
	}
	h.applicationStatus = vo.ApplicationPending
	h.touch()
	return nil
}

// ReviewApplication approves or rejects a pending application.
// Approval promotes a community helper to certified.
func (h *Helper) ReviewApplication(approve bool) error {
	target := vo.ApplicationRejected
	if approve {
		target = vo.ApplicationApproved
	}
	if !h.applicationStatus.CanTransitionTo(target) {
		return fmt.Errorf("cannot review application with status %s", h.applicationStatus)
	}

	h.applicationStatus = target
	if approve && h.role == authorization.RoleCommunity {
		h.role = authorization.RoleCertified
	}
	h.touch()
	return nil
}

// ChangeRole sets the helper's role directly, for admin use.
func (h *Helper) ChangeRole(role authorization.Role) error {
	if !role.IsValid() {
		return fmt.Errorf("invalid role: %s", role)
	}
	if h.role == role {
		return nil
	}
	h.role = role
	h.touch()
	return nil
}

func (h *Helper) AdjustReputation(delta float64) {
	h.reputation += delta
	if h.reputation < 0 {
		h.reputation = 0
	}
	h.touch()
}

func (h *Helper) GetOwnerID() string {
	return h.id
}

func (h *Helper) touch() {
	h.updatedAt = time.Now()
	h.version++
}
