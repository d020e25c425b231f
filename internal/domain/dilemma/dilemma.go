package dilemma

import (
	"fmt"
	"time"

	vo "github.com/kindredhq/kindred/internal/domain/dilemma/valueobjects"
)

// ModerationRecord captures the moderator action taken on a dilemma.
// The record persists even after a removal; dilemmas are never hard-deleted.
type ModerationRecord struct {
	Action      string
	ModeratorID string
	Timestamp   time.Time
}

const (
	ModerationActionRemove  = "remove"
	ModerationActionDismiss = "dismiss"
)

type Dilemma struct {
	id                string
	authorToken       string
	category          vo.Category
	content           string
	status            vo.DilemmaStatus
	supportCount      int
	isReported        bool
	reportReason      string
	assignedHelperID  *string
	requestedHelperID *string
	resolvedBySeeker  bool
	summary           string
	moderationRecord  *ModerationRecord
	version           int
	createdAt         time.Time
	updatedAt         time.Time
}

func NewDilemma(authorToken string, category vo.Category, content string) (*Dilemma, error) {
	if len(authorToken) == 0 {
		return nil, fmt.Errorf("author token is required")
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("content is required")
	}
	if len(content) > 5000 {
		return nil, fmt.Errorf("content exceeds maximum length of 5000 characters")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category")
	}

	now := time.Now()
	return &Dilemma{
		authorToken: authorToken,
		category:    category,
		content:     content,
		status:      vo.StatusActive,
		version:     1,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// NewDirectRequest creates a dilemma addressed to a specific helper.
func NewDirectRequest(authorToken string, category vo.Category, content, requestedHelperID string) (*Dilemma, error) {
	if len(requestedHelperID) == 0 {
		return nil, fmt.Errorf("requested helper ID is required")
	}

	d, err := NewDilemma(authorToken, category, content)
	if err != nil {
		return nil, err
	}

	d.status = vo.StatusDirectRequest
	d.requestedHelperID = &requestedHelperID
	return d, nil
}

func ReconstructDilemma(
	id string,
	authorToken string,
	category vo.Category,
	content string,
	status vo.DilemmaStatus,
	supportCount int,
	isReported bool,
	reportReason string,
	assignedHelperID *string,
	requestedHelperID *string,
	resolvedBySeeker bool,
	summary string,
	moderationRecord *ModerationRecord,
	version int,
	createdAt, updatedAt time.Time,
) (*Dilemma, error) {
	if len(id) == 0 {
		return nil, fmt.Errorf("dilemma ID is required")
	}
	if len(authorToken) == 0 {
		return nil, fmt.Errorf("author token is required")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if supportCount < 0 {
		return nil, fmt.Errorf("support count cannot be negative")
	}

	return &Dilemma{
		id:                id,
		authorToken:       authorToken,
		category:          category,
		content:           content,
		status:            status,
		supportCount:      supportCount,
		isReported:        isReported,
		reportReason:      reportReason,
		assignedHelperID:  assignedHelperID,
		requestedHelperID: requestedHelperID,
		resolvedBySeeker:  resolvedBySeeker,
		summary:           summary,
		moderationRecord:  moderationRecord,
		version:           version,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}, nil
}

func (d *Dilemma) ID() string                          { return d.id }
func (d *Dilemma) AuthorToken() string                 { return d.authorToken }
func (d *Dilemma) Category() vo.Category               { return d.category }
func (d *Dilemma) Content() string                     { return d.content }
func (d *Dilemma) Status() vo.DilemmaStatus            { return d.status }
func (d *Dilemma) SupportCount() int                   { return d.supportCount }
func (d *Dilemma) IsReported() bool                    { return d.isReported }
func (d *Dilemma) ReportReason() string                { return d.reportReason }
func (d *Dilemma) AssignedHelperID() *string           { return d.assignedHelperID }
func (d *Dilemma) RequestedHelperID() *string          { return d.requestedHelperID }
func (d *Dilemma) ResolvedBySeeker() bool              { return d.resolvedBySeeker }
func (d *Dilemma) Summary() string                     { return d.summary }
func (d *Dilemma) ModerationRecord() *ModerationRecord { return d.moderationRecord }
func (d *Dilemma) Version() int                        { return d.version }
func (d *Dilemma) CreatedAt() time.Time                { return d.createdAt }
func (d *Dilemma) UpdatedAt() time.Time                { return d.updatedAt }

func (d *Dilemma) SetID(id string) error {
	if len(d.id) > 0 {
		return fmt.Errorf("dilemma ID is already set")
	}
	if len(id) == 0 {
		return fmt.Errorf("dilemma ID cannot be empty")
	}
	d.id = id
	return nil
}

// Accept assigns the dilemma to a helper and moves it in progress.
// Allowed only from active or direct_request.
func (d *Dilemma) Accept(helperID string) error {
	if len(helperID) == 0 {
		return fmt.Errorf("helper ID is required")
	}
	if !d.status.IsAcceptable() {
		return fmt.Errorf("cannot accept dilemma with status %s", d.status)
	}
	if d.status.IsDirectRequest() && d.requestedHelperID != nil && *d.requestedHelperID != helperID {
		return fmt.Errorf("dilemma is requested for a different helper")
	}

	d.status = vo.StatusInProgress
	d.assignedHelperID = &helperID
	d.requestedHelperID = nil
	d.touch()
	return nil
}

// Decline reverts a direct request back to the open pool.
// Declining an already active dilemma is a no-op.
func (d *Dilemma) Decline(helperID string) error {
	if d.status.IsActive() {
		return nil
	}
	if !d.status.IsDirectRequest() {
		return fmt.Errorf("cannot decline dilemma with status %s", d.status)
	}
	if d.requestedHelperID != nil && *d.requestedHelperID != helperID {
		return fmt.Errorf("only the requested helper may decline")
	}

	d.status = vo.StatusActive
	d.requestedHelperID = nil
	d.touch()
	return nil
}

// Resolve closes the dilemma on behalf of its seeker. Ownership is
// checked by token equality.
func (d *Dilemma) Resolve(seekerToken string) error {
	if d.authorToken != seekerToken {
		return fmt.Errorf("only the original seeker may resolve")
	}
	if !d.status.CanTransitionTo(vo.StatusResolved) {
		return fmt.Errorf("cannot resolve dilemma with status %s", d.status)
	}

	d.status = vo.StatusResolved
	d.resolvedBySeeker = true
	d.touch()
	return nil
}

// Report flags the dilemma without changing its lifecycle status.
func (d *Dilemma) Report(reason string) error {
	if len(reason) == 0 {
		return fmt.Errorf("report reason is required")
	}

	d.isReported = true
	d.reportReason = reason
	d.touch()
	return nil
}

// Remove is the moderator action that hides the dilemma from all feeds.
// The record persists for audit purposes.
func (d *Dilemma) Remove(moderatorID string) error {
	if len(moderatorID) == 0 {
		return fmt.Errorf("moderator ID is required")
	}
	if d.status.IsRemoved() {
		return nil
	}

	d.status = vo.StatusRemovedByModerator
	d.isReported = false
	d.reportReason = ""
	d.moderationRecord = &ModerationRecord{
		Action:      ModerationActionRemove,
		ModeratorID: moderatorID,
		Timestamp:   time.Now(),
	}
	d.touch()
	return nil
}

// DismissReport clears the report flag leaving the lifecycle status unchanged.
func (d *Dilemma) DismissReport(moderatorID string) error {
	if len(moderatorID) == 0 {
		return fmt.Errorf("moderator ID is required")
	}

	d.isReported = false
	d.reportReason = ""
	d.moderationRecord = &ModerationRecord{
		Action:      ModerationActionDismiss,
		ModeratorID: moderatorID,
		Timestamp:   time.Now(),
	}
	d.touch()
	return nil
}

// ApplySupport adjusts the support count by delta, used when a viewer
// toggles their support mark. The count never goes negative.
func (d *Dilemma) ApplySupport(delta int) error {
	if delta != 1 && delta != -1 {
		return fmt.Errorf("support delta must be +1 or -1")
	}
	if d.supportCount+delta < 0 {
		return fmt.Errorf("support count cannot go negative")
	}

	d.supportCount += delta
	d.touch()
	return nil
}

// SetSummary attaches AI-generated summary text. A failed summarization
// leaves the dilemma untouched, so this only accepts non-empty text.
func (d *Dilemma) SetSummary(summary string) error {
	if len(summary) == 0 {
		return fmt.Errorf("summary cannot be empty")
	}
	d.summary = summary
	d.touch()
	return nil
}

// IsEligibleForCommunityFeed reports whether the dilemma may appear in
// the public community feed.
func (d *Dilemma) IsEligibleForCommunityFeed() bool {
	return d.status.IsActive() && d.assignedHelperID == nil && !d.isReported
}

func (d *Dilemma) GetOwnerID() string {
	return d.authorToken
}

func (d *Dilemma) touch() {
	d.updatedAt = time.Now()
	d.version++
}

func (d *Dilemma) Validate() error {
	if len(d.authorToken) == 0 {
		return fmt.Errorf("author token is required")
	}
	if len(d.content) == 0 {
		return fmt.Errorf("content is required")
	}
	if !d.category.IsValid() {
		return fmt.Errorf("invalid category")
	}
	if !d.status.IsValid() {
		return fmt.Errorf("invalid status")
	}
	if d.supportCount < 0 {
		return fmt.Errorf("support count cannot be negative")
	}
	if d.isReported && len(d.reportReason) == 0 {
		return fmt.Errorf("report reason is required when reported")
	}
	return nil
}
