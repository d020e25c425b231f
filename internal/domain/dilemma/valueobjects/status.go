package valueobjects

import "fmt"

type DilemmaStatus string

const (
	StatusActive             DilemmaStatus = "active"
	StatusDirectRequest      DilemmaStatus = "direct_request"
	StatusInProgress         DilemmaStatus = "in_progress"
	StatusResolved           DilemmaStatus = "resolved"
	StatusRemovedByModerator DilemmaStatus = "removed_by_moderator"
)

var validDilemmaStatuses = map[DilemmaStatus]bool{
	StatusActive:             true,
	StatusDirectRequest:      true,
	StatusInProgress:         true,
	StatusResolved:           true,
	StatusRemovedByModerator: true,
}

var dilemmaStatusTransitions = map[DilemmaStatus][]DilemmaStatus{
	StatusActive: {
		StatusInProgress,
		StatusRemovedByModerator,
	},
	StatusDirectRequest: {
		StatusInProgress,
		StatusActive,
		StatusRemovedByModerator,
	},
	StatusInProgress: {
		StatusResolved,
		StatusRemovedByModerator,
	},
	StatusResolved: {
		StatusRemovedByModerator,
	},
	StatusRemovedByModerator: {},
}

func (ds DilemmaStatus) String() string {
	return string(ds)
}

func (ds DilemmaStatus) IsValid() bool {
	return validDilemmaStatuses[ds]
}

func (ds DilemmaStatus) CanTransitionTo(newStatus DilemmaStatus) bool {
	allowedTransitions, ok := dilemmaStatusTransitions[ds]
	if !ok {
		return false
	}

	for _, allowed := range allowedTransitions {
		if allowed == newStatus {
			return true
		}
	}
	return false
}

func (ds DilemmaStatus) IsActive() bool {
	return ds == StatusActive
}

func (ds DilemmaStatus) IsDirectRequest() bool {
	return ds == StatusDirectRequest
}

func (ds DilemmaStatus) IsInProgress() bool {
	return ds == StatusInProgress
}

func (ds DilemmaStatus) IsResolved() bool {
	return ds == StatusResolved
}

func (ds DilemmaStatus) IsRemoved() bool {
	return ds == StatusRemovedByModerator
}

// IsAcceptable reports whether a helper may still accept the dilemma.
func (ds DilemmaStatus) IsAcceptable() bool {
	return ds == StatusActive || ds == StatusDirectRequest
}

func NewDilemmaStatus(s string) (DilemmaStatus, error) {
	ds := DilemmaStatus(s)
	if !ds.IsValid() {
		return "", fmt.Errorf("invalid dilemma status: %s", s)
	}
	return ds, nil
}
