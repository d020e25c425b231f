package valueobjects

import "fmt"

// ApplicationStatus tracks a helper's certification application.
type ApplicationStatus string

const (
	ApplicationNone     ApplicationStatus = "none"
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
)

var validApplicationStatuses = map[ApplicationStatus]bool{
	ApplicationNone:     true,
	ApplicationPending:  true,
	ApplicationApproved: true,
	ApplicationRejected: true,
}

var applicationTransitions = map[ApplicationStatus][]ApplicationStatus{
	ApplicationNone:     {ApplicationPending},
	ApplicationPending:  {ApplicationApproved, ApplicationRejected},
	ApplicationApproved: {},
	ApplicationRejected: {ApplicationPending},
}

func (as ApplicationStatus) String() string {
	return string(as)
}

func (as ApplicationStatus) IsValid() bool {
	return validApplicationStatuses[as]
}

func (as ApplicationStatus) CanTransitionTo(newStatus ApplicationStatus) bool {
	for _, allowed := range applicationTransitions[as] {
		if allowed == newStatus {
			return true
		}
	}
	return false
}

func (as ApplicationStatus) IsPending() bool {
	return as == ApplicationPending
}

func (as ApplicationStatus) IsApproved() bool {
	return as == ApplicationApproved
}

func NewApplicationStatus(s string) (ApplicationStatus, error) {
	as := ApplicationStatus(s)
	if !as.IsValid() {
		return "", fmt.Errorf("invalid application status: %s", s)
	}
	return as, nil
}
