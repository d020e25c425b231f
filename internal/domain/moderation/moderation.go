package moderation

import (
	"fmt"
	"time"
)

// Moderation action kinds recorded in a user's history.
const (
	ActionPostRemoved     = "Post Removed"
	ActionReportDismissed = "Report Dismissed"
	ActionWarningIssued   = "Warning Issued"
	ActionUserBanned      = "User Banned"
)

// Action is one entry in a user's moderation history.
type Action struct {
	ID               string
	UserID           string
	Action           string
	Reason           string
	RelatedContentID string
	ModeratorID      string
	Timestamp        time.Time
}

// Block records one user hiding another's posts from their feeds.
type Block struct {
	BlockerID string
	BlockedID string
	Timestamp time.Time
}

func NewBlock(blockerID, blockedID string) (*Block, error) {
	if len(blockerID) == 0 || len(blockedID) == 0 {
		return nil, fmt.Errorf("blocker and blocked IDs are required")
	}
	if blockerID == blockedID {
		return nil, fmt.Errorf("cannot block yourself")
	}
	return &Block{
		BlockerID: blockerID,
		BlockedID: blockedID,
		Timestamp: time.Now(),
	}, nil
}

// UserStatus aggregates the standing of a user token or helper ID.
type UserStatus struct {
	UserID     string
	Warnings   int
	IsBanned   bool
	BanReason  string
	BanExpires *time.Time
}

// IsCurrentlyBanned accounts for ban expiry. A ban without expiry is
// permanent.
func (s UserStatus) IsCurrentlyBanned(now time.Time) bool {
	if !s.IsBanned {
		return false
	}
	if s.BanExpires == nil {
		return true
	}
	return now.Before(*s.BanExpires)
}

// Warn returns the status after one more warning.
func (s UserStatus) Warn() UserStatus {
	s.Warnings++
	return s
}

// Ban returns the status after a ban. durationHours <= 0 means permanent.
func (s UserStatus) Ban(reason string, durationHours int, now time.Time) (UserStatus, error) {
	if len(reason) == 0 {
		return s, fmt.Errorf("ban reason is required")
	}

	s.IsBanned = true
	s.BanReason = reason
	if durationHours > 0 {
		expires := now.Add(time.Duration(durationHours) * time.Hour)
		s.BanExpires = &expires
	} else {
		s.BanExpires = nil
	}
	return s, nil
}
