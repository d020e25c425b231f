package session

import (
	"fmt"
	"time"
)

// Session records one helper accepting one dilemma. The helper display
// name is denormalized at acceptance time so the session history keeps
// the name the seeker actually saw.
type Session struct {
	id                string
	dilemmaID         string
	seekerToken       string
	helperID          string
	helperDisplayName string
	isFavorited       bool
	kudosGiven        bool
	summary           string
	startedAt         time.Time
	endedAt           *time.Time
	version           int
	createdAt         time.Time
	updatedAt         time.Time
}

func NewSession(dilemmaID, seekerToken, helperID, helperDisplayName string) (*Session, error) {
	if len(dilemmaID) == 0 {
		return nil, fmt.Errorf("dilemma ID is required")
	}
	if len(seekerToken) == 0 {
		return nil, fmt.Errorf("seeker token is required")
	}
	if len(helperID) == 0 {
		return nil, fmt.Errorf("helper ID is required")
	}
	if len(helperDisplayName) == 0 {
		return nil, fmt.Errorf("helper display name is required")
	}

	now := time.Now()
	return &Session{
		dilemmaID:         dilemmaID,
		seekerToken:       seekerToken,
		helperID:          helperID,
		helperDisplayName: helperDisplayName,
		startedAt:         now,
		version:           1,
		createdAt:         now,
		updatedAt:         now,
	}, nil
}

func ReconstructSession(
	id string,
	dilemmaID string,
	seekerToken string,
	helperID string,
	helperDisplayName string,
	isFavorited bool,
	kudosGiven bool,
	summary string,
	startedAt time.Time,
	endedAt *time.Time,
	version int,
	createdAt, updatedAt time.Time,
) (*Session, error) {
	if len(id) == 0 {
		return nil, fmt.Errorf("session ID is required")
	}
	if len(dilemmaID) == 0 {
		return nil, fmt.Errorf("dilemma ID is required")
	}
	if len(helperID) == 0 {
		return nil, fmt.Errorf("helper ID is required")
	}

	return &Session{
		id:                id,
		dilemmaID:         dilemmaID,
		seekerToken:       seekerToken,
		helperID:          helperID,
		helperDisplayName: helperDisplayName,
		isFavorited:       isFavorited,
		kudosGiven:        kudosGiven,
		summary:           summary,
		startedAt:         startedAt,
		endedAt:           endedAt,
		version:           version,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}, nil
}

func (s *Session) ID() string                 { return s.id }
func (s *Session) DilemmaID() string          { return s.dilemmaID }
func (s *Session) SeekerToken() string        { return s.seekerToken }
func (s *Session) HelperID() string           { return s.helperID }
func (s *Session) HelperDisplayName() string  { return s.helperDisplayName }
func (s *Session) IsFavorited() bool          { return s.isFavorited }
func (s *Session) KudosGiven() bool           { return s.kudosGiven }
func (s *Session) Summary() string            { return s.summary }
func (s *Session) StartedAt() time.Time       { return s.startedAt }
func (s *Session) EndedAt() *time.Time        { return s.endedAt }
func (s *Session) Version() int               { return s.version }
func (s *Session) CreatedAt() time.Time       { return s.createdAt }
func (s *Session) UpdatedAt() time.Time       { return s.updatedAt }

func (s *Session) SetID(id string) error {
	if len(s.id) > 0 {
		return fmt.Errorf("session ID is already set")
	}
	if len(id) == 0 {
		return fmt.Errorf("session ID cannot be empty")
	}
	s.id = id
	return nil
}

// ToggleFavorite flips the seeker's favorite mark.
func (s *Session) ToggleFavorite(seekerToken string) error {
	if s.seekerToken != seekerToken {
		return fmt.Errorf("only the session's seeker may favorite it")
	}
	s.isFavorited = !s.isFavorited
	s.touch()
	return nil
}

// GiveKudos marks the session as thanked. Kudos can be given once per
// session; a second attempt is rejected so the helper counter is never
// double-incremented.
func (s *Session) GiveKudos() error {
	if s.kudosGiven {
		return fmt.Errorf("kudos already given for this session")
	}
	s.kudosGiven = true
	s.touch()
	return nil
}

func (s *Session) SetSummary(summary string) error {
	if len(summary) == 0 {
		return fmt.Errorf("summary cannot be empty")
	}
	s.summary = summary
	s.touch()
	return nil
}

// End closes the session. Ending an already ended session is a no-op.
func (s *Session) End() {
	if s.endedAt != nil {
		return
	}
	now := time.Now()
	s.endedAt = &now
	s.touch()
}

func (s *Session) IsEnded() bool {
	return s.endedAt != nil
}

// Involves reports whether the given actor participated in the session.
func (s *Session) Involves(actorID string) bool {
	return s.seekerToken == actorID || s.helperID == actorID
}

func (s *Session) GetOwnerID() string {
	return s.seekerToken
}

func (s *Session) touch() {
	s.updatedAt = time.Now()
	s.version++
}
