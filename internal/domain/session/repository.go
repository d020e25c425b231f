package session

import "context"

type SessionRepository interface {
	Save(ctx context.Context, session *Session) error
	Update(ctx context.Context, session *Session) error
	GetByID(ctx context.Context, sessionID string) (*Session, error)
	GetByDilemmaID(ctx context.Context, dilemmaID string) (*Session, error)

	// GetByParticipant returns sessions where the actor is either the
	// seeker or the helper, most recently started first.
	GetByParticipant(ctx context.Context, actorID string) ([]*Session, error)

	CountByHelperID(ctx context.Context, helperID string) (int64, error)

	// MarkKudosGiven flips kudos_given to true only if it was false,
	// reporting whether this call won the flip.
	MarkKudosGiven(ctx context.Context, sessionID string) (bool, error)
}
