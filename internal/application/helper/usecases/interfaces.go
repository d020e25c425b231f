package usecases

import "context"

// PresenceCache mirrors helper availability into a shared TTL store so the
// public online count survives across instances without hitting the database.
type PresenceCache interface {
	SetAvailable(ctx context.Context, helperID string, available bool) error
	OnlineCount(ctx context.Context) (int64, error)
}
