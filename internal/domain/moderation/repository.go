package moderation

import "context"

type ModerationRepository interface {
	RecordAction(ctx context.Context, action *Action) error
	GetHistory(ctx context.Context, userID string) ([]*Action, error)

	GetUserStatus(ctx context.Context, userID string) (UserStatus, error)
	SaveUserStatus(ctx context.Context, status UserStatus) error
}

type BlockRepository interface {
	Save(ctx context.Context, block *Block) error
	Delete(ctx context.Context, blockerID, blockedID string) error
	GetBlockedIDs(ctx context.Context, blockerID string) ([]string, error)
	Exists(ctx context.Context, blockerID, blockedID string) (bool, error)
}
