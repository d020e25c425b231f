package helper

import (
	"context"

	"github.com/kindredhq/kindred/internal/shared/authorization"
)

type HelperRepository interface {
	Save(ctx context.Context, helper *Helper) error
	Update(ctx context.Context, helper *Helper) error
	GetByID(ctx context.Context, helperID string) (*Helper, error)
	GetByExternalIdentityID(ctx context.Context, externalIdentityID string) (*Helper, error)
	List(ctx context.Context, filter HelperFilter) ([]*Helper, int64, error)
	CountAvailable(ctx context.Context) (int64, error)

	// IncrementKudos bumps the kudos counter atomically without a
	// read-modify-write on the whole row.
	IncrementKudos(ctx context.Context, helperID string) error
}

type HelperFilter struct {
	Role        *authorization.Role
	IsAvailable *bool
	Expertise   string
	Page        int
	PageSize    int
}
