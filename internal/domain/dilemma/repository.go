package dilemma

import (
	"context"

	vo "github.com/kindredhq/kindred/internal/domain/dilemma/valueobjects"
)

type DilemmaRepository interface {
	Save(ctx context.Context, dilemma *Dilemma) error
	Update(ctx context.Context, dilemma *Dilemma) error
	GetByID(ctx context.Context, dilemmaID string) (*Dilemma, error)
	List(ctx context.Context, filters DilemmaFilter) ([]*Dilemma, int64, error)
	GetByAuthorToken(ctx context.Context, authorToken string) ([]*Dilemma, error)
	GetReported(ctx context.Context) ([]*Dilemma, error)

	// AcceptIfPending performs the guarded status transition to in_progress.
	// It succeeds only while the stored status is still active or
	// direct_request, so two concurrent accepts cannot both win.
	AcceptIfPending(ctx context.Context, dilemmaID, helperID string) (bool, error)

	// ToggleSupport flips the viewer's support mark and atomically adjusts
	// the shared support count. Returns the new supported state and count.
	ToggleSupport(ctx context.Context, dilemmaID, viewerToken string) (bool, int, error)

	// IsSupportedBy reports whether the viewer currently supports the dilemma.
	IsSupportedBy(ctx context.Context, dilemmaID, viewerToken string) (bool, error)

	// SupportedIDs returns the subset of the given dilemma IDs the viewer
	// supports, for feed projection.
	SupportedIDs(ctx context.Context, viewerToken string, dilemmaIDs []string) (map[string]bool, error)
}

type DilemmaFilter struct {
	Status      *vo.DilemmaStatus
	Category    *vo.Category
	AuthorToken *string
	Reported    *bool
	Search      string
	Page        int
	PageSize    int
	SortBy      string
	SortOrder   string
}
