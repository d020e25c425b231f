package feed

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"github.com/kindredhq/kindred/internal/domain/dilemma"
	vo "github.com/kindredhq/kindred/internal/domain/dilemma/valueobjects"
	"github.com/kindredhq/kindred/internal/shared/utils"
)

// FeedPageSize is the cumulative page window of the community feed: page N
// exposes the first N*FeedPageSize matching dilemmas.
const FeedPageSize = 10

// ColdStartLimit caps the for-you fallback for viewers without post history.
const ColdStartLimit = 10

type SortOption string

const (
	SortNewest       SortOption = "newest"
	SortMostSupport  SortOption = "most-support"
	SortNeedsSupport SortOption = "needs-support"
)

func (s SortOption) IsValid() bool {
	switch s {
	case SortNewest, SortMostSupport, SortNeedsSupport:
		return true
	}
	return false
}

// NewSortOption parses a sort value, falling back to newest for anything
// unrecognized so a stale client never breaks the feed.
func NewSortOption(value string) SortOption {
	s := SortOption(value)
	if !s.IsValid() {
		return SortNewest
	}
	return s
}

// ViewContext is everything the composer needs to know about the viewer:
// who they are, which category tab and sort they picked, what they typed
// into search, how far they have scrolled, and whom they have blocked.
type ViewContext struct {
	ViewerToken    string
	Category       string
	Sort           SortOption
	Search         string
	Page           int
	BlockedUserIDs map[string]bool
}

// Page holds one composed feed window.
type Page struct {
	Items   []*dilemma.Dilemma
	Total   int
	HasMore bool
}

// ProjectCommunity composes the community feed: eligibility, category filter,
// case-insensitive content search, sort, then the cumulative page window.
func ProjectCommunity(dilemmas []*dilemma.Dilemma, vctx ViewContext) Page {
	filtered := make([]*dilemma.Dilemma, 0, len(dilemmas))

	// cases.Caser is stateful, so each call gets its own folder.
	folder := cases.Fold()
	needle := ""
	if vctx.Search != "" {
		needle = folder.String(vctx.Search)
	}

	for _, d := range dilemmas {
		if !d.IsEligibleForCommunityFeed() {
			continue
		}
		if vctx.BlockedUserIDs[d.AuthorToken()] {
			continue
		}
		if vctx.Category != "" && vctx.Category != vo.FilterAll && string(d.Category()) != vctx.Category {
			continue
		}
		if needle != "" && !strings.Contains(folder.String(d.Content()), needle) {
			continue
		}
		filtered = append(filtered, d)
	}

	sortDilemmas(filtered, vctx.Sort)

	page := vctx.Page
	if page < 1 {
		page = 1
	}
	end := utils.CumulativeWindow(len(filtered), page, FeedPageSize)

	return Page{
		Items:   filtered[:end],
		Total:   len(filtered),
		HasMore: len(filtered) > end,
	}
}

// ProjectForYou composes the personalized feed from the viewer's post history.
//
// A viewer with no history gets the cold-start branch: up to ColdStartLimit
// eligible dilemmas not their own, least supported first, surfacing the posts
// most in need of attention. A viewer with history gets every eligible
// dilemma in a category they have posted about, newest first, unbounded. The
// two branches order differently on purpose and must stay separate.
func ProjectForYou(dilemmas []*dilemma.Dilemma, viewerToken string, history []*dilemma.Dilemma) []*dilemma.Dilemma {
	eligible := make([]*dilemma.Dilemma, 0, len(dilemmas))
	for _, d := range dilemmas {
		if !d.IsEligibleForCommunityFeed() {
			continue
		}
		if d.AuthorToken() == viewerToken {
			continue
		}
		eligible = append(eligible, d)
	}

	if len(history) == 0 {
		sortDilemmas(eligible, SortNeedsSupport)
		if len(eligible) > ColdStartLimit {
			eligible = eligible[:ColdStartLimit]
		}
		return eligible
	}

	seen := make(map[vo.Category]bool, len(history))
	for _, d := range history {
		seen[d.Category()] = true
	}

	matched := eligible[:0]
	for _, d := range eligible {
		if seen[d.Category()] {
			matched = append(matched, d)
		}
	}
	sortDilemmas(matched, SortNewest)
	return matched
}

// ProjectReportedQueue composes the moderator queue: every reported dilemma
// that has not already been removed, in insertion order.
func ProjectReportedQueue(dilemmas []*dilemma.Dilemma) []*dilemma.Dilemma {
	queue := make([]*dilemma.Dilemma, 0)
	for _, d := range dilemmas {
		if d.IsReported() && !d.Status().IsRemoved() {
			queue = append(queue, d)
		}
	}
	return queue
}

func sortDilemmas(ds []*dilemma.Dilemma, option SortOption) {
	switch option {
	case SortMostSupport:
		sort.SliceStable(ds, func(i, j int) bool {
			return ds[i].SupportCount() > ds[j].SupportCount()
		})
	case SortNeedsSupport:
		sort.SliceStable(ds, func(i, j int) bool {
			return ds[i].SupportCount() < ds[j].SupportCount()
		})
	default:
		sort.SliceStable(ds, func(i, j int) bool {
			return ds[i].CreatedAt().After(ds[j].CreatedAt())
		})
	}
}
