package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/facet"
)

// SearchInput gathers everything a search screen sends for one recomputation.
type SearchInput struct {
	Route     facet.RouteParams
	Committed *facet.Selection // Selection applied from the filter modal, nil until applied.
	SortOrder entity.SortOrder
	IsDeal    bool
	Limit     int // Zero means the configured default; values above the configured maximum are capped.
}

// SearchResult is the outcome of one search.
type SearchResult struct {
	Selection facet.Selection   `json:"selection"`
	Products  []*entity.Product `json:"products"`
	Sequence  uint64            `json:"sequence,omitempty"`
}

// FilterDraftInput replays filter modal interactions against a committed selection.
type FilterDraftInput struct {
	Route     facet.RouteParams
	Committed *facet.Selection
	Actions   []facet.Action
}

// FilterDraftResult reports the modal state after the replay.
type FilterDraftResult struct {
	Draft     facet.Selection  `json:"draft"`
	Open      bool             `json:"open"`
	Committed *facet.Selection `json:"committed,omitempty"` // Set when the replay ended with an apply.
}

// SearchUsecase composes facet selections into catalog queries.
type SearchUsecase interface {
	// Search issues exactly one catalog fetch. When clientID is not empty a newer
	// search from the same client cancels this one, which then fails with
	// ErrSearchSuperseded.
	Search(ctx context.Context, clientID string, input *SearchInput) (*SearchResult, error)

	EvaluateFilterDraft(ctx context.Context, input *FilterDraftInput) (*FilterDraftResult, error)
}
