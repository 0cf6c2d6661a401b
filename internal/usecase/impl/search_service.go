package impl

import (
	"context"
	"log/slog"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/facet"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

// searchService implements the SearchUsecase interface.
type searchService struct {
	txManager repository.TransactionManager
	catalog   *config.CatalogConfig
	tracker   *latestTracker
	logger    *slog.Logger
}

// NewSearchService is the constructor for searchService.
func NewSearchService(
	txManager repository.TransactionManager,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.SearchUsecase {
	return &searchService{
		txManager: txManager,
		catalog:   cfg.Catalog,
		tracker:   newLatestTracker(),
		logger:    logger,
	}
}

func (srv *searchService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// pageLimit applies the configured default and maximum to a requested limit.
func (srv *searchService) pageLimit(requested int) int {
	switch {
	case requested <= 0:
		return srv.catalog.DefaultLimit
	case srv.catalog.MaxLimit > 0 && requested > srv.catalog.MaxLimit:
		return srv.catalog.MaxLimit
	default:
		return requested
	}
}

// Search resolves the effective selection, fetches the matching products once
// and applies the in-stock facet to the result.
func (srv *searchService) Search(ctx context.Context, clientID string, input *usecase.SearchInput) (*usecase.SearchResult, error) {
	sel := facet.Resolve(input.Route, input.Committed)

	filter, err := facet.Build(input.Route.Query, sel, input.SortOrder, input.IsDeal, srv.catalog.PriceCeiling)
	if err != nil {
		return nil, err
	}
	filter.Limit = srv.pageLimit(input.Limit)

	var seq uint64
	if clientID != "" {
		var done func()
		ctx, seq, done = srv.tracker.begin(ctx, clientID)
		defer done()
	}

	products, err := srv.fetch(ctx, filter)
	if clientID != "" && srv.tracker.superseded(ctx, clientID, seq) {
		srv.log(ctx).Debug("Search superseded", slog.String("clientID", clientID), slog.Uint64("sequence", seq))

		return nil, errors.Wrap(domainerrors.ErrSearchSuperseded, "newer search in flight")
	}
	if err != nil {
		return nil, err
	}

	return &usecase.SearchResult{
		Selection: sel,
		Products:  facet.FilterInStock(products, sel.InStock),
		Sequence:  seq,
	}, nil
}

func (srv *searchService) fetch(ctx context.Context, filter *entity.ProductFilter) ([]*entity.Product, error) {
	var products []*entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ProductRepo().List(ctx, filter)
		if err != nil {
			return errors.Wrap(err, "failed to list products")
		}
		products = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to search products")
	}

	return products, nil
}

// EvaluateFilterDraft replays modal interactions starting from the effective
// selection and reports where the modal ended up.
func (srv *searchService) EvaluateFilterDraft(ctx context.Context, input *usecase.FilterDraftInput) (*usecase.FilterDraftResult, error) {
	committed := facet.Resolve(input.Route, input.Committed)

	var (
		draft   facet.Draft
		applied *facet.Selection
	)
	commit := func(sel facet.Selection) {
		committed = sel
		applied = &sel
	}

	for i, action := range input.Actions {
		if err := draft.Dispatch(action, committed, commit); err != nil {
			srv.log(ctx).Debug("Rejected filter action", slog.Int("index", i), slog.String("type", string(action.Type)))

			return nil, err
		}
	}

	if applied != nil {
		if _, err := facet.Build("", *applied, entity.SortNone, false, srv.catalog.PriceCeiling); err != nil {
			return nil, err
		}
	}

	return &usecase.FilterDraftResult{
		Draft:     draft.Selection(),
		Open:      draft.IsOpen(),
		Committed: applied,
	}, nil
}
