package queries

import (
	"context"

	"leen-studio/internal/domain/catalog"
)

// CatalogQueries exposes the build-time catalogs to the handlers.
type CatalogQueries interface {
	Products(ctx context.Context) []ProductView
	Services(ctx context.Context) []ServiceView
	Tiers(ctx context.Context) []TierView
}

type catalogQueriesImpl struct{}

func NewCatalogQueries() CatalogQueries {
	return &catalogQueriesImpl{}
}

func (q *catalogQueriesImpl) Products(_ context.Context) []ProductView {
	products := catalog.Products()
	out := make([]ProductView, 0, len(products))
	for _, p := range products {
		out = append(out, NewProductView(p))
	}
	return out
}

func (q *catalogQueriesImpl) Services(_ context.Context) []ServiceView {
	services := catalog.Services()
	out := make([]ServiceView, 0, len(services))
	for _, s := range services {
		out = append(out, NewServiceView(s))
	}
	return out
}

func (q *catalogQueriesImpl) Tiers(_ context.Context) []TierView {
	tiers := catalog.Tiers()
	out := make([]TierView, 0, len(tiers))
	for _, t := range tiers {
		out = append(out, NewTierView(t))
	}
	return out
}
