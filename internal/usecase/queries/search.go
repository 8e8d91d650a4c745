package queries

import (
	"context"
)

const (
	DefaultSearchLimit = 10
	MaxSearchLimit     = 100
)

type SearchQueries interface {
	Search(ctx context.Context, params SearchParams) (*SearchResult, error)
}

type SearchReadStore interface {
	Search(ctx context.Context, params SearchParams) (*SearchResult, error)
}

type searchQueriesImpl struct {
	store SearchReadStore
}

func NewSearchQueries(store SearchReadStore) SearchQueries {
	return &searchQueriesImpl{store: store}
}

func (q *searchQueriesImpl) Search(ctx context.Context, params SearchParams) (*SearchResult, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 {
		params.Limit = DefaultSearchLimit
	}
	if params.Limit > MaxSearchLimit {
		params.Limit = MaxSearchLimit
	}
	return q.store.Search(ctx, params)
}
