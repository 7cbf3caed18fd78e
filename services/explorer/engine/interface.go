package engine

import (
	"context"

	"github.com/BquantFinance/world-data-bank/services/explorer/catalog"
	"github.com/BquantFinance/world-data-bank/services/explorer/common"
)

// DataClient defines the remote Data360 operations orchestrated by the engine
type DataClient interface {
	// Search performs one full-text search call. Degenerate queries are
	// normalized by the implementation; transport and status failures are
	// returned as real errors.
	Search(ctx context.Context, query common.SearchQuery) (common.SearchResult, error)

	// IndicatorsWithMetadata lists the indicators of a database enriched with
	// their descriptions, falling back to the bare id listing when the search
	// path yields nothing.
	IndicatorsWithMetadata(ctx context.Context, databaseID string, limit int) ([]common.IndicatorInfo, error)

	// GetData runs one pagination session against the data endpoint
	GetData(ctx context.Context, request common.FetchRequest) (common.FetchResult, error)

	// FetchMany fans the same indicator out over multiple regions, merging
	// best-effort: failing regions are counted, never bubbled up.
	FetchMany(ctx context.Context, databaseID string, indicator string, refAreas []string, timePeriodFrom string, timePeriodTo string, maxRecordsPerArea int) common.FetchManyResult

	IsInterfaceNil() bool
}

// Cacher defines the TTL result cache used by the engine
type Cacher interface {
	Get(key string) (any, bool)
	Put(key string, payload any)
	Reset()
	Purge()
	IsInterfaceNil() bool
}

// CatalogHandler defines the static database reference operations
type CatalogHandler interface {
	All() []common.DatabaseDescriptor
	Filter(themes []string, organizations []string) []common.DatabaseDescriptor
	DatabaseName(databaseID string) string
	DiscoverDatabases(ctx context.Context, searcher catalog.Searcher) []string
	IsInterfaceNil() bool
}

// HistoryStore defines the persistence of the query history
type HistoryStore interface {
	SaveQuery(ctx context.Context, kind string, params string, recordCount int) (string, error)
	GetRecent(ctx context.Context, limit int) ([]common.HistoryEntry, error)
	Delete(ctx context.Context, id string) error
	IsInterfaceNil() bool
}
