package api

import (
	"context"

	"github.com/BquantFinance/world-data-bank/services/explorer/common"
)

// Engine defines the interface for the cached explorer operations backing the routes
type Engine interface {
	// Search runs a cached full-text search, degrading failures to the empty result
	Search(ctx context.Context, query common.SearchQuery) common.SearchResult

	// IndicatorsWithMetadata returns the cached enriched indicator listing of one database
	IndicatorsWithMetadata(ctx context.Context, databaseID string, limit int) ([]common.IndicatorInfo, error)

	// GetData runs one cached pagination session
	GetData(ctx context.Context, request common.FetchRequest) (common.FetchResult, error)

	// FetchMany runs a cached best-effort fan-out over multiple regions
	FetchMany(ctx context.Context, databaseID string, indicator string, refAreas []string, timePeriodFrom string, timePeriodTo string, maxRecordsPerArea int) common.FetchManyResult

	// DiscoverDatabases returns the union of static and live-observed database ids
	DiscoverDatabases(ctx context.Context) []string

	// Databases returns the static descriptors matching the filters
	Databases(themes []string, organizations []string) []common.DatabaseDescriptor

	// History returns the recent query history, newest first
	History(ctx context.Context) ([]common.HistoryEntry, error)

	// DeleteHistoryEntry removes one history entry
	DeleteHistoryEntry(ctx context.Context, id string) error

	IsInterfaceNil() bool
}
