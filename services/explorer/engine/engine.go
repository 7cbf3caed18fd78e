package engine

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/BquantFinance/world-data-bank/services/explorer/common"
	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
)

var log = logger.GetOrCreate("engine")

const (
	opSearch     = "search"
	opIndicators = "indicators"
	opData       = "data"
	opFanOut     = "fanout"
	opDiscover   = "discover"

	historyKindSearch = "search"
	historyKindData   = "data"

	defaultHistoryLimit = 50
)

// ArgsExplorerEngine holds the dependencies of the explorer engine
type ArgsExplorerEngine struct {
	DataClient   DataClient
	Cacher       Cacher
	Catalog      CatalogHandler
	HistoryStore HistoryStore
	HistoryLimit int
}

// explorerEngine is the cache-aside orchestrator between the HTTP surface and
// the Data360 client. It memoizes results, records the query history and
// applies the degrade-to-empty contract on searches.
type explorerEngine struct {
	dataClient   DataClient
	cacher       Cacher
	catalog      CatalogHandler
	historyStore HistoryStore
	historyLimit int
}

// NewExplorerEngine creates a new engine instance
func NewExplorerEngine(args ArgsExplorerEngine) (*explorerEngine, error) {
	if check.IfNil(args.DataClient) {
		return nil, errors.New("nil data client")
	}
	if check.IfNil(args.Cacher) {
		return nil, errors.New("nil cacher")
	}
	if check.IfNil(args.Catalog) {
		return nil, errors.New("nil catalog")
	}
	if check.IfNil(args.HistoryStore) {
		return nil, errors.New("nil history store")
	}

	historyLimit := args.HistoryLimit
	if historyLimit <= 0 {
		historyLimit = defaultHistoryLimit
	}

	return &explorerEngine{
		dataClient:   args.DataClient,
		cacher:       args.Cacher,
		catalog:      args.Catalog,
		historyStore: args.HistoryStore,
		historyLimit: historyLimit,
	}, nil
}

// cacheKey builds a collision-free key: every argument is length-prefixed so
// differently split argument lists can never encode to the same string
func cacheKey(op string, parts ...string) string {
	var sb strings.Builder
	sb.WriteString(op)
	for _, part := range parts {
		sb.WriteString("|")
		sb.WriteString(strconv.Itoa(len(part)))
		sb.WriteString(":")
		sb.WriteString(part)
	}

	return sb.String()
}

// Search runs a cached full-text search. An underlying failure degrades to the
// empty sentinel; only genuine results are ever stored in the cache.
func (e *explorerEngine) Search(ctx context.Context, query common.SearchQuery) common.SearchResult {
	key := cacheKey(opSearch,
		query.Query, strconv.Itoa(query.Top), strconv.Itoa(query.Skip), query.Filter, query.OrderBy)
	if cached, found := e.cacher.Get(key); found {
		if result, ok := cached.(common.SearchResult); ok {
			return result
		}
	}

	result, err := e.dataClient.Search(ctx, query)
	if err != nil {
		log.Warn("search failed, returning the empty result", "query", query.Query, "error", err)
		return common.EmptySearchResult()
	}

	e.cacher.Put(key, result)
	e.recordHistory(ctx, historyKindSearch, searchHistoryParams{
		Query:  query.Query,
		Filter: query.Filter,
	}, len(result.Matches))

	return result
}

// IndicatorsWithMetadata returns the cached enriched indicator listing of one
// database. Errors propagate and are never cached.
func (e *explorerEngine) IndicatorsWithMetadata(ctx context.Context, databaseID string, limit int) ([]common.IndicatorInfo, error) {
	key := cacheKey(opIndicators, databaseID, strconv.Itoa(limit))
	if cached, found := e.cacher.Get(key); found {
		if indicators, ok := cached.([]common.IndicatorInfo); ok {
			return indicators, nil
		}
	}

	indicators, err := e.dataClient.IndicatorsWithMetadata(ctx, databaseID, limit)
	if err != nil {
		return nil, err
	}

	e.cacher.Put(key, indicators)

	return indicators, nil
}

// GetData runs a cached pagination session. Errors propagate to the caller.
func (e *explorerEngine) GetData(ctx context.Context, request common.FetchRequest) (common.FetchResult, error) {
	key := cacheKey(opData,
		request.DatabaseID, request.Indicator, request.RefArea,
		request.TimePeriodFrom, request.TimePeriodTo,
		strconv.Itoa(request.MaxRecords), strconv.FormatBool(request.AutoPaginate))
	if cached, found := e.cacher.Get(key); found {
		if result, ok := cached.(common.FetchResult); ok {
			return result, nil
		}
	}

	result, err := e.dataClient.GetData(ctx, request)
	if err != nil {
		return common.FetchResult{}, err
	}

	e.cacher.Put(key, result)
	e.recordHistory(ctx, historyKindData, dataHistoryParams{
		DatabaseID:     request.DatabaseID,
		Indicator:      request.Indicator,
		RefAreas:       []string{request.RefArea},
		TimePeriodFrom: request.TimePeriodFrom,
		TimePeriodTo:   request.TimePeriodTo,
	}, result.ReturnedCount)

	return result, nil
}

// FetchMany runs a cached fan-out fetch. Aggregates with failed regions are
// returned but not cached, so a transient per-region failure is retried on the
// next identical request instead of being pinned for a full TTL.
func (e *explorerEngine) FetchMany(
	ctx context.Context,
	databaseID string,
	indicator string,
	refAreas []string,
	timePeriodFrom string,
	timePeriodTo string,
	maxRecordsPerArea int,
) common.FetchManyResult {
	parts := []string{databaseID, indicator, timePeriodFrom, timePeriodTo, strconv.Itoa(maxRecordsPerArea)}
	parts = append(parts, refAreas...)
	key := cacheKey(opFanOut, parts...)
	if cached, found := e.cacher.Get(key); found {
		if result, ok := cached.(common.FetchManyResult); ok {
			return result
		}
	}

	result := e.dataClient.FetchMany(ctx, databaseID, indicator, refAreas, timePeriodFrom, timePeriodTo, maxRecordsPerArea)
	if result.FailedRegions == 0 {
		e.cacher.Put(key, result)
	}

	e.recordHistory(ctx, historyKindData, dataHistoryParams{
		DatabaseID:     databaseID,
		Indicator:      indicator,
		RefAreas:       refAreas,
		TimePeriodFrom: timePeriodFrom,
		TimePeriodTo:   timePeriodTo,
	}, len(result.Observations))

	return result
}

// DiscoverDatabases returns the cached union of the static catalog ids and the
// ids observed live
func (e *explorerEngine) DiscoverDatabases(ctx context.Context) []string {
	key := cacheKey(opDiscover)
	if cached, found := e.cacher.Get(key); found {
		if ids, ok := cached.([]string); ok {
			return ids
		}
	}

	ids := e.catalog.DiscoverDatabases(ctx, e.dataClient)
	e.cacher.Put(key, ids)

	return ids
}

// Databases returns the static descriptors matching the filters
func (e *explorerEngine) Databases(themes []string, organizations []string) []common.DatabaseDescriptor {
	return e.catalog.Filter(themes, organizations)
}

// History returns the recent query history, newest first
func (e *explorerEngine) History(ctx context.Context) ([]common.HistoryEntry, error) {
	return e.historyStore.GetRecent(ctx, e.historyLimit)
}

// DeleteHistoryEntry removes one history entry
func (e *explorerEngine) DeleteHistoryEntry(ctx context.Context, id string) error {
	return e.historyStore.Delete(ctx, id)
}

type searchHistoryParams struct {
	Query  string `json:"query"`
	Filter string `json:"filter,omitempty"`
}

type dataHistoryParams struct {
	DatabaseID     string   `json:"databaseId"`
	Indicator      string   `json:"indicator"`
	RefAreas       []string `json:"refAreas"`
	TimePeriodFrom string   `json:"timePeriodFrom,omitempty"`
	TimePeriodTo   string   `json:"timePeriodTo,omitempty"`
}

// recordHistory is best-effort: a failing history store never fails the data
// path
func (e *explorerEngine) recordHistory(ctx context.Context, kind string, params any, recordCount int) {
	encoded, err := json.Marshal(params)
	if err != nil {
		log.Warn("failed to encode history params", "kind", kind, "error", err)
		return
	}

	_, err = e.historyStore.SaveQuery(ctx, kind, string(encoded), recordCount)
	if err != nil {
		log.Warn("failed to record query history", "kind", kind, "error", err)
	}
}

// IsInterfaceNil returns true if the value under the interface is nil
func (e *explorerEngine) IsInterfaceNil() bool {
	return e == nil
}
