package testsCommon

import (
	"context"

	"github.com/BquantFinance/world-data-bank/services/explorer/common"
)

// EngineStub -
type EngineStub struct {
	SearchHandler                 func(ctx context.Context, query common.SearchQuery) common.SearchResult
	IndicatorsWithMetadataHandler func(ctx context.Context, databaseID string, limit int) ([]common.IndicatorInfo, error)
	GetDataHandler                func(ctx context.Context, request common.FetchRequest) (common.FetchResult, error)
	FetchManyHandler              func(ctx context.Context, databaseID string, indicator string, refAreas []string, timePeriodFrom string, timePeriodTo string, maxRecordsPerArea int) common.FetchManyResult
	DiscoverDatabasesHandler      func(ctx context.Context) []string
	DatabasesHandler              func(themes []string, organizations []string) []common.DatabaseDescriptor
	HistoryHandler                func(ctx context.Context) ([]common.HistoryEntry, error)
	DeleteHistoryEntryHandler     func(ctx context.Context, id string) error
}

// Search -
func (stub *EngineStub) Search(ctx context.Context, query common.SearchQuery) common.SearchResult {
	if stub.SearchHandler != nil {
		return stub.SearchHandler(ctx, query)
	}

	return common.EmptySearchResult()
}

// IndicatorsWithMetadata -
func (stub *EngineStub) IndicatorsWithMetadata(ctx context.Context, databaseID string, limit int) ([]common.IndicatorInfo, error) {
	if stub.IndicatorsWithMetadataHandler != nil {
		return stub.IndicatorsWithMetadataHandler(ctx, databaseID, limit)
	}

	return make([]common.IndicatorInfo, 0), nil
}

// GetData -
func (stub *EngineStub) GetData(ctx context.Context, request common.FetchRequest) (common.FetchResult, error) {
	if stub.GetDataHandler != nil {
		return stub.GetDataHandler(ctx, request)
	}

	return common.FetchResult{}, nil
}

// FetchMany -
func (stub *EngineStub) FetchMany(ctx context.Context, databaseID string, indicator string, refAreas []string, timePeriodFrom string, timePeriodTo string, maxRecordsPerArea int) common.FetchManyResult {
	if stub.FetchManyHandler != nil {
		return stub.FetchManyHandler(ctx, databaseID, indicator, refAreas, timePeriodFrom, timePeriodTo, maxRecordsPerArea)
	}

	return common.FetchManyResult{}
}

// DiscoverDatabases -
func (stub *EngineStub) DiscoverDatabases(ctx context.Context) []string {
	if stub.DiscoverDatabasesHandler != nil {
		return stub.DiscoverDatabasesHandler(ctx)
	}

	return make([]string, 0)
}

// Databases -
func (stub *EngineStub) Databases(themes []string, organizations []string) []common.DatabaseDescriptor {
	if stub.DatabasesHandler != nil {
		return stub.DatabasesHandler(themes, organizations)
	}

	return make([]common.DatabaseDescriptor, 0)
}

// History -
func (stub *EngineStub) History(ctx context.Context) ([]common.HistoryEntry, error) {
	if stub.HistoryHandler != nil {
		return stub.HistoryHandler(ctx)
	}

	return make([]common.HistoryEntry, 0), nil
}

// DeleteHistoryEntry -
func (stub *EngineStub) DeleteHistoryEntry(ctx context.Context, id string) error {
	if stub.DeleteHistoryEntryHandler != nil {
		return stub.DeleteHistoryEntryHandler(ctx, id)
	}

	return nil
}

// IsInterfaceNil -
func (stub *EngineStub) IsInterfaceNil() bool {
	return stub == nil
}
