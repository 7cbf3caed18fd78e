package testsCommon

import (
	"context"

	"github.com/BquantFinance/world-data-bank/services/explorer/common"
)

// DataClientStub -
type DataClientStub struct {
	SearchHandler                 func(ctx context.Context, query common.SearchQuery) (common.SearchResult, error)
	IndicatorsWithMetadataHandler func(ctx context.Context, databaseID string, limit int) ([]common.IndicatorInfo, error)
	GetDataHandler                func(ctx context.Context, request common.FetchRequest) (common.FetchResult, error)
	FetchManyHandler              func(ctx context.Context, databaseID string, indicator string, refAreas []string, timePeriodFrom string, timePeriodTo string, maxRecordsPerArea int) common.FetchManyResult
}

// Search -
func (stub *DataClientStub) Search(ctx context.Context, query common.SearchQuery) (common.SearchResult, error) {
	if stub.SearchHandler != nil {
		return stub.SearchHandler(ctx, query)
	}
	return common.EmptySearchResult(), nil
}

// IndicatorsWithMetadata -
func (stub *DataClientStub) IndicatorsWithMetadata(ctx context.Context, databaseID string, limit int) ([]common.IndicatorInfo, error) {
	if stub.IndicatorsWithMetadataHandler != nil {
		return stub.IndicatorsWithMetadataHandler(ctx, databaseID, limit)
	}
	return make([]common.IndicatorInfo, 0), nil
}

// GetData -
func (stub *DataClientStub) GetData(ctx context.Context, request common.FetchRequest) (common.FetchResult, error) {
	if stub.GetDataHandler != nil {
		return stub.GetDataHandler(ctx, request)
	}
	return common.FetchResult{}, nil
}

// FetchMany -
func (stub *DataClientStub) FetchMany(ctx context.Context, databaseID string, indicator string, refAreas []string, timePeriodFrom string, timePeriodTo string, maxRecordsPerArea int) common.FetchManyResult {
	if stub.FetchManyHandler != nil {
		return stub.FetchManyHandler(ctx, databaseID, indicator, refAreas, timePeriodFrom, timePeriodTo, maxRecordsPerArea)
	}
	return common.FetchManyResult{}
}

// IsInterfaceNil -
func (stub *DataClientStub) IsInterfaceNil() bool {
	return stub == nil
}
