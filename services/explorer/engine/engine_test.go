package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/BquantFinance/world-data-bank/services/explorer/cache"
	"github.com/BquantFinance/world-data-bank/services/explorer/catalog"
	"github.com/BquantFinance/world-data-bank/services/explorer/common"
	"github.com/BquantFinance/world-data-bank/services/explorer/testsCommon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createMockArgs() ArgsExplorerEngine {
	return ArgsExplorerEngine{
		DataClient:   &testsCommon.DataClientStub{},
		Cacher:       cache.NewTimeCache(time.Hour),
		Catalog:      catalog.NewCatalog(),
		HistoryStore: &testsCommon.HistoryStoreStub{},
		HistoryLimit: 50,
	}
}

func TestNewExplorerEngine(t *testing.T) {
	t.Parallel()

	t.Run("nil data client should error", func(t *testing.T) {
		t.Parallel()

		args := createMockArgs()
		args.DataClient = nil

		e, err := NewExplorerEngine(args)
		assert.Nil(t, e)
		assert.ErrorContains(t, err, "nil data client")
	})
	t.Run("nil cacher should error", func(t *testing.T) {
		t.Parallel()

		args := createMockArgs()
		args.Cacher = nil

		e, err := NewExplorerEngine(args)
		assert.Nil(t, e)
		assert.ErrorContains(t, err, "nil cacher")
	})
	t.Run("nil catalog should error", func(t *testing.T) {
		t.Parallel()

		args := createMockArgs()
		args.Catalog = nil

		e, err := NewExplorerEngine(args)
		assert.Nil(t, e)
		assert.ErrorContains(t, err, "nil catalog")
	})
	t.Run("nil history store should error", func(t *testing.T) {
		t.Parallel()

		args := createMockArgs()
		args.HistoryStore = nil

		e, err := NewExplorerEngine(args)
		assert.Nil(t, e)
		assert.ErrorContains(t, err, "nil history store")
	})
	t.Run("should work and default the history limit", func(t *testing.T) {
		t.Parallel()

		args := createMockArgs()
		args.HistoryLimit = 0

		e, err := NewExplorerEngine(args)
		require.NoError(t, err)
		require.NotNil(t, e)
		assert.Equal(t, defaultHistoryLimit, e.historyLimit)
	})
}

func TestExplorerEngine_Search(t *testing.T) {
	t.Parallel()

	t.Run("identical queries hit the client once", func(t *testing.T) {
		t.Parallel()

		numCalls := 0
		args := createMockArgs()
		args.DataClient = &testsCommon.DataClientStub{
			SearchHandler: func(_ context.Context, _ common.SearchQuery) (common.SearchResult, error) {
				numCalls++
				return common.SearchResult{
					Matches:    []common.IndicatorMatch{{ID: "WB_WDI_SP_POP_TOTL"}},
					TotalCount: 1,
				}, nil
			},
		}
		e, _ := NewExplorerEngine(args)

		query := common.SearchQuery{Query: "population", Top: 10}
		first := e.Search(context.Background(), query)
		second := e.Search(context.Background(), query)

		assert.Equal(t, 1, numCalls)
		assert.Equal(t, first, second)
		require.Len(t, second.Matches, 1)
	})
	t.Run("different queries use separate cache entries", func(t *testing.T) {
		t.Parallel()

		numCalls := 0
		args := createMockArgs()
		args.DataClient = &testsCommon.DataClientStub{
			SearchHandler: func(_ context.Context, _ common.SearchQuery) (common.SearchResult, error) {
				numCalls++
				return common.SearchResult{TotalCount: numCalls}, nil
			},
		}
		e, _ := NewExplorerEngine(args)

		_ = e.Search(context.Background(), common.SearchQuery{Query: "population", Top: 10})
		_ = e.Search(context.Background(), common.SearchQuery{Query: "population", Top: 20})

		assert.Equal(t, 2, numCalls)
	})
	t.Run("failure degrades to the empty result and is not cached", func(t *testing.T) {
		t.Parallel()

		numCalls := 0
		args := createMockArgs()
		args.DataClient = &testsCommon.DataClientStub{
			SearchHandler: func(_ context.Context, _ common.SearchQuery) (common.SearchResult, error) {
				numCalls++
				return common.SearchResult{}, errors.New("expected error")
			},
		}
		numSaved := 0
		args.HistoryStore = &testsCommon.HistoryStoreStub{
			SaveQueryHandler: func(_ context.Context, _ string, _ string, _ int) (string, error) {
				numSaved++
				return "id", nil
			},
		}
		e, _ := NewExplorerEngine(args)

		query := common.SearchQuery{Query: "gdp"}
		result := e.Search(context.Background(), query)
		assert.Equal(t, common.EmptySearchResult(), result)

		_ = e.Search(context.Background(), query)
		assert.Equal(t, 2, numCalls) // a failed search must not pin the sentinel
		assert.Zero(t, numSaved)
	})
	t.Run("successful miss records history, cache hit does not", func(t *testing.T) {
		t.Parallel()

		args := createMockArgs()
		args.DataClient = &testsCommon.DataClientStub{
			SearchHandler: func(_ context.Context, _ common.SearchQuery) (common.SearchResult, error) {
				return common.SearchResult{
					Matches:    []common.IndicatorMatch{{ID: "A"}, {ID: "B"}},
					TotalCount: 2,
				}, nil
			},
		}
		savedKinds := make([]string, 0)
		savedCounts := make([]int, 0)
		args.HistoryStore = &testsCommon.HistoryStoreStub{
			SaveQueryHandler: func(_ context.Context, kind string, params string, recordCount int) (string, error) {
				savedKinds = append(savedKinds, kind)
				savedCounts = append(savedCounts, recordCount)
				assert.Contains(t, params, `"query":"gdp"`)
				return "id", nil
			},
		}
		e, _ := NewExplorerEngine(args)

		query := common.SearchQuery{Query: "gdp"}
		_ = e.Search(context.Background(), query)
		_ = e.Search(context.Background(), query)

		require.Equal(t, []string{"search"}, savedKinds)
		assert.Equal(t, []int{2}, savedCounts)
	})
	t.Run("failing history store does not fail the search", func(t *testing.T) {
		t.Parallel()

		args := createMockArgs()
		args.DataClient = &testsCommon.DataClientStub{
			SearchHandler: func(_ context.Context, _ common.SearchQuery) (common.SearchResult, error) {
				return common.SearchResult{TotalCount: 1}, nil
			},
		}
		args.HistoryStore = &testsCommon.HistoryStoreStub{
			SaveQueryHandler: func(_ context.Context, _ string, _ string, _ int) (string, error) {
				return "", errors.New("expected error")
			},
		}
		e, _ := NewExplorerEngine(args)

		result := e.Search(context.Background(), common.SearchQuery{Query: "gdp"})
		assert.Equal(t, 1, result.TotalCount)
	})
}

func TestExplorerEngine_IndicatorsWithMetadata(t *testing.T) {
	t.Parallel()

	t.Run("identical listings hit the client once", func(t *testing.T) {
		t.Parallel()

		numCalls := 0
		args := createMockArgs()
		args.DataClient = &testsCommon.DataClientStub{
			IndicatorsWithMetadataHandler: func(_ context.Context, databaseID string, limit int) ([]common.IndicatorInfo, error) {
				numCalls++
				assert.Equal(t, "WB_WDI", databaseID)
				assert.Equal(t, 500, limit)
				return []common.IndicatorInfo{{ID: "WB_WDI_SP_POP_TOTL"}}, nil
			},
		}
		e, _ := NewExplorerEngine(args)

		first, err := e.IndicatorsWithMetadata(context.Background(), "WB_WDI", 500)
		require.NoError(t, err)
		second, err := e.IndicatorsWithMetadata(context.Background(), "WB_WDI", 500)
		require.NoError(t, err)

		assert.Equal(t, 1, numCalls)
		assert.Equal(t, first, second)
	})
	t.Run("errors propagate and are not cached", func(t *testing.T) {
		t.Parallel()

		numCalls := 0
		expectedErr := errors.New("expected error")
		args := createMockArgs()
		args.DataClient = &testsCommon.DataClientStub{
			IndicatorsWithMetadataHandler: func(_ context.Context, _ string, _ int) ([]common.IndicatorInfo, error) {
				numCalls++
				return nil, expectedErr
			},
		}
		e, _ := NewExplorerEngine(args)

		_, err := e.IndicatorsWithMetadata(context.Background(), "WB_WDI", 500)
		assert.ErrorIs(t, err, expectedErr)

		_, _ = e.IndicatorsWithMetadata(context.Background(), "WB_WDI", 500)
		assert.Equal(t, 2, numCalls)
	})
}

func TestExplorerEngine_GetData(t *testing.T) {
	t.Parallel()

	request := common.FetchRequest{
		DatabaseID:   "WB_WDI",
		Indicator:    "WB_WDI_SP_POP_TOTL",
		RefArea:      "USA",
		MaxRecords:   1000,
		AutoPaginate: true,
	}

	t.Run("identical requests hit the client once and record one history entry", func(t *testing.T) {
		t.Parallel()

		numCalls := 0
		args := createMockArgs()
		args.DataClient = &testsCommon.DataClientStub{
			GetDataHandler: func(_ context.Context, _ common.FetchRequest) (common.FetchResult, error) {
				numCalls++
				return common.FetchResult{ReturnedCount: 3, TotalCount: 3}, nil
			},
		}
		numSaved := 0
		args.HistoryStore = &testsCommon.HistoryStoreStub{
			SaveQueryHandler: func(_ context.Context, kind string, params string, recordCount int) (string, error) {
				numSaved++
				assert.Equal(t, "data", kind)
				assert.Equal(t, 3, recordCount)
				assert.Contains(t, params, `"refAreas":["USA"]`)
				return "id", nil
			},
		}
		e, _ := NewExplorerEngine(args)

		first, err := e.GetData(context.Background(), request)
		require.NoError(t, err)
		second, err := e.GetData(context.Background(), request)
		require.NoError(t, err)

		assert.Equal(t, 1, numCalls)
		assert.Equal(t, 1, numSaved)
		assert.Equal(t, first, second)
	})
	t.Run("errors propagate and are not cached", func(t *testing.T) {
		t.Parallel()

		numCalls := 0
		expectedErr := errors.New("expected error")
		args := createMockArgs()
		args.DataClient = &testsCommon.DataClientStub{
			GetDataHandler: func(_ context.Context, _ common.FetchRequest) (common.FetchResult, error) {
				numCalls++
				return common.FetchResult{}, expectedErr
			},
		}
		e, _ := NewExplorerEngine(args)

		_, err := e.GetData(context.Background(), request)
		assert.ErrorIs(t, err, expectedErr)

		_, _ = e.GetData(context.Background(), request)
		assert.Equal(t, 2, numCalls)
	})
}

func TestExplorerEngine_FetchMany(t *testing.T) {
	t.Parallel()

	t.Run("fully successful aggregates are cached", func(t *testing.T) {
		t.Parallel()

		numCalls := 0
		args := createMockArgs()
		args.DataClient = &testsCommon.DataClientStub{
			FetchManyHandler: func(_ context.Context, _ string, _ string, refAreas []string, _ string, _ string, _ int) common.FetchManyResult {
				numCalls++
				observations := make([]common.Observation, 0, len(refAreas))
				for _, area := range refAreas {
					observations = append(observations, common.Observation{RefArea: area})
				}
				return common.FetchManyResult{Observations: observations}
			},
		}
		e, _ := NewExplorerEngine(args)

		areas := []string{"USA", "CAN"}
		first := e.FetchMany(context.Background(), "WB_WDI", "IND", areas, "2000", "2020", 5000)
		second := e.FetchMany(context.Background(), "WB_WDI", "IND", areas, "2000", "2020", 5000)

		assert.Equal(t, 1, numCalls)
		assert.Equal(t, first, second)
	})
	t.Run("aggregates with failed regions are not cached", func(t *testing.T) {
		t.Parallel()

		numCalls := 0
		args := createMockArgs()
		args.DataClient = &testsCommon.DataClientStub{
			FetchManyHandler: func(_ context.Context, _ string, _ string, _ []string, _ string, _ string, _ int) common.FetchManyResult {
				numCalls++
				return common.FetchManyResult{FailedRegions: 1}
			},
		}
		e, _ := NewExplorerEngine(args)

		areas := []string{"USA", "XYZ"}
		_ = e.FetchMany(context.Background(), "WB_WDI", "IND", areas, "", "", 5000)
		_ = e.FetchMany(context.Background(), "WB_WDI", "IND", areas, "", "", 5000)

		assert.Equal(t, 2, numCalls)
	})
	t.Run("differently split region lists never share a cache entry", func(t *testing.T) {
		t.Parallel()

		numCalls := 0
		args := createMockArgs()
		args.DataClient = &testsCommon.DataClientStub{
			FetchManyHandler: func(_ context.Context, _ string, _ string, _ []string, _ string, _ string, _ int) common.FetchManyResult {
				numCalls++
				return common.FetchManyResult{}
			},
		}
		e, _ := NewExplorerEngine(args)

		_ = e.FetchMany(context.Background(), "WB_WDI", "IND", []string{"USA", "CAN"}, "", "", 5000)
		_ = e.FetchMany(context.Background(), "WB_WDI", "IND", []string{"USAC", "AN"}, "", "", 5000)

		assert.Equal(t, 2, numCalls)
	})
}

func TestExplorerEngine_DiscoverDatabases(t *testing.T) {
	t.Parallel()

	numCalls := 0
	args := createMockArgs()
	args.DataClient = &testsCommon.DataClientStub{
		SearchHandler: func(_ context.Context, _ common.SearchQuery) (common.SearchResult, error) {
			numCalls++
			return common.SearchResult{
				Matches: []common.IndicatorMatch{{ID: "ZZZ_IND", DatabaseID: "ZZZ_LIVE"}},
			}, nil
		},
	}
	e, _ := NewExplorerEngine(args)

	first := e.DiscoverDatabases(context.Background())
	second := e.DiscoverDatabases(context.Background())

	assert.Equal(t, 1, numCalls)
	assert.Equal(t, first, second)
	assert.Contains(t, first, "ZZZ_LIVE")
	assert.Contains(t, first, "WB_WDI")
}

func TestExplorerEngine_Databases(t *testing.T) {
	t.Parallel()

	e, _ := NewExplorerEngine(createMockArgs())

	descriptors := e.Databases(nil, []string{"World Bank"})
	require.NotEmpty(t, descriptors)
	for _, descriptor := range descriptors {
		assert.Equal(t, "World Bank", descriptor.Organization)
	}
}

func TestExplorerEngine_History(t *testing.T) {
	t.Parallel()

	t.Run("history uses the configured limit", func(t *testing.T) {
		t.Parallel()

		args := createMockArgs()
		args.HistoryLimit = 7
		args.HistoryStore = &testsCommon.HistoryStoreStub{
			GetRecentHandler: func(_ context.Context, limit int) ([]common.HistoryEntry, error) {
				assert.Equal(t, 7, limit)
				return []common.HistoryEntry{{ID: "id-1"}}, nil
			},
		}
		e, _ := NewExplorerEngine(args)

		entries, err := e.History(context.Background())
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})
	t.Run("delete passes through", func(t *testing.T) {
		t.Parallel()

		expectedErr := errors.New("expected error")
		args := createMockArgs()
		args.HistoryStore = &testsCommon.HistoryStoreStub{
			DeleteHandler: func(_ context.Context, id string) error {
				assert.Equal(t, "id-1", id)
				return expectedErr
			},
		}
		e, _ := NewExplorerEngine(args)

		err := e.DeleteHistoryEntry(context.Background(), "id-1")
		assert.ErrorIs(t, err, expectedErr)
	})
}

func TestExplorerEngine_IsInterfaceNil(t *testing.T) {
	t.Parallel()

	var e *explorerEngine
	assert.True(t, e.IsInterfaceNil())

	e, _ = NewExplorerEngine(createMockArgs())
	assert.False(t, e.IsInterfaceNil())
}

func TestCacheKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "search", cacheKey("search"))
	assert.Equal(t, "data|3:USA|0:", cacheKey("data", "USA", ""))
	assert.NotEqual(t, cacheKey("fanout", "USA", "CAN"), cacheKey("fanout", "USAC", "AN"))
	assert.NotEqual(t, cacheKey("fanout", "USA", "CAN"), cacheKey("fanout", "USA,CAN"))
}
