package data360

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/BquantFinance/world-data-bank/services/explorer/client"
	"github.com/BquantFinance/world-data-bank/services/explorer/common"
	"github.com/BquantFinance/world-data-bank/services/explorer/testsCommon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeDataPage(reportedCount int, numRows int, refArea string) []byte {
	rows := make([]string, 0, numRows)
	for i := 0; i < numRows; i++ {
		rows = append(rows, fmt.Sprintf(
			`{"INDICATOR": "SP_POP_TOTL", "REF_AREA": "%s", "TIME_PERIOD": "%d", "OBS_VALUE": %d, "UNIT_MEASURE": "PS"}`,
			refArea, 2000+i, 1000+i))
	}

	return []byte(fmt.Sprintf(`{"count": %d, "value": [%s]}`, reportedCount, strings.Join(rows, ",")))
}

// pagedCaller serves scripted page sizes in order and records the requested
// skip offsets
type pagedCaller struct {
	pageSizes     []int
	reportedCount int
	requestedSkip []int
}

func (pc *pagedCaller) handler(_ context.Context, _ string, params url.Values) ([]byte, error) {
	skip := 0
	if params.Get("skip") != "" {
		skip, _ = strconv.Atoi(params.Get("skip"))
	}
	pc.requestedSkip = append(pc.requestedSkip, skip)

	pageIdx := len(pc.requestedSkip) - 1
	numRows := 0
	if pageIdx < len(pc.pageSizes) {
		numRows = pc.pageSizes[pageIdx]
	}

	return makeDataPage(pc.reportedCount, numRows, "USA"), nil
}

func TestDataClient_GetData(t *testing.T) {
	t.Parallel()

	t.Run("skip advances by received items and empty page terminates", func(t *testing.T) {
		// the envelope reports an inconsistent total of 0, so only the empty
		// page can stop the loop
		caller := &pagedCaller{pageSizes: []int{100, 100, 37, 0}, reportedCount: 0}
		args := createMockArgs()
		args.HTTPCaller = &testsCommon.HTTPCallerStub{GetHandler: caller.handler}
		dc, _ := NewDataClient(args)

		result, err := dc.GetData(context.Background(), common.FetchRequest{
			DatabaseID:   "WB_WDI",
			Indicator:    "SP_POP_TOTL",
			RefArea:      "USA",
			MaxRecords:   10000,
			AutoPaginate: true,
		})

		require.Nil(t, err)
		assert.Equal(t, []int{0, 100, 200, 237}, caller.requestedSkip)
		assert.Equal(t, 237, result.ReturnedCount)
		assert.Len(t, result.Observations, 237)
		assert.False(t, result.Truncated)
	})
	t.Run("reaching the reported total terminates without an extra request", func(t *testing.T) {
		caller := &pagedCaller{pageSizes: []int{100, 50}, reportedCount: 150}
		args := createMockArgs()
		args.HTTPCaller = &testsCommon.HTTPCallerStub{GetHandler: caller.handler}
		dc, _ := NewDataClient(args)

		result, err := dc.GetData(context.Background(), common.FetchRequest{
			DatabaseID:   "WB_WDI",
			MaxRecords:   10000,
			AutoPaginate: true,
		})

		require.Nil(t, err)
		assert.Equal(t, []int{0, 100}, caller.requestedSkip)
		assert.Equal(t, 150, result.ReturnedCount)
		assert.Equal(t, 150, result.TotalCount)
		assert.False(t, result.Truncated)
	})
	t.Run("budget stops the loop and marks the result truncated", func(t *testing.T) {
		caller := &pagedCaller{pageSizes: []int{100, 100, 100, 100}, reportedCount: 1000}
		args := createMockArgs()
		args.HTTPCaller = &testsCommon.HTTPCallerStub{GetHandler: caller.handler}
		dc, _ := NewDataClient(args)

		result, err := dc.GetData(context.Background(), common.FetchRequest{
			DatabaseID:   "WB_WDI",
			MaxRecords:   250,
			AutoPaginate: true,
		})

		require.Nil(t, err)
		assert.Equal(t, []int{0, 100, 200}, caller.requestedSkip)
		assert.Equal(t, 250, result.ReturnedCount)
		assert.Len(t, result.Observations, 250)
		assert.Equal(t, 1000, result.TotalCount)
		assert.True(t, result.Truncated)
	})
	t.Run("zero budget issues no request", func(t *testing.T) {
		caller := &pagedCaller{pageSizes: []int{100}, reportedCount: 100}
		args := createMockArgs()
		args.HTTPCaller = &testsCommon.HTTPCallerStub{GetHandler: caller.handler}
		dc, _ := NewDataClient(args)

		result, err := dc.GetData(context.Background(), common.FetchRequest{
			DatabaseID:   "WB_WDI",
			MaxRecords:   0,
			AutoPaginate: true,
		})

		require.Nil(t, err)
		assert.Empty(t, caller.requestedSkip)
		assert.Equal(t, 0, result.ReturnedCount)
		assert.Empty(t, result.Observations)
	})
	t.Run("failure mid pagination propagates the error", func(t *testing.T) {
		numCalls := 0
		stub := &testsCommon.HTTPCallerStub{
			GetHandler: func(_ context.Context, _ string, _ url.Values) ([]byte, error) {
				numCalls++
				if numCalls == 2 {
					return nil, &client.HTTPStatusError{Status: http.StatusInternalServerError, Body: "oops"}
				}
				return makeDataPage(300, 100, "USA"), nil
			},
		}
		args := createMockArgs()
		args.HTTPCaller = stub
		dc, _ := NewDataClient(args)

		_, err := dc.GetData(context.Background(), common.FetchRequest{
			DatabaseID:   "WB_WDI",
			MaxRecords:   10000,
			AutoPaginate: true,
		})

		require.Error(t, err)
		require.Contains(t, err.Error(), "skip 100")
	})
	t.Run("non-paginated mode issues exactly one request", func(t *testing.T) {
		numCalls := 0
		stub := &testsCommon.HTTPCallerStub{
			GetHandler: func(_ context.Context, _ string, params url.Values) ([]byte, error) {
				numCalls++
				require.Empty(t, params.Get("skip"))
				return makeDataPage(500, 20, "FRA"), nil
			},
		}
		args := createMockArgs()
		args.HTTPCaller = stub
		dc, _ := NewDataClient(args)

		result, err := dc.GetData(context.Background(), common.FetchRequest{
			DatabaseID:   "WB_WDI",
			AutoPaginate: false,
		})

		require.Nil(t, err)
		assert.Equal(t, 1, numCalls)
		assert.Equal(t, 20, result.ReturnedCount)
		assert.Equal(t, 500, result.TotalCount)
		assert.False(t, result.Truncated)
	})
	t.Run("query parameters are forwarded", func(t *testing.T) {
		stub := &testsCommon.HTTPCallerStub{
			GetHandler: func(_ context.Context, path string, params url.Values) ([]byte, error) {
				require.Equal(t, "/data360/data", path)
				require.Equal(t, "WB_WDI", params.Get("DATABASE_ID"))
				require.Equal(t, "SP_POP_TOTL", params.Get("INDICATOR"))
				require.Equal(t, "USA", params.Get("REF_AREA"))
				require.Equal(t, "2015", params.Get("timePeriodFrom"))
				require.Equal(t, "2020", params.Get("timePeriodTo"))
				return makeDataPage(0, 0, "USA"), nil
			},
		}
		args := createMockArgs()
		args.HTTPCaller = stub
		dc, _ := NewDataClient(args)

		_, err := dc.GetData(context.Background(), common.FetchRequest{
			DatabaseID:     "WB_WDI",
			Indicator:      "SP_POP_TOTL",
			RefArea:        "USA",
			TimePeriodFrom: "2015",
			TimePeriodTo:   "2020",
			MaxRecords:     100,
			AutoPaginate:   true,
		})

		require.Nil(t, err)
	})
}

func TestParseObservation(t *testing.T) {
	t.Parallel()

	t.Run("numeric value", func(t *testing.T) {
		page, _ := parseDataPage([]byte(`{"count": 1, "value": [{"INDICATOR": "A", "REF_AREA": "USA", "TIME_PERIOD": "2020", "OBS_VALUE": 331.9}]}`))

		require.Len(t, page, 1)
		require.NotNil(t, page[0].Value)
		assert.Equal(t, 331.9, *page[0].Value)
		assert.Equal(t, "USA", page[0].RefArea)
		assert.Equal(t, "2020", page[0].TimePeriod)
	})
	t.Run("string value is parsed", func(t *testing.T) {
		page, _ := parseDataPage([]byte(`{"count": 1, "value": [{"OBS_VALUE": "42.5"}]}`))

		require.NotNil(t, page[0].Value)
		assert.Equal(t, 42.5, *page[0].Value)
	})
	t.Run("null or unparseable value stays nil", func(t *testing.T) {
		page, _ := parseDataPage([]byte(`{"count": 2, "value": [{"OBS_VALUE": null}, {"OBS_VALUE": ".."}]}`))

		require.Len(t, page, 2)
		assert.Nil(t, page[0].Value)
		assert.Nil(t, page[1].Value)
	})
	t.Run("raw row is preserved for passthrough fields", func(t *testing.T) {
		page, _ := parseDataPage([]byte(`{"count": 1, "value": [{"REF_AREA": "USA", "UNIT_MEASURE": "PS", "OBS_VALUE": 1}]}`))

		var raw map[string]any
		require.Nil(t, json.Unmarshal(page[0].Raw, &raw))
		assert.Equal(t, "PS", raw["UNIT_MEASURE"])
	})
}

func TestDataClient_FetchMany(t *testing.T) {
	t.Parallel()

	t.Run("failing region is skipped and the rest are merged in order", func(t *testing.T) {
		stub := &testsCommon.HTTPCallerStub{
			GetHandler: func(_ context.Context, _ string, params url.Values) ([]byte, error) {
				refArea := params.Get("REF_AREA")
				if refArea == "XYZ" {
					return nil, &client.HTTPStatusError{Status: http.StatusBadRequest, Body: "unknown REF_AREA"}
				}
				return makeDataPage(2, 2, refArea), nil
			},
		}
		args := createMockArgs()
		args.HTTPCaller = stub
		dc, _ := NewDataClient(args)

		result := dc.FetchMany(context.Background(), "WB_WDI", "SP_POP_TOTL",
			[]string{"USA", "XYZ", "CAN"}, "2015", "2020", 5000)

		require.Len(t, result.Observations, 4)
		assert.Equal(t, 1, result.FailedRegions)
		assert.Equal(t, "USA", result.Observations[0].RefArea)
		assert.Equal(t, "USA", result.Observations[1].RefArea)
		assert.Equal(t, "CAN", result.Observations[2].RefArea)
		assert.Equal(t, "CAN", result.Observations[3].RefArea)
	})
	t.Run("all regions failing returns an empty aggregate, no error", func(t *testing.T) {
		stub := &testsCommon.HTTPCallerStub{
			GetHandler: func(_ context.Context, _ string, _ url.Values) ([]byte, error) {
				return nil, &client.HTTPStatusError{Status: http.StatusBadRequest, Body: "nope"}
			},
		}
		args := createMockArgs()
		args.HTTPCaller = stub
		dc, _ := NewDataClient(args)

		result := dc.FetchMany(context.Background(), "WB_WDI", "SP_POP_TOTL",
			[]string{"AAA", "BBB"}, "", "", 100)

		assert.Empty(t, result.Observations)
		assert.Equal(t, 2, result.FailedRegions)
	})
	t.Run("no deduplication across pairs", func(t *testing.T) {
		stub := &testsCommon.HTTPCallerStub{
			GetHandler: func(_ context.Context, _ string, _ url.Values) ([]byte, error) {
				return makeDataPage(1, 1, "USA"), nil
			},
		}
		args := createMockArgs()
		args.HTTPCaller = stub
		dc, _ := NewDataClient(args)

		result := dc.FetchMany(context.Background(), "WB_WDI", "SP_POP_TOTL",
			[]string{"USA", "USA"}, "", "", 100)

		require.Len(t, result.Observations, 2)
		assert.Equal(t, 0, result.FailedRegions)
	})
}

func TestDataClient_FetchBatch(t *testing.T) {
	t.Parallel()

	stub := &testsCommon.HTTPCallerStub{
		GetHandler: func(_ context.Context, _ string, params url.Values) ([]byte, error) {
			return makeDataPage(1, 1, params.Get("REF_AREA")), nil
		},
	}
	args := createMockArgs()
	args.HTTPCaller = stub
	dc, _ := NewDataClient(args)

	result := dc.FetchBatch(context.Background(), "WB_WDI", []common.IndicatorArea{
		{Indicator: "SP_POP_TOTL", RefArea: "USA"},
		{Indicator: "NY_GDP_MKTP_CD", RefArea: "FRA"},
	}, "", "", 100)

	require.Len(t, result.Observations, 2)
	assert.Equal(t, "USA", result.Observations[0].RefArea)
	assert.Equal(t, "FRA", result.Observations[1].RefArea)
}
