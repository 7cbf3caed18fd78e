package data360

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/BquantFinance/world-data-bank/services/explorer/common"
	"github.com/tidwall/gjson"
)

// GetData retrieves the observations matching one (database, indicator,
// region, time-range) selector. With AutoPaginate set it pages through the
// windowed endpoint until the result set is exhausted, the reported total is
// reached or the MaxRecords budget is hit; otherwise it issues exactly one
// request and returns that page as-is.
//
// Pagination advances the skip offset by the number of observations actually
// received, not by any requested page size: the endpoint may return short
// pages before signaling exhaustion through an empty page or the total count.
func (dc *dataClient) GetData(ctx context.Context, request common.FetchRequest) (common.FetchResult, error) {
	params := buildDataParams(request)

	if !request.AutoPaginate {
		body, err := dc.httpCaller.Get(ctx, dataPath, params)
		if err != nil {
			return common.FetchResult{}, fmt.Errorf("data request failed: %w", err)
		}

		observations, total := parseDataPage(body)
		return common.FetchResult{
			Observations:  observations,
			ReturnedCount: len(observations),
			TotalCount:    total,
		}, nil
	}

	if request.MaxRecords <= 0 {
		return common.FetchResult{
			Observations:  make([]common.Observation, 0),
			ReturnedCount: 0,
			TotalCount:    0,
		}, nil
	}

	accumulated := make([]common.Observation, 0)
	skip := 0
	totalCount := -1
	truncated := false

	for {
		params.Set("skip", strconv.Itoa(skip))
		body, err := dc.httpCaller.Get(ctx, dataPath, params)
		if err != nil {
			return common.FetchResult{}, fmt.Errorf("data request failed at skip %d: %w", skip, err)
		}

		page, total := parseDataPage(body)
		if totalCount < 0 {
			totalCount = total
		}

		if len(page) == 0 {
			break
		}

		accumulated = append(accumulated, page...)

		// The items-received signal wins over an inconsistent reported total:
		// a zero total with a non-empty page keeps the loop going until an
		// empty page or the budget stops it.
		if totalCount > 0 && len(accumulated) >= totalCount {
			break
		}
		if len(accumulated) >= request.MaxRecords {
			truncated = true
			break
		}

		skip += len(page)

		err = dc.pacingDelay(ctx)
		if err != nil {
			return common.FetchResult{}, err
		}
	}

	if len(accumulated) > request.MaxRecords {
		accumulated = accumulated[:request.MaxRecords]
	}
	if totalCount < 0 {
		totalCount = 0
	}

	return common.FetchResult{
		Observations:  accumulated,
		ReturnedCount: len(accumulated),
		TotalCount:    totalCount,
		Truncated:     truncated,
	}, nil
}

// FetchMany fetches the same indicator across multiple region codes and
// merges the results in input order. A failing region is logged and skipped;
// the remaining regions still contribute to the aggregate.
func (dc *dataClient) FetchMany(
	ctx context.Context,
	databaseID string,
	indicator string,
	refAreas []string,
	timePeriodFrom string,
	timePeriodTo string,
	maxRecordsPerArea int,
) common.FetchManyResult {
	pairs := make([]common.IndicatorArea, 0, len(refAreas))
	for _, area := range refAreas {
		pairs = append(pairs, common.IndicatorArea{Indicator: indicator, RefArea: area})
	}

	return dc.FetchBatch(ctx, databaseID, pairs, timePeriodFrom, timePeriodTo, maxRecordsPerArea)
}

// FetchBatch is the batch-mode fan-out: one paginated fetch per explicit
// indicator x region pair, merged best-effort
func (dc *dataClient) FetchBatch(
	ctx context.Context,
	databaseID string,
	pairs []common.IndicatorArea,
	timePeriodFrom string,
	timePeriodTo string,
	maxRecordsPerArea int,
) common.FetchManyResult {
	merged := make([]common.Observation, 0)
	failed := 0

	for i, pair := range pairs {
		result, err := dc.GetData(ctx, common.FetchRequest{
			DatabaseID:     databaseID,
			Indicator:      pair.Indicator,
			RefArea:        pair.RefArea,
			TimePeriodFrom: timePeriodFrom,
			TimePeriodTo:   timePeriodTo,
			MaxRecords:     maxRecordsPerArea,
			AutoPaginate:   true,
		})
		if err != nil {
			log.Warn("fetch failed for pair, skipping",
				"database", databaseID, "indicator", pair.Indicator, "refArea", pair.RefArea, "error", err)
			failed++
			continue
		}

		merged = append(merged, result.Observations...)

		if i < len(pairs)-1 {
			err = dc.pacingDelay(ctx)
			if err != nil {
				break
			}
		}
	}

	return common.FetchManyResult{
		Observations:  merged,
		FailedRegions: failed,
	}
}

func (dc *dataClient) pacingDelay(ctx context.Context) error {
	if dc.pageDelay <= 0 {
		return nil
	}

	timer := time.NewTimer(dc.pageDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func buildDataParams(request common.FetchRequest) url.Values {
	params := url.Values{}
	params.Set("DATABASE_ID", request.DatabaseID)
	if request.Indicator != "" {
		params.Set("INDICATOR", request.Indicator)
	}
	if request.RefArea != "" {
		params.Set("REF_AREA", request.RefArea)
	}
	if request.TimePeriodFrom != "" {
		params.Set("timePeriodFrom", request.TimePeriodFrom)
	}
	if request.TimePeriodTo != "" {
		params.Set("timePeriodTo", request.TimePeriodTo)
	}

	return params
}

func parseDataPage(body []byte) ([]common.Observation, int) {
	parsed := gjson.ParseBytes(body)

	rows := parsed.Get("value").Array()
	observations := make([]common.Observation, 0, len(rows))
	for _, row := range rows {
		observations = append(observations, parseObservation(row))
	}

	return observations, int(parsed.Get("count").Int())
}

func parseObservation(row gjson.Result) common.Observation {
	observation := common.Observation{
		Indicator:  row.Get("INDICATOR").String(),
		RefArea:    row.Get("REF_AREA").String(),
		TimePeriod: row.Get("TIME_PERIOD").String(),
		Raw:        json.RawMessage(row.Raw),
	}

	obsValue := row.Get("OBS_VALUE")
	switch obsValue.Type {
	case gjson.Number:
		value := obsValue.Float()
		observation.Value = &value
	case gjson.String:
		value, err := strconv.ParseFloat(obsValue.String(), 64)
		if err == nil {
			observation.Value = &value
		}
	default:
		// null or absent: the observation is kept, the value stays nil
	}

	return observation
}
