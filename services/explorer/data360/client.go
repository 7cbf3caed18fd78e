package data360

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/BquantFinance/world-data-bank/services/explorer/common"
	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/tidwall/gjson"
)

var log = logger.GetOrCreate("data360")

const (
	searchPath     = "/data360/searchv2"
	indicatorsPath = "/data360/indicators"
	metadataPath   = "/data360/metadata"
	dataPath       = "/data360/data"

	// defaultSearchTerm replaces empty or wildcard queries: the remote index
	// misbehaves on degenerate input, so it is avoided by construction
	defaultSearchTerm = "GDP"

	searchSelectFields = "series_description/idno, series_description/name, " +
		"series_description/database_id, series_description/description, " +
		"series_description/topics, series_description/source"

	defaultTop            = 100
	maxTop                = 1000
	defaultIndicatorLimit = 500
)

// ArgsDataClient defines the Data360 client arguments
type ArgsDataClient struct {
	HTTPCaller HTTPCaller
	Decoder    NameDecoder
	PageDelay  time.Duration
}

// dataClient implements all operations consumed from the Data360 API surface:
// search, indicators listing, metadata and (paginated) data retrieval
type dataClient struct {
	httpCaller HTTPCaller
	decoder    NameDecoder
	pageDelay  time.Duration
}

// NewDataClient creates a new Data360 client
func NewDataClient(args ArgsDataClient) (*dataClient, error) {
	if check.IfNil(args.HTTPCaller) {
		return nil, errors.New("nil http caller")
	}
	if check.IfNil(args.Decoder) {
		return nil, errors.New("nil name decoder")
	}

	return &dataClient{
		httpCaller: args.HTTPCaller,
		decoder:    args.Decoder,
		pageDelay:  args.PageDelay,
	}, nil
}

// Search runs one full-text query against the remote index. Empty, blank and
// wildcard queries are replaced with a fixed default term. Failures are
// returned as real errors; the cached layer above degrades them to the empty
// sentinel.
func (dc *dataClient) Search(ctx context.Context, query common.SearchQuery) (common.SearchResult, error) {
	term := strings.TrimSpace(query.Query)
	if term == "" || term == "*" {
		term = defaultSearchTerm
	}

	top := query.Top
	if top <= 0 {
		top = defaultTop
	}
	if top > maxTop {
		top = maxTop
	}
	skip := query.Skip
	if skip < 0 {
		skip = 0
	}

	payload := map[string]any{
		"count":  true,
		"select": searchSelectFields,
		"search": term,
		"top":    top,
		"skip":   skip,
	}
	if query.Filter != "" {
		payload["filter"] = query.Filter
	}
	if query.OrderBy != "" {
		payload["orderby"] = query.OrderBy
	}

	body, err := dc.httpCaller.PostJSON(ctx, searchPath, payload)
	if err != nil {
		return common.SearchResult{}, fmt.Errorf("search request failed: %w", err)
	}

	return parseSearchResult(body), nil
}

// ListIndicators returns the raw indicator identifiers of one database
func (dc *dataClient) ListIndicators(ctx context.Context, databaseID string) ([]string, error) {
	params := url.Values{}
	params.Set("datasetId", databaseID)

	body, err := dc.httpCaller.Get(ctx, indicatorsPath, params)
	if err != nil {
		return nil, fmt.Errorf("indicators request failed: %w", err)
	}

	ids := make([]string, 0)
	for _, item := range gjson.ParseBytes(body).Array() {
		if item.String() != "" {
			ids = append(ids, item.String())
		}
	}

	return ids, nil
}

// IndicatorMetadata returns the raw metadata envelope for one indicator
func (dc *dataClient) IndicatorMetadata(ctx context.Context, indicatorID string) ([]byte, error) {
	payload := map[string]any{
		"query": fmt.Sprintf("&$filter=series_description/idno eq '%s'", indicatorID),
	}

	body, err := dc.httpCaller.PostJSON(ctx, metadataPath, payload)
	if err != nil {
		return nil, fmt.Errorf("metadata request failed: %w", err)
	}

	return body, nil
}

// IndicatorsWithMetadata lists the indicators of one database enriched with
// names and topics. It first queries the search index filtered by database id;
// when that yields nothing it falls back to the plain indicators endpoint and
// decoded names.
func (dc *dataClient) IndicatorsWithMetadata(ctx context.Context, databaseID string, limit int) ([]common.IndicatorInfo, error) {
	if limit <= 0 {
		limit = defaultIndicatorLimit
	}

	searchTop := limit
	if searchTop > maxTop {
		searchTop = maxTop
	}

	result, err := dc.Search(ctx, common.SearchQuery{
		Query:  "*",
		Top:    searchTop,
		Filter: fmt.Sprintf("series_description/database_id eq '%s'", databaseID),
	})
	if err == nil && len(result.Matches) > 0 {
		infos := make([]common.IndicatorInfo, 0, len(result.Matches))
		for _, match := range result.Matches {
			infos = append(infos, common.IndicatorInfo{
				ID:          match.ID,
				Name:        dc.decoder.DecodeIndicatorName(match.ID, match.Name),
				Description: match.Description,
				Topics:      match.Topics,
				DatabaseID:  databaseID,
			})
		}
		if len(infos) > limit {
			infos = infos[:limit]
		}
		return infos, nil
	}
	if err != nil {
		log.Warn("indicator search failed, falling back to indicators endpoint", "database", databaseID, "error", err)
	}

	ids, err := dc.ListIndicators(ctx, databaseID)
	if err != nil {
		return nil, err
	}

	if len(ids) > limit {
		ids = ids[:limit]
	}
	infos := make([]common.IndicatorInfo, 0, len(ids))
	for _, id := range ids {
		infos = append(infos, common.IndicatorInfo{
			ID:          id,
			Name:        dc.decoder.DecodeIndicatorName(id, ""),
			Description: fmt.Sprintf("Indicator from %s", dc.decoder.DatabaseName(databaseID)),
			Topics:      make([]string, 0),
			DatabaseID:  databaseID,
		})
	}

	return infos, nil
}

func parseSearchResult(body []byte) common.SearchResult {
	parsed := gjson.ParseBytes(body)

	matches := make([]common.IndicatorMatch, 0)
	for _, item := range parsed.Get("value").Array() {
		desc := item.Get("series_description")
		if !desc.Exists() || desc.Get("idno").String() == "" {
			continue
		}

		topics := make([]string, 0)
		for _, topic := range desc.Get("topics").Array() {
			name := topic.Get("name").String()
			if name != "" {
				topics = append(topics, name)
			}
		}

		match := common.IndicatorMatch{
			ID:          desc.Get("idno").String(),
			Name:        desc.Get("name").String(),
			DatabaseID:  desc.Get("database_id").String(),
			Description: desc.Get("description").String(),
			Topics:      topics,
		}
		if source := desc.Get("source"); source.Exists() {
			match.Source = []byte(source.Raw)
		}

		matches = append(matches, match)
	}

	return common.SearchResult{
		Matches:    matches,
		TotalCount: int(parsed.Get(`\@odata\.count`).Int()),
	}
}

// IsInterfaceNil returns true if the value under the interface is nil
func (dc *dataClient) IsInterfaceNil() bool {
	return dc == nil
}
