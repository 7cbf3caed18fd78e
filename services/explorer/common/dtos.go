package common

import "encoding/json"

// Observation holds one data point returned by the remote API for an
// indicator/region/time period. Raw keeps the original row so fields this
// service does not model are still available to the caller.
type Observation struct {
	Indicator  string          `json:"indicator"`
	RefArea    string          `json:"refArea"`
	TimePeriod string          `json:"timePeriod"`
	Value      *float64        `json:"value"`
	Raw        json.RawMessage `json:"raw,omitempty"`
}

// FetchRequest describes one pagination session against the data endpoint
type FetchRequest struct {
	DatabaseID     string
	Indicator      string
	RefArea        string
	TimePeriodFrom string
	TimePeriodTo   string
	MaxRecords     int
	AutoPaginate   bool
}

// FetchResult is the terminal shape of a pagination session. Truncated means
// more data existed than the MaxRecords budget allowed, not an error.
type FetchResult struct {
	Observations  []Observation `json:"observations"`
	ReturnedCount int           `json:"returnedCount"`
	TotalCount    int           `json:"totalCount"`
	Truncated     bool          `json:"truncated"`
}

// FetchManyResult is the merged best-effort aggregate of a fan-out fetch.
// FailedRegions counts the pairs that were skipped; per-pair detail is only
// logged.
type FetchManyResult struct {
	Observations  []Observation `json:"observations"`
	FailedRegions int           `json:"failedRegions"`
}

// IndicatorArea is one indicator x region pair for batch fan-out fetches
type IndicatorArea struct {
	Indicator string
	RefArea   string
}

// SearchQuery holds the inputs of one full-text search call
type SearchQuery struct {
	Query   string
	Top     int
	Skip    int
	Filter  string
	OrderBy string
}

// IndicatorMatch is one search hit: the series description envelope of an
// indicator
type IndicatorMatch struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	DatabaseID  string          `json:"databaseId"`
	Description string          `json:"description"`
	Topics      []string        `json:"topics"`
	Source      json.RawMessage `json:"source,omitempty"`
}

// SearchResult is a page of matches plus the reported total count
type SearchResult struct {
	Matches    []IndicatorMatch `json:"matches"`
	TotalCount int              `json:"totalCount"`
}

// EmptySearchResult is the sentinel returned when a search degrades to "no
// results found" after an underlying failure
func EmptySearchResult() SearchResult {
	return SearchResult{
		Matches:    make([]IndicatorMatch, 0),
		TotalCount: 0,
	}
}

// IndicatorInfo is one catalog-enriched indicator listing entry
type IndicatorInfo struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Topics      []string `json:"topics"`
	DatabaseID  string   `json:"databaseId"`
}

// DatabaseDescriptor is the read-only reference record of one database in the
// Data360 catalog
type DatabaseDescriptor struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Organization   string   `json:"organization"`
	Themes         []string `json:"themes"`
	Description    string   `json:"description"`
	IndicatorCount int      `json:"indicatorCount"`
}

// HistoryEntry is one recorded query in the history store
type HistoryEntry struct {
	ID          string `json:"id"`
	Kind        string `json:"kind"`
	Params      string `json:"params"`
	RecordCount int    `json:"recordCount"`
	RecordedAt  int64  `json:"recordedAt"`
}
