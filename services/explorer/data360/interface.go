package data360

import (
	"context"
	"net/url"
)

// HTTPCaller defines the transport operations the Data360 client needs. One
// call means one HTTP round-trip: no retries are expected from implementations.
type HTTPCaller interface {
	// Get issues one GET request and returns the response body on a 2xx status
	Get(ctx context.Context, path string, params url.Values) ([]byte, error)

	// PostJSON issues one POST request with a JSON body and returns the response body on a 2xx status
	PostJSON(ctx context.Context, path string, payload any) ([]byte, error)

	IsInterfaceNil() bool
}

// NameDecoder turns cryptic indicator identifiers into readable display names
type NameDecoder interface {
	// DecodeIndicatorName returns a readable name for the indicator, preferring rawName when it looks usable
	DecodeIndicatorName(indicatorID string, rawName string) string

	// DatabaseName returns the display name of a database, or the id itself when unknown
	DatabaseName(databaseID string) string

	IsInterfaceNil() bool
}
