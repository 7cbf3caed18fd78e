package catalog

import (
	"context"
	"sort"

	"github.com/BquantFinance/world-data-bank/services/explorer/common"
	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
)

var log = logger.GetOrCreate("catalog")

const discoverSearchTerm = "population"
const discoverSearchTop = 1000

// Searcher defines the search capability used to discover live database ids
type Searcher interface {
	Search(ctx context.Context, query common.SearchQuery) (common.SearchResult, error)
	IsInterfaceNil() bool
}

// DiscoverDatabases returns the union of the static catalog ids and the
// database ids seen in a broad live search. A failing or nil searcher degrades
// to the static list.
func (c *catalog) DiscoverDatabases(ctx context.Context, searcher Searcher) []string {
	known := make(map[string]struct{})
	for _, id := range c.KnownDatabaseIDs() {
		known[id] = struct{}{}
	}

	if !check.IfNil(searcher) {
		result, err := searcher.Search(ctx, common.SearchQuery{
			Query: discoverSearchTerm,
			Top:   discoverSearchTop,
		})
		if err != nil {
			log.Warn("database discovery search failed, using the static catalog only", "error", err)
		} else {
			for _, match := range result.Matches {
				if match.DatabaseID == "" {
					continue
				}
				known[match.DatabaseID] = struct{}{}
			}
		}
	}

	ids := make([]string, 0, len(known))
	for id := range known {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}
