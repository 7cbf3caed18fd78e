package catalog

import (
	"sort"
	"strings"

	"github.com/BquantFinance/world-data-bank/services/explorer/common"
)

// catalog is the read-only lookup over the static database descriptors and
// the indicator-name decoding heuristics. It never mutates its tables.
type catalog struct{}

// NewCatalog creates a new catalog lookup instance
func NewCatalog() *catalog {
	return &catalog{}
}

// Get returns the descriptor of one database
func (c *catalog) Get(databaseID string) (common.DatabaseDescriptor, bool) {
	descriptor, found := databaseDescriptors[databaseID]
	return descriptor, found
}

// All returns all descriptors sorted by database id
func (c *catalog) All() []common.DatabaseDescriptor {
	descriptors := make([]common.DatabaseDescriptor, 0, len(databaseDescriptors))
	for _, descriptor := range databaseDescriptors {
		descriptors = append(descriptors, descriptor)
	}
	sort.Slice(descriptors, func(i, j int) bool {
		return descriptors[i].ID < descriptors[j].ID
	})

	return descriptors
}

// KnownDatabaseIDs returns the sorted ids of the static catalog
func (c *catalog) KnownDatabaseIDs() []string {
	ids := make([]string, 0, len(databaseDescriptors))
	for id := range databaseDescriptors {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Filter returns the descriptors matching any of the provided themes and any
// of the provided organizations. Empty filter slices match everything.
func (c *catalog) Filter(themes []string, organizations []string) []common.DatabaseDescriptor {
	filtered := make([]common.DatabaseDescriptor, 0)
	for _, descriptor := range c.All() {
		if len(organizations) > 0 && !contains(organizations, descriptor.Organization) {
			continue
		}
		if len(themes) > 0 && !matchesAnyTheme(descriptor.Themes, themes) {
			continue
		}
		filtered = append(filtered, descriptor)
	}

	return filtered
}

// DatabaseName returns the display name of a database, or the id itself when
// unknown
func (c *catalog) DatabaseName(databaseID string) string {
	descriptor, found := databaseDescriptors[databaseID]
	if !found {
		return databaseID
	}

	return descriptor.Name
}

// DecodeIndicatorName turns a cryptic indicator id into a readable name. A
// raw name coming from the API wins when it looks like prose (long enough and
// not all caps); otherwise the id parts past the database prefix are expanded
// through the abbreviation table.
func (c *catalog) DecodeIndicatorName(indicatorID string, rawName string) string {
	if isUsableRawName(rawName) {
		return rawName
	}

	parts := strings.Split(indicatorID, "_")
	meaningful := make([]string, 0, len(parts))
	for i, part := range parts {
		if i < 2 {
			// database prefix
			continue
		}
		decoded, found := abbreviationDecoder[strings.ToUpper(part)]
		if !found {
			decoded = part
		}
		meaningful = append(meaningful, decoded)
	}

	if len(meaningful) > 0 {
		return strings.Join(meaningful, " - ")
	}
	if rawName != "" {
		return rawName
	}

	return titleCase(strings.ReplaceAll(indicatorID, "_", " "))
}

func isUsableRawName(rawName string) bool {
	return len(rawName) > 20 && rawName != strings.ToUpper(rawName)
}

func titleCase(value string) string {
	words := strings.Fields(strings.ToLower(value))
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}

	return strings.Join(words, " ")
}

func contains(values []string, searched string) bool {
	for _, value := range values {
		if value == searched {
			return true
		}
	}

	return false
}

func matchesAnyTheme(descriptorThemes []string, searched []string) bool {
	for _, theme := range searched {
		if contains(descriptorThemes, theme) {
			return true
		}
	}

	return false
}

// IsInterfaceNil returns true if the value under the interface is nil
func (c *catalog) IsInterfaceNil() bool {
	return c == nil
}
