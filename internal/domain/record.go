// Package domain contains the core business entities and interfaces.
package domain

import "context"

// Record is one logged day's metrics.
type Record struct {
	ID       int64   `json:"id"`
	Date     string  `json:"date"`
	Water    float64 `json:"water"`
	Exercise float64 `json:"exercise"`
	Calories float64 `json:"calories"`
}

// SortMode selects the display ordering of a projected collection.
type SortMode string

const (
	// SortMostRecent orders by id descending (higher id = created later).
	SortMostRecent SortMode = "most-recent"
	// SortHighestWater orders by water descending, input order breaking ties.
	SortHighestWater SortMode = "highest-water"
)

// ParseSortMode maps a raw selector to a SortMode, defaulting to SortMostRecent.
func ParseSortMode(s string) SortMode {
	if s == string(SortHighestWater) {
		return SortHighestWater
	}
	return SortMostRecent
}

// CollectionRepository is the port for durable storage of the full record
// collection. The collection is always written and read wholesale.
type CollectionRepository interface {
	Load(ctx context.Context) ([]Record, error)
	Save(ctx context.Context, records []Record) error
}

// Delivery is the port for handing an export artifact to a platform-specific
// share target.
type Delivery interface {
	Available() bool
	Deliver(ctx context.Context, name string, data []byte) error
}
