package driven

import "context"

// CatalogEntry is the persisted summary row for one document.
type CatalogEntry struct {
	ID               string
	FileName         string
	Test             string
	Manufacturer     string
	TotalLumens      float64
	InputWatts       float64
	Efficacy         float64
	VerticalAngles   int
	HorizontalAngles int
}

// CatalogStore persists document summaries across runs.
type CatalogStore interface {
	// Add inserts or replaces a catalog entry.
	Add(ctx context.Context, entry *CatalogEntry) error

	// List returns all entries ordered by file name.
	List(ctx context.Context) ([]CatalogEntry, error)

	// Close releases the underlying storage.
	Close() error
}
