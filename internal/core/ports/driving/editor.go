package driving

import (
	"context"

	"github.com/candela-labs/iesedit/internal/core/domain"
)

// Editor wraps one document and exposes the mutation operations as a
// single coherent API. Every mutation keeps the dependent numeric
// fields (peak intensity, total lumens, efficacy) mutually consistent.
type Editor interface {
	// Document returns an owned deep copy of the current document.
	Document() domain.Document

	// UpdateWattage rescales the document to a new input wattage,
	// preserving efficacy.
	UpdateWattage(newWatts float64) error

	// UpdateLumens rescales the document to a new total lumen output.
	// When adjustWattage is true, input watts scale by the same ratio
	// (efficacy preserved); otherwise watts are untouched.
	UpdateLumens(newLumens float64, adjustWattage bool) error

	// UpdateDimensions rescales per provided dimension in the fixed
	// priority order length, width, height. Nil means leave alone.
	// Values within tolerance of the current value are skipped.
	UpdateDimensions(length, width, height *float64) error

	// ConvertUnits relabels dimensions in the target unit without
	// touching candela, lumens or watts.
	ConvertUnits(target domain.UnitsType) error

	// ScaleByCCT applies a color-temperature efficiency multiplier to
	// the light output, leaving input watts unchanged.
	ScaleByCCT(multiplier float64) error

	// MergeMetadata overwrites only the metadata fields set in patch.
	MergeMetadata(patch domain.Metadata)

	// Write serializes the current document to file text.
	Write() string
}

// Library manages the host application's collection of loaded
// documents and their persisted catalog.
type Library interface {
	// Load parses raw text and stores the document under a fresh ID.
	Load(ctx context.Context, text, fileName string) (*domain.Document, error)

	// Get returns a stored document by ID.
	Get(ctx context.Context, id string) (*domain.Document, error)

	// Documents returns all stored documents.
	Documents(ctx context.Context) ([]domain.Document, error)

	// Catalog persists summary rows for all stored documents.
	Catalog(ctx context.Context) error
}
