package services

import (
	"math"

	"github.com/candela-labs/iesedit/internal/core/domain"
	"github.com/candela-labs/iesedit/internal/core/ports/driven"
	"github.com/candela-labs/iesedit/internal/core/ports/driving"
)

// Ensure Editor implements the interface.
var _ driving.Editor = (*Editor)(nil)

// dimensionTolerance skips a dimension update whose proposed value
// does not meaningfully differ from the current one. This avoids
// spurious rescaling from floating-point noise or re-submission of an
// unchanged value.
const dimensionTolerance = 1e-3

// Editor wraps one document and exposes the scaling engine as
// intention-revealing operations. It is the only mutation surface the
// host sees; the grid is never assigned to directly.
type Editor struct {
	doc   domain.Document
	codec driven.Codec
}

// NewEditor creates an editor over an owned copy of doc.
func NewEditor(doc domain.Document, codec driven.Codec) *Editor {
	return &Editor{
		doc:   doc.Clone(),
		codec: codec,
	}
}

// Document returns an owned deep copy of the current document.
func (e *Editor) Document() domain.Document {
	return e.doc.Clone()
}

// UpdateWattage rescales to a new input wattage, preserving efficacy.
func (e *Editor) UpdateWattage(newWatts float64) error {
	doc, err := ScaleByWattage(e.doc, newWatts)
	if err != nil {
		return err
	}
	e.doc = doc
	return nil
}

// UpdateLumens rescales to a new total lumen output.
func (e *Editor) UpdateLumens(newLumens float64, adjustWattage bool) error {
	doc, err := ScaleByLumens(e.doc, newLumens, adjustWattage)
	if err != nil {
		return err
	}
	e.doc = doc
	return nil
}

// UpdateDimensions applies at most one scaling pass per provided
// dimension, in the fixed priority order length, width, height.
// Nil means leave the dimension alone; values within tolerance of the
// current value are skipped.
func (e *Editor) UpdateDimensions(length, width, height *float64) error {
	updates := []struct {
		value *float64
		dim   domain.Dimension
	}{
		{length, domain.DimensionLength},
		{width, domain.DimensionWidth},
		{height, domain.DimensionHeight},
	}

	for _, u := range updates {
		if u.value == nil {
			continue
		}
		if math.Abs(*u.value-e.doc.Photometric.Dimension(u.dim)) <= dimensionTolerance {
			continue
		}
		doc, err := ScaleByDimension(e.doc, *u.value, u.dim)
		if err != nil {
			return err
		}
		e.doc = doc
	}
	return nil
}

// ConvertUnits relabels dimensions in the target unit.
func (e *Editor) ConvertUnits(target domain.UnitsType) error {
	doc, err := ConvertUnits(e.doc, target)
	if err != nil {
		return err
	}
	e.doc = doc
	return nil
}

// ScaleByCCT applies a color-temperature efficiency multiplier.
func (e *Editor) ScaleByCCT(multiplier float64) error {
	doc, err := ScaleByCCT(e.doc, multiplier)
	if err != nil {
		return err
	}
	e.doc = doc
	return nil
}

// MergeMetadata overwrites only the metadata fields set in patch,
// leaving unset fields untouched.
func (e *Editor) MergeMetadata(patch domain.Metadata) {
	e.doc.Metadata.Merge(patch)
}

// Write serializes the current document to file text.
func (e *Editor) Write() string {
	return e.codec.Generate(&e.doc)
}
