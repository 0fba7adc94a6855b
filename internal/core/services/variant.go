package services

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/candela-labs/iesedit/internal/core/domain"
)

// VariantSpec describes one named color-temperature variant derived
// from a base document.
type VariantSpec struct {
	// Name suffixes the variant's file name.
	Name string

	// Multiplier is the lumen-per-watt efficiency ratio of the
	// variant relative to the base, e.g. 0.97 for a warmer CCT.
	Multiplier float64

	// ColorTemp, when non-empty, is stamped into the variant's
	// metadata (without unit suffix).
	ColorTemp string

	// Width, when positive, overrides the luminous-opening width;
	// flux scales by the width ratio.
	Width float64

	// AdjustWattageByWidth also scales input watts by the width
	// ratio. Wattage adjustment on a dimension change is deliberately
	// an explicit caller decision, never implicit engine behavior.
	AdjustWattageByWidth bool
}

// BuildVariants constructs one derived document per spec. The base
// document is never mutated; every variant is an independent deep
// copy.
func BuildVariants(base domain.Document, specs []VariantSpec) ([]domain.Document, error) {
	variants := make([]domain.Document, 0, len(specs))

	for _, spec := range specs {
		if spec.Name == "" {
			return nil, fmt.Errorf("%w: variant name must not be empty", domain.ErrInvalidInput)
		}

		v, err := ScaleByCCT(base, spec.Multiplier)
		if err != nil {
			return nil, fmt.Errorf("variant %q: %w", spec.Name, err)
		}

		if spec.Width > 0 {
			widthRatio := spec.Width / base.Photometric.Width
			v, err = ScaleByDimension(v, spec.Width, domain.DimensionWidth)
			if err != nil {
				return nil, fmt.Errorf("variant %q: %w", spec.Name, err)
			}
			if spec.AdjustWattageByWidth {
				// ScaleByDimension already scaled flux by the width
				// ratio; only the drive power moves here, so efficacy
				// is preserved.
				v.Photometric.InputWatts *= widthRatio
			}
		}

		if spec.ColorTemp != "" {
			v.Metadata.ColorTemp = domain.NewField(spec.ColorTemp)
		}
		v.FileName = variantFileName(base.FileName, spec.Name)
		variants = append(variants, v)
	}

	return variants, nil
}

// variantFileName inserts the variant name before the extension.
func variantFileName(base, name string) string {
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext) + "-" + name + ext
}
