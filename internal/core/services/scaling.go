package services

import (
	"fmt"
	"strconv"

	"github.com/candela-labs/iesedit/internal/core/domain"
)

// MetersPerFoot converts between the two dimension units the format
// supports. Conversion relabels the same physical object; it never
// scales light output.
const MetersPerFoot = 1.0 / 3.28084

// ScaleByWattage rescales a document to a new input wattage: more
// power, proportionally more light, same efficiency. Lumens per lamp,
// total lumens and every candela sample scale by newWatts over the
// current wattage, so efficacy is invariant.
func ScaleByWattage(doc domain.Document, newWatts float64) (domain.Document, error) {
	if newWatts <= 0 {
		return domain.Document{}, fmt.Errorf("%w: wattage must be positive, got %g",
			domain.ErrPrecondition, newWatts)
	}
	if doc.Photometric.InputWatts <= 0 {
		return domain.Document{}, fmt.Errorf("%w: document input watts must be positive, got %g",
			domain.ErrPrecondition, doc.Photometric.InputWatts)
	}

	out := doc.Clone()
	ratio := newWatts / doc.Photometric.InputWatts
	scaleFlux(&out.Photometric, ratio)
	out.Photometric.InputWatts = newWatts
	return out, nil
}

// ScaleByLumens rescales a document to a new total lumen output. When
// adjustWattage is true input watts scale by the same ratio and
// efficacy is preserved; when false watts stay put and efficacy
// changes, which models a lamp substitution at the same drive power.
func ScaleByLumens(doc domain.Document, newLumens float64, adjustWattage bool) (domain.Document, error) {
	if newLumens <= 0 {
		return domain.Document{}, fmt.Errorf("%w: lumens must be positive, got %g",
			domain.ErrPrecondition, newLumens)
	}
	if doc.Photometric.TotalLumens <= 0 {
		return domain.Document{}, fmt.Errorf("%w: document total lumens must be positive, got %g",
			domain.ErrPrecondition, doc.Photometric.TotalLumens)
	}

	out := doc.Clone()
	ratio := newLumens / doc.Photometric.TotalLumens
	scaleFlux(&out.Photometric, ratio)
	out.Photometric.TotalLumens = newLumens
	if adjustWattage {
		out.Photometric.InputWatts *= ratio
	}
	return out, nil
}

// ScaleByDimension rescales light output proportionally to a change of
// one luminous-opening dimension, modeling the luminaire as a linear
// source whose flux tracks its extent along the changed axis. Input
// watts are NOT touched here; wattage adjustment on a dimension change
// is an explicit, separately invoked policy (see BuildVariants).
func ScaleByDimension(doc domain.Document, newValue float64, dim domain.Dimension) (domain.Document, error) {
	if newValue <= 0 {
		return domain.Document{}, fmt.Errorf("%w: %s must be positive, got %g",
			domain.ErrPrecondition, dim, newValue)
	}
	current := doc.Photometric.Dimension(dim)
	if current <= 0 {
		return domain.Document{}, fmt.Errorf("%w: document %s must be positive, got %g",
			domain.ErrPrecondition, dim, current)
	}

	out := doc.Clone()
	ratio := newValue / current
	scaleFlux(&out.Photometric, ratio)
	out.Photometric.SetDimension(dim, newValue)
	mirrorDimension(&out.Metadata, dim, newValue)
	return out, nil
}

// ScaleByCCT applies a color-temperature variant multiplier: a
// different phosphor or chip efficiency at the same drive power.
// Light output scales, input watts do not.
func ScaleByCCT(doc domain.Document, multiplier float64) (domain.Document, error) {
	if multiplier <= 0 {
		return domain.Document{}, fmt.Errorf("%w: multiplier must be positive, got %g",
			domain.ErrPrecondition, multiplier)
	}

	out := doc.Clone()
	scaleFlux(&out.Photometric, multiplier)
	return out, nil
}

// ConvertUnits relabels the luminous-opening dimensions in the target
// unit. Candela, lumens and watts are untouched: the physical object
// is the same. Converting to the current unit is the identity.
func ConvertUnits(doc domain.Document, target domain.UnitsType) (domain.Document, error) {
	if target != domain.UnitsFeet && target != domain.UnitsMeters {
		return domain.Document{}, fmt.Errorf("%w: unknown units type %d",
			domain.ErrPrecondition, int(target))
	}

	out := doc.Clone()
	if doc.Photometric.UnitsType == target {
		return out, nil
	}

	factor := MetersPerFoot
	if target == domain.UnitsFeet {
		factor = 1.0 / MetersPerFoot
	}
	out.Photometric.UnitsType = target
	out.Photometric.Length *= factor
	out.Photometric.Width *= factor
	out.Photometric.Height *= factor
	mirrorDimension(&out.Metadata, domain.DimensionLength, out.Photometric.Length)
	mirrorDimension(&out.Metadata, domain.DimensionWidth, out.Photometric.Width)
	mirrorDimension(&out.Metadata, domain.DimensionHeight, out.Photometric.Height)
	return out, nil
}

// Efficacy returns lumens per watt. Non-positive watts are a
// precondition violation, not a value to divide by.
func Efficacy(lumens, watts float64) (float64, error) {
	if watts <= 0 {
		return 0, fmt.Errorf("%w: watts must be positive, got %g",
			domain.ErrPrecondition, watts)
	}
	return lumens / watts, nil
}

// scaleFlux multiplies every light-output quantity by ratio: lumens
// per lamp, total lumens and the full candela grid.
func scaleFlux(p *domain.PhotometricData, ratio float64) {
	p.LumensPerLamp *= ratio
	p.TotalLumens *= ratio
	for _, row := range p.CandelaValues {
		for i := range row {
			row[i] *= ratio
		}
	}
}

// mirrorDimension projects a changed dimension into the corresponding
// metadata luminous-opening field.
func mirrorDimension(m *domain.Metadata, dim domain.Dimension, value float64) {
	field := domain.NewField(strconv.FormatFloat(value, 'f', -1, 64))
	switch dim {
	case domain.DimensionWidth:
		m.OpeningWidth = field
	case domain.DimensionHeight:
		m.OpeningHeight = field
	default:
		m.OpeningLength = field
	}
}
