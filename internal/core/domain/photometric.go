package domain

import "fmt"

// PhotometricType is the angular coordinate convention of the grid.
type PhotometricType int

const (
	// PhotometricTypeC uses C-planes (the common convention for
	// architectural luminaires).
	PhotometricTypeC PhotometricType = 1

	// PhotometricTypeB uses B-planes (floodlights).
	PhotometricTypeB PhotometricType = 2

	// PhotometricTypeA uses A-planes (automotive).
	PhotometricTypeA PhotometricType = 3
)

// UnitsType governs the interpretation of length, width and height.
type UnitsType int

const (
	// UnitsFeet means dimensions are in feet.
	UnitsFeet UnitsType = 1

	// UnitsMeters means dimensions are in meters.
	UnitsMeters UnitsType = 2
)

// String returns the unit name used in CLI flags and config.
func (u UnitsType) String() string {
	switch u {
	case UnitsFeet:
		return "feet"
	case UnitsMeters:
		return "meters"
	default:
		return fmt.Sprintf("units(%d)", int(u))
	}
}

// ParseUnitsType maps a unit name to its UnitsType.
func ParseUnitsType(name string) (UnitsType, error) {
	switch name {
	case "feet", "ft":
		return UnitsFeet, nil
	case "meters", "m":
		return UnitsMeters, nil
	default:
		return 0, fmt.Errorf("%w: unknown unit %q", ErrInvalidInput, name)
	}
}

// Dimension names one axis of the luminous opening.
type Dimension int

const (
	// DimensionLength is the axis along the luminaire's length.
	DimensionLength Dimension = iota

	// DimensionWidth is the axis across the luminaire.
	DimensionWidth

	// DimensionHeight is the vertical extent of the luminous opening.
	DimensionHeight
)

// String returns the lower-case dimension name.
func (d Dimension) String() string {
	switch d {
	case DimensionLength:
		return "length"
	case DimensionWidth:
		return "width"
	case DimensionHeight:
		return "height"
	default:
		return fmt.Sprintf("dimension(%d)", int(d))
	}
}

// PhotometricData is the quantitative record of a photometric file:
// the angle/intensity grid plus the physical and electrical quantities
// scaling operations act on.
type PhotometricData struct {
	// NumberOfLamps is the lamp count, at least 1.
	NumberOfLamps int

	// LumensPerLamp is the rated luminous flux per lamp.
	LumensPerLamp float64

	// Multiplier is the global scale factor applied by the format,
	// typically 1.
	Multiplier float64

	// TotalLumens is derived from NumberOfLamps, LumensPerLamp and
	// Multiplier at parse time, but stored explicitly so a scaling
	// operation that sets it directly stays authoritative.
	TotalLumens float64

	// NumberOfVerticalAngles and NumberOfHorizontalAngles must equal
	// the lengths of the corresponding angle slices.
	NumberOfVerticalAngles   int
	NumberOfHorizontalAngles int

	// PhotometricType classifies the angular coordinate convention.
	PhotometricType PhotometricType

	// UnitsType governs interpretation of the dimensions below.
	UnitsType UnitsType

	// Length, Width and Height are the luminous-opening dimensions,
	// in UnitsType units.
	Length float64
	Width  float64
	Height float64

	BallastFactor                float64
	BallastLampPhotometricFactor float64

	// InputWatts is the electrical power draw.
	InputWatts float64

	// VerticalAngles is a strictly ascending sequence of degrees,
	// typically 0-90 or 0-180.
	VerticalAngles []float64

	// HorizontalAngles is a strictly ascending sequence of degrees,
	// typically 0-360 or a symmetric subset.
	HorizontalAngles []float64

	// CandelaValues holds one row per horizontal angle; each row holds
	// one intensity sample per vertical angle.
	CandelaValues [][]float64
}

// Clone returns a deep copy of the photometric record. Scaling
// operations clone before mutating so a base document and its derived
// variants never share a grid buffer.
func (p PhotometricData) Clone() PhotometricData {
	out := p
	out.VerticalAngles = append([]float64(nil), p.VerticalAngles...)
	out.HorizontalAngles = append([]float64(nil), p.HorizontalAngles...)
	if p.CandelaValues != nil {
		out.CandelaValues = make([][]float64, len(p.CandelaValues))
		for i, row := range p.CandelaValues {
			out.CandelaValues[i] = append([]float64(nil), row...)
		}
	}
	return out
}

// Dimension returns the named luminous-opening dimension.
func (p PhotometricData) Dimension(d Dimension) float64 {
	switch d {
	case DimensionWidth:
		return p.Width
	case DimensionHeight:
		return p.Height
	default:
		return p.Length
	}
}

// SetDimension sets the named luminous-opening dimension.
func (p *PhotometricData) SetDimension(d Dimension, value float64) {
	switch d {
	case DimensionWidth:
		p.Width = value
	case DimensionHeight:
		p.Height = value
	default:
		p.Length = value
	}
}

// Validate checks the structural invariants of the record: declared
// counts match actual slice lengths, every candela row has one sample
// per vertical angle, angle sequences are strictly ascending, and the
// lamp count is at least 1.
func (p PhotometricData) Validate() error {
	if p.NumberOfLamps < 1 {
		return fmt.Errorf("%w: number of lamps must be at least 1, got %d", ErrFormat, p.NumberOfLamps)
	}
	if len(p.VerticalAngles) != p.NumberOfVerticalAngles {
		return fmt.Errorf("%w: declared %d vertical angles, found %d",
			ErrArity, p.NumberOfVerticalAngles, len(p.VerticalAngles))
	}
	if len(p.HorizontalAngles) != p.NumberOfHorizontalAngles {
		return fmt.Errorf("%w: declared %d horizontal angles, found %d",
			ErrArity, p.NumberOfHorizontalAngles, len(p.HorizontalAngles))
	}
	if len(p.CandelaValues) != p.NumberOfHorizontalAngles {
		return fmt.Errorf("%w: expected %d candela rows, found %d",
			ErrArity, p.NumberOfHorizontalAngles, len(p.CandelaValues))
	}
	for i, row := range p.CandelaValues {
		if len(row) != p.NumberOfVerticalAngles {
			return fmt.Errorf("%w: candela row %d has %d samples, expected %d",
				ErrArity, i, len(row), p.NumberOfVerticalAngles)
		}
	}
	if err := ascending("vertical", p.VerticalAngles); err != nil {
		return err
	}
	return ascending("horizontal", p.HorizontalAngles)
}

func ascending(axis string, angles []float64) error {
	for i := 1; i < len(angles); i++ {
		if angles[i] <= angles[i-1] {
			return fmt.Errorf("%w: %s angles must be strictly ascending at index %d (%g after %g)",
				ErrFormat, axis, i, angles[i], angles[i-1])
		}
	}
	return nil
}
