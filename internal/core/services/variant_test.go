package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/candela-labs/iesedit/internal/core/domain"
)

func TestBuildVariants_CCTFamily(t *testing.T) {
	base := baseDoc()

	specs := []VariantSpec{
		{Name: "3000K", Multiplier: 0.95, ColorTemp: "3000"},
		{Name: "4000K", Multiplier: 1.0, ColorTemp: "4000"},
		{Name: "5000K", Multiplier: 1.02, ColorTemp: "5000"},
	}

	variants, err := BuildVariants(base, specs)
	require.NoError(t, err)
	require.Len(t, variants, 3)

	assert.Equal(t, "base-3000K.ies", variants[0].FileName)
	assert.InDelta(t, 1900.0, variants[0].Photometric.TotalLumens, 1e-9)
	assert.Equal(t, "3000", variants[0].Metadata.ColorTemp.Value())

	assert.Equal(t, 2000.0, variants[1].Photometric.TotalLumens)

	assert.InDelta(t, 2040.0, variants[2].Photometric.TotalLumens, 1e-9)

	// A CCT variant is an efficacy change at the same drive power.
	for i := range variants {
		assert.Equal(t, 1.0, variants[i].Photometric.InputWatts)
	}
}

func TestBuildVariants_BaseUntouched(t *testing.T) {
	base := baseDoc()

	_, err := BuildVariants(base, []VariantSpec{
		{Name: "A", Multiplier: 0.5, Width: 1.0, AdjustWattageByWidth: true},
	})
	require.NoError(t, err)

	assert.Equal(t, baseDoc().Photometric, base.Photometric)
	assert.False(t, base.Metadata.OpeningWidth.IsSet())
}

func TestBuildVariants_WidthOverride(t *testing.T) {
	base := baseDoc() // width 0.5, watts 1, lumens 2000

	variants, err := BuildVariants(base, []VariantSpec{
		{Name: "wide", Multiplier: 1.0, Width: 1.0},
	})
	require.NoError(t, err)

	p := variants[0].Photometric
	assert.Equal(t, 1.0, p.Width)
	assert.Equal(t, 4000.0, p.TotalLumens, "flux scales by the width ratio")
	assert.Equal(t, 1.0, p.InputWatts, "wattage only scales when explicitly requested")
}

func TestBuildVariants_WidthOverrideWithWattage(t *testing.T) {
	base := baseDoc()

	variants, err := BuildVariants(base, []VariantSpec{
		{Name: "wide", Multiplier: 1.0, Width: 1.0, AdjustWattageByWidth: true},
	})
	require.NoError(t, err)

	p := variants[0].Photometric
	assert.Equal(t, 4000.0, p.TotalLumens, "flux scales by the width ratio exactly once")
	assert.Equal(t, 2.0, p.InputWatts, "wattage scales by the width ratio")
	assert.Equal(t, 2000.0, p.CandelaValues[0][0], "grid samples scale by the width ratio exactly once")

	// Flux and watts move by the same ratio, so efficacy is unchanged.
	got, err := Efficacy(p.TotalLumens, p.InputWatts)
	require.NoError(t, err)
	want, err := Efficacy(base.Photometric.TotalLumens, base.Photometric.InputWatts)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestBuildVariants_Errors(t *testing.T) {
	base := baseDoc()

	_, err := BuildVariants(base, []VariantSpec{{Name: "", Multiplier: 1}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = BuildVariants(base, []VariantSpec{{Name: "bad", Multiplier: 0}})
	assert.ErrorIs(t, err, domain.ErrPrecondition)
}
