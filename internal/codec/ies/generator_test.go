package ies

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/candela-labs/iesedit/internal/core/domain"
)

// minimalDoc builds the smallest structurally valid document.
func minimalDoc() domain.Document {
	return domain.Document{
		FileName: "minimal.ies",
		Photometric: domain.PhotometricData{
			NumberOfLamps:                1,
			LumensPerLamp:                1000,
			Multiplier:                   1,
			TotalLumens:                  1000,
			NumberOfVerticalAngles:       2,
			NumberOfHorizontalAngles:     1,
			PhotometricType:              domain.PhotometricTypeC,
			UnitsType:                    domain.UnitsMeters,
			Length:                       1.2,
			Width:                        0.3,
			Height:                       0.1,
			BallastFactor:                1,
			BallastLampPhotometricFactor: 1,
			InputWatts:                   10,
			VerticalAngles:               []float64{0, 90},
			HorizontalAngles:             []float64{0},
			CandelaValues:                [][]float64{{500, 100}},
		},
	}
}

func TestGenerate_DefaultFormatIdentifier(t *testing.T) {
	codec := New()
	doc := minimalDoc()

	out := codec.Generate(&doc)

	lines := strings.Split(out, "\n")
	assert.Equal(t, DefaultFormatID, lines[0])
}

func TestGenerate_AlwaysEmittedKeywords(t *testing.T) {
	codec := New()
	doc := minimalDoc()

	out := codec.Generate(&doc)

	// Test identifier, lab and manufacturer appear even when unset.
	assert.Contains(t, out, "[TEST]")
	assert.Contains(t, out, "[TESTLAB]")
	assert.Contains(t, out, "[MANUFAC]")
	assert.Contains(t, out, "TILT=NONE\n")
}

func TestGenerate_UnsetVersusEmptySecondTier(t *testing.T) {
	codec := New()

	doc := minimalDoc()
	out := codec.Generate(&doc)
	assert.NotContains(t, out, "[TESTDATE]", "unset field must be omitted")

	doc.Metadata.TestDate = domain.NewField("")
	out = codec.Generate(&doc)
	assert.Contains(t, out, "[TESTDATE]", "present-but-empty field must emit a blank value")
}

func TestGenerate_NearFieldProjectsDimensions(t *testing.T) {
	codec := New()
	doc := minimalDoc()
	doc.Metadata.NearField = domain.NewField("Luminous opening")

	out := codec.Generate(&doc)
	assert.Contains(t, out, "[NEARFIELD] Luminous opening 1.2 0.3 0.1\n")

	// The line is a projection of current dimensions, regenerated on
	// every write.
	doc.Photometric.Length = 2.4
	out = codec.Generate(&doc)
	assert.Contains(t, out, "[NEARFIELD] Luminous opening 2.4 0.3 0.1\n")
}

func TestGenerate_EmptyNearFieldOmitted(t *testing.T) {
	codec := New()
	doc := minimalDoc()
	doc.Metadata.NearField = domain.NewField("")

	out := codec.Generate(&doc)
	assert.NotContains(t, out, "[NEARFIELD]")
}

func TestGenerate_LumCatOverwritesLuminaire(t *testing.T) {
	codec := New()
	doc := minimalDoc()
	doc.Metadata.Luminaire = domain.NewField("2x4 recessed troffer")
	doc.Metadata.LuminaireCatalog = domain.NewField("AL-24-40")

	out := codec.Generate(&doc)

	assert.Contains(t, out, "[LUMCAT] AL-24-40\n")
	assert.Contains(t, out, "[LUMINAIRE] AL-24-40\n")
	assert.NotContains(t, out, "2x4 recessed troffer")

	// Generation-time normalization only, never a persisted mutation.
	assert.Equal(t, "2x4 recessed troffer", doc.Metadata.Luminaire.Value())
}

func TestGenerate_ColorTempUnitMarker(t *testing.T) {
	codec := New()
	doc := minimalDoc()
	doc.Metadata.ColorTemp = domain.NewField("3500")
	doc.Metadata.CRI = domain.NewField("90")

	out := codec.Generate(&doc)
	assert.Contains(t, out, "[COLORTEMP] 3500K\n")
	assert.Contains(t, out, "[CRI] 90\n")
}

func TestGenerate_ExtraKeywordsReplayed(t *testing.T) {
	codec := New()
	doc := minimalDoc()
	doc.Metadata.Extra = []domain.Keyword{
		{Name: "CHECKSUM", Value: "77AB12"},
		{Name: "MORE", Value: "continued notes"},
	}

	out := codec.Generate(&doc)

	first := strings.Index(out, "[CHECKSUM] 77AB12")
	second := strings.Index(out, "[MORE] continued notes")
	require.GreaterOrEqual(t, first, 0)
	require.GreaterOrEqual(t, second, 0)
	assert.Less(t, first, second, "unknown keywords keep original order")
}

func TestGenerate_NumericLines(t *testing.T) {
	codec := New()
	doc := minimalDoc()

	out := codec.Generate(&doc)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")

	// Locate the main line right after the tilt marker.
	tilt := -1
	for i, l := range lines {
		if l == "TILT=NONE" {
			tilt = i
			break
		}
	}
	require.GreaterOrEqual(t, tilt, 0)

	// Width precedes length on the main line.
	assert.Equal(t, "1 1000 1 2 1 1 2 0.3 1.2 0.1", lines[tilt+1])
	assert.Equal(t, "1 1 10", lines[tilt+2])
	assert.Equal(t, "0 90", lines[tilt+3])
	assert.Equal(t, "0", lines[tilt+4])
	assert.Equal(t, "500 100", lines[tilt+5])
	assert.Len(t, lines, tilt+6)
}

func TestGenerate_TruncatesNotRounds(t *testing.T) {
	codec := New()
	doc := minimalDoc()
	doc.Photometric.InputWatts = 10.9999
	doc.Photometric.CandelaValues = [][]float64{{123.4567, 99.9995}}

	out := codec.Generate(&doc)

	assert.Contains(t, out, "1 1 10.999\n")
	assert.Contains(t, out, "123.456 99.999\n")
}

func BenchmarkGenerate(b *testing.B) {
	codec := New()
	doc := minimalDoc()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = codec.Generate(&doc)
	}
}
