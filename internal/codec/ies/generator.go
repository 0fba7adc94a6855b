package ies

import (
	"fmt"
	"strings"

	"github.com/candela-labs/iesedit/internal/core/domain"
)

// Generate serializes a document back to file text. It is total over
// structurally valid documents: keyword order, conditional emission
// and numeric truncation follow the format's conventions exactly so
// output stays byte-compatible with reference tooling.
func (c *Codec) Generate(doc *domain.Document) string {
	m := doc.Metadata
	p := doc.Photometric

	var b strings.Builder
	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format+"\n", args...)
	}

	line("%s", m.Format.Or(DefaultFormatID))

	// Test identifier and lab are always present in the output, even
	// when blank; downstream tooling expects the keywords.
	line("[%s] %s", kwTest, m.Test.Value())
	line("[%s] %s", kwTestLab, m.TestLab.Value())

	// Second-tier fields are emitted only when present at all. A
	// present-but-empty field emits a blank value, which is how a
	// caller force-clears a field versus leaving it untouched.
	for _, kv := range []struct {
		name  string
		field domain.Field
	}{
		{kwTestDate, m.TestDate},
		{kwIssueDate, m.IssueDate},
		{kwLampPosition, m.LampPosition},
		{kwOther, m.Other},
	} {
		if kv.field.IsSet() {
			line("[%s] %s", kv.name, kv.field.Value())
		}
	}

	// The near-field line is a computed projection of the current
	// luminous-opening dimensions, regenerated on every write.
	if m.NearField.IsSet() && m.NearField.Value() != "" {
		line("[%s] %s %s %s %s", kwNearField, m.NearField.Value(),
			formatNum(p.Length), formatNum(p.Width), formatNum(p.Height))
	}

	line("[%s] %s", kwManufacturer, m.Manufacturer.Value())

	// A set luminaire catalog number overwrites the description at
	// generation time. This is a last-mile normalization, not a
	// persisted mutation.
	luminaire := m.Luminaire
	if m.LuminaireCatalog.IsSet() {
		line("[%s] %s", kwLumCatalog, m.LuminaireCatalog.Value())
		luminaire = m.LuminaireCatalog
	}
	if luminaire.IsSet() {
		line("[%s] %s", kwLuminaire, luminaire.Value())
	}

	for _, kv := range []struct {
		name  string
		field domain.Field
	}{
		{kwLampCatalog, m.LampCatalog},
		{kwLamp, m.Lamp},
		{kwBallastCat, m.BallastCatalog},
		{kwBallast, m.Ballast},
		{kwOpeningLength, m.OpeningLength},
		{kwOpeningWidth, m.OpeningWidth},
		{kwOpeningHeight, m.OpeningHeight},
	} {
		if kv.field.IsSet() {
			line("[%s] %s", kv.name, kv.field.Value())
		}
	}

	if m.ColorTemp.IsSet() {
		line("[%s] %sK", kwColorTemp, m.ColorTemp.Value())
	}
	if m.CRI.IsSet() {
		line("[%s] %s", kwCRI, m.CRI.Value())
	}

	for _, kw := range m.Extra {
		line("[%s] %s", kw.Name, kw.Value)
	}

	line("%s", tiltNone)

	// Main numeric line, width before length per the format.
	line("%s", formatNums([]float64{
		float64(p.NumberOfLamps),
		p.LumensPerLamp,
		p.Multiplier,
		float64(p.NumberOfVerticalAngles),
		float64(p.NumberOfHorizontalAngles),
		float64(p.PhotometricType),
		float64(p.UnitsType),
		p.Width,
		p.Length,
		p.Height,
	}))
	line("%s", formatNums([]float64{
		p.BallastFactor,
		p.BallastLampPhotometricFactor,
		p.InputWatts,
	}))

	line("%s", formatNums(p.VerticalAngles))
	line("%s", formatNums(p.HorizontalAngles))
	for _, row := range p.CandelaValues {
		line("%s", formatNums(row))
	}

	return b.String()
}
