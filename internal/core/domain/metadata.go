package domain

// Field is an optional metadata value. Absence and empty string are
// distinct states: an absent field is omitted on serialization while a
// present-but-empty field is emitted as a blank value. The distinction
// is load-bearing for round-trip fidelity.
type Field struct {
	set   bool
	value string
}

// NewField returns a present field holding value.
func NewField(value string) Field {
	return Field{set: true, value: value}
}

// IsSet reports whether the field is present at all.
func (f Field) IsSet() bool {
	return f.set
}

// Value returns the field value, or the empty string when unset.
func (f Field) Value() string {
	return f.value
}

// Or returns the field value when set, otherwise fallback.
func (f Field) Or(fallback string) string {
	if f.set {
		return f.value
	}
	return fallback
}

// Keyword is one unrecognized [KEYWORD] value pair preserved verbatim.
// Unknown keywords are not an error: they pass through opaquely so a
// document round-trips even for fields the model does not understand.
type Keyword struct {
	Name  string
	Value string
}

// Metadata holds the descriptive keyword fields of a photometric file.
// Every field is optional.
type Metadata struct {
	// Format is the format identifier line, stored verbatim.
	Format Field

	// Test is the test report identifier.
	Test Field

	// TestLab is the laboratory that performed the test.
	TestLab Field

	// TestDate is the date of the test.
	TestDate Field

	// IssueDate is the date the file was issued.
	IssueDate Field

	// LampPosition is the lamp orientation during the test.
	LampPosition Field

	// Other is a free-text notes field.
	Other Field

	// NearField is the near-field photometry descriptor. On output it
	// embeds the current luminous-opening dimensions.
	NearField Field

	// Manufacturer is the luminaire manufacturer.
	Manufacturer Field

	// Luminaire is the luminaire description.
	Luminaire Field

	// LuminaireCatalog is the luminaire catalog number.
	LuminaireCatalog Field

	// Lamp is the lamp description.
	Lamp Field

	// LampCatalog is the lamp catalog number.
	LampCatalog Field

	// Ballast is the ballast description.
	Ballast Field

	// BallastCatalog is the ballast catalog number.
	BallastCatalog Field

	// ColorTemp is the correlated color temperature, without unit suffix.
	ColorTemp Field

	// CRI is the color rendering index.
	CRI Field

	// OpeningLength, OpeningWidth and OpeningHeight mirror the
	// luminous-opening dimensions of the photometric record.
	OpeningLength Field
	OpeningWidth  Field
	OpeningHeight Field

	// Extra preserves unrecognized keywords in file order.
	Extra []Keyword
}

// Clone returns a deep copy of the metadata.
func (m Metadata) Clone() Metadata {
	out := m
	if m.Extra != nil {
		out.Extra = make([]Keyword, len(m.Extra))
		copy(out.Extra, m.Extra)
	}
	return out
}

// Merge overwrites only the fields that are set in patch, leaving unset
// fields untouched. A present-but-empty patch field clears the target
// value while keeping it present. Extra keywords are not merged.
func (m *Metadata) Merge(patch Metadata) {
	fields := []struct {
		dst *Field
		src Field
	}{
		{&m.Format, patch.Format},
		{&m.Test, patch.Test},
		{&m.TestLab, patch.TestLab},
		{&m.TestDate, patch.TestDate},
		{&m.IssueDate, patch.IssueDate},
		{&m.LampPosition, patch.LampPosition},
		{&m.Other, patch.Other},
		{&m.NearField, patch.NearField},
		{&m.Manufacturer, patch.Manufacturer},
		{&m.Luminaire, patch.Luminaire},
		{&m.LuminaireCatalog, patch.LuminaireCatalog},
		{&m.Lamp, patch.Lamp},
		{&m.LampCatalog, patch.LampCatalog},
		{&m.Ballast, patch.Ballast},
		{&m.BallastCatalog, patch.BallastCatalog},
		{&m.ColorTemp, patch.ColorTemp},
		{&m.CRI, patch.CRI},
		{&m.OpeningLength, patch.OpeningLength},
		{&m.OpeningWidth, patch.OpeningWidth},
		{&m.OpeningHeight, patch.OpeningHeight},
	}

	for _, f := range fields {
		if f.src.IsSet() {
			*f.dst = f.src
		}
	}
}
