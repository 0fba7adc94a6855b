package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/candela-labs/iesedit/internal/codec/ies"
	"github.com/candela-labs/iesedit/internal/core/domain"
	"github.com/candela-labs/iesedit/internal/core/ports/driving"
)

func newEditor(t *testing.T) *Editor {
	t.Helper()
	return NewEditor(baseDoc(), ies.New())
}

func TestNewEditor_OwnsCopy(t *testing.T) {
	doc := baseDoc()
	editor := NewEditor(doc, ies.New())

	doc.Photometric.CandelaValues[0][0] = -1

	assert.Equal(t, 1000.0, editor.Document().Photometric.CandelaValues[0][0])
}

func TestEditor_DocumentReturnsCopy(t *testing.T) {
	editor := newEditor(t)

	snapshot := editor.Document()
	snapshot.Photometric.CandelaValues[0][0] = -1

	assert.Equal(t, 1000.0, editor.Document().Photometric.CandelaValues[0][0])
}

func TestEditor_UpdateWattage(t *testing.T) {
	editor := newEditor(t)

	require.NoError(t, editor.UpdateWattage(2))

	p := editor.Document().Photometric
	assert.Equal(t, 2.0, p.InputWatts)
	assert.Equal(t, 4000.0, p.TotalLumens)
}

func TestEditor_UpdateLumens(t *testing.T) {
	editor := newEditor(t)

	require.NoError(t, editor.UpdateLumens(1000, false))

	p := editor.Document().Photometric
	assert.Equal(t, 1000.0, p.TotalLumens)
	assert.Equal(t, 1.0, p.InputWatts)
}

func TestEditor_UpdateDimensions_PriorityOrder(t *testing.T) {
	editor := newEditor(t)

	// Length 1.0 -> 2.0 doubles flux, then width 0.5 -> 1.0 doubles
	// it again: length is applied before width.
	length, width := 2.0, 1.0
	require.NoError(t, editor.UpdateDimensions(&length, &width, nil))

	p := editor.Document().Photometric
	assert.Equal(t, 2.0, p.Length)
	assert.Equal(t, 1.0, p.Width)
	assert.Equal(t, 0.1, p.Height)
	assert.Equal(t, 8000.0, p.TotalLumens)
}

func TestEditor_UpdateDimensions_SkipsWithinTolerance(t *testing.T) {
	editor := newEditor(t)

	// Within 1e-3 of the current value: no rescale happens.
	length := 1.0005
	require.NoError(t, editor.UpdateDimensions(&length, nil, nil))

	p := editor.Document().Photometric
	assert.Equal(t, 1.0, p.Length)
	assert.Equal(t, 2000.0, p.TotalLumens)
}

func TestEditor_UpdateDimensions_NilLeavesAlone(t *testing.T) {
	editor := newEditor(t)

	require.NoError(t, editor.UpdateDimensions(nil, nil, nil))

	assert.Equal(t, baseDoc().Photometric, editor.Document().Photometric)
}

func TestEditor_UpdateDimensions_PropagatesPrecondition(t *testing.T) {
	editor := newEditor(t)

	bad := -2.0
	err := editor.UpdateDimensions(&bad, nil, nil)
	assert.ErrorIs(t, err, domain.ErrPrecondition)
}

func TestEditor_ConvertUnits(t *testing.T) {
	editor := newEditor(t)

	require.NoError(t, editor.ConvertUnits(domain.UnitsFeet))

	p := editor.Document().Photometric
	assert.Equal(t, domain.UnitsFeet, p.UnitsType)
	assert.InDelta(t, 3.28084, p.Length, 1e-9)
}

func TestEditor_ScaleByCCT(t *testing.T) {
	editor := newEditor(t)

	require.NoError(t, editor.ScaleByCCT(1.03))

	p := editor.Document().Photometric
	assert.InDelta(t, 2060.0, p.TotalLumens, 1e-9)
	assert.Equal(t, 1.0, p.InputWatts)
}

func TestEditor_MergeMetadata(t *testing.T) {
	editor := newEditor(t)

	editor.MergeMetadata(domain.Metadata{Manufacturer: domain.NewField("Acme")})

	m := editor.Document().Metadata
	assert.Equal(t, "Acme", m.Manufacturer.Value())
	assert.Equal(t, "T-1", m.Test.Value(), "unset patch fields leave values untouched")
}

func TestEditor_WriteReflectsMutations(t *testing.T) {
	editor := newEditor(t)

	require.NoError(t, editor.UpdateWattage(2))
	out := editor.Write()

	assert.Contains(t, out, "1 1 2\n", "ballast line carries the new wattage")
	assert.True(t, strings.Contains(out, "2000 1600 400"), "candela row doubled")
}

func TestEditor_InterfaceCompliance(t *testing.T) {
	var _ driving.Editor = (*Editor)(nil)
}
