package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/candela-labs/iesedit/internal/codec/ies"
	"github.com/candela-labs/iesedit/internal/core/domain"
)

const cliFixture = `IESNA:LM-63-2002
[TEST] LTL-42
[TESTLAB] Candela Labs
[MANUFAC] Acme
TILT=NONE
1 2000 1 2 1 1 2 0.5 1 0.1
1 1 20
0 90
0
900 100
`

// execute runs the command tree once with fresh flag state and
// returns captured output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

// resetFlags clears flag state left behind by earlier executions.
// Cobra commands are package-level, so Changed and values persist.
func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		f.Changed = false
		_ = f.Value.Set(f.DefValue)
	})
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func writeFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.ies")
	require.NoError(t, os.WriteFile(path, []byte(cliFixture), 0644))
	return path
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "iesedit version dev")
}

func TestInfoCommand(t *testing.T) {
	out, err := execute(t, "info", writeFixture(t))
	require.NoError(t, err)

	assert.Contains(t, out, "File: fixture.ies")
	assert.Contains(t, out, "Manufacturer: Acme")
	assert.Contains(t, out, "Total lumens: 2000.0")
	assert.Contains(t, out, "Efficacy:     100.0 lm/W")
}

func TestScaleCommand_Watts(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "scaled.ies")

	out, err := execute(t, "scale", writeFixture(t), "--watts", "40", "-o", outPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+outPath)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	doc, err := ies.New().Parse(string(data), "scaled.ies")
	require.NoError(t, err)
	assert.Equal(t, 40.0, doc.Photometric.InputWatts)
	assert.Equal(t, 4000.0, doc.Photometric.TotalLumens)
}

func TestScaleCommand_RequiresAFlag(t *testing.T) {
	_, err := execute(t, "scale", writeFixture(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to scale")
}

func TestConvertCommand(t *testing.T) {
	out, err := execute(t, "convert", writeFixture(t), "--to", "feet")
	require.NoError(t, err)

	doc, err := ies.New().Parse(out, "converted.ies")
	require.NoError(t, err)
	assert.Equal(t, domain.UnitsFeet, doc.Photometric.UnitsType)
	assert.InDelta(t, 3.28, doc.Photometric.Length, 0.01)
}

func TestInfoCommand_MissingFile(t *testing.T) {
	_, err := execute(t, "info", filepath.Join(t.TempDir(), "absent.ies"))
	require.Error(t, err)
}
