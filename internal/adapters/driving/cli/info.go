package cli

import (
	"github.com/spf13/cobra"

	"github.com/candela-labs/iesedit/internal/core/services"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Show a parsed photometric file summary",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	doc, err := loadDocument(args[0])
	if err != nil {
		return err
	}

	m := doc.Metadata
	p := doc.Photometric

	cmd.Printf("File: %s\n\n", doc.FileName)
	cmd.Printf("  Format:       %s\n", m.Format.Or("(none)"))
	if m.Test.IsSet() {
		cmd.Printf("  Test:         %s\n", m.Test.Value())
	}
	if m.TestLab.IsSet() {
		cmd.Printf("  Test lab:     %s\n", m.TestLab.Value())
	}
	if m.Manufacturer.IsSet() {
		cmd.Printf("  Manufacturer: %s\n", m.Manufacturer.Value())
	}
	if m.Luminaire.IsSet() {
		cmd.Printf("  Luminaire:    %s\n", m.Luminaire.Value())
	}
	if m.ColorTemp.IsSet() {
		cmd.Printf("  Color temp:   %sK\n", m.ColorTemp.Value())
	}
	if m.CRI.IsSet() {
		cmd.Printf("  CRI:          %s\n", m.CRI.Value())
	}

	cmd.Println()
	cmd.Printf("  Lamps:        %d x %.1f lm (multiplier %.3f)\n",
		p.NumberOfLamps, p.LumensPerLamp, p.Multiplier)
	cmd.Printf("  Total lumens: %.1f\n", p.TotalLumens)
	cmd.Printf("  Input watts:  %.1f\n", p.InputWatts)
	if efficacy, err := services.Efficacy(p.TotalLumens, p.InputWatts); err == nil {
		cmd.Printf("  Efficacy:     %.1f lm/W\n", efficacy)
	}
	cmd.Printf("  Dimensions:   %.3f x %.3f x %.3f %s (L x W x H)\n",
		p.Length, p.Width, p.Height, p.UnitsType)
	cmd.Printf("  Grid:         %d horizontal x %d vertical samples\n",
		p.NumberOfHorizontalAngles, p.NumberOfVerticalAngles)

	if len(m.Extra) > 0 {
		cmd.Println("\n  Other keywords:")
		for _, kw := range m.Extra {
			cmd.Printf("    [%s] %s\n", kw.Name, kw.Value)
		}
	}
	return nil
}
