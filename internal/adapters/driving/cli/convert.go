package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/candela-labs/iesedit/internal/adapters/driven/config/file"
	"github.com/candela-labs/iesedit/internal/core/domain"
	"github.com/candela-labs/iesedit/internal/core/services"
)

var (
	convertTo     string
	convertOutput string
)

var convertCmd = &cobra.Command{
	Use:   "convert [file]",
	Short: "Convert dimension units between feet and meters",
	Long: `Relabels the luminous-opening dimensions in the target unit.
Light output is untouched: a unit conversion describes the same
physical object.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVar(&convertTo, "to", "", "target unit: feet or meters")
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "output path (default stdout)")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	target := convertTo
	if target == "" {
		if cfg := loadConfig(); cfg != nil {
			target = cfg.GetString(file.KeyDefaultUnits)
		}
	}
	if target == "" {
		return errors.New("no target unit: provide --to or set default_units in config")
	}

	units, err := domain.ParseUnitsType(target)
	if err != nil {
		return err
	}

	doc, err := loadDocument(args[0])
	if err != nil {
		return err
	}

	editor := services.NewEditor(*doc, codec)
	if err := editor.ConvertUnits(units); err != nil {
		return err
	}
	return writeOutput(cmd, editor.Write(), convertOutput)
}
