package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/candela-labs/iesedit/internal/core/services"
	"github.com/candela-labs/iesedit/internal/logger"
)

var variantOutputDir string

var variantCmd = &cobra.Command{
	Use:   "variant [file] [recipe]",
	Short: "Build color-temperature variants from a recipe",
	Long: `Reads a YAML recipe describing named color-temperature variants
and writes one derived file per variant. Each variant is an
independent copy of the base document; the base file is not modified.

Recipe format:

  variants:
    - name: 3500K
      multiplier: 0.97
      color_temp: "3500"
      width: 0.6                    # optional width override
      adjust_wattage_by_width: true # optional, explicit wattage policy`,
	Args: cobra.ExactArgs(2),
	RunE: runVariant,
}

func init() {
	variantCmd.Flags().StringVarP(&variantOutputDir, "output", "o", ".", "output directory")
	rootCmd.AddCommand(variantCmd)
}

// variantRecipe is the YAML shape of a recipe file.
type variantRecipe struct {
	Variants []struct {
		Name                 string  `yaml:"name"`
		Multiplier           float64 `yaml:"multiplier"`
		ColorTemp            string  `yaml:"color_temp"`
		Width                float64 `yaml:"width"`
		AdjustWattageByWidth bool    `yaml:"adjust_wattage_by_width"`
	} `yaml:"variants"`
}

func runVariant(cmd *cobra.Command, args []string) error {
	doc, err := loadDocument(args[0])
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("reading recipe %s: %w", args[1], err)
	}

	var recipe variantRecipe
	if err := yaml.Unmarshal(data, &recipe); err != nil {
		return fmt.Errorf("parsing recipe %s: %w", args[1], err)
	}
	if len(recipe.Variants) == 0 {
		return fmt.Errorf("recipe %s defines no variants", args[1])
	}

	specs := make([]services.VariantSpec, len(recipe.Variants))
	for i, v := range recipe.Variants {
		specs[i] = services.VariantSpec{
			Name:                 v.Name,
			Multiplier:           v.Multiplier,
			ColorTemp:            v.ColorTemp,
			Width:                v.Width,
			AdjustWattageByWidth: v.AdjustWattageByWidth,
		}
	}

	variants, err := services.BuildVariants(*doc, specs)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(variantOutputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for i := range variants {
		path := filepath.Join(variantOutputDir, variants[i].FileName)
		logger.Info("writing variant %s", path)
		if err := os.WriteFile(path, []byte(codec.Generate(&variants[i])), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		cmd.Printf("Wrote %s\n", path)
	}
	return nil
}
