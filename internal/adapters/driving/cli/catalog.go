package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/candela-labs/iesedit/internal/adapters/driven/config/file"
	"github.com/candela-labs/iesedit/internal/adapters/driven/storage/memory"
	"github.com/candela-labs/iesedit/internal/adapters/driven/storage/sqlite"
	"github.com/candela-labs/iesedit/internal/core/services"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the persisted document catalog",
	Long:  `Index photometric file summaries into a local catalog database.`,
}

var catalogAddCmd = &cobra.Command{
	Use:   "add [files...]",
	Short: "Parse files and add their summaries to the catalog",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCatalogAdd,
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List cataloged documents",
	Args:  cobra.NoArgs,
	RunE:  runCatalogList,
}

func init() {
	catalogCmd.AddCommand(catalogAddCmd)
	catalogCmd.AddCommand(catalogListCmd)
	rootCmd.AddCommand(catalogCmd)
}

// openCatalog opens the catalog store at the configured path.
func openCatalog() (*sqlite.CatalogStore, error) {
	path := ""
	if cfg := loadConfig(); cfg != nil {
		path = cfg.GetString(file.KeyCatalogPath)
	}
	return sqlite.NewCatalogStore(path)
}

func runCatalogAdd(cmd *cobra.Command, args []string) error {
	catalog, err := openCatalog()
	if err != nil {
		return fmt.Errorf("opening catalog: %w", err)
	}
	defer catalog.Close()

	library := services.NewLibrary(codec, memory.NewDocumentStore(), catalog)
	ctx := context.Background()

	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		if _, err := library.Load(ctx, string(data), path); err != nil {
			return err
		}
	}

	if err := library.Catalog(ctx); err != nil {
		return err
	}
	cmd.Printf("Cataloged %d files.\n", len(args))
	return nil
}

func runCatalogList(cmd *cobra.Command, _ []string) error {
	catalog, err := openCatalog()
	if err != nil {
		return fmt.Errorf("opening catalog: %w", err)
	}
	defer catalog.Close()

	entries, err := catalog.List(context.Background())
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		cmd.Println("Catalog is empty.")
		return nil
	}

	for _, e := range entries {
		cmd.Printf("  %s\n", e.FileName)
		if e.Test != "" {
			cmd.Printf("    Test:     %s\n", e.Test)
		}
		if e.Manufacturer != "" {
			cmd.Printf("    Maker:    %s\n", e.Manufacturer)
		}
		cmd.Printf("    Output:   %.1f lm @ %.1f W (%.1f lm/W)\n",
			e.TotalLumens, e.InputWatts, e.Efficacy)
		cmd.Printf("    Grid:     %d x %d\n", e.HorizontalAngles, e.VerticalAngles)
		cmd.Println()
	}
	cmd.Printf("Total: %d documents\n", len(entries))
	return nil
}
