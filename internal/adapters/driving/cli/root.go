// Package cli implements the cobra command tree driving the
// photometric document core.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/candela-labs/iesedit/internal/adapters/driven/config/file"
	"github.com/candela-labs/iesedit/internal/codec/ies"
	"github.com/candela-labs/iesedit/internal/core/domain"
	"github.com/candela-labs/iesedit/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// codec is the shared file codec used by every command.
var codec = ies.New()

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "iesedit",
	Short: "Edit photometric files",
	Long: `iesedit loads LM-63 style photometric files, rescales their
physical quantities (wattage, lumens, dimensions, color temperature)
while preserving physical consistency, and writes them back with the
exact formatting the format requires.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
	cobra.OnInitialize(func() {
		logger.SetVerbose(verboseFlag)
	})
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig opens the host configuration. A missing or unreadable
// config is not fatal; commands fall back to built-in defaults.
func loadConfig() *file.ConfigStore {
	cfg, err := file.NewConfigStore("")
	if err != nil {
		logger.Warn("config unavailable: %v", err)
		return nil
	}
	return cfg
}

// loadDocument reads and parses one photometric file.
func loadDocument(path string) (*domain.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	doc, err := codec.Parse(string(data), filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	logger.Debug("parsed %s: %d horizontal x %d vertical samples",
		path, doc.Photometric.NumberOfHorizontalAngles, doc.Photometric.NumberOfVerticalAngles)
	return doc, nil
}

// writeOutput writes generated file text to path, or to stdout when
// path is empty.
func writeOutput(cmd *cobra.Command, text, path string) error {
	if path == "" {
		cmd.Print(text)
		return nil
	}
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	cmd.Printf("Wrote %s\n", path)
	return nil
}
