package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/candela-labs/iesedit/internal/logger"
)

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Validate photometric files as they change",
	Long: `Watches a directory and re-parses every photometric file on
change, reporting whether it still parses cleanly. Useful while an
external tool writes files into a drop directory.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	dir := args[0]
	info, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd.Printf("Watching %s (Ctrl-C to stop)...\n", dir)
	for {
		select {
		case <-ctx.Done():
			cmd.Println("Stopped.")
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if !strings.EqualFold(filepath.Ext(event.Name), ".ies") {
				continue
			}
			checkFile(cmd, event.Name)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)
		}
	}
}

// checkFile re-parses one file and reports the outcome.
func checkFile(cmd *cobra.Command, path string) {
	doc, err := loadDocument(path)
	if err != nil {
		cmd.Printf("INVALID %s: %v\n", path, err)
		return
	}
	cmd.Printf("OK      %s (%.1f lm @ %.1f W)\n",
		path, doc.Photometric.TotalLumens, doc.Photometric.InputWatts)
}
