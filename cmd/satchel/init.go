// Init command creates configuration and data directories.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/petar-djukic/satchel/pkg/sqlite"
	"github.com/petar-djukic/satchel/pkg/types"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize satchel storage",
	Long:  "Create configuration and data directories, then initialize the storage backend.",
	RunE:  runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	// Config dir and default config.yaml were created by
	// PersistentPreRunE; only the data directory remains.
	dataDir, err := resolveDataDir()
	if err != nil {
		return err
	}

	cfg := types.Config{
		Backend: types.BackendSQLite,
		DataDir: dataDir,
	}

	cupboard := sqlite.NewBackend()
	if err := cupboard.Attach(cfg); err != nil {
		return fmt.Errorf("initialize storage: %w", err)
	}
	if err := cupboard.Detach(); err != nil {
		return fmt.Errorf("finalize storage: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Satchel initialized at %s\n", dataDir)
	return nil
}
