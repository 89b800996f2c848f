// Import command replaces the dataset from a JSON file.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/petar-djukic/satchel/internal/porter"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace all data from a JSON export",
	Long:  "Import is destructive: the current dataset is cleared and replaced by the document. A version mismatch fails before anything is touched.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer app.Close()

		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open import file: %w", err)
		}
		defer f.Close()

		p := porter.New(app.store, app.cupboard, app.broker, nil)
		if err := p.Import(f); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %s\n", args[0])
		return nil
	},
}
