// Board commands: list, add, delete.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/petar-djukic/satchel/internal/store"
	"github.com/petar-djukic/satchel/pkg/types"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Manage boards",
}

var boardAddColor string

var boardListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all boards",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer app.Close()

		boards := app.store.Boards()
		if flagJSON {
			out, err := json.MarshalIndent(boards, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal boards: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		}
		for _, b := range boards {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", b.ID, b.Name)
		}
		return nil
	},
}

var boardAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a board",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer app.Close()

		board := app.store.AddBoard(types.Board{Name: args[0], Color: boardAddColor}, store.OriginLocal)
		fmt.Fprintf(cmd.OutOrStdout(), "Added board %s\n", board.ID)
		return nil
	},
}

var boardDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a board and everything in it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer app.Close()

		found := false
		for _, b := range app.store.Boards() {
			if b.ID == args[0] {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("board %q not found", args[0])
		}
		app.store.DeleteBoard(args[0], store.OriginLocal)
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted board %s\n", args[0])
		return nil
	},
}

func init() {
	boardAddCmd.Flags().StringVar(&boardAddColor, "color", "", "board color (hex)")
	boardCmd.AddCommand(boardListCmd)
	boardCmd.AddCommand(boardAddCmd)
	boardCmd.AddCommand(boardDeleteCmd)
}
