package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all local data (accounts, history, snapshots)",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			fmt.Println("This deletes every account, exam result, and saved exam.")
			fmt.Println("Re-run with --force to confirm.")
			return nil
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		if err := os.Remove(dbPath); err != nil {
			if os.IsNotExist(err) {
				fmt.Println("Nothing to reset.")
				return nil
			}
			return fmt.Errorf("remove database: %w", err)
		}
		// WAL sidecar files, ignore if absent.
		_ = os.Remove(dbPath + "-wal")
		_ = os.Remove(dbPath + "-shm")

		fmt.Println("All local data deleted.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Confirm deletion")
}
