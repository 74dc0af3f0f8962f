package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/recipro/internal/store"
)

var sessionsFlags struct {
	remove string
}

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List or delete saved sessions",
	RunE:  runSessions,
}

func init() {
	sessionsCmd.Flags().StringVar(&sessionsFlags.remove, "delete", "", "Delete the named session")
}

func runSessions(cmd *cobra.Command, _ []string) error {
	st, err := store.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer st.Close()

	if sessionsFlags.remove != "" {
		if err := st.Delete(cmd.Context(), sessionsFlags.remove); err != nil {
			return fmt.Errorf("delete %q: %w", sessionsFlags.remove, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Session %q deleted.\n", sessionsFlags.remove)
		return nil
	}

	return printSessions(cmd.Context(), st, cmd.OutOrStdout())
}
