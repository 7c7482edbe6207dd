package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/catalog"
)

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "List the catalog roles available for matching",
	RunE:  runRoles,
}

func init() {
	rootCmd.AddCommand(rolesCmd)
}

func runRoles(cmd *cobra.Command, _ []string) error {
	cat, err := catalog.Load()
	if err != nil {
		return err
	}

	for _, role := range cat.Roles() {
		fmt.Fprintf(cmd.OutOrStdout(), "%-20s %s\n", role.Key, role.Title)
	}
	return nil
}
