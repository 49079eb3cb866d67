package cmd

import (
	"fmt"

	"github.com/abelmx/affirm/packages/marker"
	"github.com/spf13/cobra"
)

var markersCmd = &cobra.Command{
	Use:   "markers <dir...>",
	Short: "List marked declarations and their markers",
	Long: `List every declaration carrying marker directives, with each
marker's kind and payload.

Examples:
  affirm markers ./tests
  affirm markers ./tests ./integration`,
	Args: cobra.MinimumNArgs(1),
	RunE: markersCommand,
}

func markersCommand(cmd *cobra.Command, args []string) error {
	dirs, err := collectDirs(args)
	if err != nil {
		return err
	}
	if len(dirs) == 0 {
		return fmt.Errorf("no Go source directories found")
	}

	for _, dir := range dirs {
		table, err := marker.Load(dir)
		if err != nil {
			fmt.Fprintf(cmd.OutOrStderr(), "Error in %s: %v\n", dir, err)
			continue
		}

		members := table.Members()
		if len(members) == 0 {
			continue
		}

		fmt.Fprintf(cmd.OutOrStdout(), "\n%s:\n", dir)
		for _, member := range members {
			fmt.Fprintf(cmd.OutOrStdout(), "  - %s\n", member)
			for _, m := range table.Markers(member) {
				if m.HasPayload {
					fmt.Fprintf(cmd.OutOrStdout(), "    %s: %s\n", m.Kind, m.Payload)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "    %s\n", m.Kind)
				}
			}
		}
	}

	return nil
}
