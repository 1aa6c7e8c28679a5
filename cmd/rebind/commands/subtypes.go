package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newSubtypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "subtypes <type>",
		Short: "List the known subtypes of a type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			noSession, _ := cmd.Flags().GetBool("no-session")

			ws, err := c.openWorkspace(cmd)
			if err != nil {
				return err
			}

			names, err := ws.Subtypes(cmd.Context(), args[0], noSession)
			if err != nil {
				return err
			}
			printNames(cmd.OutOrStdout(), names)
			return nil
		},
	}
}
