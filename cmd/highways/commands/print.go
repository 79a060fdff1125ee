package commands

import (
	"github.com/spf13/cobra"

	"highways/internal/console"
)

func printCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "print",
		Short: "Print every highway with its cities and tolls",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireFile(); err != nil {
				return err
			}
			console.WriteHighways(cmd.OutOrStdout(), appCtx.Network.Highways())
			return nil
		},
	}
}
