package commands

import (
	"github.com/spf13/cobra"

	"highways/internal/console"
	"highways/internal/domain"
)

// noneOrTwoArgs accepts either no highway or a pair of them.
func noneOrTwoArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return nil
	}
	return cobra.ExactArgs(2)(cmd, args)
}

func crossingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "crossings [<highway> <highway>]",
		Short: "List cities shared by two highways, or by every pair when none are given",
		Args:  noneOrTwoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireFile(); err != nil {
				return err
			}
			var (
				crossings []domain.Crossing
				err       error
			)
			if len(args) == 2 {
				crossings, err = appCtx.Network.Crossings(domain.CrossingRequest{First: args[0], Second: args[1]})
			} else {
				crossings, err = appCtx.Network.AllCrossings()
			}
			if err != nil {
				return err
			}
			console.WriteCrossings(cmd.OutOrStdout(), crossings)
			return nil
		},
	}
}
