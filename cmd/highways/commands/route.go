package commands

import (
	"github.com/spf13/cobra"

	"highways/internal/console"
	"highways/internal/domain"
)

func routeCmd() *cobra.Command {
	var highway string
	cmd := &cobra.Command{
		Use:   "route <start> <end>",
		Short: "Print the route, distance and toll cost between two cities",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireFile(); err != nil {
				return err
			}
			it, err := appCtx.Network.Route(domain.RouteRequest{
				Highway: highway,
				Start:   args[0],
				End:     args[1],
			})
			if err != nil {
				return err
			}
			console.WriteItinerary(cmd.OutOrStdout(), it)
			return nil
		},
	}
	cmd.Flags().StringVar(&highway, "highway", "", "stay on this highway")
	return cmd
}
