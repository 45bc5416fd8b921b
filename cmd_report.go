package main

import (
	"context"
	"errors"

	"github.com/mww/wr_zones/model"
	"github.com/mww/wr_zones/report"
	"github.com/spf13/cobra"
)

func newReportCmd(a *app) *cobra.Command {
	var sel model.Selection

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the zone dashboard of a team or a player",
		Example: `  wrzones report --team SEA
  wrzones report --player 00-0035640 --zone Mid-Middle`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if sel.Team == "" && sel.PlayerID == "" {
				return errors.New("one of --team or --player is required")
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctrl, err := newController(ctx, a)
			if err != nil {
				return err
			}

			d, err := ctrl.Dashboard(ctx, sel)
			if err != nil {
				return err
			}
			return report.Render(cmd.OutOrStdout(), d)
		},
	}
	cmd.Flags().StringVarP(&sel.Team, "team", "t", "", "team code, e.g. SEA")
	cmd.Flags().StringVar(&sel.PlayerID, "player", "", "player id, e.g. 00-0035640")
	cmd.Flags().StringVarP(&sel.Zone, "zone", "z", "", "zone to compare, e.g. Mid-Middle")
	return cmd
}
