package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/mww/wr_zones/dataset"
	"github.com/mww/wr_zones/pipeline"
	"github.com/spf13/cobra"
)

func newBuildCmd(a *app) *cobra.Command {
	var pbpPath, rostersPath, outPath string
	var opts pipeline.Options

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the dataset from nflverse play by play and roster files",
		Long:  "Build the dataset from nflverse play by play and roster files. Files ending in .parquet are\nread as parquet, anything else as CSV.",
		Example: `  wrzones build --pbp pbp_2024.csv --rosters rosters_2024.csv --out wr_data.json --wrapped
  wrzones build --pbp pbp_2024.parquet --rosters rosters_2024.parquet`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if pbpPath == "" || rostersPath == "" {
				return errors.New("both --pbp and --rosters are required")
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			res, err := pipeline.BuildFiles(ctx, pbpPath, rostersPath, outPath, opts, a.logger)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Successfully exported data for %d players to %s.\n", len(res.Players), outPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&pbpPath, "pbp", "", "play by play CSV or parquet file")
	cmd.Flags().StringVar(&rostersPath, "rosters", "", "rosters CSV or parquet file")
	cmd.Flags().StringVarP(&outPath, "out", "o", dataset.DefaultSource, "output JSON file")
	cmd.Flags().BoolVar(&opts.Wrapped, "wrapped", false, "include league averages")
	cmd.Flags().IntVar(&opts.MinTargets, "min-targets", pipeline.DefaultMinTargets, "drop receivers with fewer targets")
	return cmd
}
