package main

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/mww/wr_zones/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries what the persistent pre-run sets up for every command.
type app struct {
	verbose    bool
	envFile    string
	dataSource string
	routesFile string

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "wrzones",
		Short: "Wide receiver production by field zone",
		Long: `wrzones shows how wide receivers, and whole receiving corps, produce
in each of nine zones of the field (Short/Mid/Deep by Left/Middle/Right).

The data comes from a JSON file built from nflverse play by play and roster
data with "wrzones build", either on disk or at a URL.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var files []string
			if a.envFile != "" {
				files = append(files, a.envFile)
			}
			cfg, err := config.Load(files...)
			if err != nil {
				return err
			}
			if a.dataSource != "" {
				cfg.DataSource = a.dataSource
			}
			if a.routesFile != "" {
				cfg.RoutesFile = a.routesFile
			}
			a.cfg = cfg

			a.logger, err = cfg.NewLogger(a.verbose)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringVar(&a.envFile, "env", "", "env file to load (default .env)")
	rootCmd.PersistentFlags().StringVar(&a.dataSource, "data", "", "dataset file or URL (overrides DATA_SOURCE)")
	rootCmd.PersistentFlags().StringVar(&a.routesFile, "routes", "", "YAML file overriding the route table (overrides ROUTES_FILE)")

	rootCmd.AddCommand(newServeCmd(a), newReportCmd(a), newBuildCmd(a))
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func waitTimeout(wg *sync.WaitGroup, timeout time.Duration) error {
	c := make(chan any)
	go func() {
		defer close(c)
		wg.Wait()
	}()

	select {
	case <-c:
		return nil // completed normally
	case <-time.After(timeout):
		return errors.New("timed out waiting")
	}
}
