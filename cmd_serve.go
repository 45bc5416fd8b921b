package main

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/mww/wr_zones/controller"
	"github.com/mww/wr_zones/dataset"
	"github.com/mww/wr_zones/web"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCmd(a *app) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the dashboard web server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("port") {
				a.cfg.Port = port
			}
			return runServe(cmd.Context(), a)
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", 0, "port to listen on (overrides PORT)")
	return cmd
}

// newController loads the route table and the dataset. A dataset that fails to
// load still gives a controller, it reports the data as unavailable.
func newController(ctx context.Context, a *app) (controller.C, error) {
	routes, err := controller.LoadRouteTable(a.cfg.RoutesFile)
	if err != nil {
		return nil, err
	}

	client, err := dataset.New(a.cfg.DataSource, clock.New(), a.logger)
	if err != nil {
		return nil, err
	}
	return controller.New(ctx, client, routes, a.logger)
}

func runServe(ctx context.Context, a *app) error {
	if ctx == nil {
		ctx = context.Background()
	}

	ctrl, err := newController(ctx, a)
	if err != nil {
		return err
	}

	server, err := web.NewServer(a.cfg.Port, ctrl, a.logger, a.cfg.CORSOrigins)
	if err != nil {
		return err
	}

	shutdown := make(chan bool)
	wg := &sync.WaitGroup{}

	// Setup a handler to catch ctrl-c signals and properly shutdown everything.
	intChannel := make(chan os.Signal, 2)
	signal.Notify(intChannel, os.Interrupt)
	go func() {
		<-intChannel
		close(shutdown)

		if err := waitTimeout(wg, 10*time.Second); err != nil {
			a.logger.Error("timed out waiting for proper shutdown")
			os.Exit(255)
		}
	}()

	// Start the web server
	wg.Add(1)
	go server.ListenAndServe(shutdown, wg)

	// Wait for everything to stop.
	wg.Wait()
	a.logger.Info("server shutdown", zap.Int("port", a.cfg.Port))
	return nil
}
