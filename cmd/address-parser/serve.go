package main

import (
	"github.com/spf13/cobra"

	"github.com/ehdc-llpg/housenumber/internal/batch"
	"github.com/ehdc-llpg/housenumber/internal/web"
)

func createServeCmd(a *app) *cobra.Command {
	var host string
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the parser over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			serverCfg := a.cfg.Server
			if cmd.Flags().Changed("host") {
				serverCfg.Host = host
			}
			if cmd.Flags().Changed("port") {
				serverCfg.Port = port
			}

			processor := batch.NewProcessor(a.factory, a.cfg.Batch.Workers, a.logger, a.debug)
			server := web.NewServer(serverCfg, a.factory, processor, a.logger)
			return server.Start()
		},
	}

	cmd.Flags().StringVar(&host, "host", "localhost", "Listen host")
	cmd.Flags().IntVar(&port, "port", 8080, "Listen port")

	return cmd
}
