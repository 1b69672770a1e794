package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsteiner/internal/server"
)

func newServeCmd() *cobra.Command {
	var configPath, addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the solver over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := server.LoadConfig(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}

			return server.Run(cmd.Context(), cfg, loggerFromContext(cmd.Context()))
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML config file")
	cmd.Flags().StringVar(&addr, "addr", server.DefaultConfig().Addr, "listen address (overrides the config)")

	return cmd
}
