package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"cookbook/internal/recipe"
	"cookbook/internal/server"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	var bind string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP JSON API until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			serveCfg := *cfg
			if b := strings.TrimSpace(bind); b != "" {
				serveCfg.Server.Bind = b
			}
			return ctx.withStore(cmd, func(store *recipe.Store) error {
				srv, err := server.New(&serveCfg, store, ctx.loggerValue())
				if err != nil {
					return err
				}
				if err := srv.Start(commandCtx(cmd)); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Serving recipes on http://%s (Ctrl+C to stop)\n", srv.Addr())
				<-commandCtx(cmd).Done()
				srv.Stop()
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&bind, "bind", "", "Listen address (overrides server.bind)")
	return cmd
}
