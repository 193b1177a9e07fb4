package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"cookbook/internal/preflight"
)

var errChecksFailed = errors.New("one or more checks failed")

func newDoctorCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that the data directory, images, and journal are usable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			results := preflight.RunAll(commandCtx(cmd), cfg)
			if ctx.jsonMode() {
				if err := writeJSON(cmd, results); err != nil {
					return err
				}
			} else {
				out := cmd.OutOrStdout()
				colorize := shouldColorize(out)
				for _, line := range renderSectionHeader("Cookbook", colorize) {
					fmt.Fprintln(out, line)
				}
				fmt.Fprintln(out, renderStatusLine("Config", statusInfo, ctx.configSource(), colorize))
				for _, r := range results {
					kind := statusOK
					if !r.Passed {
						kind = statusError
					}
					fmt.Fprintln(out, renderStatusLine(r.Name, kind, r.Detail, colorize))
				}
				if !cfg.Journal.Enabled {
					fmt.Fprintln(out, renderStatusLine("Activity journal", statusWarn, "disabled", colorize))
				}
			}
			if preflight.Failed(results) {
				return errChecksFailed
			}
			return nil
		},
	}
}
