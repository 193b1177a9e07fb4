package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"cookbook/internal/api"
	"cookbook/internal/journal"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent additions, deletions, and imports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withJournal(cmd, func(j *journal.Store) error {
				events, err := j.List(commandCtx(cmd), limit)
				if err != nil {
					return err
				}
				resp := api.HistoryResponse{Events: api.FromEvents(events)}
				if ctx.jsonMode() {
					return writeJSON(cmd, resp)
				}
				out := cmd.OutOrStdout()
				if len(resp.Events) == 0 {
					fmt.Fprintln(out, "No activity recorded yet")
					return nil
				}
				rows := make([][]string, 0, len(resp.Events))
				for _, ev := range resp.Events {
					rows = append(rows, []string{
						formatCreatedAt(ev.OccurredAt),
						ev.Action,
						historySubject(ev),
					})
				}
				fmt.Fprintln(out, renderTable([]string{"When", "Action", "Recipe"}, rows, nil))
				return nil
			})
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", journal.DefaultListLimit, "Maximum number of events to show")
	return cmd
}

func historySubject(ev api.HistoryEvent) string {
	if ev.Action == string(journal.ActionImport) {
		return strconv.Itoa(ev.Count) + " " + plural(ev.Count, "recipe", "recipes")
	}
	if ev.Title == "" {
		return ev.RecipeID
	}
	return ev.Title + " (" + ev.RecipeID + ")"
}
