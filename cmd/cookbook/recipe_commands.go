package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"cookbook/internal/api"
	"cookbook/internal/images"
	"cookbook/internal/recipe"
	"cookbook/internal/textutil"
)

func newAddCommand(ctx *commandContext) *cobra.Command {
	var (
		title       string
		ingredients string
		steps       string
		tags        string
		imagePath   string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a recipe",
		Long: "Add a recipe. Ingredients are one per line; pass - to --ingredients or --steps\n" +
			"to read that field from stdin. Tags are comma-separated.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if ingredients == "-" && steps == "-" {
				return errors.New("only one of --ingredients and --steps can read from stdin")
			}
			var err error
			if ingredients, err = readFieldValue(cmd, ingredients); err != nil {
				return err
			}
			if steps, err = readFieldValue(cmd, steps); err != nil {
				return err
			}

			in := recipe.NewRecipe{
				Title:       title,
				Ingredients: textutil.SplitLines(ingredients),
				Steps:       steps,
				Tags:        textutil.SplitTags(tags),
			}
			if path := strings.TrimSpace(imagePath); path != "" {
				data, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("read image: %w", err)
				}
				if err := images.CheckUpload(path, data); err != nil {
					return err
				}
				in.Image = data
				in.ImageName = path
			}

			return ctx.withService(cmd, func(svc *api.RecipeService) error {
				created, err := svc.Create(commandCtx(cmd), in)
				if err != nil {
					return err
				}
				if ctx.jsonMode() {
					return writeJSON(cmd, api.RecipeResponse{Recipe: created})
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added recipe %s (%s)\n", created.ID, created.Title)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Recipe title (required)")
	cmd.Flags().StringVarP(&ingredients, "ingredients", "i", "", "Ingredients, one per line (- reads stdin)")
	cmd.Flags().StringVarP(&steps, "steps", "s", "", "Preparation steps (- reads stdin)")
	cmd.Flags().StringVar(&tags, "tags", "", "Comma-separated tags")
	cmd.Flags().StringVar(&imagePath, "image", "", "Path to a PNG or JPEG image")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func readFieldValue(cmd *cobra.Command, value string) (string, error) {
	if value != "-" {
		return value, nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

func newListCommand(ctx *commandContext) *cobra.Command {
	var query string
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List recipes, newest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(ctx, cmd, query)
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "Only show recipes matching this text")
	return cmd
}

func newSearchCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "search <text>",
		Short: "Search recipe titles, tags, and ingredients",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(ctx, cmd, strings.Join(args, " "))
		},
	}
}

func runList(ctx *commandContext, cmd *cobra.Command, query string) error {
	return ctx.withService(cmd, func(svc *api.RecipeService) error {
		resp := svc.List(commandCtx(cmd), strings.TrimSpace(query))
		if ctx.jsonMode() {
			return writeJSON(cmd, resp)
		}
		out := cmd.OutOrStdout()
		if resp.Count == 0 {
			if resp.Query != "" {
				fmt.Fprintf(out, "No recipes match %q\n", resp.Query)
			} else {
				fmt.Fprintln(out, "No recipes yet. Add one with `cookbook add --title ...`")
			}
			return nil
		}
		fmt.Fprintln(out, renderTable(
			[]string{"ID", "Title", "Tags", "Image", "Created"},
			recipeRows(resp.Recipes),
			nil,
		))
		return nil
	})
}

func recipeRows(recipes []api.Recipe) [][]string {
	rows := make([][]string, 0, len(recipes))
	for _, r := range recipes {
		rows = append(rows, []string{
			r.ID,
			r.Title,
			strings.Join(r.Tags, ", "),
			r.ImageState,
			formatCreatedAt(r.CreatedAt),
		})
	}
	return rows
}

func formatCreatedAt(value string) string {
	ts, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return value
	}
	return ts.Local().Format("2006-01-02 15:04")
}

func newShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := strings.TrimSpace(args[0])
			return ctx.withService(cmd, func(svc *api.RecipeService) error {
				dto, ok := svc.Describe(commandCtx(cmd), id)
				if !ok {
					return fmt.Errorf("recipe %s: %w", id, recipe.ErrNotFound)
				}
				if ctx.jsonMode() {
					return writeJSON(cmd, api.RecipeResponse{Recipe: dto})
				}
				printRecipe(cmd.OutOrStdout(), dto)
				return nil
			})
		},
	}
}

func printRecipe(out io.Writer, r api.Recipe) {
	fmt.Fprintln(out, r.Title)
	fmt.Fprintln(out, strings.Repeat("=", len([]rune(r.Title))))
	fmt.Fprintf(out, "ID:      %s\n", r.ID)
	fmt.Fprintf(out, "Created: %s\n", formatCreatedAt(r.CreatedAt))
	if len(r.Tags) > 0 {
		fmt.Fprintf(out, "Tags:    %s\n", strings.Join(r.Tags, ", "))
	}
	switch recipe.ImageState(r.ImageState) {
	case recipe.ImagePresent:
		fmt.Fprintf(out, "Image:   %s\n", r.Image)
	default:
		fmt.Fprintf(out, "Image:   %s\n", recipe.ImageState(r.ImageState).Label())
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Ingredients")
	if len(r.Ingredients) == 0 {
		fmt.Fprintln(out, "  (none)")
	}
	for _, line := range r.Ingredients {
		fmt.Fprintf(out, "  - %s\n", line)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Steps")
	if strings.TrimSpace(r.Steps) == "" {
		fmt.Fprintln(out, "  (none)")
		return
	}
	for _, line := range strings.Split(r.Steps, "\n") {
		fmt.Fprintf(out, "  %s\n", strings.TrimRight(line, "\r"))
	}
}

func newDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>...",
		Aliases: []string{"rm"},
		Short:   "Delete recipes and their images",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withService(cmd, func(svc *api.RecipeService) error {
				results := make([]api.DeleteResponse, 0, len(args))
				for _, arg := range args {
					resp, err := svc.Remove(commandCtx(cmd), strings.TrimSpace(arg))
					if err != nil {
						return err
					}
					results = append(results, resp)
				}
				if ctx.jsonMode() {
					return writeJSON(cmd, results)
				}
				out := cmd.OutOrStdout()
				for _, r := range results {
					if r.Removed {
						fmt.Fprintf(out, "Deleted recipe %s\n", r.ID)
					} else {
						fmt.Fprintf(out, "Recipe %s not found; nothing deleted\n", r.ID)
					}
				}
				return nil
			})
		},
	}
}
