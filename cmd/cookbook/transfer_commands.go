package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"cookbook/internal/api"
	"cookbook/internal/config"
	"cookbook/internal/fileutil"
	"cookbook/internal/recipe"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	var recipeID string
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the collection (or one recipe) as JSON",
		Long: "Export writes JSON to stdout unless --output is given. When --output names\n" +
			"an existing directory the file is written there as recipes.json, or\n" +
			"recipe_<id>.json with --id.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(cmd, func(store *recipe.Store) error {
				var (
					data     []byte
					fileName = config.RecipesFileName
					err      error
				)
				if id := strings.TrimSpace(recipeID); id != "" {
					r, ok := store.Get(commandCtx(cmd), id)
					if !ok {
						return fmt.Errorf("recipe %s: %w", id, recipe.ErrNotFound)
					}
					data, err = recipe.ExportRecipe(r)
					fileName = recipe.ExportFileName(r)
				} else {
					data, err = recipe.Export(store.Load(commandCtx(cmd)))
				}
				if err != nil {
					return fmt.Errorf("encode export: %w", err)
				}

				target := strings.TrimSpace(output)
				if target == "" || target == "-" {
					_, err := fmt.Fprintln(cmd.OutOrStdout(), string(data))
					return err
				}
				target, err = exportTarget(target, fileName)
				if err != nil {
					return err
				}
				if err := fileutil.WriteFileAtomic(target, data, 0o644); err != nil {
					return fmt.Errorf("write export: %w", err)
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Exported to %s\n", target)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&recipeID, "id", "", "Export only this recipe")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Destination file or directory (default stdout)")
	return cmd
}

func exportTarget(path, fileName string) (string, error) {
	expanded, err := config.ExpandPath(path)
	if err != nil {
		return "", fmt.Errorf("resolve output path: %w", err)
	}
	info, err := os.Stat(expanded)
	switch {
	case err == nil && info.IsDir():
		return filepath.Join(expanded, fileName), nil
	case err == nil || errors.Is(err, os.ErrNotExist):
		return expanded, nil
	default:
		return "", fmt.Errorf("inspect output path: %w", err)
	}
}

func newImportCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file|->",
		Short: "Replace the whole collection with an exported JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readImportSource(cmd, args[0])
			if err != nil {
				return err
			}
			return ctx.withStore(cmd, func(store *recipe.Store) error {
				n, err := store.Import(commandCtx(cmd), raw)
				if err != nil {
					return err
				}
				if ctx.jsonMode() {
					return writeJSON(cmd, api.ImportResponse{Imported: n})
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %d %s; previous collection replaced\n", n, plural(n, "recipe", "recipes"))
				return nil
			})
		},
	}
}

func readImportSource(cmd *cobra.Command, source string) ([]byte, error) {
	if source == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	path, err := config.ExpandPath(source)
	if err != nil {
		return nil, fmt.Errorf("resolve import path: %w", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read import file: %w", err)
	}
	return data, nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
