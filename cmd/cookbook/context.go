package main

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"cookbook/internal/api"
	"cookbook/internal/config"
	"cookbook/internal/images"
	"cookbook/internal/journal"
	"cookbook/internal/logging"
	"cookbook/internal/recipe"
)

var errJournalDisabled = errors.New("activity journal is disabled (set [journal] enabled = true)")

type commandContext struct {
	configFlag *string
	jsonFlag   *bool

	configOnce   sync.Once
	config       *config.Config
	configSrc    string
	configExists bool
	configErr    error

	loggerOnce sync.Once
	logger     *slog.Logger
}

func newCommandContext(configFlag *string, jsonFlag *bool) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		jsonFlag:   jsonFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, src, exists, err := config.Load(c.configPath())
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configSrc = src
		c.configExists = exists
	})
	return c.config, c.configErr
}

func (c *commandContext) configSource() string {
	if _, err := c.ensureConfig(); err != nil {
		return ""
	}
	if !c.configExists {
		return c.configSrc + " (not found; defaults in use)"
	}
	return c.configSrc
}

func (c *commandContext) configPath() string {
	if c.configFlag == nil {
		return ""
	}
	return strings.TrimSpace(*c.configFlag)
}

func (c *commandContext) jsonMode() bool {
	return c.jsonFlag != nil && *c.jsonFlag
}

// loggerValue falls back to a nop logger when the configured one cannot be
// built; config validation already rejects bad logging settings.
func (c *commandContext) loggerValue() *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err == nil {
			c.logger, err = logging.NewFromConfig(cfg)
		}
		if err != nil || c.logger == nil {
			c.logger = logging.NewNop()
		}
	})
	return c.logger
}

// withStore opens the recipe store (and the journal when enabled) for the
// duration of fn.
func (c *commandContext) withStore(cmd *cobra.Command, fn func(*recipe.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	ctx := commandCtx(cmd)
	logger := c.loggerValue()

	imageStore, err := images.New(ctx, cfg)
	if err != nil {
		return err
	}
	opts := []recipe.Option{
		recipe.WithImages(imageStore),
		recipe.WithLogger(logger),
	}
	if cfg.Journal.Enabled {
		j, err := journal.Open(cfg)
		if err != nil {
			logging.WarnWithContext(logger, "activity journal unavailable", "journal_open_failed",
				logging.Error(err),
				logging.String(logging.FieldPath, cfg.JournalPath()),
				logging.String(logging.FieldImpact, "this change will not appear in history"),
			)
		} else {
			defer j.Close()
			opts = append(opts, recipe.WithJournal(j))
		}
	}
	return fn(recipe.NewStore(cfg.RecipesPath(), opts...))
}

func (c *commandContext) withService(cmd *cobra.Command, fn func(*api.RecipeService) error) error {
	return c.withStore(cmd, func(store *recipe.Store) error {
		return fn(api.NewRecipeService(store))
	})
}

func (c *commandContext) withJournal(cmd *cobra.Command, fn func(*journal.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	if !cfg.Journal.Enabled {
		return errJournalDisabled
	}
	j, err := journal.OpenPath(commandCtx(cmd), cfg.JournalPath())
	if err != nil {
		return err
	}
	defer j.Close()
	return fn(j)
}

func commandCtx(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
