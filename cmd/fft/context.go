package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/danchopon/FeetForTarantino/internal/config"
	"github.com/danchopon/FeetForTarantino/internal/engine"
	"github.com/danchopon/FeetForTarantino/internal/logging"
	"github.com/danchopon/FeetForTarantino/internal/tmdb"
	"github.com/danchopon/FeetForTarantino/internal/watchlist"
)

type commandContext struct {
	configFlag *string
	groupFlag  *int64

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string, groupFlag *int64) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		groupFlag:  groupFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// groupID resolves the target group from the --group flag, falling back to
// the configured default.
func (c *commandContext) groupID() (int64, error) {
	if c.groupFlag != nil && *c.groupFlag != 0 {
		return *c.groupFlag, nil
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return 0, err
	}
	if cfg.Group.DefaultID == 0 {
		return 0, errors.New("no group selected; pass --group or set group.default_id in the config")
	}
	return cfg.Group.DefaultID, nil
}

func (c *commandContext) participant() (engine.Participant, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return engine.Participant{}, err
	}
	return engine.Participant{ID: cfg.Identity.UserID, Name: cfg.Identity.DisplayName}, nil
}

// withEngine opens the store, builds the engine, runs fn, and closes the
// store afterwards. Every data command goes through here.
func (c *commandContext) withEngine(fn func(context.Context, *engine.Engine) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}

	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return fmt.Errorf("initialize logging: %w", err)
	}

	store, err := watchlist.Open(cfg)
	if err != nil {
		return fmt.Errorf("open watchlist store: %w", err)
	}
	defer store.Close()

	var meta tmdb.Searcher
	if cfg.MetadataEnabled() {
		client, err := tmdb.New(cfg.TMDB.APIKey, cfg.TMDB.BaseURL, cfg.TMDB.Language)
		if err != nil {
			return fmt.Errorf("initialize metadata client: %w", err)
		}
		meta = client
	}

	eng := engine.New(store, meta, logger, cfg.Poll.Question)
	return fn(context.Background(), eng)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
