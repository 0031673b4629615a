package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sornchai/winnow/internal/config"
	"github.com/sornchai/winnow/internal/engine"
	"github.com/sornchai/winnow/internal/engine/rules"
	"github.com/sornchai/winnow/internal/profile"
	"github.com/sornchai/winnow/internal/taxonomy"
)

func newRootCmd() *cobra.Command {
	cfg := config.Load()

	root := &cobra.Command{
		Use:           "winnow",
		Short:         "Keyword-dictionary classifier for scraped social posts",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&cfg.Profiles.Dir, "profile-dir", cfg.Profiles.Dir, "directory holding profile YAML files")

	root.AddCommand(
		newClassifyCmd(&cfg),
		newProfilesCmd(&cfg),
		newPromptCmd(&cfg),
	)
	return root
}

// resolveEngine builds the classification snapshot for a run: a named
// profile when configured, otherwise one of the built-in taxonomies.
func resolveEngine(cfg *config.Config) (*engine.Engine, error) {
	if cfg.Engine.Profile != "" {
		store, err := profile.NewStore(cfg.Profiles.Dir)
		if err != nil {
			return nil, err
		}
		p, err := store.Load(cfg.Engine.Profile)
		if err != nil {
			return nil, err
		}
		reg, rs, err := p.Compile()
		if err != nil {
			return nil, err
		}
		return engine.New(reg, rs), nil
	}

	var categories []taxonomy.Category
	switch cfg.Engine.Taxonomy {
	case "general":
		categories = taxonomy.GeneralCategories()
	case "brandpage":
		categories = taxonomy.BrandPageCategories()
	default:
		return nil, fmt.Errorf("unknown taxonomy %q (want general or brandpage)", cfg.Engine.Taxonomy)
	}
	reg, err := taxonomy.NewRegistry(categories)
	if err != nil {
		return nil, err
	}
	return engine.New(reg, []rules.Rule(nil)), nil
}
