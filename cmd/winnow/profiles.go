package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sornchai/winnow/internal/config"
	"github.com/sornchai/winnow/internal/engine/rules"
	"github.com/sornchai/winnow/internal/profile"
)

func newProfilesCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "Manage stored classification profiles",
	}
	cmd.AddCommand(
		newProfilesListCmd(cfg),
		newProfilesShowCmd(cfg),
		newProfilesDeleteCmd(cfg),
		newProfilesInitCmd(cfg),
	)
	return cmd
}

func newProfilesListCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := profile.NewStore(cfg.Profiles.Dir)
			if err != nil {
				return err
			}
			names, err := store.List()
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func newProfilesShowCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Print a stored profile as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := profile.NewStore(cfg.Profiles.Dir)
			if err != nil {
				return err
			}
			p, err := store.Load(args[0])
			if err != nil {
				return err
			}
			data, err := yaml.Marshal(p)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}

func newProfilesDeleteCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a stored profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := profile.NewStore(cfg.Profiles.Dir)
			if err != nil {
				return err
			}
			return store.Delete(args[0])
		},
	}
}

func newProfilesInitCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "init <name>",
		Short: "Create an example profile to edit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := profile.NewStore(cfg.Profiles.Dir)
			if err != nil {
				return err
			}
			p := exampleProfile(args[0])
			if err := store.Save(p); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote profile %q to %s\n", p.Name, cfg.Profiles.Dir)
			return nil
		},
	}
}

// exampleProfile mirrors the sample schema operators usually start from.
func exampleProfile(name string) *profile.Profile {
	return &profile.Profile{
		Name: name,
		Columns: []profile.Column{
			{Name: "intents", Type: "list", Primary: "primaryIntent"},
			{Name: "pain_points", Type: "list"},
			{Name: "contentType", Type: "enum", Options: []string{"Image", "Video", "Text"}},
		},
		Keywords: map[string][]profile.Keyword{
			"intents": {
				{Keyword: "ask", Value: "CONTACT"},
				{Keyword: "promotion", Value: "PROMOTION"},
			},
			"pain_points": {
				{Keyword: "hot", Value: "HEAT"},
				{Keyword: "noise", Value: "NOISE"},
			},
		},
		Rules: []rules.Rule{
			{Column: "intents", Contains: "flash sale", SetValue: "PROMOTION"},
		},
	}
}
