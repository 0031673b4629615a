package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sornchai/winnow/internal/config"
	"github.com/sornchai/winnow/internal/profile"
)

func newPromptCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "prompt <profile>",
		Short: "Render a profile as an LLM classification prompt",
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
			fmt.Fprintln(cmd.OutOrStdout(), p.Prompt())
			return nil
		},
	}
}
