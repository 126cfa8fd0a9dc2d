package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ytget/vocab-trainer/internal/config"
)

func newConfigCommand() *cobra.Command {
	configCommand := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}
	configCommand.AddCommand(
		newConfigInitCommand(),
		newConfigPathCommand(),
	)
	return configCommand
}

func newConfigInitCommand() *cobra.Command {
	var (
		apiKey string
		force  bool
	)
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with default values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := configFile
			if path == "" {
				var err error
				if path, err = config.DefaultPath(); err != nil {
					return err
				}
			}
			if err := config.WriteDefault(path, apiKey, force); err != nil {
				return err
			}
			_, _ = color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", path)
			if apiKey == "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set api.key in the file or export %s before looking up words\n", config.EnvAPIKey)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&apiKey, "api-key", "", "Merriam-Webster API key to store")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

func newConfigPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print where the config file is looked up",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.DefaultPath()
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}
