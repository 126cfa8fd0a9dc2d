package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ytget/vocab-trainer/internal/app"
	"github.com/ytget/vocab-trainer/internal/logger"
	"github.com/ytget/vocab-trainer/internal/model"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

var (
	configFile string
	dictionary model.Dictionary

	_ pflag.Value = (*model.Dictionary)(nil)
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		log := logger.NewConsole("error")
		log.Error().Err(err).Msg("failed to execute a command")
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCommand := &cobra.Command{
		Use:           "vocab-trainer",
		Short:         "Look up English words in the Merriam-Webster dictionaries",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.RunGUI(app.Options{
				ConfigFile: configFile,
				Dictionary: dictionary,
				Version:    version,
			})
		},
	}
	flags := rootCommand.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file path")
	flags.VarP(&dictionary, "dictionary", "d", "dictionary to use, one of "+dictionaryNames())

	rootCommand.AddCommand(
		newLookupCommand(),
		newConfigCommand(),
	)
	return rootCommand
}

func dictionaryNames() string {
	names := make([]string, 0, len(model.AllDictionaries))
	for _, d := range model.AllDictionaries {
		names = append(names, d.String())
	}
	return strings.Join(names, ", ")
}
