package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ytget/vocab-trainer/internal/app"
	"github.com/ytget/vocab-trainer/internal/config"
	dict "github.com/ytget/vocab-trainer/internal/dictionary"
	"github.com/ytget/vocab-trainer/internal/logger"
	"github.com/ytget/vocab-trainer/internal/model"
	"github.com/ytget/vocab-trainer/internal/state"
)

func newLookupCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup WORD",
		Short: "Print the dictionary entries of a word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			word := args[0]

			cfg, err := config.Load(configFile)
			if err != nil {
				return fmt.Errorf("config.Load > %w", err)
			}
			log := app.NewLogger(cfg)

			st := state.Default()
			if dictionary != "" {
				if err := st.SetPreferredDictionary(dictionary); err != nil {
					return err
				}
			}
			st.SetCurrentWord(word)

			client := app.NewDictionaryClient(cfg, log)
			if err := st.FetchDefinition(cmd.Context(), client, word); err != nil {
				var notFound *dict.NotFoundError
				if errors.As(err, &notFound) {
					showSuggestions(cmd.OutOrStdout(), notFound)
				}
				return err
			}

			logger.Component(log, "cli").Debug().
				Str("word", word).
				Int("entries", len(st.Entries)).
				Msg("lookup finished")
			showEntries(cmd.OutOrStdout(), word, st.Entries)
			return nil
		},
	}
}

// showEntries prints every entry with its functional label and short definitions
func showEntries(w io.Writer, word string, entries []model.Entry) {
	heading := color.New(color.Bold, color.Underline)
	headword := color.New(color.Italic, color.FgCyan)
	label := color.New(color.Italic)

	_, _ = heading.Fprintln(w, word)
	for i, entry := range entries {
		_, _ = fmt.Fprintf(w, "%d: %s", i, headword.Sprint(entry.Headword.Display()))
		if entry.HasLabel() {
			_, _ = fmt.Fprintf(w, " %s", label.Sprint(entry.Label()))
		}
		_, _ = fmt.Fprintln(w)

		if len(entry.ShortDefinitions) > 0 {
			for j, def := range entry.ShortDefinitions {
				_, _ = fmt.Fprintf(w, "\t%d. %s\n", j+1, def)
			}
			continue
		}
		for _, def := range entry.Definitions {
			_, _ = fmt.Fprintf(w, "\t%s\n", def.SenseText())
		}
	}
}

// showSuggestions prints the spelling suggestions of a word without entries
func showSuggestions(w io.Writer, notFound *dict.NotFoundError) {
	_, _ = color.New(color.FgYellow).Fprintf(w, "No entries found for %q\n", notFound.Word)
	if len(notFound.Suggestions) == 0 {
		return
	}
	_, _ = fmt.Fprintf(w, "Did you mean: %s\n", strings.Join(notFound.Suggestions, ", "))
}
