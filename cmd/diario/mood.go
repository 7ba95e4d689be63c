package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sandeepkv93/diario/internal/model"
	"github.com/sandeepkv93/diario/internal/printers"
)

var moodCmd = &cobra.Command{
	Use:   "mood",
	Short: "Record and review the daily mood",
}

var moodSetCmd = &cobra.Command{
	Use:       "set <emoji>",
	Short:     "Choose today's mood (once per day)",
	Args:      cobra.ExactArgs(1),
	ValidArgs: model.Moods,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		j, err := openJournal(cmd.Context())
		if err != nil {
			return err
		}
		defer func() { err = errors.Join(err, j.Close()) }()

		if !model.IsKnownMood(args[0]) {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %q is not one of %s\n", args[0], strings.Join(model.Moods, " "))
		}
		entry, err := j.Moods.ChooseMood(args[0])
		if errors.Is(err, model.ErrAlreadyDone) {
			return errors.New("você já escolheu seu humor hoje")
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", entry.Humor, entry.Insight)
		return nil
	},
}

var moodHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Print every recorded mood, oldest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		j, err := openJournal(cmd.Context())
		if err != nil {
			return err
		}
		defer func() { err = errors.Join(err, j.Close()) }()

		printers.New(cmd.OutOrStdout(), false).Moods(j.Moods.History())
		return nil
	},
}

func init() {
	moodCmd.AddCommand(moodSetCmd, moodHistoryCmd)
	rootCmd.AddCommand(moodCmd)
}
