package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sandeepkv93/diario/internal/printers"
	"github.com/sandeepkv93/diario/internal/storage"
)

var showIDs bool

var noteCmd = &cobra.Command{
	Use:   "note",
	Short: "Manage notes",
}

var noteAddCmd = &cobra.Command{
	Use:   "add <title> [content...]",
	Short: "Add a note",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		j, err := openJournal(cmd.Context())
		if err != nil {
			return err
		}
		defer func() { err = errors.Join(err, j.Close()) }()

		note, err := j.Notes.AddNote(args[0], strings.Join(args[1:], " "))
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "added %s: %s\n", note.ID, note.Title)
		return nil
	},
}

var noteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes in insertion order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		j, err := openJournal(cmd.Context())
		if err != nil {
			return err
		}
		defer func() { err = errors.Join(err, j.Close()) }()

		printers.New(cmd.OutOrStdout(), showIDs).Notes(j.Notes.Notes())
		return nil
	},
}

var noteSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "List notes whose title or content contains query",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		j, err := openJournal(cmd.Context())
		if err != nil {
			return err
		}
		defer func() { err = errors.Join(err, j.Close()) }()

		printers.New(cmd.OutOrStdout(), showIDs).Notes(j.Notes.Search(strings.Join(args, " ")))
		return nil
	},
}

var noteRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		j, err := openJournal(cmd.Context())
		if err != nil {
			return err
		}
		defer func() { err = errors.Join(err, j.Close()) }()

		if _, err := j.repo.GetNote(cmd.Context(), args[0]); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("note %q not found", args[0])
			}
			return err
		}
		j.Notes.DeleteNote(args[0])
		fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
		return nil
	},
}

func init() {
	noteCmd.PersistentFlags().BoolVar(&showIDs, "ids", true, "show note ids")
	noteCmd.AddCommand(noteAddCmd, noteListCmd, noteSearchCmd, noteRmCmd)
	rootCmd.AddCommand(noteCmd)
}
