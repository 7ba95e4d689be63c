package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sandeepkv93/diario/internal/model"
	"github.com/sandeepkv93/diario/internal/printers"
	"github.com/sandeepkv93/diario/internal/storage"
)

var (
	taskDate   string
	taskSteps  []string
	taskFilter string
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage tasks",
}

var taskAddCmd = &cobra.Command{
	Use:   "add <text...>",
	Short: "Add a task",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		j, err := openJournal(cmd.Context())
		if err != nil {
			return err
		}
		defer func() { err = errors.Join(err, j.Close()) }()

		task, err := j.AddTask(strings.Join(args, " "), taskDate, taskSteps...)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "added %s: %s\n", task.ID, task.Text)
		return nil
	},
}

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks, pending first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		filter, err := model.ParseTaskFilter(taskFilter)
		if err != nil {
			return err
		}
		j, err := openJournal(cmd.Context())
		if err != nil {
			return err
		}
		defer func() { err = errors.Join(err, j.Close()) }()

		printers.New(cmd.OutOrStdout(), showIDs).Tasks(j.Tasks.View(filter))
		return nil
	},
}

var taskDoneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Toggle a task's completion",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		j, err := openJournal(cmd.Context())
		if err != nil {
			return err
		}
		defer func() { err = errors.Join(err, j.Close()) }()

		task, err := j.Tasks.ToggleTask(args[0])
		if err != nil {
			return err
		}
		state := "pending"
		if task.Completed {
			state = "done"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s is %s\n", task.ID, state)
		return nil
	},
}

var taskRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		j, err := openJournal(cmd.Context())
		if err != nil {
			return err
		}
		defer func() { err = errors.Join(err, j.Close()) }()

		if _, err := j.repo.GetTask(cmd.Context(), args[0]); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("task %q not found", args[0])
			}
			return err
		}
		j.RemoveTask(args[0])
		fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", args[0])
		return nil
	},
}

func init() {
	taskAddCmd.Flags().StringVar(&taskDate, "date", "", "due date, e.g. 2026-10-20")
	taskAddCmd.Flags().StringSliceVar(&taskSteps, "step", nil, fmt.Sprintf("sub-step, repeatable (max %d)", model.MaxTaskSteps))
	taskListCmd.Flags().StringVar(&taskFilter, "filter", "all", "all, pending or finished")
	taskCmd.PersistentFlags().BoolVar(&showIDs, "ids", true, "show task ids")
	taskCmd.AddCommand(taskAddCmd, taskListCmd, taskDoneCmd, taskRmCmd)
	rootCmd.AddCommand(taskCmd)
}
