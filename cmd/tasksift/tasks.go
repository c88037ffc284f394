package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sandeepkv93/tasksift/internal/filter"
	"github.com/sandeepkv93/tasksift/internal/model"
	"github.com/sandeepkv93/tasksift/internal/tasklist"
)

var errEmptyLabel = errors.New("nothing to add: label is empty")

// addCmd implements 'tasksift add'.
func (a *app) addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <label>",
		Short: "Add a task; prefix ! for medium or * for high priority",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withList(cmd.Context(), func(list *tasklist.List) error {
				task, ok, err := list.AddTask(cmd.Context(), strings.Join(args, " "))
				if err != nil {
					return err
				}
				if !ok {
					return errEmptyLabel
				}
				fmt.Fprint(cmd.OutOrStdout(), a.output().FormatTask(task))
				return nil
			})
		},
	}
}

// listCmd implements 'tasksift list'. --filter takes a sigil string; any of
// --search, --priority or --status switches to the structured form.
func (a *app) listCmd() *cobra.Command {
	var sigils, search string
	var priorities, statuses []string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks matching a filter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := listFilter(cmd, sigils, search, priorities, statuses)
			if err != nil {
				return err
			}
			return a.withList(cmd.Context(), func(list *tasklist.List) error {
				list.SetFilter(in)
				fmt.Fprint(cmd.OutOrStdout(), a.output().FormatTaskList(list.VisibleTasks(), list.Counts()))
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&sigils, "filter", "f", "", "Sigil filter, e.g. '?!@milk'")
	cmd.Flags().StringVarP(&search, "search", "s", "", "Label substring (structured)")
	cmd.Flags().StringSliceVarP(&priorities, "priority", "p", nil, "Priorities to show (low, medium, high)")
	cmd.Flags().StringSliceVar(&statuses, "status", nil, "Statuses to show (pending, completed)")
	return cmd
}

func listFilter(cmd *cobra.Command, sigils, search string, priorities, statuses []string) (filter.Input, error) {
	flags := cmd.Flags()
	structured := flags.Changed("search") || flags.Changed("priority") || flags.Changed("status")
	if !structured {
		return filter.SigilString(sigils), nil
	}
	if flags.Changed("filter") {
		return nil, errors.New("--filter cannot be combined with --search, --priority or --status")
	}

	in := filter.DefaultStructured()
	in.SearchText = search
	if flags.Changed("priority") {
		in.Priorities = make(map[model.Priority]bool, len(priorities))
		for _, raw := range priorities {
			p, err := model.ParsePriority(raw)
			if err != nil {
				return nil, err
			}
			in.Priorities[p] = true
		}
	}
	if flags.Changed("status") {
		in.Statuses = make(map[model.Status]bool, len(statuses))
		for _, raw := range statuses {
			st, err := model.ParseStatus(raw)
			if err != nil {
				return nil, err
			}
			in.Statuses[st] = true
		}
	}
	return in, nil
}

// toggleCmd implements 'tasksift toggle'. An unknown id changes nothing and
// is reported, not treated as a failure.
func (a *app) toggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "toggle <id>",
		Aliases: []string{"done"},
		Short:   "Flip a task between pending and completed",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withList(cmd.Context(), func(list *tasklist.List) error {
				found, err := list.ToggleComplete(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if !found {
					fmt.Fprint(cmd.OutOrStdout(), a.output().FormatMessage(noTaskMessage(args[0])))
					return nil
				}
				task, _ := list.Get(args[0])
				fmt.Fprint(cmd.OutOrStdout(), a.output().FormatTask(task))
				return nil
			})
		},
	}
}

// rmCmd implements 'tasksift rm'.
func (a *app) rmCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withList(cmd.Context(), func(list *tasklist.List) error {
				found, err := list.DeleteTask(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				msg := "deleted " + args[0]
				if !found {
					msg = noTaskMessage(args[0])
				}
				fmt.Fprint(cmd.OutOrStdout(), a.output().FormatMessage(msg))
				return nil
			})
		},
	}
}

func noTaskMessage(id string) string {
	return "no task with id " + id + "; nothing changed"
}

// parseCmd implements 'tasksift parse'.
func (a *app) parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse [filter]",
		Short: "Show how a sigil filter string is read",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := ""
			if len(args) == 1 {
				raw = args[0]
			}
			parsed := filter.ParseSigilString(raw)
			fmt.Fprint(cmd.OutOrStdout(), a.output().FormatParsed(parsed, parsed.Spec()))
			return nil
		},
	}
}
