package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	statusadapter "github.com/happycastle114/oh-my-openclaw-sub000/internal/adapters/render/status"
	"github.com/happycastle114/oh-my-openclaw-sub000/internal/domain"
	"github.com/spf13/cobra"
)

func newTodoCmd(app *app) *cobra.Command {
	var sessionKey string

	cmd := &cobra.Command{
		Use:   "todo",
		Short: "Manage per-session todo lists",
	}
	cmd.PersistentFlags().StringVar(&sessionKey, "session", domain.DefaultSessionKey, "Session key the todo list belongs to")

	cmd.AddCommand(
		newTodoAddCmd(app, &sessionKey),
		newTodoListCmd(app, &sessionKey),
		newTodoSetCmd(app, &sessionKey),
		newTodoDoneCmd(app, &sessionKey),
		newTodoClearCmd(app, &sessionKey),
	)

	return cmd
}

func newTodoAddCmd(app *app, sessionKey *string) *cobra.Command {
	return &cobra.Command{
		Use:   "add <content>",
		Short: "Add a pending todo",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			todos, err := app.todoService()
			if err != nil {
				return err
			}

			todo, err := todos.Add(cmd.Context(), *sessionKey, strings.Join(args, " "))
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", todo.ID, todo.Content)
			return err
		},
	}
}

func newTodoListCmd(app *app, sessionKey *string) *cobra.Command {
	var (
		asJSON         bool
		incompleteOnly bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List todos for a session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			todos, err := app.todoService()
			if err != nil {
				return err
			}

			var items []domain.Todo
			if incompleteOnly {
				items, err = todos.Incomplete(cmd.Context(), *sessionKey)
			} else {
				items, err = todos.List(cmd.Context(), *sessionKey)
			}
			if err != nil {
				return err
			}

			if asJSON {
				if items == nil {
					items = []domain.Todo{}
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(items)
			}

			active, hasActive, err := app.personas.Active(cmd.Context())
			if err != nil {
				return err
			}
			rendered, err := app.statusRenderer(statusadapter.Snapshot{
				Active:     active,
				HasActive:  hasActive,
				SessionKey: *sessionKey,
				Todos:      items,
			}, statusadapter.RenderOptions{})
			if err != nil {
				return fmt.Errorf("render todos: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")
	cmd.Flags().BoolVar(&incompleteOnly, "incomplete", false, "Only show pending and in-progress todos")

	return cmd
}

func newTodoSetCmd(app *app, sessionKey *string) *cobra.Command {
	return &cobra.Command{
		Use:   "set <id> <status>",
		Short: "Set a todo's status (pending, in_progress, completed, cancelled)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setTodoStatus(cmd, app, *sessionKey, args[0], domain.TodoStatus(args[1]))
		},
	}
}

func newTodoDoneCmd(app *app, sessionKey *string) *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a todo completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setTodoStatus(cmd, app, *sessionKey, args[0], domain.TodoCompleted)
		},
	}
}

func setTodoStatus(cmd *cobra.Command, app *app, sessionKey, id string, status domain.TodoStatus) error {
	todos, err := app.todoService()
	if err != nil {
		return err
	}

	if err := todos.SetStatus(cmd.Context(), sessionKey, id, status); err != nil {
		return err
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", id, status)
	return err
}

func newTodoClearCmd(app *app, sessionKey *string) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every todo in a session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			todos, err := app.todoService()
			if err != nil {
				return err
			}

			if err := todos.Clear(cmd.Context(), *sessionKey); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "cleared todos for %s\n", *sessionKey)
			return err
		},
	}
}
